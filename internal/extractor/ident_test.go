package extractor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/dirkkok101/zork/internal/extractor"
)

func testNormalizer() *extractor.Normalizer {
	return extractor.NewNormalizer(
		map[string]string{
			"WHOUS": "west_of_house",
			"LROOM": "living_room",
		},
		[]extractor.PrefixFamily{
			{Prefixes: []string{"MAZE", "MAZ"}, Format: "maze_%s"},
			{Prefixes: []string{"DEAD"}, Format: "dead_end_%s"},
		},
	)
}

func TestNormalize_TableLookup(t *testing.T) {
	n := testNormalizer()
	id, err := n.Normalize("WHOUS")
	require.NoError(t, err)
	assert.Equal(t, "west_of_house", id)
}

func TestNormalize_PrefixFamilies(t *testing.T) {
	cases := map[string]string{
		"MAZE7": "maze_7",
		"MAZ10": "maze_10",
		"MAZ15": "maze_15",
		"DEAD2": "dead_end_2",
	}
	n := testNormalizer()
	for key, want := range cases {
		id, err := n.Normalize(key)
		require.NoError(t, err)
		assert.Equal(t, want, id, "key %s", key)
	}
}

func TestNormalize_FamilyNeedsNumericSuffix(t *testing.T) {
	// A family prefix with a non-numeric suffix falls through to the slug.
	n := testNormalizer()
	id, err := n.Normalize("MAZEX")
	require.NoError(t, err)
	assert.Equal(t, "mazex", id)
}

func TestNormalize_SlugFallback(t *testing.T) {
	n := testNormalizer()
	id, err := n.Normalize("Two Words")
	require.NoError(t, err)
	assert.Equal(t, "two_words", id)
}

func TestNormalize_SameKeyTwice(t *testing.T) {
	n := testNormalizer()
	first, err := n.Normalize("KITCH")
	require.NoError(t, err)
	second, err := n.Normalize("KITCH")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestNormalize_CollisionDetected(t *testing.T) {
	n := testNormalizer()
	_, err := n.Normalize("BIG-DOOR")
	require.NoError(t, err)

	_, err = n.Normalize("BIG DOOR")
	require.Error(t, err)
	var collision *extractor.CollisionError
	require.ErrorAs(t, err, &collision)
	assert.Equal(t, "big_door", collision.ID)
	assert.Equal(t, "BIG DOOR", collision.Key)
	assert.Equal(t, "BIG-DOOR", collision.ExistingKey)
}

func TestSlug(t *testing.T) {
	cases := map[string]string{
		"Two Words":   "two_words",
		"BIG-DOOR":    "big_door",
		"a  b":        "a_b",
		"trailing-":   "trailing",
		"-leading":    "leading",
		"MiXeD-CaSe9": "mixed_case9",
	}
	for in, want := range cases {
		assert.Equal(t, want, extractor.Slug(in), "input %q", in)
	}
}

func TestSlug_Properties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		key := rapid.StringMatching(`[A-Za-z0-9 _-]{0,20}`).Draw(t, "key")
		slug := extractor.Slug(key)

		// Idempotent and restricted to the id alphabet.
		assert.Equal(t, slug, extractor.Slug(slug))
		for _, r := range slug {
			ok := r == '_' || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
			assert.True(t, ok, "character %q in slug %q", r, slug)
		}
	})
}

func TestNormalize_Deterministic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		key := rapid.StringMatching(`[A-Z0-9-]{1,10}`).Draw(t, "key")
		a, errA := testNormalizer().Normalize(key)
		b, errB := testNormalizer().Normalize(key)
		require.NoError(t, errA)
		require.NoError(t, errB)
		assert.Equal(t, a, b)
	})
}
