package extractor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/dirkkok101/zork/internal/extractor"
)

func TestAttributeSet_FlagIdempotence(t *testing.T) {
	attrs := extractor.NewAttributeSet()
	attrs.AddFlag(extractor.FlagPortable)
	attrs.AddFlag(extractor.FlagPortable)
	attrs.AddFlag(extractor.FlagWeapon)

	assert.Equal(t, 2, attrs.FlagCount())
	assert.True(t, attrs.Has(extractor.FlagPortable))
	assert.True(t, attrs.HasAny(extractor.FlagWeapon, extractor.FlagFood))
	assert.False(t, attrs.HasAny(extractor.FlagFood, extractor.FlagDrink))
}

func TestAttributeSet_FlagsSorted(t *testing.T) {
	attrs := extractor.NewAttributeSet()
	attrs.AddFlag(extractor.FlagWeapon)
	attrs.AddFlag(extractor.FlagContainer)
	attrs.AddFlag(extractor.FlagPortable)

	assert.Equal(t,
		[]extractor.Flag{extractor.FlagContainer, extractor.FlagPortable, extractor.FlagWeapon},
		attrs.Flags())
	assert.Equal(t, []string{"container", "portable", "weapon"}, attrs.Tags())
}

func TestAttributeSet_Properties(t *testing.T) {
	attrs := extractor.NewAttributeSet()
	assert.Nil(t, attrs.Properties())

	attrs.SetProperty(extractor.PropSize, 15)
	attrs.SetProperty(extractor.PropValue, 10)

	v, ok := attrs.Property(extractor.PropSize)
	assert.True(t, ok)
	assert.Equal(t, 15, v)
	_, ok = attrs.Property(extractor.PropCapacity)
	assert.False(t, ok)

	props := attrs.Properties()
	props[extractor.PropSize] = 99
	v, _ = attrs.Property(extractor.PropSize)
	assert.Equal(t, 15, v, "Properties must return a copy")
}

func TestAttributeSet_IdempotenceProperty(t *testing.T) {
	all := []extractor.Flag{
		extractor.FlagPortable, extractor.FlagLightSource, extractor.FlagContainer,
		extractor.FlagOpenable, extractor.FlagWeapon, extractor.FlagTreasure,
		extractor.FlagFood, extractor.FlagDrink, extractor.FlagTool,
	}
	rapid.Check(t, func(t *rapid.T) {
		picks := rapid.SliceOfN(rapid.SampledFrom(all), 0, 30).Draw(t, "picks")
		attrs := extractor.NewAttributeSet()
		distinct := map[extractor.Flag]bool{}
		for _, f := range picks {
			attrs.AddFlag(f)
			distinct[f] = true
		}
		assert.Equal(t, len(distinct), attrs.FlagCount())
	})
}
