package extractor

import "strings"

// Normalizer maps legacy short keys to stable canonical ids. Resolution
// order: explicit table, then recognized prefix families, then a generic
// transliteration. The same key always yields the same id; two distinct
// keys yielding the same id is a CollisionError, never a silent merge.
type Normalizer struct {
	table    map[string]string
	families []PrefixFamily
	seen     map[string]string // id -> legacy key that claimed it
}

// PrefixFamily maps a legacy key prefix with a numeric suffix to a
// canonical id format. "MAZE7" with prefix "MAZE" and format "maze_%s"
// yields "maze_7". Prefixes are tried in order; first match wins.
type PrefixFamily struct {
	Prefixes []string
	Format   string
}

// NewNormalizer builds a Normalizer over an explicit legacy-to-canonical
// table and prefix families. The maps are treated as immutable.
func NewNormalizer(table map[string]string, families []PrefixFamily) *Normalizer {
	return &Normalizer{
		table:    table,
		families: families,
		seen:     make(map[string]string),
	}
}

// Normalize returns the canonical id for a legacy key, recording the claim
// so later collisions are detected.
func (n *Normalizer) Normalize(key string) (string, error) {
	id := n.derive(key)
	if prev, ok := n.seen[id]; ok && prev != key {
		return "", &CollisionError{ID: id, Key: key, ExistingKey: prev}
	}
	n.seen[id] = key
	return id, nil
}

func (n *Normalizer) derive(key string) string {
	if id, ok := n.table[key]; ok {
		return id
	}
	for _, fam := range n.families {
		for _, prefix := range fam.Prefixes {
			if suffix, ok := strings.CutPrefix(key, prefix); ok && suffix != "" && isDigits(suffix) {
				return strings.Replace(fam.Format, "%s", suffix, 1)
			}
		}
	}
	return Slug(key)
}

// Slug is the generic fallback transliteration: lowercase with runs of
// spaces and hyphens collapsed to single underscores, all other characters
// outside [a-z0-9_] dropped. Idempotent.
func Slug(key string) string {
	s := strings.ToLower(key)
	var b strings.Builder
	lastSep := false
	for _, r := range s {
		switch {
		case r == ' ' || r == '-' || r == '_':
			if b.Len() > 0 && !lastSep {
				b.WriteByte('_')
				lastSep = true
			}
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
			lastSep = false
		}
	}
	return strings.TrimSuffix(b.String(), "_")
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
