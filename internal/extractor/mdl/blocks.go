// Package mdl parses the legacy MDL-flavored authoring text and implements
// extractor.Source for it. The text was never designed to be machine-read:
// scanning is anchored on introducer tokens and recovers per-entity, never
// failing the whole run for one malformed definition.
package mdl

import (
	"sort"
	"strings"
)

// Block is one balanced delimiter-bracketed span of source text. Start and
// End are offsets into the scanned text; Content excludes the markers.
type Block struct {
	Start   int
	End     int
	Content string
}

// Vector markers used by the melee message tables. A vector opened with
// VectorOpen may be closed by either close spelling; both terminate the
// current depth level identically.
const VectorOpen = "!["

// VectorCloses lists the interchangeable close markers for vectors.
var VectorCloses = []string{"!]", "]"}

// ExtractBlocks returns the top-level balanced blocks of text delimited by
// the open marker and any of the close markers. Nesting is handled by depth
// counting. An open marker with no matching close before end of input is
// flushed as a final block rather than dropped. Pure function: identical
// input always yields identical block boundaries.
func ExtractBlocks(text, open string, closes ...string) []Block {
	// Longer close spellings must win over their prefixes ("!]" before "]").
	ordered := make([]string, len(closes))
	copy(ordered, closes)
	sort.Slice(ordered, func(i, j int) bool { return len(ordered[i]) > len(ordered[j]) })

	var blocks []Block
	depth := 0
	start := 0   // content start of the current top-level block
	opened := -1 // offset of the current top-level open marker

	i := 0
	for i < len(text) {
		if strings.HasPrefix(text[i:], open) {
			if depth == 0 {
				opened = i
				start = i + len(open)
			}
			depth++
			i += len(open)
			continue
		}
		if depth > 0 {
			if closeLen := matchClose(text[i:], ordered); closeLen > 0 {
				depth--
				if depth == 0 {
					blocks = append(blocks, Block{
						Start:   opened,
						End:     i + closeLen,
						Content: text[start:i],
					})
				}
				i += closeLen
				continue
			}
		}
		i++
	}

	if depth > 0 {
		// Unterminated trailing block: partial data beats data loss.
		blocks = append(blocks, Block{Start: opened, End: len(text), Content: text[start:]})
	}
	return blocks
}

func matchClose(s string, closes []string) int {
	for _, c := range closes {
		if strings.HasPrefix(s, c) {
			return len(c)
		}
	}
	return 0
}

// ExtractVectors extracts the top-level vector blocks of text using the
// melee-table markers.
func ExtractVectors(text string) []Block {
	return ExtractBlocks(text, VectorOpen, VectorCloses...)
}
