package mdl

import (
	"regexp"
	"strings"

	"github.com/dirkkok101/zork/internal/extractor"
)

var meleeDeclRE = regexp.MustCompile(`<P?SETG\s+([A-Z][A-Z0-9-]*)-MELEE\b`)

// ParseMeleeTables collects every combat message table declared in the
// source text, keyed by the owning monster's legacy name. Each declaration
// holds one outer table whose sub-blocks are the message categories in
// fixed order. A category block either lists message strings directly or
// groups the lines of one message in a nested block; grouped lines join
// with single spaces.
func ParseMeleeTables(text string) map[string]extractor.MeleeTable {
	tables := make(map[string]extractor.MeleeTable)
	locs := meleeDeclRE.FindAllStringSubmatchIndex(text, -1)
	for i, loc := range locs {
		end := len(text)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		name := text[loc[2]:loc[3]]
		segment := text[loc[1]:end]

		outer := ExtractVectors(segment)
		if len(outer) == 0 {
			continue
		}
		var categories [][]string
		for _, cat := range ExtractVectors(outer[0].Content) {
			categories = append(categories, categoryMessages(cat.Content))
		}
		tables[name] = extractor.NewMeleeTable(categories)
	}
	return tables
}

// categoryMessages flattens one category block into its message strings.
func categoryMessages(content string) []string {
	groups := ExtractVectors(content)
	if len(groups) == 0 {
		var msgs []string
		for _, tok := range quotedTokens(content) {
			if t := normalizeText(tok); t != "" {
				msgs = append(msgs, t)
			}
		}
		return msgs
	}
	var msgs []string
	for _, g := range groups {
		var lines []string
		for _, tok := range quotedTokens(g.Content) {
			if t := normalizeText(tok); t != "" {
				lines = append(lines, t)
			}
		}
		if len(lines) > 0 {
			msgs = append(msgs, strings.Join(lines, " "))
		}
	}
	return msgs
}
