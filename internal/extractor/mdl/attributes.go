package mdl

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/dirkkok101/zork/internal/extractor"
)

var (
	comboGroupRE = regexp.MustCompile(`<\+\s+([^>]*)>`)
	functionRE   = regexp.MustCompile(`,?([A-Z][A-Z0-9-]*-FUNCTION)\b`)
	demonRE      = regexp.MustCompile(`,?([A-Z][A-Z0-9-]*-DEMON)\b`)
)

// ResolveAttributes walks an entity body and collects every recognized
// flag, numeric property, and text field into one AttributeSet. Flag
// tokens appear either inside combination groups or standalone; both
// spellings of a flag resolve through the same table, so duplicates
// collapse. Unrecognized tokens are skipped without error.
func ResolveAttributes(lines []string, t *Tables) *extractor.AttributeSet {
	body := strings.Join(lines, "\n")
	attrs := extractor.NewAttributeSet()

	for _, group := range comboGroupRE.FindAllStringSubmatch(body, -1) {
		for _, tok := range strings.Fields(group[1]) {
			addFlagToken(attrs, tok, t)
		}
	}
	for _, tok := range strings.FieldsFunc(body, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n' || r == '<' || r == '>' || r == '[' || r == ']'
	}) {
		addFlagToken(attrs, tok, t)
	}

	resolveNumericProps(attrs, body, t)
	resolveTextProps(attrs, body, t)

	if m := functionRE.FindStringSubmatch(body); m != nil {
		attrs.SetText(extractor.TextFunction, m[1])
	}
	if m := demonRE.FindStringSubmatch(body); m != nil {
		attrs.SetText(extractor.TextDemon, m[1])
	}
	return attrs
}

func addFlagToken(attrs *extractor.AttributeSet, tok string, t *Tables) {
	tok = strings.TrimPrefix(strings.TrimSpace(tok), ",")
	if flag, ok := t.FlagSpellings[tok]; ok {
		attrs.AddFlag(flag)
	}
}

// resolveNumericProps extracts `KEYWORD <integer>` pairs. Keywords are
// visited in sorted order so overlapping targets resolve the same way on
// every run; the first value found for a property wins.
func resolveNumericProps(attrs *extractor.AttributeSet, body string, t *Tables) {
	for _, keyword := range sortedKeys(t.NumericProps) {
		name := t.NumericProps[keyword]
		if _, ok := attrs.Property(name); ok {
			continue
		}
		re := regexp.MustCompile(`\b` + regexp.QuoteMeta(keyword) + `\s+(-?\d+)`)
		m := re.FindStringSubmatch(body)
		if m == nil {
			continue
		}
		v, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		attrs.SetProperty(name, v)
	}
}

// resolveTextProps extracts `KEYWORD "<text>"` pairs. The quoted text may
// span lines; interior whitespace collapses to single spaces.
func resolveTextProps(attrs *extractor.AttributeSet, body string, t *Tables) {
	for _, keyword := range sortedKeys(t.TextProps) {
		name := t.TextProps[keyword]
		if attrs.Text(name) != "" {
			continue
		}
		at := keywordOffset(body, keyword)
		if at < 0 {
			continue
		}
		rest := body[at+len(keyword):]
		q := strings.IndexByte(rest, '"')
		if q < 0 || strings.TrimSpace(rest[:q]) != "" {
			continue
		}
		content, _ := readQuoted(rest, q)
		attrs.SetText(name, normalizeText(content))
	}
}

// keywordOffset finds keyword as a standalone token, not as a substring of
// a longer identifier.
func keywordOffset(body, keyword string) int {
	for i := 0; ; {
		j := strings.Index(body[i:], keyword)
		if j < 0 {
			return -1
		}
		at := i + j
		end := at + len(keyword)
		beforeOK := at == 0 || !isIdentChar(body[at-1])
		afterOK := end >= len(body) || !isIdentChar(body[end])
		if beforeOK && afterOK {
			return at
		}
		i = end
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
