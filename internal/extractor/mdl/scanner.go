package mdl

import "strings"

// Introducer tokens anchoring entity definitions in the source text.
const (
	objectIntroducer = "<OBJECT"
	roomIntroducer   = "<ROOM"
)

// Discard records one definition a scanner rejected, so callers can log it.
type Discard struct {
	Reason  string
	Snippet string
}

// ScanObjects locates object definitions and returns one EntityDefinition
// per definition that carries at least one name, plus a Discard per
// definition it rejected. A missing name list is fatal to that single
// entity only, never to the scan.
func ScanObjects(text string) ([]EntityDefinition, []Discard) {
	var defs []EntityDefinition
	var drops []Discard
	for _, seg := range segments(text, objectIntroducer) {
		def, reason := parseObjectSegment(seg)
		if reason != "" {
			drops = append(drops, Discard{Reason: reason, Snippet: snippet(seg)})
			continue
		}
		defs = append(defs, def)
	}
	return defs, drops
}

// parseObjectSegment splits one introducer-anchored segment into the
// name-list header and body. A non-empty reason means the definition is
// discarded.
func parseObjectSegment(seg string) (EntityDefinition, string) {
	open := strings.Index(seg, "[")
	if open < 0 {
		return EntityDefinition{}, "no name list"
	}
	end := strings.Index(seg[open:], "]")
	if end < 0 {
		return EntityDefinition{}, "unterminated name list"
	}
	names := nonEmptyQuoted(seg[open+1 : open+end])
	if len(names) == 0 {
		return EntityDefinition{}, "empty name list"
	}

	body := seg[open+end+1:]

	def := EntityDefinition{
		Names:     names,
		BodyLines: trimmedLines(body),
		RawText:   strings.TrimSpace(seg),
	}

	// Positional heuristics: a leading bracket list is the adjective list;
	// a quoted string immediately after is the description. Both optional,
	// consumed only when structurally present at that position. The
	// description may span lines.
	rest := strings.TrimLeft(body, " \t\n")
	if strings.HasPrefix(rest, "[") {
		end := strings.Index(rest, "]")
		if end < 0 {
			return def, ""
		}
		def.Adjectives = nonEmptyQuoted(rest[1:end])
		rest = strings.TrimLeft(rest[end+1:], " \t\n")
	}
	if strings.HasPrefix(rest, `"`) {
		desc, _ := readQuoted(rest, 0)
		def.Description = normalizeText(desc)
	}
	return def, ""
}

// snippet trims a segment to its first line for log output.
func snippet(seg string) string {
	s := strings.TrimSpace(seg)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	if len(s) > 60 {
		s = s[:60]
	}
	return s
}

// segments slices text into introducer-anchored spans: each span runs from
// one introducer occurrence to the next, or to end of input.
func segments(text, introducer string) []string {
	var out []string
	starts := introducerOffsets(text, introducer)
	for i, start := range starts {
		end := len(text)
		if i+1 < len(starts) {
			end = starts[i+1]
		}
		out = append(out, text[start+len(introducer):end])
	}
	return out
}

// introducerOffsets returns offsets of introducer occurrences followed by a
// non-identifier character, so "<ROOM" never matches inside "<ROOMS".
func introducerOffsets(text, introducer string) []int {
	var offsets []int
	for i := 0; ; {
		j := strings.Index(text[i:], introducer)
		if j < 0 {
			break
		}
		at := i + j
		next := at + len(introducer)
		if next >= len(text) || !isIdentChar(text[next]) {
			offsets = append(offsets, at)
		}
		i = next
	}
	return offsets
}

func isIdentChar(c byte) bool {
	return c == '-' || (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9')
}

// quotedTokens extracts the contents of double-quoted strings, honoring
// backslash escapes.
func quotedTokens(s string) []string {
	var tokens []string
	for i := 0; i < len(s); i++ {
		if s[i] != '"' {
			continue
		}
		content, end := readQuoted(s, i)
		tokens = append(tokens, content)
		i = end
	}
	return tokens
}

// readQuoted reads a quoted string starting at the opening quote offset and
// returns its raw content and the offset of the closing quote (or the last
// offset when unterminated).
func readQuoted(s string, start int) (string, int) {
	var b strings.Builder
	i := start + 1
	for i < len(s) {
		switch s[i] {
		case '\\':
			// Only quote and backslash escapes; "\n" stays literal for the
			// whitespace normalizer.
			if i+1 < len(s) && (s[i+1] == '"' || s[i+1] == '\\') {
				b.WriteByte(s[i+1])
				i += 2
				continue
			}
			b.WriteByte('\\')
			i++
		case '"':
			return b.String(), i
		default:
			b.WriteByte(s[i])
			i++
		}
	}
	return b.String(), len(s) - 1
}

func nonEmptyQuoted(s string) []string {
	var out []string
	for _, tok := range quotedTokens(s) {
		if t := strings.TrimSpace(tok); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func trimmedLines(s string) []string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		if t := strings.TrimSpace(line); t != "" {
			lines = append(lines, t)
		}
	}
	return lines
}

// normalizeText collapses escaped-newline sequences and whitespace runs to
// single spaces.
func normalizeText(s string) string {
	s = strings.ReplaceAll(s, `\n`, " ")
	return strings.Join(strings.Fields(s), " ")
}
