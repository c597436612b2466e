package mdl

import "strings"

// noExitMarker flags a direction with no passage inside an exit list. The
// marker may carry a quoted refusal message.
const noExitMarker = "#NEXIT"

// ScanRooms locates room definitions and returns one RoomDefinition per
// definition that carries a key, plus a Discard per definition it rejected.
//
// A room header is three quoted strings in order: legacy key, long
// description, display name. The exit list is the first EXIT group found in
// the definition; rooms without one simply have no exits.
func ScanRooms(text string) ([]RoomDefinition, []Discard) {
	var rooms []RoomDefinition
	var drops []Discard
	for _, seg := range segments(text, roomIntroducer) {
		room, reason := parseRoomSegment(seg)
		if reason != "" {
			drops = append(drops, Discard{Reason: reason, Snippet: snippet(seg)})
			continue
		}
		rooms = append(rooms, room)
	}
	return rooms, drops
}

func parseRoomSegment(seg string) (RoomDefinition, string) {
	header := seg
	if exitAt := strings.Index(seg, "<EXIT"); exitAt >= 0 {
		header = seg[:exitAt]
	}
	toks := quotedTokens(header)
	if len(toks) == 0 || strings.TrimSpace(toks[0]) == "" {
		return RoomDefinition{}, "missing room key"
	}

	room := RoomDefinition{
		Key:       strings.TrimSpace(toks[0]),
		BodyLines: trimmedLines(seg),
		RawText:   strings.TrimSpace(seg),
	}
	if len(toks) > 1 {
		room.Description = normalizeText(toks[1])
	}
	if len(toks) > 2 {
		room.Name = normalizeText(toks[2])
	}
	if groups := angleGroups(seg, "<EXIT"); len(groups) > 0 {
		room.Exits = parseExitList(groups[0])
	}
	return room, ""
}

// parseExitList walks the token stream of an EXIT group. Quoted tokens
// alternate direction then target; a no-exit marker or a nested
// conditional-exit group takes the target position. Bare uppercase atoms
// are accepted as targets too.
func parseExitList(content string) []RawExit {
	var exits []RawExit
	pending := ""

	emit := func(e RawExit) {
		if pending == "" {
			return
		}
		e.Direction = pending
		exits = append(exits, e)
		pending = ""
	}

	i := 0
	for i < len(content) {
		c := content[i]
		switch {
		case c == '"':
			tok, end := readQuoted(content, i)
			i = end + 1
			tok = strings.TrimSpace(tok)
			if pending == "" {
				pending = tok
			} else {
				emit(RawExit{Target: tok})
			}
		case strings.HasPrefix(content[i:], noExitMarker):
			i += len(noExitMarker)
			msg, next := nextQuoted(content, i)
			i = next
			emit(RawExit{NoExit: true, NoExitMsg: msg})
		case c == '<':
			end := matchAngle(content, i)
			if end < 0 {
				end = len(content) - 1
			}
			group := content[i+1 : end]
			i = end + 1
			if strings.HasPrefix(group, "CEXIT") {
				if ce := parseInlineCExit(group); ce != nil {
					emit(RawExit{CExit: ce})
				}
			}
		case isIdentChar(c):
			start := i
			for i < len(content) && isIdentChar(content[i]) {
				i++
			}
			atom := content[start:i]
			if pending != "" && atom != "" {
				emit(RawExit{Target: atom})
			}
		default:
			i++
		}
	}
	return exits
}

// nextQuoted consumes leading whitespace and, when the next token is a
// quoted string, returns its normalized content and the offset past it.
func nextQuoted(s string, i int) (string, int) {
	for i < len(s) && (s[i] == ' ' || s[i] == '\t' || s[i] == '\n') {
		i++
	}
	if i >= len(s) || s[i] != '"' {
		return "", i
	}
	tok, end := readQuoted(s, i)
	return normalizeText(tok), end + 1
}

func parseInlineCExit(group string) *InlineCExit {
	toks := quotedTokens(group)
	if len(toks) < 2 {
		return nil
	}
	ce := &InlineCExit{Flag: toks[0], Destination: toks[1]}
	if len(toks) > 2 {
		ce.Message = normalizeText(toks[2])
	}
	return ce
}
