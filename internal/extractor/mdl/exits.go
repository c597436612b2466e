package mdl

import (
	"fmt"
	"strings"

	"github.com/dirkkok101/zork/internal/extractor"
)

// DefaultBlockedMessage is the generic refusal attached to a blocked exit
// when neither the declaration nor the fallback table supplies one.
const DefaultBlockedMessage = "You can't go that way."

// ParseCExits collects every standalone conditional-exit declaration in the
// source text. Declarations with fewer than two quoted operands are skipped.
func ParseCExits(text string) []CExit {
	var out []CExit
	for _, group := range angleGroups(text, "<CEXIT") {
		toks := quotedTokens(group)
		if len(toks) < 2 {
			continue
		}
		ce := CExit{Flag: toks[0], Destination: toks[1]}
		if len(toks) > 2 {
			ce.Message = normalizeText(toks[2])
		}
		out = append(out, ce)
	}
	return out
}

// ParseDoors collects door macro declarations and enriches each with the
// matching door-flagged object definition, when one exists. The macro names
// the object and the two rooms it joins; an optional fourth operand is the
// closed-door failure message.
func ParseDoors(text string, defs []EntityDefinition, t *Tables) []Door {
	var doors []Door
	for _, group := range angleGroups(text, "<DOOR") {
		toks := quotedTokens(group)
		if len(toks) < 3 {
			continue
		}
		door := Door{
			Name:           toks[0],
			Names:          []string{toks[0]},
			ConnectedRooms: []string{toks[1], toks[2]},
		}
		if len(toks) > 3 {
			door.FailureMessage = normalizeText(toks[3])
		}
		if def := findDef(defs, toks[0]); def != nil {
			door.Names = def.Names
			door.Description = def.Description
			attrs := ResolveAttributes(def.BodyLines, t)
			door.Locked = attrs.Has(extractor.FlagLocked)
		}
		doors = append(doors, door)
	}
	return doors
}

func findDef(defs []EntityDefinition, name string) *EntityDefinition {
	for i := range defs {
		for _, n := range defs[i].Names {
			if strings.EqualFold(n, name) {
				return &defs[i]
			}
		}
	}
	return nil
}

// ExitResolver turns a room's raw exit list into canonical exit records by
// cross-referencing the door and conditional-exit declarations.
type ExitResolver struct {
	tables *Tables
	doors  []Door
	cexits []CExit
}

func NewExitResolver(t *Tables, doors []Door, cexits []CExit) *ExitResolver {
	return &ExitResolver{tables: t, doors: doors, cexits: cexits}
}

// Resolve maps each raw exit to a record keyed by canonical direction.
// Destinations are converted to canonical ids via normalize. Door-based
// resolution is attempted before declaration-based resolution; a room pair
// claimed by more than one door is an AmbiguousDoorError, never a silent
// first match. A duplicate direction keeps the last declaration.
func (r *ExitResolver) Resolve(room *RoomDefinition, normalize func(string) (string, error)) (map[string]extractor.ExitRecord, error) {
	exits := make(map[string]extractor.ExitRecord, len(room.Exits))
	for _, raw := range room.Exits {
		dir := r.tables.Direction(raw.Direction)
		rec, err := r.resolveOne(room.Key, dir, raw, normalize)
		if err != nil {
			return nil, err
		}
		exits[dir] = rec
	}
	return exits, nil
}

func (r *ExitResolver) resolveOne(roomKey, dir string, raw RawExit, normalize func(string) (string, error)) (extractor.ExitRecord, error) {
	if raw.NoExit {
		return extractor.ExitRecord{
			Kind:           extractor.ExitBlocked,
			FailureMessage: r.blockedMessage(roomKey, dir, raw.NoExitMsg),
		}, nil
	}

	target := raw.Target
	if raw.CExit != nil {
		target = raw.CExit.Destination
	}
	to, err := normalize(target)
	if err != nil {
		return extractor.ExitRecord{}, fmt.Errorf("room %s direction %s: %w", roomKey, dir, err)
	}

	door, err := r.doorFor(roomKey, dir, target)
	if err != nil {
		return extractor.ExitRecord{}, err
	}
	if door != nil {
		return extractor.ExitRecord{
			Kind:           extractor.ExitConditional,
			To:             to,
			Condition:      doorCondition(door.Name),
			Locked:         door.Locked,
			FailureMessage: doorMessage(door),
		}, nil
	}

	if raw.CExit != nil {
		return extractor.ExitRecord{
			Kind:           extractor.ExitConditional,
			To:             to,
			Condition:      extractor.Slug(raw.CExit.Flag),
			FailureMessage: normalizeText(raw.CExit.Message),
		}, nil
	}
	if ce := r.cexitFor(target); ce != nil {
		return extractor.ExitRecord{
			Kind:           extractor.ExitConditional,
			To:             to,
			Condition:      extractor.Slug(ce.Flag),
			FailureMessage: ce.Message,
		}, nil
	}

	return extractor.ExitRecord{Kind: extractor.ExitPlain, To: to}, nil
}

// doorFor finds the single door whose connection pair contains both rooms.
// More than one structural match is reported, not resolved.
func (r *ExitResolver) doorFor(roomKey, dir, target string) (*Door, error) {
	var matches []*Door
	for i := range r.doors {
		if r.doors[i].Connects(roomKey, target) {
			matches = append(matches, &r.doors[i])
		}
	}
	switch len(matches) {
	case 0:
		return nil, nil
	case 1:
		return matches[0], nil
	}
	names := make([]string, len(matches))
	for i, d := range matches {
		names[i] = d.Name
	}
	return nil, &extractor.AmbiguousDoorError{
		Room:      roomKey,
		Direction: dir,
		Target:    target,
		Doors:     names,
	}
}

func (r *ExitResolver) cexitFor(target string) *CExit {
	for i := range r.cexits {
		if r.cexits[i].Destination == target {
			return &r.cexits[i]
		}
	}
	return nil
}

func (r *ExitResolver) blockedMessage(roomKey, dir, declared string) string {
	if declared != "" {
		return normalizeText(declared)
	}
	if msg := r.tables.BlockedFallbacks[roomKey][dir]; msg != "" {
		return msg
	}
	return DefaultBlockedMessage
}

func doorCondition(name string) string {
	return "door_" + extractor.Slug(name) + "_open"
}

func doorMessage(d *Door) string {
	if d.FailureMessage != "" {
		return d.FailureMessage
	}
	return fmt.Sprintf("The %s is closed.", strings.ToLower(d.Name))
}

// angleGroups returns the inner content of every balanced angle-bracket
// group beginning with the given introducer. Quoted strings are opaque to
// the depth count.
func angleGroups(text, introducer string) []string {
	var out []string
	for _, at := range introducerOffsets(text, introducer) {
		end := matchAngle(text, at)
		if end < 0 {
			continue
		}
		out = append(out, text[at+len(introducer):end])
	}
	return out
}

// matchAngle returns the offset of the '>' closing the group opened at
// start, or -1 when unterminated.
func matchAngle(text string, start int) int {
	depth := 0
	for i := start; i < len(text); i++ {
		switch text[i] {
		case '"':
			_, end := readQuoted(text, i)
			i = end
		case '<':
			depth++
		case '>':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}
