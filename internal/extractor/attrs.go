package extractor

import (
	"sort"
	"strings"
)

// Flag is a canonical boolean capability tag. The set of flags is closed;
// legacy spellings are mapped onto these by the format-specific resolvers.
type Flag string

// Object capability flags.
const (
	FlagPortable    Flag = "PORTABLE"
	FlagLightSource Flag = "LIGHT_SOURCE"
	FlagContainer   Flag = "CONTAINER"
	FlagOpenable    Flag = "OPENABLE"
	FlagWeapon      Flag = "WEAPON"
	FlagTreasure    Flag = "TREASURE"
	FlagFood        Flag = "FOOD"
	FlagDrink       Flag = "DRINK"
	FlagTool        Flag = "TOOL"
	FlagReadable    Flag = "READABLE"
	FlagFlammable   Flag = "FLAMMABLE"
	FlagVillain     Flag = "VILLAIN"
	FlagDoor        Flag = "DOOR"
	FlagLocked      Flag = "LOCKED"
	FlagSacred      Flag = "SACRED"
	FlagInvisible   Flag = "INVISIBLE"
)

// Room environment flags.
const (
	FlagLand         Flag = "LAND"
	FlagWater        Flag = "WATER"
	FlagAir          Flag = "AIR"
	FlagNaturallyLit Flag = "NATURALLY_LIT"
	FlagIndoors      Flag = "INDOORS"
)

// Well-known numeric property names.
const (
	PropSize      = "size"
	PropValue     = "value"
	PropCaseValue = "caseValue"
	PropStrength  = "strength"
	PropCapacity  = "capacity"
)

// Well-known text field names.
const (
	TextExamine  = "examine"
	TextRead     = "read"
	TextFunction = "function"
	TextDemon    = "demon"
)

// AttributeSet is the canonical attribute bag built up for one entity while
// its body lines are resolved. Flags have set semantics: adding the same
// flag any number of times leaves exactly one entry.
type AttributeSet struct {
	flags      map[Flag]bool
	properties map[string]int
	textFields map[string]string
}

// NewAttributeSet returns an empty attribute set.
func NewAttributeSet() *AttributeSet {
	return &AttributeSet{
		flags:      make(map[Flag]bool),
		properties: make(map[string]int),
		textFields: make(map[string]string),
	}
}

// AddFlag records a canonical flag. Idempotent.
func (a *AttributeSet) AddFlag(f Flag) { a.flags[f] = true }

// Has reports whether the flag is set.
func (a *AttributeSet) Has(f Flag) bool { return a.flags[f] }

// HasAny reports whether any of the given flags is set.
func (a *AttributeSet) HasAny(flags ...Flag) bool {
	for _, f := range flags {
		if a.flags[f] {
			return true
		}
	}
	return false
}

// Flags returns the set flags in sorted order.
func (a *AttributeSet) Flags() []Flag {
	out := make([]Flag, 0, len(a.flags))
	for f := range a.flags {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// FlagCount returns the number of distinct flags set.
func (a *AttributeSet) FlagCount() int { return len(a.flags) }

// Tags returns the set flags lowercased, for record tag lists.
func (a *AttributeSet) Tags() []string {
	flags := a.Flags()
	tags := make([]string, len(flags))
	for i, f := range flags {
		tags[i] = strings.ToLower(string(f))
	}
	return tags
}

// SetProperty records an integer property. Last write wins.
func (a *AttributeSet) SetProperty(name string, value int) { a.properties[name] = value }

// Property returns a property value and whether it was set.
func (a *AttributeSet) Property(name string) (int, bool) {
	v, ok := a.properties[name]
	return v, ok
}

// Properties returns a copy of all integer properties.
func (a *AttributeSet) Properties() map[string]int {
	if len(a.properties) == 0 {
		return nil
	}
	out := make(map[string]int, len(a.properties))
	for k, v := range a.properties {
		out[k] = v
	}
	return out
}

// SetText records a text field. Last write wins.
func (a *AttributeSet) SetText(name, value string) { a.textFields[name] = value }

// Text returns a text field, or "" when unset.
func (a *AttributeSet) Text(name string) string { return a.textFields[name] }
