package mdl

import (
	"strings"

	"github.com/dirkkok101/zork/internal/extractor"
)

// Tables holds every static lookup the MDL resolvers consult. A Tables
// value is read-only for the duration of a run; resolvers receive it
// explicitly so they stay pure and independently testable.
type Tables struct {
	// FlagSpellings maps legacy flag tokens (including legacy duplicate
	// spellings) to canonical flags.
	FlagSpellings map[string]extractor.Flag
	// NumericProps maps legacy `KEYWORD <integer>` keywords to canonical
	// property names.
	NumericProps map[string]string
	// TextProps maps legacy `KEYWORD "<text>"` keywords to canonical text
	// field names.
	TextProps map[string]string
	// LegacyIDs is the explicit legacy-key-to-canonical-id table.
	LegacyIDs map[string]string
	// Families are the recognized numeric-suffix key families.
	Families []extractor.PrefixFamily
	// Directions maps legacy direction spellings to canonical directions.
	Directions map[string]string
	// BlockedFallbacks maps legacy room key to direction to the blocked-exit
	// message used when no explicit declaration exists.
	BlockedFallbacks map[string]map[string]string
	// MonsterKeys names objects that are monsters even without a villain
	// flag (lurkers and apparitions with no combat table).
	MonsterKeys []string
	// DangerousRooms lists legacy keys of rooms tagged dangerous.
	DangerousRooms []string
	// Classifier holds the keyword and membership lists for categorization.
	Classifier extractor.ClassifierConfig
}

// Direction converts a legacy direction spelling to canonical form,
// lowercasing unmapped spellings.
func (t *Tables) Direction(legacy string) string {
	if d, ok := t.Directions[strings.ToUpper(legacy)]; ok {
		return d
	}
	return strings.ToLower(legacy)
}

// IsMonsterKey reports whether the primary name marks a monster regardless
// of flags.
func (t *Tables) IsMonsterKey(name string) bool {
	upper := strings.ToUpper(name)
	for _, k := range t.MonsterKeys {
		if k == upper {
			return true
		}
	}
	return false
}

// IsDangerous reports whether the legacy room key is in the dangerous list.
func (t *Tables) IsDangerous(key string) bool {
	for _, k := range t.DangerousRooms {
		if k == key {
			return true
		}
	}
	return false
}

// DefaultTables returns the tables for the original authored dataset.
func DefaultTables() *Tables {
	return &Tables{
		FlagSpellings: map[string]extractor.Flag{
			"TAKEBIT":     extractor.FlagPortable,
			"LIGHTBIT":    extractor.FlagLightSource,
			"CONTBIT":     extractor.FlagContainer,
			"OPENBIT":     extractor.FlagOpenable,
			"WEAPONBIT":   extractor.FlagWeapon,
			"TREASUREBIT": extractor.FlagTreasure,
			// OVISON is the older spelling of the treasure marker.
			"OVISON":    extractor.FlagTreasure,
			"FOODBIT":   extractor.FlagFood,
			"DRINKBIT":  extractor.FlagDrink,
			"TOOLBIT":   extractor.FlagTool,
			"READBIT":   extractor.FlagReadable,
			"BURNBIT":   extractor.FlagFlammable,
			"VILLAIN":   extractor.FlagVillain,
			"DOORBIT":   extractor.FlagDoor,
			"LOCKEDBIT": extractor.FlagLocked,
			"SACREDBIT": extractor.FlagSacred,
			"NDESCBIT":  extractor.FlagInvisible,

			"RLANDBIT":   extractor.FlagLand,
			"RWATERBIT":  extractor.FlagWater,
			"RAIRBIT":    extractor.FlagAir,
			"RLIGHTBIT":  extractor.FlagNaturallyLit,
			"RHOUSEBIT":  extractor.FlagIndoors,
			"RSACREDBIT": extractor.FlagSacred,
		},
		NumericProps: map[string]string{
			"OSIZE":     extractor.PropSize,
			"OTVAL":     extractor.PropValue,
			"OFVAL":     extractor.PropCaseValue,
			"OSTRENGTH": extractor.PropStrength,
			"OCAPAC":    extractor.PropCapacity,
		},
		TextProps: map[string]string{
			"ODESC1": extractor.TextExamine,
			"ODESCO": extractor.TextExamine,
			"OREAD":  extractor.TextRead,
		},
		LegacyIDs: map[string]string{
			"WHOUS": "west_of_house",
			"NHOUS": "north_of_house",
			"SHOUS": "south_of_house",
			"EHOUS": "behind_house",
			"LROOM": "living_room",
			"KITCH": "kitchen",
			"ATTIC": "attic",
			"CELLA": "cellar",
			"TWELL": "treasure_well",
			"FORE1": "forest_1",
			"FORE2": "forest_2",
			"FORE3": "forest_3",
			"FORE4": "forest_4",
			"PATH":  "forest_path",
			"CLEAR": "clearing",
			"BEACH": "beach",
			"RESER": "reservoir",
			"DAM":   "dam",
			"EGYPT": "egyptian_room",
			"SANDY": "sandy_beach",
			"ROCKY": "rocky_ledge",
			"OROOM": "round_room",
			"CAROU": "carousel_room",
			"MTROL": "troll_room",
			"TREAS": "treasure_room",
			"WINDM": "windmill",
			"MGRAT": "grating_room",
			"MTREE": "up_tree",
			"FALLS": "top_of_falls",
			"MTOP":  "mountain_top",
			"DOME":  "temple_dome",
			"TORCH": "torch_room",
			"TEMP":  "temple",
			"ALTAR": "altar",
			"VOLCA": "volcano",
			"HBARR": "barrow",
			"NCELL": "cell",
			"NIRVA": "treasury_of_zork",
			"CYCLO": "cyclops_room",
			"BLROO": "strange_passage",
		},
		Families: []extractor.PrefixFamily{
			{Prefixes: []string{"MAZE", "MAZ"}, Format: "maze_%s"},
			{Prefixes: []string{"DEAD"}, Format: "dead_end_%s"},
		},
		Directions: map[string]string{
			"NORTH":     "north",
			"SOUTH":     "south",
			"EAST":      "east",
			"WEST":      "west",
			"UP":        "up",
			"DOWN":      "down",
			"ENTER":     "in",
			"EXIT":      "out",
			"NORTHEAST": "northeast",
			"NORTHWEST": "northwest",
			"SOUTHEAST": "southeast",
			"SOUTHWEST": "southwest",
			"NE":        "northeast",
			"NW":        "northwest",
			"SE":        "southeast",
			"SW":        "southwest",
		},
		BlockedFallbacks: map[string]map[string]string{
			"WHOUS": {
				"east": "The front door is boarded and you can't remove the boards.",
			},
			"NHOUS": {
				"south": "The windows are all barred.",
				"north": "You can't go that way.",
			},
			"SHOUS": {
				"north": "The windows are all barred.",
				"south": "You can't go that way.",
			},
		},
		MonsterKeys: []string{
			"GRUE", "GHOST", "BAT", "GNOME", "GUARDIAN",
		},
		DangerousRooms: []string{"TREAS", "MTROL", "CYCLO"},
		Classifier:     extractor.DefaultClassifierConfig(),
	}
}
