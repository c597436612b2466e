// Package extractor converts legacy authored game data into canonical item,
// monster, and scene records for the game engine. It holds the format-agnostic
// side of the pipeline: canonical record types, the attribute model, the
// identifier normalizer, the classifier, and the orchestrating Extractor.
// Format-specific parsing lives in subpackages implementing Source.
package extractor

// ExitKind describes how an exit resolves: freely passable, permanently
// blocked, or gated by a named condition.
type ExitKind string

const (
	ExitPlain       ExitKind = "plain"
	ExitBlocked     ExitKind = "blocked"
	ExitConditional ExitKind = "conditional"
)

// ExitRecord is one resolved exit of a scene.
// To is empty exactly when Kind is ExitBlocked.
type ExitRecord struct {
	Kind           ExitKind `json:"kind" yaml:"kind"`
	To             string   `json:"to,omitempty" yaml:"to,omitempty"`
	Condition      string   `json:"condition,omitempty" yaml:"condition,omitempty"`
	Locked         bool     `json:"locked,omitempty" yaml:"locked,omitempty"`
	FailureMessage string   `json:"failureMessage,omitempty" yaml:"failureMessage,omitempty"`
}

// SizeClass buckets an item's numeric size.
type SizeClass string

const (
	SizeTiny   SizeClass = "TINY"
	SizeSmall  SizeClass = "SMALL"
	SizeMedium SizeClass = "MEDIUM"
	SizeLarge  SizeClass = "LARGE"
	SizeHuge   SizeClass = "HUGE"
)

// SizeClassFor converts a numeric size to its class.
// Boundaries: <=5 TINY, <=10 SMALL, <=20 MEDIUM, <=40 LARGE, else HUGE.
func SizeClassFor(size int) SizeClass {
	switch {
	case size <= 5:
		return SizeTiny
	case size <= 10:
		return SizeSmall
	case size <= 20:
		return SizeMedium
	case size <= 40:
		return SizeLarge
	default:
		return SizeHuge
	}
}

// DefaultItemSize is assumed when a definition carries no size property.
const DefaultItemSize = 5

// ItemRecord is the canonical form of one extracted object.
type ItemRecord struct {
	ID          string         `json:"id" yaml:"id"`
	Name        string         `json:"name" yaml:"name"`
	Description string         `json:"description" yaml:"description"`
	ExamineText string         `json:"examineText,omitempty" yaml:"examineText,omitempty"`
	ReadText    string         `json:"readText,omitempty" yaml:"readText,omitempty"`
	Aliases     []string       `json:"aliases" yaml:"aliases"`
	Category    ItemCategory   `json:"category" yaml:"category"`
	Portable    bool           `json:"portable" yaml:"portable"`
	Weight      int            `json:"weight" yaml:"weight"`
	Size        SizeClass      `json:"size" yaml:"size"`
	Tags        []string       `json:"tags" yaml:"tags"`
	Properties  map[string]int `json:"properties,omitempty" yaml:"properties,omitempty"`
}

// MeleeCategory names one bucket of combat messages.
type MeleeCategory string

// Melee message categories in table order. A melee table's sub-blocks are
// zipped positionally against this sequence.
const (
	MeleeMiss        MeleeCategory = "miss"
	MeleeUnconscious MeleeCategory = "unconscious"
	MeleeKill        MeleeCategory = "kill"
	MeleeLightWound  MeleeCategory = "light_wound"
	MeleeSevereWound MeleeCategory = "severe_wound"
	MeleeStagger     MeleeCategory = "stagger"
	MeleeLoseWeapon  MeleeCategory = "lose_weapon"
)

// MeleeCategories is the fixed category sequence for message tables.
var MeleeCategories = []MeleeCategory{
	MeleeMiss, MeleeUnconscious, MeleeKill,
	MeleeLightWound, MeleeSevereWound, MeleeStagger, MeleeLoseWeapon,
}

// MeleeTable holds combat messages grouped by category. Categories with no
// source sub-block are present with empty slices, never missing.
type MeleeTable map[MeleeCategory][]string

// NewMeleeTable builds a table by zipping sub-blocks of messages against
// MeleeCategories. Excess blocks are discarded; missing trailing categories
// get empty message lists.
func NewMeleeTable(blocks [][]string) MeleeTable {
	table := make(MeleeTable, len(MeleeCategories))
	for i, cat := range MeleeCategories {
		if i < len(blocks) && blocks[i] != nil {
			table[cat] = blocks[i]
		} else {
			table[cat] = []string{}
		}
	}
	return table
}

// MonsterRecord is the canonical form of one extracted creature.
type MonsterRecord struct {
	ID               string         `json:"id" yaml:"id"`
	Name             string         `json:"name" yaml:"name"`
	Type             MonsterType    `json:"type" yaml:"type"`
	Description      string         `json:"description" yaml:"description"`
	ExamineText      string         `json:"examineText,omitempty" yaml:"examineText,omitempty"`
	Synonyms         []string       `json:"synonyms" yaml:"synonyms"`
	CombatStrength   *int           `json:"combatStrength,omitempty" yaml:"combatStrength,omitempty"`
	MeleeMessages    MeleeTable     `json:"meleeMessages,omitempty" yaml:"meleeMessages,omitempty"`
	MovementDemon    string         `json:"movementDemon,omitempty" yaml:"movementDemon,omitempty"`
	BehaviorFunction string         `json:"behaviorFunction,omitempty" yaml:"behaviorFunction,omitempty"`
	Tags             []string       `json:"tags" yaml:"tags"`
	Properties       map[string]int `json:"properties,omitempty" yaml:"properties,omitempty"`
}

// SceneRecord is the canonical form of one extracted room.
type SceneRecord struct {
	ID          string                `json:"id" yaml:"id"`
	Title       string                `json:"title" yaml:"title"`
	Description string                `json:"description" yaml:"description"`
	Exits       map[string]ExitRecord `json:"exits" yaml:"exits"`
	Region      Region                `json:"region" yaml:"region"`
	Lighting    string                `json:"lighting" yaml:"lighting"`
	Tags        []string              `json:"tags" yaml:"tags"`
}

// ContentSet is everything one extraction run produced, with scan statistics
// so callers can detect unexpected drop rates.
type ContentSet struct {
	Items    []*ItemRecord
	Monsters []*MonsterRecord
	Scenes   []*SceneRecord
	Stats    ScanStats
}

// ScanStats counts definitions seen versus records produced.
type ScanStats struct {
	ObjectsScanned   int
	RoomsScanned     int
	ItemsProduced    int
	MonstersProduced int
	ScenesProduced   int
}

// ItemIndex is the summary document listing all produced item ids grouped
// by category.
type ItemIndex struct {
	Items      []string            `json:"items" yaml:"items"`
	Total      int                 `json:"total" yaml:"total"`
	Categories map[string][]string `json:"categories" yaml:"categories"`
}

// MonsterIndex is the summary document for monsters, grouped by type.
type MonsterIndex struct {
	Monsters []string            `json:"monsters" yaml:"monsters"`
	Total    int                 `json:"total" yaml:"total"`
	Types    map[string][]string `json:"types" yaml:"types"`
}

// SceneIndex is the summary document for scenes, grouped by region.
type SceneIndex struct {
	Scenes  []string            `json:"scenes" yaml:"scenes"`
	Total   int                 `json:"total" yaml:"total"`
	Regions map[string][]string `json:"regions" yaml:"regions"`
}
