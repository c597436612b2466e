package extractor

import "strings"

// ItemCategory is the semantic category assigned to an item.
type ItemCategory string

const (
	CategoryTreasure    ItemCategory = "TREASURE"
	CategoryFood        ItemCategory = "FOOD"
	CategoryWeapon      ItemCategory = "WEAPON"
	CategoryContainer   ItemCategory = "CONTAINER"
	CategoryLightSource ItemCategory = "LIGHT_SOURCE"
	CategoryTool        ItemCategory = "TOOL"
)

// MonsterType is the archetype assigned to a monster.
type MonsterType string

const (
	TypeHumanoid      MonsterType = "humanoid"
	TypeCreature      MonsterType = "creature"
	TypeEnvironmental MonsterType = "environmental"
)

// Region is the map region a scene belongs to.
type Region string

const (
	RegionAboveGround Region = "above_ground"
	RegionUnderground Region = "underground"
	RegionMaze        Region = "maze"
	RegionEndgame     Region = "endgame"
)

// ItemFacts is the classifier's view of one parsed object: its resolved
// attributes plus the raw text the keyword fallbacks search.
type ItemFacts struct {
	Attrs       *AttributeSet
	Names       []string
	Adjectives  []string
	Description string
}

// searchText joins names, adjectives, and description lowercased for
// keyword matching.
func (f ItemFacts) searchText() string {
	parts := make([]string, 0, len(f.Names)+len(f.Adjectives)+1)
	parts = append(parts, f.Names...)
	parts = append(parts, f.Adjectives...)
	parts = append(parts, f.Description)
	return strings.ToLower(strings.Join(parts, " "))
}

// ItemRule is one entry of the item precedence list. Rules are evaluated in
// slice order; the first match decides the category. Keyword-heuristic
// rules sit after every flag-based rule, so they only decide when no
// structural rule matched.
type ItemRule struct {
	Name     string
	Category ItemCategory
	Matches  func(f ItemFacts) bool
}

// ItemRules builds the ordered item precedence list over the given keyword
// lists. The order is part of the contract: an entity satisfying several
// rules gets the earliest one's category.
func ItemRules(cfg ClassifierConfig) []ItemRule {
	return []ItemRule{
		{
			Name:     "treasure-by-value",
			Category: CategoryTreasure,
			Matches: func(f ItemFacts) bool {
				v, okV := f.Attrs.Property(PropValue)
				cv, okC := f.Attrs.Property(PropCaseValue)
				return (okV && v > 0) || (okC && cv > 0)
			},
		},
		{
			Name:     "food-or-drink",
			Category: CategoryFood,
			Matches:  func(f ItemFacts) bool { return f.Attrs.HasAny(FlagFood, FlagDrink) },
		},
		{
			Name:     "weapon-flag",
			Category: CategoryWeapon,
			Matches:  func(f ItemFacts) bool { return f.Attrs.Has(FlagWeapon) },
		},
		{
			Name:     "container-or-openable",
			Category: CategoryContainer,
			Matches:  func(f ItemFacts) bool { return f.Attrs.HasAny(FlagContainer, FlagOpenable) },
		},
		{
			Name:     "light-source",
			Category: CategoryLightSource,
			Matches:  func(f ItemFacts) bool { return f.Attrs.Has(FlagLightSource) },
		},
		{
			Name:     "tool-flag",
			Category: CategoryTool,
			Matches:  func(f ItemFacts) bool { return f.Attrs.Has(FlagTool) },
		},
		{
			Name:     "treasure-flag",
			Category: CategoryTreasure,
			Matches:  func(f ItemFacts) bool { return f.Attrs.Has(FlagTreasure) },
		},
		{
			Name:     "treasure-keywords",
			Category: CategoryTreasure,
			Matches:  keywordMatcher(cfg.TreasureKeywords),
		},
		{
			Name:     "weapon-keywords",
			Category: CategoryWeapon,
			Matches:  keywordMatcher(cfg.WeaponKeywords),
		},
		{
			Name:     "container-keywords",
			Category: CategoryContainer,
			Matches:  keywordMatcher(cfg.ContainerKeywords),
		},
		{
			Name:     "consumable-keywords",
			Category: CategoryFood,
			Matches:  keywordMatcher(cfg.ConsumableKeywords),
		},
	}
}

func keywordMatcher(keywords []string) func(f ItemFacts) bool {
	return func(f ItemFacts) bool {
		text := f.searchText()
		for _, kw := range keywords {
			if strings.Contains(text, kw) {
				return true
			}
		}
		return false
	}
}

// ClassifyItem assigns exactly one category using the ordered rule list.
// The keyword fallbacks come after every structural rule, so they decide
// only when no flag or value pair did; the ultimate default is TOOL.
func ClassifyItem(f ItemFacts, rules []ItemRule) ItemCategory {
	for _, rule := range rules {
		if rule.Matches(f) {
			return rule.Category
		}
	}
	return CategoryTool
}

// ClassifyMonster assigns an archetype: explicit membership lists first,
// then combat capability (a melee table or strength means a fighting
// humanoid), then lurking-creature keywords, defaulting to creature.
func ClassifyMonster(id string, hasCombat bool, description string, cfg ClassifierConfig) MonsterType {
	for _, typ := range []MonsterType{TypeHumanoid, TypeCreature, TypeEnvironmental} {
		for _, m := range cfg.MonsterTypes[typ] {
			if m == id {
				return typ
			}
		}
	}
	if hasCombat {
		return TypeHumanoid
	}
	text := strings.ToLower(description)
	for _, kw := range cfg.EnvironmentalKeywords {
		if strings.Contains(text, kw) {
			return TypeEnvironmental
		}
	}
	return TypeCreature
}

// ClassifyRegion assigns a room's region from its legacy key: explicit
// membership lists first, then the maze prefix heuristic, defaulting to
// underground.
func ClassifyRegion(key string, cfg ClassifierConfig) Region {
	for _, region := range []Region{RegionAboveGround, RegionUnderground, RegionMaze, RegionEndgame} {
		for _, k := range cfg.Regions[region] {
			if k == key {
				return region
			}
		}
	}
	if strings.Contains(key, "MAZE") || strings.Contains(key, "MAZ") || strings.Contains(key, "DEAD") {
		return RegionMaze
	}
	return RegionUnderground
}

// ClassifierConfig holds the static keyword and membership lists the
// classifiers consult. Values are immutable for the duration of a run.
type ClassifierConfig struct {
	TreasureKeywords      []string
	WeaponKeywords        []string
	ContainerKeywords     []string
	ConsumableKeywords    []string
	EnvironmentalKeywords []string
	MonsterTypes          map[MonsterType][]string
	Regions               map[Region][]string
}

// DefaultClassifierConfig returns the lists derived from the original
// authored dataset.
func DefaultClassifierConfig() ClassifierConfig {
	return ClassifierConfig{
		TreasureKeywords: []string{
			"gold", "silver", "jewel", "diamond", "emerald", "ruby",
			"sapphire", "coin", "trophy", "treasure", "precious",
		},
		WeaponKeywords: []string{
			"sword", "knife", "dagger", "stiletto", "axe", "blade", "weapon",
		},
		ContainerKeywords: []string{
			"bag", "box", "case", "chest", "basket", "container", "sack",
		},
		ConsumableKeywords: []string{
			"food", "sandwich", "water", "wine", "drink", "eat",
		},
		EnvironmentalKeywords: []string{
			"dark", "lurk", "pitch black", "shadow",
		},
		MonsterTypes: map[MonsterType][]string{
			TypeHumanoid:      {"thief", "troll", "cyclops", "gnome_of_zurich", "guardian_of_zork"},
			TypeCreature:      {"ghost", "volcano_gnome"},
			TypeEnvironmental: {"grue", "vampire_bat"},
		},
		Regions: map[Region][]string{
			RegionAboveGround: {
				"WHOUS", "NHOUS", "SHOUS", "EHOUS", "FORE1", "FORE2", "FORE3",
				"PATH", "CLEAR", "BEACH", "RESER", "DAM",
			},
			RegionUnderground: {
				"LROOM", "KITCH", "ATTIC", "CELLA", "TWELL", "EGYPT", "SANDY",
				"ROCKY", "OROOM", "CAROU", "MTROL", "TREAS", "WINDM",
			},
			RegionMaze: {
				"MAZE1", "MAZE2", "MAZE3", "MAZE4", "MAZE5", "MAZE6", "MAZE7",
				"MAZE8", "MAZE9", "MAZ10", "MAZ11", "MAZ12", "MAZ13", "MAZ14",
				"MAZ15", "MGRAT", "DEAD1", "DEAD2", "DEAD3", "DEAD4",
			},
			RegionEndgame: {
				"MTREE", "FALLS", "MTOP", "DOME", "TORCH", "TEMP", "ALTAR",
				"FORE4", "VOLCA", "HBARR", "NCELL", "NIRVA",
			},
		},
	}
}
