// Package gamedata defines the engine-facing schema for extracted content
// and validates documents against it. The extractor round-trips every
// serialized record through this package before writing, so anything on
// disk is guaranteed loadable.
package gamedata

import "fmt"

// Direction is a canonical movement direction.
type Direction string

// Canonical directions, including the enter/exit pair mapped to in/out.
const (
	North     Direction = "north"
	South     Direction = "south"
	East      Direction = "east"
	West      Direction = "west"
	Northeast Direction = "northeast"
	Northwest Direction = "northwest"
	Southeast Direction = "southeast"
	Southwest Direction = "southwest"
	Up        Direction = "up"
	Down      Direction = "down"
	In        Direction = "in"
	Out       Direction = "out"
)

// Directions lists every canonical direction.
var Directions = []Direction{
	North, South, East, West,
	Northeast, Northwest, Southeast, Southwest,
	Up, Down, In, Out,
}

// IsCanonical reports whether d is one of the twelve canonical directions.
func (d Direction) IsCanonical() bool {
	for _, cd := range Directions {
		if d == cd {
			return true
		}
	}
	return false
}

// Item is the engine-facing form of an extracted object.
type Item struct {
	ID          string         `json:"id" yaml:"id"`
	Name        string         `json:"name" yaml:"name"`
	Description string         `json:"description" yaml:"description"`
	ExamineText string         `json:"examineText" yaml:"examineText"`
	ReadText    string         `json:"readText" yaml:"readText"`
	Aliases     []string       `json:"aliases" yaml:"aliases"`
	Category    string         `json:"category" yaml:"category"`
	Portable    bool           `json:"portable" yaml:"portable"`
	Weight      int            `json:"weight" yaml:"weight"`
	Size        string         `json:"size" yaml:"size"`
	Tags        []string       `json:"tags" yaml:"tags"`
	Properties  map[string]int `json:"properties" yaml:"properties"`
}

var validSizes = map[string]bool{
	"TINY": true, "SMALL": true, "MEDIUM": true, "LARGE": true, "HUGE": true,
}

var validCategories = map[string]bool{
	"TREASURE": true, "FOOD": true, "WEAPON": true,
	"CONTAINER": true, "LIGHT_SOURCE": true, "TOOL": true,
}

// Validate checks item invariants.
//
// Postcondition: Returns nil if valid, or an error describing the first violation.
func (it *Item) Validate() error {
	if it.ID == "" {
		return fmt.Errorf("item id must not be empty")
	}
	if it.Name == "" {
		return fmt.Errorf("item %q: name must not be empty", it.ID)
	}
	if !validCategories[it.Category] {
		return fmt.Errorf("item %q: unknown category %q", it.ID, it.Category)
	}
	if !validSizes[it.Size] {
		return fmt.Errorf("item %q: unknown size class %q", it.ID, it.Size)
	}
	if it.Weight < 0 {
		return fmt.Errorf("item %q: weight must not be negative, got %d", it.ID, it.Weight)
	}
	return nil
}

// Monster is the engine-facing form of an extracted creature.
type Monster struct {
	ID               string              `json:"id" yaml:"id"`
	Name             string              `json:"name" yaml:"name"`
	Type             string              `json:"type" yaml:"type"`
	Description      string              `json:"description" yaml:"description"`
	ExamineText      string              `json:"examineText" yaml:"examineText"`
	Synonyms         []string            `json:"synonyms" yaml:"synonyms"`
	CombatStrength   *int                `json:"combatStrength" yaml:"combatStrength"`
	MeleeMessages    map[string][]string `json:"meleeMessages" yaml:"meleeMessages"`
	MovementDemon    string              `json:"movementDemon" yaml:"movementDemon"`
	BehaviorFunction string              `json:"behaviorFunction" yaml:"behaviorFunction"`
	Tags             []string            `json:"tags" yaml:"tags"`
	Properties       map[string]int      `json:"properties" yaml:"properties"`
}

var validMonsterTypes = map[string]bool{
	"humanoid": true, "creature": true, "environmental": true,
}

var validMeleeCategories = map[string]bool{
	"miss": true, "unconscious": true, "kill": true, "light_wound": true,
	"severe_wound": true, "stagger": true, "lose_weapon": true,
}

// Validate checks monster invariants.
//
// Postcondition: Returns nil if valid, or an error describing the first violation.
func (m *Monster) Validate() error {
	if m.ID == "" {
		return fmt.Errorf("monster id must not be empty")
	}
	if m.Name == "" {
		return fmt.Errorf("monster %q: name must not be empty", m.ID)
	}
	if !validMonsterTypes[m.Type] {
		return fmt.Errorf("monster %q: unknown type %q", m.ID, m.Type)
	}
	for cat := range m.MeleeMessages {
		if !validMeleeCategories[cat] {
			return fmt.Errorf("monster %q: unknown melee category %q", m.ID, cat)
		}
	}
	return nil
}

// Exit is one resolved passage out of a scene.
type Exit struct {
	Kind           string `json:"kind" yaml:"kind"`
	To             string `json:"to" yaml:"to"`
	Condition      string `json:"condition" yaml:"condition"`
	Locked         bool   `json:"locked" yaml:"locked"`
	FailureMessage string `json:"failureMessage" yaml:"failureMessage"`
}

// Scene is the engine-facing form of an extracted room.
type Scene struct {
	ID          string          `json:"id" yaml:"id"`
	Title       string          `json:"title" yaml:"title"`
	Description string          `json:"description" yaml:"description"`
	Exits       map[string]Exit `json:"exits" yaml:"exits"`
	Region      string          `json:"region" yaml:"region"`
	Lighting    string          `json:"lighting" yaml:"lighting"`
	Tags        []string        `json:"tags" yaml:"tags"`
}

var validRegions = map[string]bool{
	"above_ground": true, "underground": true, "maze": true, "endgame": true,
}

var validLighting = map[string]bool{
	"daylight": true, "lit": true, "dark": true,
}

// Validate checks scene invariants. A blocked exit must have no target; any
// other exit must have one.
//
// Postcondition: Returns nil if valid, or an error describing the first violation.
func (s *Scene) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("scene id must not be empty")
	}
	if s.Title == "" {
		return fmt.Errorf("scene %q: title must not be empty", s.ID)
	}
	if s.Description == "" {
		return fmt.Errorf("scene %q: description must not be empty", s.ID)
	}
	if !validRegions[s.Region] {
		return fmt.Errorf("scene %q: unknown region %q", s.ID, s.Region)
	}
	if !validLighting[s.Lighting] {
		return fmt.Errorf("scene %q: unknown lighting %q", s.ID, s.Lighting)
	}
	for dir, exit := range s.Exits {
		if !Direction(dir).IsCanonical() {
			return fmt.Errorf("scene %q: unknown exit direction %q", s.ID, dir)
		}
		switch exit.Kind {
		case "blocked":
			if exit.To != "" {
				return fmt.Errorf("scene %q: blocked exit %q has target %q", s.ID, dir, exit.To)
			}
		case "plain", "conditional":
			if exit.To == "" {
				return fmt.Errorf("scene %q: exit %q has empty target", s.ID, dir)
			}
		default:
			return fmt.Errorf("scene %q: exit %q has unknown kind %q", s.ID, dir, exit.Kind)
		}
		if exit.Kind == "conditional" && exit.Condition == "" {
			return fmt.Errorf("scene %q: conditional exit %q has no condition", s.ID, dir)
		}
	}
	return nil
}
