package gamedata_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dirkkok101/zork/internal/gamedata"
)

func validItem() gamedata.Item {
	return gamedata.Item{
		ID:       "lamp",
		Name:     "lamp",
		Category: "LIGHT_SOURCE",
		Size:     "MEDIUM",
		Weight:   15,
	}
}

func validScene() gamedata.Scene {
	return gamedata.Scene{
		ID:          "west_of_house",
		Title:       "West of House",
		Description: "You are in an open field.",
		Region:      "above_ground",
		Lighting:    "daylight",
		Exits: map[string]gamedata.Exit{
			"north": {Kind: "plain", To: "north_of_house"},
		},
	}
}

func TestItemValidate(t *testing.T) {
	item := validItem()
	assert.NoError(t, item.Validate())

	item = validItem()
	item.ID = ""
	assert.Error(t, item.Validate())

	item = validItem()
	item.Name = ""
	assert.Error(t, item.Validate())

	item = validItem()
	item.Category = "GADGET"
	assert.Error(t, item.Validate())

	item = validItem()
	item.Size = "COLOSSAL"
	assert.Error(t, item.Validate())

	item = validItem()
	item.Weight = -1
	assert.Error(t, item.Validate())
}

func TestMonsterValidate(t *testing.T) {
	monster := gamedata.Monster{ID: "troll", Name: "troll", Type: "humanoid"}
	assert.NoError(t, monster.Validate())

	monster.Type = "robot"
	assert.Error(t, monster.Validate())

	monster.Type = "humanoid"
	monster.MeleeMessages = map[string][]string{"taunt": {"Ha!"}}
	assert.Error(t, monster.Validate())

	monster.MeleeMessages = map[string][]string{"miss": {"The troll swings and misses."}}
	assert.NoError(t, monster.Validate())
}

func TestSceneValidate(t *testing.T) {
	scene := validScene()
	assert.NoError(t, scene.Validate())

	scene = validScene()
	scene.Title = ""
	assert.Error(t, scene.Validate())

	scene = validScene()
	scene.Description = ""
	assert.Error(t, scene.Validate())

	scene = validScene()
	scene.Region = "orbit"
	assert.Error(t, scene.Validate())

	scene = validScene()
	scene.Lighting = "strobe"
	assert.Error(t, scene.Validate())
}

func TestSceneValidate_Exits(t *testing.T) {
	scene := validScene()
	scene.Exits["skyward"] = gamedata.Exit{Kind: "plain", To: "somewhere"}
	assert.Error(t, scene.Validate(), "non-canonical direction")

	scene = validScene()
	scene.Exits["south"] = gamedata.Exit{Kind: "blocked", To: "somewhere"}
	assert.Error(t, scene.Validate(), "blocked exit must have no target")

	scene = validScene()
	scene.Exits["south"] = gamedata.Exit{Kind: "plain"}
	assert.Error(t, scene.Validate(), "plain exit needs a target")

	scene = validScene()
	scene.Exits["south"] = gamedata.Exit{Kind: "conditional", To: "cellar"}
	assert.Error(t, scene.Validate(), "conditional exit needs a condition")

	scene = validScene()
	scene.Exits["south"] = gamedata.Exit{
		Kind: "conditional", To: "cellar", Condition: "door_trap_door_open",
	}
	assert.NoError(t, scene.Validate())

	scene = validScene()
	scene.Exits["south"] = gamedata.Exit{Kind: "teleport", To: "cellar"}
	assert.Error(t, scene.Validate(), "unknown kind")
}

func TestDirectionIsCanonical(t *testing.T) {
	for _, d := range gamedata.Directions {
		assert.True(t, d.IsCanonical())
	}
	assert.False(t, gamedata.Direction("launch").IsCanonical())
	assert.False(t, gamedata.Direction("NORTH").IsCanonical(), "canonical form is lowercase")
}
