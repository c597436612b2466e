package mdl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dirkkok101/zork/internal/extractor"
	"github.com/dirkkok101/zork/internal/extractor/mdl"
)

func slugNormalize(key string) (string, error) {
	return extractor.Slug(key), nil
}

func resolveRoom(t *testing.T, room *mdl.RoomDefinition, doors []mdl.Door, cexits []mdl.CExit) map[string]extractor.ExitRecord {
	t.Helper()
	r := mdl.NewExitResolver(mdl.DefaultTables(), doors, cexits)
	exits, err := r.Resolve(room, slugNormalize)
	require.NoError(t, err)
	return exits
}

func TestResolve_PlainExit(t *testing.T) {
	room := &mdl.RoomDefinition{
		Key:   "KITCH",
		Exits: []mdl.RawExit{{Direction: "WEST", Target: "LROOM"}},
	}
	exits := resolveRoom(t, room, nil, nil)
	assert.Equal(t, extractor.ExitRecord{Kind: extractor.ExitPlain, To: "lroom"}, exits["west"])
}

func TestResolve_DirectionSpellingsCanonicalized(t *testing.T) {
	room := &mdl.RoomDefinition{
		Key: "KITCH",
		Exits: []mdl.RawExit{
			{Direction: "ENTER", Target: "LROOM"},
			{Direction: "NE", Target: "ATTIC"},
		},
	}
	exits := resolveRoom(t, room, nil, nil)
	assert.Contains(t, exits, "in")
	assert.Contains(t, exits, "northeast")
}

func TestResolve_BlockedWithDeclaredMessage(t *testing.T) {
	room := &mdl.RoomDefinition{
		Key: "KITCH",
		Exits: []mdl.RawExit{
			{Direction: "DOWN", NoExit: true, NoExitMsg: "Only Santa Claus climbs down chimneys."},
		},
	}
	exits := resolveRoom(t, room, nil, nil)
	assert.Equal(t, extractor.ExitRecord{
		Kind:           extractor.ExitBlocked,
		FailureMessage: "Only Santa Claus climbs down chimneys.",
	}, exits["down"])
}

func TestResolve_BlockedFallbackChain(t *testing.T) {
	// Undeclared message falls back to the room-and-direction table, then
	// the generic refusal.
	room := &mdl.RoomDefinition{
		Key: "WHOUS",
		Exits: []mdl.RawExit{
			{Direction: "EAST", NoExit: true},
			{Direction: "UP", NoExit: true},
		},
	}
	exits := resolveRoom(t, room, nil, nil)
	assert.Equal(t, "The front door is boarded and you can't remove the boards.",
		exits["east"].FailureMessage)
	assert.Equal(t, mdl.DefaultBlockedMessage, exits["up"].FailureMessage)
}

func TestResolve_DoorConditional(t *testing.T) {
	doors := []mdl.Door{{
		Name:           "TRAP-DOOR",
		ConnectedRooms: []string{"LROOM", "CELLA"},
		FailureMessage: "The trap door is closed.",
	}}
	room := &mdl.RoomDefinition{
		Key:   "CELLA",
		Exits: []mdl.RawExit{{Direction: "UP", Target: "LROOM"}},
	}
	exits := resolveRoom(t, room, doors, nil)
	assert.Equal(t, extractor.ExitRecord{
		Kind:           extractor.ExitConditional,
		To:             "lroom",
		Condition:      "door_trap_door_open",
		FailureMessage: "The trap door is closed.",
	}, exits["up"])
}

func TestResolve_DoorMessageSynthesized(t *testing.T) {
	doors := []mdl.Door{{Name: "GRATE", ConnectedRooms: []string{"MGRAT", "CLEAR"}, Locked: true}}
	room := &mdl.RoomDefinition{
		Key:   "MGRAT",
		Exits: []mdl.RawExit{{Direction: "UP", Target: "CLEAR"}},
	}
	exits := resolveRoom(t, room, doors, nil)
	assert.Equal(t, "The grate is closed.", exits["up"].FailureMessage)
	assert.True(t, exits["up"].Locked)
}

func TestResolve_DoorBeatsInlineConditional(t *testing.T) {
	doors := []mdl.Door{{Name: "TRAP-DOOR", ConnectedRooms: []string{"LROOM", "CELLA"}}}
	room := &mdl.RoomDefinition{
		Key: "LROOM",
		Exits: []mdl.RawExit{{
			Direction: "DOWN",
			CExit:     &mdl.InlineCExit{Flag: "MAGIC-FLAG", Destination: "CELLA", Message: "Not yet."},
		}},
	}
	exits := resolveRoom(t, room, doors, nil)
	assert.Equal(t, "door_trap_door_open", exits["down"].Condition)
}

func TestResolve_InlineConditionalWithoutDoor(t *testing.T) {
	room := &mdl.RoomDefinition{
		Key: "LROOM",
		Exits: []mdl.RawExit{{
			Direction: "WEST",
			CExit:     &mdl.InlineCExit{Flag: "MAGIC-FLAG", Destination: "BLROO", Message: "The wall is solid rock."},
		}},
	}
	exits := resolveRoom(t, room, nil, nil)
	assert.Equal(t, extractor.ExitRecord{
		Kind:           extractor.ExitConditional,
		To:             "blroo",
		Condition:      "magic_flag",
		FailureMessage: "The wall is solid rock.",
	}, exits["west"])
}

func TestResolve_DeclaredConditionalByDestination(t *testing.T) {
	cexits := []mdl.CExit{{Flag: "LLD-FLAG", Destination: "LLD2", Message: "Some invisible force stops you."}}
	room := &mdl.RoomDefinition{
		Key:   "LLD1",
		Exits: []mdl.RawExit{{Direction: "SOUTH", Target: "LLD2"}},
	}
	exits := resolveRoom(t, room, nil, cexits)
	assert.Equal(t, extractor.ExitRecord{
		Kind:           extractor.ExitConditional,
		To:             "lld2",
		Condition:      "lld_flag",
		FailureMessage: "Some invisible force stops you.",
	}, exits["south"])
}

func TestResolve_AmbiguousDoorsRejected(t *testing.T) {
	doors := []mdl.Door{
		{Name: "FRONT-DOOR", ConnectedRooms: []string{"A", "B"}},
		{Name: "BACK-DOOR", ConnectedRooms: []string{"B", "A"}},
	}
	room := &mdl.RoomDefinition{
		Key:   "A",
		Exits: []mdl.RawExit{{Direction: "NORTH", Target: "B"}},
	}
	r := mdl.NewExitResolver(mdl.DefaultTables(), doors, nil)
	_, err := r.Resolve(room, slugNormalize)
	require.Error(t, err)

	var ambiguous *extractor.AmbiguousDoorError
	require.ErrorAs(t, err, &ambiguous)
	assert.Equal(t, "A", ambiguous.Room)
	assert.Equal(t, "north", ambiguous.Direction)
	assert.ElementsMatch(t, []string{"FRONT-DOOR", "BACK-DOOR"}, ambiguous.Doors)
}

func TestResolve_DuplicateDirectionKeepsLast(t *testing.T) {
	room := &mdl.RoomDefinition{
		Key: "KITCH",
		Exits: []mdl.RawExit{
			{Direction: "WEST", Target: "LROOM"},
			{Direction: "WEST", Target: "ATTIC"},
		},
	}
	exits := resolveRoom(t, room, nil, nil)
	require.Len(t, exits, 1)
	assert.Equal(t, "attic", exits["west"].To)
}

func TestParseCExits(t *testing.T) {
	text := `<CEXIT "LLD-FLAG" "LLD2" "Some invisible force stops you.">
<CEXIT "DOME-FLAG" "DOME">`
	cexits := mdl.ParseCExits(text)
	require.Len(t, cexits, 2)
	assert.Equal(t, mdl.CExit{
		Flag:        "LLD-FLAG",
		Destination: "LLD2",
		Message:     "Some invisible force stops you.",
	}, cexits[0])
	assert.Empty(t, cexits[1].Message)
}

func TestParseDoors(t *testing.T) {
	text := `<DOOR "TRAP-DOOR" "LROOM" "CELLA" "The trap door is closed.">`
	defs, _ := mdl.ScanObjects(`<OBJECT ["TRAP-DOOR" "DOOR" "TRAP"]
	["TRAP"]
	"trap door"
	<+ ,DOORBIT ,NDESCBIT>>`)

	doors := mdl.ParseDoors(text, defs, mdl.DefaultTables())
	require.Len(t, doors, 1)
	door := doors[0]
	assert.Equal(t, "TRAP-DOOR", door.Name)
	assert.Equal(t, []string{"TRAP-DOOR", "DOOR", "TRAP"}, door.Names)
	assert.Equal(t, "trap door", door.Description)
	assert.Equal(t, []string{"LROOM", "CELLA"}, door.ConnectedRooms)
	assert.Equal(t, "The trap door is closed.", door.FailureMessage)
	assert.False(t, door.Locked)
	assert.True(t, door.Connects("CELLA", "LROOM"))
	assert.False(t, door.Connects("LROOM", "KITCH"))
}

func TestParseDoors_LockedFlag(t *testing.T) {
	text := `<DOOR "GRATE" "MGRAT" "CLEAR">`
	defs, _ := mdl.ScanObjects(`<OBJECT ["GRATE" "GRATI"]
	"grating"
	<+ ,DOORBIT ,LOCKEDBIT>>`)

	doors := mdl.ParseDoors(text, defs, mdl.DefaultTables())
	require.Len(t, doors, 1)
	assert.True(t, doors[0].Locked)
}
