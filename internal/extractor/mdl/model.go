package mdl

// EntityDefinition is one recognized object definition: the name-list
// header split from the body, with the body sliced into candidate
// attribute lines. Names is never empty; definitions without names are
// discarded by the scanner.
type EntityDefinition struct {
	Names       []string
	Adjectives  []string
	Description string
	BodyLines   []string
	RawText     string
}

// PrimaryName returns the first listed name.
func (d *EntityDefinition) PrimaryName() string { return d.Names[0] }

// InlineCExit is a conditional-exit form appearing directly as an exit
// target inside a room's exit list.
type InlineCExit struct {
	Flag        string
	Destination string
	Message     string
}

// RawExit is one unresolved direction entry of a room's exit list. Exactly
// one of Target, NoExit, or CExit describes the destination.
type RawExit struct {
	Direction string // legacy spelling, e.g. "NORTH"
	Target    string // legacy room key; empty for NoExit and CExit forms
	NoExit    bool
	NoExitMsg string
	CExit     *InlineCExit
}

// RoomDefinition is one recognized room definition before exit resolution.
type RoomDefinition struct {
	Key         string
	Description string
	Name        string
	Exits       []RawExit
	BodyLines   []string
	RawText     string
}

// CExit is a standalone conditional-exit declaration.
type CExit struct {
	Flag        string
	Destination string
	Message     string
}

// Door is a door declaration assembled from DOOR macros and door-flagged
// object definitions. ConnectedRooms holds the legacy keys of the two rooms
// the door joins; it is empty until a DOOR macro declares the connection.
type Door struct {
	Name           string
	Names          []string
	Description    string
	ConnectedRooms []string
	Locked         bool
	FailureMessage string
}

// Connects reports whether the door's declared pair contains both rooms.
func (d *Door) Connects(roomA, roomB string) bool {
	if len(d.ConnectedRooms) != 2 {
		return false
	}
	return contains(d.ConnectedRooms, roomA) && contains(d.ConnectedRooms, roomB)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
