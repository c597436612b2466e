package extractor

import "fmt"

// CollisionError reports two distinct legacy keys normalizing to the same
// canonical id. Silent merges would corrupt the record set, so normalization
// fails loudly instead.
type CollisionError struct {
	ID          string
	Key         string
	ExistingKey string
}

func (e *CollisionError) Error() string {
	return fmt.Sprintf("id collision: legacy keys %q and %q both normalize to %q", e.Key, e.ExistingKey, e.ID)
}

// AmbiguousDoorError reports a room pair claimed by more than one door
// declaration. The legacy data never exhibited this, so resolution refuses
// to pick a winner.
type AmbiguousDoorError struct {
	Room      string
	Direction string
	Target    string
	Doors     []string
}

func (e *AmbiguousDoorError) Error() string {
	return fmt.Sprintf("room %q exit %s to %q matches %d doors %v; cannot resolve",
		e.Room, e.Direction, e.Target, len(e.Doors), e.Doors)
}
