package entity

// SelectionState is either idle or waiting for the destination of a picked source cell.
type SelectionState struct {
	source   string
	awaiting bool
}

func Idle() SelectionState {
	return SelectionState{}
}

func AwaitingDestination(sourceID string) SelectionState {
	return SelectionState{source: sourceID, awaiting: true}
}

func (that SelectionState) IsIdle() bool {
	return !that.awaiting
}

// Source returns the picked source cell id, ok is false while idle.
func (that SelectionState) Source() (string, bool) {
	return that.source, that.awaiting
}

func (that SelectionState) String() string {
	if that.awaiting {
		return "awaiting:" + that.source
	}
	return "idle"
}
