package model

import "slices"

// State tracks one submission through validation.
type State int

const (
	StateEditing State = iota + 1
	StateValidating
	StateRejected
	StatePersisted
)

var transitions = map[State][]State{
	StateEditing:    {StateValidating},
	StateValidating: {StateRejected, StatePersisted},
	StateRejected:   {StateEditing},
}

func (s State) String() string {
	switch s {
	case StateEditing:
		return "editing"
	case StateValidating:
		return "validating"
	case StateRejected:
		return "rejected"
	case StatePersisted:
		return "persisted"
	default:
		return "unknown"
	}
}

func (s State) CanTransition(next State) bool {
	return slices.Contains(transitions[s], next)
}
