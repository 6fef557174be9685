// Package control resolves per-state property overrides against the live
// status of an interactive control.
//
// A control keeps one [PropertyStates] per stateful property (its title,
// its icon, its border color). Each holds an optional value for every
// [State]. [PropertyStates.ValueForStatus] picks the effective value for a
// [Status] using a fixed priority:
//
//	highlighted > disabled > selected > normal
//
// A tier only wins when its flag is set and its slot holds a value;
// otherwise resolution falls through to the next tier.
package control

import "fmt"

// State is a per-property override key.
type State int

const (
	// StateNormal is the default treatment.
	StateNormal State = iota
	// StateHighlighted is used while the control is pressed.
	StateHighlighted
	// StateDisabled is used while the control does not accept input.
	StateDisabled
	// StateSelected is used while the control is toggled on.
	StateSelected

	stateCount
)

// States lists every State in declaration order.
var States = [...]State{StateNormal, StateHighlighted, StateDisabled, StateSelected}

// String returns a human-readable representation of the state.
func (s State) String() string {
	switch s {
	case StateNormal:
		return "normal"
	case StateHighlighted:
		return "highlighted"
	case StateDisabled:
		return "disabled"
	case StateSelected:
		return "selected"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

func (s State) valid() bool {
	return s >= StateNormal && s < stateCount
}
