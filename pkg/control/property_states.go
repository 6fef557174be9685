package control

type slot[T any] struct {
	value T
	set   bool
}

// PropertyStates stores up to one value per [State] for a single logical
// property. Slots are independent. The zero value is ready to use and has
// every slot unset.
type PropertyStates[T any] struct {
	slots [stateCount]slot[T]
}

// NewPropertyStates returns a PropertyStates with the normal slot set.
func NewPropertyStates[T any](normal T) *PropertyStates[T] {
	p := &PropertyStates[T]{}
	p.Set(StateNormal, normal)
	return p
}

// Set overwrites the slot for state. Unknown states are ignored.
func (p *PropertyStates[T]) Set(state State, value T) {
	if !state.valid() {
		return
	}
	p.slots[state] = slot[T]{value: value, set: true}
}

// SetValue overwrites the slot for state with *value, or clears it when
// value is nil.
func (p *PropertyStates[T]) SetValue(value *T, state State) {
	if value == nil {
		p.Clear(state)
		return
	}
	p.Set(state, *value)
}

// Clear unsets the slot for state.
func (p *PropertyStates[T]) Clear(state State) {
	if !state.valid() {
		return
	}
	p.slots[state] = slot[T]{}
}

// Value reads the slot for state directly.
func (p *PropertyStates[T]) Value(state State) (T, bool) {
	if !state.valid() {
		var zero T
		return zero, false
	}
	s := p.slots[state]
	return s.value, s.set
}

// ValueForStatus resolves the effective value for status. Priority is
// highlighted, then disabled, then selected; a tier applies only when its
// flag is set and its slot holds a value. Everything else falls back to
// the normal slot, which may itself be unset.
func (p *PropertyStates[T]) ValueForStatus(status Status) (T, bool) {
	if status.IsHighlighted && p.slots[StateHighlighted].set {
		return p.slots[StateHighlighted].value, true
	}
	if status.IsDisabled() && p.slots[StateDisabled].set {
		return p.slots[StateDisabled].value, true
	}
	if status.IsSelected && p.slots[StateSelected].set {
		return p.slots[StateSelected].value, true
	}
	return p.Value(StateNormal)
}

// Resolve is ValueForStatus with a fallback for the unset case.
func (p *PropertyStates[T]) Resolve(status Status, fallback T) T {
	if v, ok := p.ValueForStatus(status); ok {
		return v
	}
	return fallback
}
