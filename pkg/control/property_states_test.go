package control

import "testing"

// expected mirrors the resolution order with a plain lookup so every
// override/status combination can be checked.
func expected(overrides map[State]string, status Status) (string, bool) {
	type tier struct {
		active bool
		state  State
	}
	for _, t := range []tier{
		{status.IsHighlighted, StateHighlighted},
		{status.IsDisabled(), StateDisabled},
		{status.IsSelected, StateSelected},
	} {
		if v, ok := overrides[t.state]; t.active && ok {
			return v, true
		}
	}
	v, ok := overrides[StateNormal]
	return v, ok
}

func TestValueForStatus_AllCombinations(t *testing.T) {
	for mask := 0; mask < 1<<len(States); mask++ {
		overrides := map[State]string{}
		p := &PropertyStates[string]{}
		for i, state := range States {
			if mask&(1<<i) != 0 {
				overrides[state] = state.String()
				p.Set(state, state.String())
			}
		}

		for flags := 0; flags < 8; flags++ {
			status := Status{
				IsHighlighted: flags&1 != 0,
				IsEnabled:     flags&2 == 0,
				IsSelected:    flags&4 != 0,
			}
			wantV, wantOK := expected(overrides, status)
			gotV, gotOK := p.ValueForStatus(status)
			if gotV != wantV || gotOK != wantOK {
				t.Errorf("mask=%04b status=%s: got (%q, %v), want (%q, %v)",
					mask, status, gotV, gotOK, wantV, wantOK)
			}
		}
	}
}

func TestValueForStatus_FallsThroughUnsetTier(t *testing.T) {
	p := &PropertyStates[string]{}
	p.Set(StateNormal, "normal")
	p.Set(StateSelected, "selected")

	// Highlighted and disabled flags are set but have no overrides.
	status := Status{IsHighlighted: true, IsEnabled: false, IsSelected: true}
	if got, _ := p.ValueForStatus(status); got != "selected" {
		t.Errorf("got %q, want %q", got, "selected")
	}
}

func TestSet_SlotsAreIndependent(t *testing.T) {
	p := NewPropertyStates("n")
	p.Set(StateDisabled, "d")
	p.Set(StateSelected, "s")

	p.Set(StateHighlighted, "h1")
	p.Set(StateHighlighted, "h2")

	for state, want := range map[State]string{
		StateNormal:   "n",
		StateDisabled: "d",
		StateSelected: "s",
	} {
		if got, ok := p.Value(state); !ok || got != want {
			t.Errorf("Value(%s) = (%q, %v), want %q", state, got, ok, want)
		}
	}
	if got, _ := p.Value(StateHighlighted); got != "h2" {
		t.Errorf("Value(highlighted) = %q, want h2", got)
	}
}

func TestEmpty_ResolvesToUnset(t *testing.T) {
	p := &PropertyStates[int]{}
	for flags := 0; flags < 8; flags++ {
		status := Status{
			IsHighlighted: flags&1 != 0,
			IsEnabled:     flags&2 == 0,
			IsSelected:    flags&4 != 0,
		}
		if v, ok := p.ValueForStatus(status); ok {
			t.Errorf("status %s: got (%d, true), want unset", status, v)
		}
		if got := p.Resolve(status, -1); got != -1 {
			t.Errorf("Resolve(%s) = %d, want fallback -1", status, got)
		}
	}
}

func TestSetValue_NilClears(t *testing.T) {
	p := &PropertyStates[string]{}
	v := "x"
	p.SetValue(&v, StateSelected)
	if got, ok := p.Value(StateSelected); !ok || got != "x" {
		t.Fatalf("Value(selected) = (%q, %v)", got, ok)
	}

	p.SetValue(nil, StateSelected)
	if _, ok := p.Value(StateSelected); ok {
		t.Error("expected selected slot to be cleared")
	}
}

func TestDisabledBeatsSelected(t *testing.T) {
	p := &PropertyStates[string]{}
	p.Set(StateNormal, "A")
	p.Set(StateDisabled, "B")

	status := Status{IsHighlighted: false, IsEnabled: false, IsSelected: true}
	if got, _ := p.ValueForStatus(status); got != "B" {
		t.Errorf("got %q, want B", got)
	}
}

func TestUnknownState(t *testing.T) {
	p := &PropertyStates[string]{}
	p.Set(State(42), "ignored")
	if _, ok := p.Value(State(42)); ok {
		t.Error("expected unknown state to be unset")
	}
	if got := State(42).String(); got != "State(42)" {
		t.Errorf("String() = %q", got)
	}
}

func TestStatusString(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{NewStatus(), "normal"},
		{NewStatus().WithHighlighted(true).WithSelected(true), "highlighted|selected"},
		{NewStatus().WithEnabled(false), "disabled"},
	}
	for _, tt := range tests {
		if got := tt.status.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
