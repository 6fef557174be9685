package control

import "strings"

// Status is the live condition of a control. The flags are independent: a
// control can be highlighted and selected at the same time.
type Status struct {
	IsHighlighted bool
	IsEnabled     bool
	IsSelected    bool
}

// NewStatus returns the status of an enabled control at rest.
func NewStatus() Status {
	return Status{IsEnabled: true}
}

// IsDisabled is the inverse of IsEnabled.
func (s Status) IsDisabled() bool {
	return !s.IsEnabled
}

// WithHighlighted returns a copy with the highlighted flag set to v.
func (s Status) WithHighlighted(v bool) Status {
	s.IsHighlighted = v
	return s
}

// WithEnabled returns a copy with the enabled flag set to v.
func (s Status) WithEnabled(v bool) Status {
	s.IsEnabled = v
	return s
}

// WithSelected returns a copy with the selected flag set to v.
func (s Status) WithSelected(v bool) Status {
	s.IsSelected = v
	return s
}

// String lists the active flags, e.g. "highlighted|selected".
func (s Status) String() string {
	var parts []string
	if s.IsHighlighted {
		parts = append(parts, "highlighted")
	}
	if s.IsDisabled() {
		parts = append(parts, "disabled")
	}
	if s.IsSelected {
		parts = append(parts, "selected")
	}
	if len(parts) == 0 {
		return "normal"
	}
	return strings.Join(parts, "|")
}
