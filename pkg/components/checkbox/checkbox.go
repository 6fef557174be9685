// Package checkbox implements a tri-state checkbox.
package checkbox

import (
	"fmt"

	"github.com/go-drift/spark/pkg/components"
	"github.com/go-drift/spark/pkg/control"
	"github.com/go-drift/spark/pkg/core"
	"github.com/go-drift/spark/pkg/graphics"
	"github.com/go-drift/spark/pkg/theme"
)

// Selection is the checked state of a checkbox.
type Selection int

const (
	Unselected Selection = iota
	Selected
	Indeterminate
)

func (s Selection) String() string {
	switch s {
	case Unselected:
		return "unselected"
	case Selected:
		return "selected"
	case Indeterminate:
		return "indeterminate"
	default:
		return fmt.Sprintf("Selection(%d)", int(s))
	}
}

// Toggled is the selection after a tap: selected becomes unselected and
// everything else becomes selected.
func (s Selection) Toggled() Selection {
	if s == Selected {
		return Unselected
	}
	return Selected
}

// Colors are the colors of a checkbox box, its mark and its label.
type Colors struct {
	Tint   graphics.Color
	Icon   graphics.Color
	Border graphics.Color
	Text   graphics.Color
}

// GetColors returns the colors for intent and selection. A pressed box
// shows the pressed shade of the intent.
func GetColors(intent theme.Intent, selection Selection, pressed bool, th *theme.Theme) Colors {
	token := th.Colors.Token(intent)
	tint := token.Color
	if pressed {
		tint = token.Variant
	}
	c := Colors{Icon: token.OnColor, Text: th.Colors.OnSurface}
	if selection == Unselected {
		c.Tint = graphics.ColorTransparent
		c.Border = th.Colors.Outline
		if pressed {
			c.Border = tint
		}
		return c
	}
	c.Tint = tint
	c.Border = tint
	return c
}

// Glyph is the mark drawn inside the box.
func (s Selection) Glyph() string {
	switch s {
	case Selected:
		return "✓"
	case Indeterminate:
		return "−"
	default:
		return " "
	}
}

// ViewModel holds a checkbox's state.
type ViewModel struct {
	th     *theme.Theme
	intent theme.Intent
	status control.Status

	selection *core.Observable[Selection]
	text      *core.Observable[string]
	colors    *core.Observable[Colors]
	opacity   *core.Observable[float64]
}

// NewViewModel creates a checkbox. A nil theme uses the default light
// theme.
func NewViewModel(th *theme.Theme, intent theme.Intent, text string, selection Selection) *ViewModel {
	if th == nil {
		th = theme.DefaultLight()
	}
	status := control.NewStatus().WithSelected(selection != Unselected)
	return &ViewModel{
		th:        th,
		intent:    intent,
		status:    status,
		selection: core.NewObservable(selection),
		text:      core.NewObservable(text),
		colors:    core.NewObservable(GetColors(intent, selection, false, th)),
		opacity:   core.NewObservable(1.0),
	}
}

// Selection publishes the selection.
func (vm *ViewModel) Selection() *core.Observable[Selection] { return vm.selection }

// Text publishes the label.
func (vm *ViewModel) Text() *core.Observable[string] { return vm.text }

// Colors publishes the colors for the selection and pressed flag.
func (vm *ViewModel) Colors() *core.Observable[Colors] { return vm.colors }

// Opacity publishes 1, or the disabled dim.
func (vm *ViewModel) Opacity() *core.Observable[float64] { return vm.opacity }

// Status returns the live control status.
func (vm *ViewModel) Status() control.Status { return vm.status }

// Toggle flips the selection of an enabled checkbox.
func (vm *ViewModel) Toggle() {
	if !vm.status.IsEnabled {
		return
	}
	vm.SetSelection(vm.selection.Value().Toggled())
}

// SetSelection sets the selection.
func (vm *ViewModel) SetSelection(selection Selection) {
	vm.status = vm.status.WithSelected(selection != Unselected)
	vm.selection.Set(selection)
	vm.updateColors()
}

// SetText changes the label.
func (vm *ViewModel) SetText(text string) {
	vm.text.Set(text)
}

// SetPressed updates the highlighted flag of an enabled checkbox.
func (vm *ViewModel) SetPressed(pressed bool) {
	if pressed && !vm.status.IsEnabled {
		return
	}
	vm.status = vm.status.WithHighlighted(pressed)
	vm.updateColors()
}

// SetEnabled enables or disables the checkbox.
func (vm *ViewModel) SetEnabled(enabled bool) {
	vm.status = vm.status.WithEnabled(enabled)
	if !enabled {
		vm.status = vm.status.WithHighlighted(false)
	}
	vm.opacity.Set(components.EnabledOpacity(enabled, vm.th))
	vm.updateColors()
}

// SetIntent changes the color intent.
func (vm *ViewModel) SetIntent(intent theme.Intent) {
	vm.intent = intent
	vm.updateColors()
}

// SetTheme republishes the colors from th.
func (vm *ViewModel) SetTheme(th *theme.Theme) {
	vm.th = th
	vm.opacity.Set(components.EnabledOpacity(vm.status.IsEnabled, th))
	vm.updateColors()
}

func (vm *ViewModel) updateColors() {
	vm.colors.Set(GetColors(vm.intent, vm.selection.Value(), vm.status.IsHighlighted, vm.th))
}
