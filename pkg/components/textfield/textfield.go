// Package textfield implements the text field's state: intent colored
// borders that react to focus and enablement, placeholder and helper text.
package textfield

import (
	"fmt"

	"github.com/go-drift/spark/pkg/components"
	"github.com/go-drift/spark/pkg/control"
	"github.com/go-drift/spark/pkg/core"
	"github.com/go-drift/spark/pkg/graphics"
	"github.com/go-drift/spark/pkg/theme"
)

// Intent is the validation state of a text field.
type Intent int

const (
	IntentNeutral Intent = iota
	IntentSuccess
	IntentAlert
	IntentError
)

func (i Intent) String() string {
	switch i {
	case IntentNeutral:
		return "neutral"
	case IntentSuccess:
		return "success"
	case IntentAlert:
		return "alert"
	case IntentError:
		return "error"
	default:
		return fmt.Sprintf("Intent(%d)", int(i))
	}
}

func (i Intent) token(th *theme.Theme) theme.ColorToken {
	switch i {
	case IntentSuccess:
		return th.Colors.Success
	case IntentAlert:
		return th.Colors.Alert
	case IntentError:
		return th.Colors.Error
	default:
		return th.Colors.Main
	}
}

// Colors are the colors of a text field that do not depend on focus.
type Colors struct {
	Text        graphics.Color
	Placeholder graphics.Color
	Helper      graphics.Color
	Background  graphics.Color
}

// GetColors returns the content colors for intent.
func GetColors(intent Intent, th *theme.Theme) Colors {
	c := Colors{
		Text:        th.Colors.OnSurface,
		Placeholder: th.Colors.OnSurface.WithAlpha(th.Dims.Dim3),
		Helper:      th.Colors.OnSurface.WithAlpha(th.Dims.Dim1),
		Background:  th.Colors.Surface,
	}
	if intent != IntentNeutral {
		c.Helper = intent.token(th).Color
	}
	return c
}

// BorderStates returns the per-state border colors. Highlighted is the
// focused state. A neutral field outlines in the outline color until
// focused; validation intents always outline in their own color.
func BorderStates(intent Intent, th *theme.Theme) *control.PropertyStates[graphics.Color] {
	token := intent.token(th)
	states := control.NewPropertyStates(token.Color)
	if intent == IntentNeutral {
		states.Set(control.StateNormal, th.Colors.Outline)
	}
	states.Set(control.StateHighlighted, token.Color)
	states.Set(control.StateDisabled, th.Colors.OnSurface.WithAlpha(th.Dims.Dim5))
	return states
}

// BorderWidthStates returns the per-state border widths: thicker while
// focused.
func BorderWidthStates(th *theme.Theme) *control.PropertyStates[float64] {
	states := control.NewPropertyStates(th.Border.Small)
	states.Set(control.StateHighlighted, th.Border.Medium)
	return states
}

// Border is the resolved outline.
type Border struct {
	Color  graphics.Color
	Width  float64
	Radius float64
}

// ViewModel holds a text field's state.
type ViewModel struct {
	th          *theme.Theme
	intent      Intent
	shape       components.Shape
	status      control.Status
	borderColor *control.PropertyStates[graphics.Color]
	borderWidth *control.PropertyStates[float64]

	text        *core.Observable[string]
	placeholder *core.Observable[string]
	helper      *core.Observable[string]
	colors      *core.Observable[Colors]
	border      *core.Observable[Border]
	opacity     *core.Observable[float64]
	submitted   *core.Signal[string]
}

// NewViewModel creates a text field. A nil theme uses the default light
// theme.
func NewViewModel(th *theme.Theme, intent Intent, placeholder string) *ViewModel {
	if th == nil {
		th = theme.DefaultLight()
	}
	vm := &ViewModel{
		th:          th,
		intent:      intent,
		shape:       components.ShapeRounded,
		status:      control.NewStatus(),
		text:        core.NewObservable(""),
		placeholder: core.NewObservable(placeholder),
		helper:      core.NewObservable(""),
		opacity:     core.NewObservable(1.0),
		submitted:   core.NewSignal[string](),
	}
	vm.borderColor = BorderStates(intent, th)
	vm.borderWidth = BorderWidthStates(th)
	vm.colors = core.NewObservable(GetColors(intent, th))
	vm.border = core.NewObservable(vm.resolveBorder())
	return vm
}

// Text publishes the content.
func (vm *ViewModel) Text() *core.Observable[string] { return vm.text }

// Placeholder publishes the text shown while empty.
func (vm *ViewModel) Placeholder() *core.Observable[string] { return vm.placeholder }

// Helper publishes the message under the field.
func (vm *ViewModel) Helper() *core.Observable[string] { return vm.helper }

// Colors publishes the colors for the validation intent.
func (vm *ViewModel) Colors() *core.Observable[Colors] { return vm.colors }

// Border publishes the border resolved for focus and enablement.
func (vm *ViewModel) Border() *core.Observable[Border] { return vm.border }

// Opacity publishes 1, or the disabled dim.
func (vm *ViewModel) Opacity() *core.Observable[float64] { return vm.opacity }

// Submitted emits the text when the user submits the field.
func (vm *ViewModel) Submitted() *core.Signal[string] { return vm.submitted }

// Status returns the live control status.
func (vm *ViewModel) Status() control.Status { return vm.status }

// Focused reports whether the field has focus.
func (vm *ViewModel) Focused() bool { return vm.status.IsHighlighted }

// SetText replaces the content of an enabled field.
func (vm *ViewModel) SetText(text string) {
	if !vm.status.IsEnabled {
		return
	}
	vm.text.Set(text)
}

// Submit emits the current text.
func (vm *ViewModel) Submit() {
	if vm.status.IsEnabled {
		vm.submitted.Emit(vm.text.Value())
	}
}

// SetPlaceholder changes the placeholder.
func (vm *ViewModel) SetPlaceholder(placeholder string) { vm.placeholder.Set(placeholder) }

// SetHelper changes the helper message.
func (vm *ViewModel) SetHelper(helper string) { vm.helper.Set(helper) }

// SetFocused moves focus in or out. Disabled fields cannot take focus.
func (vm *ViewModel) SetFocused(focused bool) {
	if focused && !vm.status.IsEnabled {
		return
	}
	vm.status = vm.status.WithHighlighted(focused)
	vm.border.Set(vm.resolveBorder())
}

// SetEnabled enables or disables the field. Disabling drops focus.
func (vm *ViewModel) SetEnabled(enabled bool) {
	vm.status = vm.status.WithEnabled(enabled)
	if !enabled {
		vm.status = vm.status.WithHighlighted(false)
	}
	vm.border.Set(vm.resolveBorder())
	vm.opacity.Set(components.EnabledOpacity(enabled, vm.th))
}

// SetIntent changes the validation intent.
func (vm *ViewModel) SetIntent(intent Intent) {
	vm.intent = intent
	vm.refresh()
}

// SetTheme republishes every themed value from th.
func (vm *ViewModel) SetTheme(th *theme.Theme) {
	vm.th = th
	vm.opacity.Set(components.EnabledOpacity(vm.status.IsEnabled, th))
	vm.refresh()
}

func (vm *ViewModel) refresh() {
	vm.borderColor = BorderStates(vm.intent, vm.th)
	vm.borderWidth = BorderWidthStates(vm.th)
	vm.colors.Set(GetColors(vm.intent, vm.th))
	vm.border.Set(vm.resolveBorder())
}

func (vm *ViewModel) resolveBorder() Border {
	return Border{
		Color:  vm.borderColor.Resolve(vm.status, vm.th.Colors.Outline),
		Width:  vm.borderWidth.Resolve(vm.status, vm.th.Border.Small),
		Radius: components.CornerRadius(vm.shape, vm.th),
	}
}
