package popover

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-drift/spark/pkg/theme"
)

func TestGetColors(t *testing.T) {
	th := theme.DefaultLight()
	for _, intent := range theme.Intents {
		c := GetColors(intent, th)
		if intent == theme.IntentSurface {
			assert.Equal(t, Colors{th.Colors.Surface, th.Colors.OnSurface}, c)
			continue
		}
		token := th.Colors.Token(intent)
		assert.Equal(t, Colors{token.Container, token.OnContainer}, c, "%s", intent)
	}
}

func TestPresentation(t *testing.T) {
	vm := NewViewModel(nil, theme.IntentMain, "Tip")
	var states []bool
	vm.Presented().AddListener(func(p bool) { states = append(states, p) })

	vm.Present()
	vm.TogglePresented()
	vm.TogglePresented()
	vm.Dismiss()

	assert.Equal(t, []bool{true, false, true, false}, states)
}

func TestSetTheme(t *testing.T) {
	vm := NewViewModel(nil, theme.IntentSurface, "")
	dark := theme.DefaultDark()
	vm.SetTheme(dark)
	assert.Equal(t, dark.Colors.Surface, vm.Colors().Value().Background)
	assert.Equal(t, GetSpacings(dark), vm.Spacings().Value())

	vm.SetShowArrow(false)
	assert.False(t, vm.ShowArrow().Value())
}
