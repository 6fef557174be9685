package showcase

import (
	"net/mail"
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/go-drift/spark/pkg/components/textfield"
	"github.com/go-drift/spark/pkg/render"
	"github.com/go-drift/spark/pkg/theme"
)

const maxFieldWidth = 36

// validator maps the text of a field to its intent and helper line.
type validator func(text string) (textfield.Intent, string)

type fieldEntry struct {
	label    string
	input    textinput.Model
	vm       *textfield.ViewModel
	view     *render.TextFieldView
	validate validator
}

type textFieldsPage struct {
	controls
	styles    styles
	fields    []*fieldEntry
	editing   bool
	submitted string
}

func newTextFieldsPage(env *Env) Page {
	th := env.Theme
	p := &textFieldsPage{styles: newStyles(th)}
	for _, spec := range []struct {
		label       string
		placeholder string
		limit       int
		validate    validator
	}{
		{"Email", "name@example.com", 64, validateEmail},
		{"Username", "at least 3 letters", 20, validateUsername},
		{"Invite code", "optional", 8, validateCode},
	} {
		input := textinput.New()
		input.CharLimit = spec.limit
		input.Prompt = ""
		vm := textfield.NewViewModel(th, textfield.IntentNeutral, spec.placeholder)
		e := &fieldEntry{
			label:    spec.label,
			input:    input,
			vm:       vm,
			view:     render.NewTextFieldView(vm, maxFieldWidth, th.Colors.Background),
			validate: spec.validate,
		}
		label := spec.label
		p.subs.Add(vm.Submitted().AddListener(func(text string) {
			p.submitted = label + ": " + text
		}))
		p.fields = append(p.fields, e)
	}
	p.controls = newControls(env, len(p.fields))
	return p
}

func validateEmail(text string) (textfield.Intent, string) {
	if text == "" {
		return textfield.IntentNeutral, ""
	}
	if _, err := mail.ParseAddress(text); err != nil {
		return textfield.IntentError, "not a valid address"
	}
	return textfield.IntentSuccess, "looks good"
}

func validateUsername(text string) (textfield.Intent, string) {
	switch {
	case text == "":
		return textfield.IntentNeutral, ""
	case strings.IndexFunc(text, func(r rune) bool { return !unicode.IsLetter(r) && !unicode.IsDigit(r) }) >= 0:
		return textfield.IntentError, "letters and digits only"
	case len(text) < 3:
		return textfield.IntentAlert, "too short"
	default:
		return textfield.IntentSuccess, ""
	}
}

func validateCode(text string) (textfield.Intent, string) {
	if text != "" && len(text) != 8 {
		return textfield.IntentAlert, "codes have 8 characters"
	}
	return textfield.IntentNeutral, ""
}

// CapturesText reports whether a field is being edited.
func (p *textFieldsPage) CapturesText() bool { return p.editing }

func (p *textFieldsPage) focused() *fieldEntry { return p.fields[p.focus.index] }

func (p *textFieldsPage) beginEditing() tea.Cmd {
	e := p.focused()
	if !e.vm.Status().IsEnabled {
		return nil
	}
	p.editing = true
	e.vm.SetFocused(true)
	return e.input.Focus()
}

func (p *textFieldsPage) endEditing() {
	e := p.focused()
	p.editing = false
	e.input.Blur()
	e.vm.SetFocused(false)
}

func (p *textFieldsPage) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if p.editing {
			return p.edit(msg)
		}
		if p.moveFocus(msg) {
			return nil
		}
		switch {
		case key.Matches(msg, p.env.Keys.Activate):
			return p.beginEditing()
		case key.Matches(msg, p.env.Keys.Disable):
			vm := p.focused().vm
			vm.SetEnabled(!vm.Status().IsEnabled)
		}
	case tea.MouseMsg:
		if !isPress(msg) {
			return nil
		}
		i := p.hit(msg)
		if i < 0 {
			return nil
		}
		if p.editing {
			p.endEditing()
		}
		p.focus.index = i
		return p.beginEditing()
	}
	return nil
}

func (p *textFieldsPage) edit(msg tea.KeyMsg) tea.Cmd {
	e := p.focused()
	switch msg.Type {
	case tea.KeyEnter:
		e.vm.Submit()
		p.endEditing()
		return nil
	case tea.KeyTab:
		p.endEditing()
		p.focus.next()
		return p.beginEditing()
	}
	var cmd tea.Cmd
	e.input, cmd = e.input.Update(msg)
	text := e.input.Value()
	e.vm.SetText(text)
	intent, helper := e.validate(text)
	e.vm.SetIntent(intent)
	e.vm.SetHelper(helper)
	return cmd
}

func (p *textFieldsPage) View(int) string {
	lines := []string{p.styles.sectionTitle("Validation")}
	for i, e := range p.fields {
		lines = append(lines,
			p.styles.marker(p.focus.is(i))+p.styles.label.Render(e.label),
			indent(p.mark(i, e.view.View()), 2),
		)
	}
	hint := "enter to edit, enter again to submit"
	if p.editing {
		hint = "editing " + p.focused().label + ", esc leaves the page"
	}
	lines = append(lines, "", p.styles.label.Render(hint))
	if p.submitted != "" {
		lines = append(lines, p.styles.label.Render("submitted "+p.submitted))
	}
	return column(lines...)
}

func (p *textFieldsPage) SetTheme(th *theme.Theme) {
	p.styles = newStyles(th)
	for _, e := range p.fields {
		e.vm.SetTheme(th)
		e.view.SetBackground(th.Colors.Background)
	}
}

func (p *textFieldsPage) Close() {
	p.subs.Dispose()
	for _, e := range p.fields {
		e.view.Close()
	}
}
