package shell

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/facturo/facturo/internal/adapters/outbound/tui"
)

// formAction is what a keystroke did to a dialog form.
type formAction int

const (
	formContinue formAction = iota
	formSubmit
	formCancel
)

type formField struct {
	key   string
	label string
	input textinput.Model
}

func newField(key, label, value, placeholder string) formField {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 128
	ti.SetValue(value)
	return formField{key: key, label: label, input: ti}
}

// form is the shared plumbing for the editor dialogs: an ordered field
// list, one focused input, and validation errors keyed like the draft
// validators key them.
type form struct {
	title  string
	fields []formField
	focus  int
	errors map[string]string
	saving bool
}

func newForm(title string, fields ...formField) *form {
	f := &form{title: title, fields: fields}
	if len(f.fields) > 0 {
		f.fields[0].input.Focus()
	}
	return f
}

func (f *form) value(key string) string {
	for i := range f.fields {
		if f.fields[i].key == key {
			return strings.TrimSpace(f.fields[i].input.Value())
		}
	}
	return ""
}

func (f *form) focusField(idx int) tea.Cmd {
	if len(f.fields) == 0 {
		return nil
	}
	if idx < 0 {
		idx = len(f.fields) - 1
	}
	if idx >= len(f.fields) {
		idx = 0
	}
	f.fields[f.focus].input.Blur()
	f.focus = idx
	return f.fields[f.focus].input.Focus()
}

// handleKey advances focus, feeds the focused input, and reports
// whether the form was submitted or cancelled. Enter moves to the next
// field and submits from the last one; ctrl+s submits from anywhere.
func (f *form) handleKey(msg tea.KeyMsg) (formAction, tea.Cmd) {
	if f.saving {
		return formContinue, nil
	}
	switch msg.Type {
	case tea.KeyEsc:
		return formCancel, nil
	case tea.KeyCtrlS:
		return formSubmit, nil
	case tea.KeyTab, tea.KeyDown:
		return formContinue, f.focusField(f.focus + 1)
	case tea.KeyShiftTab, tea.KeyUp:
		return formContinue, f.focusField(f.focus - 1)
	case tea.KeyEnter:
		if f.focus == len(f.fields)-1 {
			return formSubmit, nil
		}
		return formContinue, f.focusField(f.focus + 1)
	}
	var cmd tea.Cmd
	f.fields[f.focus].input, cmd = f.fields[f.focus].input.Update(msg)
	return formContinue, cmd
}

func (f *form) view() string {
	var b strings.Builder
	b.WriteString("  " + tui.RenderDialogTitle(f.title) + "\n\n")
	for i := range f.fields {
		field := &f.fields[i]
		b.WriteString("  " + tui.RenderFieldLabel(field.label, i == f.focus) + "\n")
		b.WriteString("  " + field.input.View() + "\n")
		if problem, ok := f.errors[field.key]; ok {
			b.WriteString("  " + tui.RenderFieldError(problem) + "\n")
		}
		b.WriteString("\n")
	}
	if f.saving {
		b.WriteString("  " + tui.RenderSaving() + "\n")
	}
	return b.String()
}
