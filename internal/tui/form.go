package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// formField describes one row of a credentials form.
type formField struct {
	label       string
	placeholder string
	charLimit   int
	secret      bool
}

// formInputs is a vertical stack of text inputs with a single focused row.
type formInputs struct {
	fields []formField
	inputs []textinput.Model
	focus  int
}

func newFormInputs(fields ...formField) formInputs {
	inputs := make([]textinput.Model, len(fields))
	for i, f := range fields {
		inputs[i] = textinput.New()
		inputs[i].Placeholder = f.placeholder
		inputs[i].Width = 40
		if f.charLimit > 0 {
			inputs[i].CharLimit = f.charLimit
		}
		if f.secret {
			inputs[i].EchoMode = textinput.EchoPassword
			inputs[i].EchoCharacter = '*'
		}
	}
	if len(inputs) > 0 {
		inputs[0].Focus()
	}
	return formInputs{fields: fields, inputs: inputs}
}

func (f *formInputs) value(i int) string {
	return f.inputs[i].Value()
}

func (f *formInputs) trimmed(i int) string {
	return strings.TrimSpace(f.inputs[i].Value())
}

func (f *formInputs) focusNext() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + 1) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f *formInputs) focusPrev() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus - 1 + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f *formInputs) reset() {
	for i := range f.inputs {
		f.inputs[i].SetValue("")
		f.inputs[i].Blur()
	}
	f.focus = 0
	f.inputs[f.focus].Focus()
}

// update forwards msg to the focused input.
func (f *formInputs) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

// view renders the form as a two-column table.
func (f *formInputs) view() string {
	labelWidth := len("Field")
	for _, field := range f.fields {
		if len(field.label) > labelWidth {
			labelWidth = len(field.label)
		}
	}

	var b strings.Builder
	b.WriteString(padRight("Field", labelWidth))
	b.WriteString(" │ Value\n")
	b.WriteString(strings.Repeat("─", labelWidth+1))
	b.WriteString("┼")
	b.WriteString(strings.Repeat("─", 44))
	b.WriteString("\n")

	for i, field := range f.fields {
		b.WriteString(padRight(field.label, labelWidth))
		b.WriteString(" │ [")
		b.WriteString(f.inputs[i].View())
		b.WriteString("]\n")
	}
	return b.String()
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
