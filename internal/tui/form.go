package tui

import (
	"strings"

	"custctl/internal/api"

	"github.com/charmbracelet/bubbles/textinput"
)

type formField struct {
	label    string
	value    string
	required bool
}

// customerForm is the staged add/edit form: one text input walked
// through the fields, enter committing each and submitting on the last.
type customerForm struct {
	index      int
	fields     []formField
	input      textinput.Model
	err        string
	submitting bool
}

func newCustomerForm(existing *api.Customer) customerForm {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "Customer name"
	ti.CharLimit = 96

	form := customerForm{
		fields: []formField{
			{label: "Customer name", required: true},
			{label: "Email", required: false},
			{label: "Phone", required: false},
		},
		input: ti,
	}
	if existing != nil {
		form.fields[0].value = existing.Name
		form.fields[1].value = existing.Email
		form.fields[2].value = existing.Phone
		form.input.SetValue(existing.Name)
	}
	return form
}

// commitField stores the input into the current field and advances.
// Returns true when the last field was committed and the form is ready
// to submit.
func (f *customerForm) commitField() bool {
	value := strings.TrimSpace(f.input.Value())
	field := &f.fields[f.index]
	if field.required && value == "" {
		f.err = "This field is required"
		return false
	}
	field.value = value
	f.err = ""
	if f.index >= len(f.fields)-1 {
		return true
	}
	f.index++
	next := f.fields[f.index]
	f.input.Placeholder = next.label
	f.input.SetValue(next.value)
	f.input.CursorEnd()
	return false
}

// previousField steps back one field, keeping whatever is typed.
func (f *customerForm) previousField() {
	if f.index == 0 {
		return
	}
	f.fields[f.index].value = strings.TrimSpace(f.input.Value())
	f.index--
	prev := f.fields[f.index]
	f.input.Placeholder = prev.label
	f.input.SetValue(prev.value)
	f.input.CursorEnd()
	f.err = ""
}

func (f *customerForm) draft() api.CustomerDraft {
	return api.CustomerDraft{
		Name:  f.fields[0].value,
		Email: f.fields[1].value,
		Phone: f.fields[2].value,
	}
}
