package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"custctl/internal/api"
)

func TestFormRequiresName(t *testing.T) {
	f := newCustomerForm(nil)

	done := f.commitField()
	assert.False(t, done)
	assert.Equal(t, "This field is required", f.err)
	assert.Equal(t, 0, f.index, "a failed commit stays on the field")

	f.input.SetValue("  Carol  ")
	done = f.commitField()
	assert.False(t, done, "two optional fields remain")
	assert.Empty(t, f.err)
	assert.Equal(t, "Carol", f.fields[0].value, "values are trimmed on commit")
	assert.Equal(t, 1, f.index)
}

func TestFormWalksFieldsAndBuildsDraft(t *testing.T) {
	f := newCustomerForm(nil)

	f.input.SetValue("Carol")
	require.False(t, f.commitField())
	f.input.SetValue("carol@example.com")
	require.False(t, f.commitField())
	f.input.SetValue("555-0100")
	require.True(t, f.commitField(), "committing the last field finishes the form")

	draft := f.draft()
	assert.Equal(t, api.CustomerDraft{
		Name:  "Carol",
		Email: "carol@example.com",
		Phone: "555-0100",
	}, draft)
}

func TestFormOptionalFieldsMayBeEmpty(t *testing.T) {
	f := newCustomerForm(nil)

	f.input.SetValue("Carol")
	require.False(t, f.commitField())
	f.input.SetValue("")
	require.False(t, f.commitField(), "email is optional")
	f.input.SetValue("")
	require.True(t, f.commitField(), "phone is optional")

	assert.Equal(t, api.CustomerDraft{Name: "Carol"}, f.draft())
}

func TestFormPrefillsFromExistingCustomer(t *testing.T) {
	existing := &api.Customer{ID: "a", Name: "Alice", Email: "alice@example.com", Phone: "555-0101"}
	f := newCustomerForm(existing)

	assert.Equal(t, "Alice", f.input.Value())
	assert.Equal(t, "alice@example.com", f.fields[1].value)
	assert.Equal(t, "555-0101", f.fields[2].value)
}

func TestFormPreviousFieldKeepsTypedValue(t *testing.T) {
	f := newCustomerForm(nil)
	f.input.SetValue("Carol")
	require.False(t, f.commitField())

	f.input.SetValue("half-typed")
	f.previousField()
	assert.Equal(t, 0, f.index)
	assert.Equal(t, "Carol", f.input.Value())
	assert.Equal(t, "half-typed", f.fields[1].value, "stepping back keeps what was typed")

	// At the first field there is nowhere to go back to.
	f.previousField()
	assert.Equal(t, 0, f.index)
}
