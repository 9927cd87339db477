package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultActions(t *testing.T) {
	actions := DefaultActions()
	require.Len(t, actions, 5)

	for _, a := range actions {
		assert.True(t, a.IsValid(), "action %q should be valid", a.ID)
		assert.True(t, a.HasPlaceholder(), "action %q should reference {text}", a.ID)
	}

	_, ok := actions.Find("summarize")
	assert.True(t, ok)
}

func TestActionSet_Add(t *testing.T) {
	actions := DefaultActions()

	updated, added, err := actions.Add("Translate", "Translate to French:\n\n{text}")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(added.ID, "action_"))
	assert.Len(t, updated, len(actions)+1)
	assert.Len(t, actions, 5, "receiver must not be mutated")

	found, ok := updated.Find(added.ID)
	require.True(t, ok)
	assert.Equal(t, "Translate", found.Name)
}

func TestActionSet_AddRejectsEmptyFields(t *testing.T) {
	_, _, err := DefaultActions().Add("  ", "prompt {text}")
	assert.ErrorIs(t, err, ErrInvalidAction)

	_, _, err = DefaultActions().Add("Name", "")
	assert.ErrorIs(t, err, ErrInvalidAction)
}

func TestActionSet_Update(t *testing.T) {
	actions := DefaultActions()

	updated, action, err := actions.Update("grammar", Action{Name: "Grammar Check"})
	require.NoError(t, err)

	assert.Equal(t, "Grammar Check", action.Name)
	assert.Equal(t, actions[1].Prompt, action.Prompt, "empty patch fields keep old values")
	assert.Equal(t, "Fix Grammar", actions[1].Name, "receiver must not be mutated")

	found, _ := updated.Find("grammar")
	assert.Equal(t, "Grammar Check", found.Name)

	_, _, err = actions.Update("missing", Action{Name: "x"})
	assert.ErrorIs(t, err, ErrActionNotFound)
}

func TestActionSet_Delete(t *testing.T) {
	actions := DefaultActions()

	updated := actions.Delete("polish")
	assert.Len(t, updated, 4)
	_, ok := updated.Find("polish")
	assert.False(t, ok)

	assert.Len(t, updated.Delete("missing"), 4)
}

func TestClientConfig_HasAPIKey(t *testing.T) {
	assert.False(t, ClientConfig{}.HasAPIKey())
	assert.False(t, ClientConfig{APIKey: "   "}.HasAPIKey())
	assert.True(t, ClientConfig{APIKey: "sk-test"}.HasAPIKey())
}
