package domain

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

// PromptPlaceholder is replaced by the selected text when a prompt is rendered.
const PromptPlaceholder = "{text}"

var (
	// ErrActionNotFound is returned when no action matches the requested ID.
	ErrActionNotFound = errors.New("action not found")

	// ErrInvalidAction is returned when an action is missing its name or prompt.
	ErrInvalidAction = errors.New("action requires a name and a prompt")
)

// Action is a named prompt template the user can run against selected text.
type Action struct {
	// ID uniquely identifies the action within the settings blob.
	ID string `json:"id" mapstructure:"id" yaml:"id"`

	// Name is shown in menus.
	Name string `json:"name" mapstructure:"name" yaml:"name"`

	// Prompt is the template; it should contain exactly one {text} placeholder.
	Prompt string `json:"prompt" mapstructure:"prompt" yaml:"prompt"`
}

// IsValid checks if the action has all required fields.
func (a *Action) IsValid() bool {
	return a.ID != "" && a.Name != "" && a.Prompt != ""
}

// HasPlaceholder reports whether the prompt references the selected text.
func (a *Action) HasPlaceholder() bool {
	return strings.Contains(a.Prompt, PromptPlaceholder)
}

// ActionSet is the ordered list of actions stored in the settings blob.
// Methods return a new set rather than mutating the receiver.
type ActionSet []Action

// DefaultActions returns the actions a fresh install starts with.
func DefaultActions() ActionSet {
	return ActionSet{
		{
			ID:     "polish",
			Name:   "Polish",
			Prompt: "Please polish and improve the following text, making it clearer and more professional while maintaining its original meaning:\n\n{text}",
		},
		{
			ID:     "grammar",
			Name:   "Fix Grammar",
			Prompt: "Please fix all grammar and spelling errors in the following text:\n\n{text}",
		},
		{
			ID:     "professional",
			Name:   "Make Professional",
			Prompt: "Please rewrite the following text in a professional tone:\n\n{text}",
		},
		{
			ID:     "simplify",
			Name:   "Simplify",
			Prompt: "Please simplify the following text to make it easier to understand:\n\n{text}",
		},
		{
			ID:     "summarize",
			Name:   "Summarize",
			Prompt: "Please provide a concise summary of the following text:\n\n{text}",
		},
	}
}

// Find returns the action with the given ID.
func (s ActionSet) Find(id string) (Action, bool) {
	for _, a := range s {
		if a.ID == id {
			return a, true
		}
	}
	return Action{}, false
}

// Add appends a new action with a freshly generated ID.
func (s ActionSet) Add(name, prompt string) (ActionSet, Action, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(prompt) == "" {
		return s, Action{}, ErrInvalidAction
	}

	action := Action{
		ID:     "action_" + uuid.NewString(),
		Name:   name,
		Prompt: prompt,
	}

	out := make(ActionSet, 0, len(s)+1)
	out = append(out, s...)
	out = append(out, action)
	return out, action, nil
}

// Update merges the non-empty fields of patch into the action with the given ID.
func (s ActionSet) Update(id string, patch Action) (ActionSet, Action, error) {
	out := make(ActionSet, len(s))
	copy(out, s)

	for i := range out {
		if out[i].ID != id {
			continue
		}
		if patch.Name != "" {
			out[i].Name = patch.Name
		}
		if patch.Prompt != "" {
			out[i].Prompt = patch.Prompt
		}
		return out, out[i], nil
	}

	return s, Action{}, ErrActionNotFound
}

// Delete removes the action with the given ID. Deleting an unknown ID is a no-op.
func (s ActionSet) Delete(id string) ActionSet {
	out := make(ActionSet, 0, len(s))
	for _, a := range s {
		if a.ID != id {
			out = append(out, a)
		}
	}
	return out
}
