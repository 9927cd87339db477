package ui

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingNotifier struct {
	mu     sync.Mutex
	notify []string
	alert  []string
}

func (r *recordingNotifier) Notify(_, message string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notify = append(r.notify, message)
	return nil
}

func (r *recordingNotifier) Alert(_, message string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.alert = append(r.alert, message)
	return nil
}

func TestStatus_Transitions(t *testing.T) {
	n := &recordingNotifier{}
	s := NewStatus(WithNotifier(n), WithClearAfter(20*time.Millisecond, 40*time.Millisecond))

	state, title := s.Current()
	assert.Equal(t, BadgeIdle, state)
	assert.Equal(t, AppName, title)

	s.Processing("Polish Text")
	state, title = s.Current()
	assert.Equal(t, BadgeProcessing, state)
	assert.Equal(t, AppName+" - Processing...", title)

	s.Success("Copied to clipboard")
	state, _ = s.Current()
	assert.Equal(t, BadgeSuccess, state)

	require.Eventually(t, func() bool {
		state, _ := s.Current()
		return state == BadgeIdle
	}, time.Second, 5*time.Millisecond)

	s.Failure("Invalid API key")
	state, title = s.Current()
	assert.Equal(t, BadgeError, state)
	assert.Equal(t, AppName+" - Error", title)

	require.Eventually(t, func() bool {
		state, title := s.Current()
		return state == BadgeIdle && title == AppName
	}, time.Second, 5*time.Millisecond)

	n.mu.Lock()
	defer n.mu.Unlock()
	assert.Equal(t, []string{`Processing with "Polish Text"...`, "Copied to clipboard"}, n.notify)
	assert.Equal(t, []string{"Invalid API key"}, n.alert)
}

func TestStatus_NewTransitionCancelsPendingClear(t *testing.T) {
	s := NewStatus(WithClearAfter(30*time.Millisecond, 30*time.Millisecond))

	s.Success("done")
	s.Processing("Simplify")

	time.Sleep(80 * time.Millisecond)
	state, _ := s.Current()
	assert.Equal(t, BadgeProcessing, state, "processing must not be cleared by an older timer")
}

func TestStatus_WithoutNotifier(t *testing.T) {
	s := NewStatus()
	assert.NotPanics(t, func() {
		s.Processing("Polish Text")
		s.Failure("boom")
	})
}

func TestConsoleOutput(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	prev := Output
	Output = &buf
	t.Cleanup(func() { Output = prev })

	PrintProcessing("Polish Text", "openai")
	PrintSuccess("Copied to clipboard")
	PrintError("rate_limit", "Rate limit exceeded. Please try again later.")
	PrintRequest("POST", "/v1/process", 200, 1500*time.Millisecond, "polish")

	out := buf.String()
	assert.Contains(t, out, `Processing with "Polish Text" via openai`)
	assert.Contains(t, out, " ✓  Copied to clipboard")
	assert.Contains(t, out, "[rate_limit] Rate limit exceeded.")
	assert.Contains(t, out, " POST ")
	assert.Contains(t, out, " 200 ")
	assert.Contains(t, out, "1500ms")
	assert.Contains(t, out, "action:polish")
	assert.Equal(t, 4, strings.Count(out, "\n"))
}

func TestTruncatePath(t *testing.T) {
	assert.Equal(t, "/health", truncatePath("/health", 20))
	assert.Equal(t, "/v1/a-very-long-p...", truncatePath("/v1/a-very-long-path-name", 20))
}
