package ui

import (
	"os"
	"sync"
	"time"

	"github.com/briandowns/spinner"
	"github.com/gen2brain/beeep"
)

// BadgeState is the short status indicator shown while and after an action runs.
type BadgeState string

const (
	BadgeIdle       BadgeState = ""
	BadgeProcessing BadgeState = "⏳"
	BadgeSuccess    BadgeState = "✓"
	BadgeError      BadgeState = "✕"
)

// Default times before a finished badge returns to idle.
const (
	DefaultClearAfterSuccess = 3 * time.Second
	DefaultClearAfterError   = 5 * time.Second
)

// AppName is the title used for desktop notifications.
const AppName = "AI Text Polisher"

// Notifier delivers desktop notifications.
type Notifier interface {
	Notify(title, message string) error
	Alert(title, message string) error
}

// DesktopNotifier sends notifications through the OS notification center.
type DesktopNotifier struct{}

// Notify shows an informational notification.
func (DesktopNotifier) Notify(title, message string) error {
	return beeep.Notify(title, message, "")
}

// Alert shows a notification with an alert sound.
func (DesktopNotifier) Alert(title, message string) error {
	return beeep.Alert(title, message, "")
}

// Status tracks the badge for the current action and mirrors every
// transition to an optional Notifier. It is safe for concurrent use.
type Status struct {
	mu       sync.Mutex
	state    BadgeState
	title    string
	timer    *time.Timer
	notifier Notifier

	clearAfterSuccess time.Duration
	clearAfterError   time.Duration
}

// StatusOption is a functional option for configuring Status.
type StatusOption func(*Status)

// WithNotifier sends desktop notifications on every transition.
func WithNotifier(n Notifier) StatusOption {
	return func(s *Status) {
		s.notifier = n
	}
}

// WithClearAfter sets how long success and error badges stay visible.
func WithClearAfter(success, failure time.Duration) StatusOption {
	return func(s *Status) {
		s.clearAfterSuccess = success
		s.clearAfterError = failure
	}
}

// NewStatus creates an idle Status.
func NewStatus(opts ...StatusOption) *Status {
	s := &Status{
		title:             AppName,
		clearAfterSuccess: DefaultClearAfterSuccess,
		clearAfterError:   DefaultClearAfterError,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Processing marks an action as in flight. A pending clear is cancelled.
func (s *Status) Processing(actionName string) {
	s.set(BadgeProcessing, "Processing...", 0)
	s.notify(false, `Processing with "`+actionName+`"...`)
}

// Success marks the action as done and schedules the badge to clear.
func (s *Status) Success(message string) {
	s.set(BadgeSuccess, "Success!", s.clearAfterSuccess)
	s.notify(false, message)
}

// Failure marks the action as failed and schedules the badge to clear.
func (s *Status) Failure(message string) {
	s.set(BadgeError, "Error", s.clearAfterError)
	s.notify(true, message)
}

// Current returns the badge and its tooltip title.
func (s *Status) Current() (BadgeState, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state, s.title
}

func (s *Status) set(state BadgeState, title string, clearAfter time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}

	s.state = state
	s.title = AppName + " - " + title

	if clearAfter <= 0 {
		return
	}

	var timer *time.Timer
	timer = time.AfterFunc(clearAfter, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		// A newer transition replaced this timer.
		if s.timer != timer {
			return
		}
		s.state = BadgeIdle
		s.title = AppName
		s.timer = nil
	})
	s.timer = timer
}

func (s *Status) notify(alert bool, message string) {
	if s.notifier == nil {
		return
	}
	if alert {
		_ = s.notifier.Alert(AppName, message)
		return
	}
	_ = s.notifier.Notify(AppName, message)
}

// StartSpinner shows a spinner with suffix on f until the returned stop
// function is called. Nothing is drawn when f is not a terminal.
func StartSpinner(f *os.File, suffix string) (stop func()) {
	sp := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriterFile(f))
	sp.Suffix = " " + suffix
	sp.Start()
	return sp.Stop
}
