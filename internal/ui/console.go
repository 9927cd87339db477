// Package ui provides colorized console output for the AI Text Polisher:
// request lines, status badges, startup banners and desktop notifications.
package ui

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
)

// ══════════════════════════════════════════════════════════════════════════════
// COLOR DEFINITIONS
// ══════════════════════════════════════════════════════════════════════════════

var (
	// Badge colors
	successBadge    = color.New(color.BgGreen, color.FgBlack, color.Bold)
	processingBadge = color.New(color.BgYellow, color.FgBlack, color.Bold)
	warningBadge    = color.New(color.FgYellow, color.Bold)
	errorBadge      = color.New(color.BgRed, color.FgWhite, color.Bold)
	infoBadge       = color.New(color.FgCyan, color.Bold)
	debugBadge      = color.New(color.FgMagenta)

	// Text colors
	successText = color.New(color.FgGreen, color.Bold)
	warningText = color.New(color.FgYellow)
	errorText   = color.New(color.FgRed)
	mutedText   = color.New(color.FgHiBlack)
	accentText  = color.New(color.FgMagenta, color.Bold)
	neonBlue    = color.New(color.FgHiCyan, color.Bold)

	// Method colors
	methodPOST = color.New(color.BgHiMagenta, color.FgBlack, color.Bold)
	methodGET  = color.New(color.BgHiCyan, color.FgBlack, color.Bold)
)

// Output is where console helpers write. Results go to stdout, so status
// lines default to stderr to keep piped output clean.
var Output io.Writer = os.Stderr

// ══════════════════════════════════════════════════════════════════════════════
// STATUS BADGES
// ══════════════════════════════════════════════════════════════════════════════

// PrintProcessing announces that an action was sent to the provider.
// Format: [ ⏳ ] Processing with "Polish Text" via openai
func PrintProcessing(actionName, provider string) {
	processingBadge.Fprintf(Output, " %s ", BadgeProcessing)
	fmt.Fprint(Output, " Processing with ")
	accentText.Fprintf(Output, "%q", actionName)
	mutedText.Fprintf(Output, " via %s\n", provider)
}

// PrintSuccess reports a completed action.
// Format: [ ✓ ] message
func PrintSuccess(msg string) {
	successBadge.Fprintf(Output, " %s ", BadgeSuccess)
	fmt.Fprint(Output, " ")
	successText.Fprintln(Output, msg)
}

// PrintError reports a failed action with its error kind.
// Format: [ ✕ ] [rate_limit] message
func PrintError(kind, msg string) {
	errorBadge.Fprintf(Output, " %s ", BadgeError)
	fmt.Fprint(Output, " ")
	if kind != "" {
		warningBadge.Fprintf(Output, "[%s] ", kind)
	}
	errorText.Fprintln(Output, msg)
}

// ══════════════════════════════════════════════════════════════════════════════
// REQUEST LOGGING
// ══════════════════════════════════════════════════════════════════════════════

// PrintRequest logs a served request with styled output.
// Color-codes status, method, and latency for quick visual parsing.
func PrintRequest(method, path string, status int, latency time.Duration, actionID string) {
	mutedText.Fprintf(Output, "%s ", time.Now().Format("15:04:05"))

	printMethodBadge(method)
	fmt.Fprint(Output, " ")

	fmt.Fprintf(Output, "%-20s ", truncatePath(path, 20))

	printStatusBadge(status)
	fmt.Fprint(Output, " ")

	printLatency(latency)

	if actionID != "" {
		mutedText.Fprintf(Output, " action:%s", actionID)
	}

	fmt.Fprintln(Output)
}

// printMethodBadge prints the HTTP method with appropriate color.
func printMethodBadge(method string) {
	switch method {
	case "POST":
		methodPOST.Fprintf(Output, " %s ", method)
	case "GET":
		methodGET.Fprintf(Output, " %s ", method)
	default:
		debugBadge.Fprintf(Output, " %s ", method)
	}
}

// printStatusBadge prints the status code with appropriate color.
func printStatusBadge(status int) {
	switch {
	case status >= 200 && status < 300:
		successBadge.Fprintf(Output, " %d ", status)
	case status >= 300 && status < 400:
		infoBadge.Fprintf(Output, " %d ", status)
	case status >= 400 && status < 500:
		warningBadge.Fprintf(Output, " %d ", status)
	default:
		errorBadge.Fprintf(Output, " %d ", status)
	}
}

// printLatency prints latency with color gradient.
// AI calls are slow, so the thresholds are in seconds.
// Green: < 2s, Yellow: < 8s, Red: >= 8s
func printLatency(latency time.Duration) {
	ms := latency.Milliseconds()
	latencyStr := fmt.Sprintf("%5dms", ms)

	switch {
	case latency < 2*time.Second:
		successText.Fprint(Output, latencyStr)
	case latency < 8*time.Second:
		warningText.Fprint(Output, latencyStr)
	default:
		errorText.Fprint(Output, latencyStr)
	}
}

// truncatePath truncates a path to maxLen characters.
func truncatePath(path string, maxLen int) string {
	if len(path) <= maxLen {
		return path
	}
	return path[:maxLen-3] + "..."
}

// ══════════════════════════════════════════════════════════════════════════════
// STARTUP MESSAGES
// ══════════════════════════════════════════════════════════════════════════════

// PrintStartupInfo prints styled server startup information.
func PrintStartupInfo(host string, port int, provider, model string, keyConfigured bool, actions int) {
	fmt.Fprintln(Output)
	infoBadge.Fprint(Output, "[POLISHER]")
	fmt.Fprint(Output, " Server starting on ")
	neonBlue.Fprintf(Output, "http://%s:%d\n", host, port)

	infoBadge.Fprint(Output, "[POLISHER]")
	fmt.Fprint(Output, " Provider: ")
	accentText.Fprint(Output, provider)
	fmt.Fprint(Output, " | Model: ")
	accentText.Fprint(Output, model)
	fmt.Fprint(Output, " | API key: ")
	if keyConfigured {
		successText.Fprint(Output, "configured")
	} else {
		errorText.Fprint(Output, "missing")
	}
	fmt.Fprint(Output, " | Actions: ")
	successText.Fprintf(Output, "%d\n", actions)

	fmt.Fprintln(Output)
	printEndpoints()
}

// printEndpoints prints the available API endpoints.
func printEndpoints() {
	endpoints := []struct {
		method, path, desc string
	}{
		{"POST", "/v1/process", "Run an action on text"},
		{"POST", "/v1/ping", "Test the provider connection"},
		{"GET", "/v1/actions", "List configured actions"},
		{"GET", "/v1/providers", "List provider presets"},
		{"GET", "/health", "Health check"},
	}

	mutedText.Fprintln(Output, "  ┌───────────────────────────────────────────────────────┐")
	for _, e := range endpoints {
		mutedText.Fprint(Output, "  │ ")
		printMethodBadge(e.method)
		if e.method == "GET" {
			fmt.Fprint(Output, " ")
		}
		fmt.Fprintf(Output, " %-14s ", e.path)
		mutedText.Fprintf(Output, " %-30s", e.desc)
		mutedText.Fprintln(Output, "│")
	}
	mutedText.Fprintln(Output, "  └───────────────────────────────────────────────────────┘")
	fmt.Fprintln(Output)
}

// PrintShutdown prints a styled shutdown message.
func PrintShutdown() {
	fmt.Fprintln(Output)
	warningBadge.Fprint(Output, "[SHUTDOWN]")
	warningText.Fprintln(Output, " Graceful shutdown initiated...")
}

// PrintGoodbye prints a styled goodbye message.
func PrintGoodbye() {
	successBadge.Fprint(Output, " OK ")
	fmt.Fprint(Output, " ")
	successText.Fprintln(Output, "Server stopped. Goodbye!")
}
