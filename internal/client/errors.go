package client

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/hpn/ai-text-polisher/internal/adapter"
	"github.com/tidwall/gjson"
)

// ErrorKind classifies a failed request for user-facing messaging.
type ErrorKind string

const (
	KindMissingAPIKey ErrorKind = "missing_api_key"
	KindNetwork       ErrorKind = "network"
	KindAuth          ErrorKind = "auth"
	KindRateLimit     ErrorKind = "rate_limit"
	KindParse         ErrorKind = "parse"
	KindUnclassified  ErrorKind = "unclassified"
)

// Fixed messages for the kinds that discard provider detail.
const (
	MsgMissingAPIKey = "API key is not configured"
	MsgNetwork       = "Network error: unable to reach the AI service"
	MsgInvalidAPIKey = "Invalid API key"
	MsgRateLimited   = "Rate limit exceeded. Please try again later."
)

// maxErrorTextLen bounds how much of a non-JSON error body is surfaced.
const maxErrorTextLen = 200

// Error is the single failure type returned by ProcessText.
type Error struct {
	// Kind is the classification used for badges and notifications.
	Kind ErrorKind

	// StatusCode is the provider's HTTP status, or 0 if no response was received.
	StatusCode int

	// Message is safe to show to the user.
	Message string

	// Err is the underlying cause.
	Err error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the classification of err, or "" if err is not a classified error.
func KindOf(err error) ErrorKind {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return ""
}

// IsKind checks if err is a classified error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	return err != nil && KindOf(err) == kind
}

// statusError is a non-2xx response before classification.
type statusError struct {
	StatusCode int
	Message    string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("provider returned HTTP %d: %s", e.StatusCode, e.Message)
}

// Classify maps any failure from a request cycle onto an *Error.
// Already classified errors pass through unchanged. Classify(nil) is nil.
func Classify(err error) error {
	if err == nil {
		return nil
	}

	var ce *Error
	if errors.As(err, &ce) {
		return ce
	}

	var se *statusError
	if errors.As(err, &se) {
		switch se.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return &Error{Kind: KindAuth, StatusCode: se.StatusCode, Message: MsgInvalidAPIKey, Err: err}
		case http.StatusTooManyRequests:
			return &Error{Kind: KindRateLimit, StatusCode: se.StatusCode, Message: MsgRateLimited, Err: err}
		default:
			return &Error{Kind: KindUnclassified, StatusCode: se.StatusCode, Message: se.Message, Err: err}
		}
	}

	if errors.Is(err, adapter.ErrUnexpectedResponse) {
		return &Error{Kind: KindParse, Message: err.Error(), Err: err}
	}

	if isTransportFailure(err) {
		return &Error{Kind: KindNetwork, Message: MsgNetwork, Err: err}
	}

	return &Error{Kind: KindUnclassified, Message: err.Error(), Err: err}
}

// transportIndicators are substrings of failure descriptions that mean the
// request never got a response.
var transportIndicators = []string{
	"failed to fetch",
	"networkerror",
	"connection refused",
	"connection reset",
	"no such host",
	"network is unreachable",
	"tls handshake",
}

// isTransportFailure checks if err means the provider could not be reached.
func isTransportFailure(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Op != "parse" {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	msg := strings.ToLower(err.Error())
	for _, indicator := range transportIndicators {
		if strings.Contains(msg, indicator) {
			return true
		}
	}
	return false
}

// extractErrorMessage finds the most readable message in an error response.
// Priority: JSON error.message, message, stringified error; then the raw body
// truncated and prefixed with the status; then the status line built from the
// server's reason phrase. It never fails.
func extractErrorMessage(status int, statusText string, body []byte, readErr error) string {
	statusLine := formatStatusLine(status, statusText)
	if readErr != nil {
		return statusLine
	}

	if gjson.ValidBytes(body) {
		doc := gjson.ParseBytes(body)
		if m := doc.Get("error.message"); m.Type == gjson.String && m.Str != "" {
			return m.Str
		}
		if m := doc.Get("message"); m.Type == gjson.String && m.Str != "" {
			return m.Str
		}
		if e := doc.Get("error"); e.Exists() && e.Type != gjson.Null {
			if e.Type == gjson.String {
				if e.Str != "" {
					return e.Str
				}
			} else {
				return e.Raw
			}
		}
		return statusLine
	}

	text := strings.TrimSpace(string(body))
	if text == "" {
		return statusLine
	}
	return fmt.Sprintf("HTTP %d: %s", status, truncate(text, maxErrorTextLen))
}

// formatStatusLine renders "HTTP <code>: <reason>". statusText is a response
// Status such as "404 Not Found"; the standard text is used when it has no reason.
func formatStatusLine(status int, statusText string) string {
	reason := strings.TrimSpace(strings.TrimPrefix(statusText, strconv.Itoa(status)))
	if reason == "" {
		reason = http.StatusText(status)
	}
	if reason == "" {
		return fmt.Sprintf("HTTP %d", status)
	}
	return fmt.Sprintf("HTTP %d: %s", status, reason)
}

// truncate shortens s to at most n characters without splitting a rune.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n])
}
