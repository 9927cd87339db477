// Package adapter normalizes the wire contracts of the supported AI providers.
// It uses the Adapter pattern to hide vendor-specific request bodies, auth headers,
// endpoint rules and response shapes behind a common interface.
package adapter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hpn/ai-text-polisher/internal/domain"
	"github.com/tidwall/gjson"
)

const (
	// DefaultTemperature is sent to providers that accept a sampling temperature.
	DefaultTemperature = 0.7

	// DefaultMaxTokens caps the length of every completion.
	DefaultMaxTokens = 2000
)

// ErrUnexpectedResponse is wrapped by every ParseResponse failure.
var ErrUnexpectedResponse = errors.New("unable to extract response from API")

// ProviderAdapter describes how to talk to one provider.
// Implementations are immutable and safe for concurrent use.
type ProviderAdapter interface {
	// Name returns the provider's identifier.
	Name() domain.ProviderID

	// BuildRequest returns the JSON-serializable request body for a prompt.
	// It performs no I/O.
	BuildRequest(prompt, model string) any

	// ParseResponse extracts the trimmed completion text from a success body.
	// Any unexpected shape yields an error wrapping ErrUnexpectedResponse.
	ParseResponse(body []byte) (string, error)

	// Headers returns the authentication headers for the API key.
	Headers(apiKey string) map[string]string

	// Endpoint resolves the final request URL.
	Endpoint(baseURL, apiKey, model string) string
}

// extractText reads a string at a gjson path without ever panicking on a
// malformed document. Blank or missing values are reported as ErrUnexpectedResponse.
func extractText(provider domain.ProviderID, body []byte, path string) (string, error) {
	if !gjson.ValidBytes(body) {
		return "", fmt.Errorf("%w: %s response is not valid JSON", ErrUnexpectedResponse, provider)
	}

	value := gjson.GetBytes(body, path)
	if value.Type != gjson.String {
		return "", fmt.Errorf("%w: %s response has no text at %q", ErrUnexpectedResponse, provider, path)
	}

	text := strings.TrimSpace(value.Str)
	if text == "" {
		return "", fmt.Errorf("%w: %s response text at %q is blank", ErrUnexpectedResponse, provider, path)
	}

	return text, nil
}
