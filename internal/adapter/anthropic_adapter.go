package adapter

import (
	"github.com/hpn/ai-text-polisher/internal/domain"
)

// AnthropicVersion is the API version header value sent with every request.
const AnthropicVersion = "2023-06-01"

// AnthropicAdapter implements ProviderAdapter for the Anthropic Messages API.
type AnthropicAdapter struct{}

// NewAnthropicAdapter returns the Anthropic adapter.
func NewAnthropicAdapter() AnthropicAdapter {
	return AnthropicAdapter{}
}

// Name returns the provider identifier.
func (AnthropicAdapter) Name() domain.ProviderID {
	return domain.ProviderAnthropic
}

// BuildRequest builds a Messages API request without a system prompt.
func (AnthropicAdapter) BuildRequest(prompt, model string) any {
	return AnthropicRequest{
		Model:     model,
		MaxTokens: DefaultMaxTokens,
		Messages:  userMessages(prompt),
	}
}

// ParseResponse reads content[0].text.
func (AnthropicAdapter) ParseResponse(body []byte) (string, error) {
	return extractText(domain.ProviderAnthropic, body, "content.0.text")
}

// Headers returns x-api-key and the pinned anthropic-version.
func (AnthropicAdapter) Headers(apiKey string) map[string]string {
	return map[string]string{
		"x-api-key":         apiKey,
		"anthropic-version": AnthropicVersion,
	}
}

// Endpoint returns baseURL unchanged.
func (AnthropicAdapter) Endpoint(baseURL, _, _ string) string {
	return baseURL
}
