package adapter

import (
	"github.com/hpn/ai-text-polisher/internal/domain"
)

// ChatAdapter implements ProviderAdapter for OpenAI-compatible chat APIs.
// The variants differ only in how the API key is sent.
type ChatAdapter struct {
	id         domain.ProviderID
	authHeader string
	authPrefix string
}

// NewOpenAIAdapter returns the adapter for OpenAI, which is also the fallback
// for unknown providers.
func NewOpenAIAdapter() ChatAdapter {
	return ChatAdapter{id: domain.ProviderOpenAI, authHeader: "Authorization", authPrefix: "Bearer "}
}

// NewAzureAdapter returns the adapter for Azure OpenAI deployments.
func NewAzureAdapter() ChatAdapter {
	return ChatAdapter{id: domain.ProviderAzure, authHeader: "api-key"}
}

// NewDeepSeekAdapter returns the adapter for DeepSeek.
func NewDeepSeekAdapter() ChatAdapter {
	return ChatAdapter{id: domain.ProviderDeepSeek, authHeader: "Authorization", authPrefix: "Bearer "}
}

// Name returns the provider identifier.
func (a ChatAdapter) Name() domain.ProviderID {
	return a.id
}

// BuildRequest builds a single-turn chat completion request.
func (a ChatAdapter) BuildRequest(prompt, model string) any {
	return ChatRequest{
		Model:       model,
		Messages:    userMessages(prompt),
		Temperature: DefaultTemperature,
		MaxTokens:   DefaultMaxTokens,
	}
}

// ParseResponse reads choices[0].message.content.
func (a ChatAdapter) ParseResponse(body []byte) (string, error) {
	return extractText(a.id, body, "choices.0.message.content")
}

// Headers returns the auth header for this variant.
func (a ChatAdapter) Headers(apiKey string) map[string]string {
	return map[string]string{a.authHeader: a.authPrefix + apiKey}
}

// Endpoint returns baseURL unchanged.
func (a ChatAdapter) Endpoint(baseURL, _, _ string) string {
	return baseURL
}
