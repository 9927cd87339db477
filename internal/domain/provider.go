// Package domain contains the core business entities and value objects.
// These structs are framework-agnostic and represent the heart of the application.
package domain

import "strings"

// ProviderID identifies which vendor wire format a request uses.
type ProviderID string

const (
	ProviderOpenAI    ProviderID = "openai"
	ProviderAzure     ProviderID = "azure"
	ProviderAnthropic ProviderID = "anthropic"
	ProviderGemini    ProviderID = "gemini"
	ProviderDeepSeek  ProviderID = "deepseek"
)

// Provider describes a vendor preset offered to users when they pick a provider.
type Provider struct {
	// ID is the registry key for this provider.
	ID ProviderID `json:"id" mapstructure:"id"`

	// Name is the human-readable name of the provider.
	Name string `json:"name" mapstructure:"name"`

	// BaseURL is the endpoint suggested for this provider.
	BaseURL string `json:"base_url" mapstructure:"base_url"`

	// Model is the recommended model name.
	Model string `json:"model" mapstructure:"model"`
}

// IsValid checks if the provider has all required fields.
func (p *Provider) IsValid() bool {
	return p.ID != "" && p.Name != "" && p.BaseURL != ""
}

// ClientConfig is everything one request needs to reach a provider.
// It is built fresh for every request and never mutated afterwards.
type ClientConfig struct {
	// EndpointURL is the caller-supplied API URL (for gemini, the models base URL).
	EndpointURL string `json:"endpoint_url"`

	// APIKey authenticates against the provider.
	APIKey string `json:"-"`

	// ModelName is passed in the body, or in the path for gemini.
	ModelName string `json:"model_name"`

	// ProviderID selects the adapter. Unknown values fall back to openai.
	ProviderID ProviderID `json:"provider_id"`
}

// HasAPIKey reports whether a non-blank API key is configured.
func (c ClientConfig) HasAPIKey() bool {
	return strings.TrimSpace(c.APIKey) != ""
}
