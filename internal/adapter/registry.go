package adapter

import (
	"sort"

	"github.com/hpn/ai-text-polisher/internal/domain"
)

// registry maps every built-in provider to its adapter. It is never written
// after package initialization.
var registry = map[domain.ProviderID]ProviderAdapter{
	domain.ProviderOpenAI:    NewOpenAIAdapter(),
	domain.ProviderAzure:     NewAzureAdapter(),
	domain.ProviderAnthropic: NewAnthropicAdapter(),
	domain.ProviderGemini:    NewGeminiAdapter(),
	domain.ProviderDeepSeek:  NewDeepSeekAdapter(),
}

// Resolve returns the adapter for id. Unknown and empty identifiers resolve
// to the OpenAI-compatible adapter, since most self-hosted and third-party
// APIs speak that dialect.
func Resolve(id domain.ProviderID) ProviderAdapter {
	if a, ok := registry[id]; ok {
		return a
	}
	return registry[domain.ProviderOpenAI]
}

// Providers returns the built-in provider identifiers in sorted order.
func Providers() []domain.ProviderID {
	ids := make([]domain.ProviderID, 0, len(registry))
	for id := range registry {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// presets holds the suggested endpoint and model for each built-in provider.
var presets = map[domain.ProviderID]domain.Provider{
	domain.ProviderOpenAI: {
		ID:      domain.ProviderOpenAI,
		Name:    "OpenAI",
		BaseURL: "https://api.openai.com/v1/chat/completions",
		Model:   "gpt-4o-mini",
	},
	domain.ProviderAzure: {
		ID:      domain.ProviderAzure,
		Name:    "Azure OpenAI",
		BaseURL: "https://YOUR_RESOURCE.openai.azure.com/openai/deployments/YOUR_DEPLOYMENT/chat/completions?api-version=2024-02-15-preview",
		Model:   "gpt-4",
	},
	domain.ProviderAnthropic: {
		ID:      domain.ProviderAnthropic,
		Name:    "Anthropic (Claude)",
		BaseURL: "https://api.anthropic.com/v1/messages",
		Model:   "claude-3-5-sonnet-20241022",
	},
	domain.ProviderGemini: {
		ID:      domain.ProviderGemini,
		Name:    "Google Gemini",
		BaseURL: DefaultGeminiBaseURL,
		Model:   "gemini-2.5-flash",
	},
	domain.ProviderDeepSeek: {
		ID:      domain.ProviderDeepSeek,
		Name:    "DeepSeek",
		BaseURL: "https://api.deepseek.com/v1/chat/completions",
		Model:   "deepseek-chat",
	},
}

// Preset returns the suggested settings for a built-in provider.
func Preset(id domain.ProviderID) (domain.Provider, bool) {
	p, ok := presets[id]
	return p, ok
}

// Presets returns all provider presets ordered by identifier.
func Presets() []domain.Provider {
	out := make([]domain.Provider, 0, len(presets))
	for _, id := range Providers() {
		out = append(out, presets[id])
	}
	return out
}
