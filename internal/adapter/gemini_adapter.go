package adapter

import (
	"fmt"

	"github.com/hpn/ai-text-polisher/internal/domain"
)

// DefaultGeminiBaseURL is the models collection of the Gemini API.
const DefaultGeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta/models"

// GeminiAdapter implements ProviderAdapter for the Google Gemini generateContent API.
// The model and the API key both travel in the URL, so the body carries neither.
type GeminiAdapter struct{}

// NewGeminiAdapter returns the Gemini adapter.
func NewGeminiAdapter() GeminiAdapter {
	return GeminiAdapter{}
}

// Name returns the provider identifier.
func (GeminiAdapter) Name() domain.ProviderID {
	return domain.ProviderGemini
}

// BuildRequest builds a generateContent request with a single text part.
func (GeminiAdapter) BuildRequest(prompt, _ string) any {
	return GeminiRequest{
		Contents: []GeminiContent{
			{Parts: []GeminiPart{{Text: prompt}}},
		},
	}
}

// ParseResponse reads candidates[0].content.parts[0].text.
func (GeminiAdapter) ParseResponse(body []byte) (string, error) {
	return extractText(domain.ProviderGemini, body, "candidates.0.content.parts.0.text")
}

// Headers returns no auth headers; the key is a query parameter.
func (GeminiAdapter) Headers(string) map[string]string {
	return map[string]string{}
}

// Endpoint builds {baseURL}/{model}:generateContent?key={apiKey}.
func (GeminiAdapter) Endpoint(baseURL, apiKey, model string) string {
	return fmt.Sprintf("%s/%s:generateContent?key=%s", baseURL, model, apiKey)
}

// ============================================================================
// Gemini API Types
// ============================================================================

// GeminiRequest represents a Gemini generateContent request.
type GeminiRequest struct {
	Contents []GeminiContent `json:"contents"`
}

// GeminiContent represents a content block in Gemini format.
type GeminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []GeminiPart `json:"parts"`
}

// GeminiPart represents a part of a content block.
type GeminiPart struct {
	Text string `json:"text"`
}
