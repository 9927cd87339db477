package adapter

// Request bodies for the chat-style APIs.
// Field order follows the vendors' own documentation.

// ChatMessage represents a single message in the conversation.
type ChatMessage struct {
	// Role is always "user" for text processing requests.
	Role string `json:"role"`

	// Content is the rendered prompt.
	Content string `json:"content"`
}

// ChatRequest is the OpenAI-compatible chat completion body used by
// openai, azure and deepseek.
type ChatRequest struct {
	Model       string        `json:"model"`
	Messages    []ChatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

// AnthropicRequest is the Messages API body. Anthropic requires max_tokens
// and does not receive a temperature from this client.
type AnthropicRequest struct {
	Model     string        `json:"model"`
	MaxTokens int           `json:"max_tokens"`
	Messages  []ChatMessage `json:"messages"`
}

// userMessages wraps a prompt as the only user turn.
func userMessages(prompt string) []ChatMessage {
	return []ChatMessage{{Role: "user", Content: prompt}}
}
