// Package client runs a single prompt through the configured AI provider.
// It fills the prompt template, selects an adapter, performs one HTTP call
// and returns either the trimmed completion or a classified *Error.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/hpn/ai-text-polisher/internal/adapter"
	"github.com/hpn/ai-text-polisher/internal/domain"
	"github.com/hpn/ai-text-polisher/internal/security"
)

// PingPrompt is the text sent when testing a connection.
const PingPrompt = "Hello"

// Client processes text against one provider configuration.
// It holds no mutable state, so one Client may serve concurrent calls.
type Client struct {
	cfg        domain.ClientConfig
	adapter    adapter.ProviderAdapter
	httpClient *http.Client
	logger     *slog.Logger
}

// Option is a functional option for configuring Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates a Client for cfg. The adapter is resolved once from cfg.ProviderID.
// No timeout is applied here; bound the call through the context instead.
func New(cfg domain.ClientConfig, opts ...Option) *Client {
	c := &Client{
		cfg:        cfg,
		adapter:    adapter.Resolve(cfg.ProviderID),
		httpClient: http.DefaultClient,
		logger:     slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Provider returns the identifier of the adapter this client uses.
func (c *Client) Provider() domain.ProviderID {
	return c.adapter.Name()
}

// RenderPrompt replaces the first {text} placeholder in template with text.
// Later placeholders are left as they are.
func RenderPrompt(template, text string) string {
	return strings.Replace(template, domain.PromptPlaceholder, text, 1)
}

// ProcessText renders promptTemplate with selectedText, sends it to the
// provider and returns the trimmed result. Every failure is an *Error.
func (c *Client) ProcessText(ctx context.Context, promptTemplate, selectedText string) (string, error) {
	if !c.cfg.HasAPIKey() {
		return "", &Error{Kind: KindMissingAPIKey, Message: MsgMissingAPIKey}
	}

	prompt := RenderPrompt(promptTemplate, selectedText)

	start := time.Now()
	text, err := c.send(ctx, prompt)
	if err != nil {
		classified := Classify(err)
		c.logger.Warn("ai request failed",
			slog.String("provider", string(c.adapter.Name())),
			slog.String("kind", string(KindOf(classified))),
			slog.String("error", err.Error()),
			slog.Duration("latency", time.Since(start)),
		)
		return "", classified
	}

	c.logger.Info("ai request successful",
		slog.String("provider", string(c.adapter.Name())),
		slog.String("model", c.cfg.ModelName),
		slog.Int("result_length", len(text)),
		slog.Duration("latency", time.Since(start)),
	)

	return text, nil
}

// Ping sends a minimal prompt to verify the endpoint, key and model.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.ProcessText(ctx, domain.PromptPlaceholder, PingPrompt)
	return err
}

// send performs the HTTP round trip and parses a successful body.
func (c *Client) send(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(c.adapter.BuildRequest(prompt, c.cfg.ModelName))
	if err != nil {
		return "", fmt.Errorf("failed to marshal %s request: %w", c.adapter.Name(), err)
	}

	endpoint := c.adapter.Endpoint(c.cfg.EndpointURL, c.cfg.APIKey, c.cfg.ModelName)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		// Not wrapped: a bad URL never reached the network.
		return "", fmt.Errorf("failed to create http request: %v", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	for name, value := range c.adapter.Headers(c.cfg.APIKey) {
		httpReq.Header.Set(name, value)
	}

	c.logger.Debug("sending ai request",
		slog.String("provider", string(c.adapter.Name())),
		slog.String("model", c.cfg.ModelName),
		slog.String("endpoint", security.RedactURL(endpoint)),
		slog.Int("prompt_length", len(prompt)),
	)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("failed to execute %s request: %w", c.adapter.Name(), err)
	}
	defer resp.Body.Close()

	respBody, readErr := io.ReadAll(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &statusError{
			StatusCode: resp.StatusCode,
			Message:    extractErrorMessage(resp.StatusCode, resp.Status, respBody, readErr),
		}
	}

	if readErr != nil {
		return "", fmt.Errorf("failed to read %s response: %w", c.adapter.Name(), readErr)
	}

	return c.adapter.ParseResponse(respBody)
}
