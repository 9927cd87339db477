package security

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestRedact(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		contains string // Check if result contains this (since full redaction varies)
		excludes string // Check if result does NOT contain this
	}{
		{
			name:     "OpenAI key",
			input:    "Using key sk-1234567890abcdefghijklmnopqrstuvwxyz",
			contains: RedactedPlaceholder,
			excludes: "sk-1234567890",
		},
		{
			name:     "OpenAI project key",
			input:    "key sk-proj-ABCDEFGHIJ_klmnopqrstu-1234567890",
			contains: RedactedPlaceholder,
			excludes: "ABCDEFGHIJ",
		},
		{
			name:     "Anthropic key",
			input:    "x-api-key: sk-ant-REDACTED",
			contains: RedactedPlaceholder,
			excludes: "api03-abcdef",
		},
		{
			name:     "Google AI key",
			input:    "API key: AIzaSyABCDEFGHIJKLMNOPQRSTUVWXYZ123456789",
			contains: RedactedPlaceholder,
			excludes: "AIzaSy",
		},
		{
			name:     "Bearer token",
			input:    "Authorization: Bearer abc.def.ghi",
			contains: RedactedPlaceholder,
			excludes: "abc.def",
		},
		{
			name:     "Gemini query key of any length",
			input:    `Post "http://127.0.0.1:1/models/gemini:generateContent?key=short1": dial tcp`,
			contains: "?key=" + RedactedPlaceholder,
			excludes: "short1",
		},
		{
			name:     "Azure hex key",
			input:    "api-key 0123456789abcdef0123456789abcdef rejected",
			contains: RedactedPlaceholder,
			excludes: "0123456789abcdef",
		},
		{
			name:     "Azure key in JSON",
			input:    `{"api_key": "0123456789ABCDEF0123456789ABCDEF"}`,
			contains: `"api_key": "` + RedactedPlaceholder,
			excludes: "0123456789ABCDEF",
		},
		{
			name:     "Request ID is not a key",
			input:    "request_id=0123456789abcdef0123456789abcdef status=429",
			contains: "request_id=0123456789abcdef0123456789abcdef",
			excludes: RedactedPlaceholder,
		},
		{
			name:     "Content hash is not a key",
			input:    "etag d41d8cd98f00b204e9800998ecf8427e",
			contains: "d41d8cd98f00b204e9800998ecf8427e",
			excludes: RedactedPlaceholder,
		},
		{
			name:     "No sensitive data",
			input:    "Normal log message",
			contains: "Normal log message",
			excludes: RedactedPlaceholder,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Redact(tt.input)
			if !strings.Contains(result, tt.contains) {
				t.Errorf("Redact() = %q, should contain %q", result, tt.contains)
			}
			if tt.excludes != "" && strings.Contains(result, tt.excludes) {
				t.Errorf("Redact() = %q, should NOT contain %q", result, tt.excludes)
			}
		})
	}
}

func TestRedactURL(t *testing.T) {
	got := RedactURL("https://generativelanguage.googleapis.com/v1beta/models/gemini-2.5-flash:generateContent?key=k1")
	if strings.Contains(got, "k1") {
		t.Errorf("RedactURL() = %q, should not contain the key", got)
	}
	if !strings.Contains(got, "gemini-2.5-flash:generateContent") {
		t.Errorf("RedactURL() = %q, should keep the path", got)
	}

	plain := "https://api.openai.com/v1/chat/completions"
	if got := RedactURL(plain); got != plain {
		t.Errorf("RedactURL(%q) = %q, want unchanged", plain, got)
	}
}

func TestMaskKey(t *testing.T) {
	tests := []struct {
		key      string
		expected string
	}{
		{"", ""},
		{"short", "***"},
		{"sk-1234567890abcdef", "sk-1...cdef"},
	}

	for _, tt := range tests {
		if got := MaskKey(tt.key); got != tt.expected {
			t.Errorf("MaskKey(%q) = %q, want %q", tt.key, got, tt.expected)
		}
	}
}

func TestRedactedHandler(t *testing.T) {
	var buf bytes.Buffer
	baseHandler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	logger := slog.New(NewRedactedHandler(baseHandler))

	logger.Info("request completed",
		slog.String("api_key", "plain-value-without-pattern"),
		slog.Any("error", errors.New("upstream said sk-testtesttesttesttesttesttest1234 is invalid")),
		slog.Group("request", slog.String("x-api-key", "another-plain-value")),
		slog.Int("max_tokens", 2000),
	)

	output := buf.String()

	for _, secret := range []string{"plain-value-without-pattern", "sk-test", "another-plain-value"} {
		if strings.Contains(output, secret) {
			t.Errorf("Log output contains %q: %s", secret, output)
		}
	}

	if !strings.Contains(output, "request completed") {
		t.Errorf("Log output missing message: %s", output)
	}
	if !strings.Contains(output, "max_tokens=2000") {
		t.Errorf("Log output should keep non-sensitive attributes: %s", output)
	}
}

func TestRedactedHandlerWithAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewRedactedHandler(slog.NewTextHandler(&buf, nil))).
		With(slog.String("authorization", "Bearer xyz"))

	logger.Info("hello")

	if strings.Contains(buf.String(), "xyz") {
		t.Errorf("Log output contains bound secret: %s", buf.String())
	}
}

func TestIsSensitiveKey(t *testing.T) {
	tests := []struct {
		key      string
		expected bool
	}{
		{"authorization", true},
		{"api_key", true},
		{"x-api-key", true},
		{"password", true},
		{"max_tokens", false},
		{"user_name", false},
		{"status", false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			result := isSensitiveKey(tt.key)
			if result != tt.expected {
				t.Errorf("isSensitiveKey(%q) = %v, want %v", tt.key, result, tt.expected)
			}
		})
	}
}

func TestRedactedHandlerEnabled(t *testing.T) {
	baseHandler := slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelWarn})
	redactedHandler := NewRedactedHandler(baseHandler)

	if redactedHandler.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("Should not be enabled for Info level when base is Warn")
	}

	if !redactedHandler.Enabled(context.Background(), slog.LevelError) {
		t.Error("Should be enabled for Error level when base is Warn")
	}
}
