// Package handler exposes the text processor over HTTP so a browser extension
// (or any local tool) can call it.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/hpn/ai-text-polisher/internal/adapter"
	"github.com/hpn/ai-text-polisher/internal/client"
	"github.com/hpn/ai-text-polisher/internal/config"
	"github.com/hpn/ai-text-polisher/internal/domain"
)

// Context keys shared with the logging middleware.
const (
	ctxKeyAction    = "action_id"
	ctxKeyErrorKind = "error_kind"
)

// ProcessRequest is the body of POST /v1/process.
// Either ActionID or Prompt selects the template.
type ProcessRequest struct {
	ActionID string `json:"action_id"`
	Prompt   string `json:"prompt"`
	Text     string `json:"text"`
}

// ProcessResponse is returned on success.
type ProcessResponse struct {
	Result   string            `json:"result"`
	ActionID string            `json:"action_id,omitempty"`
	Provider domain.ProviderID `json:"provider"`
}

// StatusReporter receives the progress of each processed action.
type StatusReporter interface {
	Processing(actionName string)
	Success(message string)
	Failure(message string)
}

// ProcessHandler serves text processing requests from the loaded settings.
type ProcessHandler struct {
	settings   *config.Configuration
	httpClient *http.Client
	logger     *slog.Logger
	status     StatusReporter
}

// ProcessHandlerOption is a functional option for configuring ProcessHandler.
type ProcessHandlerOption func(*ProcessHandler)

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) ProcessHandlerOption {
	return func(h *ProcessHandler) {
		h.logger = logger
	}
}

// WithHTTPClient sets the HTTP client used to reach providers.
func WithHTTPClient(httpClient *http.Client) ProcessHandlerOption {
	return func(h *ProcessHandler) {
		h.httpClient = httpClient
	}
}

// WithStatus reports every processed action to r.
func WithStatus(r StatusReporter) ProcessHandlerOption {
	return func(h *ProcessHandler) {
		h.status = r
	}
}

// NewProcessHandler creates a new ProcessHandler.
func NewProcessHandler(settings *config.Configuration, opts ...ProcessHandlerOption) *ProcessHandler {
	h := &ProcessHandler{
		settings:   settings,
		httpClient: http.DefaultClient,
		logger:     slog.Default(),
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// Register mounts the handler's routes.
func (h *ProcessHandler) Register(r gin.IRouter) {
	r.POST("/v1/process", h.HandleProcess)
	r.POST("/v1/ping", h.HandlePing)
	r.GET("/v1/actions", h.HandleActions)
	r.GET("/v1/providers", h.HandleProviders)
	r.GET("/health", h.HandleHealth)
}

// HandleProcess handles POST /v1/process.
func (h *ProcessHandler) HandleProcess(c *gin.Context) {
	var req ProcessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.sendError(c, http.StatusBadRequest, "invalid_request", "Invalid request body: "+err.Error())
		return
	}

	if strings.TrimSpace(req.Text) == "" {
		h.sendError(c, http.StatusBadRequest, "invalid_request", "No text selected")
		return
	}

	prompt, actionName := req.Prompt, "Custom prompt"
	if req.ActionID != "" {
		c.Set(ctxKeyAction, req.ActionID)
		action, ok := h.settings.Actions.Find(req.ActionID)
		if !ok {
			h.sendError(c, http.StatusNotFound, "invalid_request", "Action not found")
			return
		}
		prompt, actionName = action.Prompt, action.Name
	}

	if prompt == "" {
		h.sendError(c, http.StatusBadRequest, "invalid_request", "action_id or prompt is required")
		return
	}

	ai := h.newClient()
	ctx, cancel := h.requestContext(c.Request.Context())
	defer cancel()

	if h.status != nil {
		h.status.Processing(actionName)
	}

	result, err := ai.ProcessText(ctx, prompt, req.Text)
	if err != nil {
		if h.status != nil {
			h.status.Failure(err.Error())
		}
		h.sendClassifiedError(c, err)
		return
	}

	if h.status != nil {
		h.status.Success(actionName + " finished")
	}

	c.JSON(http.StatusOK, ProcessResponse{
		Result:   result,
		ActionID: req.ActionID,
		Provider: ai.Provider(),
	})
}

// HandlePing handles POST /v1/ping by sending a minimal prompt.
func (h *ProcessHandler) HandlePing(c *gin.Context) {
	ai := h.newClient()
	ctx, cancel := h.requestContext(c.Request.Context())
	defer cancel()

	if err := ai.Ping(ctx); err != nil {
		h.sendClassifiedError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"provider": ai.Provider(),
	})
}

// HandleActions handles GET /v1/actions.
func (h *ProcessHandler) HandleActions(c *gin.Context) {
	actions := h.settings.Actions
	if actions == nil {
		actions = domain.ActionSet{}
	}
	c.JSON(http.StatusOK, gin.H{"actions": actions})
}

// HandleProviders handles GET /v1/providers.
func (h *ProcessHandler) HandleProviders(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"providers": adapter.Presets(),
		"active":    adapter.Resolve(h.settings.API.Provider).Name(),
	})
}

// HandleHealth handles GET /health.
func (h *ProcessHandler) HandleHealth(c *gin.Context) {
	configured := h.settings.ClientConfig().HasAPIKey()

	status := "healthy"
	if !configured {
		status = "degraded"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":             status,
		"provider":           adapter.Resolve(h.settings.API.Provider).Name(),
		"model":              h.settings.API.Model,
		"api_key_configured": configured,
	})
}

// newClient builds a client from a fresh copy of the provider settings.
func (h *ProcessHandler) newClient() *client.Client {
	return client.New(h.settings.ClientConfig(),
		client.WithHTTPClient(h.httpClient),
		client.WithLogger(h.logger),
	)
}

// requestContext applies the configured per-request timeout, if any.
func (h *ProcessHandler) requestContext(parent context.Context) (context.Context, context.CancelFunc) {
	if timeout := h.settings.RequestTimeout(); timeout > 0 {
		return context.WithTimeout(parent, timeout)
	}
	return context.WithCancel(parent)
}

// sendClassifiedError maps a classified error onto an HTTP status.
func (h *ProcessHandler) sendClassifiedError(c *gin.Context, err error) {
	kind := client.KindOf(err)
	c.Set(ctxKeyErrorKind, string(kind))

	h.sendError(c, StatusForKind(kind), string(kind), err.Error())
}

// StatusForKind returns the HTTP status reported to callers for an error kind.
func StatusForKind(kind client.ErrorKind) int {
	switch kind {
	case client.KindMissingAPIKey:
		return http.StatusBadRequest
	case client.KindAuth:
		return http.StatusUnauthorized
	case client.KindRateLimit:
		return http.StatusTooManyRequests
	case client.KindNetwork, client.KindParse, client.KindUnclassified:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// sendError sends an error response in a uniform format.
func (h *ProcessHandler) sendError(c *gin.Context, status int, kind, message string) {
	c.JSON(status, gin.H{
		"error": gin.H{
			"kind":    kind,
			"message": message,
		},
	})
}
