package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hpn/ai-text-polisher/internal/ui"
)

// CORSMiddleware returns a middleware that enables permissive CORS.
// Browser extensions call the local server from arbitrary origins.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept, Origin, Cache-Control, X-Requested-With")
		c.Header("Access-Control-Allow-Methods", "POST, OPTIONS, GET")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// LoggingMiddleware returns a middleware that logs request details.
// The action and error kind are read from the context when the handler set them.
func LoggingMiddleware(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		latency := time.Since(start)
		actionID := c.GetString(ctxKeyAction)
		errorKind := c.GetString(ctxKeyErrorKind)

		attrs := []any{
			slog.String("method", c.Request.Method),
			slog.String("path", path),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("latency", latency),
			slog.String("client_ip", c.ClientIP()),
		}
		if actionID != "" {
			attrs = append(attrs, slog.String("action_id", actionID))
		}
		if errorKind != "" {
			attrs = append(attrs, slog.String("error_kind", errorKind))
		}

		logger.Info("request completed", attrs...)
	}
}

// ConsoleMiddleware prints a colorized one-line summary of each request.
func ConsoleMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		ui.PrintRequest(c.Request.Method, c.Request.URL.Path, c.Writer.Status(),
			time.Since(start), c.GetString(ctxKeyAction))
	}
}

// RecoveryMiddleware returns a middleware that recovers from panics.
// It logs the error and answers with the uniform error body.
func RecoveryMiddleware(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("panic recovered",
					slog.Any("error", err),
					slog.String("path", c.Request.URL.Path),
				)

				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": gin.H{
						"kind":    "internal",
						"message": "Internal server error",
					},
				})
			}
		}()

		c.Next()
	}
}

// RouterOption is a functional option for NewRouter.
type RouterOption func(*routerOptions)

type routerOptions struct {
	console bool
}

// WithConsole enables the colorized request printer.
func WithConsole(enabled bool) RouterOption {
	return func(o *routerOptions) {
		o.console = enabled
	}
}

// NewRouter builds the gin engine with middleware and the handler's routes.
func NewRouter(h *ProcessHandler, logger *slog.Logger, opts ...RouterOption) *gin.Engine {
	var o routerOptions
	for _, opt := range opts {
		opt(&o)
	}

	r := gin.New()
	r.Use(RecoveryMiddleware(logger))
	r.Use(CORSMiddleware())
	r.Use(LoggingMiddleware(logger))
	if o.console {
		r.Use(ConsoleMiddleware())
	}

	h.Register(r)
	return r
}
