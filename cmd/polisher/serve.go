package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hpn/ai-text-polisher/internal/adapter"
	"github.com/hpn/ai-text-polisher/internal/handler"
	"github.com/hpn/ai-text-polisher/internal/ui"
	"github.com/spf13/cobra"
)

func newServeCmd(a *app) *cobra.Command {
	var host string
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve actions over a local HTTP API",
		Long: `Serve exposes POST /v1/process so browser extensions and editor plugins
can send selected text to the configured provider.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("host") {
				a.cfg.Server.Host = host
			}
			if cmd.Flags().Changed("port") {
				a.cfg.Server.Port = port
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return a.serve(ctx)
		},
	}

	cmd.Flags().StringVar(&host, "host", "127.0.0.1", "Bind address")
	cmd.Flags().IntVarP(&port, "port", "p", 8787, "Listen port")

	return cmd
}

// newRouter wires the handler, middleware and status tracking.
func (a *app) newRouter() *gin.Engine {
	if a.cfg.Logging.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	h := handler.NewProcessHandler(a.cfg,
		handler.WithLogger(a.logger),
		handler.WithHTTPClient(a.httpClient),
		handler.WithStatus(a.newStatus()),
	)

	return handler.NewRouter(h, a.logger, handler.WithConsole(a.cfg.Logging.Format != "json"))
}

// serve runs the HTTP server until ctx is cancelled, then shuts down gracefully.
func (a *app) serve(ctx context.Context) error {
	server := a.cfg.Server
	addr := net.JoinHostPort(server.Host, strconv.Itoa(server.Port))

	srv := &http.Server{
		Addr:         addr,
		Handler:      a.newRouter(),
		ReadTimeout:  time.Duration(server.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(server.WriteTimeoutSeconds) * time.Second,
	}

	ui.PrintBanner(version)
	ui.PrintStartupInfo(server.Host, server.Port,
		string(adapter.Resolve(a.cfg.API.Provider).Name()), a.cfg.API.Model,
		a.cfg.ClientConfig().HasAPIKey(), len(a.cfg.Actions))

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("server starting", slog.String("address", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		a.logger.Error("server error", slog.String("error", err.Error()))
		return err
	case <-ctx.Done():
	}

	a.logger.Info("shutdown signal received")
	ui.PrintShutdown()

	shutdownTimeout := time.Duration(server.ShutdownTimeoutSeconds) * time.Second
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("server shutdown error", slog.String("error", err.Error()))
		return err
	}

	a.logger.Info("server stopped gracefully")
	ui.PrintGoodbye()
	return nil
}
