package main

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/hpn/ai-text-polisher/internal/client"
	"github.com/hpn/ai-text-polisher/internal/clipboard"
	"github.com/hpn/ai-text-polisher/internal/config"
	"github.com/hpn/ai-text-polisher/internal/ui"
	"github.com/spf13/cobra"
)

// app carries the loaded settings and the process I/O shared by all commands.
type app struct {
	configPath string
	logLevel   string

	cfg    *config.Configuration
	logger *slog.Logger

	stdin      io.Reader
	stdout     io.Writer
	stderr     io.Writer
	spinnerOut *os.File
	clip       clipboard.Provider
	notifier   ui.Notifier
	httpClient *http.Client
}

func newApp() *app {
	return &app{
		stdin:      os.Stdin,
		stdout:     os.Stdout,
		stderr:     os.Stderr,
		spinnerOut: os.Stderr,
		clip:       clipboard.New(),
		notifier:   ui.DesktopNotifier{},
		httpClient: http.DefaultClient,
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "polisher",
		Short: "AI Text Polisher - run prompt actions on selected text",
		Long: `Polisher sends selected text through a prompt action (polish, fix grammar,
summarize, ...) to OpenAI, Azure OpenAI, Anthropic, Gemini or DeepSeek and
prints or copies the result.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return a.init()
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Config file (default: ./config.yaml or ~/.ai-text-polisher/config.yaml)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Override the log level (debug|info|warn|error)")

	root.AddCommand(
		newRunCmd(a),
		newServeCmd(a),
		newPingCmd(a),
		newActionsCmd(a),
		newProvidersCmd(a),
	)

	return root
}

// init loads the configuration and installs the logger.
func (a *app) init() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Logging.Level = a.logLevel
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	a.cfg = cfg
	a.logger = newLogger(cfg.Logging, a.stderr)
	slog.SetDefault(a.logger)
	ui.Output = a.stderr

	return nil
}

// newClient creates a client for the configured provider.
func (a *app) newClient() *client.Client {
	return client.New(a.cfg.ClientConfig(),
		client.WithHTTPClient(a.httpClient),
		client.WithLogger(a.logger),
	)
}

// requestContext bounds one AI request by the configured timeout.
func (a *app) requestContext(parent context.Context) (context.Context, context.CancelFunc) {
	if timeout := a.cfg.RequestTimeout(); timeout > 0 {
		return context.WithTimeout(parent, timeout)
	}
	return context.WithCancel(parent)
}

// newStatus creates the badge tracker, with desktop notifications when enabled.
func (a *app) newStatus() *ui.Status {
	n := a.cfg.Notifications
	opts := []ui.StatusOption{
		ui.WithClearAfter(
			time.Duration(n.ClearAfterSuccessSeconds)*time.Second,
			time.Duration(n.ClearAfterErrorSeconds)*time.Second,
		),
	}
	if n.Enabled && a.notifier != nil {
		opts = append(opts, ui.WithNotifier(a.notifier))
	}
	return ui.NewStatus(opts...)
}

// spin starts a spinner when attached to a terminal.
func (a *app) spin(suffix string) (stop func()) {
	if a.spinnerOut == nil {
		return func() {}
	}
	return ui.StartSpinner(a.spinnerOut, suffix)
}
