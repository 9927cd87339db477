// Package main is the entry point for the polisher CLI.
// It runs prompt actions on selected text against a configured AI provider,
// either once from the terminal or as a local HTTP service.
package main

import (
	"os"

	"github.com/hpn/ai-text-polisher/internal/client"
	"github.com/hpn/ai-text-polisher/internal/ui"
)

// version is set at build time.
var version = "v1.0.0"

func main() {
	if err := newRootCmd(newApp()).Execute(); err != nil {
		ui.PrintError(string(client.KindOf(err)), err.Error())
		os.Exit(1)
	}
}
