package ui

import (
	"fmt"

	"github.com/fatih/color"
)

// ══════════════════════════════════════════════════════════════════════════════
// STARTUP BANNER
// ══════════════════════════════════════════════════════════════════════════════

// PrintBanner displays the startup banner for the serve command.
func PrintBanner(version string) {
	cyan := color.New(color.FgCyan, color.Bold)
	magenta := color.New(color.FgMagenta, color.Bold)
	yellow := color.New(color.FgYellow, color.Bold)
	white := color.New(color.FgWhite)
	dim := color.New(color.FgHiBlack)

	fmt.Fprintln(Output)
	cyan.Fprintln(Output, "╔══════════════════════════════════════════════════════╗")

	cyan.Fprint(Output, "║  ")
	magenta.Fprint(Output, "AI TEXT POLISHER")
	dim.Fprint(Output, "  │  ")
	yellow.Fprint(Output, "✎ select · polish · paste")
	dim.Fprint(Output, "  │  ")
	white.Fprintf(Output, "%-6s", version)
	cyan.Fprintln(Output, "║")

	cyan.Fprintln(Output, "╚══════════════════════════════════════════════════════╝")
	fmt.Fprintln(Output)
}
