package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/hpn/ai-text-polisher/internal/adapter"
	"github.com/spf13/cobra"
)

func newProvidersCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "providers",
		Short: "List supported providers and their default endpoint and model",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			active := adapter.Resolve(a.cfg.API.Provider).Name()

			tw := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "\tID\tNAME\tMODEL\tURL")
			for _, p := range adapter.Presets() {
				marker := ""
				if p.ID == active {
					marker = "*"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", marker, p.ID, p.Name, p.Model, p.BaseURL)
			}
			return tw.Flush()
		},
	}
}
