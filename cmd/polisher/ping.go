package main

import (
	"fmt"

	"github.com/hpn/ai-text-polisher/internal/ui"
	"github.com/spf13/cobra"
)

func newPingCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Test the connection to the configured provider",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ai := a.newClient()

			ctx, cancel := a.requestContext(cmd.Context())
			defer cancel()

			stop := a.spin("pinging " + string(ai.Provider()))
			err := ai.Ping(ctx)
			stop()
			if err != nil {
				return err
			}

			ui.PrintSuccess(fmt.Sprintf("Connection OK: %s / %s", ai.Provider(), a.cfg.API.Model))
			return nil
		},
	}
}
