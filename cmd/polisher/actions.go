package main

import (
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/hpn/ai-text-polisher/internal/config"
	"github.com/hpn/ai-text-polisher/internal/domain"
	"github.com/hpn/ai-text-polisher/internal/ui"
	"github.com/spf13/cobra"
)

var errMissingPlaceholder = fmt.Errorf("prompt must include the %s placeholder", domain.PromptPlaceholder)

func newActionsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "actions",
		Short: "List and edit prompt actions",
	}

	cmd.AddCommand(
		newActionsListCmd(a),
		newActionsAddCmd(a),
		newActionsUpdateCmd(a),
		newActionsDeleteCmd(a),
		newActionsResetCmd(a),
	)

	return cmd
}

func newActionsListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List configured actions",
		Args:    cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tPROMPT")
			for _, action := range a.cfg.Actions {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", action.ID, action.Name, firstLine(action.Prompt, 60))
			}
			return tw.Flush()
		},
	}
}

func newActionsAddCmd(a *app) *cobra.Command {
	var name, prompt string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new action",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := checkPrompt(prompt); err != nil {
				return err
			}

			actions, added, err := a.cfg.Actions.Add(name, prompt)
			if err != nil {
				return err
			}
			if err := a.saveActions(actions); err != nil {
				return err
			}

			ui.PrintSuccess(fmt.Sprintf("Added action %q (%s)", added.Name, added.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Action name")
	cmd.Flags().StringVar(&prompt, "prompt", "", "Prompt template containing {text}")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("prompt")

	return cmd
}

func newActionsUpdateCmd(a *app) *cobra.Command {
	var name, prompt string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change the name or prompt of an action",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if name == "" && prompt == "" {
				return errors.New("nothing to update: set --name or --prompt")
			}
			if prompt != "" {
				if err := checkPrompt(prompt); err != nil {
					return err
				}
			}

			actions, updated, err := a.cfg.Actions.Update(args[0], domain.Action{Name: name, Prompt: prompt})
			if err != nil {
				return fmt.Errorf("%w: %s", err, args[0])
			}
			if err := a.saveActions(actions); err != nil {
				return err
			}

			ui.PrintSuccess(fmt.Sprintf("Updated action %q", updated.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New action name")
	cmd.Flags().StringVar(&prompt, "prompt", "", "New prompt template containing {text}")

	return cmd
}

func newActionsDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete an action",
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if _, ok := a.cfg.Actions.Find(args[0]); !ok {
				return fmt.Errorf("%w: %s", domain.ErrActionNotFound, args[0])
			}
			if err := a.saveActions(a.cfg.Actions.Delete(args[0])); err != nil {
				return err
			}

			ui.PrintSuccess(fmt.Sprintf("Deleted action %q", args[0]))
			return nil
		},
	}
}

func newActionsResetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Restore the built-in actions",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := a.saveActions(domain.DefaultActions()); err != nil {
				return err
			}
			ui.PrintSuccess("Restored default actions")
			return nil
		},
	}
}

// saveActions persists actions to the loaded config file, or the default path.
func (a *app) saveActions(actions domain.ActionSet) error {
	path := a.cfg.ConfigFile
	if path == "" {
		path = config.DefaultConfigPath()
	}
	if err := config.SaveActions(path, actions); err != nil {
		return err
	}

	a.cfg.Actions = actions
	a.cfg.ConfigFile = path
	return nil
}

// checkPrompt enforces the editor rules for a prompt template.
func checkPrompt(prompt string) error {
	if strings.TrimSpace(prompt) == "" {
		return domain.ErrInvalidAction
	}
	if !(&domain.Action{Prompt: prompt}).HasPlaceholder() {
		return errMissingPlaceholder
	}
	return nil
}

// firstLine returns the first line of s, cut to n runes.
func firstLine(s string, n int) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i] + " ..."
	}
	if r := []rune(s); len(r) > n {
		return string(r[:n-3]) + "..."
	}
	return s
}
