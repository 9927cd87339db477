package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/hpn/ai-text-polisher/internal/domain"
	"github.com/hpn/ai-text-polisher/internal/ui"
	"github.com/spf13/cobra"
)

// errNoText is returned when there is nothing to process.
var errNoText = errors.New("No text selected")

// runOptions are the flags of the run command.
type runOptions struct {
	actionID      string
	prompt        string
	fromClipboard bool
	copyResult    bool
}

func newRunCmd(a *app) *cobra.Command {
	var opts runOptions

	cmd := &cobra.Command{
		Use:   "run [text...]",
		Short: "Run an action on text from arguments, stdin or the clipboard",
		Example: `  polisher run --action grammar "their going too the store"
  pbpaste | polisher run -a summarize
  polisher run --from-clipboard -a professional`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Reading from the clipboard writes the result back unless told otherwise.
			if opts.fromClipboard && !cmd.Flags().Changed("copy") {
				opts.copyResult = true
			}

			text, err := a.readInput(args, opts.fromClipboard)
			if err != nil {
				return err
			}
			return a.runAction(cmd.Context(), opts, text)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.actionID, "action", "a", "polish", "ID of the action to run")
	flags.StringVarP(&opts.prompt, "prompt", "p", "", "Ad-hoc prompt template containing {text}; overrides --action")
	flags.BoolVar(&opts.fromClipboard, "from-clipboard", false, "Read the text from the clipboard")
	flags.BoolVar(&opts.copyResult, "copy", false, "Copy the result to the clipboard")

	return cmd
}

// readInput takes the text from the clipboard, the arguments or stdin, in that order.
func (a *app) readInput(args []string, fromClipboard bool) (string, error) {
	if fromClipboard {
		return a.clip.Read()
	}
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	data, err := io.ReadAll(a.stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}

// runAction processes text with the selected action and delivers the result.
func (a *app) runAction(ctx context.Context, opts runOptions, text string) error {
	if strings.TrimSpace(text) == "" {
		return errNoText
	}

	prompt, name := opts.prompt, "Custom prompt"
	if prompt == "" {
		action, ok := a.cfg.Actions.Find(opts.actionID)
		if !ok {
			return fmt.Errorf("%w: %s", domain.ErrActionNotFound, opts.actionID)
		}
		prompt, name = action.Prompt, action.Name
	}

	ai := a.newClient()
	status := a.newStatus()

	ui.PrintProcessing(name, string(ai.Provider()))
	status.Processing(name)

	ctx, cancel := a.requestContext(ctx)
	defer cancel()

	stop := a.spin("waiting for " + string(ai.Provider()))
	result, err := ai.ProcessText(ctx, prompt, text)
	stop()

	if err != nil {
		status.Failure(err.Error())
		return err
	}

	if opts.copyResult {
		if err := a.clip.Write(result); err != nil {
			status.Failure(err.Error())
			return err
		}
		status.Success("Copied to clipboard!")
		ui.PrintSuccess("Copied to clipboard")
	} else {
		status.Success(name + " finished")
	}

	fmt.Fprintln(a.stdout, result)
	return nil
}
