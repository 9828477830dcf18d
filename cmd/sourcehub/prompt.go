package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"sourcehub/internal/tui"
)

// confirm asks question and reports whether the user agreed. Anything other
// than y or yes declines. assumeYes skips the prompt. On a terminal the
// question is a single-key prompt; piped input is read one line at a time.
func confirm(cmd *cobra.Command, question string, assumeYes bool) (bool, error) {
	if assumeYes {
		return true, nil
	}
	if in, ok := terminalInput(cmd); ok {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		return tui.Confirm(ctx, question, in, cmd.OutOrStdout())
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s [y/N]: ", question)
	reader := bufio.NewReader(cmd.InOrStdin())
	answer, err := reader.ReadString('\n')
	if err != nil && answer == "" {
		fmt.Fprintln(cmd.OutOrStdout())
		return false, nil
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// terminalInput returns the command's stdin when it is an interactive terminal.
func terminalInput(cmd *cobra.Command) (*os.File, bool) {
	f, ok := cmd.InOrStdin().(*os.File)
	if !ok {
		return nil, false
	}
	return f, isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func printCancelled(cmd *cobra.Command) {
	fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
}
