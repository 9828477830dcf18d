package main

import (
	"context"

	"github.com/spf13/cobra"

	"sourcehub/internal/catalog"
	"sourcehub/internal/query"
	"sourcehub/internal/services"
	"sourcehub/internal/tui"
)

func newBrowseCommand(ctx *commandContext) *cobra.Command {
	var draftMode bool

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Interactively filter and inspect sources",
		Long: "Open a full-screen browser over the official list or your draft.\n" +
			"Press ? inside the browser for key bindings.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, ok := terminalInput(cmd)
			if !ok {
				return services.Wrap(services.ErrValidation, "browse", "start",
					"browse needs an interactive terminal; use 'sourcehub list' in scripts", nil)
			}
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			sortOpt, err := query.ParseSortOption(cfg.Display.DefaultSort)
			if err != nil {
				return err
			}
			mode := catalog.ModeOfficial
			if draftMode {
				mode = catalog.ModeDraft
			}
			return ctx.withSession(cmd, mode, true, func(runCtx context.Context, s *catalog.Session) error {
				s.SetSort(sortOpt)
				return tui.Run(runCtx, s, in, cmd.OutOrStdout())
			})
		},
	}
	cmd.Flags().BoolVar(&draftMode, "draft", false, "Start in the draft collection")
	return cmd
}
