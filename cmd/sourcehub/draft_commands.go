package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"sourcehub/internal/catalog"
	"sourcehub/internal/draft"
	"sourcehub/internal/draftstore"
	"sourcehub/internal/services"
	"sourcehub/internal/source"
)

func newDraftCommand(ctx *commandContext) *cobra.Command {
	draftCmd := &cobra.Command{
		Use:   "draft",
		Short: "Edit the local draft collection",
	}

	draftCmd.AddCommand(newDraftAddCommand(ctx))
	draftCmd.AddCommand(newDraftEditCommand(ctx))
	draftCmd.AddCommand(newDraftDeleteCommand(ctx))
	draftCmd.AddCommand(newDraftImportCommand(ctx))
	draftCmd.AddCommand(newDraftExportCommand(ctx))
	draftCmd.AddCommand(newDraftCopyOfficialCommand(ctx))
	draftCmd.AddCommand(newDraftClearCommand(ctx))

	return draftCmd
}

// sourceFields binds the editable fields of a source to flags.
type sourceFields struct {
	title       string
	author      string
	date        string
	url         string
	category    string
	tags        string
	sections    []string
	keyInsight  string
	citation    string
	description string
}

func (f *sourceFields) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&f.title, "title", "", "Title (required)")
	flags.StringVar(&f.author, "author", "", "Author or publishing organization")
	flags.StringVar(&f.date, "date", "", "Publication date, e.g. 2024-05-01")
	flags.StringVar(&f.url, "url", "", "Link to the source (required)")
	flags.StringVar(&f.category, "category", "", "Category: "+strings.Join(source.CategoryValues(), ", "))
	flags.StringVar(&f.tags, "tags", "", `Comma-separated tags, e.g. "privacy, uk"`)
	flags.StringArrayVar(&f.sections, "section", nil, "Section the source is cited in (repeatable): "+strings.Join(source.SectionValues(), ", "))
	flags.StringVar(&f.keyInsight, "key-insight", "", "One-line takeaway")
	flags.StringVar(&f.citation, "citation", "", "Formatted citation")
	flags.StringVar(&f.description, "description", "", "Longer description")
}

// apply copies every flag the user set onto b.
func (f *sourceFields) apply(cmd *cobra.Command, b *source.Builder) error {
	flags := cmd.Flags()
	set := func(name string, dst *string, value string) {
		if flags.Changed(name) {
			*dst = value
		}
	}
	set("title", &b.Title, f.title)
	set("author", &b.Author, f.author)
	set("date", &b.Date, f.date)
	set("url", &b.URL, f.url)
	set("category", &b.Category, f.category)
	set("tags", &b.Tags, f.tags)
	set("key-insight", &b.KeyInsight, f.keyInsight)
	set("citation", &b.Citation, f.citation)
	set("description", &b.Description, f.description)
	if flags.Changed("section") {
		sections, err := source.ParseSections(f.sections)
		if err != nil {
			return err
		}
		b.Sections = sections
	}
	return nil
}

func newDraftAddCommand(ctx *commandContext) *cobra.Command {
	var fields sourceFields

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a source to the draft",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b := source.NewBuilder()
			if err := fields.apply(cmd, b); err != nil {
				return err
			}
			runCtx, logger := ctx.commandScope(cmd, catalog.ModeDraft)
			return ctx.withDraft(runCtx, logger, func(w *draft.Workflow) error {
				src, err := w.Add(runCtx, b)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%s)\n", src.ID, src.Title)
				return nil
			})
		},
	}
	fields.register(cmd)
	return cmd
}

func newDraftEditCommand(ctx *commandContext) *cobra.Command {
	var fields sourceFields

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change fields of a draft source",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runCtx, logger := ctx.commandScope(cmd, catalog.ModeDraft)
			return ctx.withDraft(runCtx, logger, func(w *draft.Workflow) error {
				src, err := w.Edit(runCtx, args[0], func(b *source.Builder) error {
					return fields.apply(cmd, b)
				})
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Updated %s (%s)\n", src.ID, src.Title)
				return nil
			})
		},
	}
	fields.register(cmd)
	return cmd
}

func newDraftDeleteCommand(ctx *commandContext) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove a source from the draft",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			runCtx, logger := ctx.commandScope(cmd, catalog.ModeDraft)
			return ctx.withDraft(runCtx, logger, func(w *draft.Workflow) error {
				src, ok := w.Get(id)
				if !ok {
					return services.Wrap(services.ErrNotFound, "draft", "delete",
						fmt.Sprintf("no draft source with id %q", id), nil)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", src.ID, src.Title)
				ok, err := confirm(cmd, "Delete this source from your draft list?", yes)
				if err != nil {
					return err
				}
				if !ok {
					printCancelled(cmd)
					return nil
				}
				if _, err := w.Delete(runCtx, id); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", id)
				return nil
			})
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}

func newDraftImportCommand(ctx *commandContext) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "import <file|->",
		Short: "Replace the draft with a sources.json file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if path == "-" {
				if !yes {
					return services.Wrap(services.ErrValidation, "draft", "import",
						"reading from stdin requires --yes", nil)
				}
				return ctx.withSession(cmd, catalog.ModeDraft, false, func(runCtx context.Context, s *catalog.Session) error {
					n, err := s.ImportDraft(runCtx, cmd.InOrStdin())
					if err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "Imported %d sources into the draft\n", n)
					return nil
				})
			}

			sources, err := draftstore.ImportFromFile(path)
			if err != nil {
				return err
			}
			ok, err := confirm(cmd, fmt.Sprintf("Replace your draft with the %d sources in %s?", len(sources), path), yes)
			if err != nil {
				return err
			}
			if !ok {
				printCancelled(cmd)
				return nil
			}
			runCtx, logger := ctx.commandScope(cmd, catalog.ModeDraft)
			return ctx.withDraft(runCtx, logger, func(w *draft.Workflow) error {
				if err := w.ReplaceAll(runCtx, sources); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Imported %d sources into the draft\n", len(sources))
				return nil
			})
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}

func newDraftExportCommand(ctx *commandContext) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the draft to a sources.json file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			target := strings.TrimSpace(output)
			if target == "" {
				target = cfg.Draft.ExportFile
			}
			runCtx, logger := ctx.commandScope(cmd, catalog.ModeDraft)
			return ctx.withDraft(runCtx, logger, func(w *draft.Workflow) error {
				sources := w.Sources()
				if target == "-" {
					return draftstore.Encode(cmd.OutOrStdout(), sources)
				}
				if err := draftstore.ExportToFile(target, sources); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Exported %d sources to %s\n", len(sources), target)
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Destination file, or - for stdout (default from draft.export_file)")
	return cmd
}

func newDraftCopyOfficialCommand(ctx *commandContext) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "copy-official",
		Short: "Replace the draft with the official sources",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withSession(cmd, catalog.ModeDraft, true, func(runCtx context.Context, s *catalog.Session) error {
				count := len(s.Official())
				if count > 0 {
					question := fmt.Sprintf("Replace your %d draft sources with the %d official sources?", s.Draft().Len(), count)
					ok, err := confirm(cmd, question, yes)
					if err != nil {
						return err
					}
					if !ok {
						printCancelled(cmd)
						return nil
					}
				}
				if err := s.CopyOfficialToDraft(runCtx); err != nil {
					if errors.Is(err, catalog.ErrNothingToCopy) {
						fmt.Fprintln(cmd.OutOrStdout(), "The official collection is empty; the draft was left unchanged.")
						return nil
					}
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Copied %d official sources into the draft\n", count)
				return nil
			})
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}

func newDraftClearCommand(ctx *commandContext) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every draft source",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withSession(cmd, catalog.ModeDraft, false, func(runCtx context.Context, s *catalog.Session) error {
				ok, err := confirm(cmd, fmt.Sprintf("Clear all %d sources from your draft list?", s.Draft().Len()), yes)
				if err != nil {
					return err
				}
				if !ok {
					printCancelled(cmd)
					return nil
				}
				if err := s.ResetDraft(runCtx); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Draft cleared")
				return nil
			})
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}
