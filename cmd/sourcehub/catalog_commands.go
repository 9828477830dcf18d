package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"sourcehub/internal/catalog"
	"sourcehub/internal/query"
	"sourcehub/internal/services"
	"sourcehub/internal/source"
)

func modeFor(useDraft bool) catalog.ViewMode {
	if useDraft {
		return catalog.ModeDraft
	}
	return catalog.ModeOfficial
}

func newListCommand(ctx *commandContext) *cobra.Command {
	var (
		useDraft   bool
		jsonOut    bool
		search     string
		categories []string
		tags       []string
		sections   []string
		sortFlag   string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List sources matching the given filters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			cats, err := source.ParseCategories(categories)
			if err != nil {
				return err
			}
			secs, err := source.ParseSections(sections)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("sort") {
				sortFlag = cfg.Display.DefaultSort
			}
			sortOpt, err := query.ParseSortOption(sortFlag)
			if err != nil {
				return err
			}

			mode := modeFor(useDraft)
			return ctx.withSession(cmd, mode, mode == catalog.ModeOfficial, func(_ context.Context, s *catalog.Session) error {
				s.SetFilters(source.FilterState{Search: search, Categories: cats, Tags: tags, Sections: secs})
				s.SetSort(sortOpt)
				view := s.View()
				if jsonOut {
					return printJSON(cmd.OutOrStdout(), view)
				}
				printView(cmd.OutOrStdout(), mode, view, len(s.Active()))
				if filters := s.Filters(); !filters.IsZero() {
					fmt.Fprintln(cmd.OutOrStdout(), describeFilters(filters, s.Sort()))
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&useDraft, "draft", false, "List the draft instead of the official sources")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output JSON")
	cmd.Flags().StringVarP(&search, "search", "s", "", "Case-insensitive text search over title, description, author, and tags")
	cmd.Flags().StringArrayVar(&categories, "category", nil, "Only include this category (repeatable)")
	cmd.Flags().StringArrayVar(&tags, "tag", nil, "Only include sources with this tag (repeatable)")
	cmd.Flags().StringArrayVar(&sections, "section", nil, "Only include sources cited in this section (repeatable)")
	cmd.Flags().StringVar(&sortFlag, "sort", "", "Sort order: relevance, date-newest, date-oldest, author")
	return cmd
}

func newShowCommand(ctx *commandContext) *cobra.Command {
	var useDraft, jsonOut bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show every field of one source",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode := modeFor(useDraft)
			return ctx.withSession(cmd, mode, mode == catalog.ModeOfficial, func(_ context.Context, s *catalog.Session) error {
				for _, src := range s.Active() {
					if src.ID != args[0] {
						continue
					}
					if jsonOut {
						return printJSON(cmd.OutOrStdout(), src)
					}
					out := cmd.OutOrStdout()
					printSourceDetail(out, src, colorEnabled(out))
					return nil
				}
				return services.Wrap(services.ErrNotFound, "catalog", "show",
					fmt.Sprintf("no %s source with id %q", mode, args[0]), nil)
			})
		},
	}

	cmd.Flags().BoolVar(&useDraft, "draft", false, "Look in the draft instead of the official sources")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output JSON")
	return cmd
}

func newTagsCommand(ctx *commandContext) *cobra.Command {
	var useDraft, jsonOut bool

	cmd := &cobra.Command{
		Use:   "tags",
		Short: "List the tags in use and how many sources carry each",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mode := modeFor(useDraft)
			return ctx.withSession(cmd, mode, mode == catalog.ModeOfficial, func(_ context.Context, s *catalog.Session) error {
				counts := countTags(s.AvailableTags(), s.Active())
				if jsonOut {
					return printJSON(cmd.OutOrStdout(), counts)
				}
				if len(counts) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No tags in use.")
					return nil
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTagTable(counts))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&useDraft, "draft", false, "Use the draft instead of the official sources")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output JSON")
	return cmd
}

func newStatsCommand(ctx *commandContext) *cobra.Command {
	var useDraft, jsonOut bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Summarize sources per category and section",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mode := modeFor(useDraft)
			return ctx.withSession(cmd, mode, mode == catalog.ModeOfficial, func(_ context.Context, s *catalog.Session) error {
				stats := s.Stats()
				if jsonOut {
					return printJSON(cmd.OutOrStdout(), statsJSON(stats))
				}
				printStats(cmd.OutOrStdout(), stats)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&useDraft, "draft", false, "Use the draft instead of the official sources")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output JSON")
	return cmd
}

type statsPayload struct {
	Total      int            `json:"total"`
	Categories map[string]int `json:"categories"`
	Sections   map[string]int `json:"sections"`
}

func statsJSON(stats query.Stats) statsPayload {
	payload := statsPayload{
		Total:      stats.Total,
		Categories: make(map[string]int, len(stats.Categories)),
		Sections:   make(map[string]int, len(stats.Sections)),
	}
	for _, c := range stats.Categories {
		payload.Categories[string(c.Info.Value)] = c.Count
	}
	for _, s := range stats.Sections {
		payload.Sections[string(s.Info.Value)] = s.Count
	}
	return payload
}
