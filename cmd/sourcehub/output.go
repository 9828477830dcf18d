package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"sourcehub/internal/catalog"
	"sourcehub/internal/query"
	"sourcehub/internal/source"
)

const emptyValue = "-"

func orDash(value string) string {
	if strings.TrimSpace(value) == "" {
		return emptyValue
	}
	return value
}

func joinSections(sections []source.Section) string {
	parts := make([]string, len(sections))
	for i, s := range sections {
		parts[i] = string(s)
	}
	return orDash(strings.Join(parts, ", "))
}

// printJSON writes v as indented JSON, the shape scripts read with --json.
func printJSON(out io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode json output: %w", err)
	}
	_, err = fmt.Fprintf(out, "%s\n", data)
	return err
}

func renderSourceTable(sources []source.Source) string {
	columns := []column{
		{header: "ID", maxWidth: 28},
		{header: "Title", maxWidth: 48},
		{header: "Author", maxWidth: 24},
		{header: "Date"},
		{header: "Category"},
		{header: "Sections"},
	}
	rows := make([][]string, 0, len(sources))
	for _, src := range sources {
		rows = append(rows, []string{
			src.ID,
			src.Title,
			orDash(src.Author),
			orDash(src.Date),
			source.CategoryLabel(src.Category),
			joinSections(src.Sections),
		})
	}
	return renderTable(columns, rows)
}

// printView writes the result count line followed by the table, or a notice
// when nothing matches.
func printView(out io.Writer, mode catalog.ViewMode, view []source.Source, total int) {
	fmt.Fprintf(out, "Showing %d of %d %s sources\n", len(view), total, mode)
	if len(view) == 0 {
		if total == 0 && mode == catalog.ModeDraft {
			fmt.Fprintln(out, "Your draft is empty. Add a source or copy the official list to start.")
			return
		}
		fmt.Fprintln(out, "No sources match the current filters.")
		return
	}
	fmt.Fprintln(out, renderSourceTable(view))
}

func printSourceDetail(out io.Writer, src source.Source, colorize bool) {
	for _, line := range renderDetailTitle(src.Title, colorize) {
		fmt.Fprintln(out, line)
	}
	fields := []struct{ label, value string }{
		{"ID", src.ID},
		{"Author", orDash(src.Author)},
		{"Date", orDash(src.Date)},
		{"Category", source.CategoryLabel(src.Category)},
		{"Sections", joinSections(src.Sections)},
		{"Tags", orDash(strings.Join(src.Tags, ", "))},
		{"URL", orDash(src.URL)},
	}
	for _, f := range fields {
		fmt.Fprintf(out, "%-10s %s\n", f.label+":", f.value)
	}
	for _, block := range []struct{ label, value string }{
		{"Key insight", src.KeyInsight},
		{"Citation", src.Citation},
		{"Description", src.Description},
	} {
		if strings.TrimSpace(block.value) == "" {
			continue
		}
		fmt.Fprintf(out, "\n%s:\n  %s\n", block.label, block.value)
	}
}

type tagCount struct {
	Tag     string `json:"tag"`
	Sources int    `json:"sources"`
}

func countTags(tags []string, sources []source.Source) []tagCount {
	counts := make([]tagCount, 0, len(tags))
	for _, tag := range tags {
		n := 0
		for _, src := range sources {
			for _, t := range src.Tags {
				if t == tag {
					n++
					break
				}
			}
		}
		counts = append(counts, tagCount{Tag: tag, Sources: n})
	}
	return counts
}

func renderTagTable(counts []tagCount) string {
	rows := make([][]string, 0, len(counts))
	for _, c := range counts {
		rows = append(rows, []string{c.Tag, fmt.Sprintf("%d", c.Sources)})
	}
	return renderTable([]column{{header: "Tag"}, {header: "Sources", align: alignRight}}, rows)
}

func printStats(out io.Writer, stats query.Stats) {
	fmt.Fprintf(out, "Total sources: %d\n", stats.Total)

	categoryRows := make([][]string, 0, len(stats.Categories))
	for _, c := range stats.Categories {
		categoryRows = append(categoryRows, []string{c.Info.Label, fmt.Sprintf("%d", c.Count)})
	}
	fmt.Fprintln(out, renderTable([]column{{header: "Category"}, {header: "Sources", align: alignRight}}, categoryRows))

	sectionRows := make([][]string, 0, len(stats.Sections))
	for _, s := range stats.Sections {
		sectionRows = append(sectionRows, []string{
			s.Info.Label,
			fmt.Sprintf("%d", s.Count),
			fmt.Sprintf("%.0f%%", s.Coverage(stats.Total)*100),
		})
	}
	fmt.Fprintln(out, renderTable([]column{
		{header: "Section"},
		{header: "Sources", align: alignRight},
		{header: "Coverage", align: alignRight},
	}, sectionRows))
}

func describeFilters(f source.FilterState, sort query.SortOption) string {
	parts := []string{}
	if f.Search != "" {
		parts = append(parts, fmt.Sprintf("search=%q", f.Search))
	}
	if len(f.Categories) > 0 {
		values := make([]string, len(f.Categories))
		for i, c := range f.Categories {
			values[i] = string(c)
		}
		parts = append(parts, "categories="+strings.Join(values, ","))
	}
	if len(f.Tags) > 0 {
		parts = append(parts, "tags="+strings.Join(f.Tags, ","))
	}
	if len(f.Sections) > 0 {
		values := make([]string, len(f.Sections))
		for i, s := range f.Sections {
			values[i] = string(s)
		}
		parts = append(parts, "sections="+strings.Join(values, ","))
	}
	if len(parts) == 0 {
		parts = append(parts, "none")
	}
	return fmt.Sprintf("filters: %s; sort: %s", strings.Join(parts, " "), sort)
}
