package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"sourcehub/internal/catalog"
	"sourcehub/internal/query"
	"sourcehub/internal/source"
)

const (
	emptyDraftNotice = "Your draft is empty. Add a source or copy the official list to start."
	noMatchNotice    = "No sources match the current filters."
)

func truncateStr(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}

func orDash(value string) string {
	if strings.TrimSpace(value) == "" {
		return "-"
	}
	return value
}

func renderListItem(src source.Source, selected bool, width int) string {
	if width < 10 {
		width = 30
	}
	var title string
	if selected {
		title = itemSelectedStyle.Render("> " + truncateStr(src.Title, width-2))
	} else {
		title = itemTitleStyle.Render("  " + truncateStr(src.Title, width-2))
	}
	meta := "  " + categoryStyle.Render(source.CategoryLabel(src.Category)) +
		itemMetaStyle.Render(truncateStr(" · "+orDash(src.Author)+" · "+orDash(src.Date), width-lipgloss.Width(source.CategoryLabel(src.Category))-2))
	return title + "\n" + meta
}

// renderList draws the window of view that keeps cursor visible.
func renderList(view []source.Source, cursor, height, width int, mode catalog.ViewMode, total int) string {
	if len(view) == 0 {
		if total == 0 && mode == catalog.ModeDraft {
			return emptyStyle.Render(emptyDraftNotice)
		}
		return emptyStyle.Render(noMatchNotice)
	}

	const itemHeight = 2
	visible := max(height/itemHeight, 1)
	start := 0
	if cursor >= visible {
		start = cursor - visible + 1
	}
	end := min(start+visible, len(view))

	var b strings.Builder
	for i := start; i < end; i++ {
		b.WriteString(renderListItem(view[i], i == cursor, width))
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func renderDetail(src source.Source, width int) string {
	var b strings.Builder
	b.WriteString(itemSelectedStyle.Render(truncateStr(src.Title, width)))
	b.WriteString("\n")
	for _, f := range []struct{ label, value string }{
		{"ID", src.ID},
		{"Author", orDash(src.Author)},
		{"Date", orDash(src.Date)},
		{"Category", source.CategoryLabel(src.Category)},
		{"Sections", orDash(joinSections(src.Sections))},
		{"Tags", orDash(strings.Join(src.Tags, ", "))},
		{"URL", orDash(src.URL)},
	} {
		b.WriteString(labelStyle.Render(f.label) + " " + f.value + "\n")
	}
	for _, block := range []struct{ label, value string }{
		{"Key insight", src.KeyInsight},
		{"Citation", src.Citation},
		{"Description", src.Description},
	} {
		if strings.TrimSpace(block.value) == "" {
			continue
		}
		b.WriteString(blockTitleStyle.Render(block.label) + "\n")
		b.WriteString(lipgloss.NewStyle().Width(width).Render(block.value) + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderStats(stats query.Stats) string {
	var b strings.Builder
	b.WriteString(itemSelectedStyle.Render(fmt.Sprintf("Total sources: %d", stats.Total)))
	b.WriteString("\n")
	b.WriteString(blockTitleStyle.Render("Categories") + "\n")
	for _, c := range stats.Categories {
		b.WriteString(fmt.Sprintf("  %-18s %3d\n", c.Info.Label, c.Count))
	}
	b.WriteString(blockTitleStyle.Render("Sections") + "\n")
	for _, s := range stats.Sections {
		b.WriteString(fmt.Sprintf("  %-22s %3d  %3.0f%%\n", s.Info.Label, s.Count, s.Coverage(stats.Total)*100))
	}
	return strings.TrimRight(b.String(), "\n")
}

func joinSections(sections []source.Section) string {
	parts := make([]string, len(sections))
	for i, s := range sections {
		parts[i] = string(s)
	}
	return strings.Join(parts, ", ")
}

// describeFilters summarizes the active filters and sort for the filter line.
func describeFilters(f source.FilterState, sort query.SortOption) string {
	var parts []string
	if f.Search != "" {
		parts = append(parts, fmt.Sprintf("search %q", f.Search))
	}
	for _, c := range f.Categories {
		parts = append(parts, source.CategoryLabel(c))
	}
	for _, t := range f.Tags {
		parts = append(parts, "#"+t)
	}
	for _, s := range f.Sections {
		parts = append(parts, "§"+string(s))
	}
	label := "All sources"
	if len(parts) > 0 {
		label = strings.Join(parts, " · ")
	}
	return label + "  |  sort: " + string(sort)
}
