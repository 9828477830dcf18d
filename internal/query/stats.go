package query

import (
	"slices"

	"sourcehub/internal/source"
)

// CategoryCount pairs a category with the number of sources in it.
type CategoryCount struct {
	Info  source.CategoryInfo
	Count int
}

// SectionCount pairs a section with the number of sources placed in it.
type SectionCount struct {
	Info  source.SectionInfo
	Count int
}

// Stats summarizes a collection for the overview panel.
type Stats struct {
	Total      int
	Categories []CategoryCount
	Sections   []SectionCount
}

// Summarize counts sources per category and per section, in taxonomy order.
// A source contributes to every section it lists.
func Summarize(sources []source.Source) Stats {
	stats := Stats{Total: len(sources)}
	for _, info := range source.Categories() {
		count := 0
		for _, src := range sources {
			if src.Category == info.Value {
				count++
			}
		}
		stats.Categories = append(stats.Categories, CategoryCount{Info: info, Count: count})
	}
	for _, info := range source.Sections() {
		count := 0
		for _, src := range sources {
			if slices.Contains(src.Sections, info.Value) {
				count++
			}
		}
		stats.Sections = append(stats.Sections, SectionCount{Info: info, Count: count})
	}
	return stats
}

// Coverage is the share of sources placed in the section, 0 for an empty collection.
func (s SectionCount) Coverage(total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(s.Count) / float64(total)
}
