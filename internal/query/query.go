package query

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/cases"

	"sourcehub/internal/services"
	"sourcehub/internal/source"
)

// SortOption selects the ordering applied after filtering.
type SortOption string

const (
	SortRelevance  SortOption = "relevance"
	SortDateNewest SortOption = "date-newest"
	SortDateOldest SortOption = "date-oldest"
	SortAuthor     SortOption = "author"
)

// SortOptions lists the accepted orderings.
func SortOptions() []SortOption {
	return []SortOption{SortRelevance, SortDateNewest, SortDateOldest, SortAuthor}
}

// ParseSortOption resolves user input; empty input selects relevance.
func ParseSortOption(value string) (SortOption, error) {
	normalized := SortOption(strings.ToLower(strings.TrimSpace(value)))
	if normalized == "" {
		return SortRelevance, nil
	}
	if slices.Contains(SortOptions(), normalized) {
		return normalized, nil
	}
	return "", services.Wrap(services.ErrValidation, "query", "parse sort",
		fmt.Sprintf("unknown sort %q (want relevance, date-newest, date-oldest, or author)", value), nil)
}

const (
	titleWeight  = 3
	authorWeight = 2
)

// ComputeView filters collection and orders the survivors. The input is never
// modified and every ordering is stable, so ties keep their input order.
func ComputeView(collection []source.Source, filters source.FilterState, sort SortOption) []source.Source {
	m := newMatcher(filters)
	result := make([]source.Source, 0, len(collection))
	for _, src := range collection {
		if m.matches(src) {
			result = append(result, src)
		}
	}

	switch sort {
	case SortDateNewest:
		slices.SortStableFunc(result, func(a, b source.Source) int { return cmp.Compare(b.Date, a.Date) })
	case SortDateOldest:
		slices.SortStableFunc(result, func(a, b source.Source) int { return cmp.Compare(a.Date, b.Date) })
	case SortAuthor:
		slices.SortStableFunc(result, func(a, b source.Source) int { return cmp.Compare(a.Author, b.Author) })
	default:
		if m.query == "" {
			break
		}
		ranked := make([]scored, len(result))
		for i, src := range result {
			ranked[i] = scored{src: src, score: m.score(src)}
		}
		slices.SortStableFunc(ranked, func(a, b scored) int { return cmp.Compare(b.score, a.score) })
		for i := range ranked {
			result[i] = ranked[i].src
		}
	}
	return result
}

type scored struct {
	src   source.Source
	score int
}

// Matches reports whether src passes every active clause of filters.
func Matches(src source.Source, filters source.FilterState) bool {
	return newMatcher(filters).matches(src)
}

// Score returns the relevance score of src for search: +3 when the title
// contains the query, +2 when the author does. An empty search scores 0.
func Score(src source.Source, search string) int {
	return newMatcher(source.FilterState{Search: search}).score(src)
}

type matcher struct {
	query      string
	categories []source.Category
	tags       []string
	sections   []source.Section
}

func newMatcher(filters source.FilterState) matcher {
	return matcher{
		query:      fold(filters.Search),
		categories: filters.Categories,
		tags:       filters.Tags,
		sections:   filters.Sections,
	}
}

func (m matcher) matches(src source.Source) bool {
	if m.query != "" && !m.matchesSearch(src) {
		return false
	}
	if len(m.categories) > 0 && !slices.Contains(m.categories, src.Category) {
		return false
	}
	if len(m.sections) > 0 && !slices.ContainsFunc(src.Sections, func(s source.Section) bool {
		return slices.Contains(m.sections, s)
	}) {
		return false
	}
	if len(m.tags) > 0 && !slices.ContainsFunc(src.Tags, func(t string) bool {
		return slices.Contains(m.tags, t)
	}) {
		return false
	}
	return true
}

func (m matcher) matchesSearch(src source.Source) bool {
	if m.contains(src.Title) || m.contains(src.Description) {
		return true
	}
	if src.Author != "" && m.contains(src.Author) {
		return true
	}
	return slices.ContainsFunc(src.Tags, m.contains)
}

func (m matcher) score(src source.Source) int {
	if m.query == "" {
		return 0
	}
	total := 0
	if m.contains(src.Title) {
		total += titleWeight
	}
	if src.Author != "" && m.contains(src.Author) {
		total += authorWeight
	}
	return total
}

func (m matcher) contains(field string) bool {
	return strings.Contains(fold(field), m.query)
}

// fold applies Unicode case folding; plain lowercasing misses characters
// such as the Greek final sigma.
func fold(s string) string {
	if s == "" {
		return ""
	}
	return cases.Fold().String(s)
}
