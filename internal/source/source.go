package source

import (
	"fmt"
	"slices"
	"strings"

	"sourcehub/internal/services"
)

// Category classifies where a source comes from.
type Category string

const (
	CategoryNews      Category = "news"
	CategoryAcademic  Category = "academic"
	CategoryOfficial  Category = "official"
	CategoryPolicy    Category = "policy"
	CategoryTechnical Category = "technical"
)

// Section is a fixed taxonomy slot describing where a source is cited.
type Section string

const (
	Section1 Section = "1.0"
	Section2 Section = "2.0"
	Section3 Section = "3.0"
	Section4 Section = "4.0"
	Section5 Section = "5.0"
)

// Source is a catalog entry. JSON field names match the published sources.json payload.
type Source struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Author      string    `json:"author,omitempty"`
	Date        string    `json:"date,omitempty"`
	URL         string    `json:"url"`
	Category    Category  `json:"category"`
	Tags        []string  `json:"tags"`
	Sections    []Section `json:"sections"`
	KeyInsight  string    `json:"keyInsight"`
	Citation    string    `json:"citation"`
	Description string    `json:"description"`
}

// Clone returns a deep copy so callers can never alias a collection's slices.
func (s Source) Clone() Source {
	out := s
	if s.Tags != nil {
		out.Tags = slices.Clone(s.Tags)
	}
	if s.Sections != nil {
		out.Sections = slices.Clone(s.Sections)
	}
	return out
}

// HasSection reports whether the source is placed in sec.
func (s Source) HasSection(sec Section) bool {
	return slices.Contains(s.Sections, sec)
}

// CloneAll deep-copies a collection. A nil input yields an empty, non-nil slice.
func CloneAll(sources []Source) []Source {
	out := make([]Source, len(sources))
	for i, src := range sources {
		out[i] = src.Clone()
	}
	return out
}

// FilterState is the transient query applied to a collection. Empty selections
// impose no constraint.
type FilterState struct {
	Search     string     `json:"search"`
	Categories []Category `json:"categories"`
	Tags       []string   `json:"tags"`
	Sections   []Section  `json:"sections"`
}

// IsZero reports whether no filter clause is active.
func (f FilterState) IsZero() bool {
	return f.Search == "" && len(f.Categories) == 0 && len(f.Tags) == 0 && len(f.Sections) == 0
}

// ActiveCount is the number of selected categories, tags, and sections. The
// search text is not counted.
func (f FilterState) ActiveCount() int {
	return len(f.Categories) + len(f.Tags) + len(f.Sections)
}

// Clone returns a copy that shares no slices with f.
func (f FilterState) Clone() FilterState {
	return FilterState{
		Search:     f.Search,
		Categories: slices.Clone(f.Categories),
		Tags:       slices.Clone(f.Tags),
		Sections:   slices.Clone(f.Sections),
	}
}

// ParseCategory resolves user input to a Category.
func ParseCategory(value string) (Category, error) {
	normalized := Category(strings.ToLower(strings.TrimSpace(value)))
	for _, info := range categoryTable {
		if info.Value == normalized {
			return normalized, nil
		}
	}
	return "", services.Wrap(services.ErrValidation, "source", "parse category",
		fmt.Sprintf("unknown category %q (want one of %s)", value, strings.Join(CategoryValues(), ", ")), nil)
}

// ParseSection resolves user input to a Section. "3" is accepted as "3.0".
func ParseSection(value string) (Section, error) {
	normalized := strings.TrimSpace(value)
	if len(normalized) == 1 {
		normalized += ".0"
	}
	for _, info := range sectionTable {
		if string(info.Value) == normalized {
			return info.Value, nil
		}
	}
	return "", services.Wrap(services.ErrValidation, "source", "parse section",
		fmt.Sprintf("unknown section %q (want one of %s)", value, strings.Join(SectionValues(), ", ")), nil)
}

// ParseCategories parses every value, failing on the first unknown one.
func ParseCategories(values []string) ([]Category, error) {
	out := make([]Category, 0, len(values))
	for _, v := range values {
		c, err := ParseCategory(v)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// ParseSections parses every value, failing on the first unknown one.
func ParseSections(values []string) ([]Section, error) {
	out := make([]Section, 0, len(values))
	for _, v := range values {
		s, err := ParseSection(v)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}
