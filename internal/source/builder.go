package source

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"sourcehub/internal/services"
)

// Builder holds the raw fields of a draft record before validation.
type Builder struct {
	ID          string
	Title       string
	Author      string
	Date        string
	URL         string
	Category    string
	Tags        string
	Sections    []Section
	KeyInsight  string
	Citation    string
	Description string
}

// NewBuilder returns a builder with the editor defaults for a new record.
func NewBuilder() *Builder {
	return &Builder{
		Category: string(CategoryOfficial),
		Sections: []Section{Section1},
	}
}

// BuilderFrom pre-fills a builder for editing an existing record.
func BuilderFrom(src Source) *Builder {
	sections := append([]Section(nil), src.Sections...)
	if len(sections) == 0 {
		sections = []Section{Section1}
	}
	return &Builder{
		ID:          src.ID,
		Title:       src.Title,
		Author:      src.Author,
		Date:        src.Date,
		URL:         src.URL,
		Category:    string(src.Category),
		Tags:        strings.Join(src.Tags, ", "),
		Sections:    sections,
		KeyInsight:  src.KeyInsight,
		Citation:    src.Citation,
		Description: src.Description,
	}
}

// ToggleSection adds sec when absent and removes it when present.
func (b *Builder) ToggleSection(sec Section) {
	if i := slices.Index(b.Sections, sec); i >= 0 {
		b.Sections = slices.Delete(slices.Clone(b.Sections), i, i+1)
		return
	}
	b.Sections = append(slices.Clone(b.Sections), sec)
}

// FieldError describes one invalid form field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError collects every field error found by Build.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return "invalid source: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error { return services.ErrValidation }

// Has reports whether field failed validation.
func (e *ValidationError) Has(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

// Build validates the builder and produces a trimmed record. A new ID is
// assigned when the builder has none. On failure the returned error lists
// every invalid field and the Source is zero.
func (b *Builder) Build(now time.Time) (Source, error) {
	var fields []FieldError

	title := strings.TrimSpace(b.Title)
	if title == "" {
		fields = append(fields, FieldError{Field: "title", Message: "is required"})
	}
	url := strings.TrimSpace(b.URL)
	if url == "" {
		fields = append(fields, FieldError{Field: "url", Message: "is required"})
	}
	if len(b.Sections) == 0 {
		fields = append(fields, FieldError{Field: "sections", Message: "select at least one section"})
	}
	category, err := ParseCategory(b.Category)
	if err != nil {
		fields = append(fields, FieldError{Field: "category", Message: fmt.Sprintf("unknown value %q", b.Category)})
	}
	if len(fields) > 0 {
		return Source{}, &ValidationError{Fields: fields}
	}

	id := strings.TrimSpace(b.ID)
	if id == "" {
		id = NewID(now)
	}
	return Source{
		ID:          id,
		Title:       title,
		Author:      strings.TrimSpace(b.Author),
		Date:        strings.TrimSpace(b.Date),
		URL:         url,
		Category:    category,
		Tags:        ParseTags(b.Tags),
		Sections:    append([]Section(nil), b.Sections...),
		KeyInsight:  strings.TrimSpace(b.KeyInsight),
		Citation:    strings.TrimSpace(b.Citation),
		Description: strings.TrimSpace(b.Description),
	}, nil
}
