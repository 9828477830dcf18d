package source_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sourcehub/internal/services"
	"sourcehub/internal/source"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func TestBuildTrimsAndAssignsID(t *testing.T) {
	b := source.NewBuilder()
	b.Title = "  Age Verification Risks  "
	b.Author = "   "
	b.Date = " 2025-07-25 "
	b.URL = " https://example.com/paper "
	b.Category = "Academic"
	b.Tags = "privacy,  age-verification , ,privacy"
	b.Description = " notes "

	src, err := b.Build(fixedNow)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(src.ID, "src-"))
	assert.Equal(t, "Age Verification Risks", src.Title)
	assert.Empty(t, src.Author)
	assert.Equal(t, "2025-07-25", src.Date)
	assert.Equal(t, "https://example.com/paper", src.URL)
	assert.Equal(t, source.CategoryAcademic, src.Category)
	assert.Equal(t, []string{"privacy", "age-verification", "privacy"}, src.Tags)
	assert.Equal(t, []source.Section{source.Section1}, src.Sections)
	assert.Equal(t, "notes", src.Description)
}

func TestBuildKeepsExistingID(t *testing.T) {
	b := source.NewBuilder()
	b.ID = "keep-me"
	b.Title = "T"
	b.URL = "u"

	src, err := b.Build(fixedNow)
	require.NoError(t, err)
	assert.Equal(t, "keep-me", src.ID)
}

func TestBuildReportsEveryFieldError(t *testing.T) {
	b := &source.Builder{Title: "  ", URL: "", Category: "blog"}

	_, err := b.Build(fixedNow)
	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrValidation))

	var verr *source.ValidationError
	require.True(t, errors.As(err, &verr))
	for _, field := range []string{"title", "url", "sections", "category"} {
		assert.True(t, verr.Has(field), "expected %s error in %v", field, verr)
	}
	assert.Contains(t, err.Error(), "select at least one section")
}

func TestBuilderFromRoundTrip(t *testing.T) {
	original := source.Source{
		ID:       "a",
		Title:    "Discord Statement",
		URL:      "https://discord.com",
		Category: source.CategoryOfficial,
		Tags:     []string{"compliance", "uk"},
		Sections: []source.Section{source.Section1, source.Section3},
	}
	b := source.BuilderFrom(original)
	assert.Equal(t, "compliance, uk", b.Tags)

	rebuilt, err := b.Build(fixedNow)
	require.NoError(t, err)
	assert.Equal(t, original.ID, rebuilt.ID)
	assert.Equal(t, original.Tags, rebuilt.Tags)
	assert.Equal(t, original.Sections, rebuilt.Sections)
}

func TestBuilderFromDefaultsEmptySections(t *testing.T) {
	b := source.BuilderFrom(source.Source{ID: "x"})
	assert.Equal(t, []source.Section{source.Section1}, b.Sections)
}

func TestToggleSection(t *testing.T) {
	b := source.NewBuilder()
	b.ToggleSection(source.Section3)
	assert.Equal(t, []source.Section{source.Section1, source.Section3}, b.Sections)
	b.ToggleSection(source.Section1)
	assert.Equal(t, []source.Section{source.Section3}, b.Sections)
	b.ToggleSection(source.Section3)
	assert.Empty(t, b.Sections)
}

func TestToggleSectionLeavesCallerSliceIntact(t *testing.T) {
	assigned := []source.Section{source.Section1, source.Section2, source.Section3}
	b := source.NewBuilder()
	b.Sections = assigned

	b.ToggleSection(source.Section1)
	assert.Equal(t, []source.Section{source.Section2, source.Section3}, b.Sections)
	assert.Equal(t, []source.Section{source.Section1, source.Section2, source.Section3}, assigned)

	b.ToggleSection(source.Section4)
	assert.Equal(t, []source.Section{source.Section1, source.Section2, source.Section3}, assigned)
}

func TestNewIDIsUniqueWithinSession(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 200; i++ {
		id := source.NewID(fixedNow)
		_, dup := seen[id]
		require.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
}
