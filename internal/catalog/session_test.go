package catalog_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sourcehub/internal/catalog"
	"sourcehub/internal/draft"
	"sourcehub/internal/draftstore"
	"sourcehub/internal/query"
	"sourcehub/internal/services"
	"sourcehub/internal/source"
	"sourcehub/internal/testsupport"
)

func newSession(t *testing.T, official []source.Source) (*catalog.Session, *draftstore.MemoryKV) {
	t.Helper()
	kv := draftstore.NewMemoryKV()
	w := draft.New(context.Background(), draftstore.NewAdapter(kv, nil), nil)
	return catalog.NewSession(official, w, nil), kv
}

func TestParseViewMode(t *testing.T) {
	mode, err := catalog.ParseViewMode("")
	require.NoError(t, err)
	assert.Equal(t, catalog.ModeOfficial, mode)

	mode, err = catalog.ParseViewMode(" Draft ")
	require.NoError(t, err)
	assert.Equal(t, catalog.ModeDraft, mode)

	_, err = catalog.ParseViewMode("archive")
	assert.True(t, errors.Is(err, services.ErrValidation))
}

func TestModeSwitchResetsFilters(t *testing.T) {
	s, _ := newSession(t, testsupport.SampleSources())
	s.SetSearch("breach")
	s.ToggleCategory(source.CategoryNews)
	s.ToggleTag("breach")
	s.ToggleSection(source.Section3)
	s.SetSort(query.SortDateNewest)

	s.SetMode(catalog.ModeOfficial)
	assert.Equal(t, 3, s.Filters().ActiveCount(), "same mode keeps filters")

	s.SetMode(catalog.ModeDraft)
	assert.True(t, s.Filters().IsZero())
	assert.Equal(t, query.SortDateNewest, s.Sort())
	assert.True(t, s.Writable())

	s.SetSearch("x")
	s.SetMode(catalog.ModeOfficial)
	assert.True(t, s.Filters().IsZero())
	assert.False(t, s.Writable())
}

func TestToggleFilters(t *testing.T) {
	s, _ := newSession(t, testsupport.SampleSources())
	s.ToggleTag("uk")
	s.ToggleTag("breach")
	s.ToggleTag("uk")
	assert.Equal(t, []string{"breach"}, s.Filters().Tags)

	f := s.Filters()
	f.Tags[0] = "mutated"
	assert.Equal(t, []string{"breach"}, s.Filters().Tags)

	s.ClearFilters()
	assert.True(t, s.Filters().IsZero())
}

func TestViewFollowsActiveCollection(t *testing.T) {
	ctx := context.Background()
	s, _ := newSession(t, testsupport.SampleSources())

	s.ToggleCategory(source.CategoryAcademic)
	view := s.View()
	require.Len(t, view, 1)
	assert.Equal(t, "src-age-verification", view[0].ID)

	s.SetMode(catalog.ModeDraft)
	assert.Empty(t, s.View())
	assert.Empty(t, s.AvailableTags())

	_, err := s.Draft().Upsert(ctx, source.Source{ID: "d1", Title: "Draft only", Tags: []string{"zeta", "alpha"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "zeta"}, s.AvailableTags())
	assert.Equal(t, 1, s.Stats().Total)
}

func TestCopyOfficialToDraft(t *testing.T) {
	ctx := context.Background()
	s, _ := newSession(t, testsupport.SampleSources())
	s.SetSearch("left over")

	require.NoError(t, s.CopyOfficialToDraft(ctx))
	assert.Equal(t, catalog.ModeDraft, s.Mode())
	assert.True(t, s.Filters().IsZero())
	assert.Equal(t, testsupport.SampleSources(), s.Draft().Sources())
}

func TestCopyEmptyOfficialIsNoOp(t *testing.T) {
	ctx := context.Background()
	s, kv := newSession(t, nil)
	_, err := s.Draft().Upsert(ctx, source.Source{ID: "keep"})
	require.NoError(t, err)
	writes := kv.Writes()

	err = s.CopyOfficialToDraft(ctx)
	assert.ErrorIs(t, err, catalog.ErrNothingToCopy)
	assert.Equal(t, catalog.ModeOfficial, s.Mode())
	assert.Equal(t, 1, s.Draft().Len())
	assert.Equal(t, writes, kv.Writes())
}

func TestImportExportDraft(t *testing.T) {
	ctx := context.Background()
	s, _ := newSession(t, nil)

	var buf bytes.Buffer
	require.NoError(t, draftstore.Encode(&buf, testsupport.SampleSources()))
	n, err := s.ImportDraft(ctx, &buf)
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	var out bytes.Buffer
	require.NoError(t, s.ExportDraft(&out))
	roundTrip, err := draftstore.Decode(&out)
	require.NoError(t, err)
	assert.Equal(t, testsupport.SampleSources(), roundTrip)

	_, err = s.ImportDraft(ctx, strings.NewReader(`{"not":"an array"}`))
	assert.ErrorIs(t, err, draftstore.ErrInvalidImport)
	assert.Equal(t, 5, s.Draft().Len())
}

func TestResetDraft(t *testing.T) {
	ctx := context.Background()
	s, kv := newSession(t, testsupport.SampleSources())
	require.NoError(t, s.CopyOfficialToDraft(ctx))
	require.NoError(t, s.ResetDraft(ctx))
	assert.Equal(t, 0, s.Draft().Len())
	_, found, _ := kv.Get(ctx, draftstore.DraftKey)
	assert.False(t, found)
	assert.Len(t, s.Official(), 5)
}
