package tui

import (
	"context"
	"slices"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sourcehub/internal/catalog"
	"sourcehub/internal/draft"
	"sourcehub/internal/draftstore"
	"sourcehub/internal/query"
	"sourcehub/internal/source"
	"sourcehub/internal/testsupport"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	w := draft.New(context.Background(), draftstore.NewAdapter(draftstore.NewMemoryKV(), nil), nil)
	m := New(catalog.NewSession(testsupport.SampleSources(), w, nil))
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return m
}

func keyMsg(key string) tea.KeyMsg {
	switch key {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
}

func press(m *Model, keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = m.Update(keyMsg(k))
	}
	return cmd
}

func visibleIDs(m *Model) []string {
	var ids []string
	for _, src := range m.Visible() {
		ids = append(ids, src.ID)
	}
	return ids
}

func TestModeSwitchClearsFilters(t *testing.T) {
	m := newTestModel(t)
	require.Len(t, m.Visible(), 5)

	// Academic is the second category.
	press(m, "c", "2", "esc")
	assert.Equal(t, []source.Category{source.CategoryAcademic}, m.Session().Filters().Categories)
	assert.Equal(t, []string{"src-age-verification"}, visibleIDs(m))

	press(m, "/", "privacy", "enter")
	assert.Equal(t, "privacy", m.Session().Filters().Search)

	press(m, "m")
	assert.Equal(t, catalog.ModeDraft, m.Session().Mode())
	assert.True(t, m.Session().Filters().IsZero())
	assert.Empty(t, m.search.Value())
	assert.Empty(t, m.Visible())
	view := m.View()
	assert.Contains(t, view, "Viewing draft sources; filters cleared")
	assert.Contains(t, view, emptyDraftNotice)
	assert.Contains(t, view, "Showing 0 of 0 draft sources")

	press(m, "m")
	assert.Equal(t, catalog.ModeOfficial, m.Session().Mode())
	assert.True(t, m.Session().Filters().IsZero())
	assert.Len(t, m.Visible(), 5)
}

func TestSearchFiltersAsYouType(t *testing.T) {
	m := newTestModel(t)

	press(m, "/", "DISCORD")
	assert.Equal(t, modeSearch, m.mode)
	assert.Equal(t, []string{"src-discord-statement"}, visibleIDs(m))
	assert.Contains(t, m.View(), "Showing 1 of 5 official sources")

	press(m, "enter")
	assert.Equal(t, modeNormal, m.mode)
	assert.Equal(t, "DISCORD", m.Session().Filters().Search)

	press(m, "/", "esc")
	assert.Empty(t, m.Session().Filters().Search)
	assert.Len(t, m.Visible(), 5)
}

func TestSearchKeysAreTextNotCommands(t *testing.T) {
	m := newTestModel(t)

	press(m, "/", "q", "m")
	assert.Equal(t, modeSearch, m.mode)
	assert.Equal(t, catalog.ModeOfficial, m.Session().Mode())
	assert.Equal(t, "qm", m.Session().Filters().Search)
}

func TestTagAndSectionPickers(t *testing.T) {
	m := newTestModel(t)

	press(m, "t")
	require.Equal(t, modeFilter, m.mode)
	require.NotEmpty(t, m.picker.options)
	first := m.picker.options[0].value
	press(m, "space")
	assert.Equal(t, []string{first}, m.Session().Filters().Tags)
	for _, src := range m.Visible() {
		assert.Contains(t, src.Tags, first)
	}

	press(m, "space")
	assert.Empty(t, m.Session().Filters().Tags)

	press(m, "s", "l", "l", "enter")
	assert.Equal(t, []source.Section{source.Section3}, m.Session().Filters().Sections)
	for _, src := range m.Visible() {
		assert.True(t, src.HasSection(source.Section3))
	}

	press(m, "s")
	assert.Equal(t, modeNormal, m.mode)
	press(m, "x")
	assert.True(t, m.Session().Filters().IsZero())
}

func TestSortCycles(t *testing.T) {
	m := newTestModel(t)
	options := query.SortOptions()
	require.Equal(t, query.SortRelevance, m.Session().Sort())

	for i := 1; i <= len(options); i++ {
		press(m, "o")
		assert.Equal(t, options[i%len(options)], m.Session().Sort())
	}

	m.Session().SetSort(query.SortDateNewest)
	m.refresh()
	dates := make([]string, 0, len(m.Visible()))
	for _, src := range m.Visible() {
		dates = append(dates, src.Date)
	}
	assert.True(t, slices.IsSortedFunc(dates, func(a, b string) int {
		switch {
		case a > b:
			return -1
		case a < b:
			return 1
		}
		return 0
	}))
}

func TestCursorAndDetail(t *testing.T) {
	m := newTestModel(t)

	press(m, "k")
	sel, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, m.Visible()[0].ID, sel.ID)

	press(m, "j", "j")
	sel, _ = m.Selected()
	assert.Equal(t, m.Visible()[2].ID, sel.ID)

	press(m, "G", "j")
	sel, _ = m.Selected()
	assert.Equal(t, m.Visible()[4].ID, sel.ID)

	press(m, "enter")
	assert.Contains(t, m.View(), sel.ID)

	press(m, "i")
	assert.Contains(t, m.View(), "Total sources: 5")
}

func TestQuitKeys(t *testing.T) {
	for _, key := range []string{"q", "ctrl+c"} {
		m := newTestModel(t)
		cmd := press(m, key)
		require.NotNil(t, cmd, key)
		_, quit := cmd().(tea.QuitMsg)
		assert.True(t, quit, key)
	}
}

func TestHelpToggles(t *testing.T) {
	m := newTestModel(t)
	press(m, "?")
	assert.Contains(t, m.View(), "Switch official/draft")
	press(m, "q")
	assert.Equal(t, modeNormal, m.mode)
}

func TestConfirmModel(t *testing.T) {
	var m tea.Model = confirmModel{question: "Clear the draft?"}
	assert.Contains(t, m.View(), "[y/N]")

	m, cmd := m.Update(keyMsg("x"))
	assert.Nil(t, cmd)
	assert.False(t, m.(confirmModel).done)

	m, cmd = m.Update(keyMsg("y"))
	require.NotNil(t, cmd)
	assert.True(t, m.(confirmModel).answer)
	assert.Contains(t, m.View(), "yes")

	m = confirmModel{question: "Clear the draft?"}
	m, _ = m.Update(keyMsg("enter"))
	assert.True(t, m.(confirmModel).done)
	assert.False(t, m.(confirmModel).answer)
}

func TestTruncateStr(t *testing.T) {
	tests := []struct {
		input string
		n     int
		want  string
	}{
		{"hello", 10, "hello"},
		{"hello world", 8, "hello..."},
		{"abcd", 3, "abc"},
		{"", 5, ""},
		{"test", 0, ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, truncateStr(tt.input, tt.n), "truncateStr(%q, %d)", tt.input, tt.n)
	}
}
