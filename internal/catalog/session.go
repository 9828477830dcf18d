package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"sourcehub/internal/draft"
	"sourcehub/internal/draftstore"
	"sourcehub/internal/logging"
	"sourcehub/internal/query"
	"sourcehub/internal/services"
	"sourcehub/internal/source"
)

// ViewMode selects the active collection.
type ViewMode string

const (
	ModeOfficial ViewMode = "official"
	ModeDraft    ViewMode = "draft"
)

// ErrNothingToCopy is returned by CopyOfficialToDraft when the official
// collection is empty.
var ErrNothingToCopy = errors.New("official collection is empty")

// ParseViewMode resolves user input; empty input selects official.
func ParseViewMode(value string) (ViewMode, error) {
	switch ViewMode(strings.ToLower(strings.TrimSpace(value))) {
	case "", ModeOfficial:
		return ModeOfficial, nil
	case ModeDraft:
		return ModeDraft, nil
	}
	return "", services.Wrap(services.ErrValidation, "catalog", "parse mode",
		fmt.Sprintf("unknown view mode %q (want official or draft)", value), nil)
}

// Session is a browsing session. It is not safe for concurrent use.
type Session struct {
	official []source.Source
	draft    *draft.Workflow
	mode     ViewMode
	filters  source.FilterState
	sort     query.SortOption
	logger   *slog.Logger
}

// NewSession starts in official mode with no filters and relevance order.
func NewSession(official []source.Source, workflow *draft.Workflow, logger *slog.Logger) *Session {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Session{
		official: source.CloneAll(official),
		draft:    workflow,
		mode:     ModeOfficial,
		sort:     query.SortRelevance,
		logger:   logging.NewComponentLogger(logger, "catalog"),
	}
}

// Mode returns the active view mode.
func (s *Session) Mode() ViewMode { return s.mode }

// SetMode switches the active collection. Any actual change of mode clears
// the filters; the sort order is kept.
func (s *Session) SetMode(mode ViewMode) {
	if mode == s.mode {
		return
	}
	s.mode = mode
	s.filters = source.FilterState{}
	s.logger.Debug("view mode changed", logging.String(logging.FieldViewMode, string(mode)))
}

// Writable reports whether the active collection can be edited.
func (s *Session) Writable() bool { return s.mode == ModeDraft }

// Draft returns the draft workflow.
func (s *Session) Draft() *draft.Workflow { return s.draft }

// Official returns a copy of the official collection.
func (s *Session) Official() []source.Source { return source.CloneAll(s.official) }

// Active returns a copy of the collection selected by the view mode.
func (s *Session) Active() []source.Source {
	if s.mode == ModeDraft {
		return s.draft.Sources()
	}
	return s.Official()
}

// Filters returns a copy of the current filters.
func (s *Session) Filters() source.FilterState { return s.filters.Clone() }

// SetFilters replaces the current filters.
func (s *Session) SetFilters(f source.FilterState) { s.filters = f.Clone() }

// SetSearch sets the free-text query.
func (s *Session) SetSearch(text string) { s.filters.Search = text }

// ToggleCategory adds c to the category filter, or removes it when present.
func (s *Session) ToggleCategory(c source.Category) {
	s.filters.Categories = toggle(s.filters.Categories, c)
}

// ToggleSection adds sec to the section filter, or removes it when present.
func (s *Session) ToggleSection(sec source.Section) {
	s.filters.Sections = toggle(s.filters.Sections, sec)
}

// ToggleTag adds tag to the tag filter, or removes it when present.
func (s *Session) ToggleTag(tag string) {
	s.filters.Tags = toggle(s.filters.Tags, tag)
}

// ClearFilters resets every filter clause.
func (s *Session) ClearFilters() { s.filters = source.FilterState{} }

// Sort returns the current ordering.
func (s *Session) Sort() query.SortOption { return s.sort }

// SetSort changes the ordering.
func (s *Session) SetSort(opt query.SortOption) { s.sort = opt }

// View returns the active collection after filtering and sorting.
func (s *Session) View() []source.Source {
	return query.ComputeView(s.Active(), s.filters, s.sort)
}

// AvailableTags lists the distinct tags of the active collection.
func (s *Session) AvailableTags() []string {
	return source.UniqueTags(s.Active())
}

// Stats summarizes the active collection.
func (s *Session) Stats() query.Stats {
	return query.Summarize(s.Active())
}

// CopyOfficialToDraft replaces the draft with the official collection and
// switches to draft mode. An empty official collection leaves everything as
// it was and returns ErrNothingToCopy.
func (s *Session) CopyOfficialToDraft(ctx context.Context) error {
	if len(s.official) == 0 {
		return ErrNothingToCopy
	}
	if err := s.draft.ReplaceAll(ctx, s.official); err != nil {
		return err
	}
	s.SetMode(ModeDraft)
	s.logger.Info("official sources copied to draft", logging.Int("source_count", len(s.official)))
	return nil
}

// ImportDraft replaces the draft with the sources decoded from r. On any
// failure the draft is unchanged.
func (s *Session) ImportDraft(ctx context.Context, r io.Reader) (int, error) {
	sources, err := draftstore.Decode(r)
	if err != nil {
		return 0, err
	}
	if err := s.draft.ReplaceAll(ctx, sources); err != nil {
		return 0, err
	}
	s.logger.Info("draft imported", logging.Int("source_count", len(sources)))
	return len(sources), nil
}

// ExportDraft writes the draft as a JSON array.
func (s *Session) ExportDraft(w io.Writer) error {
	return draftstore.Encode(w, s.draft.Sources())
}

// ResetDraft empties the draft and its stored copy.
func (s *Session) ResetDraft(ctx context.Context) error {
	return s.draft.Clear(ctx)
}

func toggle[T comparable](values []T, v T) []T {
	if i := slices.Index(values, v); i >= 0 {
		return slices.Delete(slices.Clone(values), i, i+1)
	}
	return append(slices.Clone(values), v)
}
