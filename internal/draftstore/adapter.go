package draftstore

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"sourcehub/internal/logging"
	"sourcehub/internal/services"
	"sourcehub/internal/source"
)

// DraftKey names the stored draft. The suffix versions the payload shape.
const DraftKey = "sources_draft_v1"

// Adapter stores a source collection under DraftKey.
type Adapter struct {
	kv     KV
	logger *slog.Logger
}

// NewAdapter wraps kv. A nil logger discards output.
func NewAdapter(kv KV, logger *slog.Logger) *Adapter {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Adapter{kv: kv, logger: logging.NewComponentLogger(logger, "draftstore")}
}

// Load returns the stored draft. It never fails: a missing, empty, or
// unreadable entry yields an empty collection.
func (a *Adapter) Load(ctx context.Context) []source.Source {
	raw, found, err := a.kv.Get(ctx, DraftKey)
	if err != nil {
		logging.WarnWithContext(a.logger, "draft store unreadable", "draft_store_unreadable",
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "check the draft database file permissions"),
			logging.String(logging.FieldImpact, "starting with an empty draft"))
		return []source.Source{}
	}
	if !found || strings.TrimSpace(raw) == "" {
		return []source.Source{}
	}

	sources, err := decodeRecords([]byte(raw))
	if err != nil {
		logging.WarnWithContext(a.logger, "stored draft is corrupt", "draft_store_corrupt",
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "run 'sourcehub draft clear' to discard it"),
			logging.String(logging.FieldImpact, "starting with an empty draft"))
		return []source.Source{}
	}
	a.logger.Debug("loaded draft", logging.Int("source_count", len(sources)))
	return sources
}

// Save replaces the stored draft with sources.
func (a *Adapter) Save(ctx context.Context, sources []source.Source) error {
	payload, err := json.MarshalIndent(source.CloneAll(sources), "", "  ")
	if err != nil {
		return services.Wrap(services.ErrValidation, "draftstore", "save", "encode draft", err)
	}
	if err := a.kv.Put(ctx, DraftKey, string(payload)); err != nil {
		return services.Wrap(services.ErrTransient, "draftstore", "save", "write draft", err)
	}
	a.logger.Debug("saved draft", logging.Int("source_count", len(sources)))
	return nil
}

// Clear erases the stored draft.
func (a *Adapter) Clear(ctx context.Context) error {
	if err := a.kv.Delete(ctx, DraftKey); err != nil {
		return services.Wrap(services.ErrTransient, "draftstore", "clear", "delete draft", err)
	}
	a.logger.Debug("cleared draft")
	return nil
}
