package draft

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"sourcehub/internal/logging"
	"sourcehub/internal/services"
	"sourcehub/internal/source"
)

// Persister stores the full draft collection.
type Persister interface {
	Load(ctx context.Context) []source.Source
	Save(ctx context.Context, sources []source.Source) error
	Clear(ctx context.Context) error
}

// Workflow is the editable draft collection. It is safe for concurrent use.
type Workflow struct {
	mu      sync.RWMutex
	store   Persister
	sources []source.Source
	logger  *slog.Logger
	now     func() time.Time
}

// Option configures a Workflow.
type Option func(*Workflow)

// WithClock overrides the time source used for new record IDs.
func WithClock(now func() time.Time) Option {
	return func(w *Workflow) {
		if now != nil {
			w.now = now
		}
	}
}

// New loads the persisted draft and returns a workflow over it.
func New(ctx context.Context, store Persister, logger *slog.Logger, opts ...Option) *Workflow {
	if logger == nil {
		logger = logging.NewNop()
	}
	w := &Workflow{
		store:  store,
		logger: logging.NewComponentLogger(logger, "draft"),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(w)
	}
	w.sources = source.CloneAll(store.Load(ctx))
	w.logger.Debug("draft loaded", logging.Int("source_count", len(w.sources)))
	return w
}

// Sources returns a copy of the draft, most recently added first.
func (w *Workflow) Sources() []source.Source {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return source.CloneAll(w.sources)
}

// Len returns the number of draft records.
func (w *Workflow) Len() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.sources)
}

// Get returns the record with id.
func (w *Workflow) Get(id string) (source.Source, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if i := w.indexOf(id); i >= 0 {
		return w.sources[i].Clone(), true
	}
	return source.Source{}, false
}

// Upsert replaces the record sharing src's id in place, or prepends src when
// no record matches. A blank id is assigned a fresh one. created reports
// whether a new record was added.
func (w *Workflow) Upsert(ctx context.Context, src source.Source) (created bool, err error) {
	src = src.Clone()
	src.ID = strings.TrimSpace(src.ID)
	if src.ID == "" {
		src.ID = source.NewID(w.now())
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	next := source.CloneAll(w.sources)
	if i := w.indexOf(src.ID); i >= 0 {
		next[i] = src
	} else {
		next = slices.Insert(next, 0, src)
		created = true
	}
	if err := w.commit(ctx, next, "upsert"); err != nil {
		return false, err
	}
	w.logger.Info("draft source saved",
		logging.String("source_id", src.ID),
		logging.Bool("created", created))
	return created, nil
}

// Add validates b and inserts the resulting record. Nothing changes when
// validation fails.
func (w *Workflow) Add(ctx context.Context, b *source.Builder) (source.Source, error) {
	src, err := b.Build(w.now())
	if err != nil {
		return source.Source{}, err
	}
	if _, err := w.Upsert(ctx, src); err != nil {
		return source.Source{}, err
	}
	return src, nil
}

// Edit applies mutate to a builder pre-filled from the record with id, then
// validates and stores the result under the same id. An error from mutate
// aborts the edit and leaves the draft unchanged.
func (w *Workflow) Edit(ctx context.Context, id string, mutate func(*source.Builder) error) (source.Source, error) {
	existing, ok := w.Get(id)
	if !ok {
		return source.Source{}, services.Wrap(services.ErrNotFound, "draft", "edit",
			fmt.Sprintf("no draft source with id %q", id), nil)
	}
	b := source.BuilderFrom(existing)
	if mutate != nil {
		if err := mutate(b); err != nil {
			return source.Source{}, err
		}
	}
	b.ID = existing.ID
	src, err := b.Build(w.now())
	if err != nil {
		return source.Source{}, err
	}
	if _, err := w.Upsert(ctx, src); err != nil {
		return source.Source{}, err
	}
	return src, nil
}

// Delete removes the record with id. An absent id reports false and leaves
// both the draft and the store untouched.
func (w *Workflow) Delete(ctx context.Context, id string) (bool, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	i := w.indexOf(id)
	if i < 0 {
		return false, nil
	}
	next := slices.Delete(source.CloneAll(w.sources), i, i+1)
	if err := w.commit(ctx, next, "delete"); err != nil {
		return false, err
	}
	w.logger.Info("draft source deleted", logging.String("source_id", id))
	return true, nil
}

// ReplaceAll swaps the whole draft for a copy of sources.
func (w *Workflow) ReplaceAll(ctx context.Context, sources []source.Source) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.commit(ctx, source.CloneAll(sources), "replace"); err != nil {
		return err
	}
	w.logger.Info("draft replaced", logging.Int("source_count", len(sources)))
	return nil
}

// Clear empties the draft and erases the stored copy.
func (w *Workflow) Clear(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.store.Clear(ctx); err != nil {
		return err
	}
	w.sources = []source.Source{}
	w.logger.Info("draft cleared")
	return nil
}

// commit persists next and installs it; callers hold w.mu.
func (w *Workflow) commit(ctx context.Context, next []source.Source, op string) error {
	if err := w.store.Save(ctx, next); err != nil {
		logging.WarnWithContext(w.logger, "draft change not saved", "draft_persist_failed",
			logging.String("operation", op),
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "check the draft database"),
			logging.String(logging.FieldImpact, "the change was discarded"))
		return err
	}
	w.sources = next
	return nil
}

func (w *Workflow) indexOf(id string) int {
	return slices.IndexFunc(w.sources, func(s source.Source) bool { return s.ID == id })
}
