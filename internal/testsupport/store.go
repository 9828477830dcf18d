package testsupport

import (
	"testing"

	"sourcehub/internal/config"
	"sourcehub/internal/draftstore"
)

// MustOpenStore opens the draft database for cfg and closes it on cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *draftstore.SQLiteKV {
	t.Helper()

	store, err := draftstore.Open(cfg)
	if err != nil {
		t.Fatalf("open draft store: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})
	return store
}
