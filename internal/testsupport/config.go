package testsupport

import (
	"path/filepath"
	"testing"

	"sourcehub/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// The official dataset defaults to the bundled copy.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.DataDir = filepath.Join(base, "data")
	cfgVal.Paths.LogDir = filepath.Join(base, "data", "logs")
	cfgVal.Official.URL = ""

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}
	for _, opt := range opts {
		opt(builder)
	}
	return builder.cfg
}

// WithOfficialURL points the official loader at url (http(s) or a file path).
func WithOfficialURL(url string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Official.URL = url
	}
}

// WithOfficialFile writes contents to a file under the temp root and points
// the official loader at it.
func WithOfficialFile(contents string) ConfigOption {
	return func(b *configBuilder) {
		path := filepath.Join(b.baseDir, "official.json")
		WriteText(b.t, path, contents)
		b.cfg.Official.URL = path
	}
}

// WithLogLevel overrides the configured log level.
func WithLogLevel(level string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Logging.Level = level
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.DataDir)
}
