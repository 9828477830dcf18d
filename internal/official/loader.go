package official

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"sourcehub/internal/config"
	"sourcehub/internal/draftstore"
	"sourcehub/internal/logging"
	"sourcehub/internal/source"
)

//go:embed bundled_sources.json
var bundledJSON []byte

// Origin names where a loaded collection came from.
type Origin string

const (
	OriginRemote  Origin = "remote"
	OriginFile    Origin = "file"
	OriginBundled Origin = "bundled"
)

const (
	defaultTimeout = 10 * time.Second
	maxPayloadSize = 16 << 20
)

// Result is the outcome of Load. Err holds the reason for a fallback to the
// bundled collection and is nil otherwise.
type Result struct {
	Sources  []source.Source
	Origin   Origin
	Location string
	Err      error
}

// FellBack reports whether the configured location could not be used.
func (r Result) FellBack() bool {
	return r.Err != nil
}

// Loader fetches the official collection.
type Loader struct {
	location string
	client   *http.Client
	logger   *slog.Logger
}

// Option configures a Loader.
type Option func(*Loader)

// WithHTTPClient replaces the client used for remote locations.
func WithHTTPClient(client *http.Client) Option {
	return func(l *Loader) {
		if client != nil {
			l.client = client
		}
	}
}

// WithTimeout bounds a remote fetch. Non-positive values keep the default.
func WithTimeout(timeout time.Duration) Option {
	return func(l *Loader) {
		if timeout > 0 {
			l.client = &http.Client{Timeout: timeout, Transport: l.client.Transport}
		}
	}
}

// NewLoader returns a loader for location: an http(s) URL, a file path, or
// empty for the bundled collection.
func NewLoader(location string, logger *slog.Logger, opts ...Option) *Loader {
	if logger == nil {
		logger = logging.NewNop()
	}
	l := &Loader{
		location: strings.TrimSpace(location),
		client:   &http.Client{Timeout: defaultTimeout},
		logger:   logging.NewComponentLogger(logger, "official"),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// NewFromConfig builds a loader from the [official] config section.
func NewFromConfig(cfg *config.Config, logger *slog.Logger, opts ...Option) *Loader {
	timeout := time.Duration(cfg.Official.TimeoutSeconds) * time.Second
	opts = append([]Option{WithTimeout(timeout)}, opts...)
	return NewLoader(cfg.Official.URL, logger, opts...)
}

// Load returns the official collection. It always yields a usable collection.
func (l *Loader) Load(ctx context.Context) Result {
	if l.location == "" {
		return Result{Sources: Bundled(), Origin: OriginBundled}
	}

	var (
		sources []source.Source
		origin  Origin
		err     error
	)
	if config.IsRemoteURL(l.location) {
		origin = OriginRemote
		sources, err = l.fetch(ctx)
	} else {
		origin = OriginFile
		sources, err = l.readFile()
	}
	if err != nil {
		logging.WarnWithContext(l.logger, "official sources unavailable", "official_fallback",
			logging.String("location", l.location),
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "check official.url in the config file"),
			logging.String(logging.FieldImpact, "showing the bundled source list"))
		return Result{Sources: Bundled(), Origin: OriginBundled, Location: l.location, Err: err}
	}

	l.logger.Debug("official sources loaded",
		logging.String("location", l.location),
		logging.String("origin", string(origin)),
		logging.Int("source_count", len(sources)))
	return Result{Sources: sources, Origin: origin, Location: l.location}
}

func (l *Loader) fetch(ctx context.Context) ([]source.Source, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.location, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-store")

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("fetch: HTTP %d", resp.StatusCode)
	}
	return draftstore.Decode(io.LimitReader(resp.Body, maxPayloadSize))
}

func (l *Loader) readFile() ([]source.Source, error) {
	data, err := os.ReadFile(l.location)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return draftstore.Decode(bytes.NewReader(data))
}

// Bundled returns a fresh copy of the collection compiled into the binary.
func Bundled() []source.Source {
	sources, err := draftstore.Decode(bytes.NewReader(bundledJSON))
	if err != nil {
		panic(fmt.Sprintf("official: bundled_sources.json is invalid: %v", err))
	}
	return sources
}
