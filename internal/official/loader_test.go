package official_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sourcehub/internal/official"
	"sourcehub/internal/testsupport"
)

const remotePayload = `[{"id":"r1","title":"Remote One","url":"https://r","category":"news","tags":["x"],"sections":["2.0"],"keyInsight":"","citation":"","description":""}]`

func TestBundledIsValid(t *testing.T) {
	sources := official.Bundled()
	require.NotEmpty(t, sources)
	seen := map[string]bool{}
	for _, src := range sources {
		assert.NotEmpty(t, src.ID)
		assert.False(t, seen[src.ID], "duplicate id %s", src.ID)
		seen[src.ID] = true
		assert.NotEmpty(t, src.Sections)
	}

	sources[0].Title = "mutated"
	assert.NotEqual(t, "mutated", official.Bundled()[0].Title)
}

func TestLoadEmptyLocationUsesBundled(t *testing.T) {
	res := official.NewLoader("", nil).Load(context.Background())
	assert.Equal(t, official.OriginBundled, res.Origin)
	assert.NoError(t, res.Err)
	assert.False(t, res.FellBack())
	assert.Equal(t, official.Bundled(), res.Sources)
}

func TestLoadRemote(t *testing.T) {
	var cacheControl string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cacheControl = r.Header.Get("Cache-Control")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(remotePayload))
	}))
	defer srv.Close()

	res := official.NewLoader(srv.URL+"/sources.json", nil, official.WithHTTPClient(srv.Client())).Load(context.Background())
	require.NoError(t, res.Err)
	assert.Equal(t, official.OriginRemote, res.Origin)
	require.Len(t, res.Sources, 1)
	assert.Equal(t, "r1", res.Sources[0].ID)
	assert.Equal(t, "no-store", cacheControl)
}

func TestLoadRemoteKeepsMistypedRecords(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[{"id":"r1","title":"Remote One","date":2024,"tags":"x"},{"id":"r2"}]`))
	}))
	defer srv.Close()

	res := official.NewLoader(srv.URL, nil, official.WithHTTPClient(srv.Client())).Load(context.Background())
	require.NoError(t, res.Err)
	assert.Equal(t, official.OriginRemote, res.Origin)
	require.Len(t, res.Sources, 2)
	assert.Equal(t, "Remote One", res.Sources[0].Title)
	assert.Empty(t, res.Sources[0].Date)
	assert.Nil(t, res.Sources[0].Tags)
	assert.Equal(t, "r2", res.Sources[1].ID)
}

func TestLoadRemoteFallsBack(t *testing.T) {
	cases := map[string]http.HandlerFunc{
		"status": func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "gone", http.StatusNotFound)
		},
		"not-json": func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("<html>"))
		},
		"object": func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"sources":[]}`))
		},
	}
	for name, handler := range cases {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(handler)
			defer srv.Close()

			res := official.NewLoader(srv.URL, nil, official.WithHTTPClient(srv.Client())).Load(context.Background())
			assert.Error(t, res.Err)
			assert.True(t, res.FellBack())
			assert.Equal(t, official.OriginBundled, res.Origin)
			assert.Equal(t, official.Bundled(), res.Sources)
		})
	}
}

func TestLoadRemoteUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	res := official.NewLoader(url, nil).Load(context.Background())
	assert.True(t, res.FellBack())
	assert.Equal(t, official.OriginBundled, res.Origin)
}

func TestLoadFromConfigFile(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithOfficialFile(remotePayload))
	res := official.NewFromConfig(cfg, nil).Load(context.Background())
	require.NoError(t, res.Err)
	assert.Equal(t, official.OriginFile, res.Origin)
	assert.Equal(t, "Remote One", res.Sources[0].Title)
}

func TestLoadMissingFileFallsBack(t *testing.T) {
	res := official.NewLoader(filepath.Join(t.TempDir(), "absent.json"), nil).Load(context.Background())
	assert.True(t, res.FellBack())
	assert.Equal(t, official.OriginBundled, res.Origin)
	assert.NotEmpty(t, res.Sources)
}
