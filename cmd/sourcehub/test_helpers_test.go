package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"sourcehub/internal/config"
	"sourcehub/internal/draftstore"
	"sourcehub/internal/testsupport"
)

type cliTestEnv struct {
	cfg          *config.Config
	configPath   string
	officialPath string
	baseDir      string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	homeDir := filepath.Join(base, "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", homeDir)
	t.Setenv("SOURCEHUB_OFFICIAL_URL", "")

	cfg := testsupport.NewConfig(t)
	officialPath := filepath.Join(base, "published", "sources.json")
	if err := draftstore.ExportToFile(officialPath, testsupport.SampleSources()); err != nil {
		t.Fatalf("write official sources: %v", err)
	}
	cfg.Official.URL = officialPath

	configPath := filepath.Join(homeDir, ".config", "sourcehub", "config.toml")
	writeTestConfig(t, configPath, cfg)

	return &cliTestEnv{
		cfg:          cfg,
		configPath:   configPath,
		officialPath: officialPath,
		baseDir:      base,
	}
}

func runCLI(t *testing.T, env *cliTestEnv, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--config", env.configPath}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeTestConfig(t *testing.T, path string, cfg *config.Config) {
	t.Helper()
	content := fmt.Sprintf(
		"[paths]\ndata_dir = %q\nlog_dir = %q\n\n[official]\nurl = %q\n\n[logging]\nlevel = \"error\"\n",
		cfg.Paths.DataDir,
		cfg.Paths.LogDir,
		cfg.Official.URL,
	)
	testsupport.WriteText(t, path, content)
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}

func requireNotContains(t *testing.T, output, substr string) {
	t.Helper()
	if strings.Contains(output, substr) {
		t.Fatalf("expected %q not to contain %q", output, substr)
	}
}
