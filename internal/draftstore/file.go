package draftstore

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"sourcehub/internal/services"
	"sourcehub/internal/source"
)

// DefaultExportName is the conventional export filename.
const DefaultExportName = "sources.json"

// ErrInvalidImport marks import input that is not a JSON array of sources.
var ErrInvalidImport = fmt.Errorf("%w: JSON must be an array of sources", services.ErrValidation)

// Encode writes sources as an indented JSON array followed by a newline.
func Encode(w io.Writer, sources []source.Source) error {
	data, err := json.MarshalIndent(source.CloneAll(sources), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal sources: %w", err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write sources: %w", err)
	}
	return nil
}

// ExportToFile writes sources to path atomically, creating parent directories.
func ExportToFile(path string, sources []source.Source) error {
	var buf bytes.Buffer
	if err := Encode(&buf, sources); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create export directory: %w", err)
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

// Decode reads a JSON array of sources. Only the top level is validated:
// malformed records are kept with whatever fields could be read, and a top
// level that is not an array fails with ErrInvalidImport.
func Decode(r io.Reader) ([]source.Source, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read import: %w", err)
	}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, ErrInvalidImport
	}
	sources, err := decodeRecords(trimmed)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidImport, err)
	}
	return sources, nil
}

// ImportFromFile decodes the sources stored at path.
func ImportFromFile(path string) ([]source.Source, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, services.Wrap(services.ErrNotFound, "draftstore", "import", fmt.Sprintf("no file at %s", path), nil)
	}
	if err != nil {
		return nil, fmt.Errorf("open import: %w", err)
	}
	defer f.Close()
	return Decode(f)
}
