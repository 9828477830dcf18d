package draftstore_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"sourcehub/internal/draftstore"
	"sourcehub/internal/services"
	"sourcehub/internal/source"
	"sourcehub/internal/testsupport"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	want := testsupport.SampleSources()
	var buf bytes.Buffer
	if err := draftstore.Encode(&buf, want); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "[\n  {") || !strings.HasSuffix(buf.String(), "]\n") {
		t.Fatalf("unexpected encoding layout:\n%s", buf.String())
	}
	got, err := draftstore.Decode(&buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("round trip mismatch\n got: %#v\nwant: %#v", got, want)
	}
}

func TestEncodeEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := draftstore.Encode(&buf, nil); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if buf.String() != "[]\n" {
		t.Fatalf("Encode(nil) = %q", buf.String())
	}
}

func TestDecodeRejectsNonArray(t *testing.T) {
	inputs := []string{"", "   ", `{"id":"a"}`, "null", `"text"`, "[{", "[1,]"}
	for _, input := range inputs {
		_, err := draftstore.Decode(strings.NewReader(input))
		if !errors.Is(err, draftstore.ErrInvalidImport) {
			t.Fatalf("Decode(%q) error = %v, want ErrInvalidImport", input, err)
		}
		if !errors.Is(err, services.ErrValidation) {
			t.Fatalf("Decode(%q) error should classify as validation", input)
		}
		if !strings.Contains(err.Error(), "JSON must be an array of sources") {
			t.Fatalf("Decode(%q) message = %q", input, err.Error())
		}
	}
}

func TestDecodeAcceptsPartialRecords(t *testing.T) {
	got, err := draftstore.Decode(strings.NewReader(`[{"title":"only a title"}, {}]`))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(got) != 2 || got[0].Title != "only a title" {
		t.Fatalf("Decode() = %#v", got)
	}
}

func TestDecodeKeepsRecordsWithMistypedFields(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  []source.Source
	}{
		{
			name:  "tags as string",
			input: `[{"id":"a","title":"x","tags":"privacy"}]`,
			want:  []source.Source{{ID: "a", Title: "x"}},
		},
		{
			name:  "numeric date",
			input: `[{"id":"a","date":2024,"sections":["1.0"]}]`,
			want:  []source.Source{{ID: "a", Sections: []source.Section{source.Section1}}},
		},
		{
			name:  "mixed tag elements",
			input: `[{"id":"a","tags":["uk",7,"privacy"],"category":"news"}]`,
			want:  []source.Source{{ID: "a", Category: source.CategoryNews, Tags: []string{"uk", "privacy"}}},
		},
		{
			name:  "non-object element",
			input: `[1, {"id":"b"}]`,
			want:  []source.Source{{}, {ID: "b"}},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := draftstore.Decode(strings.NewReader(tc.input))
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("Decode() = %#v, want %#v", got, tc.want)
			}
		})
	}
}

func TestExportImportFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", draftstore.DefaultExportName)
	want := []source.Source{testsupport.SampleSources()[0]}

	if err := draftstore.ExportToFile(path, want); err != nil {
		t.Fatalf("ExportToFile: %v", err)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Fatalf("temp file left behind: %v", err)
	}
	got, err := draftstore.ImportFromFile(path)
	if err != nil {
		t.Fatalf("ImportFromFile: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("import mismatch: %#v", got)
	}
}

func TestImportFromMissingFile(t *testing.T) {
	_, err := draftstore.ImportFromFile(filepath.Join(t.TempDir(), "absent.json"))
	if !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
}
