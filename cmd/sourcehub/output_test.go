package main

import (
	"strings"
	"testing"

	"sourcehub/internal/query"
	"sourcehub/internal/source"
)

func TestRenderCheck(t *testing.T) {
	plain := renderCheck(configCheck{label: "Data dir", status: checkOK, message: "/tmp/x"}, false)
	if plain != "  Data dir:        [OK] /tmp/x" {
		t.Fatalf("unexpected line %q", plain)
	}
	failed := renderCheck(configCheck{label: "Log dir", status: checkFailed}, false)
	if failed != "  Log dir:         [FAIL]" {
		t.Fatalf("unexpected line %q", failed)
	}
	colored := renderCheck(configCheck{label: "Log dir", status: checkFailed}, true)
	if !strings.Contains(colored, "[FAIL]") {
		t.Fatalf("styled line lost its text: %q", colored)
	}
	if colorEnabled(&strings.Builder{}) {
		t.Fatal("non-file writers must not be colorized")
	}
}

func TestRenderDetailTitle(t *testing.T) {
	lines := renderDetailTitle("  Age checks  ", false)
	if len(lines) != 2 || lines[0] != "Age checks" || lines[1] != strings.Repeat("─", 10) {
		t.Fatalf("unexpected title lines %q", lines)
	}
}

func TestPrintJSONIndents(t *testing.T) {
	var out strings.Builder
	if err := printJSON(&out, map[string]int{"total": 2}); err != nil {
		t.Fatalf("printJSON: %v", err)
	}
	if out.String() != "{\n  \"total\": 2\n}\n" {
		t.Fatalf("unexpected json %q", out.String())
	}
}

func TestDescribeFilters(t *testing.T) {
	got := describeFilters(source.FilterState{}, query.SortAuthor)
	if got != "filters: none; sort: author" {
		t.Fatalf("unexpected %q", got)
	}
	got = describeFilters(source.FilterState{
		Search:     "age",
		Categories: []source.Category{source.CategoryNews},
		Sections:   []source.Section{source.Section2, source.Section5},
	}, query.SortRelevance)
	want := `filters: search="age" categories=news sections=2.0,5.0; sort: relevance`
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestRenderSourceTableFallbacks(t *testing.T) {
	table := renderSourceTable([]source.Source{{ID: "x", Title: "Untitled", Category: "blog"}})
	for _, want := range []string{"ID", "Untitled", "blog", emptyValue} {
		if !strings.Contains(table, want) {
			t.Fatalf("table missing %q:\n%s", want, table)
		}
	}
}
