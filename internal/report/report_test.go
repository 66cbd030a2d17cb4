package report

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"sieve/internal/cluster"
	"sieve/internal/collection"
)

func sampleReport(t *testing.T, includeSingletons bool) Report {
	t.Helper()
	idx := collection.NewIndex("/media/anime", []string{
		"Show (2020)",
		"[Grp] Show [BD]",
		"Kanon 2006 TV",
		"Kanon",
		"Lonely Title",
	})
	idx.RebuildExactGroups()
	groups := cluster.FindSimilarGroups(idx.Entries())
	return Build(idx, groups, includeSingletons)
}

func TestBuildSelectsFindings(t *testing.T) {
	r := sampleReport(t, false)
	if r.Source != "/media/anime" || r.Entries != 5 {
		t.Fatalf("unexpected report header: %+v", r)
	}
	if len(r.Duplicates) != 1 || r.Duplicates[0].Key != "Show" {
		t.Fatalf("unexpected duplicates: %+v", r.Duplicates)
	}
	if len(r.Similar) != 2 {
		t.Fatalf("expected 2 similarity findings, got %+v", r.Similar)
	}
	if r.Singletons != nil {
		t.Fatalf("expected singletons omitted, got %+v", r.Singletons)
	}
}

func TestBuildIncludesSingletons(t *testing.T) {
	r := sampleReport(t, true)
	if len(r.Singletons) != 1 || r.Singletons[0].Key != "Lonely Title" {
		t.Fatalf("unexpected singletons: %+v", r.Singletons)
	}
}

func TestBuildEmptyIndex(t *testing.T) {
	idx := collection.NewIndex("/empty", nil)
	idx.RebuildExactGroups()
	r := Build(idx, cluster.FindSimilarGroups(idx.Entries()), false)
	if r.Duplicates == nil || r.Similar == nil {
		t.Fatal("expected empty, non-nil slices for stable JSON output")
	}
}

func TestTextLayout(t *testing.T) {
	got := Text(sampleReport(t, false), false)
	want := strings.Join([]string{
		"Duplicates -------",
		"Show:",
		"  Show (2020)",
		"  [Grp] Show [BD]",
		"",
		"Similar ----------",
		"Show:",
		"  Show (2020)",
		"  [Grp] Show [BD]",
		"Kanon:",
		"  Kanon 2006 TV",
		"  Kanon",
		"",
		"",
	}, "\n")
	if got != want {
		t.Fatalf("Text mismatch\n got: %q\nwant: %q", got, want)
	}
}

func TestTextEmptySections(t *testing.T) {
	got := Text(Report{}, false)
	want := "Duplicates -------\n\nSimilar ----------\n\n"
	if got != want {
		t.Fatalf("Text = %q, want %q", got, want)
	}
}

func TestTextColorWrapsHeaders(t *testing.T) {
	got := Text(Report{}, true)
	if !strings.HasPrefix(got, ansiBold+ansiBlue+duplicatesHeader+ansiReset) {
		t.Fatalf("expected colored header, got %q", got)
	}
}

func TestTableContainsRows(t *testing.T) {
	got := Table(sampleReport(t, false), false)
	for _, want := range []string{"Duplicates (1)", "Similar (2)", "[Grp] Show [BD]", "Kanon 2006 TV", "╭"} {
		if !strings.Contains(got, want) {
			t.Fatalf("table output missing %q:\n%s", want, got)
		}
	}
}

func TestTableEmptySections(t *testing.T) {
	got := Table(Report{}, false)
	if strings.Count(got, "(none)") != 2 {
		t.Fatalf("expected placeholder rows in both tables:\n%s", got)
	}
}

func TestRenderJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, sampleReport(t, false), Options{Format: FormatJSON}); err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	var decoded struct {
		Source     string `json:"source"`
		Duplicates []struct {
			Key      string   `json:"key"`
			RawNames []string `json:"raw_names"`
		} `json:"duplicates"`
		Similar []struct {
			Key     string `json:"key"`
			Entries []struct {
				RawName      string `json:"raw_name"`
				CanonicalKey string `json:"canonical_key"`
			} `json:"entries"`
		} `json:"similar"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.Source != "/media/anime" {
		t.Fatalf("unexpected source %q", decoded.Source)
	}
	if len(decoded.Duplicates) != 1 || len(decoded.Duplicates[0].RawNames) != 2 {
		t.Fatalf("unexpected duplicates %+v", decoded.Duplicates)
	}
	if len(decoded.Similar) != 2 || decoded.Similar[1].Entries[0].CanonicalKey != "Kanon 2006 TV" {
		t.Fatalf("unexpected similar %+v", decoded.Similar)
	}
	if strings.Contains(buf.String(), "singletons") {
		t.Fatalf("expected singletons omitted from json:\n%s", buf.String())
	}
}

func TestRenderDefaultsToText(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, Report{}, Options{Color: ColorNever}); err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if !strings.HasPrefix(buf.String(), duplicatesHeader) {
		t.Fatalf("expected text output, got %q", buf.String())
	}
}

func TestRenderRejectsUnknownFormat(t *testing.T) {
	if err := Render(io.Discard, Report{}, Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestResolveColor(t *testing.T) {
	if !resolveColor(io.Discard, ColorAlways) {
		t.Fatal("expected always to force color")
	}
	if resolveColor(io.Discard, ColorNever) {
		t.Fatal("expected never to disable color")
	}
	if resolveColor(io.Discard, ColorAuto) {
		t.Fatal("expected non-file writer to disable color")
	}
}
