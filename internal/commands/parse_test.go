package commands

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/NielsdaWheelz/seedsearch/internal/errors"
	"github.com/NielsdaWheelz/seedsearch/internal/transcript"
)

func TestParse_File(t *testing.T) {
	in := makeInstall(t, "")
	path := filepath.Join(t.TempDir(), "run.txt")
	writeTestFile(t, path, sampleTranscript)
	opts := ParseOpts{Overrides: in.overrides(), Paths: []string{path}}
	opts.Format = "yaml"

	var stdout bytes.Buffer
	if err := Parse(context.Background(), testDeps(t, nil), opts, strings.NewReader(""), &stdout); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if !strings.Contains(stdout.String(), "seed_string: ABC123") {
		t.Errorf("unexpected output:\n%s", stdout.String())
	}
}

func TestParse_Stdin(t *testing.T) {
	in := makeInstall(t, "")
	opts := ParseOpts{Overrides: in.overrides(), Paths: []string{StdinPath}}

	var stdout bytes.Buffer
	if err := Parse(context.Background(), testDeps(t, nil), opts, strings.NewReader(sampleTranscript), &stdout); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if !strings.Contains(stdout.String(), `"seed": "42"`) {
		t.Errorf("unexpected output:\n%s", stdout.String())
	}
}

func TestParse_NoRecords(t *testing.T) {
	in := makeInstall(t, "")
	opts := ParseOpts{Overrides: in.overrides(), Paths: []string{StdinPath}}
	opts.Format = "text"

	var stdout bytes.Buffer
	if err := Parse(context.Background(), testDeps(t, nil), opts, strings.NewReader("Loading mods...\n"), &stdout); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if stdout.String() != "no seeds found\n" {
		t.Errorf("stdout = %q", stdout.String())
	}
}

func TestParse_Errors(t *testing.T) {
	in := makeInstall(t, "")
	dir := t.TempDir()
	broken := filepath.Join(dir, "broken.txt")
	writeTestFile(t, broken, strings.Replace(sampleTranscript, "Raw boss relic list:", "Raw boss list:", 1))
	invalid := filepath.Join(dir, "invalid.txt")
	writeTestFile(t, invalid, "Seed: \xff")

	tests := []struct {
		name     string
		paths    []string
		encoding string
		wantCode errors.Code
		check    func(t *testing.T, se *errors.SearchError)
	}{
		{
			name:     "missing path",
			paths:    nil,
			wantCode: errors.EUsage,
		},
		{
			name:     "stdin twice",
			paths:    []string{StdinPath, StdinPath},
			wantCode: errors.EUsage,
		},
		{
			name:     "earliest failure wins",
			paths:    []string{filepath.Join(dir, "nope.txt"), broken},
			wantCode: errors.EReadFailed,
		},
		{
			name:     "file not found",
			paths:    []string{filepath.Join(dir, "nope.txt")},
			wantCode: errors.EReadFailed,
		},
		{
			name:     "structure error",
			paths:    []string{broken},
			wantCode: errors.ETranscriptStructure,
			check: func(t *testing.T, se *errors.SearchError) {
				if se.Details["transcript"] != broken {
					t.Errorf("transcript = %q, want %q", se.Details["transcript"], broken)
				}
				if !strings.Contains(se.Details["hint"], "showRawRelicPools") {
					t.Errorf("hint = %q", se.Details["hint"])
				}
			},
		},
		{
			name:     "strict encoding",
			paths:    []string{invalid},
			encoding: "strict",
			wantCode: errors.ETranscriptEncoding,
			check: func(t *testing.T, se *errors.SearchError) {
				if se.Details["path"] != invalid {
					t.Errorf("path = %q, want %q", se.Details["path"], invalid)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := ParseOpts{Overrides: in.overrides(), Paths: tt.paths}
			opts.Encoding = tt.encoding
			err := Parse(context.Background(), testDeps(t, nil), opts, strings.NewReader(""), &bytes.Buffer{})
			se, ok := errors.AsSearchError(err)
			if !ok {
				t.Fatalf("expected *errors.SearchError, got %T: %v", err, err)
			}
			if se.Code != tt.wantCode {
				t.Errorf("code = %q, want %q", se.Code, tt.wantCode)
			}
			if tt.check != nil {
				tt.check(t, se)
			}
		})
	}
}

func TestParse_MultipleFiles(t *testing.T) {
	in := makeInstall(t, "")
	dir := t.TempDir()
	first := filepath.Join(dir, "first.txt")
	writeTestFile(t, first, sampleTranscript)
	second := filepath.Join(dir, "second.txt")
	writeTestFile(t, second, strings.ReplaceAll(sampleTranscript, "ABC123", "ZZZ999"))
	opts := ParseOpts{Overrides: in.overrides(), Paths: []string{first, second}}
	opts.Format = "yaml"

	var stdout bytes.Buffer
	if err := Parse(context.Background(), testDeps(t, nil), opts, strings.NewReader(""), &stdout); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	out := stdout.String()
	a := strings.Index(out, "seed_string: ABC123")
	b := strings.Index(out, "seed_string: ZZZ999")
	if a < 0 || b < 0 || a > b {
		t.Errorf("records missing or out of argument order:\n%s", out)
	}
}

func TestMergeResults(t *testing.T) {
	results := []transcript.Result{
		{Records: []transcript.Record{{SeedString: "A"}}, Summary: &transcript.Summary{Count: "2", Seeds: []string{"1", "2"}}},
		{Records: []transcript.Record{}},
		{Records: []transcript.Record{{SeedString: "B"}}, Summary: &transcript.Summary{Count: "1", Seeds: []string{"3"}}},
	}
	got := mergeResults(results)

	want := transcript.Result{
		Records: []transcript.Record{{SeedString: "A"}, {SeedString: "B"}},
		Summary: &transcript.Summary{Count: "3", Seeds: []string{"1", "2", "3"}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mergeResults() mismatch (-want +got):\n%s", diff)
	}

	if single := mergeResults(results[1:2]); single.Summary != nil {
		t.Errorf("single result without summary gained one: %+v", single.Summary)
	}
}
