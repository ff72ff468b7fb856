package testsupport

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-choicelist/pkg/choices"
	"github.com/goliatone/go-choicelist/pkg/loader"
)

// MustLoadQuestions loads every document under dir and builds its questions
// keyed by name.
func MustLoadQuestions(t *testing.T, dir string, opts ...choices.Option) map[string]*choices.Question {
	t.Helper()

	store, err := loader.LoadFS(os.DirFS(dir))
	if err != nil {
		t.Fatalf("load questions: %v", err)
	}
	questions, err := store.Build(opts...)
	if err != nil {
		t.Fatalf("build questions: %v", err)
	}
	out := make(map[string]*choices.Question, len(questions))
	for _, q := range questions {
		out[q.Name()] = q
	}
	return out
}

// Values returns the values of items in order.
func Values(items []*choices.Item) []any {
	out := make([]any, 0, len(items))
	for _, item := range items {
		out = append(out, item.Value())
	}
	return out
}

// ColumnValues returns the values of each column of q.
func ColumnValues(q *choices.Question) [][]any {
	columns := q.Columns()
	out := make([][]any, len(columns))
	for i, column := range columns {
		out[i] = Values(column)
	}
	return out
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}
