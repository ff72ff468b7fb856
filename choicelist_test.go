package choicelist_test

import (
	"context"
	"io/fs"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-choicelist"
	"github.com/goliatone/go-choicelist/pkg/render"
)

func TestLoadDocumentAndPreview(t *testing.T) {
	t.Parallel()

	doc := []byte(`{"questions": [{"name": "size", "type": "radiogroup", "colCount": 2, "itemsOrder": "column", "choices": ["S", "M", "L"]}]}`)
	questions, err := choicelist.LoadDocument(doc, "inline.json")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(questions) != 1 {
		t.Fatalf("expected one question, got %d", len(questions))
	}
	q := questions[0]
	q.SetValue("M")

	out, err := choicelist.Preview(context.Background(), q, "text", render.WithTitle("Size"))
	if err != nil {
		t.Fatalf("preview: %v", err)
	}
	want := "Size\n( ) S  ( ) L\n(*) M\n"
	if diff := cmp.Diff(want, string(out)); diff != "" {
		t.Fatalf("preview mismatch (-want +got):\n%s", diff)
	}

	if _, err := choicelist.Preview(context.Background(), q, "html"); err == nil {
		t.Fatalf("expected unknown renderer error")
	}
}

func TestLoadFS_Samples(t *testing.T) {
	t.Parallel()

	questions, err := choicelist.LoadFS(choicelist.SampleQuestions())
	if err != nil {
		t.Fatalf("load samples: %v", err)
	}
	var names []string
	for _, q := range questions {
		names = append(names, q.Name())
	}
	if diff := cmp.Diff([]string{"colors", "size", "country", "timezone"}, names); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
}

func TestEmbeddedTemplates(t *testing.T) {
	t.Parallel()

	if _, err := fs.ReadFile(choicelist.EmbeddedTemplates(), "preview.tpl"); err != nil {
		t.Fatalf("expected preview template: %v", err)
	}
}
