package loader_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-choicelist/pkg/loader"
)

func TestLint_SamplesAreClean(t *testing.T) {
	t.Parallel()

	store, err := loader.LoadFS(loader.SampleFS())
	if err != nil {
		t.Fatalf("load samples: %v", err)
	}
	if issues := loader.Lint(store); len(issues) != 0 {
		t.Fatalf("expected no issues, got %v", issues)
	}
}

func TestLint_Findings(t *testing.T) {
	t.Parallel()

	doc := `questions:
  - name: pick
    type: dropdown
    hasSelectAll: true
    separateSpecialChoices: true
    colCount: -1
    choices:
      - a
      - none
      - value: a
        visibleIf: "(x = 1"
  - name: stars
    type: slider
`
	store, err := loader.Parse([]byte(doc), "form.yaml")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	issues := loader.Lint(store)

	type finding struct {
		Location string
		Severity loader.Severity
	}
	var got []finding
	for _, issue := range issues {
		if issue.File != "form.yaml" {
			t.Fatalf("unexpected file %q", issue.File)
		}
		got = append(got, finding{issue.Location, issue.Severity})
	}
	want := []finding{
		{"question > pick > choices[1]", loader.SeverityError},
		{"question > pick > choices[2]", loader.SeverityWarning},
		{"question > pick > choices[2] > visibleIf", loader.SeverityError},
		{"question > pick > colCount", loader.SeverityWarning},
		{"question > pick > hasSelectAll", loader.SeverityWarning},
		{"question > pick > separateSpecialChoices", loader.SeverityWarning},
		{"question > stars", loader.SeverityError},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("issues mismatch (-want +got):\n%s", diff)
	}
	if !loader.HasErrors(issues) {
		t.Fatalf("expected HasErrors")
	}
}
