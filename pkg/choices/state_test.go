package choices_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-choicelist/pkg/choices"
	"github.com/goliatone/go-choicelist/pkg/visibility"
)

func findItem(t *testing.T, q *choices.Question, value any) *choices.Item {
	t.Helper()
	for _, item := range q.VisibleChoices() {
		if item.Value() == value {
			return item
		}
	}
	t.Fatalf("item %v not visible", value)
	return nil
}

func TestQuestion_OtherFocusFiresOnTransition(t *testing.T) {
	t.Parallel()

	fired := 0
	cfg := choices.Config{Choices: plainChoices("item1", "item2"), HasOther: true}
	q := newQuestion(t, choices.TypeCheckbox, cfg, choices.WithOtherFocus(func(*choices.Question) { fired++ }))

	steps := []struct {
		value []any
		want  int
	}{
		{[]any{}, 0},
		{[]any{"other"}, 1},
		{[]any{"other", "item1"}, 1},
		{[]any{"item1"}, 1},
		{[]any{"item1", "other"}, 2},
	}
	for i, step := range steps {
		q.SetValue(step.value)
		if fired != step.want {
			t.Fatalf("step %d: expected %d focus calls, got %d", i, step.want, fired)
		}
	}
}

func TestQuestion_CommentClearedWhenOtherDeselected(t *testing.T) {
	t.Parallel()

	q := newQuestion(t, choices.TypeRadioGroup, choices.Config{Choices: plainChoices("a"), HasOther: true})
	q.SetValue("other")
	q.SetComment("something else")
	if q.Comment() != "something else" {
		t.Fatalf("expected comment to be stored, got %q", q.Comment())
	}
	q.SetValue("a")
	if q.Comment() != "" {
		t.Fatalf("expected comment cleared, got %q", q.Comment())
	}
}

func TestQuestion_ToggleSelectAll(t *testing.T) {
	t.Parallel()

	cfg := choices.Config{
		Choices: []choices.ItemConfig{
			{Value: "a"},
			{Value: "b"},
			{Value: "locked", Disabled: true},
		},
		HasSelectAll: true,
		HasOther:     true,
	}
	q := newQuestion(t, choices.TypeCheckbox, cfg)
	selectAll := findItem(t, q, choices.ValueSelectAll)

	if q.IsChecked(selectAll) {
		t.Fatalf("select all should start unchecked")
	}
	if !q.ToggleItem(selectAll) {
		t.Fatalf("expected select all toggle to change the selection")
	}
	if diff := cmp.Diff([]any{"a", "b"}, q.Value()); diff != "" {
		t.Fatalf("value mismatch (-want +got):\n%s", diff)
	}
	if !q.IsAllSelected() || !q.IsChecked(selectAll) {
		t.Fatalf("expected every enabled choice to be selected")
	}

	q.ToggleItem(findItem(t, q, choices.ValueOther))
	q.ToggleItem(selectAll)
	if diff := cmp.Diff([]any{"other"}, q.Value()); diff != "" {
		t.Fatalf("value after deselect all mismatch (-want +got):\n%s", diff)
	}
}

func TestQuestion_ToggleNoneIsExclusive(t *testing.T) {
	t.Parallel()

	cfg := choices.Config{Choices: plainChoices("a", "b"), HasNone: true}
	q := newQuestion(t, choices.TypeCheckbox, cfg)

	q.ToggleItem(findItem(t, q, "a"))
	q.ToggleItem(findItem(t, q, "b"))
	q.ToggleItem(findItem(t, q, choices.ValueNone))
	if diff := cmp.Diff([]any{"none"}, q.Value()); diff != "" {
		t.Fatalf("value after none mismatch (-want +got):\n%s", diff)
	}

	q.ToggleItem(findItem(t, q, "a"))
	if diff := cmp.Diff([]any{"a"}, q.Value()); diff != "" {
		t.Fatalf("value after picking a choice mismatch (-want +got):\n%s", diff)
	}

	q.ToggleItem(findItem(t, q, "a"))
	if q.Value() != nil {
		t.Fatalf("expected empty value, got %v", q.Value())
	}
}

func TestQuestion_ToggleSingleSelect(t *testing.T) {
	t.Parallel()

	q := newQuestion(t, choices.TypeRadioGroup, choices.Config{Choices: plainChoices("a", "b")})
	a := findItem(t, q, "a")
	if !q.ToggleItem(a) {
		t.Fatalf("expected first toggle to select")
	}
	if q.ToggleItem(a) {
		t.Fatalf("expected repeated toggle to be a no-op")
	}
	q.ToggleItem(findItem(t, q, "b"))
	if q.Value() != "b" {
		t.Fatalf("expected value b, got %v", q.Value())
	}
}

func TestQuestion_ReadOnlyRejectsToggles(t *testing.T) {
	t.Parallel()

	q := newQuestion(t, choices.TypeCheckbox, choices.Config{Choices: plainChoices("a"), ReadOnly: true})
	a := findItem(t, q, "a")
	if q.ToggleItem(a) {
		t.Fatalf("read-only question accepted a toggle")
	}
	if q.ItemState(a).AllowHover {
		t.Fatalf("read-only question should not allow hover")
	}
}

func TestQuestion_EnableIfDisablesItem(t *testing.T) {
	t.Parallel()

	cfg := choices.Config{Choices: []choices.ItemConfig{{Value: "a", EnableIf: "{allow} = true"}}}
	q := newQuestion(t, choices.TypeCheckbox, cfg)
	q.SetContext(visibility.Context{Values: map[string]any{"allow": false}})

	a := findItem(t, q, "a")
	state := q.ItemState(a)
	if !state.Disabled || state.AllowHover {
		t.Fatalf("expected disabled item without hover, got %+v", state)
	}
	if q.ToggleItem(a) {
		t.Fatalf("disabled item accepted a toggle")
	}

	q.SetContext(visibility.Context{Values: map[string]any{"allow": true}})
	if !q.IsEnabled(findItem(t, q, "a")) {
		t.Fatalf("expected item enabled once the rule passes")
	}
}

func TestQuestion_UnmatchedValuesAreKept(t *testing.T) {
	t.Parallel()

	q := newQuestion(t, choices.TypeCheckbox, choices.Config{Choices: plainChoices(1, 2)})
	q.SetValue([]any{float64(2), "ghost"})
	if !q.IsChecked(findItem(t, q, 2)) {
		t.Fatalf("numeric values should match regardless of representation")
	}
	if diff := cmp.Diff([]any{float64(2), "ghost"}, q.Value()); diff != "" {
		t.Fatalf("value mismatch (-want +got):\n%s", diff)
	}
}

func TestQuestion_ItemClassSuppressesHoverInDesignMode(t *testing.T) {
	t.Parallel()

	q := newQuestion(t, choices.TypeCheckbox, choices.Config{Choices: plainChoices("a"), HasOther: true})
	a := findItem(t, q, "a")
	if got := q.ItemClass(a); got != "choice-item choice-item--allowhover" {
		t.Fatalf("unexpected runtime class %q", got)
	}

	q.SetValue([]any{"a"})
	if got := q.ItemClass(a); !strings.Contains(got, "choice-item--checked") {
		t.Fatalf("expected checked class, got %q", got)
	}

	q.SetMode(choices.ModeDesign)
	other := findItem(t, q, choices.ValueOther)
	got := q.ItemClass(other)
	if strings.Contains(got, "allowhover") {
		t.Fatalf("design mode class should not allow hover: %q", got)
	}
	if !strings.Contains(got, "choice-item--other") {
		t.Fatalf("expected kind class on other item: %q", got)
	}
}
