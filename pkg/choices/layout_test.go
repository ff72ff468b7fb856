package choices_test

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-choicelist/pkg/choices"
)

func numberedItems(t *testing.T, n int) []*choices.Item {
	t.Helper()
	q, err := choices.NewQuestion("q", choices.TypeCheckbox, choices.Config{})
	if err != nil {
		t.Fatalf("new question: %v", err)
	}
	items := make([]*choices.Item, n)
	for i := range items {
		items[i] = q.CreateItem(i + 1)
	}
	return items
}

func columnValues(columns [][]*choices.Item) [][]any {
	out := make([][]any, len(columns))
	for i, column := range columns {
		out[i] = itemValues(column)
		if out[i] == nil {
			out[i] = []any{}
		}
	}
	return out
}

func itemValues(items []*choices.Item) []any {
	var out []any
	for _, item := range items {
		out = append(out, item.Value())
	}
	return out
}

func TestLayout_RowMajor(t *testing.T) {
	t.Parallel()

	got := columnValues(choices.Layout(numberedItems(t, 5), 3, choices.OrderRow))
	want := [][]any{{1, 4}, {2, 5}, {3}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("row-major mismatch (-want +got):\n%s", diff)
	}
}

func TestLayout_ColumnMajor(t *testing.T) {
	t.Parallel()

	got := columnValues(choices.Layout(numberedItems(t, 5), 3, choices.OrderColumn))
	want := [][]any{{1, 2}, {3, 4}, {5}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("column-major mismatch (-want +got):\n%s", diff)
	}
}

func TestLayout_ColumnMajorBalancesRemainder(t *testing.T) {
	t.Parallel()

	got := columnValues(choices.Layout(numberedItems(t, 7), 3, choices.OrderColumn))
	want := [][]any{{1, 2, 3}, {4, 5}, {6, 7}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("column-major mismatch (-want +got):\n%s", diff)
	}
}

func TestLayout_NonPositiveColumnCountYieldsSingleColumn(t *testing.T) {
	t.Parallel()

	for _, count := range []int{0, -2} {
		got := columnValues(choices.Layout(numberedItems(t, 3), count, choices.OrderColumn))
		want := [][]any{{1, 2, 3}}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("count %d mismatch (-want +got):\n%s", count, diff)
		}
	}
}

func TestLayout_MoreColumnsThanItems(t *testing.T) {
	t.Parallel()

	got := columnValues(choices.Layout(numberedItems(t, 2), 4, choices.OrderRow))
	want := [][]any{{1}, {2}, {}, {}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("layout mismatch (-want +got):\n%s", diff)
	}
}

func TestLayout_PreservesItemsAndBalancesColumns(t *testing.T) {
	t.Parallel()

	for n := 0; n <= 11; n++ {
		for count := 1; count <= 5; count++ {
			for _, order := range []choices.Order{choices.OrderRow, choices.OrderColumn} {
				name := fmt.Sprintf("n=%d/c=%d/%s", n, count, order)
				items := numberedItems(t, n)
				columns := choices.Layout(items, count, order)

				if len(columns) != count {
					t.Fatalf("%s: expected %d columns, got %d", name, count, len(columns))
				}
				seen := make(map[*choices.Item]int)
				minLen, maxLen := n, 0
				for _, column := range columns {
					if len(column) < minLen {
						minLen = len(column)
					}
					if len(column) > maxLen {
						maxLen = len(column)
					}
					for _, item := range column {
						seen[item]++
					}
				}
				if maxLen-minLen > 1 {
					t.Fatalf("%s: unbalanced columns %d..%d", name, minLen, maxLen)
				}
				if len(seen) != n {
					t.Fatalf("%s: expected %d distinct items, got %d", name, n, len(seen))
				}
				for _, item := range items {
					if seen[item] != 1 {
						t.Fatalf("%s: item %v placed %d times", name, item.Value(), seen[item])
					}
				}
			}
		}
	}
}

func TestLayout_RowMajorReadsBackInOrder(t *testing.T) {
	t.Parallel()

	items := numberedItems(t, 8)
	columns := choices.Layout(items, 3, choices.OrderRow)
	var flattened []any
	for row := 0; ; row++ {
		found := false
		for _, column := range columns {
			if row < len(column) {
				flattened = append(flattened, column[row].Value())
				found = true
			}
		}
		if !found {
			break
		}
	}
	if diff := cmp.Diff(itemValues(items), flattened); diff != "" {
		t.Fatalf("row-wise read mismatch (-want +got):\n%s", diff)
	}
}
