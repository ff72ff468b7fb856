package choices

// Selection holds the selected value(s) of a question. Values that have no
// matching item are kept; they simply never render as checked.
type Selection struct {
	multi  bool
	values []any
}

func newSelection(multi bool) Selection {
	return Selection{multi: multi}
}

// Multi reports whether the selection keeps a list of values.
func (s Selection) Multi() bool { return s.multi }

// Values returns a copy of the selected values in order.
func (s Selection) Values() []any {
	return append([]any(nil), s.values...)
}

// Value returns the question value: a []any for multi-select questions (nil
// when empty) or the single selected value.
func (s Selection) Value() any {
	if s.multi {
		if len(s.values) == 0 {
			return nil
		}
		return s.Values()
	}
	if len(s.values) == 0 {
		return nil
	}
	return s.values[0]
}

// Contains reports whether v is selected.
func (s Selection) Contains(v any) bool {
	return containsValue(s.values, v)
}

// Empty reports whether nothing is selected.
func (s Selection) Empty() bool { return len(s.values) == 0 }

func (s Selection) with(v any) Selection {
	next := Selection{multi: s.multi}
	if v == nil {
		return next
	}
	if s.multi {
		next.values = toValueList(v)
		return next
	}
	next.values = []any{v}
	return next
}
