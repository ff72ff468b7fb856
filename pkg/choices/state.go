package choices

// ItemState is the per-item rendering state.
type ItemState struct {
	Checked    bool
	Disabled   bool
	AllowHover bool
}

// Value returns the question value; see Selection.Value.
func (q *Question) Value() any { return q.selection.Value() }

// Selection returns the current selection.
func (q *Question) Selection() Selection { return q.selection }

// SetValue replaces the selection. Selecting "other" when it was not selected
// before fires the other-focus callback; deselecting it clears the comment.
func (q *Question) SetValue(value any) {
	had := q.selection.Contains(ValueOther)
	q.selection = q.selection.with(value)
	has := q.selection.Contains(ValueOther)
	if had && !has {
		q.comment = ""
	}
	q.invalidate()
	if has && !had && q.opts.onOther != nil {
		q.opts.onOther(q)
	}
}

// Comment returns the free text entered for "other".
func (q *Question) Comment() string { return q.comment }

// SetComment stores the free text entered for "other".
func (q *Question) SetComment(text string) { q.comment = text }

// IsEnabled reports whether item can be toggled. Rules that fail to evaluate
// leave the item enabled.
func (q *Question) IsEnabled(item *Item) bool {
	if item == nil || item.disabled {
		return false
	}
	if q.mode == ModeDesign {
		return true
	}
	return q.evalRule(item, item.enableIf, true)
}

// IsChecked reports whether item renders as selected. Select all is checked
// when every enabled visible choice is selected.
func (q *Question) IsChecked(item *Item) bool {
	if item == nil {
		return false
	}
	switch item.kind {
	case KindSelectAll:
		return q.IsAllSelected()
	case KindNewItem:
		return false
	default:
		return q.selection.Contains(item.value)
	}
}

// IsAllSelected reports whether every enabled visible configured choice is
// selected. It is false when there is nothing to select.
func (q *Question) IsAllSelected() bool {
	if !q.caps.MultiSelect {
		return false
	}
	candidates := q.selectableChoices()
	if len(candidates) == 0 {
		return false
	}
	for _, item := range candidates {
		if !q.selection.Contains(item.value) {
			return false
		}
	}
	return true
}

func (q *Question) selectableChoices() []*Item {
	var out []*Item
	for _, item := range q.views().visible {
		if item.kind == KindChoice && q.IsEnabled(item) {
			out = append(out, item)
		}
	}
	return out
}

// ToggleItem applies a user click on item and reports whether the selection
// changed. Select all toggles every enabled visible choice, none clears the
// other choices and picking a choice clears none.
func (q *Question) ToggleItem(item *Item) bool {
	if item == nil || item.kind == KindNewItem || q.cfg.ReadOnly || !q.IsEnabled(item) {
		return false
	}
	if !q.caps.MultiSelect {
		if item.kind == KindSelectAll || q.selection.Contains(item.value) {
			return false
		}
		q.SetValue(item.value)
		return true
	}

	values := q.selection.Values()
	switch item.kind {
	case KindSelectAll:
		keepOther := containsValue(values, ValueOther)
		var next []any
		if !q.IsAllSelected() {
			for _, choice := range q.selectableChoices() {
				next = append(next, choice.value)
			}
		}
		if keepOther {
			next = append(next, ValueOther)
		}
		q.SetValue(next)
	case KindNone:
		if containsValue(values, ValueNone) {
			q.SetValue(removeValue(values, ValueNone))
		} else {
			q.SetValue([]any{ValueNone})
		}
	default:
		if containsValue(values, item.value) {
			q.SetValue(removeValue(values, item.value))
		} else {
			q.SetValue(append(removeValue(values, ValueNone), item.value))
		}
	}
	return true
}

// ItemState returns the rendering state of item. Hover styling is suppressed
// in design mode, for read-only questions and for disabled items.
func (q *Question) ItemState(item *Item) ItemState {
	if item == nil {
		return ItemState{}
	}
	disabled := !q.IsEnabled(item)
	return ItemState{
		Checked:    q.IsChecked(item),
		Disabled:   disabled,
		AllowHover: q.mode != ModeDesign && !q.cfg.ReadOnly && !disabled,
	}
}

// ItemClass composes the CSS classes for item.
func (q *Question) ItemClass(item *Item) string {
	if item == nil {
		return ""
	}
	state := q.ItemState(item)
	classes := q.opts.classes
	parts := []string{classes.Item, classes.kindClass(item.kind)}
	if state.Checked {
		parts = append(parts, classes.ItemChecked)
	}
	if state.Disabled {
		parts = append(parts, classes.ItemDisabled)
	}
	if state.AllowHover {
		parts = append(parts, classes.ItemHover)
	}
	return joinClasses(parts...)
}
