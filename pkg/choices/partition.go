package choices

import (
	"fmt"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

func (q *Question) views() *views {
	if q.cache == nil {
		q.cache = q.partition()
	}
	return q.cache
}

// partition computes the visible items and the head/body/foot split.
func (q *Question) partition() *views {
	design := q.mode == ModeDesign

	ordinary := make([]*Item, 0, len(q.set.items))
	for _, item := range q.set.items {
		visible := true
		if !design {
			visible = !item.hidden && q.evalRule(item, item.visibleIf, true)
		}
		if q.runHooks(item, visible) {
			ordinary = append(ordinary, item)
		}
	}
	if !design {
		ordinary = q.sortChoices(ordinary)
	}

	selectAll := q.specialItem(KindSelectAll, q.cfg.HasSelectAll)
	newItem := q.specialItem(KindNewItem, false)
	none := q.specialItem(KindNone, q.cfg.HasNone)
	other := q.specialItem(KindOther, q.cfg.HasOther)

	v := &views{}
	v.visible = make([]*Item, 0, len(ordinary)+4)
	v.visible = appendItems(v.visible, selectAll)
	v.visible = append(v.visible, ordinary...)
	v.visible = appendItems(v.visible, newItem, none, other)

	if q.separateSpecialChoices() {
		v.head = appendItems(nil, selectAll)
		v.foot = appendItems(nil, newItem, none, other)
		v.body = append([]*Item(nil), ordinary...)
		return v
	}
	v.body = append([]*Item(nil), v.visible...)
	return v
}

// specialItem returns the synthetic item of kind when it should be shown.
func (q *Question) specialItem(kind Kind, enabled bool) *Item {
	if !q.caps.supports(kind) {
		return nil
	}
	design := q.mode == ModeDesign
	if kind == KindNewItem {
		enabled = design
	} else {
		enabled = enabled || design
	}
	if !enabled {
		return nil
	}
	item := q.set.special[kind]
	if !design && !q.runHooks(item, true) {
		return nil
	}
	return item
}

func (q *Question) runHooks(item *Item, visible bool) bool {
	for _, hook := range q.opts.hooks {
		visible = hook.ShowChoice(item, q, visible)
	}
	return visible
}

// evalRule evaluates a visibleIf/enableIf rule. Rules that fail to evaluate
// resolve to fallback.
func (q *Question) evalRule(item *Item, rule string, fallback bool) bool {
	if rule == "" || q.opts.evaluator == nil {
		return true
	}
	subject := fmt.Sprintf("%s.%s", q.name, item.valueString())
	ok, err := q.opts.evaluator.Eval(subject, rule, q.ctx)
	if err != nil {
		q.opts.logger.Warn("choices: rule evaluation failed", "subject", subject, "rule", rule, "error", err)
		return fallback
	}
	return ok
}

func (q *Question) sortChoices(items []*Item) []*Item {
	order := q.cfg.ChoicesOrder
	if order != SortAsc && order != SortDesc {
		return items
	}
	tag := language.Und
	if q.opts.locale != "" && q.opts.locale != DefaultLocale {
		if parsed, err := language.Parse(q.opts.locale); err == nil {
			tag = parsed
		}
	}
	collator := collate.New(tag, collate.IgnoreCase)
	texts := make(map[*Item]string, len(items))
	for _, item := range items {
		texts[item] = q.ItemText(item)
	}
	sorted := append([]*Item(nil), items...)
	sort.SliceStable(sorted, func(i, j int) bool {
		cmp := collator.CompareString(texts[sorted[i]], texts[sorted[j]])
		if order == SortDesc {
			return cmp > 0
		}
		return cmp < 0
	})
	return sorted
}

func appendItems(dst []*Item, items ...*Item) []*Item {
	for _, item := range items {
		if item != nil {
			dst = append(dst, item)
		}
	}
	return dst
}

// VisibleChoices returns every visible item, synthetic ones included, in
// display order: select all, configured choices, new item, none, other.
func (q *Question) VisibleChoices() []*Item {
	return append([]*Item(nil), q.views().visible...)
}

// HeadItems returns the items rendered above the columns.
func (q *Question) HeadItems() []*Item {
	return append([]*Item(nil), q.views().head...)
}

// FootItems returns the items rendered below the columns.
func (q *Question) FootItems() []*Item {
	return append([]*Item(nil), q.views().foot...)
}

// HasHeadItems reports whether any head item is visible.
func (q *Question) HasHeadItems() bool { return len(q.views().head) > 0 }

// HasFootItems reports whether any foot item is visible.
func (q *Question) HasFootItems() bool { return len(q.views().foot) > 0 }

// BodyItems returns the items fed to the column layout.
func (q *Question) BodyItems() []*Item {
	return append([]*Item(nil), q.views().body...)
}

// Columns returns the body items arranged per the layout policy.
func (q *Question) Columns() [][]*Item {
	v := q.views()
	if v.columns == nil {
		v.columns = Layout(v.body, q.cfg.ColCount, q.layoutOrder())
	}
	out := make([][]*Item, len(v.columns))
	for i, column := range v.columns {
		out[i] = append([]*Item(nil), column...)
	}
	return out
}
