package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-choicelist/pkg/choices"
)

// CommentSuffix is appended to a question name to key its "other" comment in
// Answers.
const CommentSuffix = "-Comment"

// Answers maps question names to their values. Comments entered for "other"
// are stored under name + CommentSuffix.
type Answers map[string]any

// Prompter asks select questions in the terminal and writes the answers back
// into each question's selection.
type Prompter struct {
	driver   PromptDriver
	theme    Theme
	pageSize int
	confirm  bool
}

// New constructs a Prompter backed by survey/v2 unless WithPromptDriver is
// supplied.
func New(opts ...Option) *Prompter {
	p := &Prompter{}
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}
	if p.driver == nil {
		p.driver = NewSurveyDriver(nil)
	}
	return p
}

// Ask prompts for q until the user confirms (when confirmation is enabled).
// Select all, none and other follow the question's rules; picking other asks
// for a comment.
func (p *Prompter) Ask(ctx context.Context, q *choices.Question, title string) error {
	if q == nil {
		return nil
	}
	if q.IsDesignMode() {
		return fmt.Errorf("%w: %s", ErrDesignMode, q.Name())
	}
	if strings.TrimSpace(title) == "" {
		title = q.Name()
	}

	for {
		if err := p.askOnce(ctx, q, title); err != nil {
			return err
		}
		if !p.confirm {
			return nil
		}
		ok, err := p.driver.Confirm(ctx, ConfirmConfig{
			Message: fmt.Sprintf("Keep %s = %v?", q.Name(), q.Value()),
			Default: true,
		})
		if err != nil {
			return err
		}
		if ok {
			return nil
		}
	}
}

// AskAll prompts every question in order and collects the answers. Titles
// are looked up by question name.
func (p *Prompter) AskAll(ctx context.Context, questions []*choices.Question, titles map[string]string) (Answers, error) {
	answers := make(Answers, len(questions))
	for _, q := range questions {
		if err := p.Ask(ctx, q, titles[q.Name()]); err != nil {
			return nil, err
		}
		answers[q.Name()] = q.Value()
		if comment := q.Comment(); comment != "" {
			answers[q.Name()+CommentSuffix] = comment
		}
	}
	return answers, nil
}

func (p *Prompter) askOnce(ctx context.Context, q *choices.Question, title string) error {
	items, disabled := selectable(q)
	if len(items) == 0 {
		return fmt.Errorf("%w: %s", ErrNoChoices, q.Name())
	}
	if len(disabled) > 0 {
		if err := p.info(ctx, "Unavailable: "+strings.Join(disabled, ", ")); err != nil {
			return err
		}
	}

	cfg := SelectConfig{
		Message:      title,
		Options:      optionLabels(q, items),
		DefaultIndex: -1,
		PageSize:     p.pageSize,
	}
	for idx, item := range items {
		if q.IsChecked(item) {
			if cfg.DefaultIndex < 0 {
				cfg.DefaultIndex = idx
			}
			cfg.Defaults = append(cfg.Defaults, idx)
		}
	}

	if q.IsMultiSelect() {
		picked, err := p.driver.MultiSelect(ctx, cfg)
		if err != nil {
			return err
		}
		values, droppedNone := multiValues(items, picked)
		if droppedNone {
			if err := p.info(ctx, "Ignoring \"none\" because other choices were picked"); err != nil {
				return err
			}
		}
		q.SetValue(values)
	} else {
		idx, err := p.driver.Select(ctx, cfg)
		if err != nil {
			return err
		}
		if idx < 0 || idx >= len(items) {
			return fmt.Errorf("tui: %s: selection %d out of range", q.Name(), idx)
		}
		q.SetValue(items[idx].Value())
	}

	if q.Selection().Contains(choices.ValueOther) {
		other := q.ChoiceSet().Special(choices.KindOther)
		comment, err := p.driver.Input(ctx, InputConfig{
			Message: q.ItemText(other),
			Default: q.Comment(),
		})
		if err != nil {
			return err
		}
		q.SetComment(strings.TrimSpace(comment))
	}
	return nil
}

func (p *Prompter) info(ctx context.Context, msg string) error {
	return p.driver.Info(ctx, p.theme.InfoPrefix+msg)
}

// selectable returns the visible items a user can pick plus the texts of the
// disabled ones.
func selectable(q *choices.Question) ([]*choices.Item, []string) {
	var items []*choices.Item
	var disabled []string
	for _, item := range q.VisibleChoices() {
		if item.Kind() == choices.KindNewItem {
			continue
		}
		if !q.IsEnabled(item) {
			disabled = append(disabled, q.ItemText(item))
			continue
		}
		items = append(items, item)
	}
	return items, disabled
}

// optionLabels returns the item texts, suffixed where needed so every label is
// unique.
func optionLabels(q *choices.Question, items []*choices.Item) []string {
	labels := make([]string, len(items))
	seen := make(map[string]int, len(items))
	for idx, item := range items {
		text := q.ItemText(item)
		seen[text]++
		if n := seen[text]; n > 1 {
			text = fmt.Sprintf("%s (%d)", text, n)
		}
		labels[idx] = text
	}
	return labels
}

// multiValues maps picked indices onto a multi-select value. Select all
// expands to every offered choice and none only survives when picked alone.
func multiValues(items []*choices.Item, picked []int) ([]any, bool) {
	var values []any
	add := func(v any) {
		for _, existing := range values {
			if choices.ValuesEqual(existing, v) {
				return
			}
		}
		values = append(values, v)
	}

	none := false
	for _, idx := range picked {
		if idx < 0 || idx >= len(items) {
			continue
		}
		item := items[idx]
		switch item.Kind() {
		case choices.KindSelectAll:
			for _, candidate := range items {
				if candidate.Kind() == choices.KindChoice {
					add(candidate.Value())
				}
			}
		case choices.KindNone:
			none = true
		default:
			add(item.Value())
		}
	}
	if none {
		if len(values) == 0 {
			return []any{choices.ValueNone}, false
		}
		return values, true
	}
	return values, false
}
