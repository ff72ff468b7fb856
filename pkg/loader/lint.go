package loader

import (
	"fmt"
	"sort"
	"strings"

	"github.com/goliatone/go-choicelist/pkg/choices"
	"github.com/goliatone/go-choicelist/pkg/visibility/expr"
)

// Severity grades a lint finding.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Issue is one lint finding.
type Issue struct {
	File     string
	Location string
	Severity Severity
	Message  string
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s -> %s: %s", i.File, i.Location, i.Severity, i.Message)
}

// RuleChecker validates visibleIf/enableIf syntax.
type RuleChecker interface {
	Check(rule string) error
}

// LintOption configures Lint.
type LintOption func(*lintConfig)

type lintConfig struct {
	registry *choices.Registry
	rules    RuleChecker
}

// WithLintRegistry resolves question types against reg.
func WithLintRegistry(reg *choices.Registry) LintOption {
	return func(cfg *lintConfig) {
		if reg != nil {
			cfg.registry = reg
		}
	}
}

// WithRuleChecker replaces the expression syntax checker.
func WithRuleChecker(rules RuleChecker) LintOption {
	return func(cfg *lintConfig) {
		if rules != nil {
			cfg.rules = rules
		}
	}
}

// Lint reports configuration the engine accepts but silently ignores or
// misreads: flags for synthetic items the type cannot show, reserved or
// duplicate choice values and rules that do not parse. Issues are sorted by
// file then location.
func Lint(store *Store, opts ...LintOption) []Issue {
	cfg := lintConfig{registry: choices.DefaultRegistry(), rules: expr.New()}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	var issues []Issue
	for _, question := range store.Questions() {
		issues = append(issues, lintQuestion(cfg, question)...)
	}
	sort.SliceStable(issues, func(i, j int) bool {
		if issues[i].File == issues[j].File {
			return issues[i].Location < issues[j].Location
		}
		return issues[i].File < issues[j].File
	})
	return issues
}

func lintQuestion(cfg lintConfig, question QuestionConfig) []Issue {
	var issues []Issue
	report := func(location []string, severity Severity, format string, args ...any) {
		issues = append(issues, Issue{
			File:     question.Source,
			Location: strings.Join(location, " > "),
			Severity: severity,
			Message:  fmt.Sprintf(format, args...),
		})
	}
	base := []string{"question", question.Name}

	caps, ok := cfg.registry.Lookup(question.Type)
	if !ok {
		report(base, SeverityError, "unknown question type %q", question.Type)
		return issues
	}

	flags := []struct {
		name      string
		set       bool
		supported bool
	}{
		{"hasSelectAll", question.HasSelectAll, caps.SelectAll && caps.MultiSelect},
		{"hasNone", question.HasNone, caps.None},
		{"hasOther", question.HasOther, caps.Other},
	}
	for _, flag := range flags {
		if flag.set && !flag.supported {
			report(appendPath(base, flag.name), SeverityWarning, "%s is ignored by %s questions", flag.name, question.Type)
		}
	}
	if question.SeparateSpecialChoices && !caps.SeparateSpecialChoicesVisible {
		report(appendPath(base, "separateSpecialChoices"), SeverityWarning, "separateSpecialChoices is not exposed for %s questions", question.Type)
	}
	if question.ColCount < 0 {
		report(appendPath(base, "colCount"), SeverityWarning, "negative colCount %d renders a single column", question.ColCount)
	}
	if question.ChoicesByURL != nil && len(question.Choices) > 0 {
		report(appendPath(base, "choicesByUrl"), SeverityWarning, "fetched choices replace the %d inline choices", len(question.Choices))
	}

	seen := make(map[string]int, len(question.Choices))
	for idx, item := range question.Choices {
		location := appendPath(base, fmt.Sprintf("choices[%d]", idx))
		if item.Value == nil {
			report(location, SeverityError, "choice has no value")
			continue
		}
		key := fmt.Sprint(item.Value)
		switch key {
		case choices.ValueNone, choices.ValueOther, choices.ValueSelectAll, choices.ValueNewItem:
			report(location, SeverityError, "value %q is reserved for a synthetic item", key)
		}
		if first, dup := seen[key]; dup {
			report(location, SeverityWarning, "value %q duplicates choices[%d]", key, first)
		} else {
			seen[key] = idx
		}
		for _, rule := range []struct{ name, expr string }{{"visibleIf", item.VisibleIf}, {"enableIf", item.EnableIf}} {
			if rule.expr == "" {
				continue
			}
			if err := cfg.rules.Check(rule.expr); err != nil {
				report(appendPath(location, rule.name), SeverityError, "%v", err)
			}
		}
	}
	return issues
}

func appendPath(path []string, segment string) []string {
	next := append([]string(nil), path...)
	return append(next, segment)
}

// HasErrors reports whether any issue is an error.
func HasErrors(issues []Issue) bool {
	for _, issue := range issues {
		if issue.Severity == SeverityError {
			return true
		}
	}
	return false
}
