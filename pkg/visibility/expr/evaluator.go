package expr

import (
	"strings"
	"sync"

	"github.com/goliatone/go-choicelist/pkg/visibility"
)

// Evaluator is a small, dependency-free rule evaluator for choice visibleIf and
// enableIf expressions.
//
// Supported syntax:
//   - operands: `answer`, `{answer}`, `extras.role`, "text", 'text', 42, true,
//     null, lists such as `['a', 'b']`
//   - comparisons: `=`/`==`, `!=`/`<>`, `<`, `<=`, `>`, `>=`
//   - membership: `contains`, `notcontains`, `anyof`, `allof`
//   - postfix checks: `{answer} empty`, `{answer} notempty`
//   - boolean composition: `&&`/`and`, `||`/`or`, `!`/`not`, parentheses
//   - a bare operand is evaluated for truthiness
//
// Values are read from visibility.Context.Values (with dot-path traversal) and
// visibility.Context.Extras (via the `extras.` prefix). Parsed rules are
// cached, so an Evaluator must not be copied after first use.
type Evaluator struct {
	compiled sync.Map
}

var _ visibility.Evaluator = (*Evaluator)(nil)

func New() *Evaluator { return &Evaluator{} }

// Eval implements visibility.Evaluator. Blank rules hold.
func (e *Evaluator) Eval(subject, rule string, ctx visibility.Context) (bool, error) {
	_ = subject
	n, err := e.compile(rule)
	if err != nil {
		return false, err
	}
	if n == nil {
		return true, nil
	}
	return n.eval(ctx)
}

// Check parses rule without evaluating it and reports syntax errors.
func (e *Evaluator) Check(rule string) error {
	_, err := e.compile(rule)
	return err
}

func (e *Evaluator) compile(rule string) (node, error) {
	rule = strings.TrimSpace(rule)
	if rule == "" {
		return nil, nil
	}
	if cached, ok := e.compiled.Load(rule); ok {
		return cached.(node), nil
	}
	tokens, err := lex(rule)
	if err != nil {
		return nil, err
	}
	n, err := parse(tokens)
	if err != nil {
		return nil, err
	}
	e.compiled.Store(rule, n)
	return n, nil
}
