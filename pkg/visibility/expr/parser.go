package expr

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/goliatone/go-choicelist/pkg/visibility"
)

type node interface {
	eval(ctx visibility.Context) (bool, error)
}

// term is an operand: a literal, an answer reference or a list literal.
type term interface {
	value(ctx visibility.Context) any
}

type literal struct{ v any }

func (t literal) value(visibility.Context) any { return t.v }

type nullTerm struct{}

func (nullTerm) value(visibility.Context) any { return nil }

type ref string

func (t ref) value(ctx visibility.Context) any {
	v, _ := lookup(ctx, string(t))
	return v
}

type listTerm []term

func (t listTerm) value(ctx visibility.Context) any {
	out := make([]any, len(t))
	for i, item := range t {
		out[i] = item.value(ctx)
	}
	return out
}

type parser struct {
	tokens []token
	pos    int
}

func parse(tokens []token) (node, error) {
	p := &parser{tokens: tokens}
	n, err := p.or()
	if err != nil {
		return nil, err
	}
	if tok, ok := p.peek(); ok {
		return nil, fmt.Errorf("visibility/expr: unexpected token %q", tok.text)
	}
	return n, nil
}

func (p *parser) peek() (token, bool) {
	if p.pos >= len(p.tokens) {
		return token{}, false
	}
	return p.tokens[p.pos], true
}

func (p *parser) accept(kind tokenKind) (token, bool) {
	tok, ok := p.peek()
	if !ok || tok.kind != kind {
		return token{}, false
	}
	p.pos++
	return tok, true
}

func (p *parser) or() (node, error) {
	left, err := p.and()
	if err != nil {
		return nil, err
	}
	for {
		if _, ok := p.accept(tokOr); !ok {
			return left, nil
		}
		right, err := p.and()
		if err != nil {
			return nil, err
		}
		left = orNode{left, right}
	}
}

func (p *parser) and() (node, error) {
	left, err := p.unary()
	if err != nil {
		return nil, err
	}
	for {
		if _, ok := p.accept(tokAnd); !ok {
			return left, nil
		}
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		left = andNode{left, right}
	}
}

func (p *parser) unary() (node, error) {
	if _, ok := p.accept(tokNot); ok {
		inner, err := p.unary()
		if err != nil {
			return nil, err
		}
		return notNode{inner}, nil
	}
	return p.primary()
}

func (p *parser) primary() (node, error) {
	if _, ok := p.accept(tokLParen); ok {
		inner, err := p.or()
		if err != nil {
			return nil, err
		}
		if _, ok := p.accept(tokRParen); !ok {
			return nil, errors.New("visibility/expr: missing closing ')'")
		}
		return inner, nil
	}

	left, err := p.term()
	if err != nil {
		return nil, err
	}
	if op, ok := p.accept(tokCompare); ok {
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		return compareNode{left: left, op: op.text, right: right}, nil
	}
	if op, ok := p.accept(tokEmpty); ok {
		return emptyNode{operand: left, negate: op.text == "notempty"}, nil
	}
	return truthNode{left}, nil
}

func (p *parser) term() (term, error) {
	tok, ok := p.peek()
	if !ok {
		return nil, errors.New("visibility/expr: empty expression")
	}
	p.pos++
	switch tok.kind {
	case tokRef:
		return ref(tok.text), nil
	case tokString:
		return literal{tok.text}, nil
	case tokNumber:
		f, _ := strconv.ParseFloat(tok.text, 64)
		return literal{f}, nil
	case tokBool:
		return literal{tok.text == "true"}, nil
	case tokNull:
		return nullTerm{}, nil
	case tokLBracket:
		return p.list()
	default:
		return nil, fmt.Errorf("visibility/expr: expected operand, got %q", tok.text)
	}
}

// list reads the rest of a `[a, 'b', 3]` literal.
func (p *parser) list() (term, error) {
	var items listTerm
	if _, ok := p.accept(tokRBracket); ok {
		return items, nil
	}
	for {
		item, err := p.term()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
		if _, ok := p.accept(tokComma); ok {
			continue
		}
		if _, ok := p.accept(tokRBracket); ok {
			return items, nil
		}
		return nil, errors.New("visibility/expr: missing closing ']'")
	}
}

type orNode struct{ left, right node }

func (n orNode) eval(ctx visibility.Context) (bool, error) {
	if ok, err := n.left.eval(ctx); err != nil || ok {
		return ok, err
	}
	return n.right.eval(ctx)
}

type andNode struct{ left, right node }

func (n andNode) eval(ctx visibility.Context) (bool, error) {
	if ok, err := n.left.eval(ctx); err != nil || !ok {
		return false, err
	}
	return n.right.eval(ctx)
}

type notNode struct{ inner node }

func (n notNode) eval(ctx visibility.Context) (bool, error) {
	ok, err := n.inner.eval(ctx)
	if err != nil {
		return false, err
	}
	return !ok, nil
}

type truthNode struct{ operand term }

func (n truthNode) eval(ctx visibility.Context) (bool, error) {
	return truthy(n.operand.value(ctx)), nil
}

type emptyNode struct {
	operand term
	negate  bool
}

func (n emptyNode) eval(ctx visibility.Context) (bool, error) {
	return isEmpty(n.operand.value(ctx)) != n.negate, nil
}

type compareNode struct {
	left  term
	op    string
	right term
}

func (n compareNode) eval(ctx visibility.Context) (bool, error) {
	_, leftNull := n.left.(nullTerm)
	_, rightNull := n.right.(nullTerm)
	if leftNull || rightNull {
		other := n.left
		if leftNull {
			other = n.right
		}
		isNull := other.value(ctx) == nil
		switch n.op {
		case "=":
			return isNull, nil
		case "!=":
			return !isNull, nil
		}
		return false, fmt.Errorf("visibility/expr: operator %q does not apply to null", n.op)
	}

	left, right := n.left.value(ctx), n.right.value(ctx)
	switch n.op {
	case "contains":
		return contains(left, right), nil
	case "notcontains":
		return !contains(left, right), nil
	case "anyof":
		return anyOf(left, right), nil
	case "allof":
		return allOf(left, right), nil
	}

	if isBoolLiteral(n.left) || isBoolLiteral(n.right) {
		l, r := asBool(left), asBool(right)
		switch n.op {
		case "=":
			return l == r, nil
		case "!=":
			return l != r, nil
		}
		return false, fmt.Errorf("visibility/expr: operator %q does not apply to booleans", n.op)
	}

	if l, ok := asNumber(left); ok {
		if r, ok := asNumber(right); ok {
			return ordered(n.op, l, r), nil
		}
	}
	return ordered(n.op, asString(left), asString(right)), nil
}

func isBoolLiteral(t term) bool {
	lit, ok := t.(literal)
	if !ok {
		return false
	}
	_, ok = lit.v.(bool)
	return ok
}

func ordered[T float64 | string](op string, l, r T) bool {
	switch op {
	case "=":
		return l == r
	case "!=":
		return l != r
	case "<":
		return l < r
	case "<=":
		return l <= r
	case ">":
		return l > r
	case ">=":
		return l >= r
	default:
		return false
	}
}
