package expr

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

type tokenKind int

const (
	tokRef tokenKind = iota
	tokString
	tokNumber
	tokBool
	tokNull
	tokCompare
	tokEmpty
	tokAnd
	tokOr
	tokNot
	tokLParen
	tokRParen
	tokLBracket
	tokRBracket
	tokComma
)

type token struct {
	kind tokenKind
	text string
}

// symbols are matched longest first.
var symbols = []struct {
	text string
	kind tokenKind
	op   string
}{
	{"==", tokCompare, "="},
	{"!=", tokCompare, "!="},
	{"<>", tokCompare, "!="},
	{"<=", tokCompare, "<="},
	{">=", tokCompare, ">="},
	{"&&", tokAnd, "&&"},
	{"||", tokOr, "||"},
	{"=", tokCompare, "="},
	{"<", tokCompare, "<"},
	{">", tokCompare, ">"},
	{"!", tokNot, "!"},
	{"(", tokLParen, "("},
	{")", tokRParen, ")"},
	{"[", tokLBracket, "["},
	{"]", tokRBracket, "]"},
	{",", tokComma, ","},
}

var keywords = map[string]token{
	"true":        {tokBool, "true"},
	"false":       {tokBool, "false"},
	"null":        {tokNull, "null"},
	"nil":         {tokNull, "null"},
	"undefined":   {tokNull, "null"},
	"and":         {tokAnd, "&&"},
	"or":          {tokOr, "||"},
	"not":         {tokNot, "!"},
	"contains":    {tokCompare, "contains"},
	"notcontains": {tokCompare, "notcontains"},
	"anyof":       {tokCompare, "anyof"},
	"allof":       {tokCompare, "allof"},
	"empty":       {tokEmpty, "empty"},
	"notempty":    {tokEmpty, "notempty"},
}

type lexer struct {
	src    string
	pos    int
	tokens []token
}

func lex(src string) ([]token, error) {
	l := &lexer{src: src}
	for {
		l.skipSpace()
		if l.pos >= len(l.src) {
			return l.tokens, nil
		}
		if err := l.next(); err != nil {
			return nil, err
		}
	}
}

func (l *lexer) emit(kind tokenKind, text string) {
	l.tokens = append(l.tokens, token{kind: kind, text: text})
}

func (l *lexer) skipSpace() {
	for l.pos < len(l.src) && isSpace(l.src[l.pos]) {
		l.pos++
	}
}

func (l *lexer) next() error {
	switch ch := l.src[l.pos]; ch {
	case '{':
		return l.reference()
	case '}':
		return errors.New("visibility/expr: unexpected '}'")
	case '"', '\'':
		return l.quoted(ch)
	case '&', '|':
		if l.pos+1 >= len(l.src) || l.src[l.pos+1] != ch {
			return fmt.Errorf("visibility/expr: unexpected '%c'; use '%c%c'", ch, ch, ch)
		}
	}

	rest := l.src[l.pos:]
	for _, sym := range symbols {
		if strings.HasPrefix(rest, sym.text) {
			l.emit(sym.kind, sym.op)
			l.pos += len(sym.text)
			return nil
		}
	}
	return l.word()
}

// reference reads a `{name}` answer reference.
func (l *lexer) reference() error {
	end := strings.IndexByte(l.src[l.pos:], '}')
	if end < 0 {
		return errors.New("visibility/expr: unterminated '{' reference")
	}
	name := strings.TrimSpace(l.src[l.pos+1 : l.pos+end])
	if name == "" {
		return errors.New("visibility/expr: empty '{}' reference")
	}
	l.emit(tokRef, name)
	l.pos += end + 1
	return nil
}

func (l *lexer) quoted(quote byte) error {
	var b strings.Builder
	for i := l.pos + 1; i < len(l.src); i++ {
		switch c := l.src[i]; {
		case c == '\\' && i+1 < len(l.src):
			i++
			b.WriteByte(unescape(l.src[i]))
		case c == quote:
			l.emit(tokString, b.String())
			l.pos = i + 1
			return nil
		default:
			b.WriteByte(c)
		}
	}
	return errors.New("visibility/expr: unterminated string literal")
}

func (l *lexer) word() error {
	start := l.pos
	for l.pos < len(l.src) && !isDelimiter(l.src[l.pos]) {
		l.pos++
	}
	word := l.src[start:l.pos]
	if word == "" {
		return fmt.Errorf("visibility/expr: unexpected %q", l.src[l.pos])
	}
	if tok, ok := keywords[strings.ToLower(word)]; ok {
		l.tokens = append(l.tokens, tok)
		return nil
	}
	if isNumber(word) {
		l.emit(tokNumber, word)
		return nil
	}
	l.emit(tokRef, word)
	return nil
}

func unescape(c byte) byte {
	switch c {
	case 'n':
		return '\n'
	case 't':
		return '\t'
	case 'r':
		return '\r'
	default:
		return c
	}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isDelimiter(c byte) bool {
	return isSpace(c) || strings.IndexByte("()[],!=&|<>{}\"'", c) >= 0
}

func isNumber(word string) bool {
	if strings.IndexByte("0123456789+-.", word[0]) < 0 {
		return false
	}
	_, err := strconv.ParseFloat(word, 64)
	return err == nil
}
