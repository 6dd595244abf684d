// Where: internal/preprocess/lexer.go
// What: Tokenizer for `{{#if}}` condition expressions.
// Why: Scan an expression once instead of rescanning it for every operator.
package preprocess

import "strings"

type tokenKind int

const (
	tokenWord tokenKind = iota
	tokenEq
	tokenNe
	tokenAnd
	tokenOr
	tokenLParen
	tokenRParen
	tokenEOF
)

func (k tokenKind) String() string {
	switch k {
	case tokenWord:
		return "word"
	case tokenEq:
		return "'=='"
	case tokenNe:
		return "'!='"
	case tokenAnd:
		return "'&&'"
	case tokenOr:
		return "'||'"
	case tokenLParen:
		return "'('"
	case tokenRParen:
		return "')'"
	default:
		return "end of expression"
	}
}

type token struct {
	kind tokenKind
	text string
	pos  int
}

var operators = []struct {
	text string
	kind tokenKind
}{
	{"==", tokenEq},
	{"!=", tokenNe},
	{"&&", tokenAnd},
	{"||", tokenOr},
}

// tokenize splits an expression into words, comparison and logical operators,
// and parentheses. A word runs until whitespace, a parenthesis, or the start of
// a two-character operator.
func tokenize(src string) []token {
	var tokens []token
	i := 0
	for i < len(src) {
		c := src[i]
		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			i++
			continue
		case c == '(':
			tokens = append(tokens, token{kind: tokenLParen, text: "(", pos: i})
			i++
			continue
		case c == ')':
			tokens = append(tokens, token{kind: tokenRParen, text: ")", pos: i})
			i++
			continue
		}
		if kind, ok := operatorAt(src, i); ok {
			tokens = append(tokens, token{kind: kind, text: src[i : i+2], pos: i})
			i += 2
			continue
		}
		start := i
		for i < len(src) && !isWordBoundary(src, i) {
			i++
		}
		tokens = append(tokens, token{kind: tokenWord, text: src[start:i], pos: start})
	}
	tokens = append(tokens, token{kind: tokenEOF, pos: len(src)})
	return tokens
}

func operatorAt(src string, i int) (tokenKind, bool) {
	for _, op := range operators {
		if strings.HasPrefix(src[i:], op.text) {
			return op.kind, true
		}
	}
	return 0, false
}

func isWordBoundary(src string, i int) bool {
	switch src[i] {
	case ' ', '\t', '\r', '\n', '(', ')':
		return true
	}
	_, ok := operatorAt(src, i)
	return ok
}
