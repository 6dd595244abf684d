// Where: internal/preprocess/condition.go
// What: Condition AST, recursive-descent parser, and evaluator.
// Why: Make `||` / `&&` / grouping precedence explicit and testable on its own.
package preprocess

import (
	"errors"
	"fmt"
	"strings"
)

var errEmptyExpression = errors.New("empty expression")

// Expr is a parsed condition.
type Expr interface {
	// Eval evaluates the condition against the brand env mapping.
	Eval(env map[string]string) bool
	String() string
}

// Or is true when any operand is true.
type Or struct{ Operands []Expr }

// And is true when every operand is true.
type And struct{ Operands []Expr }

// Compare checks one env variable against a literal value.
type Compare struct {
	Name   string
	Negate bool
	Value  string
}

func (o Or) Eval(env map[string]string) bool {
	for _, operand := range o.Operands {
		if operand.Eval(env) {
			return true
		}
	}
	return false
}

func (a And) Eval(env map[string]string) bool {
	for _, operand := range a.Operands {
		if !operand.Eval(env) {
			return false
		}
	}
	return true
}

// Eval is false whenever Name is absent from env, for both operators.
// A missing variable never satisfies `!=`.
func (c Compare) Eval(env map[string]string) bool {
	actual, ok := env[c.Name]
	if !ok {
		return false
	}
	if c.Negate {
		return actual != c.Value
	}
	return actual == c.Value
}

func (o Or) String() string  { return joinExprs(o.Operands, " || ") }
func (a And) String() string { return joinExprs(a.Operands, " && ") }

func (c Compare) String() string {
	op := "=="
	if c.Negate {
		op = "!="
	}
	return fmt.Sprintf("%s %s %s", c.Name, op, c.Value)
}

func joinExprs(exprs []Expr, sep string) string {
	parts := make([]string, len(exprs))
	for i, e := range exprs {
		switch e.(type) {
		case Or, And:
			parts[i] = "(" + e.String() + ")"
		default:
			parts[i] = e.String()
		}
	}
	return strings.Join(parts, sep)
}

// SyntaxError describes an expression that matches none of the accepted forms.
type SyntaxError struct {
	Expr string
	Pos  int
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("invalid condition expression %q: %s at offset %d", e.Expr, e.Msg, e.Pos)
}

// ParseCondition parses `a == b`, `a != b`, `&&`, `||` and parenthesized groups.
// `||` binds loosest, then `&&`, then groups and comparisons.
func ParseCondition(src string) (Expr, error) {
	if strings.TrimSpace(src) == "" {
		return nil, errEmptyExpression
	}
	p := &parser{src: src, tokens: tokenize(src)}
	expr, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.kind != tokenEOF {
		return nil, p.errorf(tok, "unexpected %s", describe(tok))
	}
	return expr, nil
}

type parser struct {
	src    string
	tokens []token
	pos    int
}

func (p *parser) peek() token {
	return p.tokens[p.pos]
}

func (p *parser) next() token {
	tok := p.tokens[p.pos]
	if tok.kind != tokenEOF {
		p.pos++
	}
	return tok
}

func (p *parser) errorf(tok token, format string, args ...any) error {
	return &SyntaxError{Expr: p.src, Pos: tok.pos, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) parseOr() (Expr, error) {
	first, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	operands := []Expr{first}
	for p.peek().kind == tokenOr {
		p.next()
		operand, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		operands = append(operands, operand)
	}
	if len(operands) == 1 {
		return first, nil
	}
	return Or{Operands: operands}, nil
}

func (p *parser) parseAnd() (Expr, error) {
	first, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	operands := []Expr{first}
	for p.peek().kind == tokenAnd {
		p.next()
		operand, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}
		operands = append(operands, operand)
	}
	if len(operands) == 1 {
		return first, nil
	}
	return And{Operands: operands}, nil
}

func (p *parser) parsePrimary() (Expr, error) {
	tok := p.next()
	switch tok.kind {
	case tokenLParen:
		inner, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		if closing := p.next(); closing.kind != tokenRParen {
			return nil, p.errorf(closing, "expected ')' but found %s", describe(closing))
		}
		return inner, nil
	case tokenWord:
		op := p.next()
		if op.kind != tokenEq && op.kind != tokenNe {
			return nil, p.errorf(op, "expected '==' or '!=' after %q but found %s", tok.text, describe(op))
		}
		value := p.next()
		if value.kind != tokenWord {
			return nil, p.errorf(value, "expected a value but found %s", describe(value))
		}
		return Compare{Name: tok.text, Negate: op.kind == tokenNe, Value: value.text}, nil
	default:
		return nil, p.errorf(tok, "expected a comparison or '(' but found %s", describe(tok))
	}
}

func describe(tok token) string {
	if tok.kind == tokenWord {
		return fmt.Sprintf("%q", tok.text)
	}
	return tok.kind.String()
}

// Evaluate parses and evaluates src. Malformed expressions evaluate to false
// and are reported through warn; an empty expression is false without a warning.
func Evaluate(src string, env map[string]string, warn WarnFunc) bool {
	expr, err := ParseCondition(src)
	if err != nil {
		if !errors.Is(err, errEmptyExpression) && warn != nil {
			warn(src, err)
		}
		return false
	}
	return expr.Eval(env)
}
