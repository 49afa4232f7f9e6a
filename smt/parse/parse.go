// Package parse interprets solver output: the satisfiability verdict and
// the goal listing produced by the simplify command.
package parse

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/Jaxan/nlambda/formula"
	"github.com/Jaxan/nlambda/smt/logic"
	"github.com/Jaxan/nlambda/smt/token"
)

// Unsat reports whether output is the verdict "unsat", ignoring all
// whitespace.  Any other output, including "sat" and "unknown", is an
// ordinary negative answer and not an error.
func Unsat(output string) bool {
	stripped := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, output)
	return stripped == "unsat"
}

// Goals parses the output of (apply ctx-solver-simplify):
//
//	goals      := "(goals" goal ")"
//	goal       := "(goal" formula* option* ")"
//	option     := ":precision" "precise" | ":depth" decimal
//	formula    := "true" | "false" | constraint | "(not" formula ")"
//	            | "(and" formula+ ")" | "(or" formula+ ")"
//	constraint := "(" relation operand operand ")"
//	operand    := iteration-variable | named-variable | theory-constant
//
// An empty goal means trivially true; several goal formulas conjoin.
func Goals(l *logic.Logic, output string) (*formula.Formula, error) {
	p := &parser{d: []byte(output), logic: l}
	p.push("goals")
	p.expect('(')
	p.word("goals")
	f := p.goal()
	p.expect(')')
	p.space()
	if p.err == nil && p.i != len(p.d) {
		p.fail("trailing output")
	}
	if p.err != nil {
		return nil, p.err
	}
	return f, nil
}

type parser struct {
	d     []byte
	i     int
	logic *logic.Logic
	ctx   []string
	err   error
}

func (p *parser) goal() *formula.Formula {
	p.push("goal")
	defer p.pop()
	p.expect('(')
	p.word("goal")
	var fs []*formula.Formula
	for {
		p.space()
		if p.err != nil || p.i >= len(p.d) {
			break
		}
		if p.d[p.i] == ':' || p.d[p.i] == ')' {
			break
		}
		fs = append(fs, p.formula())
	}
	for p.err == nil && p.i < len(p.d) && p.d[p.i] == ':' {
		p.option()
		p.space()
	}
	p.expect(')')
	if p.err != nil {
		return nil
	}
	// No formulas in a simplified goal means trivially true.
	return formula.NewAnd(fs...)
}

// option recognizes and discards solver metadata, never semantic content.
func (p *parser) option() {
	p.push("option")
	defer p.pop()
	p.expect(':')
	n := token.AsciiLetters(p.d[p.i:])
	if n == 0 {
		p.fail("expected option name")
		return
	}
	name := string(p.d[p.i : p.i+n])
	p.i += n
	switch name {
	case "precision":
		p.word("precise")
	case "depth":
		p.space()
		n := token.AsciiDigits(p.d[p.i:])
		if n == 0 {
			p.fail("expected depth value")
			return
		}
		p.i += n
	default:
		p.fail(fmt.Sprintf("unknown option :%s", name))
	}
}

func (p *parser) formula() *formula.Formula {
	p.push("formula")
	defer p.pop()
	p.space()
	if p.err != nil {
		return nil
	}
	if p.literal("true") {
		return formula.True()
	}
	if p.literal("false") {
		return formula.False()
	}
	if p.i >= len(p.d) || p.d[p.i] != '(' {
		p.fail("expected formula")
		return nil
	}
	p.i++
	p.space()
	switch {
	case p.literal("not"):
		f := p.formula()
		p.expect(')')
		if p.err != nil {
			return nil
		}
		return formula.NewNot(f)
	case p.literal("and"):
		return p.junction(formula.NewAnd)
	case p.literal("or"):
		return p.junction(formula.NewOr)
	default:
		return p.constraint()
	}
}

func (p *parser) junction(mk func(...*formula.Formula) *formula.Formula) *formula.Formula {
	var fs []*formula.Formula
	for {
		p.space()
		if p.err != nil {
			return nil
		}
		if p.i < len(p.d) && p.d[p.i] == ')' {
			p.i++
			break
		}
		if p.i >= len(p.d) {
			p.fail("unterminated junction")
			return nil
		}
		fs = append(fs, p.formula())
	}
	if len(fs) == 0 {
		p.fail("empty junction")
		return nil
	}
	return mk(fs...)
}

// constraint parses after the opening parenthesis.
func (p *parser) constraint() *formula.Formula {
	p.push("constraint")
	defer p.pop()
	rel, n, err := token.ScanRelation(p.d[p.i:])
	if err != nil {
		p.failErr(err)
		return nil
	}
	p.i += n
	lhs := p.operand()
	rhs := p.operand()
	p.expect(')')
	if p.err != nil {
		return nil
	}
	return formula.NewConstraint(rel, lhs, rhs)
}

// operand resolution order mirrors encoding precedence: iteration variable,
// named variable, then theory constant.
func (p *parser) operand() formula.Variable {
	p.push("operand")
	defer p.pop()
	p.space()
	if p.err != nil {
		return formula.Variable{}
	}
	d := p.d[p.i:]
	if v, n, ok := token.ScanVariable(d); ok {
		p.i += n
		p.delimiter()
		return v
	}
	if text, n, ok := p.logic.ScanConst(d); ok {
		p.i += n
		p.delimiter()
		return formula.ConstVar(text)
	}
	p.fail("expected operand")
	return formula.Variable{}
}

// delimiter requires the operand to be terminated by whitespace or a closing
// parenthesis, so that partial token matches are rejected.
func (p *parser) delimiter() {
	if p.err != nil || p.i >= len(p.d) {
		return
	}
	if c := p.d[p.i]; !token.Space(c) && c != ')' {
		p.fail("expected operand delimiter")
	}
}

// literal consumes the given word when present and followed by a delimiter.
func (p *parser) literal(s string) bool {
	if p.err != nil {
		return false
	}
	d := p.d[p.i:]
	if len(d) < len(s) || string(d[:len(s)]) != s {
		return false
	}
	if len(d) > len(s) {
		c := d[len(s)]
		if !token.Space(c) && c != ')' && c != '(' {
			return false
		}
	}
	p.i += len(s)
	return true
}

func (p *parser) word(s string) {
	p.space()
	if p.err != nil {
		return
	}
	if !p.literal(s) {
		p.fail(fmt.Sprintf("expected %q", s))
	}
}

func (p *parser) expect(c byte) {
	p.space()
	if p.err != nil {
		return
	}
	if p.i >= len(p.d) || p.d[p.i] != c {
		p.fail(fmt.Sprintf("expected %q", string(c)))
		return
	}
	p.i++
}

func (p *parser) space() {
	if p.err != nil {
		return
	}
	p.i += token.SkipSpace(p.d[p.i:])
}

func (p *parser) push(ctx string) {
	p.ctx = append(p.ctx, ctx)
}

func (p *parser) pop() {
	p.ctx = p.ctx[:len(p.ctx)-1]
}

func (p *parser) fail(msg string) {
	p.failErr(errors.New(msg))
}

func (p *parser) failErr(err error) {
	if p.err != nil {
		return
	}
	rest := p.d[p.i:]
	if len(rest) > 40 {
		rest = rest[:40]
	}
	p.err = fmt.Errorf("%w: %w in %s at %q",
		ErrParse, err, strings.Join(p.ctx, "/"), string(rest))
}
