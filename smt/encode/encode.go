// Package encode renders formulas as SMT-LIB scripts.
package encode

import (
	"bytes"
	"errors"
	"fmt"
	"sort"

	"github.com/Jaxan/nlambda/formula"
	"github.com/Jaxan/nlambda/smt/logic"
	"github.com/Jaxan/nlambda/smt/token"
)

var ErrScript = errors.New("script error")

// Kind selects the script suffix: decide satisfiability or simplify.
type Kind int

const (
	CheckSat Kind = iota
	Simplify
)

// Script renders a complete script for f: set-logic, one declare-const per
// free variable sorted by token, the assertion, and the kind-specific
// command.
func Script(l *logic.Logic, f *formula.Formula, kind Kind) (string, error) {
	buf := bytes.NewBuffer(nil)
	fmt.Fprintf(buf, "(set-logic %s)\n", l.Name)
	toks, err := varTokens(f.FreeVars())
	if err != nil {
		return "", err
	}
	for _, tok := range toks {
		fmt.Fprintf(buf, "(declare-const %s %s)\n", tok, l.Sort)
	}
	buf.WriteString("(assert ")
	if err := writeFormula(buf, l, f); err != nil {
		return "", err
	}
	buf.WriteString(")\n")
	switch kind {
	case CheckSat:
		buf.WriteString("(check-sat)\n")
	case Simplify:
		buf.WriteString("(apply ctx-solver-simplify)\n")
	default:
		return "", fmt.Errorf("%w: unknown script kind %d", ErrScript, kind)
	}
	return buf.String(), nil
}

// varTokens encodes the free variables and fixes the declaration order by
// sorting the tokens.
func varTokens(vars []formula.Variable) ([]string, error) {
	toks := make([]string, len(vars))
	for i, v := range vars {
		tok, err := token.EncodeVariable(v)
		if err != nil {
			return nil, err
		}
		toks[i] = tok
	}
	sort.Strings(toks)
	return toks, nil
}

func writeFormula(buf *bytes.Buffer, l *logic.Logic, f *formula.Formula) error {
	switch f.Kind() {
	case formula.KindTrue:
		buf.WriteString(" true ")
	case formula.KindFalse:
		buf.WriteString(" false ")
	case formula.KindConstraint:
		return writeConstraint(buf, l, f)
	case formula.KindNot:
		buf.WriteString("(not ")
		if err := writeFormula(buf, l, f.Subs()[0]); err != nil {
			return err
		}
		buf.WriteString(")")
	case formula.KindAnd, formula.KindOr:
		if f.Kind() == formula.KindAnd {
			buf.WriteString("(and")
		} else {
			buf.WriteString("(or")
		}
		for _, sub := range f.Subs() {
			buf.WriteString(" ")
			if err := writeFormula(buf, l, sub); err != nil {
				return err
			}
		}
		buf.WriteString(")")
	default:
		return fmt.Errorf("%w: formula kind %s", ErrScript, f.Kind())
	}
	return nil
}

func writeConstraint(buf *bytes.Buffer, l *logic.Logic, f *formula.Formula) error {
	rel, lhs, rhs := f.Constraint()
	// Not-equal has no native symbol: encode as a negated equality.
	if rel == formula.NotEq {
		buf.WriteString("(not ")
		if err := writeConstraint(buf, l, formula.NewConstraint(formula.Eq, lhs, rhs)); err != nil {
			return err
		}
		buf.WriteString(")")
		return nil
	}
	sym, err := token.EncodeRelation(rel)
	if err != nil {
		return err
	}
	lhsText, err := operand(l, lhs)
	if err != nil {
		return err
	}
	rhsText, err := operand(l, rhs)
	if err != nil {
		return err
	}
	fmt.Fprintf(buf, "(%s %s %s)", sym, lhsText, rhsText)
	return nil
}

func operand(l *logic.Logic, v formula.Variable) (string, error) {
	if v.IsConstant() {
		return l.ConstToSMT(v.ConstText())
	}
	return token.EncodeVariable(v)
}
