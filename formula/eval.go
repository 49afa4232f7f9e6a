package formula

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
)

// Binding assigns concrete values to free variables, keyed by the variable's
// display form (see Variable.String).
type Binding map[string]any

// Eval evaluates a formula under a concrete binding by compiling it to an
// expr program.  Every free variable must be bound.  Rational constants are
// evaluated as floats, so results involving them are approximate.
func Eval(f *Formula, binding Binding) (bool, error) {
	for _, v := range f.FreeVars() {
		if _, ok := binding[v.String()]; !ok {
			return false, fmt.Errorf("unbound variable %s", v)
		}
	}
	src := exprSource(f)
	prg, err := expr.Compile(src, expr.AsBool())
	if err != nil {
		return false, fmt.Errorf("compiling %q: %w", src, err)
	}
	res, err := expr.Run(prg, map[string]any(binding))
	if err != nil {
		return false, fmt.Errorf("evaluating %q: %w", src, err)
	}
	b, ok := res.(bool)
	if !ok {
		return false, fmt.Errorf("evaluating %q: result type %T", src, res)
	}
	return b, nil
}

func exprSource(f *Formula) string {
	switch f.kind {
	case KindTrue:
		return "true"
	case KindFalse:
		return "false"
	case KindConstraint:
		return fmt.Sprintf("(%s %s %s)",
			exprOperand(f.lhs), exprRelation(f.rel), exprOperand(f.rhs))
	case KindNot:
		return fmt.Sprintf("!%s", exprSource(f.subs[0]))
	case KindAnd, KindOr:
		op := " && "
		if f.kind == KindOr {
			op = " || "
		}
		parts := make([]string, len(f.subs))
		for i, sub := range f.subs {
			parts[i] = exprSource(sub)
		}
		return "(" + strings.Join(parts, op) + ")"
	default:
		panic("kind")
	}
}

func exprRelation(r Relation) string {
	switch r {
	case Eq:
		return "=="
	case NotEq:
		return "!="
	default:
		return r.String()
	}
}

func exprOperand(v Variable) string {
	if !v.IsConstant() {
		return v.String()
	}
	if num, den, ok := strings.Cut(v.ConstText(), "/"); ok {
		return fmt.Sprintf("(%s.0 / %s.0)", num, den)
	}
	return v.ConstText()
}
