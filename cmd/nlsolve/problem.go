package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/Jaxan/nlambda/formula"
	"github.com/Jaxan/nlambda/smt/logic"
	"github.com/Jaxan/nlambda/smt/token"
)

// A problem file is a YAML document:
//
//	logic: int          # or real
//	formula:
//	  and:
//	    - x < y
//	    - or:
//	        - y = z
//	        - not: x /= z
//
// Leaf constraints are "lhs SYM rhs" strings; operands are variable tokens
// or constant literals of the selected theory.
type Problem struct {
	Logic   string `yaml:"logic"`
	Formula any    `yaml:"formula"`
}

func LoadProblem(path string) (*logic.Logic, *formula.Formula, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("could not read %q: %w", path, err)
	}
	p := &Problem{}
	if err := yaml.Unmarshal(d, p); err != nil {
		return nil, nil, fmt.Errorf("error decoding %q: %w", path, err)
	}
	var l *logic.Logic
	switch p.Logic {
	case "int", "":
		l = logic.Int
	case "real":
		l = logic.Real
	default:
		return nil, nil, fmt.Errorf("unknown logic %q in %q", p.Logic, path)
	}
	f, err := formulaFromAny(p.Formula)
	if err != nil {
		return nil, nil, fmt.Errorf("error in formula of %q: %w", path, err)
	}
	return l, f, nil
}

func formulaFromAny(v any) (*formula.Formula, error) {
	switch x := v.(type) {
	case bool:
		if x {
			return formula.True(), nil
		}
		return formula.False(), nil
	case string:
		return parseConstraint(x)
	case map[string]any:
		if len(x) != 1 {
			return nil, fmt.Errorf("expected one of and/or/not, got %d keys", len(x))
		}
		for key, val := range x {
			switch key {
			case "and", "or":
				subs, err := formulaSlice(val)
				if err != nil {
					return nil, err
				}
				if key == "and" {
					return formula.NewAnd(subs...), nil
				}
				return formula.NewOr(subs...), nil
			case "not":
				sub, err := formulaFromAny(val)
				if err != nil {
					return nil, err
				}
				return formula.NewNot(sub), nil
			default:
				return nil, fmt.Errorf("unknown connective %q", key)
			}
		}
		panic("unreachable")
	default:
		return nil, fmt.Errorf("unexpected formula node type %T", v)
	}
}

func formulaSlice(v any) ([]*formula.Formula, error) {
	elts, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("and/or expects a list, got %T", v)
	}
	subs := make([]*formula.Formula, len(elts))
	for i, elt := range elts {
		sub, err := formulaFromAny(elt)
		if err != nil {
			return nil, err
		}
		subs[i] = sub
	}
	return subs, nil
}

var constraintRelations = map[string]formula.Relation{
	"=":  formula.Eq,
	"/=": formula.NotEq,
	"<":  formula.Less,
	"<=": formula.LessEq,
	">":  formula.Greater,
	">=": formula.GreaterEq,
}

func parseConstraint(s string) (*formula.Formula, error) {
	parts := strings.Fields(s)
	if len(parts) != 3 {
		return nil, fmt.Errorf("constraint %q: expected \"lhs SYM rhs\"", s)
	}
	rel, ok := constraintRelations[parts[1]]
	if !ok {
		return nil, fmt.Errorf("constraint %q: unknown relation %q", s, parts[1])
	}
	lhs, err := parseOperand(parts[0])
	if err != nil {
		return nil, fmt.Errorf("constraint %q: %w", s, err)
	}
	rhs, err := parseOperand(parts[2])
	if err != nil {
		return nil, fmt.Errorf("constraint %q: %w", s, err)
	}
	return formula.NewConstraint(rel, lhs, rhs), nil
}

func parseOperand(s string) (formula.Variable, error) {
	if v, err := token.DecodeVariable(s); err == nil {
		return v, nil
	}
	if isConstText(s) {
		return formula.ConstVar(s), nil
	}
	return formula.Variable{}, fmt.Errorf("invalid operand %q", s)
}

// isConstText accepts the internal constant forms: a decimal integer or a
// numerator/denominator pair.
func isConstText(s string) bool {
	num, den, ok := strings.Cut(s, "/")
	if !ok {
		den = "1"
	}
	return digitsOnly(num) && digitsOnly(den)
}

func digitsOnly(s string) bool {
	return s != "" && token.AsciiDigits([]byte(s)) == len(s)
}
