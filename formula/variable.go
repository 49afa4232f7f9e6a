package formula

import (
	"fmt"
	"strconv"
	"strings"
)

type varKind int

const (
	namedVar varKind = iota
	iterVar
	constVar
)

// Variable identifies one side of a constraint.  It is either a plain named
// variable, a structured iteration variable identified by (level, index) and
// an optional id, or a constant carrying a theory-specific literal text.
// Variables are immutable values with a total order (see Compare).
type Variable struct {
	kind  varKind
	text  string // name for namedVar, literal text for constVar
	level int
	index int
	id    int
	hasID bool
}

// Var makes a named variable.  Names are alphabetic-only; anything else
// cannot round-trip through the solver token grammar.
func Var(name string) Variable {
	return Variable{kind: namedVar, text: name}
}

// IterVar makes an iteration variable without an id.
func IterVar(level, index int) Variable {
	return Variable{kind: iterVar, level: level, index: index}
}

// IterVarID makes an iteration variable with an id.
func IterVarID(level, index, id int) Variable {
	return Variable{kind: iterVar, level: level, index: index, id: id, hasID: true}
}

// ConstVar makes a constant.  The text is theory-specific: a decimal integer,
// or "numerator/denominator" for rationals.
func ConstVar(text string) Variable {
	return Variable{kind: constVar, text: text}
}

func (v Variable) IsConstant() bool {
	return v.kind == constVar
}

// ConstText returns the literal text of a constant, or "" for free variables.
func (v Variable) ConstText() string {
	if v.kind != constVar {
		return ""
	}
	return v.text
}

func (v Variable) IsIndexed() bool {
	return v.kind == iterVar
}

// Name returns the name of a named variable, or "" otherwise.
func (v Variable) Name() string {
	if v.kind != namedVar {
		return ""
	}
	return v.text
}

func (v Variable) Level() int { return v.level }
func (v Variable) Index() int { return v.index }

// ID returns the optional id of an iteration variable.  Absence is reported
// through the second result, never as zero.
func (v Variable) ID() (int, bool) {
	return v.id, v.hasID && v.kind == iterVar
}

func (v Variable) String() string {
	switch v.kind {
	case namedVar, constVar:
		return v.text
	case iterVar:
		sb := strings.Builder{}
		sb.WriteByte('v')
		sb.WriteString(strconv.Itoa(v.level))
		sb.WriteByte('_')
		sb.WriteString(strconv.Itoa(v.index))
		sb.WriteByte('_')
		if v.hasID {
			sb.WriteString(strconv.Itoa(v.id))
		}
		return sb.String()
	default:
		panic(fmt.Sprintf("variable kind %d", v.kind))
	}
}

// Compare orders variables: named, then iteration, then constants, each kind
// ordered internally.  Iteration variables without an id sort before those
// with one at the same (level, index).
func (v Variable) Compare(w Variable) int {
	if v.kind != w.kind {
		if v.kind < w.kind {
			return -1
		}
		return 1
	}
	switch v.kind {
	case namedVar, constVar:
		return strings.Compare(v.text, w.text)
	default:
		if d := v.level - w.level; d != 0 {
			return sign(d)
		}
		if d := v.index - w.index; d != 0 {
			return sign(d)
		}
		if v.hasID != w.hasID {
			if !v.hasID {
				return -1
			}
			return 1
		}
		return sign(v.id - w.id)
	}
}

func sign(d int) int {
	switch {
	case d < 0:
		return -1
	case d > 0:
		return 1
	default:
		return 0
	}
}
