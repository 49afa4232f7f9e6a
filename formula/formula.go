// Package formula provides the quantifier-free formula algebra over
// relational constraints on typed variables.  Formulas are immutable trees;
// the constructors normalize as they build, so And/Or children behave as
// sets and decided constraints collapse to the boolean literals.
package formula

import (
	"fmt"
	"slices"
	"strings"
)

type Kind int

const (
	KindTrue Kind = iota
	KindFalse
	KindConstraint
	KindAnd
	KindOr
	KindNot
)

func (k Kind) String() string {
	return map[Kind]string{
		KindTrue:       "true",
		KindFalse:      "false",
		KindConstraint: "constraint",
		KindAnd:        "and",
		KindOr:         "or",
		KindNot:        "not",
	}[k]
}

type Formula struct {
	kind Kind
	rel  Relation
	lhs  Variable
	rhs  Variable
	subs []*Formula

	// simplified marks a formula already known to be in normalized shape:
	// unless it is literally true or false, it is not a tautology and not
	// a contradiction worth re-deciding.
	simplified bool
}

var (
	trueFormula  = &Formula{kind: KindTrue, simplified: true}
	falseFormula = &Formula{kind: KindFalse, simplified: true}
)

func True() *Formula  { return trueFormula }
func False() *Formula { return falseFormula }

// NewConstraint builds a relational constraint.  Constraints between a
// variable and itself, or between two constants with identical text, are
// decided immediately.
func NewConstraint(rel Relation, lhs, rhs Variable) *Formula {
	if lhs.Compare(rhs) == 0 {
		if rel.holdsOnEqual() {
			return True()
		}
		return False()
	}
	return &Formula{kind: KindConstraint, rel: rel, lhs: lhs, rhs: rhs}
}

// NewAnd builds a conjunction.  Children form a set: nested conjunctions are
// flattened, duplicates collapse, true units drop out, and any false child
// decides the whole formula.  The empty conjunction is true and singletons
// unwrap.
func NewAnd(fs ...*Formula) *Formula {
	subs, decided := gather(KindAnd, fs)
	if decided != nil {
		return decided
	}
	switch len(subs) {
	case 0:
		return True()
	case 1:
		return subs[0]
	}
	return &Formula{kind: KindAnd, subs: subs}
}

// NewOr is the dual of NewAnd: false units drop out, any true child decides,
// the empty disjunction is false.
func NewOr(fs ...*Formula) *Formula {
	subs, decided := gather(KindOr, fs)
	if decided != nil {
		return decided
	}
	switch len(subs) {
	case 0:
		return False()
	case 1:
		return subs[0]
	}
	return &Formula{kind: KindOr, subs: subs}
}

func gather(kind Kind, fs []*Formula) ([]*Formula, *Formula) {
	unit, zero := trueFormula, falseFormula
	if kind == KindOr {
		unit, zero = falseFormula, trueFormula
	}
	subs := make([]*Formula, 0, len(fs))
	var flatten func(fs []*Formula) bool
	flatten = func(fs []*Formula) bool {
		for _, f := range fs {
			switch {
			case f.kind == zero.kind:
				return false
			case f.kind == unit.kind:
			case f.kind == kind:
				if !flatten(f.subs) {
					return false
				}
			default:
				subs = append(subs, f)
			}
		}
		return true
	}
	if !flatten(fs) {
		return nil, zero
	}
	slices.SortFunc(subs, (*Formula).Compare)
	subs = slices.CompactFunc(subs, func(a, b *Formula) bool { return a.Compare(b) == 0 })
	return subs, nil
}

// NewNot builds a negation, folding literals and double negations.
func NewNot(f *Formula) *Formula {
	switch f.kind {
	case KindTrue:
		return False()
	case KindFalse:
		return True()
	case KindNot:
		return f.subs[0]
	default:
		return &Formula{kind: KindNot, subs: []*Formula{f}}
	}
}

func (f *Formula) Kind() Kind { return f.kind }

// Constraint returns the parts of a constraint node.
func (f *Formula) Constraint() (Relation, Variable, Variable) {
	return f.rel, f.lhs, f.rhs
}

// Subs returns the children of an and/or/not node in their canonical order.
func (f *Formula) Subs() []*Formula {
	return f.subs
}

func (f *Formula) IsSimplified() bool {
	return f.simplified
}

// MarkSimplified returns a formula carrying the normalized-shape hint.  The
// literals already carry it; other formulas are copied shallowly.
func (f *Formula) MarkSimplified() *Formula {
	if f.simplified {
		return f
	}
	g := *f
	g.simplified = true
	return &g
}

// FreeVars returns the sorted set of non-constant variables occurring in f.
func (f *Formula) FreeVars() []Variable {
	var vars []Variable
	f.visit(func(g *Formula) {
		if g.kind != KindConstraint {
			return
		}
		if !g.lhs.IsConstant() {
			vars = append(vars, g.lhs)
		}
		if !g.rhs.IsConstant() {
			vars = append(vars, g.rhs)
		}
	})
	slices.SortFunc(vars, Variable.Compare)
	return slices.CompactFunc(vars, func(a, b Variable) bool { return a.Compare(b) == 0 })
}

func (f *Formula) visit(fn func(*Formula)) {
	fn(f)
	for _, sub := range f.subs {
		sub.visit(fn)
	}
}

// Compare gives a total order over formulas, by kind first and then
// structurally.  The simplified hint does not participate.
func (f *Formula) Compare(g *Formula) int {
	if f.kind != g.kind {
		return sign(int(f.kind) - int(g.kind))
	}
	switch f.kind {
	case KindTrue, KindFalse:
		return 0
	case KindConstraint:
		if d := sign(int(f.rel) - int(g.rel)); d != 0 {
			return d
		}
		if d := f.lhs.Compare(g.lhs); d != 0 {
			return d
		}
		return f.rhs.Compare(g.rhs)
	default:
		if d := len(f.subs) - len(g.subs); d != 0 {
			return sign(d)
		}
		for i := range f.subs {
			if d := f.subs[i].Compare(g.subs[i]); d != 0 {
				return d
			}
		}
		return 0
	}
}

func (f *Formula) Equal(g *Formula) bool {
	return f.Compare(g) == 0
}

func (f *Formula) String() string {
	switch f.kind {
	case KindTrue:
		return "true"
	case KindFalse:
		return "false"
	case KindConstraint:
		return fmt.Sprintf("%s %s %s", f.lhs, f.rel, f.rhs)
	case KindNot:
		return fmt.Sprintf("not(%s)", f.subs[0])
	case KindAnd, KindOr:
		parts := make([]string, len(f.subs))
		for i, sub := range f.subs {
			parts[i] = sub.String()
		}
		return fmt.Sprintf("%s(%s)", f.kind, strings.Join(parts, ", "))
	default:
		panic("kind")
	}
}
