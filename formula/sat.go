package formula

import (
	"github.com/go-air/gini"
	"github.com/go-air/gini/logic"
	giniz "github.com/go-air/gini/z"
)

// Propositional skeleton satisfiability.
//
// Every constraint is abstracted to a propositional literal and the boolean
// structure is handed to a SAT solver.  An unsat skeleton proves the formula
// unsatisfiable in the theory too, so callers can use this as a cheap
// pre-check before consulting a real decision procedure.  A sat skeleton
// proves nothing.
//
// Constraints that are propositional negations of each other in any total
// order share a literal: x /= y is ¬(x = y), x >= y is ¬(x < y), x > y is
// y < x, and x <= y is ¬(y < x).

type atom struct {
	eq       bool
	lhs, rhs Variable
}

type skeleton struct {
	c    *logic.C
	lits map[atom]giniz.Lit
}

func newSkeleton() *skeleton {
	return &skeleton{
		c:    logic.NewC(),
		lits: make(map[atom]giniz.Lit),
	}
}

func (b *skeleton) lit(f *Formula) giniz.Lit {
	switch f.kind {
	case KindTrue:
		return b.c.T
	case KindFalse:
		return b.c.F
	case KindConstraint:
		return b.constraintLit(f.rel, f.lhs, f.rhs)
	case KindNot:
		return b.lit(f.subs[0]).Not()
	case KindAnd, KindOr:
		lits := make([]giniz.Lit, len(f.subs))
		for i, sub := range f.subs {
			lits[i] = b.lit(sub)
		}
		if f.kind == KindAnd {
			return b.c.Ands(lits...)
		}
		return b.c.Ors(lits...)
	default:
		panic("kind")
	}
}

func (b *skeleton) constraintLit(rel Relation, lhs, rhs Variable) giniz.Lit {
	switch rel {
	case Eq, NotEq:
		if lhs.Compare(rhs) > 0 {
			lhs, rhs = rhs, lhs
		}
		m := b.atomLit(atom{eq: true, lhs: lhs, rhs: rhs})
		if rel == NotEq {
			return m.Not()
		}
		return m
	case Less:
		return b.atomLit(atom{lhs: lhs, rhs: rhs})
	case GreaterEq:
		return b.atomLit(atom{lhs: lhs, rhs: rhs}).Not()
	case Greater:
		return b.atomLit(atom{lhs: rhs, rhs: lhs})
	case LessEq:
		return b.atomLit(atom{lhs: rhs, rhs: lhs}).Not()
	default:
		panic("relation")
	}
}

func (b *skeleton) atomLit(a atom) giniz.Lit {
	if m, ok := b.lits[a]; ok {
		return m
	}
	m := b.c.Lit()
	b.lits[a] = m
	return m
}

// SkeletonUnsat reports whether the propositional skeleton of f is
// unsatisfiable.
func SkeletonUnsat(f *Formula) bool {
	b := newSkeleton()
	m := b.lit(f)
	g := gini.New()
	b.c.ToCnf(g)
	g.Assume(m)
	return g.Solve() == -1
}
