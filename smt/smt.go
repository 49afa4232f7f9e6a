// Package smt decides and simplifies relational formulas with an external
// SMT solver.  The three operations short-circuit on the boolean literals
// and on formulas already in normalized shape, then on the propositional
// skeleton, and only then spawn a solver process.
package smt

import (
	"sync"

	"github.com/Jaxan/nlambda/debug"
	"github.com/Jaxan/nlambda/formula"
	"github.com/Jaxan/nlambda/smt/encode"
	"github.com/Jaxan/nlambda/smt/logic"
	"github.com/Jaxan/nlambda/smt/parse"
	"github.com/Jaxan/nlambda/smt/z3"
)

// Solver issues one-shot queries through a solver command.  It holds no
// per-call state, so a single Solver is safe for concurrent use; each call
// runs its own process.
type Solver struct {
	cmd *z3.Command
}

func NewSolver(cmd *z3.Command) *Solver {
	return &Solver{cmd: cmd}
}

var defaultSolver = sync.OnceValues(func() (*Solver, error) {
	cmd, err := z3.LoadCommand()
	if err != nil {
		return nil, err
	}
	return NewSolver(cmd), nil
})

// IsTrue reports whether f holds universally.  A formula already in
// normalized shape that is not literally true cannot be a tautology, so it
// answers false without consulting the solver.
func IsTrue(l *logic.Logic, f *formula.Formula) (bool, error) {
	s, err := defaultSolver()
	if err != nil {
		return false, err
	}
	return s.IsTrue(l, f)
}

// IsFalse reports whether f is unsatisfiable.
func IsFalse(l *logic.Logic, f *formula.Formula) (bool, error) {
	s, err := defaultSolver()
	if err != nil {
		return false, err
	}
	return s.IsFalse(l, f)
}

// Simplify returns a logically equivalent, structurally reduced formula.
func Simplify(l *logic.Logic, f *formula.Formula) (*formula.Formula, error) {
	s, err := defaultSolver()
	if err != nil {
		return nil, err
	}
	return s.Simplify(l, f)
}

func (s *Solver) IsTrue(l *logic.Logic, f *formula.Formula) (bool, error) {
	switch f.Kind() {
	case formula.KindTrue:
		return true, nil
	case formula.KindFalse:
		return false, nil
	}
	if f.IsSimplified() {
		return false, nil
	}
	// f is valid iff its negation is unsatisfiable.
	neg := formula.NewNot(f)
	if formula.SkeletonUnsat(neg) {
		return true, nil
	}
	return s.unsat(l, neg)
}

func (s *Solver) IsFalse(l *logic.Logic, f *formula.Formula) (bool, error) {
	switch f.Kind() {
	case formula.KindTrue:
		return false, nil
	case formula.KindFalse:
		return true, nil
	}
	if f.IsSimplified() {
		return false, nil
	}
	if formula.SkeletonUnsat(f) {
		return true, nil
	}
	return s.unsat(l, f)
}

func (s *Solver) Simplify(l *logic.Logic, f *formula.Formula) (*formula.Formula, error) {
	switch f.Kind() {
	case formula.KindTrue:
		return formula.True(), nil
	case formula.KindFalse:
		return formula.False(), nil
	}
	if f.IsSimplified() {
		return f, nil
	}
	script, err := encode.Script(l, f, encode.Simplify)
	if err != nil {
		return nil, err
	}
	if debug.Script() {
		debug.Logf("simplify script for %s:\n%s", f, script)
	}
	out, err := s.cmd.Run(script)
	if err != nil {
		return nil, err
	}
	g, err := parse.Goals(l, out)
	if err != nil {
		return nil, err
	}
	if debug.Parse() {
		debug.Logf("simplified %s to %s\n", f, g)
	}
	return g.MarkSimplified(), nil
}

func (s *Solver) unsat(l *logic.Logic, f *formula.Formula) (bool, error) {
	script, err := encode.Script(l, f, encode.CheckSat)
	if err != nil {
		return false, err
	}
	if debug.Script() {
		debug.Logf("check-sat script for %s:\n%s", f, script)
	}
	out, err := s.cmd.Run(script)
	if err != nil {
		return false, err
	}
	// Anything but "unsat", including "sat" and "unknown", is an ordinary
	// negative answer.
	return parse.Unsat(out), nil
}
