package formula

import (
	"testing"
)

var (
	x = Var("x")
	y = Var("y")
	z = Var("z")
)

func TestConstructorsCollapse(t *testing.T) {
	lt := NewConstraint(Less, x, y)
	eq := NewConstraint(Eq, y, z)

	tests := []struct {
		name string
		got  *Formula
		want *Formula
	}{
		{"empty and", NewAnd(), True()},
		{"empty or", NewOr(), False()},
		{"and true unit", NewAnd(lt, True()), lt},
		{"or false unit", NewOr(lt, False()), lt},
		{"and false zero", NewAnd(lt, False(), eq), False()},
		{"or true zero", NewOr(lt, True(), eq), True()},
		{"and dedup", NewAnd(lt, lt), lt},
		{"and flatten", NewAnd(NewAnd(lt, eq), lt), NewAnd(lt, eq)},
		{"or flatten", NewOr(NewOr(lt, eq), eq), NewOr(lt, eq)},
		{"not true", NewNot(True()), False()},
		{"not false", NewNot(False()), True()},
		{"double negation", NewNot(NewNot(lt)), lt},
		{"same var eq", NewConstraint(Eq, x, x), True()},
		{"same var le", NewConstraint(LessEq, x, x), True()},
		{"same var lt", NewConstraint(Less, x, x), False()},
		{"same var neq", NewConstraint(NotEq, x, x), False()},
		{"same const", NewConstraint(Eq, ConstVar("3"), ConstVar("3")), True()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.got.Equal(tt.want) {
				t.Errorf("got %s, want %s", tt.got, tt.want)
			}
		})
	}
}

func TestChildrenAreSets(t *testing.T) {
	lt := NewConstraint(Less, x, y)
	eq := NewConstraint(Eq, y, z)
	a := NewAnd(lt, eq)
	b := NewAnd(eq, lt)
	if !a.Equal(b) {
		t.Errorf("child order should not matter: %s vs %s", a, b)
	}
	if len(a.Subs()) != 2 {
		t.Errorf("expected 2 children, got %d", len(a.Subs()))
	}
}

func TestFreeVars(t *testing.T) {
	f := NewAnd(
		NewConstraint(Less, x, y),
		NewConstraint(Eq, y, ConstVar("3")),
		NewConstraint(Greater, IterVar(0, 1), x),
	)
	vars := f.FreeVars()
	want := []Variable{x, y, IterVar(0, 1)}
	if len(vars) != len(want) {
		t.Fatalf("got %d free vars, want %d", len(vars), len(want))
	}
	for _, w := range want {
		found := false
		for _, v := range vars {
			if v.Compare(w) == 0 {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("missing free variable %s", w)
		}
	}
	for i := 1; i < len(vars); i++ {
		if vars[i-1].Compare(vars[i]) >= 0 {
			t.Errorf("free vars not sorted at %d: %s, %s", i, vars[i-1], vars[i])
		}
	}
}

func TestSimplifiedFlag(t *testing.T) {
	f := NewConstraint(Less, x, y)
	if f.IsSimplified() {
		t.Error("fresh constraint should not be simplified")
	}
	g := f.MarkSimplified()
	if !g.IsSimplified() {
		t.Error("marked formula should be simplified")
	}
	if f.IsSimplified() {
		t.Error("marking must not mutate the original")
	}
	if !f.Equal(g) {
		t.Error("the hint must not affect comparison")
	}
	if !True().IsSimplified() || !False().IsSimplified() {
		t.Error("literals are always simplified")
	}
}

func TestVariableRoundTripIdentity(t *testing.T) {
	vars := []Variable{
		Var("x"),
		IterVar(0, 0),
		IterVar(3, 14),
		IterVarID(1, 2, 0),
		IterVarID(1, 2, 3),
	}
	for _, v := range vars {
		if v.Compare(v) != 0 {
			t.Errorf("%s must equal itself", v)
		}
	}
	withID := IterVarID(1, 2, 0)
	withoutID := IterVar(1, 2)
	if withID.Compare(withoutID) == 0 {
		t.Error("id zero must differ from absent id")
	}
	if _, ok := withoutID.ID(); ok {
		t.Error("absent id must not report present")
	}
	if id, ok := withID.ID(); !ok || id != 0 {
		t.Errorf("id = %d, %v; want 0, true", id, ok)
	}
}

func TestString(t *testing.T) {
	f := NewOr(
		NewNot(NewConstraint(Eq, x, y)),
		NewConstraint(Less, IterVar(0, 1), ConstVar("5")),
	)
	want := "or(v0_1_ < 5, not(x = y))"
	if f.String() != want {
		t.Errorf("got %q, want %q", f.String(), want)
	}
}
