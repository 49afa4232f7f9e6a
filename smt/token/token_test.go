package token

import (
	"errors"
	"testing"

	"github.com/Jaxan/nlambda/formula"
)

func TestVariableRoundTrip(t *testing.T) {
	tests := []struct {
		v     formula.Variable
		token string
	}{
		{formula.Var("x"), "x"},
		{formula.Var("foo"), "foo"},
		{formula.IterVar(0, 1), "v0_1_"},
		{formula.IterVar(12, 0), "v12_0_"},
		{formula.IterVarID(1, 2, 3), "v1_2_3"},
		{formula.IterVarID(1, 2, 0), "v1_2_0"},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, err := EncodeVariable(tt.v)
			if err != nil {
				t.Fatalf("encode: %v", err)
			}
			if got != tt.token {
				t.Fatalf("encode = %q, want %q", got, tt.token)
			}
			back, err := DecodeVariable(got)
			if err != nil {
				t.Fatalf("decode %q: %v", got, err)
			}
			if back.Compare(tt.v) != 0 {
				t.Errorf("round trip: %s != %s", back, tt.v)
			}
		})
	}
}

func TestDecodeVariableGrammar(t *testing.T) {
	// A token starting with v and matching the iteration grammar is an
	// iteration variable, never a named one.
	v, err := DecodeVariable("v1_2_")
	if err != nil {
		t.Fatal(err)
	}
	if !v.IsIndexed() {
		t.Errorf("v1_2_ decoded as named variable %s", v)
	}

	// A bare v is just a name.
	v, err = DecodeVariable("v")
	if err != nil {
		t.Fatal(err)
	}
	if v.IsIndexed() || v.Name() != "v" {
		t.Errorf("v decoded as %s", v)
	}

	for _, bad := range []string{"", "v1_2", "x1", "1x", "_a"} {
		if _, err := DecodeVariable(bad); !errors.Is(err, ErrVariable) {
			t.Errorf("DecodeVariable(%q): want ErrVariable, got %v", bad, err)
		}
	}
}

func TestDecodeVariableLeadingZeros(t *testing.T) {
	// v01_2_ would normalize to IterVar(1, 2) and re-encode as v1_2_,
	// breaking the token round trip, so redundant leading zeros are
	// rejected in every digit run.
	for _, bad := range []string{"v01_2_", "v1_02_", "v1_2_03", "v00_1_"} {
		if v, err := DecodeVariable(bad); !errors.Is(err, ErrVariable) {
			t.Errorf("DecodeVariable(%q) = %v, %v; want ErrVariable", bad, v, err)
		}
	}
	// A lone zero is not a leading zero.
	v, err := DecodeVariable("v0_0_0")
	if err != nil {
		t.Fatal(err)
	}
	if want := formula.IterVarID(0, 0, 0); v.Compare(want) != 0 {
		t.Errorf("v0_0_0 decoded as %s, want %s", v, want)
	}
}

func TestEncodeVariableConstant(t *testing.T) {
	if _, err := EncodeVariable(formula.ConstVar("3")); !errors.Is(err, ErrVariable) {
		t.Errorf("want ErrVariable for constant, got %v", err)
	}
}

func TestRelationSymbols(t *testing.T) {
	tests := []struct {
		r   formula.Relation
		sym string
	}{
		{formula.Eq, "="},
		{formula.Less, "<"},
		{formula.LessEq, "<="},
		{formula.Greater, ">"},
		{formula.GreaterEq, ">="},
	}
	for _, tt := range tests {
		got, err := EncodeRelation(tt.r)
		if err != nil {
			t.Fatalf("encode %s: %v", tt.r, err)
		}
		if got != tt.sym {
			t.Errorf("encode %s = %q, want %q", tt.r, got, tt.sym)
		}
		r, n, err := ScanRelation([]byte(tt.sym + " x"))
		if err != nil {
			t.Fatalf("scan %q: %v", tt.sym, err)
		}
		if r != tt.r || n != len(tt.sym) {
			t.Errorf("scan %q = %s, %d", tt.sym, r, n)
		}
	}
}

func TestEncodeRelationNotEq(t *testing.T) {
	if _, err := EncodeRelation(formula.NotEq); !errors.Is(err, ErrRelation) {
		t.Errorf("want ErrRelation for /=, got %v", err)
	}
}

func TestScanRelationMaximalRun(t *testing.T) {
	// The scan consumes the whole run before the table lookup, so a
	// malformed run fails instead of matching a prefix.
	for _, bad := range []string{"=>", "<<", "==", "x", ""} {
		if _, _, err := ScanRelation([]byte(bad)); !errors.Is(err, ErrRelation) {
			t.Errorf("ScanRelation(%q): want ErrRelation, got %v", bad, err)
		}
	}
}
