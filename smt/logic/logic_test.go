package logic

import (
	"errors"
	"testing"
)

func TestIntConstToSMT(t *testing.T) {
	got, err := Int.ConstToSMT("42")
	if err != nil || got != "42" {
		t.Errorf("ConstToSMT(42) = %q, %v", got, err)
	}
	for _, bad := range []string{"", "4/2", "1.5", "-1", "a"} {
		if _, err := Int.ConstToSMT(bad); !errors.Is(err, ErrConst) {
			t.Errorf("ConstToSMT(%q): want ErrConst, got %v", bad, err)
		}
	}
}

func TestRealConstToSMT(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"3", "3"},
		{"1/3", "(/ 1 3)"},
		{"10/4", "(/ 10 4)"},
	}
	for _, tt := range tests {
		got, err := Real.ConstToSMT(tt.text)
		if err != nil {
			t.Fatalf("ConstToSMT(%q): %v", tt.text, err)
		}
		if got != tt.want {
			t.Errorf("ConstToSMT(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
	for _, bad := range []string{"", "/3", "1/", "1/2/3", "1.5"} {
		if _, err := Real.ConstToSMT(bad); !errors.Is(err, ErrConst) {
			t.Errorf("ConstToSMT(%q): want ErrConst, got %v", bad, err)
		}
	}
}

func TestIntScanConst(t *testing.T) {
	text, n, ok := Int.ScanConst([]byte("123)"))
	if !ok || text != "123" || n != 3 {
		t.Errorf("ScanConst(123)) = %q, %d, %v", text, n, ok)
	}
	if _, _, ok := Int.ScanConst([]byte("x")); ok {
		t.Error("ScanConst(x) should fail")
	}
}

func TestRealScanConst(t *testing.T) {
	tests := []struct {
		in   string
		text string
		n    int
	}{
		// The solver decorates rationals; the scan normalizes back to
		// the undecorated internal text.
		{"5.0 ", "5", 3},
		{"5 ", "5", 1},
		{"(/ 1.0 3.0)", "1/3", 11},
		{"(/ 1 3)", "1/3", 8},
		{"(/  7.0  2.0 )", "7/2", 14},
	}
	for _, tt := range tests {
		text, n, ok := Real.ScanConst([]byte(tt.in))
		if !ok {
			t.Fatalf("ScanConst(%q) failed", tt.in)
		}
		if text != tt.text || n != tt.n {
			t.Errorf("ScanConst(%q) = %q, %d; want %q, %d", tt.in, text, n, tt.text, tt.n)
		}
	}
	for _, bad := range []string{"", "(/ 1.0)", "(- 1 3)", "x"} {
		if _, _, ok := Real.ScanConst([]byte(bad)); ok {
			t.Errorf("ScanConst(%q) should fail", bad)
		}
	}
}

func TestRealScanConstRejectsStrayDecimals(t *testing.T) {
	// Only the solver's ".0" decoration is in grammar.  Anything else must
	// fail the scan outright; truncating "1.5" to "1" would silently change
	// the constant.
	for _, bad := range []string{"1.5", "2.", "5.00", "3.01", "(/ 1.5 2.0)", "(/ 1.0 2.5)"} {
		if text, n, ok := Real.ScanConst([]byte(bad)); ok {
			t.Errorf("ScanConst(%q) = %q, %d; want failure", bad, text, n)
		}
	}
}
