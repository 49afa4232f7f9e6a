package token

import (
	"fmt"
	"strconv"

	"github.com/Jaxan/nlambda/formula"
)

// Variable tokens.
//
// Named variables encode verbatim; iteration variables encode as
// v<level>_<index>_<id>, with the id part empty when absent.  Decoding tries
// the iteration grammar first: an iteration token is also a run of letters
// and digits, so attempting the named grammar first would mis-read it.

// EncodeVariable returns the solver-side token for a free variable.
// Constants have no token; they render through the logic profile.
func EncodeVariable(v formula.Variable) (string, error) {
	if v.IsConstant() {
		return "", fmt.Errorf("%w: constant %q has no token", ErrVariable, v.ConstText())
	}
	return v.String(), nil
}

// ScanVariable reads a variable token prefix of d, returning the variable
// and the number of bytes consumed.  ok is false when no variable grammar
// matches.
func ScanVariable(d []byte) (v formula.Variable, n int, ok bool) {
	if v, n, ok = scanIterVariable(d); ok {
		return v, n, true
	}
	letters := AsciiLetters(d)
	if letters == 0 {
		return formula.Variable{}, 0, false
	}
	return formula.Var(string(d[:letters])), letters, true
}

func scanIterVariable(d []byte) (formula.Variable, int, bool) {
	if len(d) == 0 || d[0] != 'v' {
		return formula.Variable{}, 0, false
	}
	i := 1
	levelDigits := AsciiDigits(d[i:])
	if levelDigits == 0 || leadingZero(d[i:i+levelDigits]) {
		return formula.Variable{}, 0, false
	}
	level, _ := strconv.Atoi(string(d[i : i+levelDigits]))
	i += levelDigits
	if i >= len(d) || d[i] != '_' {
		return formula.Variable{}, 0, false
	}
	i++
	indexDigits := AsciiDigits(d[i:])
	if indexDigits == 0 || leadingZero(d[i:i+indexDigits]) {
		return formula.Variable{}, 0, false
	}
	index, _ := strconv.Atoi(string(d[i : i+indexDigits]))
	i += indexDigits
	if i >= len(d) || d[i] != '_' {
		return formula.Variable{}, 0, false
	}
	i++
	idDigits := AsciiDigits(d[i:])
	if idDigits == 0 {
		return formula.IterVar(level, index), i, true
	}
	if leadingZero(d[i : i+idDigits]) {
		return formula.Variable{}, 0, false
	}
	id, _ := strconv.Atoi(string(d[i : i+idDigits]))
	i += idDigits
	return formula.IterVarID(level, index, id), i, true
}

// leadingZero reports a redundant leading zero in a digit run.  The encoder
// writes plain decimals, so such a token would not re-encode to itself.
func leadingZero(d []byte) bool {
	return len(d) > 1 && d[0] == '0'
}

// DecodeVariable decodes a complete token, requiring full consumption.
func DecodeVariable(s string) (formula.Variable, error) {
	v, n, ok := ScanVariable([]byte(s))
	if !ok || n != len(s) {
		return formula.Variable{}, fmt.Errorf("%w: %q", ErrVariable, s)
	}
	return v, nil
}
