// Package logic describes the supported solver theories.  A Logic bundles
// the solver-side names with the constant-literal codec of its theory.
package logic

import (
	"errors"
	"fmt"

	"github.com/Jaxan/nlambda/smt/token"
)

var ErrConst = errors.New("invalid constant literal")

type Logic struct {
	// Name is the set-logic identifier.
	Name string
	// Sort is the declare-const sort.
	Sort string

	constToSMT func(text string) (string, error)
	scanConst  func(d []byte) (string, int, bool)
}

// ConstToSMT renders an internal constant literal as script text.
func (l *Logic) ConstToSMT(text string) (string, error) {
	return l.constToSMT(text)
}

// ScanConst reads a constant literal prefix of d in the solver's own output
// syntax, returning the normalized internal text and the bytes consumed.
func (l *Logic) ScanConst(d []byte) (string, int, bool) {
	return l.scanConst(d)
}

// Int is linear integer arithmetic.  Constant text is a decimal integer and
// passes through unchanged in both directions.
var Int = &Logic{
	Name:       "LIA",
	Sort:       "Int",
	constToSMT: intToSMT,
	scanConst:  scanInt,
}

// Real is linear rational arithmetic.  Internal constant text is a decimal
// integer or "numerator/denominator"; the latter renders as (/ n d).  The
// scanner accepts the solver's decorated output forms N.0 and (/ N.0 D.0)
// which the renderer never emits.
var Real = &Logic{
	Name:       "LRA",
	Sort:       "Real",
	constToSMT: realToSMT,
	scanConst:  scanReal,
}

func intToSMT(text string) (string, error) {
	if !allDigits(text) {
		return "", fmt.Errorf("%w: integer %q", ErrConst, text)
	}
	return text, nil
}

func realToSMT(text string) (string, error) {
	num, den, ok := cutFraction(text)
	if !ok {
		return "", fmt.Errorf("%w: rational %q", ErrConst, text)
	}
	if den == "" {
		return num, nil
	}
	return fmt.Sprintf("(/ %s %s)", num, den), nil
}

func scanInt(d []byte) (string, int, bool) {
	n := token.AsciiDigits(d)
	if n == 0 {
		return "", 0, false
	}
	return string(d[:n]), n, true
}

// scanDecimal reads N or N.0, returning N.  The solver decorates integral
// rationals with exactly ".0"; any other fractional part is out of grammar
// and fails the scan rather than losing digits.
func scanDecimal(d []byte) (string, int, bool) {
	n := token.AsciiDigits(d)
	if n == 0 {
		return "", 0, false
	}
	text := string(d[:n])
	if n < len(d) && d[n] == '.' {
		fract := token.AsciiDigits(d[n+1:])
		if fract != 1 || d[n+1] != '0' {
			return "", 0, false
		}
		n += 2
	}
	return text, n, true
}

func scanReal(d []byte) (string, int, bool) {
	if len(d) > 0 && d[0] == '(' {
		return scanRealFraction(d)
	}
	return scanDecimal(d)
}

func scanRealFraction(d []byte) (string, int, bool) {
	i := 1
	i += token.SkipSpace(d[i:])
	if i >= len(d) || d[i] != '/' {
		return "", 0, false
	}
	i++
	i += token.SkipSpace(d[i:])
	num, n, ok := scanDecimal(d[i:])
	if !ok {
		return "", 0, false
	}
	i += n
	i += token.SkipSpace(d[i:])
	den, n, ok := scanDecimal(d[i:])
	if !ok {
		return "", 0, false
	}
	i += n
	i += token.SkipSpace(d[i:])
	if i >= len(d) || d[i] != ')' {
		return "", 0, false
	}
	i++
	return num + "/" + den, i, true
}

func allDigits(s string) bool {
	return s != "" && token.AsciiDigits([]byte(s)) == len(s)
}

// cutFraction splits internal rational text into numerator and denominator,
// the latter empty for bare integers.
func cutFraction(text string) (num, den string, ok bool) {
	for i := 0; i < len(text); i++ {
		if text[i] == '/' {
			num, den = text[:i], text[i+1:]
			return num, den, allDigits(num) && allDigits(den)
		}
	}
	return text, "", allDigits(text)
}
