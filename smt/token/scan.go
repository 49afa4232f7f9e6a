package token

// Scanning primitives shared by the variable, relation and constant
// grammars.  Both the script builder and the output parser are written
// against these, so the two directions cannot drift apart.

func AsciiDigits(d []byte) int {
	i := 0
	for i < len(d) {
		if !AsciiDigit(d[i]) {
			return i
		}
		i++
	}
	return i
}

func AsciiDigit(c byte) bool {
	switch c {
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return true
	default:
		return false
	}
}

func AsciiLetters(d []byte) int {
	i := 0
	for i < len(d) {
		c := d[i]
		if c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' {
			i++
			continue
		}
		return i
	}
	return i
}

func Space(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r':
		return true
	default:
		return false
	}
}

// SkipSpace returns the number of leading whitespace bytes.
func SkipSpace(d []byte) int {
	i := 0
	for i < len(d) && Space(d[i]) {
		i++
	}
	return i
}
