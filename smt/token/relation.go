package token

import (
	"fmt"

	"github.com/Jaxan/nlambda/formula"
)

// relationSymbols is the closed symbol table.  NotEq is deliberately absent:
// it has no native solver symbol and is encoded structurally as a negated
// equality, so the decoder never sees it either.
var relationSymbols = map[formula.Relation]string{
	formula.Eq:        "=",
	formula.Less:      "<",
	formula.LessEq:    "<=",
	formula.Greater:   ">",
	formula.GreaterEq: ">=",
}

var symbolRelations = func() map[string]formula.Relation {
	m := make(map[string]formula.Relation, len(relationSymbols))
	for r, s := range relationSymbols {
		m[s] = r
	}
	return m
}()

func EncodeRelation(r formula.Relation) (string, error) {
	s, ok := relationSymbols[r]
	if !ok {
		return "", fmt.Errorf("%w: relation %s has no symbol", ErrRelation, r)
	}
	return s, nil
}

func relationChar(c byte) bool {
	switch c {
	case '=', '<', '>':
		return true
	default:
		return false
	}
}

// ScanRelation reads a maximal run over the closed symbol alphabet {=,<,>}
// and matches it against the symbol table.  Any other character ends the
// run; a run that is not a known symbol is an error.
func ScanRelation(d []byte) (formula.Relation, int, error) {
	i := 0
	for i < len(d) && relationChar(d[i]) {
		i++
	}
	if i == 0 {
		return 0, 0, fmt.Errorf("%w: expected relation symbol", ErrRelation)
	}
	r, ok := symbolRelations[string(d[:i])]
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", ErrRelation, string(d[:i]))
	}
	return r, i, nil
}
