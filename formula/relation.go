package formula

// Relation is the closed set of comparison operators usable in constraints.
type Relation int

const (
	Eq Relation = iota
	NotEq
	Less
	LessEq
	Greater
	GreaterEq
)

func (r Relation) String() string {
	return map[Relation]string{
		Eq:        "=",
		NotEq:     "/=",
		Less:      "<",
		LessEq:    "<=",
		Greater:   ">",
		GreaterEq: ">=",
	}[r]
}

// holdsOnEqual reports whether the relation holds when both sides are the
// same value.
func (r Relation) holdsOnEqual() bool {
	switch r {
	case Eq, LessEq, GreaterEq:
		return true
	default:
		return false
	}
}
