// Package types implements the verifier's closed type lattice: Bool, Int,
// and Real, with Bool promoting to Int and Int promoting to Real wherever an
// operator or assignment needs a common type. There is no user-defined type
// declaration in this language — every declared or inferred type is one of
// these three.
package types

import "fmt"

// Kind enumerates the three types in the lattice.
type Kind uint8

const (
	Invalid Kind = iota
	Bool
	Int
	Real
)

func (k Kind) String() string {
	switch k {
	case Bool:
		return "Bool"
	case Int:
		return "Int"
	case Real:
		return "Real"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Lookup maps a type annotation's source spelling to its Kind. ok is false
// for any spelling outside the closed lattice.
func Lookup(name string) (Kind, bool) {
	switch name {
	case "Bool":
		return Bool, true
	case "Int":
		return Int, true
	case "Real":
		return Real, true
	default:
		return Invalid, false
	}
}

// rank orders the lattice for promotion: Bool < Int < Real.
func rank(k Kind) int {
	switch k {
	case Bool:
		return 0
	case Int:
		return 1
	case Real:
		return 2
	default:
		return -1
	}
}

// IsNumeric reports whether k is Int or Real.
func IsNumeric(k Kind) bool { return k == Int || k == Real }

// PromotesTo reports whether a value of kind from may be used where a value
// of kind to is expected: equal kinds, or a strictly lower rank promoting
// up the Bool -> Int -> Real chain.
func PromotesTo(from, to Kind) bool {
	if from == Invalid || to == Invalid {
		return false
	}
	return rank(from) <= rank(to)
}

// Unify returns the common kind that both a and b can be promoted to — the
// higher-ranked of the two — and false if either is Invalid.
func Unify(a, b Kind) (Kind, bool) {
	if a == Invalid || b == Invalid {
		return Invalid, false
	}
	if rank(a) >= rank(b) {
		return a, true
	}
	return b, true
}
