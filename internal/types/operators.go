package types

import "github.com/verislang/veris/internal/ast"

// BinaryResult describes how a binary operator's result kind is derived from
// its (already-unified) operand kind.
type BinaryResult uint8

const (
	// ResultOperand: the result is the unified operand kind (arithmetic).
	ResultOperand BinaryResult = iota
	// ResultBool: the result is always Bool (comparisons, and/or).
	ResultBool
)

// BinarySpec describes the operand-kind requirements and result derivation
// for one binary operator.
type BinarySpec struct {
	// Numeric requires both operands to unify to a numeric kind (Int or Real)
	// or to Bool, which is then promoted to Int.
	Numeric bool
	// BoolOnly requires both operands to be exactly Bool, with no promotion.
	BoolOnly bool
	// IntOnly requires both operands to unify to exactly Int (bitwise/shift
	// operators have no Real counterpart in this language).
	IntOnly bool
	Result  BinaryResult
}

var binarySpecTable = map[ast.BinaryOp]BinarySpec{
	ast.BinaryAdd:        {Numeric: true, Result: ResultOperand},
	ast.BinarySub:        {Numeric: true, Result: ResultOperand},
	ast.BinaryMul:        {Numeric: true, Result: ResultOperand},
	ast.BinaryDiv:        {Numeric: true, Result: ResultOperand},
	ast.BinaryFloorDiv:   {Numeric: true, Result: ResultOperand},
	ast.BinaryMod:        {Numeric: true, Result: ResultOperand},
	ast.BinaryPow:        {Numeric: true, Result: ResultOperand},
	ast.BinaryShl:        {IntOnly: true, Result: ResultOperand},
	ast.BinaryShr:        {IntOnly: true, Result: ResultOperand},
	ast.BinaryBitAnd:     {IntOnly: true, Result: ResultOperand},
	ast.BinaryBitOr:      {IntOnly: true, Result: ResultOperand},
	ast.BinaryBitXor:     {IntOnly: true, Result: ResultOperand},
	ast.BinaryEq:         {Numeric: true, Result: ResultBool},
	ast.BinaryNotEq:      {Numeric: true, Result: ResultBool},
	ast.BinaryLess:       {Numeric: true, Result: ResultBool},
	ast.BinaryLessEq:     {Numeric: true, Result: ResultBool},
	ast.BinaryGreater:    {Numeric: true, Result: ResultBool},
	ast.BinaryGreaterEq:  {Numeric: true, Result: ResultBool},
	ast.BinaryAnd:        {BoolOnly: true, Result: ResultBool},
	ast.BinaryOr:         {BoolOnly: true, Result: ResultBool},
}

// BinarySpecFor returns the operand rules for op and whether op is known.
func BinarySpecFor(op ast.BinaryOp) (BinarySpec, bool) {
	spec, ok := binarySpecTable[op]
	return spec, ok
}

// CheckBinary validates left/right against op's spec and returns the result
// kind, or false if the operands do not satisfy the operator's requirements.
func CheckBinary(op ast.BinaryOp, left, right Kind) (Kind, bool) {
	spec, ok := BinarySpecFor(op)
	if !ok {
		return Invalid, false
	}

	unified, ok := Unify(left, right)
	if !ok {
		return Invalid, false
	}

	switch {
	case spec.BoolOnly:
		if left != Bool || right != Bool {
			return Invalid, false
		}
	case spec.IntOnly:
		if unified != Int {
			return Invalid, false
		}
	case spec.Numeric:
		if !IsNumeric(unified) && unified != Bool {
			return Invalid, false
		}
		// Bool with Bool is accepted for every Numeric operator, arithmetic
		// and comparison alike, and promoted to Int.
		if unified == Bool {
			unified = Int
		}
	}

	if spec.Result == ResultBool {
		return Bool, true
	}
	return unified, true
}

// UnarySpec describes the operand-kind requirement for one unary operator.
type UnarySpec struct {
	BoolOnly bool // true for `not`
	IntOnly  bool // true for `~`: bitwise invert is rejected on Real, like the other bitwise operators
}

var unarySpecTable = map[ast.UnaryOp]UnarySpec{
	ast.UnaryNeg:    {},
	ast.UnaryPos:    {},
	ast.UnaryNot:    {BoolOnly: true},
	ast.UnaryInvert: {IntOnly: true},
}

// CheckUnary validates operand against op's spec and returns the result kind.
func CheckUnary(op ast.UnaryOp, operand Kind) (Kind, bool) {
	spec, ok := unarySpecTable[op]
	if !ok {
		return Invalid, false
	}
	switch {
	case spec.BoolOnly:
		if operand != Bool {
			return Invalid, false
		}
		return Bool, true
	case spec.IntOnly:
		if operand != Int && operand != Bool {
			return Invalid, false
		}
		return Int, true
	default:
		if !IsNumeric(operand) {
			return Invalid, false
		}
		return operand, true
	}
}
