package dynamic

import (
	"math"
	"strings"
)

// CmpOp is a comparison operator.
type CmpOp uint8

const (
	CmpEq CmpOp = iota
	CmpGt
	CmpGe
	CmpLt
	CmpLe
)

func (op CmpOp) String() string {
	switch op {
	case CmpEq:
		return "=="
	case CmpGt:
		return ">"
	case CmpGe:
		return ">="
	case CmpLt:
		return "<"
	case CmpLe:
		return "<="
	default:
		return "?"
	}
}

// Compare evaluates lhs op rhs. Ordering follows the receiver: an Int or
// Double receiver coerces the operand toward its own tag, two Strings
// compare lexically, and anything else fails with ErrUnsupported. CmpEq
// never fails; see Equal.
func Compare(op CmpOp, lhs, rhs Value) (bool, error) {
	if op == CmpEq {
		return Equal(lhs, rhs), nil
	}
	lhs, rhs = orDefault(lhs), orDefault(rhs)

	switch l := lhs.(type) {
	case Int:
		c, err := Coerce(rhs, TagInt)
		if err != nil {
			return false, rebind(err, op.String(), lhs, rhs)
		}
		return ordered(op, compareInt(int64(l), int64(c.(Int)))), nil
	case Double:
		c, err := Coerce(rhs, TagDouble)
		if err != nil {
			return false, rebind(err, op.String(), lhs, rhs)
		}
		a, b := float64(l), float64(c.(Double))
		if math.IsNaN(a) || math.IsNaN(b) {
			return false, nil
		}
		return ordered(op, compareFloat(a, b)), nil
	case String:
		if r, ok := rhs.(String); ok {
			return ordered(op, strings.Compare(string(l), string(r))), nil
		}
	}
	return false, unsupported(op.String(), lhs, rhs)
}

func Greater(lhs, rhs Value) (bool, error)   { return Compare(CmpGt, lhs, rhs) }
func GreaterEq(lhs, rhs Value) (bool, error) { return Compare(CmpGe, lhs, rhs) }
func Less(lhs, rhs Value) (bool, error)      { return Compare(CmpLt, lhs, rhs) }
func LessEq(lhs, rhs Value) (bool, error)    { return Compare(CmpLe, lhs, rhs) }

// CompareLit evaluates lit op rhs with a Go primitive on the left.
func CompareLit(op CmpOp, lit any, rhs Value) (bool, error) {
	if op == CmpEq {
		return EqualLit(lit, rhs), nil
	}
	lhs, err := Of(lit)
	if err != nil {
		return false, err
	}
	return Compare(op, lhs, rhs)
}

func ordered(op CmpOp, c int) bool {
	switch op {
	case CmpGt:
		return c > 0
	case CmpGe:
		return c >= 0
	case CmpLt:
		return c < 0
	case CmpLe:
		return c <= 0
	}
	return c == 0
}

func compareInt(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Equal reports whether lhs and rhs are equal. It is total, reflexive and
// symmetric:
//
//	String vs non-File  the String equals the other side's canonical text
//	Bool   vs Int|Double the number equals 0 or 1
//	Int|Double pairs     exact numeric comparison, NaN equal to NaN
//	same-tag Bool, File  payload equality
//
// Any other pair is unequal.
func Equal(lhs, rhs Value) bool {
	lhs, rhs = orDefault(lhs), orDefault(rhs)
	if eqRank(rhs) < eqRank(lhs) {
		lhs, rhs = rhs, lhs
	}

	switch l := lhs.(type) {
	case String:
		if _, isFile := rhs.(File); isFile {
			return false
		}
		return string(l) == rhs.String()
	case Bool:
		switch r := rhs.(type) {
		case Bool:
			return l == r
		case Int:
			return boolNum(l) == float64(r)
		case Double:
			return boolNum(l) == float64(r)
		}
	case Double:
		switch r := rhs.(type) {
		case Double:
			return sameFloat(float64(l), float64(r))
		case Int:
			return float64(l) == float64(r)
		}
	case Int:
		if r, ok := rhs.(Int); ok {
			return l == r
		}
	case File:
		if r, ok := rhs.(File); ok {
			return l.Path == r.Path
		}
	}
	return false
}

// EqualLit compares a Go primitive with a Value. It agrees with Equal with
// the operands swapped, so EqualLit(5, v) == Equal(v, Int(5)).
func EqualLit(lit any, v Value) bool {
	l, err := Of(lit)
	if err != nil {
		return false
	}
	return Equal(v, l)
}

// eqRank orders tags so that the side with the broader equality rule is
// examined first.
func eqRank(v Value) int {
	switch v.Tag() {
	case TagString:
		return 0
	case TagBool:
		return 1
	case TagDouble:
		return 2
	case TagInt:
		return 3
	default:
		return 4
	}
}

func boolNum(b Bool) float64 {
	if b {
		return 1
	}
	return 0
}

func sameFloat(a, b float64) bool {
	return a == b || (math.IsNaN(a) && math.IsNaN(b))
}
