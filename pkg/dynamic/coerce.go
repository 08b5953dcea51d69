package dynamic

import "math"

// Int range limits as float64. 2^63 itself is not representable as int64.
const (
	minIntFloat = -9223372036854775808.0
	maxIntFloat = 9223372036854775808.0
)

// Coerce converts operand toward the receiver tag of a binary operation.
//
//	toward Int:    Int as is, Double truncated toward zero
//	toward Double: Int widened, Double as is
//	toward String: canonical text of any value
//	toward Bool:   Bool only
//	toward File:   File only
//
// Other conversions fail with ErrUnsupported.
func Coerce(operand Value, toward Tag) (Value, error) {
	operand = orDefault(operand)
	switch toward {
	case TagString:
		return String(operand.String()), nil
	case TagInt:
		switch o := operand.(type) {
		case Int:
			return o, nil
		case Double:
			f := float64(o)
			if math.IsNaN(f) {
				return nil, coerceError(operand, toward, "NaN has no Int value")
			}
			if f < minIntFloat || f >= maxIntFloat {
				return nil, coerceError(operand, toward, "out of Int range")
			}
			return Int(int64(f)), nil
		}
	case TagDouble:
		switch o := operand.(type) {
		case Int:
			return Double(float64(o)), nil
		case Double:
			return o, nil
		}
	case TagBool:
		if b, ok := operand.(Bool); ok {
			return b, nil
		}
	case TagFile:
		if f, ok := operand.(File); ok {
			return f, nil
		}
	}
	return nil, coerceError(operand, toward, "")
}

func coerceError(operand Value, toward Tag, detail string) error {
	return &OpError{Op: "as", Left: operand.Tag(), Right: toward, Kind: ErrUnsupported, Detail: detail}
}
