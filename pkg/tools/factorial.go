package tools

import (
	"math"

	"github.com/pkg/errors"

	"github.com/funvibe/aardvark/pkg/dynamic"
)

// MaxFactorialArg is the largest argument Factorial accepts. Int results
// wrap long before it and Double results are +Inf past 170.
const MaxFactorialArg = 1 << 20

var one = dynamic.Int(1)

// Factorial computes n! with dynamic arithmetic: 1 for n == 1, otherwise
// n * (n-1) * ... * 2. The result keeps the tag of n, so an Int argument
// gives an Int and a Double argument gives a Double.
//
// Arguments below 1, non-finite or fractional Doubles and arguments above
// MaxFactorialArg fail with ErrUnsupported.
func Factorial(n dynamic.Value) (dynamic.Value, error) {
	if n == nil {
		n = dynamic.Default
	}
	var whole float64
	switch v := n.(type) {
	case dynamic.Int:
		whole = float64(v)
	case dynamic.Double:
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) || math.Trunc(f) != f {
			return nil, &dynamic.OpError{Op: "factorial", Left: dynamic.TagDouble, Kind: dynamic.ErrUnsupported, Detail: "not a whole number"}
		}
		whole = f
	default:
		return nil, &dynamic.OpError{Op: "factorial", Left: n.Tag(), Kind: dynamic.ErrUnsupported}
	}
	if whole < 1 {
		return nil, errors.WithMessagef(dynamic.ErrUnsupported, "factorial of %s", dynamic.Text(n))
	}
	if whole > MaxFactorialArg {
		return nil, &dynamic.OpError{Op: "factorial", Left: n.Tag(), Kind: dynamic.ErrUnsupported, Detail: "argument too large"}
	}
	if dynamic.Equal(n, one) {
		return one, nil
	}

	var (
		acc dynamic.Value = one
		err error
	)
	for k := int64(2); k <= int64(whole); k++ {
		if acc, err = dynamic.Mul(sameTag(n, k), acc); err != nil {
			return nil, err
		}
	}
	return acc, nil
}

// sameTag returns k carrying the numeric tag of n.
func sameTag(n dynamic.Value, k int64) dynamic.Value {
	if n.Tag() == dynamic.TagDouble {
		return dynamic.Double(k)
	}
	return dynamic.Int(k)
}
