package dynamic

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/funvibe/aardvark/internal/config"
)

// Text returns the canonical rendering of v, the form used by
// concatenation, console output and file writes.
func Text(v Value) string {
	return orDefault(v).String()
}

func (s String) String() string { return string(s) }

func (i Int) String() string { return strconv.FormatInt(int64(i), 10) }

// String renders the shortest decimal text that round-trips, without an
// exponent: 5.5, 0.1, 1000000000000000000000.
func (d Double) String() string {
	f := float64(d)
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "+Inf"
	case math.IsInf(f, -1):
		return "-Inf"
	}
	return decimal.NewFromFloat(f).String()
}

func (b Bool) String() string {
	if b {
		return config.TrueText
	}
	return config.FalseText
}

// String renders the path. It never touches the filesystem.
func (f File) String() string { return f.Path }
