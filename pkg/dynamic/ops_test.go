package dynamic

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Coercion
// =============================================================================

func TestCoerce(t *testing.T) {
	tests := []struct {
		name    string
		operand Value
		toward  Tag
		want    Value
	}{
		{"int to int", Int(3), TagInt, Int(3)},
		{"double truncates", Double(2.9), TagInt, Int(2)},
		{"negative double truncates toward zero", Double(-2.9), TagInt, Int(-2)},
		{"int widens", Int(3), TagDouble, Double(3)},
		{"double to double", Double(1.25), TagDouble, Double(1.25)},
		{"int to string", Int(12), TagString, String("12")},
		{"double to string", Double(0.5), TagString, String("0.5")},
		{"bool to string", Bool(true), TagString, String("True")},
		{"file to string", File{Path: "f"}, TagString, String("f")},
		{"bool to bool", Bool(false), TagBool, Bool(false)},
		{"file to file", File{Path: "f"}, TagFile, File{Path: "f"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Coerce(tt.operand, tt.toward)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCoerce_Unsupported(t *testing.T) {
	tests := []struct {
		name    string
		operand Value
		toward  Tag
	}{
		{"string to int", String("5"), TagInt},
		{"bool to int", Bool(true), TagInt},
		{"bool to double", Bool(true), TagDouble},
		{"string to double", String("1.5"), TagDouble},
		{"int to bool", Int(1), TagBool},
		{"string to file", String("f"), TagFile},
		{"nan to int", Double(math.NaN()), TagInt},
		{"inf to int", Double(math.Inf(1)), TagInt},
		{"huge to int", Double(1e19), TagInt},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Coerce(tt.operand, tt.toward)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrUnsupported), err.Error())
		})
	}
}

// =============================================================================
// Arithmetic
// =============================================================================

func TestBinary(t *testing.T) {
	tests := []struct {
		name string
		op   Op
		lhs  Value
		rhs  Value
		want Value
	}{
		{"int + int", OpAdd, Int(2), Int(3), Int(5)},
		{"int - int", OpSub, Int(2), Int(3), Int(-1)},
		{"int * int", OpMul, Int(4), Int(3), Int(12)},
		{"int / int truncates", OpDiv, Int(7), Int(2), Int(3)},
		{"negative int / int", OpDiv, Int(-7), Int(2), Int(-3)},
		{"int + double truncates operand", OpAdd, Int(3), Double(2.9), Int(5)},
		{"int - double truncates operand", OpSub, Int(3), Double(2.9), Int(1)},
		{"int * double truncates operand", OpMul, Int(3), Double(2.9), Int(6)},
		{"int / double truncates operand", OpDiv, Int(9), Double(2.9), Int(4)},
		{"double + int widens", OpAdd, Double(2.9), Int(3), Double(5.9)},
		{"double - double", OpSub, Double(2.5), Double(0.25), Double(2.25)},
		{"double * int", OpMul, Double(1.5), Int(4), Double(6)},
		{"double / double", OpDiv, Double(1), Double(4), Double(0.25)},
		{"string + string", OpAdd, String("ab"), String("cd"), String("abcd")},
		{"string + int", OpAdd, String("n="), Int(5), String("n=5")},
		{"string + double", OpAdd, String("x="), Double(5.5), String("x=5.5")},
		{"string + bool", OpAdd, String("ok: "), Bool(true), String("ok: True")},
		{"string + false", OpAdd, String(""), Bool(false), String("False")},
		{"string + file", OpAdd, String("at "), File{Path: "a.txt"}, String("at a.txt")},
		{"default var is bool", OpAdd, String("v="), nil, String("v=False")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Binary(tt.op, tt.lhs, tt.rhs)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBinary_IntReceiverKeepsInt(t *testing.T) {
	// v + w == Int(v.int + coerce_to_int(w)) for every w that coerces.
	operands := []Value{Int(0), Int(-5), Int(41), Double(0.99), Double(-3.7), Double(1e9 + 0.5)}
	for _, lhs := range []Int{0, 1, -17, 1 << 40} {
		for _, w := range operands {
			c, err := Coerce(w, TagInt)
			require.NoError(t, err)

			sum, err := Add(lhs, w)
			require.NoError(t, err)
			assert.Equal(t, lhs+c.(Int), sum)

			diff, err := Sub(lhs, w)
			require.NoError(t, err)
			assert.Equal(t, lhs-c.(Int), diff)
		}
	}
}

func TestBinary_StringConcatenatesCanonicalText(t *testing.T) {
	operands := []Value{String("s"), Int(9), Double(0.125), Bool(true), Bool(false), File{Path: "p"}}
	for _, w := range operands {
		got, err := Add(String("pre:"), w)
		require.NoError(t, err)
		assert.Equal(t, String("pre:"+Text(w)), got)

		_, err = Sub(String("pre:"), w)
		assert.True(t, errors.Is(err, ErrUnsupported), "String - %s", w.Tag())
	}
}

func TestBinary_Unsupported(t *testing.T) {
	tests := []struct {
		name    string
		op      Op
		lhs     Value
		rhs     Value
		wantMsg string
	}{
		{"bool + int", OpAdd, Bool(true), Int(1), "unsupported operation: Bool + Int"},
		{"bool + bool", OpAdd, Bool(true), Bool(true), "unsupported operation: Bool + Bool"},
		{"file + string", OpAdd, File{Path: "f"}, String("x"), "unsupported operation: File + String"},
		{"string - string", OpSub, String("a"), String("b"), "unsupported operation: String - String"},
		{"string * int", OpMul, String("a"), Int(3), "unsupported operation: String * Int"},
		{"string / int", OpDiv, String("a"), Int(3), "unsupported operation: String / Int"},
		{"int + string", OpAdd, Int(1), String("2"), "unsupported operation: Int + String"},
		{"int + bool", OpAdd, Int(1), Bool(true), "unsupported operation: Int + Bool"},
		{"double * string", OpMul, Double(1), String("2"), "unsupported operation: Double * String"},
		{"int + nan", OpAdd, Int(1), Double(math.NaN()), "unsupported operation: Int + Double (NaN has no Int value)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Binary(tt.op, tt.lhs, tt.rhs)
			require.Error(t, err)
			assert.Nil(t, got)
			assert.True(t, errors.Is(err, ErrUnsupported))
			assert.EqualError(t, err, tt.wantMsg)
		})
	}
}

func TestBinary_DivisionByZero(t *testing.T) {
	tests := []struct {
		name string
		lhs  Value
		rhs  Value
	}{
		{"int / int zero", Int(1), Int(0)},
		{"int / double truncating to zero", Int(1), Double(0.4)},
		{"double / double zero", Double(1), Double(0)},
		{"double / negative zero", Double(1), Double(math.Copysign(0, -1))},
		{"double / int zero", Double(1), Int(0)},
		{"zero / zero", Double(0), Double(0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Div(tt.lhs, tt.rhs)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrDivisionByZero), err.Error())
			assert.False(t, errors.Is(err, ErrUnsupported))
		})
	}
}

func TestBinary_IntOverflowWraps(t *testing.T) {
	got, err := Add(Int(math.MaxInt64), Int(1))
	require.NoError(t, err)
	assert.Equal(t, Int(math.MinInt64), got)

	got, err = Div(Int(math.MinInt64), Int(-1))
	require.NoError(t, err)
	assert.Equal(t, Int(math.MinInt64), got)
}

func TestBinaryLit(t *testing.T) {
	tests := []struct {
		name string
		op   Op
		lit  any
		rhs  Value
		want Value
	}{
		{"5 - int", OpSub, 5, Int(2), Int(3)},
		{"5 - double truncates", OpSub, 5, Double(2.5), Int(3)},
		{"5.0 - int widens", OpSub, 5.0, Int(2), Double(3)},
		{"10 / int", OpDiv, 10, Int(4), Int(2)},
		{"2 * double", OpMul, 2, Double(1.9), Int(2)},
		{"string + value", OpAdd, "got ", Bool(false), String("got False")},
		{"1.5 + double", OpAdd, 1.5, Double(1), Double(2.5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BinaryLit(tt.op, tt.lit, tt.rhs)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := BinaryLit(OpAdd, true, Int(1))
	assert.True(t, errors.Is(err, ErrUnsupported))
	_, err = BinaryLit(OpAdd, []byte("x"), Int(1))
	assert.True(t, errors.Is(err, ErrInvalidConstruction))
	_, err = BinaryLit(OpDiv, 3, Int(0))
	assert.True(t, errors.Is(err, ErrDivisionByZero))
}
