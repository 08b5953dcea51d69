package dynamic

// Op is an arithmetic operator.
type Op uint8

const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
)

func (op Op) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	default:
		return "?"
	}
}

// Binary applies op with lhs as the receiver. The result tag is the
// receiver's tag:
//
//	Int    op Int|Double  -> Int (operand truncated)
//	Double op Int|Double  -> Double
//	String +  any         -> String (operand rendered as text)
//
// Every other combination fails with ErrUnsupported. Division by an operand
// that coerces to zero fails with ErrDivisionByZero.
func Binary(op Op, lhs, rhs Value) (Value, error) {
	lhs, rhs = orDefault(lhs), orDefault(rhs)

	switch l := lhs.(type) {
	case Int:
		c, err := Coerce(rhs, TagInt)
		if err != nil {
			return nil, rebind(err, op.String(), lhs, rhs)
		}
		r := c.(Int)
		switch op {
		case OpAdd:
			return l + r, nil
		case OpSub:
			return l - r, nil
		case OpMul:
			return l * r, nil
		case OpDiv:
			if r == 0 {
				return nil, &OpError{Op: op.String(), Left: lhs.Tag(), Right: rhs.Tag(), Kind: ErrDivisionByZero}
			}
			return l / r, nil
		}

	case Double:
		c, err := Coerce(rhs, TagDouble)
		if err != nil {
			return nil, rebind(err, op.String(), lhs, rhs)
		}
		r := c.(Double)
		switch op {
		case OpAdd:
			return l + r, nil
		case OpSub:
			return l - r, nil
		case OpMul:
			return l * r, nil
		case OpDiv:
			if r == 0 {
				return nil, &OpError{Op: op.String(), Left: lhs.Tag(), Right: rhs.Tag(), Kind: ErrDivisionByZero}
			}
			return l / r, nil
		}

	case String:
		if op == OpAdd {
			return l + String(rhs.String()), nil
		}
	}

	return nil, unsupported(op.String(), lhs, rhs)
}

func Add(lhs, rhs Value) (Value, error) { return Binary(OpAdd, lhs, rhs) }
func Sub(lhs, rhs Value) (Value, error) { return Binary(OpSub, lhs, rhs) }
func Mul(lhs, rhs Value) (Value, error) { return Binary(OpMul, lhs, rhs) }
func Div(lhs, rhs Value) (Value, error) { return Binary(OpDiv, lhs, rhs) }

// BinaryLit applies op with a Go primitive as the receiver, for expressions
// like `5 - x` where the literal stands on the left.
func BinaryLit(op Op, lit any, rhs Value) (Value, error) {
	lhs, err := Of(lit)
	if err != nil {
		return nil, err
	}
	return Binary(op, lhs, rhs)
}
