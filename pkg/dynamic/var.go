package dynamic

// Var is a mutable variable holding a Value. Assignment may change the tag,
// which is how an Aardvark variable changes its apparent type at runtime.
// The zero Var holds Bool(false).
//
// Failed operations leave the Var unchanged.
type Var struct {
	v Value
}

// NewVar returns a Var holding Of(x).
func NewVar(x any) (*Var, error) {
	v, err := Of(x)
	if err != nil {
		return nil, err
	}
	return &Var{v: v}, nil
}

// Value returns the held value. A nil *Var reads as Default.
func (v *Var) Value() Value {
	if v == nil {
		return Default
	}
	return orDefault(v.v)
}

func (v *Var) Tag() Tag       { return v.Value().Tag() }
func (v *Var) String() string { return v.Value().String() }

// Set stores x, taking its tag.
func (v *Var) Set(x Value) { v.v = orDefault(x) }

// Assign stores a Go primitive, re-tagging the Var to the primitive's kind.
func (v *Var) Assign(x any) error {
	val, err := Of(x)
	if err != nil {
		return err
	}
	v.v = val
	return nil
}

// Increment and decrement apply to Int and Double only. The prefix forms
// return the updated value, the postfix forms return the value held before
// the update.

func (v *Var) PreInc() (Value, error)  { return v.step("++", 1, false) }
func (v *Var) PostInc() (Value, error) { return v.step("++", 1, true) }
func (v *Var) PreDec() (Value, error)  { return v.step("--", -1, false) }
func (v *Var) PostDec() (Value, error) { return v.step("--", -1, true) }

func (v *Var) step(op string, delta int64, post bool) (Value, error) {
	old := v.Value()
	var next Value
	switch x := old.(type) {
	case Int:
		next = x + Int(delta)
	case Double:
		next = x + Double(delta)
	default:
		return nil, &OpError{Op: op, Left: old.Tag(), Kind: ErrUnsupported}
	}
	v.v = next
	if post {
		return old, nil
	}
	return next, nil
}

// AddAssign is `v += x`. An Int receiver with a Double operand is promoted
// to Double; otherwise it behaves like Add.
func (v *Var) AddAssign(x Value) error { return v.compound(OpAdd, x) }

// SubAssign is `v -= x`, with the same promotion as AddAssign.
func (v *Var) SubAssign(x Value) error { return v.compound(OpSub, x) }

// MulAssign is `v *= x`, with the same promotion as AddAssign.
func (v *Var) MulAssign(x Value) error { return v.compound(OpMul, x) }

// DivAssign is `v /= x`, with the same promotion as AddAssign.
func (v *Var) DivAssign(x Value) error { return v.compound(OpDiv, x) }

func (v *Var) compound(op Op, x Value) error {
	cur, x := v.Value(), orDefault(x)

	recv := cur
	if i, ok := cur.(Int); ok {
		if _, isDouble := x.(Double); isDouble {
			recv = Double(float64(i))
		}
	}

	res, err := Binary(op, recv, x)
	if err != nil {
		return rebind(err, op.String()+"=", cur, x)
	}
	v.v = res
	return nil
}
