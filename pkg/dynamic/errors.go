package dynamic

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Error kinds. Every failure returned by this package and the collaborator
// packages matches exactly one of them with errors.Is.
var (
	ErrUnsupported         = errors.New("unsupported operation")
	ErrDivisionByZero      = errors.New("division by zero")
	ErrIO                  = errors.New("i/o error")
	ErrInvalidConstruction = errors.New("invalid construction")
)

// OpError reports an operator applied to operands it has no rule for.
type OpError struct {
	Op     string
	Left   Tag
	Right  Tag // tagNone for unary operators
	Kind   error
	Detail string
}

func (e *OpError) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Kind.Error())
	sb.WriteString(": ")
	switch {
	case e.Right != tagNone:
		fmt.Fprintf(&sb, "%s %s %s", e.Left, e.Op, e.Right)
	case isWord(e.Op):
		fmt.Fprintf(&sb, "%s %s", e.Op, e.Left)
	default:
		fmt.Fprintf(&sb, "%s%s", e.Op, e.Left)
	}
	if e.Detail != "" {
		fmt.Fprintf(&sb, " (%s)", e.Detail)
	}
	return sb.String()
}

func (e *OpError) Unwrap() error { return e.Kind }

func isWord(op string) bool {
	return op != "" && op[0] >= 'a' && op[0] <= 'z'
}

// KindError attaches an error kind to an underlying cause, keeping both
// reachable through errors.Is.
type KindError struct {
	Kind error
	Err  error
}

func (e *KindError) Error() string   { return e.Kind.Error() + ": " + e.Err.Error() }
func (e *KindError) Unwrap() []error { return []error{e.Kind, e.Err} }

// WrapIO marks err as an ErrIO failure with the given context.
func WrapIO(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return &KindError{Kind: ErrIO, Err: errors.Wrapf(err, format, args...)}
}

func unsupported(op string, lhs, rhs Value) error {
	return &OpError{Op: op, Left: lhs.Tag(), Right: rhs.Tag(), Kind: ErrUnsupported}
}

// rebind reports a failure of an inner operation under the outer operator,
// keeping the inner kind and detail.
func rebind(err error, op string, lhs, rhs Value) error {
	var oe *OpError
	if !errors.As(err, &oe) {
		return err
	}
	return &OpError{Op: op, Left: lhs.Tag(), Right: rhs.Tag(), Kind: oe.Kind, Detail: oe.Detail}
}
