// Package stdio provides console output and token input for Aardvark
// programs. Values are rendered with their canonical text.
package stdio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/pkg/errors"

	"github.com/funvibe/aardvark/pkg/dynamic"
)

// Console writes rendered values to out and reads tokens from in.
// A Console is not safe for concurrent use.
type Console struct {
	out io.Writer
	in  *bufio.Reader
}

// New returns a Console over out and in. in may be nil for output-only use.
func New(out io.Writer, in io.Reader) *Console {
	c := &Console{out: out}
	if in != nil {
		if br, ok := in.(*bufio.Reader); ok {
			c.in = br
		} else {
			c.in = bufio.NewReader(in)
		}
	}
	return c
}

// std is shared so buffered stdin survives repeated Input calls.
var (
	std     *Console
	stdOnce sync.Once
)

// Std returns the process console on os.Stdout and os.Stdin.
func Std() *Console {
	stdOnce.Do(func() {
		std = New(os.Stdout, os.Stdin)
	})
	return std
}

// resetStd drops the process console. Used in tests when os.Stdin is swapped.
func resetStd() {
	stdOnce = sync.Once{}
	std = nil
}

// Render returns the concatenated canonical text of args. Each argument is
// a string, a dynamic.Value or a primitive accepted by dynamic.Of.
func Render(args ...any) (string, error) {
	var buf []byte
	for _, arg := range args {
		switch a := arg.(type) {
		case string:
			buf = append(buf, a...)
		case dynamic.Value:
			buf = append(buf, a.String()...)
		case *dynamic.Var:
			buf = append(buf, a.String()...)
		default:
			v, err := dynamic.Of(arg)
			if err != nil {
				return "", err
			}
			buf = append(buf, v.String()...)
		}
	}
	return string(buf), nil
}

// Print writes args in order with no separator and no trailing newline.
func (c *Console) Print(args ...any) error {
	s, err := Render(args...)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(c.out, s); err != nil {
		return dynamic.WrapIO(err, "write console")
	}
	return nil
}

// Println is Print followed by a newline.
func (c *Console) Println(args ...any) error {
	return c.Print(append(args[:len(args):len(args)], "\n")...)
}

// Input writes the prompt, if any, and reads one whitespace-delimited token.
func (c *Console) Input(prompt ...any) (string, error) {
	if len(prompt) > 0 {
		if err := c.Print(prompt...); err != nil {
			return "", err
		}
	}
	if c.in == nil {
		return "", dynamic.WrapIO(errors.New("no input attached"), "read console")
	}
	var token string
	if _, err := fmt.Fscan(c.in, &token); err != nil {
		return "", dynamic.WrapIO(err, "read console")
	}
	return token, nil
}

// InputValue is Input with the token parsed by dynamic.ParseLiteral.
func (c *Console) InputValue(prompt ...any) (dynamic.Value, error) {
	token, err := c.Input(prompt...)
	if err != nil {
		return nil, err
	}
	return dynamic.ParseLiteral(token), nil
}

// Print writes to the process console.
func Print(args ...any) error { return Std().Print(args...) }

// Println writes to the process console followed by a newline.
func Println(args ...any) error { return Std().Println(args...) }

// Input reads a token from the process console.
func Input(prompt ...any) (string, error) { return Std().Input(prompt...) }
