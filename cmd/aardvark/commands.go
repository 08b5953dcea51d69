package main

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/funvibe/aardvark/pkg/dynamic"
	"github.com/funvibe/aardvark/pkg/tools"
)

var arithmeticOps = map[string]dynamic.Op{
	"+": dynamic.OpAdd,
	"-": dynamic.OpSub,
	"*": dynamic.OpMul,
	"/": dynamic.OpDiv,
}

var comparisonOps = map[string]dynamic.CmpOp{
	"==": dynamic.CmpEq,
	">":  dynamic.CmpGt,
	">=": dynamic.CmpGe,
	"<":  dynamic.CmpLt,
	"<=": dynamic.CmpLe,
}

// evaluate applies a binary operator given in source form.
func evaluate(lhs dynamic.Value, op string, rhs dynamic.Value) (dynamic.Value, error) {
	if aop, ok := arithmeticOps[op]; ok {
		return dynamic.Binary(aop, lhs, rhs)
	}
	if cop, ok := comparisonOps[op]; ok {
		res, err := dynamic.Compare(cop, lhs, rhs)
		if err != nil {
			return nil, err
		}
		return dynamic.Bool(res), nil
	}
	if op == "!=" {
		return dynamic.Bool(!dynamic.Equal(lhs, rhs)), nil
	}
	return nil, errors.Errorf("unknown operator %q", op)
}

func (a *app) evalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval LHS OP RHS",
		Short: "Apply an operator to two literals",
		Long: `Apply + - * / == != > >= < <= to two literals. Literals follow the
source syntax: True/False, integers, decimals, quoted strings; any other
word is a string. Flags end at the first operand, so a negative right
operand needs no quoting; a negative left operand follows "--":

  aardvark eval 3 + -2
  aardvark eval -- -2 '*' 3`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			lhs, rhs := dynamic.ParseLiteral(args[0]), dynamic.ParseLiteral(args[2])
			res, err := evaluate(lhs, args[1], rhs)
			if err != nil {
				return err
			}
			a.log.WithField("tag", res.Tag()).Debug("evaluated")
			return a.console.Println(res)
		},
	}
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func (a *app) readCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "read PATH",
		Short: "Print a file through a File value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := a.files.Open(args[0])
			if err != nil {
				return err
			}
			text, err := a.files.Read(file)
			if err != nil {
				return err
			}
			return a.console.Print(text)
		},
	}
}

func (a *app) writeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "write PATH LITERAL...",
		Short: "Replace a file with the rendered literals",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			content := dynamic.Value(dynamic.String(""))
			for _, lit := range args[1:] {
				var err error
				if content, err = dynamic.Add(content, dynamic.ParseLiteral(lit)); err != nil {
					return err
				}
			}
			return a.files.NewFile(args[0], content)
		},
	}
}

func (a *app) randNumCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "randnum",
		Short: "Print a uniform double in [0, 1)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.console.Println(a.gen.RandNum())
		},
	}
}

func (a *app) randIntCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "randint START END",
		Short: "Print a uniform integer between START and END inclusive",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return errors.Wrap(err, "START")
			}
			end, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return errors.Wrap(err, "END")
			}
			return a.console.Println(a.gen.RandInt(start, end))
		},
	}
}

func (a *app) choiceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "choice LITERAL...",
		Short: "Print one of the literals at random",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values := make([]dynamic.Value, len(args))
			for i, lit := range args {
				values[i] = dynamic.ParseLiteral(lit)
			}
			v, err := a.gen.RandomChoice(values...)
			if err != nil {
				return err
			}
			return a.console.Println(v)
		},
	}
}

func (a *app) factorialCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "factorial N",
		Short: "Print N!",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := tools.Factorial(dynamic.ParseLiteral(args[0]))
			if err != nil {
				return err
			}
			return a.console.Println(v)
		},
	}
}

func (a *app) askCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ask [PROMPT...]",
		Short: "Read one token from stdin and echo it",
		Long:  "Read one token from stdin and echo it. The prompt is only shown when stdin is a terminal.",
		RunE: func(cmd *cobra.Command, args []string) error {
			var prompt []any
			if isTerminal(a.in) {
				for _, p := range args {
					prompt = append(prompt, p)
				}
			}
			v, err := a.console.InputValue(prompt...)
			if err != nil {
				return err
			}
			return a.console.Println(v)
		},
	}
}
