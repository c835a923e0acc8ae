package main

import (
	"fmt"
	"strconv"

	"github.com/go-errors/errors"
	"github.com/privacybydesign/bigmath"
	"github.com/privacybydesign/bigmath/calculator"
	"github.com/spf13/cobra"
)

type binaryOp struct {
	use   string
	short string
	apply func(x, y *bigmath.Int) (*bigmath.Int, error)
}

func (a *app) binaryCommands() []*cobra.Command {
	ops := []binaryOp{
		{"add", "x + y", func(x, y *bigmath.Int) (*bigmath.Int, error) { return x.Plus(y), nil }},
		{"sub", "x - y", func(x, y *bigmath.Int) (*bigmath.Int, error) { return x.Minus(y), nil }},
		{"mul", "x * y", func(x, y *bigmath.Int) (*bigmath.Int, error) { return x.MultipliedBy(y), nil }},
		{"div", "x / y, rounded with --rounding", func(x, y *bigmath.Int) (*bigmath.Int, error) { return x.DividedBy(y, a.mode) }},
		{"quo", "x / y truncated towards zero", func(x, y *bigmath.Int) (*bigmath.Int, error) { return x.Quotient(y) }},
		{"rem", "remainder of quo, with the sign of x", func(x, y *bigmath.Int) (*bigmath.Int, error) { return x.Remainder(y) }},
		{"mod", "x modulo y, with the sign of y", func(x, y *bigmath.Int) (*bigmath.Int, error) { return x.Mod(y) }},
		{"gcd", "greatest common divisor", func(x, y *bigmath.Int) (*bigmath.Int, error) { return x.Gcd(y), nil }},
	}

	cmds := make([]*cobra.Command, 0, len(ops))
	for _, op := range ops {
		op := op
		cmds = append(cmds, &cobra.Command{
			Use:   op.use + " <x> <y>",
			Short: op.short,
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				x, err := a.parse(args[0])
				if err != nil {
					return err
				}
				y, err := a.parse(args[1])
				if err != nil {
					return err
				}
				z, err := op.apply(x, y)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), z)
				return err
			},
		})
	}
	return cmds
}

type intArgOp struct {
	use   string
	short string
	apply func(x *bigmath.Int, n int) (*bigmath.Int, error)
}

// intArgCommands are the operations whose second operand is a machine integer.
func (a *app) intArgCommands() []*cobra.Command {
	ops := []intArgOp{
		{"pow", "x ^ n", (*bigmath.Int).Power},
		{"shl", "x * 2^n", (*bigmath.Int).ShiftedLeft},
		{"shr", "floor(x / 2^n)", (*bigmath.Int).ShiftedRight},
	}

	cmds := make([]*cobra.Command, 0, len(ops))
	for _, op := range ops {
		op := op
		cmds = append(cmds, &cobra.Command{
			Use:   op.use + " <x> <n>",
			Short: op.short,
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				x, err := a.parse(args[0])
				if err != nil {
					return err
				}
				n, err := strconv.Atoi(args[1])
				if err != nil {
					return errors.WrapPrefix(err, "n", 0)
				}
				z, err := op.apply(x, n)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), z)
				return err
			},
		})
	}
	return cmds
}

func (a *app) sqrtCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sqrt <x>",
		Short: "floor of the square root of x",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := a.parse(args[0])
			if err != nil {
				return err
			}
			z, err := x.Sqrt()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), z)
			return err
		},
	}
}

func (a *app) convertCmd() *cobra.Command {
	var from, to int
	cmd := &cobra.Command{
		Use:   "convert <x>",
		Short: "convert x between bases 2 to 36",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := a.math.Parse(args[0], from)
			if err != nil {
				return errors.WrapPrefix(err, args[0], 0)
			}
			s, err := x.Text(to)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), s)
			return err
		},
	}
	cmd.Flags().IntVar(&from, "from", 10, "base of the input")
	cmd.Flags().IntVar(&to, "to", 10, "base of the output")
	return cmd
}

func (a *app) calculatorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "calculators",
		Short: "list the available calculator backends",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			current := a.math.Calculator().Name()
			for _, name := range calculator.Names() {
				marker := " "
				if name == current {
					marker = "*"
				}
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", marker, name); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
