package bits

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/formula-tools/boolkit/pkg/bitops"
)

// NewBitsCommand groups the numeric exercises: bitwise addition and
// multiplication, Gray code, and power-set enumeration.
func NewBitsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bits",
		Short: "Small numeric exercises built on bitwise primitives",
	}
	cmd.AddCommand(newAdderCommand(), newMulCommand(), newGrayCommand(), newPowersetCommand())
	return cmd
}

func newAdderCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "adder <a> <b>",
		Short: "Adds two numbers using only ^, & and <<",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, b, err := parsePair(args)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d + %d = %d\n", a, b, bitops.Adder(a, b))
			return nil
		},
	}
}

func newMulCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "mul <a> <b>",
		Short: "Multiplies two numbers by shift and add",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, b, err := parsePair(args)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d * %d = %d\n", a, b, bitops.Multiplier(a, b))
			return nil
		},
	}
}

func newGrayCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "gray <n>",
		Short: "Prints the reflected binary code of n",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseUint32(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), bitops.GrayCode(n))
			return nil
		},
	}
}

func newPowersetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "powerset <values>",
		Short: "Enumerates every subset of a comma-separated set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var values []int
			for _, p := range strings.Split(args[0], ",") {
				v, err := strconv.Atoi(strings.TrimSpace(p))
				if err != nil {
					return fmt.Errorf("parsing set %q: %w", args[0], err)
				}
				values = append(values, v)
			}
			for _, subset := range bitops.Powerset(values) {
				fmt.Fprintln(cmd.OutOrStdout(), subset)
			}
			return nil
		},
	}
}

func parsePair(args []string) (uint32, uint32, error) {
	a, err := parseUint32(args[0])
	if err != nil {
		return 0, 0, err
	}
	b, err := parseUint32(args[1])
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}

func parseUint32(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("parsing number %q: %w", s, err)
	}
	return uint32(v), nil
}
