// Package cli holds the option handling shared by every subcommand:
// the formula-or-random argument contract and the optional Graphviz
// side output.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/formula-tools/boolkit/internal/dot"
	"github.com/formula-tools/boolkit/internal/random"
	"github.com/formula-tools/boolkit/pkg/expr"
)

// Random formulas stay small: a handful of variables and a bounded
// token count keep the exhaustive passes instant.
const (
	randomLetters = 4
	randomSize    = 24
)

// FormulaOptions implements the common CLI contract: exactly one of a
// positional formula or the -r flag, plus the -d Graphviz switch.
type FormulaOptions struct {
	// Random substitutes a randomly generated formula.
	Random bool
	// Dot also emits a .dot file and renders it with the dot tool.
	Dot bool
	// Letters configures random generation: 0 draws constant leaves,
	// n > 0 draws from the first n upper-case letters.
	Letters int
}

// AddFlags registers the shared flags on a subcommand.
func (o *FormulaOptions) AddFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&o.Random, "random", "r", false, "use a randomly generated formula")
	cmd.Flags().BoolVarP(&o.Dot, "dot", "d", false, "write a Graphviz .dot file and render it")
}

// Formula returns the formula to operate on: args[0], or a generated
// one when -r is set. Passing both is an error.
func (o *FormulaOptions) Formula(args []string) (string, error) {
	if o.Random {
		if len(args) > 0 {
			return "", errors.New("a formula and -r are mutually exclusive")
		}
		gen, err := random.New()
		if err != nil {
			return "", err
		}
		return gen.Formula(o.Letters, randomSize)
	}
	if len(args) == 0 {
		return "", errors.New("missing formula (or pass -r for a random one)")
	}
	return args[0], nil
}

// EmitDot renders the tree when -d is set. Render failures are
// diagnostics only; evaluation carries on.
func (o *FormulaOptions) EmitDot(name string, t *expr.Tree) {
	if !o.Dot {
		return
	}
	if err := dot.Render(name, t); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
}
