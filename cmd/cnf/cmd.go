package cnf

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/formula-tools/boolkit/cmd/internal/cli"
	"github.com/formula-tools/boolkit/pkg/expr"
	"github.com/formula-tools/boolkit/pkg/qm"
)

// NewCNFCommand prints a minimized conjunctive normal form.
func NewCNFCommand() *cobra.Command {
	opts := &cli.FormulaOptions{Letters: 4}
	cmd := &cobra.Command{
		Use:   "cnf <formula | -r>",
		Short: "Rewrites a formula into a minimized conjunctive normal form",
		Long: `Rewrites a formula into a minimum-size conjunction of disjunctions,
using Quine-McCluskey over the formula's zero-rows followed by Petrick's
method. For instance:

  boolkit cnf 'AB&!'    # prints A!B!|
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formula, err := opts.Formula(args)
			if err != nil {
				return err
			}
			tree, err := expr.Parse(formula)
			if err != nil {
				return fmt.Errorf("parsing %q: %w", formula, err)
			}
			out := qm.Minimize(tree)
			opts.EmitDot("cnf", out)
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	opts.AddFlags(cmd)
	return cmd
}
