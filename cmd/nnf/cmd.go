package nnf

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/formula-tools/boolkit/cmd/internal/cli"
	"github.com/formula-tools/boolkit/pkg/expr"
	"github.com/formula-tools/boolkit/pkg/rewrite"
)

// NewNNFCommand rewrites a formula into negation normal form.
func NewNNFCommand() *cobra.Command {
	opts := &cli.FormulaOptions{Letters: 4}
	cmd := &cobra.Command{
		Use:   "nnf <formula | -r>",
		Short: "Rewrites a formula into negation normal form",
		Long: `Rewrites a formula so that only conjunction, disjunction and possibly
negated leaves remain. For instance:

  boolkit nnf 'AB>'     # prints A!B|
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
			out := rewrite.NNF(tree)
			opts.EmitDot("nnf", out)
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	opts.AddFlags(cmd)
	return cmd
}
