package eval

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/formula-tools/boolkit/cmd/internal/cli"
	"github.com/formula-tools/boolkit/pkg/expr"
)

// NewEvalCommand evaluates a formula over the constants '0' and '1'.
func NewEvalCommand() *cobra.Command {
	opts := &cli.FormulaOptions{}
	cmd := &cobra.Command{
		Use:   "eval <formula | -r>",
		Short: "Evaluates a propositional formula in RPN",
		Long: `Evaluates a propositional formula written in reverse polish notation
over the constants '0' and '1'. For instance:

  boolkit eval '1011||='
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
			opts.EmitDot("eval", tree)
			fmt.Fprintln(cmd.OutOrStdout(), tree.Eval())
			return nil
		},
	}
	opts.AddFlags(cmd)
	return cmd
}
