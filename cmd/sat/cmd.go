package sat

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/formula-tools/boolkit/cmd/internal/cli"
	"github.com/formula-tools/boolkit/pkg/expr"
	"github.com/formula-tools/boolkit/pkg/truthtable"
)

// NewSatCommand tests a formula for satisfiability by exhaustive
// enumeration.
func NewSatCommand() *cobra.Command {
	opts := &cli.FormulaOptions{Letters: 4}
	cmd := &cobra.Command{
		Use:   "sat <formula | -r>",
		Short: "Tests whether some assignment makes the formula true",
		Long: `Tests whether some assignment of the variables makes the formula true,
scanning every assignment in order. For instance:

  boolkit sat 'AA!&'    # prints false
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
			opts.EmitDot("sat", tree)
			fmt.Fprintln(cmd.OutOrStdout(), truthtable.Satisfiable(tree))
			return nil
		},
	}
	opts.AddFlags(cmd)
	return cmd
}
