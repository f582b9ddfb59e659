package table

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/formula-tools/boolkit/cmd/internal/cli"
	"github.com/formula-tools/boolkit/pkg/expr"
	"github.com/formula-tools/boolkit/pkg/truthtable"
)

// NewTableCommand prints the truth table of a formula.
func NewTableCommand() *cobra.Command {
	opts := &cli.FormulaOptions{Letters: 4}
	var color bool
	cmd := &cobra.Command{
		Use:   "table <formula | -r>",
		Short: "Prints the truth table of a formula",
		Long: `Prints the truth table of a formula, one row per assignment of its
variables, first variable in the most significant position. For instance:

  boolkit table 'AB&'
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
			opts.EmitDot("table", tree)
			r := truthtable.Renderer{Workers: runtime.NumCPU(), Color: color}
			return r.Render(cmd.OutOrStdout(), formula)
		},
	}
	opts.AddFlags(cmd)
	cmd.Flags().BoolVarP(&color, "color", "c", false, "colorize the table with ANSI escapes")
	return cmd
}
