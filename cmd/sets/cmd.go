package sets

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/formula-tools/boolkit/cmd/internal/cli"
	"github.com/formula-tools/boolkit/pkg/expr"
	setseval "github.com/formula-tools/boolkit/pkg/sets"
)

// NewSetsCommand evaluates a formula over sets of integers, one
// comma-separated list per variable in alphabetical order.
func NewSetsCommand() *cobra.Command {
	opts := &cli.FormulaOptions{Letters: 4}
	cmd := &cobra.Command{
		Use:   "sets <formula | -r> [set...]",
		Short: "Evaluates a formula over sets of integers",
		Long: `Evaluates a formula under the set-theoretic interpretation of the
connectives: And is intersection, Or is union, Not is complement in the
universe of all given values. One comma-separated list per variable, in
variable order. For instance:

  boolkit sets 'AB&' 0,1,2 0,3,4    # prints [0]
`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Under -r there is no positional formula; every
			// argument is a set list.
			setArgs := args
			if opts.Random {
				args = nil
			} else if len(args) > 0 {
				setArgs = args[1:]
				args = args[:1]
			}
			formula, err := opts.Formula(args)
			if err != nil {
				return err
			}
			tree, err := expr.Parse(formula)
			if err != nil {
				return fmt.Errorf("parsing %q: %w", formula, err)
			}
			letters := tree.Letters()
			if len(setArgs) > len(letters) {
				return fmt.Errorf("%d sets given for %d variables", len(setArgs), len(letters))
			}
			for i, arg := range setArgs {
				values, err := parseSet(arg)
				if err != nil {
					return err
				}
				tree.BindSet(letters[i], values)
			}
			opts.EmitDot("sets", tree)
			fmt.Fprintln(cmd.OutOrStdout(), setseval.Eval(tree))
			return nil
		},
	}
	opts.AddFlags(cmd)
	return cmd
}

func parseSet(arg string) ([]int, error) {
	if arg == "" {
		return nil, nil
	}
	parts := strings.Split(arg, ",")
	values := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("parsing set %q: %w", arg, err)
		}
		values = append(values, v)
	}
	return values, nil
}
