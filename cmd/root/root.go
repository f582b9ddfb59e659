package root

import (
	"github.com/spf13/cobra"

	"github.com/formula-tools/boolkit/cmd/bits"
	"github.com/formula-tools/boolkit/cmd/cnf"
	"github.com/formula-tools/boolkit/cmd/eval"
	"github.com/formula-tools/boolkit/cmd/nnf"
	"github.com/formula-tools/boolkit/cmd/sat"
	"github.com/formula-tools/boolkit/cmd/sets"
	"github.com/formula-tools/boolkit/cmd/table"
)

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "boolkit",
		Short: "A toolkit for propositional formulas in reverse polish notation",
		Long: `A toolkit for propositional Boolean formulas written in reverse polish
notation: evaluation, truth tables, normal forms, CNF minimization,
satisfiability and set-theoretic evaluation.`,
	}

	// add sub-commands
	rootCmd.AddCommand(eval.NewEvalCommand())
	rootCmd.AddCommand(table.NewTableCommand())
	rootCmd.AddCommand(nnf.NewNNFCommand())
	rootCmd.AddCommand(cnf.NewCNFCommand())
	rootCmd.AddCommand(sat.NewSatCommand())
	rootCmd.AddCommand(sets.NewSetsCommand())
	rootCmd.AddCommand(bits.NewBitsCommand())

	return rootCmd
}
