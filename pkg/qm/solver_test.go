package qm

import (
	"math/rand"
	"testing"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formula-tools/boolkit/internal/random"
	"github.com/formula-tools/boolkit/pkg/expr"
	"github.com/formula-tools/boolkit/pkg/truthtable"
)

// addClauses feeds the conjunction spine of a minimized tree to the
// solver, one clause per implicant.
func addClauses(t *testing.T, g *gini.Gini, n expr.Node) {
	t.Helper()
	if lit, ok := n.Lit.(expr.Binary); ok && lit.Op == expr.OpAnd && !n.Negated() {
		for _, c := range lit.Children {
			addClauses(t, g, c)
		}
		return
	}
	addClause(t, g, n)
	g.Add(z.LitNull)
}

func addClause(t *testing.T, g *gini.Gini, n expr.Node) {
	t.Helper()
	if lit, ok := n.Lit.(expr.Binary); ok {
		require.Equal(t, expr.OpOr, lit.Op)
		require.False(t, n.Negated())
		for _, c := range lit.Children {
			addClause(t, g, c)
		}
		return
	}
	v, ok := n.Lit.(expr.Var)
	require.True(t, ok, "clause literal %s is not a variable", n)
	lit := z.Var(uint32(v) + 1).Pos()
	if n.Negated() {
		lit = lit.Not()
	}
	g.Add(lit)
}

// The minimizer's output must agree with an off-the-shelf SAT solver:
// a formula is satisfiable exactly when its minimized CNF is.
func TestMinimizeAgreesWithSolver(t *testing.T) {
	gen := random.NewFromReader(rand.New(rand.NewSource(23)))
	for i := 0; i < 200; i++ {
		formula, err := gen.Formula(4, 18)
		require.NoError(t, err)
		tree := parse(t, formula)
		minimized := Minimize(tree)

		var solverSat bool
		if c, ok := minimized.Root.Lit.(expr.Const); ok {
			solverSat = bool(c) != minimized.Root.Negated()
		} else {
			g := gini.New()
			addClauses(t, g, minimized.Root)
			solverSat = g.Solve() == 1
		}
		assert.Equal(t, truthtable.Satisfiable(tree), solverSat, "formula %s minimized to %s", formula, minimized)
	}
}
