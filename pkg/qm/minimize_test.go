package qm

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formula-tools/boolkit/internal/random"
	"github.com/formula-tools/boolkit/pkg/expr"
	"github.com/formula-tools/boolkit/pkg/rewrite"
)

func parse(t *testing.T, s string) *expr.Tree {
	t.Helper()
	tree, err := expr.Parse(s)
	require.NoError(t, err)
	return tree
}

func TestMinimizeScenarios(t *testing.T) {
	for _, tt := range []struct {
		input string
		want  string
	}{
		{"AB&!", "A!B!|"},
		{"AB|!", "A!B!&"},
		{"AB|C&", "AB|C&"},
		{"AB&", "AB&"},
		{"A", "A"},
		{"A!", "A!"},
		{"AB>", "A!B|"},
		// Degenerate zero-sets.
		{"AA=", "1"},
		{"AA^", "0"},
		{"1", "1"},
		{"0", "0"},
		{"AA!|", "1"},
		{"AA!&", "0"},
	} {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, Minimize(parse(t, tt.input)).String())
		})
	}
}

func TestMinimizeIsCNF(t *testing.T) {
	gen := random.NewFromReader(rand.New(rand.NewSource(3)))
	for i := 0; i < 100; i++ {
		formula, err := gen.Formula(4, 20)
		require.NoError(t, err)
		out := Minimize(parse(t, formula))
		assert.True(t, rewrite.IsCNF(out), "minimize(%s) = %s is not in CNF", formula, out)
	}
}

// tablesMatch compares two trees over every assignment of the first
// tree's variables (the minimized tree never gains variables, but it
// may lose some).
func tablesMatch(t *testing.T, original, minimized *expr.Tree) bool {
	t.Helper()
	letters := original.Letters()
	n := len(letters)
	for i := 0; i < 1<<n; i++ {
		for j, letter := range letters {
			v := (i>>(n-j-1))&1 == 1
			original.Bind(letter, v)
			minimized.Bind(letter, v)
		}
		if original.Eval() != minimized.Eval() {
			return false
		}
	}
	return true
}

func TestMinimizePreservesTruthTable(t *testing.T) {
	gen := random.NewFromReader(rand.New(rand.NewSource(11)))
	for i := 0; i < 200; i++ {
		formula, err := gen.Formula(4, 20)
		require.NoError(t, err)
		tree := parse(t, formula)
		out := Minimize(tree)
		assert.True(t, tablesMatch(t, tree, out), "minimize(%s) = %s differs", formula, out)
	}
}

func literalCount(t *expr.Tree) int {
	return strings.Count(t.String(), "A") +
		strings.Count(t.String(), "B") +
		strings.Count(t.String(), "C") +
		strings.Count(t.String(), "D")
}

func TestMinimizeNotLargerThanNaiveCNF(t *testing.T) {
	gen := random.NewFromReader(rand.New(rand.NewSource(19)))
	for i := 0; i < 100; i++ {
		formula, err := gen.Formula(4, 16)
		require.NoError(t, err)
		tree := parse(t, formula)
		minimized := Minimize(tree)
		naive := rewrite.CNF(tree)
		assert.LessOrEqual(t, literalCount(minimized), literalCount(naive),
			"minimize(%s) = %s vs naive %s", formula, minimized, naive)
	}
}

func TestMinimizeFixedPoint(t *testing.T) {
	// Minimizing an already minimal CNF keeps its size.
	for _, input := range []string{"AB|C&", "A!B!|", "AB&"} {
		once := Minimize(parse(t, input))
		twice := Minimize(once)
		assert.Equal(t, once.String(), twice.String())
	}
}
