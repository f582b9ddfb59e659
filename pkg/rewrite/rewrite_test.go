package rewrite

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formula-tools/boolkit/internal/random"
	"github.com/formula-tools/boolkit/pkg/expr"
)

func parse(t *testing.T, s string) *expr.Tree {
	t.Helper()
	tree, err := expr.Parse(s)
	require.NoError(t, err)
	return tree
}

func TestNNFRules(t *testing.T) {
	for _, tt := range []struct {
		input string
		want  string
	}{
		{"AB>", "A!B|"},
		{"AB=", "AB&A!B!&|"},
		{"AB^", "AB!&A!B&|"},
		{"AB&!", "A!B!|"},
		{"AB|!", "A!B!&"},
		{"A!!", "A"},
		{"A!!!", "A!"},
		{"AB&C|!", "A!B!|C!&"},
		{"0!", "1"},
		{"1!", "0"},
	} {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, NNF(parse(t, tt.input)).String())
		})
	}
}

func isNNF(n expr.Node) bool {
	switch lit := n.Lit.(type) {
	case expr.Const, expr.Var:
		return true
	case expr.Binary:
		if n.Not > 0 || (lit.Op != expr.OpAnd && lit.Op != expr.OpOr) {
			return false
		}
		for _, c := range lit.Children {
			if !isNNF(c) {
				return false
			}
		}
		return true
	}
	return false
}

func TestSimplify(t *testing.T) {
	for _, tt := range []struct {
		input string
		want  string
	}{
		{"A0&", "0"},
		{"A1&", "A"},
		{"A0|", "A"},
		{"A1|", "1"},
		{"A0^", "A"},
		{"A1^", "A!"},
		{"A1>", "1"},
		{"0A>", "1"},
		{"1A>", "A"},
		{"A0>", "A!"},
		{"A1=", "A"},
		{"A0=", "A!"},
		{"AA&", "A"},
		{"AA|", "A"},
		{"AA^", "0"},
		{"AA=", "1"},
		{"AA>", "1"},
		{"AA!&", "0"},
		{"AA!|", "1"},
		{"AB&BA&|", "AB&"},
		{"AB&C&D&", "ABCD&&&"},
		{"AB|C|", "ABC||"},
		{"10&A|", "A"},
		{"A!!", "A"},
	} {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, Simplify(parse(t, tt.input)).String())
		})
	}
}

func TestCNFForm(t *testing.T) {
	for _, input := range []string{
		"AB&!",
		"AB|!",
		"AB^",
		"AB=",
		"AB>",
		"AB|C&D^",
		"ABC^^",
		"AB&CD&|",
	} {
		t.Run(input, func(t *testing.T) {
			out := CNF(parse(t, input))
			assert.True(t, IsCNF(out), "not in CNF: %s", out)
		})
	}
}

// Simplify flattens nested conjunctions and disjunctions, so CNF has
// to distribute across nodes wider than two operands.
func TestCNFOnFlattenedNodes(t *testing.T) {
	for _, input := range []string{
		"AB|C|",
		"AB|C|D|",
		"AB&C|D|",
		"AB&C&D&",
		"AB&CD&|C|",
	} {
		t.Run(input, func(t *testing.T) {
			tree := parse(t, input)
			out := CNF(Simplify(tree))
			assert.True(t, IsCNF(out), "not in CNF: %s", out)
			assert.True(t, equivalent(t, tree, out), "cnf(simplify(%s)) = %s differs", input, out)
		})
	}
}

// assignments enumerates every binding of the union of both trees'
// variables and checks that the trees agree.
func equivalent(t *testing.T, a, b *expr.Tree) bool {
	t.Helper()
	letters := a.Letters()
	for _, l := range b.Letters() {
		found := false
		for _, k := range letters {
			if k == l {
				found = true
			}
		}
		if !found {
			letters = append(letters, l)
		}
	}
	n := len(letters)
	for i := 0; i < 1<<n; i++ {
		for j, letter := range letters {
			v := (i>>(n-j-1))&1 == 1
			a.Bind(letter, v)
			b.Bind(letter, v)
		}
		if a.Eval() != b.Eval() {
			return false
		}
	}
	return true
}

func TestRewritersPreserveSemantics(t *testing.T) {
	gen := random.NewFromReader(rand.New(rand.NewSource(42)))
	for i := 0; i < 200; i++ {
		formula, err := gen.Formula(3, 16)
		require.NoError(t, err)
		tree := parse(t, formula)

		nnf := NNF(tree)
		assert.True(t, isNNF(nnf.Root), "nnf(%s) = %s is not in NNF", formula, nnf)
		assert.True(t, equivalent(t, tree, nnf), "nnf(%s) = %s differs", formula, nnf)

		cnf := CNF(tree)
		assert.True(t, IsCNF(cnf), "cnf(%s) = %s is not in CNF", formula, cnf)
		assert.True(t, equivalent(t, tree, cnf), "cnf(%s) = %s differs", formula, cnf)

		simplified := Simplify(tree)
		assert.True(t, equivalent(t, tree, simplified), "simplify(%s) = %s differs", formula, simplified)

		composed := CNF(simplified)
		assert.True(t, IsCNF(composed), "cnf(simplify(%s)) = %s is not in CNF", formula, composed)
		assert.True(t, equivalent(t, tree, composed), "cnf(simplify(%s)) = %s differs", formula, composed)
	}
}
