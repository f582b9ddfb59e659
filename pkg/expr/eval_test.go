package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func evalConst(t *testing.T, s string) bool {
	t.Helper()
	tree, err := Parse(s)
	require.NoError(t, err)
	return tree.Eval()
}

func TestEvalConstants(t *testing.T) {
	for _, tt := range []struct {
		input string
		want  bool
	}{
		{"0", false},
		{"1", true},
		{"1!", false},
		{"0!", true},
		{"1!!", true},
		{"11&", true},
		{"10&", false},
		{"10|", true},
		{"01|", true},
		{"00|", false},
		{"10^", true},
		{"11^", false},
		{"10>", false},
		{"01>", true},
		{"11>", true},
		{"10=", false},
		{"11=", true},
		{"1011||=", true},
		{"111&!!!1|01=|=11>^0|0!1^11>1|0>1^>10^1|>10^>^", true},
	} {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, evalConst(t, tt.input))
		})
	}
}

func TestEvalBindings(t *testing.T) {
	tree, err := Parse("AB&")
	require.NoError(t, err)
	for _, tt := range []struct {
		a, b, want bool
	}{
		{false, false, false},
		{false, true, false},
		{true, false, false},
		{true, true, true},
	} {
		tree.Bind('A', tt.a)
		tree.Bind('B', tt.b)
		assert.Equal(t, tt.want, tree.Eval())
	}
}

func TestEvalSharedCells(t *testing.T) {
	// Both occurrences of A must read the same cell.
	tree, err := Parse("AA=")
	require.NoError(t, err)
	tree.Bind('A', false)
	assert.True(t, tree.Eval())
	tree.Bind('A', true)
	assert.True(t, tree.Eval())
}

func TestEvalFlattenedNode(t *testing.T) {
	// Wider operator nodes fold left to right.
	n := NewBinary(OpAnd, NewConst(true), NewConst(true), NewConst(false))
	assert.False(t, New(n).Eval())
	n = NewBinary(OpOr, NewConst(false), NewConst(false), NewConst(true))
	assert.True(t, New(n).Eval())
}

func TestEqualAndComplementary(t *testing.T) {
	a, err := Parse("AB&")
	require.NoError(t, err)
	b, err := Parse("BA&")
	require.NoError(t, err)
	assert.True(t, Equal(a.Root, b.Root))

	impl1, err := Parse("AB>")
	require.NoError(t, err)
	impl2, err := Parse("BA>")
	require.NoError(t, err)
	assert.False(t, Equal(impl1.Root, impl2.Root))

	pos, err := Parse("A")
	require.NoError(t, err)
	neg, err := Parse("A!")
	require.NoError(t, err)
	tripleNeg, err := Parse("A!!!")
	require.NoError(t, err)
	assert.True(t, Complementary(pos.Root, neg.Root))
	assert.False(t, Complementary(neg.Root, tripleNeg.Root))
	assert.True(t, Equal(neg.Root, tripleNeg.Root))
}
