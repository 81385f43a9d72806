package mathsolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolveBasicArithmetic(t *testing.T) {
	e := NewEvaluator()

	out, ok := e.Solve("what is 2+2")
	require.True(t, ok)
	assert.Equal(t, "2+2 = 4", out)

	out, ok = e.Solve("can you do 3 * (4 + 5) for me")
	require.True(t, ok)
	assert.Equal(t, "3 * (4 + 5) = 27", out)

	out, ok = e.Solve("whats 10/4")
	require.True(t, ok)
	assert.Equal(t, "10/4 = 2.5", out)
}

func TestSolvePrecedence(t *testing.T) {
	e := NewEvaluator()
	out, ok := e.Solve("2+3*4")
	require.True(t, ok)
	assert.Equal(t, "2+3*4 = 14", out)
}

func TestSolveNegativeNumbers(t *testing.T) {
	e := NewEvaluator()
	out, ok := e.Solve("-5 + 3")
	require.True(t, ok)
	assert.Equal(t, "-5 + 3 = -2", out)
}

func TestSolveRejectsNonMath(t *testing.T) {
	e := NewEvaluator()

	_, ok := e.Solve("hey how are you")
	assert.False(t, ok)

	_, ok = e.Solve("i got a 1600 on the sat")
	assert.False(t, ok, "a bare number is not an expression")

	_, ok = e.Solve("1/0 is undefined right")
	assert.False(t, ok, "division by zero is not solvable")

	_, ok = e.Solve("(2+3")
	assert.False(t, ok, "unbalanced parens")
}
