package innerpoint

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComplementIsOnCurve(t *testing.T) {
	require.True(t, Complement().IsOnCurve())
}

func TestGeneratorsAreOnCurveAndDistinct(t *testing.T) {
	pts := Generators(8)
	seen := map[string]bool{}
	for _, p := range pts {
		require.True(t, p.IsOnCurve())
		key := p.X.String()
		require.False(t, seen[key], "duplicate generator x-coordinate")
		seen[key] = true
	}
}

func TestAddIsCommutativeAndOnCurve(t *testing.T) {
	pts := Generators(2)
	a, b := pts[0], pts[1]
	sum1 := a.Add(b)
	sum2 := b.Add(a)
	require.True(t, sum1.X.Equal(&sum2.X))
	require.True(t, sum1.Y.Equal(&sum2.Y))
	require.True(t, sum1.IsOnCurve())
}

func TestNegSharesXCoordinate(t *testing.T) {
	a := Generators(1)[0]
	neg := a.Neg()
	require.True(t, neg.IsOnCurve())
	require.True(t, a.X.Equal(&neg.X))
	require.False(t, a.Y.Equal(&neg.Y))
}

func TestAddAssociative(t *testing.T) {
	pts := Generators(3)
	a, b, c := pts[0], pts[1], pts[2]
	left := a.Add(b).Add(c)
	right := a.Add(b.Add(c))
	require.True(t, left.X.Equal(&right.X))
	require.True(t, left.Y.Equal(&right.Y))
}
