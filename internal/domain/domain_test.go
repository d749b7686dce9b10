package domain

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bw6-761/fr"
	"github.com/stretchr/testify/require"
)

// TestAmplifyPreservesEvaluations checks that evaluating a polynomial on the
// 4n domain and then re-interpolating via FromBigDomainEvals recovers the
// exact original coefficients, i.e. amplification is a lossless embedding of
// the small domain's function space into the big one.
func TestAmplifyPreservesEvaluations(t *testing.T) {
	const n = 8
	d := New(n)

	coeffs := make([]fr.Element, n)
	for i := range coeffs {
		coeffs[i].SetUint64(uint64(i + 1))
	}
	p := NewPolynomial(d, coeffs)

	big := p.EvaluateOnBigDomain()
	require.Len(t, big, 4*n)

	back := FromBigDomainEvals(d, big)
	require.Equal(t, 4*n, len(back.coeffs))
	// Coefficients above degree n-1 in the recovered poly must all be zero
	// since the original polynomial had degree < n.
	for i, c := range back.coeffs {
		if i < n {
			require.True(t, c.Equal(&coeffs[i]), "coefficient %d mismatch", i)
		} else {
			require.True(t, c.IsZero(), "coefficient %d should be zero", i)
		}
	}
}

// TestInterpolateRoundTrip checks Interpolate/Eval agree with the original
// evaluation vector at every domain point.
func TestInterpolateRoundTrip(t *testing.T) {
	const n = 16
	d := New(n)

	evals := make([]fr.Element, n)
	for i := range evals {
		evals[i].SetUint64(uint64(7*i + 3))
	}
	p := Interpolate(d, evals)

	for i := uint64(0); i < n; i++ {
		x := d.ElementAt(i)
		got := p.Eval(x)
		require.True(t, got.Equal(&evals[i]), "mismatch at row %d", i)
	}
}

// TestDivideByVanishingExact checks that a polynomial explicitly constructed
// as Z(X)*q(X), for an arbitrary q, divides exactly and recovers q.
func TestDivideByVanishingExact(t *testing.T) {
	const n = 8
	d := New(n)

	qCoeffs := make([]fr.Element, n)
	for i := range qCoeffs {
		qCoeffs[i].SetUint64(uint64(i*i + 1))
	}
	q := NewPolynomial(d, qCoeffs)

	// p = q * X^n - q
	shifted := make([]fr.Element, n+len(qCoeffs))
	copy(shifted[n:], qCoeffs)
	p := Sub(&Polynomial{domains: d, coeffs: shifted}, q)

	got, err := p.DivideByVanishing(n)
	require.NoError(t, err)
	require.Equal(t, len(qCoeffs), len(got.coeffs))
	for i := range qCoeffs {
		require.True(t, got.coeffs[i].Equal(&qCoeffs[i]), "coefficient %d mismatch", i)
	}
}

// TestDivideByVanishingRejectsNonMultiple checks a polynomial that does not
// vanish on the domain is rejected.
func TestDivideByVanishingRejectsNonMultiple(t *testing.T) {
	const n = 8
	d := New(n)

	coeffs := make([]fr.Element, n+1)
	for i := range coeffs {
		coeffs[i].SetUint64(uint64(i + 1))
	}
	p := NewPolynomial(d, coeffs)

	_, err := p.DivideByVanishing(n)
	require.Error(t, err)
}

// TestLagrangeBasisBoundaryValues checks L1 is 1 at row 0 and 0 at every
// other small-domain row (sampled via the big domain, since L1 itself is
// only stored in big-domain evaluation form); Ln analogously for row n-1.
func TestLagrangeBasisBoundaryValues(t *testing.T) {
	const n = 8
	d := New(n)

	l1Poly := FromBigDomainEvals(d, d.L1)
	lnPoly := FromBigDomainEvals(d, d.Ln)

	for i := uint64(0); i < n; i++ {
		x := d.ElementAt(i)
		v1 := l1Poly.Eval(x)
		vn := lnPoly.Eval(x)
		if i == 0 {
			require.True(t, v1.IsOne())
		} else {
			require.True(t, v1.IsZero())
		}
		if i == n-1 {
			require.True(t, vn.IsOne())
		} else {
			require.True(t, vn.IsZero())
		}
	}
}
