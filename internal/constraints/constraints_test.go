package constraints

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bw6-761/fr"
	"github.com/stretchr/testify/require"

	"github.com/lightclient-labs/apk-prover/innerpoint"
	"github.com/lightclient-labs/apk-prover/internal/domain"
)

// buildTrace constructs a valid accumulator trace over n rows for the given
// keys and bits, starting from h, and returns its coordinate arrays plus the
// boundary point acc[n-1] = h + apk.
func buildTrace(t *testing.T, n int, keys []innerpoint.Point, bits []bool, h innerpoint.Point) (accX, accY []fr.Element, last innerpoint.Point) {
	t.Helper()
	accX = make([]fr.Element, n)
	accY = make([]fr.Element, n)
	acc := h
	for i := 0; i < n; i++ {
		accX[i] = acc.X
		accY[i] = acc.Y
		if bits[i] {
			acc = acc.Add(keys[i])
		}
	}
	return accX, accY, acc
}

// TestConstraintsVanishOnDomain checks Property 4: for a valid trace, A3,
// A4, A5 are divisible by Z(X) = X^n-1 outright, and A1, A2 are divisible
// by Z after the "skip last row" factor (X - omega^{n-1}).
func TestConstraintsVanishOnDomain(t *testing.T) {
	const n = 16
	const numSigners = 5

	d := domain.New(n)
	h := innerpoint.Complement()
	keys := innerpoint.Generators(numSigners)

	padded := make([]innerpoint.Point, n)
	bits := make([]bool, n)
	for i := range padded {
		if i < numSigners {
			padded[i] = keys[i]
			bits[i] = i%2 == 0 // arbitrary non-trivial, non-empty mask
		} else {
			padded[i] = h
		}
	}

	pksX := make([]fr.Element, n)
	pksY := make([]fr.Element, n)
	for i, p := range padded {
		pksX[i] = p.X
		pksY[i] = p.Y
	}
	pksXBig := domain.Interpolate(d, pksX).EvaluateOnBigDomain()
	pksYBig := domain.Interpolate(d, pksY).EvaluateOnBigDomain()

	accX, accY, last := buildTrace(t, n, padded, bits, h)
	bit := make([]fr.Element, n)
	for i, b := range bits {
		if b {
			bit[i].SetOne()
		}
	}

	accXPoly := domain.Interpolate(d, accX)
	accYPoly := domain.Interpolate(d, accY)
	bitPoly := domain.Interpolate(d, bit)

	accXBig := accXPoly.EvaluateOnBigDomain()
	accYBig := accYPoly.EvaluateOnBigDomain()
	bitBig := bitPoly.EvaluateOnBigDomain()

	accXShiftedBig := rotate(accXBig, 4)
	accYShiftedBig := rotate(accYBig, 4)

	in := Inputs{
		PksXBig:        pksXBig,
		PksYBig:        pksYBig,
		AccXBig:        accXBig,
		AccYBig:        accYBig,
		AccXShiftedBig: accXShiftedBig,
		AccYShiftedBig: accYShiftedBig,
		BitBig:         bitBig,
		L1:             d.L1,
		Ln:             d.Ln,
		HX:             h.X,
		HY:             h.Y,
		APKPlusHX:      last.X,
		APKPlusHY:      last.Y,
	}
	v := Build(in)

	pts := d.BigDomainPoints()
	omegaNm1 := d.ElementAt(n - 1)
	skip := make([]fr.Element, len(pts))
	for i := range skip {
		skip[i].Sub(&pts[i], &omegaNm1)
	}

	requireVanishes(t, d, mulPointwise(v.A1, skip), "A1")
	requireVanishes(t, d, mulPointwise(v.A2, skip), "A2")
	requireVanishes(t, d, v.A3, "A3")
	requireVanishes(t, d, v.A4, "A4")
	requireVanishes(t, d, v.A5, "A5")
}

func requireVanishes(t *testing.T, d *domain.Domains, evalsBig []fr.Element, name string) {
	t.Helper()
	p := domain.FromBigDomainEvals(d, evalsBig)
	_, err := p.DivideByVanishing(d.Size)
	require.NoError(t, err, "constraint %s does not vanish on the domain", name)
}

func mulPointwise(a, b []fr.Element) []fr.Element {
	out := make([]fr.Element, len(a))
	for i := range out {
		out[i].Mul(&a[i], &b[i])
	}
	return out
}

func rotate(evals []fr.Element, k int) []fr.Element {
	n := len(evals)
	out := make([]fr.Element, n)
	for i := 0; i < n; i++ {
		out[i] = evals[(i+k)%n]
	}
	return out
}
