// Package quotient combines the five constraint vectors with a
// Fiat-Shamir-derived batching challenge and divides the result by the
// small domain's vanishing polynomial, producing the quotient polynomial
// the prover commits to.
package quotient

import (
	"github.com/consensys/gnark-crypto/ecc/bw6-761/fr"

	"github.com/lightclient-labs/apk-prover/internal/constraints"
	"github.com/lightclient-labs/apk-prover/internal/domain"
)

// Combine folds the five constraint vectors into one, on the 4n domain,
// using powers of phi: A1 + phi*A2 + phi^2*A3 + phi^3*A4 + phi^4*A5.
//
// A1 and A2 are first multiplied pointwise by (X - omega^{n-1}) big-domain
// evaluations supplied by the caller ("skip last row"): the addition-law
// identities only need to hold for rows 0..n-2, since row n-1 never has a
// "next" row inside the domain (the trace's conceptual successor of row
// n-1 is outside it). A3, A4 and A5 hold unconditionally on every row and
// are combined as-is.
func Combine(v constraints.Vectors, skipLastRowBig []fr.Element, phi fr.Element) []fr.Element {
	n := len(v.A1)
	combined := make([]fr.Element, n)

	var phi2, phi3, phi4 fr.Element
	phi2.Square(&phi)
	phi3.Mul(&phi2, &phi)
	phi4.Mul(&phi3, &phi)

	for i := 0; i < n; i++ {
		var a1s, a2s fr.Element
		a1s.Mul(&v.A1[i], &skipLastRowBig[i])
		a2s.Mul(&v.A2[i], &skipLastRowBig[i])

		var t2, t3, t4, t5, acc fr.Element
		t2.Mul(&phi, &a2s)
		t3.Mul(&phi2, &v.A3[i])
		t4.Mul(&phi3, &v.A4[i])
		t5.Mul(&phi4, &v.A5[i])

		acc.Add(&a1s, &t2)
		acc.Add(&acc, &t3)
		acc.Add(&acc, &t4)
		acc.Add(&acc, &t5)
		combined[i] = acc
	}
	return combined
}

// Divide interpolates the combined big-domain evaluations into coefficient
// form and divides by the vanishing polynomial Z(X) = X^n - 1, returning the
// quotient polynomial. It returns an error (via Polynomial.DivideByVanishing)
// if the combined vector is not exactly divisible, which indicates either a
// broken precondition (malformed trace) or a bug in Combine.
func Divide(d *domain.Domains, combinedBig []fr.Element) (*domain.Polynomial, error) {
	full := domain.FromBigDomainEvals(d, combinedBig)
	return full.DivideByVanishing(d.Size)
}

// SkipLastRowBig evaluates (X - omega^{n-1}) at every point of the 4n
// domain.
func SkipLastRowBig(d *domain.Domains, bigDomainPoints []fr.Element) []fr.Element {
	omegaNm1 := d.ElementAt(d.Size - 1)
	out := make([]fr.Element, len(bigDomainPoints))
	for i := range out {
		out[i].Sub(&bigDomainPoints[i], &omegaNm1)
	}
	return out
}
