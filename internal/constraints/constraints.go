// Package constraints computes the five evaluation vectors that
// arithmetize the accumulator trace's correctness on the 4n domain. Each
// a_k is the evaluation, at every point of the 4n domain, of the k-th
// constraint polynomial; the quotient package later combines and divides
// these by the vanishing polynomial to produce the succinct proof.
package constraints

import (
	"github.com/consensys/gnark-crypto/ecc/bw6-761/fr"
)

// Inputs bundles the big-domain (4n) evaluations every constraint reads.
type Inputs struct {
	// PksX, PksY are the signer set's coordinates (x2, y2).
	PksXBig, PksYBig []fr.Element
	// AccX, AccY are the accumulator trace's coordinates (x1, y1).
	AccXBig, AccYBig []fr.Element
	// AccXShifted, AccYShifted are the accumulator's coordinates one row
	// ahead, i.e. the "next state" (x3, y3).
	AccXShiftedBig, AccYShiftedBig []fr.Element
	// Bit is the selection bitmask, 0/1-valued (B).
	BitBig []fr.Element

	// L1, Ln are the first- and last-row Lagrange basis polynomials,
	// evaluated on the 4n domain.
	L1, Ln []fr.Element
	// HX, HY are the complement point's coordinates, the expected value of
	// the accumulator at row 0.
	HX, HY fr.Element
	// APKPlusHX, APKPlusHY are the coordinates of acc[n-1] = h + apk, the
	// expected value of the accumulator at the last row.
	APKPlusHX, APKPlusHY fr.Element
}

// Vectors holds the five constraint evaluation vectors, each of length 4n.
// A proof is valid exactly when every vector is divisible by the vanishing
// polynomial of the small domain (A1, A2 after multiplying by the "skip
// last row" factor, per the quotient package).
type Vectors struct {
	A1, A2, A3, A4, A5 []fr.Element
}

// Build computes the five constraint vectors pointwise over the 4n domain.
// x1,y1 is the accumulator; x2,y2 the signer keys; x3,y3 the shifted
// accumulator (next row); B, nB the bitmask and its complement.
//
//	A1 = B*((x1-x2)^2*(x1+x2+x3) - (y2-y1)^2) + nB*(y3-y1)
//	A2 = B*((x1-x2)*(y3+y1) - (y2-y1)*(x3-x1)) + nB*(x3-x1)
//	A3 = B*nB
//	A4 = (x1-h_x)*L1 + (x1-apk_plus_h_x)*Ln
//	A5 = (y1-h_y)*L1 + (y1-apk_plus_h_y)*Ln
//
// A1, A2 enforce the conditional affine-addition law without an inversion,
// by cross-multiplying through the slope; A3 enforces bit-booleanity; A4,
// A5 stitch the two trace boundaries (acc[0]=h, acc[n-1]=h+apk) through the
// two Lagrange selectors so the verifier can re-derive apk from a single
// opening.
func Build(in Inputs) Vectors {
	n := len(in.BitBig)
	a1 := make([]fr.Element, n)
	a2 := make([]fr.Element, n)
	a3 := make([]fr.Element, n)
	a4 := make([]fr.Element, n)
	a5 := make([]fr.Element, n)

	var one fr.Element
	one.SetOne()

	for i := 0; i < n; i++ {
		b := in.BitBig[i]
		var nb fr.Element
		nb.Sub(&one, &b)

		x1, y1 := in.AccXBig[i], in.AccYBig[i]
		x2, y2 := in.PksXBig[i], in.PksYBig[i]
		x3, y3 := in.AccXShiftedBig[i], in.AccYShiftedBig[i]

		a3[i].Mul(&b, &nb)

		var xDiff, yDiff fr.Element
		xDiff.Sub(&x1, &x2)
		yDiff.Sub(&y2, &y1)

		var xDiffSq, xSum, lhs1, yDiffSq, term1 fr.Element
		xDiffSq.Square(&xDiff)
		xSum.Add(&x1, &x2)
		xSum.Add(&xSum, &x3)
		lhs1.Mul(&xDiffSq, &xSum)
		yDiffSq.Square(&yDiff)
		term1.Sub(&lhs1, &yDiffSq)

		var y3y1, xAddB, xAddNb fr.Element
		y3y1.Sub(&y3, &y1)
		xAddB.Mul(&b, &term1)
		xAddNb.Mul(&nb, &y3y1)
		a1[i].Add(&xAddB, &xAddNb)

		var y3PlusY1, lhs2, x3MinusX1, rhs2, term2 fr.Element
		y3PlusY1.Add(&y3, &y1)
		lhs2.Mul(&xDiff, &y3PlusY1)
		x3MinusX1.Sub(&x3, &x1)
		rhs2.Mul(&yDiff, &x3MinusX1)
		term2.Sub(&lhs2, &rhs2)

		var yAddB, yAddNb fr.Element
		yAddB.Mul(&b, &term2)
		yAddNb.Mul(&nb, &x3MinusX1)
		a2[i].Add(&yAddB, &yAddNb)

		var x1MinusHx, x1MinusApk, t4a, t4b fr.Element
		x1MinusHx.Sub(&x1, &in.HX)
		x1MinusApk.Sub(&x1, &in.APKPlusHX)
		t4a.Mul(&x1MinusHx, &in.L1[i])
		t4b.Mul(&x1MinusApk, &in.Ln[i])
		a4[i].Add(&t4a, &t4b)

		var y1MinusHy, y1MinusApk, t5a, t5b fr.Element
		y1MinusHy.Sub(&y1, &in.HY)
		y1MinusApk.Sub(&y1, &in.APKPlusHY)
		t5a.Mul(&y1MinusHy, &in.L1[i])
		t5b.Mul(&y1MinusApk, &in.Ln[i])
		a5[i].Add(&t5a, &t5b)
	}

	return Vectors{A1: a1, A2: a2, A3: a3, A4: a4, A5: a5}
}
