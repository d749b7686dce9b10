// Package innerpoint implements the inner curve's (BLS12-377 G1) affine
// short-Weierstrass addition law directly over the outer KZG scheme's scalar
// field. By construction of the BLS12-377/BW6-761 curve cycle, BLS12-377's
// base field and BW6-761's scalar field are the same field, so a public key's
// (x, y) coordinates are themselves elements of F and every addition the
// accumulator builder performs is already an F-arithmetic statement — the
// same one the constraint engine's a1/a2 polynomials encode.
package innerpoint

import (
	"crypto/sha256"
	"encoding/binary"

	fr "github.com/consensys/gnark-crypto/ecc/bw6-761/fr"
)

// Point is an affine point of the inner curve, or the identity marker used
// only transiently; the protocol never actually needs to represent the
// point at infinity since h and the accumulator trace are constructed to
// avoid it (see package apk's invariant checks).
type Point struct {
	X, Y fr.Element
}

// curveB is BLS12-377 G1's short-Weierstrass b coefficient: y^2 = x^3 + 1 (a = 0).
var curveB = newFrOne()

func newFrOne() fr.Element {
	var one fr.Element
	one.SetOne()
	return one
}

// IsOnCurve reports whether p satisfies y^2 = x^3 + b.
func (p Point) IsOnCurve() bool {
	var lhs, rhs, x2 fr.Element
	lhs.Square(&p.Y)
	x2.Square(&p.X)
	rhs.Mul(&x2, &p.X)
	rhs.Add(&rhs, &curveB)
	return lhs.Equal(&rhs)
}

// Neg returns -p.
func (p Point) Neg() Point {
	var negY fr.Element
	negY.Neg(&p.Y)
	return Point{X: p.X, Y: negY}
}

// Add computes p+q via the affine short-Weierstrass addition law.
//
// The protocol guarantees (accumulator trace invariant: no two consecutive
// trace points share an x-coordinate) that Add is never called on points
// with equal x-coordinates, so the doubling and point-at-infinity
// exceptional cases are deliberately not handled here; hitting them is a
// broken precondition upstream, not a recoverable error.
func (p Point) Add(q Point) Point {
	var lambda, xDiff, yDiff fr.Element
	xDiff.Sub(&q.X, &p.X)
	if xDiff.IsZero() {
		panic("innerpoint: Add called on points with equal x-coordinates")
	}
	yDiff.Sub(&q.Y, &p.Y)
	lambda.Div(&yDiff, &xDiff)

	var lambdaSq, x3, y3 fr.Element
	lambdaSq.Square(&lambda)
	x3.Sub(&lambdaSq, &p.X)
	x3.Sub(&x3, &q.X)
	y3.Sub(&p.X, &x3)
	y3.Mul(&y3, &lambda)
	y3.Sub(&y3, &p.Y)
	return Point{X: x3, Y: y3}
}

// complement is the fixed, publicly-known point h with no known discrete-log
// relation to the signer set, computed once by deterministic hash-to-curve.
var complement = fromSeed([]byte("apk-prover/g1-complement/v1"))

// Complement returns h, the system-wide accumulator seed.
func Complement() Point { return complement }

// fromSeed deterministically derives a point on the curve from seed using
// try-and-increment hashing: hash the seed (plus a counter) to a candidate
// x-coordinate, accept it once x^3+b is a quadratic residue.
func fromSeed(seed []byte) Point {
	for ctr := uint64(0); ; ctr++ {
		var x fr.Element
		x.SetBytes(hashCounter(seed, ctr))

		var rhs, x2 fr.Element
		x2.Square(&x)
		rhs.Mul(&x2, &x)
		rhs.Add(&rhs, &curveB)

		var y fr.Element
		if y.Sqrt(&rhs) != nil {
			return Point{X: x, Y: y}
		}
	}
}

func hashCounter(seed []byte, ctr uint64) []byte {
	h := sha256.New()
	h.Write(seed)
	var ctrBytes [8]byte
	binary.BigEndian.PutUint64(ctrBytes[:], ctr)
	h.Write(ctrBytes[:])
	return h.Sum(nil)
}

// Generators deterministically derives n distinct points on the curve,
// unrelated to Complement, for use as a synthetic signer set in tests.
func Generators(n int) []Point {
	pts := make([]Point, n)
	for i := 0; i < n; i++ {
		var idx [8]byte
		binary.BigEndian.PutUint64(idx[:], uint64(i))
		pts[i] = fromSeed(append([]byte("apk-prover/test-signer/v1/"), idx[:]...))
	}
	return pts
}
