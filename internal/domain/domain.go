// Package domain provides the evaluation-domain machinery the prover builds
// on: an FFT domain of size n and its 4n-point amplification, plus the dense
// polynomial helpers (interpolation, evaluation, vanishing-polynomial
// division) the constraint and quotient stages share.
//
// The 4n domain exists because the five constraint polynomials are products
// of degree up to four polynomials each of degree <= n-1: evaluating on n
// points alone would alias the product. Evaluating coefficients on 4n points
// instead, multiplying pointwise, and only moving back to coefficient form
// once (for the quotient) avoids ever materializing a degree-4(n-1)
// polynomial in coefficient form during the constraint stage.
package domain

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bw6-761/fr"
	"github.com/consensys/gnark-crypto/ecc/bw6-761/fr/fft"

	"github.com/lightclient-labs/apk-prover/apkerr"
)

// Domains holds the size-n domain and its 4n amplification, and the two
// Lagrange basis polynomials (evaluated on the 4n domain) the constraint
// engine needs to select the first and last rows of the trace.
type Domains struct {
	Size uint64

	small *fft.Domain
	big   *fft.Domain

	// L1 is the Lagrange basis polynomial for index 0 of the small domain,
	// evaluated at every point of the 4n domain.
	L1 []fr.Element
	// Ln is the Lagrange basis polynomial for index n-1 of the small domain,
	// evaluated at every point of the 4n domain.
	Ln []fr.Element
}

// New builds the domain pair for a size-n evaluation domain. n must be a
// power of two; the caller (config.Params.Validate) is expected to have
// already checked this.
func New(n uint64) *Domains {
	small := fft.NewDomain(n, fft.WithoutPrecompute())
	big := fft.NewDomain(4*n, fft.WithoutPrecompute())

	d := &Domains{Size: n, small: small, big: big}
	d.L1 = d.lagrangeBasisOnBigDomain(0)
	d.Ln = d.lagrangeBasisOnBigDomain(n - 1)
	return d
}

// Generator returns the small domain's generator omega.
func (d *Domains) Generator() fr.Element { return d.small.Generator }

// GeneratorInv returns omega^-1.
func (d *Domains) GeneratorInv() fr.Element { return d.small.GeneratorInv }

// BigDomainPoints returns the 4n-th roots of unity used as the big domain,
// in natural (not bit-reversed) order.
func (d *Domains) BigDomainPoints() []fr.Element {
	pts := make([]fr.Element, 4*d.Size)
	pts[0].SetOne()
	for i := uint64(1); i < 4*d.Size; i++ {
		pts[i].Mul(&pts[i-1], &d.big.Generator)
	}
	return pts
}

// ElementAt returns omega^i, the i-th point of the small domain.
func (d *Domains) ElementAt(i uint64) fr.Element {
	var x fr.Element
	x.Exp(d.small.Generator, new(big.Int).SetUint64(i))
	return x
}

// lagrangeBasisOnBigDomain evaluates L_idx, the unique degree-(n-1)
// polynomial that is 1 at omega^idx and 0 at every other small-domain point,
// on all 4n points of the big domain.
func (d *Domains) lagrangeBasisOnBigDomain(idx uint64) []fr.Element {
	coeffs := make([]fr.Element, d.Size)
	coeffs[idx].SetOne()
	d.small.FFTInverse(coeffs, fft.DIF)
	fft.BitReverse(coeffs)
	return d.amplifyToBigDomain(coeffs)
}

// amplifyToBigDomain zero-pads a size-n coefficient vector to size 4n and
// evaluates it on the big domain, returning bit-reversal-corrected natural
// order evaluations.
func (d *Domains) amplifyToBigDomain(coeffs []fr.Element) []fr.Element {
	padded := make([]fr.Element, 4*d.Size)
	copy(padded, coeffs)
	d.big.FFT(padded, fft.DIF)
	fft.BitReverse(padded)
	return padded
}

// Polynomial is a dense coefficient-form polynomial over F, coeffs[i] being
// the coefficient of X^i.
type Polynomial struct {
	domains *Domains
	coeffs  []fr.Element
}

// NewPolynomial wraps coeffs without copying.
func NewPolynomial(d *Domains, coeffs []fr.Element) *Polynomial {
	return &Polynomial{domains: d, coeffs: coeffs}
}

// Interpolate builds the unique degree-(n-1) polynomial agreeing with evals
// (given in natural, not bit-reversed, order) on the small domain.
func Interpolate(d *Domains, evals []fr.Element) *Polynomial {
	coeffs := make([]fr.Element, len(evals))
	copy(coeffs, evals)
	fft.BitReverse(coeffs)
	d.small.FFTInverse(coeffs, fft.DIT)
	return &Polynomial{domains: d, coeffs: coeffs}
}

// Coeffs returns the underlying coefficient slice; callers must not mutate it.
func (p *Polynomial) Coeffs() []fr.Element { return p.coeffs }

// Degree returns the coefficient count minus one; callers should not rely on
// the leading coefficient being nonzero (it never is trimmed here).
func (p *Polynomial) Degree() int { return len(p.coeffs) - 1 }

// EvaluateOnBigDomain returns p's evaluations at all 4n points of the big
// domain, in natural order.
func (p *Polynomial) EvaluateOnBigDomain() []fr.Element {
	return p.domains.amplifyToBigDomain(p.coeffs)
}

// Eval evaluates p at an arbitrary point x via Horner's method.
func (p *Polynomial) Eval(x fr.Element) fr.Element {
	var acc fr.Element
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		acc.Mul(&acc, &x)
		acc.Add(&acc, &p.coeffs[i])
	}
	return acc
}

// FromBigDomainEvals interpolates a polynomial of degree up to 4n-1 from its
// evaluations on the big domain (natural order).
func FromBigDomainEvals(d *Domains, evals []fr.Element) *Polynomial {
	coeffs := make([]fr.Element, len(evals))
	copy(coeffs, evals)
	fft.BitReverse(coeffs)
	d.big.FFTInverse(coeffs, fft.DIT)
	return &Polynomial{domains: d, coeffs: coeffs}
}

// Add returns p+q, coefficient-wise, padding the shorter operand with zeros.
func Add(p, q *Polynomial) *Polynomial {
	n := len(p.coeffs)
	if len(q.coeffs) > n {
		n = len(q.coeffs)
	}
	out := make([]fr.Element, n)
	for i := range out {
		var a, b fr.Element
		if i < len(p.coeffs) {
			a = p.coeffs[i]
		}
		if i < len(q.coeffs) {
			b = q.coeffs[i]
		}
		out[i].Add(&a, &b)
	}
	return &Polynomial{domains: p.domains, coeffs: out}
}

// Sub returns p-q.
func Sub(p, q *Polynomial) *Polynomial {
	n := len(p.coeffs)
	if len(q.coeffs) > n {
		n = len(q.coeffs)
	}
	out := make([]fr.Element, n)
	for i := range out {
		var a, b fr.Element
		if i < len(p.coeffs) {
			a = p.coeffs[i]
		}
		if i < len(q.coeffs) {
			b = q.coeffs[i]
		}
		out[i].Sub(&a, &b)
	}
	return &Polynomial{domains: p.domains, coeffs: out}
}

// Scale returns c*p.
func (p *Polynomial) Scale(c fr.Element) *Polynomial {
	out := make([]fr.Element, len(p.coeffs))
	for i := range out {
		out[i].Mul(&p.coeffs[i], &c)
	}
	return &Polynomial{domains: p.domains, coeffs: out}
}

// MulByX returns X*p (shift coefficients up by one degree).
func (p *Polynomial) MulByX() *Polynomial {
	out := make([]fr.Element, len(p.coeffs)+1)
	copy(out[1:], p.coeffs)
	return &Polynomial{domains: p.domains, coeffs: out}
}

// DivideByVanishing divides p by Z(X) = X^n - 1 using the synthetic
// division identity valid whenever p is exactly divisible: writing
// p = sum c_i X^i, the quotient's coefficients satisfy q_i = c_{i+n} + q_{i+n}
// (computed top-down), and p must have all coefficients below degree n equal
// to the negation of q's wrap-around contribution, i.e. this only produces a
// correct quotient when p vanishes on the whole small domain. Returns an
// error if p does not evenly divide, i.e. the final remainder is nonzero.
func (p *Polynomial) DivideByVanishing(n uint64) (*Polynomial, error) {
	deg := len(p.coeffs)
	if uint64(deg) <= n {
		if isZero(p.coeffs) {
			return &Polynomial{domains: p.domains, coeffs: []fr.Element{}}, nil
		}
		return nil, apkerr.Invariantf("polynomial of degree < domain size is not divisible by the vanishing polynomial")
	}
	qLen := deg - int(n)
	q := make([]fr.Element, qLen)
	rem := make([]fr.Element, deg)
	copy(rem, p.coeffs)

	for i := deg - 1; i >= int(n); i-- {
		c := rem[i]
		if c.IsZero() {
			continue
		}
		q[i-int(n)] = c
		rem[i-int(n)].Add(&rem[i-int(n)], &c)
		rem[i] = fr.Element{}
	}
	for i := 0; i < int(n); i++ {
		if !rem[i].IsZero() {
			return nil, apkerr.Invariantf("non-zero remainder dividing by vanishing polynomial at coefficient %d", i)
		}
	}
	return &Polynomial{domains: p.domains, coeffs: q}, nil
}

func isZero(coeffs []fr.Element) bool {
	for i := range coeffs {
		if !coeffs[i].IsZero() {
			return false
		}
	}
	return true
}
