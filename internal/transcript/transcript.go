// Package transcript wraps gnark-crypto's Fiat-Shamir transcript with the
// fixed absorption order this protocol needs: bind the protocol parameters
// and signer-set commitment once at construction time ("preprocessing"),
// then bind each round's commitments before deriving that round's
// challenge.
package transcript

import (
	"hash"

	"golang.org/x/crypto/blake2b"

	fiatshamir "github.com/consensys/gnark-crypto/fiat-shamir"

	"github.com/consensys/gnark-crypto/ecc/bw6-761/fr"
)

const (
	labelPhi  = "phi"
	labelZeta = "zeta"
	labelNu   = "nu"
)

// Transcript accumulates the prover's Fiat-Shamir state for a single proof.
type Transcript struct {
	fs *fiatshamir.Transcript

	preprocessing []byte
}

// New creates a transcript pre-bound with the protocol parameters' and
// signer set's canonical byte encodings (preprocessing), ready to absorb,
// in order: the public input (claimed apk, bitmask); the three
// trace-polynomial commitments, before deriving phi; the quotient
// commitment, before deriving zeta; then the evaluations, before deriving
// nu.
func New(paramsEncoded []byte, signerSetCommitment []byte) *Transcript {
	t := &Transcript{}
	t.preprocessing = append(append([]byte{}, paramsEncoded...), signerSetCommitment...)
	t.fs = freshTranscript()
	t.fs.Bind(labelPhi, t.preprocessing)
	return t
}

func freshTranscript() *fiatshamir.Transcript {
	return fiatshamir.NewTranscript(newHasher(), labelPhi, labelZeta, labelNu)
}

func newHasher() hash.Hash {
	h, _ := blake2b.New256(nil)
	return h
}

// BindPublicInput absorbs the claimed aggregate public key and the raw
// bitmask bytes as public input, after preprocessing and before round 1's
// trace commitments.
func (t *Transcript) BindPublicInput(apkX, apkY, bitmaskBytes []byte) {
	t.fs.Bind(labelPhi, apkX)
	t.fs.Bind(labelPhi, apkY)
	t.fs.Bind(labelPhi, bitmaskBytes)
}

// BindTraceCommitments absorbs the three committed trace polynomials ahead
// of phi.
func (t *Transcript) BindTraceCommitments(digests ...[]byte) {
	for _, d := range digests {
		t.fs.Bind(labelPhi, d)
	}
}

// ComputePhi derives the constraint-batching challenge.
func (t *Transcript) ComputePhi() (fr.Element, error) {
	return t.challenge(labelPhi)
}

// BindQuotientCommitment absorbs the quotient polynomial's commitment ahead
// of zeta.
func (t *Transcript) BindQuotientCommitment(data []byte) {
	t.fs.Bind(labelZeta, data)
}

// ComputeZeta derives the evaluation-point challenge.
func (t *Transcript) ComputeZeta() (fr.Element, error) {
	return t.challenge(labelZeta)
}

// BindEvaluations absorbs the claimed evaluations at zeta and zeta*omega
// ahead of nu.
func (t *Transcript) BindEvaluations(evalsEncoded ...[]byte) {
	for _, e := range evalsEncoded {
		t.fs.Bind(labelNu, e)
	}
}

// ComputeNu derives nu, the last challenge, drawn after the evaluations.
func (t *Transcript) ComputeNu() (fr.Element, error) {
	return t.challenge(labelNu)
}

func (t *Transcript) challenge(label string) (fr.Element, error) {
	b, err := t.fs.ComputeChallenge(label)
	if err != nil {
		return fr.Element{}, err
	}
	var x fr.Element
	x.SetBytes(b)
	return x, nil
}
