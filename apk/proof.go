package apk

import (
	"github.com/consensys/gnark-crypto/ecc/bw6-761/fr"
	"github.com/consensys/gnark-crypto/ecc/bw6-761/kzg"
)

// Proof is a succinct accountable-APK proof: commitments to the bitmask and
// accumulator trace, a commitment to the quotient polynomial, the claimed
// evaluations at the Fiat-Shamir challenge point zeta (and, for the
// accumulator's coordinates, at zeta*omega), and two batched KZG opening
// proofs backing those evaluations.
type Proof struct {
	BitmaskCommitment  kzg.Digest
	AccXCommitment     kzg.Digest
	AccYCommitment     kzg.Digest
	QuotientCommitment kzg.Digest

	Zeta fr.Element

	// Evaluations, in the protocol's canonical absorption order.
	BitEval         fr.Element
	PksXEval        fr.Element
	PksYEval        fr.Element
	AccXEval        fr.Element
	AccYEval        fr.Element
	QuotientEval    fr.Element
	AccXShiftedEval fr.Element
	AccYShiftedEval fr.Element

	OpeningAtZeta      kzg.BatchOpeningProof
	OpeningAtZetaOmega kzg.BatchOpeningProof
}
