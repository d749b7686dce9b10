// Package kzgscheme adapts gnark-crypto's KZG polynomial commitment scheme
// to the prover's needs: a capacity-checked proving key and thin
// commit/open wrappers so the rest of the module never touches the SRS
// type directly.
package kzgscheme

import (
	"hash"

	"github.com/consensys/gnark-crypto/ecc/bw6-761/fr"
	"github.com/consensys/gnark-crypto/ecc/bw6-761/kzg"

	"github.com/lightclient-labs/apk-prover/apkerr"
)

// ProverKey wraps a KZG SRS, checked to support committing to polynomials
// of up to maxDegree.
type ProverKey struct {
	srs        *kzg.SRS
	maxDegree  uint64
}

// NewProverKey validates that srs's G1 powers cover maxDegree and wraps it.
func NewProverKey(srs *kzg.SRS, maxDegree uint64) (*ProverKey, error) {
	if uint64(len(srs.Pk.G1)) < maxDegree+1 {
		return nil, apkerr.Configurationf("srs supports degree %d, need %d", len(srs.Pk.G1)-1, maxDegree)
	}
	return &ProverKey{srs: srs, maxDegree: maxDegree}, nil
}

// MaxDegree returns the largest polynomial degree this key can commit to.
func (k *ProverKey) MaxDegree() uint64 { return k.maxDegree }

// Commit commits to p's coefficients.
func (k *ProverKey) Commit(p []fr.Element) (kzg.Digest, error) {
	if uint64(len(p)) > k.maxDegree+1 {
		return kzg.Digest{}, apkerr.Invariantf("polynomial of degree %d exceeds proving key capacity %d", len(p)-1, k.maxDegree)
	}
	return kzg.Commit(p, k.srs.Pk)
}

// Open produces a single-polynomial opening proof at point.
func (k *ProverKey) Open(p []fr.Element, point fr.Element) (kzg.OpeningProof, error) {
	return kzg.Open(p, point, k.srs.Pk)
}

// BatchOpen produces a batched opening proof for several polynomials at the
// same point, folded with powers of a Fiat-Shamir-derived challenge derived
// internally from hf.
func (k *ProverKey) BatchOpen(polys [][]fr.Element, digests []kzg.Digest, point fr.Element, hf hash.Hash) (kzg.BatchOpeningProof, error) {
	return kzg.BatchOpenSinglePoint(polys, digests, point, hf, k.srs.Pk)
}
