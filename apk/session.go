// Package apk implements the accountable BLS aggregate-public-key succinct
// prover: given a fixed signer set, a Session precomputes everything that
// does not depend on a particular bitmask, and a Prover built from a
// Session produces a Proof for any bitmask over that same set in O(n log n).
package apk

import (
	"golang.org/x/sync/errgroup"

	"github.com/consensys/gnark-crypto/ecc/bw6-761/fr"

	"github.com/lightclient-labs/apk-prover/apkerr"
	"github.com/lightclient-labs/apk-prover/config"
	"github.com/lightclient-labs/apk-prover/innerpoint"
	"github.com/lightclient-labs/apk-prover/internal/domain"
	"github.com/lightclient-labs/apk-prover/signerset"
)

// Session is the one-time-per-signer-set preprocessing state: the
// interpolated public key polynomials and their big-domain evaluations,
// cached so that Prover.Prove never re-interpolates them.
type Session struct {
	params  config.Params
	domains *domain.Domains
	h       innerpoint.Point

	keys []innerpoint.Point // padded to domains.Size, last row reserved

	pksX, pksY       *domain.Polynomial
	pksXBig, pksYBig []fr.Element

	commitment signerset.Commitment
}

// NewSession builds the preprocessing state for keys under params. keys must
// have length strictly less than params.DomainSize (the rows past the signer
// set, always including the last, are padded with h, and Prover.Prove
// rejects a bitmask that selects any of them). The two coordinate
// interpolations run concurrently since they are independent.
func NewSession(params config.Params, keys []innerpoint.Point) (*Session, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	n := params.DomainSize
	if uint64(len(keys)) >= n {
		return nil, apkerr.Inputf("signer set size %d must be strictly less than domain size %d", len(keys), n)
	}
	if len(keys) == 0 {
		return nil, apkerr.Inputf("empty signer set")
	}

	h := innerpoint.Complement()
	padded := make([]innerpoint.Point, n)
	for i := range padded {
		if i < len(keys) {
			padded[i] = keys[i]
		} else {
			padded[i] = h
		}
	}

	domains := domain.New(n)

	xs := make([]fr.Element, n)
	ys := make([]fr.Element, n)
	for i, p := range padded {
		xs[i] = p.X
		ys[i] = p.Y
	}

	var pksX, pksY *domain.Polynomial
	var pksXBig, pksYBig []fr.Element

	g := new(errgroup.Group)
	g.Go(func() error {
		pksX = domain.Interpolate(domains, xs)
		pksXBig = pksX.EvaluateOnBigDomain()
		return nil
	})
	g.Go(func() error {
		pksY = domain.Interpolate(domains, ys)
		pksYBig = pksY.EvaluateOnBigDomain()
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Session{
		params:     params,
		domains:    domains,
		h:          h,
		keys:       padded,
		pksX:       pksX,
		pksY:       pksY,
		pksXBig:    pksXBig,
		pksYBig:    pksYBig,
		commitment: signerset.Commit(keys),
	}, nil
}

// Commitment returns the signer set's transcript-binding commitment.
func (s *Session) Commitment() signerset.Commitment { return s.commitment }

// Domains exposes the evaluation domain pair, for testing.
func (s *Session) Domains() *domain.Domains { return s.domains }

// Complement returns h.
func (s *Session) Complement() innerpoint.Point { return s.h }

// Keys returns the padded signer set (length domains.Size).
func (s *Session) Keys() []innerpoint.Point { return s.keys }
