package apk

import (
	"golang.org/x/crypto/blake2b"

	"github.com/consensys/gnark-crypto/ecc/bw6-761/fr"
	"github.com/consensys/gnark-crypto/ecc/bw6-761/kzg"

	"github.com/lightclient-labs/apk-prover/apkerr"
	"github.com/lightclient-labs/apk-prover/bitmask"
	"github.com/lightclient-labs/apk-prover/innerpoint"
	"github.com/lightclient-labs/apk-prover/internal/accumulator"
	"github.com/lightclient-labs/apk-prover/internal/constraints"
	"github.com/lightclient-labs/apk-prover/internal/domain"
	"github.com/lightclient-labs/apk-prover/internal/logger"
	"github.com/lightclient-labs/apk-prover/internal/quotient"
	"github.com/lightclient-labs/apk-prover/internal/transcript"
	"github.com/lightclient-labs/apk-prover/kzgscheme"
)

// Prover produces proofs against a fixed Session. The signer set's
// coordinate-polynomial commitments are computed once at construction and
// reused by every Prove call, since they depend only on the session, not
// the bitmask.
type Prover struct {
	session *Session
	pk      *kzgscheme.ProverKey

	pksXCommitment kzg.Digest
	pksYCommitment kzg.Digest
}

// NewProver pairs a Session with a KZG proving key large enough to commit
// to every polynomial the protocol produces (the quotient has the largest
// degree, 3*domainSize-3, and is held as 3*domainSize coefficients), and
// commits once to the session's public key coordinate polynomials.
func NewProver(session *Session, pk *kzgscheme.ProverKey) (*Prover, error) {
	need := 3*session.params.DomainSize - 1
	if pk.MaxDegree() < need {
		return nil, apkerr.Configurationf("proving key supports degree %d, quotient needs %d", pk.MaxDegree(), need)
	}
	pksXCommitment, err := pk.Commit(session.pksX.Coeffs())
	if err != nil {
		return nil, err
	}
	pksYCommitment, err := pk.Commit(session.pksY.Coeffs())
	if err != nil {
		return nil, err
	}
	return &Prover{session: session, pk: pk, pksXCommitment: pksXCommitment, pksYCommitment: pksYCommitment}, nil
}

// Prove produces a proof that the selected subset of the session's signer
// set sums to the returned aggregate public key.
func (pr *Prover) Prove(mask *bitmask.Bitmask) (innerpoint.Point, *Proof, error) {
	log := logger.Logger().With().Str("component", "apk.Prover").Logger()

	s := pr.session
	n := int(s.params.DomainSize)
	if mask.Len() != len(s.keys) {
		return innerpoint.Point{}, nil, apkerr.Inputf("bitmask length %d does not match signer set length %d", mask.Len(), len(s.keys))
	}
	// Rows past the real signer set hold h as padding and must stay unselected.
	for i := 0; i < n; i++ {
		if mask.Get(i) && s.keys[i] == s.h {
			return innerpoint.Point{}, nil, apkerr.Inputf("bitmask selects padding row %d", i)
		}
	}

	res, err := accumulator.Build(s.keys, mask.Bits(), s.h)
	if err != nil {
		return innerpoint.Point{}, nil, err
	}
	log.Debug().Int("selected", mask.CountOnes()).Msg("accumulator trace built")

	// res.Sum is acc[n-1] = h + apk (the bitmask's padding rows are always
	// unselected, so the accumulator stops changing at row m).
	apkPlusH := res.Sum
	claimed := accumulator.ClaimedAPK(res, s.h)

	accX := make([]fr.Element, n)
	accY := make([]fr.Element, n)
	bit := make([]fr.Element, n)
	for i := 0; i < n; i++ {
		accX[i] = res.Points[i].X
		accY[i] = res.Points[i].Y
		if mask.Get(i) {
			bit[i].SetOne()
		}
	}

	accXPoly := domain.Interpolate(s.domains, accX)
	accYPoly := domain.Interpolate(s.domains, accY)
	bitPoly := domain.Interpolate(s.domains, bit)

	bitmaskCommitment, err := pr.pk.Commit(bitPoly.Coeffs())
	if err != nil {
		return innerpoint.Point{}, nil, err
	}
	accXCommitment, err := pr.pk.Commit(accXPoly.Coeffs())
	if err != nil {
		return innerpoint.Point{}, nil, err
	}
	accYCommitment, err := pr.pk.Commit(accYPoly.Coeffs())
	if err != nil {
		return innerpoint.Point{}, nil, err
	}

	tr := transcript.New(s.params.Encode(), s.commitment.Bytes())
	tr.BindPublicInput(elementBytes(claimed.X), elementBytes(claimed.Y), mask.Encode())
	tr.BindTraceCommitments(
		digestBytes(bitmaskCommitment),
		digestBytes(accXCommitment),
		digestBytes(accYCommitment),
	)
	phi, err := tr.ComputePhi()
	if err != nil {
		return innerpoint.Point{}, nil, err
	}

	accXBig := accXPoly.EvaluateOnBigDomain()
	accYBig := accYPoly.EvaluateOnBigDomain()
	bitBig := bitPoly.EvaluateOnBigDomain()

	shift := 4 // big domain has 4n points, so "next row" is 4 steps ahead
	accXShiftedBig := rotate(accXBig, shift)
	accYShiftedBig := rotate(accYBig, shift)

	in := constraints.Inputs{
		PksXBig:        s.pksXBig,
		PksYBig:        s.pksYBig,
		AccXBig:        accXBig,
		AccYBig:        accYBig,
		AccXShiftedBig: accXShiftedBig,
		AccYShiftedBig: accYShiftedBig,
		BitBig:         bitBig,
		L1:             s.domains.L1,
		Ln:             s.domains.Ln,
		HX:             s.h.X,
		HY:             s.h.Y,
		APKPlusHX:      apkPlusH.X,
		APKPlusHY:      apkPlusH.Y,
	}
	vecs := constraints.Build(in)

	if err := checkInvariants(s.domains, vecs); err != nil {
		return innerpoint.Point{}, nil, err
	}

	skipLastRow := quotient.SkipLastRowBig(s.domains, s.domains.BigDomainPoints())
	combined := quotient.Combine(vecs, skipLastRow, phi)
	quotientPoly, err := quotient.Divide(s.domains, combined)
	if err != nil {
		return innerpoint.Point{}, nil, apkerr.Invariantf("combined constraint vector failed vanishing-polynomial division: %v", err)
	}

	quotientCommitment, err := pr.pk.Commit(quotientPoly.Coeffs())
	if err != nil {
		return innerpoint.Point{}, nil, err
	}
	tr.BindQuotientCommitment(digestBytes(quotientCommitment))
	zeta, err := tr.ComputeZeta()
	if err != nil {
		return innerpoint.Point{}, nil, err
	}

	bitEval := bitPoly.Eval(zeta)
	pksXEval := s.pksX.Eval(zeta)
	pksYEval := s.pksY.Eval(zeta)
	accXEval := accXPoly.Eval(zeta)
	accYEval := accYPoly.Eval(zeta)
	quotientEval := quotientPoly.Eval(zeta)

	generator := s.domains.Generator()
	var zetaOmega fr.Element
	zetaOmega.Mul(&zeta, &generator)
	accXShiftedEval := accXPoly.Eval(zetaOmega)
	accYShiftedEval := accYPoly.Eval(zetaOmega)

	tr.BindEvaluations(
		elementBytes(bitEval), elementBytes(pksXEval), elementBytes(pksYEval),
		elementBytes(accXEval), elementBytes(accYEval), elementBytes(quotientEval),
		elementBytes(accXShiftedEval), elementBytes(accYShiftedEval),
	)
	nu, err := tr.ComputeNu()
	if err != nil {
		return innerpoint.Point{}, nil, err
	}
	// nu is not used by the openings below: BatchOpen folds each batch with
	// its own challenge, derived from the fresh hasher passed to it.
	_ = nu

	hasher, _ := blake2b.New256(nil)
	openZeta, err := pr.pk.BatchOpen(
		[][]fr.Element{bitPoly.Coeffs(), s.pksX.Coeffs(), s.pksY.Coeffs(), accXPoly.Coeffs(), accYPoly.Coeffs(), quotientPoly.Coeffs()},
		[]kzg.Digest{bitmaskCommitment, pr.pksXCommitment, pr.pksYCommitment, accXCommitment, accYCommitment, quotientCommitment},
		zeta,
		hasher,
	)
	if err != nil {
		return innerpoint.Point{}, nil, err
	}
	hasher2, _ := blake2b.New256(nil)
	openZetaOmega, err := pr.pk.BatchOpen(
		[][]fr.Element{accXPoly.Coeffs(), accYPoly.Coeffs()},
		[]kzg.Digest{accXCommitment, accYCommitment},
		zetaOmega,
		hasher2,
	)
	if err != nil {
		return innerpoint.Point{}, nil, err
	}

	log.Info().Msg("proof generated")

	return claimed, &Proof{
		BitmaskCommitment:  bitmaskCommitment,
		AccXCommitment:     accXCommitment,
		AccYCommitment:     accYCommitment,
		QuotientCommitment: quotientCommitment,
		Zeta:               zeta,
		BitEval:            bitEval,
		PksXEval:           pksXEval,
		PksYEval:           pksYEval,
		AccXEval:           accXEval,
		AccYEval:           accYEval,
		QuotientEval:       quotientEval,
		AccXShiftedEval:    accXShiftedEval,
		AccYShiftedEval:    accYShiftedEval,
		OpeningAtZeta:      openZeta,
		OpeningAtZetaOmega: openZetaOmega,
	}, nil
}

// rotate returns a copy of evals shifted left by k positions, wrapping.
func rotate(evals []fr.Element, k int) []fr.Element {
	n := len(evals)
	out := make([]fr.Element, n)
	for i := 0; i < n; i++ {
		out[i] = evals[(i+k)%n]
	}
	return out
}

func digestBytes(d kzg.Digest) []byte {
	b := d.Marshal()
	return b
}

func elementBytes(e fr.Element) []byte {
	b := e.Bytes()
	return b[:]
}
