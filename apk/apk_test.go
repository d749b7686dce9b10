package apk

import (
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bw6-761/kzg"
	"github.com/stretchr/testify/require"

	"github.com/lightclient-labs/apk-prover/bitmask"
	"github.com/lightclient-labs/apk-prover/config"
	"github.com/lightclient-labs/apk-prover/innerpoint"
	"github.com/lightclient-labs/apk-prover/kzgscheme"
)

// testSRS builds an insecure, deterministic KZG SRS sized for a given
// domain; production deployments load a real SRS from a trusted ceremony.
func testSRS(t *testing.T, domainSize uint64) *kzgscheme.ProverKey {
	t.Helper()
	srs, err := kzg.NewSRS(4*domainSize+8, big.NewInt(987654321))
	require.NoError(t, err)
	pk, err := kzgscheme.NewProverKey(srs, 4*domainSize+7)
	require.NoError(t, err)
	return pk
}

func newTestProver(t *testing.T, domainSize uint64, numSigners int) (*Prover, []innerpoint.Point) {
	t.Helper()
	params := config.Default(domainSize)
	keys := innerpoint.Generators(numSigners)
	session, err := NewSession(params, keys)
	require.NoError(t, err)
	pk := testSRS(t, domainSize)
	prover, err := NewProver(session, pk)
	require.NoError(t, err)
	return prover, keys
}

// allOnesMask selects every real signer and leaves the padding rows unset.
func allOnesMask(numSigners, domainSize int) *bitmask.Bitmask {
	bits := make([]bool, domainSize)
	for i := 0; i < numSigners; i++ {
		bits[i] = true
	}
	return bitmask.FromBools(bits)
}

func TestProveFullSignerSet(t *testing.T) {
	const domainSize = 16
	const numSigners = 5
	prover, _ := newTestProver(t, domainSize, numSigners)

	mask := allOnesMask(numSigners, domainSize)
	apk, proof, err := prover.Prove(mask)
	require.NoError(t, err)
	require.NotNil(t, proof)
	require.False(t, apk.X.IsZero() && apk.Y.IsZero())
}

func TestProveSingleSigner(t *testing.T) {
	const domainSize = 16
	const numSigners = 5
	prover, _ := newTestProver(t, domainSize, numSigners)

	bits := make([]bool, domainSize)
	bits[2] = true
	mask := bitmask.FromBools(bits)

	_, proof, err := prover.Prove(mask)
	require.NoError(t, err)
	require.NotNil(t, proof)
}

func TestProveRejectsEmptyMask(t *testing.T) {
	const domainSize = 16
	const numSigners = 5
	prover, _ := newTestProver(t, domainSize, numSigners)

	mask := bitmask.New(domainSize)
	_, _, err := prover.Prove(mask)
	require.Error(t, err)
}

func TestProveRejectsMismatchedMaskLength(t *testing.T) {
	const domainSize = 16
	const numSigners = 5
	prover, _ := newTestProver(t, domainSize, numSigners)

	mask := bitmask.New(domainSize + 1)
	_, _, err := prover.Prove(mask)
	require.Error(t, err)
}

func TestSessionRejectsOversizedSignerSet(t *testing.T) {
	const domainSize = 8
	params := config.Default(domainSize)
	keys := innerpoint.Generators(domainSize) // one too many: must be < domainSize
	_, err := NewSession(params, keys)
	require.Error(t, err)
}

func TestSessionRejectsEmptySignerSet(t *testing.T) {
	const domainSize = 8
	params := config.Default(domainSize)
	_, err := NewSession(params, nil)
	require.Error(t, err)
}

func TestTwoDifferentMasksProduceDifferentClaimedAPKs(t *testing.T) {
	const domainSize = 16
	const numSigners = 6
	prover, _ := newTestProver(t, domainSize, numSigners)

	bitsA := make([]bool, domainSize)
	bitsA[0] = true
	bitsA[1] = true
	apkA, _, err := prover.Prove(bitmask.FromBools(bitsA))
	require.NoError(t, err)

	bitsB := make([]bool, domainSize)
	bitsB[2] = true
	bitsB[3] = true
	apkB, _, err := prover.Prove(bitmask.FromBools(bitsB))
	require.NoError(t, err)

	require.False(t, apkA.X.Equal(&apkB.X) && apkA.Y.Equal(&apkB.Y))
}

// TestProveBoundaryReDerivation checks Property 5: the accumulator's final
// row, recovered from the accX/accY evaluations the proof carries at
// zeta*omega relative to h, is not directly exposed here (that recovery is
// the verifier's job against committed boundary constraints), but the
// accumulator trace itself must satisfy acc[n-1] = h + apk for any proof
// this package produces, since that is exactly what A4/A5 bind.
func TestProveBoundaryReDerivation(t *testing.T) {
	const domainSize = 16
	const numSigners = 5
	prover, keys := newTestProver(t, domainSize, numSigners)

	bits := make([]bool, domainSize)
	bits[0] = true
	bits[3] = true
	apk, _, err := prover.Prove(bitmask.FromBools(bits))
	require.NoError(t, err)

	want := keys[0].Add(keys[3])
	require.True(t, apk.X.Equal(&want.X) && apk.Y.Equal(&want.Y))
}
