// Package sessioncache persists a Session's signer set to bytes, so a
// long-lived service can restart from a local snapshot instead of
// re-fetching the full public-key list from its source of truth on every
// boot; NewSession still re-runs the O(n log n) interpolation over the
// restored keys. The wire format is CBOR, compressed with the LZSS
// implementation gnark-crypto's own proving artifacts use.
package sessioncache

import (
	"github.com/consensys/compress/lzss"
	"github.com/fxamacker/cbor/v2"

	"github.com/lightclient-labs/apk-prover/apkerr"
	"github.com/lightclient-labs/apk-prover/innerpoint"
)

// snapshot is the CBOR-serializable form of a signer set: coordinate pairs
// as big-endian byte strings, since fr.Element itself has no stable CBOR
// encoding.
type snapshot struct {
	Version uint32
	Xs      [][]byte
	Ys      [][]byte
}

// Save encodes keys into a compressed byte string.
func Save(keys []innerpoint.Point) ([]byte, error) {
	snap := snapshot{Version: 1, Xs: make([][]byte, len(keys)), Ys: make([][]byte, len(keys))}
	for i, k := range keys {
		xb := k.X.Bytes()
		yb := k.Y.Bytes()
		snap.Xs[i] = xb[:]
		snap.Ys[i] = yb[:]
	}

	raw, err := cbor.Marshal(snap)
	if err != nil {
		return nil, apkerr.Inputf("encoding session snapshot: %v", err)
	}

	compressed, err := lzss.Compress(raw, dictionary)
	if err != nil {
		return nil, apkerr.Inputf("compressing session snapshot: %v", err)
	}
	return compressed, nil
}

// dictionary is a small static dictionary seeded with the snapshot's fixed
// CBOR map keys, so even a single-key snapshot compresses reasonably.
var dictionary = []byte("Version\x00Xs\x00Ys\x00")

// Load decodes a byte string produced by Save back into a signer set.
func Load(data []byte) ([]innerpoint.Point, error) {
	raw, err := lzss.Decompress(data, dictionary)
	if err != nil {
		return nil, apkerr.Inputf("decompressing session snapshot: %v", err)
	}

	var snap snapshot
	if err := cbor.Unmarshal(raw, &snap); err != nil {
		return nil, apkerr.Inputf("decoding session snapshot: %v", err)
	}
	if snap.Version != 1 {
		return nil, apkerr.Inputf("unsupported session snapshot version %d", snap.Version)
	}
	if len(snap.Xs) != len(snap.Ys) {
		return nil, apkerr.Inputf("mismatched coordinate counts in session snapshot")
	}

	keys := make([]innerpoint.Point, len(snap.Xs))
	for i := range snap.Xs {
		keys[i].X.SetBytes(snap.Xs[i])
		keys[i].Y.SetBytes(snap.Ys[i])
	}
	return keys, nil
}
