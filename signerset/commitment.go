// Package signerset derives an opaque, collision-resistant commitment to an
// ordered list of public keys, bound into the Fiat-Shamir transcript so a
// proof is only valid against the exact signer set it was produced for.
package signerset

import (
	"encoding/binary"

	"golang.org/x/crypto/blake2b"

	"github.com/lightclient-labs/apk-prover/innerpoint"
)

// Commitment is a 32-byte digest of a signer set.
type Commitment [32]byte

// Commit hashes the ordered sequence of public key coordinates.
func Commit(keys []innerpoint.Point) Commitment {
	h, err := blake2b.New256(nil)
	if err != nil {
		panic(err) // blake2b.New256 with a nil key never errors
	}
	var lenBuf [8]byte
	binary.BigEndian.PutUint64(lenBuf[:], uint64(len(keys)))
	h.Write(lenBuf[:])
	for _, k := range keys {
		xb := k.X.Bytes()
		yb := k.Y.Bytes()
		h.Write(xb[:])
		h.Write(yb[:])
	}
	var c Commitment
	copy(c[:], h.Sum(nil))
	return c
}

// Bytes returns the commitment's byte encoding.
func (c Commitment) Bytes() []byte { return c[:] }
