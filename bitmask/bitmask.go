// Package bitmask is the container used for the signer selection mask. It
// holds one bool per bit in memory and packs the bits densely (not one byte
// per bit) in its wire encoding, and offers a compressed sparse export of the
// selected indices for signer sets that are mostly zero or mostly one.
package bitmask

import (
	"bytes"
	"io"

	"github.com/icza/bitio"
	"github.com/ronanh/intcomp"

	"github.com/lightclient-labs/apk-prover/apkerr"
)

// Bitmask is a fixed-length sequence of selection bits.
type Bitmask struct {
	n    int
	bits []bool
}

// New allocates an all-zero mask of length n.
func New(n int) *Bitmask {
	return &Bitmask{n: n, bits: make([]bool, n)}
}

// FromBools wraps an existing bool slice without copying.
func FromBools(bits []bool) *Bitmask {
	return &Bitmask{n: len(bits), bits: bits}
}

// Len returns the mask's length.
func (b *Bitmask) Len() int { return b.n }

// Get returns bit i.
func (b *Bitmask) Get(i int) bool { return b.bits[i] }

// Set sets bit i to v.
func (b *Bitmask) Set(i int, v bool) { b.bits[i] = v }

// Bits returns the underlying bool slice; callers must not mutate it.
func (b *Bitmask) Bits() []bool { return b.bits }

// CountOnes returns the number of selected bits.
func (b *Bitmask) CountOnes() int {
	c := 0
	for _, v := range b.bits {
		if v {
			c++
		}
	}
	return c
}

// Encode packs the mask into a dense bitstream, most-significant bit of
// each byte first, via icza/bitio.
func (b *Bitmask) Encode() []byte {
	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)
	for _, v := range b.bits {
		w.WriteBool(v)
	}
	_ = w.Close()
	return buf.Bytes()
}

// Decode unpacks a dense bitstream of exactly n bits produced by Encode.
func Decode(data []byte, n int) (*Bitmask, error) {
	r := bitio.NewReader(bytes.NewReader(data))
	bits := make([]bool, n)
	for i := 0; i < n; i++ {
		v, err := r.ReadBool()
		if err != nil {
			if err == io.EOF {
				return nil, apkerr.Inputf("bitmask stream too short for %d bits", n)
			}
			return nil, apkerr.Inputf("decoding bitmask: %v", err)
		}
		bits[i] = v
	}
	return &Bitmask{n: n, bits: bits}, nil
}

// EncodeSparse exports the mask as a delta-encoded, binary-packed run of
// selected indices, for signer sets where CountOnes() is small relative to
// Len() — intcomp.CompressUint32 applies bit-packing with delta coding
// suited to the mostly-increasing, mostly-clustered index sequences real
// validator-committee masks tend to produce.
func (b *Bitmask) EncodeSparse() []uint32 {
	indices := make([]uint32, 0, b.CountOnes())
	for i, v := range b.bits {
		if v {
			indices = append(indices, uint32(i))
		}
	}
	return intcomp.CompressUint32(indices, nil)
}

// DecodeSparse rebuilds a mask of length n from a sparse index export.
func DecodeSparse(compressed []uint32, countOnes, n int) (*Bitmask, error) {
	indices := intcomp.UncompressUint32(compressed, make([]uint32, 0, countOnes))
	bits := make([]bool, n)
	for _, idx := range indices {
		if int(idx) >= n {
			return nil, apkerr.Inputf("sparse index %d out of range for mask length %d", idx, n)
		}
		bits[idx] = true
	}
	return &Bitmask{n: n, bits: bits}, nil
}
