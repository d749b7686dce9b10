// Package accumulator builds the execution trace of the point-accumulation
// process the constraint engine arithmetizes: starting from the public
// complement point h, walk the signer set left to right, adding each
// selected public key's point into a running total, and leaving it
// unchanged otherwise.
package accumulator

import (
	"github.com/lightclient-labs/apk-prover/apkerr"
	"github.com/lightclient-labs/apk-prover/innerpoint"
)

// Result is the accumulator trace plus the claimed final sum. Points[i] is
// the accumulator value *before* processing bit i, for i in [0, n); row n-1
// is conventionally exempted from the addition identity (see the "skip last
// row" note in the constraint package).
type Result struct {
	// Points[i] is the accumulator value at row i, for i in [0, n).
	Points []innerpoint.Point
	// Sum is the accumulated total after the last selected key, i.e.
	// Points[n-1] advanced by one more addition if bit n-1 is set. It is
	// h plus the claimed aggregate public key; ClaimedAPK removes h.
	Sum innerpoint.Point
}

// Build walks keys (length n) with bits selecting which to accumulate,
// starting from h, and returns the per-row trace plus the claimed sum. n
// must be a power of two matching the domain size; the last row of keys/bits
// is reserved by the protocol's "skip last row" convention, so callers should
// leave one trailing unused slot in a domain sized to comfortably hold the
// real signer set and keep bits[n-1] unset. Build does not check this: a set
// bits[n-1] adds keys[n-1] into Sum (see Result.Sum).
func Build(keys []innerpoint.Point, bits []bool, h innerpoint.Point) (Result, error) {
	n := len(keys)
	if len(bits) != n {
		return Result{}, apkerr.Inputf("keys length %d does not match bits length %d", n, len(bits))
	}
	if n == 0 {
		return Result{}, apkerr.Inputf("empty signer set")
	}

	selected := 0
	points := make([]innerpoint.Point, n)
	acc := h
	for i := 0; i < n; i++ {
		points[i] = acc
		if bits[i] {
			acc = acc.Add(keys[i])
			selected++
		}
	}
	if selected == 0 {
		return Result{}, apkerr.Inputf("bitmask selects no signers")
	}

	return Result{Points: points, Sum: acc}, nil
}

// ClaimedAPK recovers the actual aggregate public key (without the
// complement offset) from a Result, by subtracting h from Sum. This is the
// quantity the prover claims equals the sum of the selected keys.
func ClaimedAPK(r Result, h innerpoint.Point) innerpoint.Point {
	return r.Sum.Add(h.Neg())
}
