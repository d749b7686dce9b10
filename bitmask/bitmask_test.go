package bitmask

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	bits := []bool{true, false, false, true, true, true, false, false, true}
	m := FromBools(bits)

	encoded := m.Encode()
	decoded, err := Decode(encoded, len(bits))
	require.NoError(t, err)
	require.Equal(t, bits, decoded.Bits())
}

func TestSparseEncodeDecodeRoundTrip(t *testing.T) {
	bits := make([]bool, 64)
	for _, idx := range []int{1, 2, 3, 40, 41, 63} {
		bits[idx] = true
	}
	m := FromBools(bits)

	compressed := m.EncodeSparse()
	decoded, err := DecodeSparse(compressed, m.CountOnes(), len(bits))
	require.NoError(t, err)
	require.Equal(t, bits, decoded.Bits())
}

func TestDecodeRejectsShortStream(t *testing.T) {
	_, err := Decode([]byte{}, 100)
	require.Error(t, err)
}

// TestEncodeDecodeRoundTripProperty checks Encode/Decode round-trips for any
// generated bit pattern and length.
func TestEncodeDecodeRoundTripProperty(t *testing.T) {
	params := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(params)

	properties.Property("dense round-trip", prop.ForAll(
		func(bits []bool) bool {
			m := FromBools(bits)
			decoded, err := Decode(m.Encode(), len(bits))
			if err != nil {
				return false
			}
			for i := range bits {
				if decoded.Get(i) != bits[i] {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.Bool()),
	))

	properties.TestingRun(t)
}
