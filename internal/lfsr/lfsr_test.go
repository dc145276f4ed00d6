package lfsr

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSeedMaskedToWidth(t *testing.T) {
	g, err := New(8)
	require.NoError(t, err)
	require.Equal(t, uint32(Seed&0xFF), g.Seed())
}

func TestUnsupportedWidthRejected(t *testing.T) {
	_, err := New(7)
	require.Error(t, err)
	_, err = New(17)
	require.Error(t, err)
}

// TestNoImmediateRepeat checks the generator never revisits its seed
// before completing a full cycle, and that it never reports a
// duplicate value within one cycle — the coverage property the
// random-offset iterator depends on for exactly-once visitation.
func TestNoImmediateRepeat(t *testing.T) {
	for bits := 8; bits <= 16; bits++ {
		g, err := New(bits)
		require.NoError(t, err)

		seen := map[uint32]bool{g.Seed(): true}
		v := g.Seed()
		for {
			v = g.Next(v)
			if v == 0 {
				break
			}
			require.Falsef(t, seen[v], "bits=%d: value %d repeated before cycle completed", bits, v)
			seen[v] = true
		}
	}
}
