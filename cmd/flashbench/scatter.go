package main

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/flashbench-go/flashbench"
)

// runScatter samples read latency at 1<<order points spread across
// the device, span blocks apart, and prints one tab-separated
// (position-in-MiB, latency-in-ms) pair per line — the scatter test's
// output contract, preserved byte-for-byte for downstream analysis
// scripts that parse it.
func runScatter(dev *flashbench.Device, out io.Writer, baseOffset, blocksize int64, order, span int, random bool) error {
	numSamples := 1 << uint(order)
	stride := blocksize * int64(span)
	size := dev.Size()

	var perm []int
	if random {
		perm = rand.New(rand.NewSource(1)).Perm(numSamples)
	}

	for i := 0; i < numSamples; i++ {
		idx := i
		if perm != nil {
			idx = perm[i]
		}

		pos := baseOffset + int64(idx)*stride
		v, err := dev.Execute(&flashbench.OpNode{Code: flashbench.OpRead}, pos, size, blocksize)
		if err != nil {
			return fmt.Errorf("scatter sample %d: %w", i, err)
		}

		posMiB := float64(pos) / (1 << 20)
		ms := float64(v.Scalar) / 1e6
		fmt.Fprintf(out, "%.3f\t%.3f\n", posMiB, ms)
	}
	return nil
}
