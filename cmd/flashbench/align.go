package main

import (
	"fmt"
	"io"

	"github.com/flashbench-go/flashbench"
)

// runAlign compares write latency at block-aligned offsets against
// offsets shifted by one byte, half a block, and one byte short of
// the next block, to reveal whether the device penalizes unaligned
// access. One tab-separated (shift-in-bytes, latency-in-ms) pair per
// line, shift 0 first.
func runAlign(dev *flashbench.Device, out io.Writer, baseOffset, blocksize int64, count int) error {
	shifts := []int64{0, 1, blocksize / 2, blocksize - 1}
	size := dev.Size()

	for i := 0; i < count; i++ {
		base := baseOffset + int64(i)*blocksize*int64(len(shifts))
		for _, shift := range shifts {
			pos := base + shift
			v, err := dev.Execute(&flashbench.OpNode{Code: flashbench.OpWriteZero}, pos, size, blocksize)
			if err != nil {
				return fmt.Errorf("align sample %d shift %d: %w", i, shift, err)
			}
			fmt.Fprintf(out, "%d\t%.3f\n", shift, float64(v.Scalar)/1e6)
		}
	}
	return nil
}
