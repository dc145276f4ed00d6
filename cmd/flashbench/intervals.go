package main

import (
	"fmt"
	"io"

	"github.com/flashbench-go/flashbench"
)

// runIntervals reads at geometrically doubling lengths — LEN_POW2(n,
// 1) starting from blocksize — to expose where latency stops growing
// linearly with transfer size, one tab-separated (length-in-bytes,
// latency-in-ms) pair per line.
func runIntervals(dev *flashbench.Device, out io.Writer, baseOffset, blocksize int64, order int) error {
	size := dev.Size()

	prog := &flashbench.OpNode{
		Code: flashbench.OpLenPow2,
		Num:  order,
		Val:  1,
		Children: []*flashbench.OpNode{
			{Code: flashbench.OpRead},
		},
	}

	v, err := dev.Execute(prog, baseOffset, size, blocksize)
	if err != nil {
		return fmt.Errorf("intervals: %w", err)
	}

	length := blocksize
	for _, item := range v.Items {
		fmt.Fprintf(out, "%d\t%.3f\n", length, float64(item.Scalar)/1e6)
		length <<= 1
	}
	return nil
}
