package main

import (
	"fmt"
	"io"

	"github.com/flashbench-go/flashbench"
)

// runFindFAT probes fatNr candidate erase-block granularities,
// shrinking by half from eraseSize down, and reports the average
// write latency observed when writes are confined to each candidate
// span — a jump in latency between two candidates indicates the real
// erase-block boundary lies between them. One tab-separated
// (candidate-size-in-bytes, average-latency-in-ms) pair per line,
// largest candidate first.
func runFindFAT(dev *flashbench.Device, out io.Writer, baseOffset, blocksize, eraseSize int64, fatNr int) error {
	size := dev.Size()
	candidate := eraseSize

	var xs, ys []float64

	for i := 0; i < fatNr; i++ {
		num := candidate / blocksize
		if num < 1 {
			num = 1
		}

		prog := &flashbench.OpNode{
			Code:      flashbench.OpReduce,
			Num:       int(num),
			Aggregate: flashbench.AggAvg,
			Children: []*flashbench.OpNode{
				{
					Code: flashbench.OpOffLin,
					Num:  int(num),
					Val:  blocksize,
					Children: []*flashbench.OpNode{
						{Code: flashbench.OpWriteZero},
					},
				},
			},
		}

		v, err := dev.Execute(prog, baseOffset, size, blocksize)
		if err != nil {
			return fmt.Errorf("find-fat candidate %d: %w", candidate, err)
		}
		ms := float64(v.Scalar) / 1e6
		fmt.Fprintf(out, "%d\t%.3f\n", candidate, ms)
		xs = append(xs, float64(candidate))
		ys = append(ys, ms)

		candidate /= 2
		if candidate < blocksize {
			break
		}
	}

	slope, intercept := linearFit(xs, ys)
	fmt.Fprintf(out, "# fit ms = %.6f * candidate_bytes + %.3f\n", slope, intercept)
	return nil
}
