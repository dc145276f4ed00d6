package main

import (
	"fmt"
	"io"

	"github.com/flashbench-go/flashbench"
)

// runOpenAU measures average write latency while round-robining
// writes across an increasing number of concurrently-open allocation
// units, from 1 up to auNr. Flash media with a limited number of open
// erase blocks shows a latency jump once the round-robin width
// exceeds that limit. One tab-separated (open-unit-count,
// average-latency-in-ms) pair per line, width 1 first.
func runOpenAU(dev *flashbench.Device, out io.Writer, baseOffset, blocksize, auSpan int64, auNr, rounds int) error {
	size := dev.Size()

	for width := 1; width <= auNr; width++ {
		prog := &flashbench.OpNode{
			Code:      flashbench.OpReduce,
			Num:       rounds,
			Aggregate: flashbench.AggAvg,
			Children: []*flashbench.OpNode{
				{
					Code: flashbench.OpRepeat,
					Num:  rounds,
					Children: []*flashbench.OpNode{
						{
							Code:      flashbench.OpReduce,
							Num:       width,
							Aggregate: flashbench.AggAvg,
							Children: []*flashbench.OpNode{
								{
									Code: flashbench.OpOffLin,
									Num:  width,
									Val:  auSpan,
									Children: []*flashbench.OpNode{
										{Code: flashbench.OpWriteZero},
									},
								},
							},
						},
					},
				},
			},
		}

		v, err := dev.Execute(prog, baseOffset, size, blocksize)
		if err != nil {
			return fmt.Errorf("open-au width %d: %w", width, err)
		}
		fmt.Fprintf(out, "%d\t%.3f\n", width, float64(v.Scalar)/1e6)
	}
	return nil
}
