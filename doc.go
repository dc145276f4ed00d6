// Package flashbench runs small tree-structured benchmark programs
// against a raw block device: reads, writes, and discards timed in
// nanoseconds, composed through operators that iterate
// linearly, iterate pseudo-randomly via a Galois LFSR permutation,
// scale run length geometrically, reduce a batch of timings to a
// single statistic, and format the result for display.
//
// Open a device, build a program out of OpNode values (see Seq and
// the Op* constants), and hand both to Device.Execute. Every node
// must set exactly the fields its opcode takes; OpReduce takes both
// an Aggregate and a non-zero Num, and a REDUCE node without Num
// fails with CodeBadArity:
//
//	dev, err := flashbench.Open("/dev/nvme0n1", flashbench.Options{})
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer dev.Close()
//
//	prog := flashbench.Seq(
//		&flashbench.OpNode{Code: flashbench.OpPrint, String: "min read: "},
//		&flashbench.OpNode{
//			Code:      flashbench.OpPrintf,
//			Children:  []*flashbench.OpNode{{Code: flashbench.OpFormat, Children: []*flashbench.OpNode{
//				{Code: flashbench.OpReduce, Num: 8, Aggregate: flashbench.AggMin, Children: []*flashbench.OpNode{
//					{Code: flashbench.OpOffLin, Num: 8, Val: 4096, Children: []*flashbench.OpNode{
//						{Code: flashbench.OpRead},
//					}},
//				}},
//			}}},
//		},
//		&flashbench.OpNode{Code: flashbench.OpPrint, String: "\n"},
//	)
//
//	if _, err := dev.Execute(prog, 0, dev.Size(), 4096); err != nil {
//		log.Fatal(err)
//	}
//
// For benchmarking without a real device, MockDevice implements the
// same timed-I/O contract entirely in memory.
package flashbench
