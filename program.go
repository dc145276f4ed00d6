package flashbench

import "github.com/flashbench-go/flashbench/internal/interp"

// OpNode, Value, Opcode, and Aggregate are re-exported from the
// interpreter package so callers building benchmark programs never
// need to import internal/interp directly.
type OpNode = interp.OpNode
type Value = interp.Value
type Opcode = interp.Opcode
type Aggregate = interp.Aggregate

const (
	OpEnd       = interp.OpEnd
	OpRead      = interp.OpRead
	OpWriteZero = interp.OpWriteZero
	OpWriteOne  = interp.OpWriteOne
	OpWriteRand = interp.OpWriteRand
	OpErase     = interp.OpErase
	OpLength    = interp.OpLength
	OpOffset    = interp.OpOffset

	OpPrint   = interp.OpPrint
	OpNewline = interp.OpNewline
	OpFormat  = interp.OpFormat
	OpPrintf  = interp.OpPrintf
	OpBps     = interp.OpBps

	OpSequence = interp.OpSequence
	OpRepeat   = interp.OpRepeat

	OpOffFixed = interp.OpOffFixed
	OpOffLin   = interp.OpOffLin
	OpOffRand  = interp.OpOffRand
	OpLenPow2  = interp.OpLenPow2
	OpLenFixed = interp.OpLenFixed

	OpReduce = interp.OpReduce
	OpDrop   = interp.OpDrop
)

const (
	AggNone   = interp.AggNone
	AggMin    = interp.AggMin
	AggMax    = interp.AggMax
	AggAvg    = interp.AggAvg
	AggTotal  = interp.AggTotal
	AggIgnore = interp.AggIgnore
)

// Seq builds a SEQUENCE node whose Num is inferred from the supplied
// children; the trailing END sentinel is appended automatically.
func Seq(children ...*OpNode) *OpNode { return interp.Seq(children...) }
