package interp

import (
	"github.com/flashbench-go/flashbench/internal/coreerr"
	"github.com/flashbench-go/flashbench/internal/device"
)

func init() {
	descriptors = [opMax]descriptor{
		OpEnd:       {"END", 0, endHandler},
		OpRead:      {"READ", 0, readHandler},
		OpWriteZero: {"WRITE_ZERO", 0, writeZeroHandler},
		OpWriteOne:  {"WRITE_ONE", 0, writeOneHandler},
		OpWriteRand: {"WRITE_RAND", 0, writeRandHandler},
		OpErase:     {"ERASE", 0, eraseHandler},
		OpLength:    {"LENGTH", 0, lengthHandler},
		OpOffset:    {"OFFSET", 0, offsetHandler},

		OpPrint:   {"PRINT", maskString, printHandler},
		OpNewline: {"NEWLINE", 0, newlineHandler},
		OpFormat:  {"FORMAT", 0, formatHandler},
		OpPrintf:  {"PRINTF", 0, printfHandler},
		OpBps:     {"BPS", 0, bpsHandler},

		OpSequence: {"SEQUENCE", maskNum, sequenceHandler},
		OpRepeat:   {"REPEAT", maskNum, repeatHandler},

		OpOffFixed: {"OFF_FIXED", maskVal, offFixedHandler},
		OpOffLin:   {"OFF_LIN", maskNum | maskVal, offLinHandler},
		OpOffRand:  {"OFF_RAND", maskNum | maskVal, offRandHandler},
		OpLenPow2:  {"LEN_POW2", maskNum | maskVal, lenPow2Handler},
		OpLenFixed: {"LEN_FIXED", maskVal, lenFixedHandler},

		OpReduce: {"REDUCE", maskNum | maskAggregate, reduceHandler},
		OpDrop:   {"DROP", 0, dropHandler},
	}
}

// Execute runs the root operator with the given context and returns
// its folded result. It is the sole entry point a caller — a
// fixed-shape test or a literal driver program — needs.
func Execute(root *OpNode, dev device.TimedIO, off, max, length int64) (Value, error) {
	return call(root, dev, ExecContext{Offset: off, Max: max, Length: length})
}

// call dispatches a single operator: validates its argument mask
// against the descriptor table, then invokes the handler. Every
// handler in this package is expected to recurse into its own
// children (if any) directly — there is no separate "next sibling"
// return value, since the tree is explicit rather than a flat
// pre-order array.
func call(op *OpNode, dev device.TimedIO, ctx ExecContext) (Value, error) {
	if op == nil {
		return Value{}, coreerr.New("call", coreerr.CodeInternal, "nil operator")
	}
	if op.Code < 0 || op.Code >= opMax {
		return Value{}, coreerr.New("call", coreerr.CodeUnknownOp, "opcode out of range")
	}
	if op.hasResult() {
		return Value{}, coreerr.New(op.Code.String(), coreerr.CodeInternal, "operator re-entered with unconsumed result")
	}

	d := descriptors[op.Code]
	if (d.mask&maskNum != 0) != (op.Num != 0) {
		return Value{}, coreerr.New(d.name, coreerr.CodeBadArity, "num argument mismatch")
	}
	if (d.mask&maskVal != 0) != (op.Val != 0) {
		return Value{}, coreerr.New(d.name, coreerr.CodeBadArity, "val argument mismatch")
	}
	if (d.mask&maskString != 0) != (op.String != "") {
		return Value{}, coreerr.New(d.name, coreerr.CodeBadArity, "string argument mismatch")
	}
	if (d.mask&maskAggregate != 0) != (op.Aggregate != AggNone) {
		return Value{}, coreerr.New(d.name, coreerr.CodeBadArity, "aggregate argument mismatch")
	}

	return d.handler(op, dev, ctx)
}

func endHandler(op *OpNode, dev device.TimedIO, ctx ExecContext) (Value, error) {
	return Value{}, nil
}

// child returns op's sole expected child, or a SyntaxError if absent.
func child(op *OpNode) (*OpNode, error) {
	if len(op.Children) == 0 {
		return nil, coreerr.New(op.Code.String(), coreerr.CodeSyntaxError, "missing child operator")
	}
	return op.Children[0], nil
}

// propagate calls child, moves its result and shape into op, and
// clears the child's scratch. Used by call modes that pass a single
// child's result straight through (FORMAT, BPS, OFF_FIXED, LEN_FIXED).
func propagate(op *OpNode, dev device.TimedIO, ctx ExecContext) (Value, error) {
	c, err := child(op)
	if err != nil {
		return Value{}, err
	}
	v, err := call(c, dev, ctx)
	if err != nil {
		return Value{}, err
	}
	op.result = v
	op.sizeX = c.sizeX
	op.sizeY = c.sizeY
	op.state = stateFilled
	c.reset()
	return v, nil
}
