package interp

import "github.com/flashbench-go/flashbench/internal/value"

// Value and Aggregate are aliased into this package so operator code
// reads naturally without a value. qualifier on every line.
type Value = value.Value
type Aggregate = value.Aggregate

const (
	AggNone   = value.AggNone
	AggMin    = value.AggMin
	AggMax    = value.AggMax
	AggAvg    = value.AggAvg
	AggTotal  = value.AggTotal
	AggIgnore = value.AggIgnore
)

// ExecContext is the (offset, max, length) triple inherited on
// descent. It is never returned upward; only Value results flow back.
type ExecContext struct {
	Offset int64
	Max    int64
	Length int64
}

// scratchState tracks a node's lifecycle across one execution:
// Unattached -> Allocated (first entry, if Num > 0) -> Filled (values
// written by an atom or aggregation) -> Formatted/Reduced (optional)
// -> Consumed (parent moves the result out) -> Unattached again for
// the next run.
type scratchState int

const (
	stateUnattached scratchState = iota
	stateAllocated
	stateFilled
	stateConsumed
)

// OpNode is one operator in a literal, explicitly-nested operator
// tree. Children are stored directly rather than via a flat
// pre-order array with sentinel successor pointers; OpEnd nodes are
// still required after OpSequence's child list for fidelity with the
// source representation's bracket structure, and SEQUENCE validates
// for one.
type OpNode struct {
	Code      Opcode
	Num       int
	Val       int64
	String    string
	Aggregate Aggregate
	Children  []*OpNode

	result Value
	sizeX  uint32
	sizeY  uint32
	state  scratchState
}

// Seq builds a SEQUENCE node whose Num is inferred from the supplied
// children (the trailing END is implicit and appended automatically).
func Seq(children ...*OpNode) *OpNode {
	return &OpNode{Code: OpSequence, Num: len(children), Children: append(append([]*OpNode{}, children...), &OpNode{Code: OpEnd})}
}

// hasResult reports whether op currently holds an unconsumed result.
func (op *OpNode) hasResult() bool {
	return op.state == stateFilled
}

// reset clears a node's scratch after its parent has moved the result
// out, returning it to stateUnattached for any subsequent run.
func (op *OpNode) reset() {
	op.result = Value{}
	op.sizeX = 0
	op.sizeY = 0
	op.state = stateUnattached
}
