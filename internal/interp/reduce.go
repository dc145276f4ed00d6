package interp

import (
	"github.com/flashbench-go/flashbench/internal/coreerr"
	"github.com/flashbench-go/flashbench/internal/device"
	"github.com/flashbench-go/flashbench/internal/value"
)

// reduceHandler invokes its child, which must yield an Array, and
// folds it one dimension: a 1-D array reduces to a single scalar; a
// 2-D array reduces across its inner dimension to a 1-D array of
// length equal to the outer dimension.
func reduceHandler(op *OpNode, dev device.TimedIO, ctx ExecContext) (Value, error) {
	c, err := child(op)
	if err != nil {
		return Value{}, err
	}
	v, err := call(c, dev, ctx)
	if err != nil {
		return Value{}, err
	}
	defer c.reset()

	if v.Kind != value.Array {
		return Value{}, coreerr.New("REDUCE", coreerr.CodeTypeMismatch, "child did not produce an array")
	}

	agg := op.Aggregate

	if v.Cols == 0 {
		result, err := value.ReduceScalar(v.Items, agg)
		if err != nil {
			return Value{}, coreerr.New("REDUCE", coreerr.CodeTypeMismatch, err.Error())
		}
		op.result = result
		op.state = stateFilled
		return result, nil
	}

	rows, cols := v.Rows, v.Cols
	out := make([]Value, rows)
	for r := uint32(0); r < rows; r++ {
		row := v.Items[r*cols : (r+1)*cols]
		reduced, err := value.ReduceScalar(row, agg)
		if err != nil {
			return Value{}, coreerr.New("REDUCE", coreerr.CodeTypeMismatch, err.Error())
		}
		out[r] = reduced
	}
	result := value.NewArray1D(out)
	op.result = result
	op.sizeX = rows
	op.state = stateFilled
	return result, nil
}

// dropHandler invokes its child and discards the result entirely —
// used to sequence a side-effecting operator whose timing is not of
// interest.
func dropHandler(op *OpNode, dev device.TimedIO, ctx ExecContext) (Value, error) {
	c, err := child(op)
	if err != nil {
		return Value{}, err
	}
	if _, err := call(c, dev, ctx); err != nil {
		return Value{}, err
	}
	c.reset()
	op.state = stateFilled
	return Value{}, nil
}
