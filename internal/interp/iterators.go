package interp

import (
	"github.com/flashbench-go/flashbench/internal/coreerr"
	"github.com/flashbench-go/flashbench/internal/device"
	"github.com/flashbench-go/flashbench/internal/lfsr"
	"github.com/flashbench-go/flashbench/internal/value"
)

// offFixedHandler invokes its child once at off+val, propagating the
// result unchanged.
func offFixedHandler(op *OpNode, dev device.TimedIO, ctx ExecContext) (Value, error) {
	ctx.Offset += op.Val
	return propagate(op, dev, ctx)
}

// lenFixedHandler invokes its child once with length replaced by val.
func lenFixedHandler(op *OpNode, dev device.TimedIO, ctx ExecContext) (Value, error) {
	ctx.Length = op.Val
	return propagate(op, dev, ctx)
}

// aggregate invokes child n times via ctxFor, collecting each
// iteration's result into op's pre-allocated array. Type homogeneity
// is enforced across iterations; if a child iteration itself returns
// a 1-D array, op becomes 2-D with width equal to that array's
// length, and every subsequent iteration must match that width.
func aggregate(op *OpNode, dev device.TimedIO, n int, ctxFor func(i int) ExecContext) (Value, error) {
	c, err := child(op)
	if err != nil {
		return Value{}, err
	}

	items := make([]Value, 0, n)
	var kind value.Kind
	is2D := false
	var width uint32

	for i := 0; i < n; i++ {
		v, err := call(c, dev, ctxFor(i))
		if err != nil {
			return Value{}, err
		}
		if v.Kind == value.Array {
			if v.Cols > 0 {
				return Value{}, coreerr.New(op.Code.String(), coreerr.CodeShapeMismatch, "aggregated child is already 2-D")
			}
			w := v.Cols
			if w == 0 {
				w = uint32(len(v.Items))
			}
			if i == 0 {
				is2D = true
				width = w
				kind = v.ElementKind()
			} else if !is2D || w != width || v.ElementKind() != kind {
				return Value{}, coreerr.New(op.Code.String(), coreerr.CodeShapeMismatch, "conflicting array widths among aggregated children")
			}
		} else {
			if i == 0 {
				kind = v.Kind
			} else if is2D || v.Kind != kind {
				return Value{}, coreerr.New(op.Code.String(), coreerr.CodeTypeMismatch, "mixed-kind values among aggregated children")
			}
		}
		items = append(items, v)
		c.reset()
	}

	var result Value
	if is2D {
		flat := make([]Value, 0, n*int(width))
		for _, row := range items {
			flat = append(flat, row.Items...)
		}
		result = value.NewArray2D(flat, uint32(n), width)
	} else {
		result = value.NewArray1D(items)
	}
	op.result = result
	op.sizeX = uint32(n)
	op.sizeY = width
	op.state = stateFilled
	return result, nil
}

func offLinHandler(op *OpNode, dev device.TimedIO, ctx ExecContext) (Value, error) {
	num := op.Num
	stride := op.Val

	if stride == -1 {
		if ctx.Max < ctx.Length || ctx.Length <= 0 {
			return Value{}, coreerr.New("OFF_LIN", coreerr.CodeEmptyRange, "max < len or len == 0 with automatic stride")
		}
		num = int(ctx.Max / ctx.Length)
		if num == 0 {
			return Value{}, coreerr.New("OFF_LIN", coreerr.CodeEmptyRange, "automatic stride count is zero")
		}
		stride = ctx.Max / int64(num)
	}

	base := ctx.Offset
	return aggregate(op, dev, num, func(i int) ExecContext {
		c := ctx
		c.Offset = base + int64(i)*stride
		return c
	})
}

func offRandHandler(op *OpNode, dev device.TimedIO, ctx ExecContext) (Value, error) {
	num := op.Num
	stride := op.Val

	bits := 8
	for (1 << uint(bits)) < num {
		bits++
	}
	if bits > 16 {
		return Value{}, coreerr.New("OFF_RAND", coreerr.CodeEmptyRange, "num exceeds 16-bit LFSR range")
	}
	gen, err := lfsr.New(bits)
	if err != nil {
		return Value{}, coreerr.Wrap("OFF_RAND", err)
	}

	indices := make([]uint32, 0, num)
	v := gen.Seed()
	for len(indices) < num {
		if int(v) < num {
			indices = append(indices, v)
		}
		v = gen.Next(v)
		if v == gen.Seed() {
			break
		}
	}

	base := ctx.Offset
	return aggregate(op, dev, len(indices), func(i int) ExecContext {
		c := ctx
		c.Offset = base + int64(indices[i])*stride
		return c
	})
}

func lenPow2Handler(op *OpNode, dev device.TimedIO, ctx ExecContext) (Value, error) {
	num := op.Num
	val := op.Val
	length := ctx.Length
	if length == 0 {
		length = 1
	}

	if val > 0 {
		return aggregate(op, dev, num, func(i int) ExecContext {
			c := ctx
			c.Length = length * val << uint(i)
			return c
		})
	}

	// val < 0: lengths descend, i running from num down to 1 — the
	// source's `len * (-val/2) << i` computed for i = num..1.
	half := -val / 2
	return aggregate(op, dev, num, func(i int) ExecContext {
		c := ctx
		shift := num - i
		c.Length = length * half << uint(shift)
		return c
	})
}

func repeatHandler(op *OpNode, dev device.TimedIO, ctx ExecContext) (Value, error) {
	return aggregate(op, dev, op.Num, func(i int) ExecContext {
		return ctx
	})
}

// sequenceHandler invokes op.Num children in order (the final entry
// in op.Children must be an END sentinel), aggregating their results.
// If exactly one result was produced, the sequence collapses to that
// scalar rather than a one-element array.
func sequenceHandler(op *OpNode, dev device.TimedIO, ctx ExecContext) (Value, error) {
	if len(op.Children) != op.Num+1 {
		return Value{}, coreerr.New("SEQUENCE", coreerr.CodeSyntaxError, "child count does not match num")
	}
	if op.Children[op.Num].Code != OpEnd {
		return Value{}, coreerr.New("SEQUENCE", coreerr.CodeSyntaxError, "missing END sentinel")
	}

	items := make([]Value, 0, op.Num)
	var kind value.Kind
	is2D := false
	var width uint32
	produced := 0

	for i := 0; i < op.Num; i++ {
		v, err := call(op.Children[i], dev, ctx)
		if err != nil {
			return Value{}, err
		}
		if v.IsZero() {
			op.Children[i].reset()
			continue
		}
		produced++
		if v.Kind == value.Array {
			if v.Cols > 0 {
				return Value{}, coreerr.New("SEQUENCE", coreerr.CodeShapeMismatch, "sequence child is already 2-D")
			}
			w := v.Cols
			if w == 0 {
				w = uint32(len(v.Items))
			}
			if produced == 1 {
				is2D = true
				width = w
				kind = v.ElementKind()
			} else if !is2D || w != width || v.ElementKind() != kind {
				return Value{}, coreerr.New("SEQUENCE", coreerr.CodeShapeMismatch, "conflicting shapes among sequence children")
			}
		} else {
			if produced == 1 {
				kind = v.Kind
			} else if is2D || v.Kind != kind {
				return Value{}, coreerr.New("SEQUENCE", coreerr.CodeTypeMismatch, "mixed-kind values among sequence children")
			}
		}
		items = append(items, v)
		op.Children[i].reset()
	}
	op.Children[op.Num].reset()

	if produced == 1 {
		op.result = items[0]
		op.state = stateFilled
		return items[0], nil
	}

	var result Value
	switch {
	case produced == 0:
		result = Value{}
	case is2D:
		flat := make([]Value, 0, produced*int(width))
		for _, row := range items {
			flat = append(flat, row.Items...)
		}
		result = value.NewArray2D(flat, uint32(produced), width)
	default:
		result = value.NewArray1D(items)
	}
	op.result = result
	op.sizeX = uint32(produced)
	op.sizeY = width
	op.state = stateFilled
	return result, nil
}
