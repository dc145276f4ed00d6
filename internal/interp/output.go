package interp

import (
	"fmt"
	"io"
	"os"

	"github.com/flashbench-go/flashbench/internal/coreerr"
	"github.com/flashbench-go/flashbench/internal/device"
	"github.com/flashbench-go/flashbench/internal/value"
)

// Stdout is the writer PRINT, NEWLINE, and PRINTF write to. Tests
// redirect it to a buffer; production code leaves it at the default.
var Stdout io.Writer = os.Stdout

func printHandler(op *OpNode, dev device.TimedIO, ctx ExecContext) (Value, error) {
	fmt.Fprint(Stdout, op.String)
	op.state = stateFilled
	return Value{}, nil
}

func newlineHandler(op *OpNode, dev device.TimedIO, ctx ExecContext) (Value, error) {
	fmt.Fprint(Stdout, "\n")
	op.state = stateFilled
	return Value{}, nil
}

// formatHandler propagates its child then converts every scalar leaf
// to its 7-character display string via value.Format.
func formatHandler(op *OpNode, dev device.TimedIO, ctx ExecContext) (Value, error) {
	v, err := propagate(op, dev, ctx)
	if err != nil {
		return Value{}, err
	}
	formatted, err := value.Format(v)
	if err != nil {
		return Value{}, coreerr.New("FORMAT", coreerr.CodeUnformattable, err.Error())
	}
	op.result = formatted
	return formatted, nil
}

// bpsHandler propagates its child then converts Ns leaves to Bps
// using the current context's length as the byte count.
func bpsHandler(op *OpNode, dev device.TimedIO, ctx ExecContext) (Value, error) {
	v, err := propagate(op, dev, ctx)
	if err != nil {
		return Value{}, err
	}
	converted, err := value.BytesPerSecond(v, ctx.Length)
	if err != nil {
		return Value{}, coreerr.New("BPS", coreerr.CodeTypeMismatch, err.Error())
	}
	op.result = converted
	return converted, nil
}

// printfHandler propagates its child then prints the result: scalars
// print as their integer or string form, 1-D arrays as
// space-separated entries on one line, 2-D arrays as one row per
// line.
func printfHandler(op *OpNode, dev device.TimedIO, ctx ExecContext) (Value, error) {
	v, err := propagate(op, dev, ctx)
	if err != nil {
		return Value{}, err
	}
	writeValue(Stdout, v)
	return v, nil
}

func writeValue(w io.Writer, v Value) {
	switch v.Kind {
	case value.Str:
		fmt.Fprint(w, v.StrString())
	case value.Array:
		if v.Cols > 0 {
			for r := uint32(0); r < v.Rows; r++ {
				for c := uint32(0); c < v.Cols; c++ {
					if c > 0 {
						fmt.Fprint(w, " ")
					}
					writeValue(w, v.Items[r*v.Cols+c])
				}
				fmt.Fprint(w, "\n")
			}
			return
		}
		for i, item := range v.Items {
			if i > 0 {
				fmt.Fprint(w, " ")
			}
			writeValue(w, item)
		}
	default:
		fmt.Fprintf(w, "%d", v.Scalar)
	}
}

