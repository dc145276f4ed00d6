package interp

import (
	"github.com/flashbench-go/flashbench/internal/coreerr"
	"github.com/flashbench-go/flashbench/internal/device"
	"github.com/flashbench-go/flashbench/internal/value"
)

func readHandler(op *OpNode, dev device.TimedIO, ctx ExecContext) (Value, error) {
	ns, err := dev.TimeRead(ctx.Offset, ctx.Length)
	if err != nil {
		return Value{}, coreerr.Wrap("READ", err)
	}
	return fill(op, value.NewNs(ns)), nil
}

func writeZeroHandler(op *OpNode, dev device.TimedIO, ctx ExecContext) (Value, error) {
	return timedWrite(op, dev, ctx, device.WriteZero)
}

func writeOneHandler(op *OpNode, dev device.TimedIO, ctx ExecContext) (Value, error) {
	return timedWrite(op, dev, ctx, device.WriteOne)
}

func writeRandHandler(op *OpNode, dev device.TimedIO, ctx ExecContext) (Value, error) {
	return timedWrite(op, dev, ctx, device.WriteRand)
}

func timedWrite(op *OpNode, dev device.TimedIO, ctx ExecContext, which device.WriteBuffer) (Value, error) {
	ns, err := dev.TimeWrite(ctx.Offset, ctx.Length, which)
	if err != nil {
		return Value{}, coreerr.Wrap(op.Code.String(), err)
	}
	return fill(op, value.NewNs(ns)), nil
}

func eraseHandler(op *OpNode, dev device.TimedIO, ctx ExecContext) (Value, error) {
	ns, err := dev.TimeErase(ctx.Offset, ctx.Length)
	if err != nil {
		return Value{}, coreerr.Wrap("ERASE", err)
	}
	return fill(op, value.NewNs(ns)), nil
}

func lengthHandler(op *OpNode, dev device.TimedIO, ctx ExecContext) (Value, error) {
	return fill(op, value.NewBytes(ctx.Length)), nil
}

func offsetHandler(op *OpNode, dev device.TimedIO, ctx ExecContext) (Value, error) {
	return fill(op, value.NewBytes(ctx.Offset)), nil
}

// fill records a leaf result into op's scratch and returns it.
func fill(op *OpNode, v Value) Value {
	op.result = v
	op.state = stateFilled
	return v
}
