package flashbench

import (
	"github.com/flashbench-go/flashbench/internal/device"
	"github.com/flashbench-go/flashbench/internal/interp"
)

// Options configures Open. A zero Options attempts the best-effort
// realtime priority elevation and collects no metrics.
type Options struct {
	// SkipRealtimePriority disables the best-effort SCHED_FIFO
	// elevation Open otherwise attempts.
	SkipRealtimePriority bool

	// Metrics, when non-nil, receives a notification for every timed
	// primitive the device executes. Use NewMetrics to build one.
	Metrics *Metrics
}

// Device is a raw block device bound to the tree interpreter: Execute
// runs a benchmark program against it, optionally recording every
// timed primitive into the bound Metrics.
type Device struct {
	dev *device.Device
}

// Open opens path as a direct-I/O block device and returns a Device
// ready for Execute.
func Open(path string, opts Options) (*Device, error) {
	var observer device.Observer
	if opts.Metrics != nil {
		observer = NewMetricsObserver(opts.Metrics)
	}
	d, err := device.Open(path, device.Options{
		Observer:             observer,
		SkipRealtimePriority: opts.SkipRealtimePriority,
	})
	if err != nil {
		return nil, err
	}
	return &Device{dev: d}, nil
}

// Close releases the underlying file descriptor.
func (d *Device) Close() error { return d.dev.Close() }

// Size returns the device size in bytes, as recorded at Open time.
func (d *Device) Size() int64 { return d.dev.Size() }

// Execute runs root's benchmark program against the device, with the
// interpreter's initial offset, max span, and transfer length set to
// off, max, and length respectively.
func (d *Device) Execute(root *OpNode, off, max, length int64) (Value, error) {
	return interp.Execute(root, d.dev, off, max, length)
}

// TimedIO is the timed-I/O primitive contract Run executes a program
// against. *MockDevice implements it, as does the internal device type
// a Device wraps; Device itself does not.
type TimedIO = device.TimedIO

// Run executes root against any TimedIO implementation, not just a
// real Device — chiefly for running programs against a MockDevice in
// tests.
func Run(root *OpNode, dev TimedIO, off, max, length int64) (Value, error) {
	return interp.Execute(root, dev, off, max, length)
}
