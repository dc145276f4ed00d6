// Package device implements the device I/O layer (spec §4.1): opening
// a raw block device with direct, synchronous, no-atime semantics,
// maintaining page-aligned read/write buffers, and exposing timed
// read/write/discard primitives that return elapsed nanoseconds.
package device

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/flashbench-go/flashbench/internal/constants"
	"github.com/flashbench-go/flashbench/internal/coreerr"
)

// WriteBuffer selects which pre-filled write buffer a WRITE_* atom
// uses.
type WriteBuffer int

const (
	// WriteZero fills writes from the all-zero buffer.
	WriteZero WriteBuffer = iota
	// WriteOne fills writes from the all-one (0xFF) buffer.
	WriteOne
	// WriteRand fills writes from the repeating-byte-pattern buffer.
	WriteRand
)

// Device owns a direct-I/O file descriptor to a block device, its
// size, and four page-aligned buffers: one for reads and three
// pre-filled write buffers (0x00, 0xFF, 0x5A).
type Device struct {
	fd       int
	size     int64
	readBuf  []byte
	writeBuf [3][]byte
	observer Observer
}

// Options configures Open.
type Options struct {
	// Observer receives a notification for every timed primitive.
	// Defaults to a no-op observer.
	Observer Observer

	// SkipRealtimePriority disables the best-effort SCHED_FIFO
	// elevation performed at open time. Useful for tests and for
	// unprivileged runs where the elevation would just log a warning.
	SkipRealtimePriority bool
}

// Open opens path in O_DIRECT|O_SYNC mode with atime updates
// suppressed, seeks to the end to record its size, and allocates the
// four page-aligned buffers used by every timed primitive.
func Open(path string, opts Options) (*Device, error) {
	if !opts.SkipRealtimePriority {
		elevatePriority()
	}

	fd, err := unix.Open(path, unix.O_RDWR|unix.O_DIRECT|unix.O_SYNC|unix.O_NOATIME, 0)
	if err != nil {
		return nil, coreerr.Wrap("open", err)
	}

	size, err := unix.Seek(fd, 0, unix.SEEK_END)
	if err != nil {
		unix.Close(fd)
		return nil, coreerr.Wrap("open", err)
	}

	observer := opts.Observer
	if observer == nil {
		observer = noopObserver{}
	}

	d := &Device{
		fd:       fd,
		size:     size,
		readBuf:  alignedBuffer(constants.MaxBufferSize, 0x00),
		observer: observer,
	}
	d.writeBuf[WriteZero] = alignedBuffer(constants.MaxBufferSize, 0x00)
	d.writeBuf[WriteOne] = alignedBuffer(constants.MaxBufferSize, 0xFF)
	d.writeBuf[WriteRand] = alignedBuffer(constants.MaxBufferSize, 0x5A)

	return d, nil
}

// Close releases the file descriptor and frees the buffers.
func (d *Device) Close() error {
	d.readBuf = nil
	d.writeBuf[0], d.writeBuf[1], d.writeBuf[2] = nil, nil, nil
	if err := unix.Close(d.fd); err != nil {
		return coreerr.Wrap("close", err)
	}
	return nil
}

// Size returns the device size in bytes, as recorded at Open time.
func (d *Device) Size() int64 { return d.size }

// alignedBuffer allocates a slice of n bytes aligned to the device
// layer's page alignment, filled with fill.
func alignedBuffer(n int, fill byte) []byte {
	buf := make([]byte, n+constants.PageAlignment)
	base := uintptr(unsafe.Pointer(&buf[0]))
	offset := (constants.PageAlignment - int(base%constants.PageAlignment)) % constants.PageAlignment
	aligned := buf[offset : offset+n]
	for i := range aligned {
		aligned[i] = fill
	}
	return aligned
}

func wrapPos(pos, size int64) int64 {
	if size <= 0 {
		return 0
	}
	m := pos % size
	if m < 0 {
		m += size
	}
	return m
}

func tooBig(op string, size int64) error {
	return coreerr.New(op, coreerr.CodeTooBig,
		fmt.Sprintf("size %d exceeds max buffer size %d", size, constants.MaxBufferSize))
}
