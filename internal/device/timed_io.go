package device

import (
	"time"

	"golang.org/x/sys/unix"

	"github.com/flashbench-go/flashbench/internal/constants"
	"github.com/flashbench-go/flashbench/internal/coreerr"
)

// TimeRead issues one page-aligned read of size bytes at pos%size
// into the device's read buffer and returns elapsed wall time in
// nanoseconds. Short reads are retried until satisfied or a
// non-transient error occurs.
func (d *Device) TimeRead(pos, size int64) (int64, error) {
	if size > constants.MaxBufferSize {
		return 0, tooBig("time_read", size)
	}

	target := wrapPos(pos, d.size)
	buf := d.readBuf[:size]

	start := time.Now()
	remaining := buf
	for len(remaining) > 0 {
		n, err := unix.Pread(d.fd, remaining, target)
		if err != nil {
			if err == unix.EAGAIN {
				time.Sleep(constants.ShortReadRetryDelay)
				continue
			}
			elapsed := time.Since(start).Nanoseconds()
			d.observer.ObserveRead(uint64(size), elapsed, err)
			return 0, coreerr.Wrap("time_read", err)
		}
		remaining = remaining[n:]
		target += int64(n)
	}
	elapsed := time.Since(start).Nanoseconds()
	d.observer.ObserveRead(uint64(size), elapsed, nil)
	return elapsed, nil
}

// TimeWrite issues one page-aligned write of size bytes at pos%size
// from the selected write buffer and returns elapsed nanoseconds.
func (d *Device) TimeWrite(pos, size int64, which WriteBuffer) (int64, error) {
	if size > constants.MaxBufferSize {
		return 0, tooBig("time_write", size)
	}

	target := wrapPos(pos, d.size)
	buf := d.writeBuf[which][:size]

	start := time.Now()
	remaining := buf
	for len(remaining) > 0 {
		n, err := unix.Pwrite(d.fd, remaining, target)
		if err != nil {
			if err == unix.EAGAIN {
				time.Sleep(constants.ShortReadRetryDelay)
				continue
			}
			elapsed := time.Since(start).Nanoseconds()
			d.observer.ObserveWrite(uint64(size), elapsed, err)
			return 0, coreerr.Wrap("time_write", err)
		}
		remaining = remaining[n:]
		target += int64(n)
	}
	elapsed := time.Since(start).Nanoseconds()
	d.observer.ObserveWrite(uint64(size), elapsed, nil)
	return elapsed, nil
}
