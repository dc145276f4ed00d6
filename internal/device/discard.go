package device

import (
	"time"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/flashbench-go/flashbench/internal/coreerr"
)

// blkDiscard is the Linux BLKDISCARD ioctl request number, defined as
// _IO(0x12, 119) in linux/fs.h. golang.org/x/sys/unix does not expose
// it as a named constant, so it is reproduced here.
const blkDiscard = 0x1277

// TimeErase issues a BLKDISCARD for [pos%size, pos%size+size) and
// returns elapsed nanoseconds.
func (d *Device) TimeErase(pos, size int64) (int64, error) {
	target := wrapPos(pos, d.size)

	rng := [2]uint64{uint64(target), uint64(size)}

	start := time.Now()
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(d.fd), uintptr(blkDiscard), uintptr(unsafe.Pointer(&rng[0])))
	elapsed := time.Since(start).Nanoseconds()

	if errno != 0 {
		d.observer.ObserveDiscard(uint64(size), elapsed, errno)
		return 0, coreerr.Wrap("time_erase", errno)
	}
	d.observer.ObserveDiscard(uint64(size), elapsed, nil)
	return elapsed, nil
}
