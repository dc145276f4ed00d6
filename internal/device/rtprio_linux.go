//go:build linux

package device

import (
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/flashbench-go/flashbench/internal/constants"
	"github.com/flashbench-go/flashbench/internal/logging"
)

// schedFIFO is SCHED_FIFO from linux/sched.h.
const schedFIFO = 1

// schedParam mirrors struct sched_param from sched.h.
type schedParam struct {
	priority int32
}

// elevatePriority attempts to switch the calling thread to SCHED_FIFO
// at constants.RTPriority. Failure (most commonly EPERM when not run
// as root, or CAP_SYS_NICE is absent) is logged and non-fatal — the
// benchmark still runs, just without realtime scheduling guarantees.
func elevatePriority() {
	param := schedParam{priority: constants.RTPriority}
	_, _, errno := unix.Syscall(unix.SYS_SCHED_SETSCHEDULER, 0, schedFIFO, uintptr(unsafe.Pointer(&param)))
	if errno != 0 {
		logging.Default().Warn("failed to set realtime priority", "errno", errno)
	}
}

// PinCPU binds the calling thread's CPU affinity mask to cpu, best
// effort. The CLI's --cpu flag calls it before any test runs, to
// reduce scheduling jitter.
func PinCPU(cpu int) error {
	var set unix.CPUSet
	set.Zero()
	set.Set(cpu)
	return unix.SchedSetaffinity(0, &set)
}
