//go:build !linux

package device

import "github.com/flashbench-go/flashbench/internal/logging"

// elevatePriority is a no-op on non-Linux platforms; flashbench's
// timed primitives are meaningless without O_DIRECT/BLKDISCARD
// semantics anyway, but this keeps the package building for tooling
// that cross-compiles (go vet, gopls) on other hosts.
func elevatePriority() {
	logging.Default().Debug("realtime priority elevation skipped (non-linux build)")
}

// PinCPU does nothing on non-Linux platforms and returns nil.
func PinCPU(cpu int) error {
	return nil
}
