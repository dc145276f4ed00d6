package flashbench

import (
	"sync"

	"github.com/flashbench-go/flashbench/internal/coreerr"
	"github.com/flashbench-go/flashbench/internal/device"
)

// MockDevice is an in-memory implementation of device.TimedIO for
// exercising the interpreter without a real block device. Timings are
// synthetic: every call sleeps zero nanoseconds and returns a
// deterministic, size-proportional latency so reduce/format/bps tests
// have non-degenerate numbers to work with.
type MockDevice struct {
	mu   sync.Mutex
	data []byte
	size int64

	readCalls  int
	writeCalls int
	eraseCalls int

	// LatencyNs, when non-zero, overrides the synthetic per-call
	// latency with a fixed value — useful for pinning REDUCE/BPS
	// test expectations.
	LatencyNs int64
}

// NewMockDevice creates a mock device of the given size, zero-filled.
func NewMockDevice(size int64) *MockDevice {
	return &MockDevice{data: make([]byte, size), size: size}
}

func (m *MockDevice) Size() int64 { return m.size }

func (m *MockDevice) wrapPos(pos int64) int64 {
	if m.size == 0 {
		return 0
	}
	pos %= m.size
	if pos < 0 {
		pos += m.size
	}
	return pos
}

func (m *MockDevice) latency(size int64) int64 {
	if m.LatencyNs != 0 {
		return m.LatencyNs
	}
	return size + 1
}

func (m *MockDevice) TimeRead(pos, size int64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.readCalls++
	target := m.wrapPos(pos)
	if target+size > m.size {
		return 0, coreerr.New("time_read", coreerr.CodeIOError, "read past end of mock device")
	}
	return m.latency(size), nil
}

func (m *MockDevice) TimeWrite(pos, size int64, which device.WriteBuffer) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writeCalls++
	target := m.wrapPos(pos)
	if target+size > m.size {
		return 0, coreerr.New("time_write", coreerr.CodeIOError, "write past end of mock device")
	}
	var fill byte
	switch which {
	case device.WriteZero:
		fill = 0x00
	case device.WriteOne:
		fill = 0xFF
	case device.WriteRand:
		fill = 0x5A
	}
	for i := target; i < target+size; i++ {
		m.data[i] = fill
	}
	return m.latency(size), nil
}

func (m *MockDevice) TimeErase(pos, size int64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.eraseCalls++
	target := m.wrapPos(pos)
	end := target + size
	if end > m.size {
		end = m.size
	}
	for i := target; i < end; i++ {
		m.data[i] = 0
	}
	return m.latency(size), nil
}

// CallCounts returns how many times each primitive has been invoked,
// for asserting idempotence and call-count invariants in tests.
func (m *MockDevice) CallCounts() (reads, writes, erases int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.readCalls, m.writeCalls, m.eraseCalls
}

// Bytes returns a copy of the device's backing storage, for asserting
// that a side-effect-free subtree left it unchanged.
func (m *MockDevice) Bytes() []byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]byte, len(m.data))
	copy(out, m.data)
	return out
}

var _ device.TimedIO = (*MockDevice)(nil)
