package device

// Observer receives a notification for every timed I/O primitive the
// device layer executes, independent of the value returned to the
// interpreter. Implementations must be safe to call from a single
// goroutine (the interpreter never calls concurrently, per spec §5),
// but must not assume they run on any particular goroutine across
// the lifetime of a Device.
type Observer interface {
	ObserveRead(bytes uint64, latencyNs int64, err error)
	ObserveWrite(bytes uint64, latencyNs int64, err error)
	ObserveDiscard(bytes uint64, latencyNs int64, err error)
}

// noopObserver discards every observation. It is the default when a
// Device is opened without an explicit Observer.
type noopObserver struct{}

func (noopObserver) ObserveRead(uint64, int64, error)    {}
func (noopObserver) ObserveWrite(uint64, int64, error)   {}
func (noopObserver) ObserveDiscard(uint64, int64, error) {}
