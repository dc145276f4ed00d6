package device

// TimedIO is the timed-I/O primitive contract the interpreter core
// depends on. *Device is the only production implementation; tests
// substitute an in-memory fake behind the same three methods.
type TimedIO interface {
	TimeRead(pos, size int64) (int64, error)
	TimeWrite(pos, size int64, which WriteBuffer) (int64, error)
	TimeErase(pos, size int64) (int64, error)
}

var _ TimedIO = (*Device)(nil)
