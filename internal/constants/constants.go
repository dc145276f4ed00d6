// Package constants holds module-wide default values and limits shared
// between the device I/O layer, the interpreter, and the CLI.
package constants

import "time"

// Buffer and alignment constants for the device I/O layer.
const (
	// MaxBufferSize is the largest single transfer the device layer will
	// service. Requests above this are rejected with TooBig.
	MaxBufferSize = 64 << 20

	// PageAlignment is the alignment required for O_DIRECT buffers.
	PageAlignment = 4096
)

// Default CLI parameters, matching the defaults table in §6.3.
const (
	DefaultCount            = 8
	DefaultScatterOrder     = 9
	DefaultScatterSpan      = 1
	DefaultBlockSize        = 16 * 1024
	DefaultEraseSize        = 4 << 20
	DefaultFATCandidates    = 6
	DefaultOpenAUCandidates = 2
)

// RTPriority is the SCHED_FIFO priority requested by the best-effort
// realtime elevation performed at device setup.
const RTPriority = 10

// ShortReadRetryDelay backs off between retries of a transient
// (EAGAIN-like) short read or write before the next attempt.
const ShortReadRetryDelay = time.Microsecond
