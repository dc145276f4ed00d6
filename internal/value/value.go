// Package value implements the result value model every interpreter
// operator produces and consumes: a small tagged union of scalar
// kinds plus homogeneous one- or two-dimensional arrays of the same.
//
// The original C source packed a 3-bit type tag into the low bits of
// a union pointer. That is a space hack with no behavioral meaning;
// this package replaces it with an ordinary Go discriminated union
// (per spec §9).
package value

import (
	"fmt"
	"math"
)

// Kind identifies which field of a Value is meaningful.
type Kind int

const (
	// None represents the absence of a result.
	None Kind = iota
	// Ns is a duration in nanoseconds.
	Ns
	// Bytes is a byte count or offset.
	Bytes
	// Bps is a throughput in bytes per second.
	Bps
	// Str is a fixed-width 7-character display string.
	Str
	// Array is a homogeneous 1-D or 2-D table of scalar Values.
	Array
)

func (k Kind) String() string {
	switch k {
	case None:
		return "none"
	case Ns:
		return "ns"
	case Bytes:
		return "bytes"
	case Bps:
		return "bps"
	case Str:
		return "str"
	case Array:
		return "array"
	default:
		return "unknown"
	}
}

// Value is the tagged variant carried by every interpreter operator.
//
// Invariants: a non-empty Array has a single element Kind; Arrays
// nest at most one level deep (Rows/Cols describe a 1-D or 2-D shape,
// never a 3-D one); Str holds ASCII padded with trailing spaces to
// 7 characters.
type Value struct {
	Kind Kind

	// Scalar payload, meaningful when Kind is Ns, Bytes, or Bps.
	Scalar int64

	// Str payload, meaningful when Kind is Str. Always exactly 7 bytes.
	Text [7]byte

	// Array payload, meaningful when Kind is Array.
	Items []Value
	Rows  uint32
	Cols  uint32
}

// IsZero reports whether v is the absence-of-result value.
func (v Value) IsZero() bool { return v.Kind == None }

// NewNs builds an Ns scalar.
func NewNs(ns int64) Value { return Value{Kind: Ns, Scalar: ns} }

// NewBytes builds a Bytes scalar.
func NewBytes(n int64) Value { return Value{Kind: Bytes, Scalar: n} }

// NewBps builds a Bps scalar.
func NewBps(bps int64) Value { return Value{Kind: Bps, Scalar: bps} }

// NewStr builds a Str scalar, truncating or space-padding to 7 bytes.
func NewStr(s string) Value {
	var buf [7]byte
	for i := range buf {
		buf[i] = ' '
	}
	copy(buf[:], s)
	return Value{Kind: Str, Text: buf}
}

// NewArray1D builds a 1-D array from items, all of which must share a
// Kind (checked by the caller — this constructor trusts its input).
func NewArray1D(items []Value) Value {
	return Value{Kind: Array, Items: items, Rows: uint32(len(items))}
}

// NewArray2D builds a 2-D array of rows*cols items in row-major order.
func NewArray2D(items []Value, rows, cols uint32) Value {
	return Value{Kind: Array, Items: items, Rows: rows, Cols: cols}
}

// ElementKind returns the Kind of this array's elements, or None for
// an empty array.
func (v Value) ElementKind() Kind {
	if v.Kind != Array || len(v.Items) == 0 {
		return None
	}
	return v.Items[0].Kind
}

// StrString returns the Str payload with trailing padding trimmed.
func (v Value) StrString() string {
	n := len(v.Text)
	for n > 0 && v.Text[n-1] == ' ' {
		n--
	}
	return string(v.Text[:n])
}

// Format pretty-prints a scalar Value as a 7-character string, or maps
// recursively over an array's elements. Any other scalar Kind (or
// None) is Unformattable — the caller maps that to a CoreError.
func Format(v Value) (Value, error) {
	switch v.Kind {
	case Ns:
		return NewStr(formatNs(v.Scalar)), nil
	case Bytes:
		return NewStr(formatBytes(v.Scalar)), nil
	case Bps:
		return NewStr(formatBps(v.Scalar)), nil
	case Array:
		out := make([]Value, len(v.Items))
		for i, item := range v.Items {
			formatted, err := Format(item)
			if err != nil {
				return Value{}, err
			}
			out[i] = formatted
		}
		return Value{Kind: Array, Items: out, Rows: v.Rows, Cols: v.Cols}, nil
	default:
		return Value{}, fmt.Errorf("unformattable value kind %s", v.Kind)
	}
}

func formatNs(ns int64) string {
	// "us" rather than "µs": Str is a fixed 7-byte ASCII field (per
	// the data model), and the micro sign is two UTF-8 bytes. Values
	// under ten units fit in 7 bytes; longer strings (e.g. "123.456us")
	// are cut to their first 7 bytes by NewStr.
	switch {
	case ns < 1e3:
		return fmt.Sprintf("%dns", ns)
	case ns < 1e6:
		return fmt.Sprintf("%.3fus", float64(ns)/1e3)
	case ns < 1e9:
		return fmt.Sprintf("%.3fms", float64(ns)/1e6)
	default:
		return fmt.Sprintf("%.4fs", float64(ns)/1e9)
	}
}

func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%dB", n)
	}
	div, exp := int64(unit), 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}
	units := []string{"KiB", "MiB", "GiB"}
	if exp >= len(units) {
		exp = len(units) - 1
	}
	return fmt.Sprintf("%.3g%s", float64(n)/float64(div), units[exp])
}

func formatBps(n int64) string {
	const unit = 1000
	if n < unit {
		return fmt.Sprintf("%dB/s", n)
	}
	div, exp := int64(unit), 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}
	units := []string{"K/s", "M/s", "G/s"}
	if exp >= len(units) {
		exp = len(units) - 1
	}
	return fmt.Sprintf("%.3g%s", float64(n)/float64(div), units[exp])
}

// BytesPerSecond converts an Ns leaf to Bps using len as the byte
// count (1e9*len/ns), recursing into arrays. Any non-Ns leaf is an
// error.
func BytesPerSecond(v Value, length int64) (Value, error) {
	switch v.Kind {
	case Ns:
		if v.Scalar <= 0 {
			return NewBps(0), nil
		}
		bps := int64(math.Round(1e9 * float64(length) / float64(v.Scalar)))
		return NewBps(bps), nil
	case Array:
		out := make([]Value, len(v.Items))
		for i, item := range v.Items {
			converted, err := BytesPerSecond(item, length)
			if err != nil {
				return Value{}, err
			}
			out[i] = converted
		}
		return Value{Kind: Array, Items: out, Rows: v.Rows, Cols: v.Cols}, nil
	default:
		return Value{}, fmt.Errorf("bytes_per_second: non-Ns leaf of kind %s", v.Kind)
	}
}

// Aggregate names the reduction applied by REDUCE or by an aggregating
// call mode.
type Aggregate int

const (
	AggNone Aggregate = iota
	AggMin
	AggMax
	AggAvg
	AggTotal
	AggIgnore
)

// ReduceScalar combines a sequence of homogeneous Ns or Bps scalars.
// Min/Max treat a zero value as "unset" and skip it — this preserves
// a quirk of the original C tool: a genuine zero-nanosecond
// measurement (never observed in practice, but theoretically
// reachable) is silently ignored rather than winning the reduction.
func ReduceScalar(items []Value, agg Aggregate) (Value, error) {
	if len(items) == 0 {
		return Value{}, fmt.Errorf("reduce_scalar: empty input")
	}
	kind := items[0].Kind
	if kind != Ns && kind != Bps {
		return Value{}, fmt.Errorf("reduce_scalar: unsupported kind %s", kind)
	}

	var result int64
	var total int64
	for _, it := range items {
		if it.Kind != kind {
			return Value{}, fmt.Errorf("reduce_scalar: mixed kinds %s and %s", kind, it.Kind)
		}
		switch agg {
		case AggMin:
			if it.Scalar != 0 && (result == 0 || it.Scalar < result) {
				result = it.Scalar
			}
		case AggMax:
			if it.Scalar != 0 && (result == 0 || it.Scalar > result) {
				result = it.Scalar
			}
		case AggAvg, AggTotal:
			total += it.Scalar
		default:
			return Value{}, fmt.Errorf("reduce_scalar: unsupported aggregate %v", agg)
		}
	}

	switch agg {
	case AggAvg:
		result = total / int64(len(items))
	case AggTotal:
		result = total
	}

	return Value{Kind: kind, Scalar: result}, nil
}
