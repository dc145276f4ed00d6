package flashbench

import (
	"sync/atomic"
	"time"

	"github.com/flashbench-go/flashbench/internal/device"
)

// LatencyBuckets defines the latency histogram buckets in
// nanoseconds, logarithmically spaced from 1us to 10s.
var LatencyBuckets = []uint64{
	1_000,
	10_000,
	100_000,
	1_000_000,
	10_000_000,
	100_000_000,
	1_000_000_000,
	10_000_000_000,
}

const numLatencyBuckets = 8

// Metrics tracks read/write/erase counters and a latency histogram
// across a benchmark run. Safe for concurrent use, though flashbench
// itself issues I/O single-threaded by design.
type Metrics struct {
	ReadOps  atomic.Uint64
	WriteOps atomic.Uint64
	EraseOps atomic.Uint64

	ReadBytes  atomic.Uint64
	WriteBytes atomic.Uint64
	EraseBytes atomic.Uint64

	ReadErrors  atomic.Uint64
	WriteErrors atomic.Uint64
	EraseErrors atomic.Uint64

	TotalLatencyNs atomic.Uint64
	OpCount        atomic.Uint64

	LatencyBuckets [numLatencyBuckets]atomic.Uint64

	StartTime atomic.Int64
	StopTime  atomic.Int64
}

// NewMetrics creates a new metrics instance with StartTime set to now.
func NewMetrics() *Metrics {
	m := &Metrics{}
	m.StartTime.Store(time.Now().UnixNano())
	return m
}

// RecordRead records a timed read. err nil means success.
func (m *Metrics) RecordRead(bytes uint64, latencyNs int64, err error) {
	m.ReadOps.Add(1)
	if err == nil {
		m.ReadBytes.Add(bytes)
	} else {
		m.ReadErrors.Add(1)
	}
	m.recordLatency(latencyNs)
}

// RecordWrite records a timed write. err nil means success.
func (m *Metrics) RecordWrite(bytes uint64, latencyNs int64, err error) {
	m.WriteOps.Add(1)
	if err == nil {
		m.WriteBytes.Add(bytes)
	} else {
		m.WriteErrors.Add(1)
	}
	m.recordLatency(latencyNs)
}

// RecordErase records a timed discard. err nil means success.
func (m *Metrics) RecordErase(bytes uint64, latencyNs int64, err error) {
	m.EraseOps.Add(1)
	if err == nil {
		m.EraseBytes.Add(bytes)
	} else {
		m.EraseErrors.Add(1)
	}
	m.recordLatency(latencyNs)
}

func (m *Metrics) recordLatency(latencyNs int64) {
	if latencyNs < 0 {
		return
	}
	n := uint64(latencyNs)
	m.TotalLatencyNs.Add(n)
	m.OpCount.Add(1)

	for i, bucket := range LatencyBuckets {
		if n <= bucket {
			m.LatencyBuckets[i].Add(1)
		}
	}
}

// Stop marks the run as finished.
func (m *Metrics) Stop() {
	m.StopTime.Store(time.Now().UnixNano())
}

// MetricsSnapshot is a point-in-time view of Metrics with derived
// statistics computed.
type MetricsSnapshot struct {
	ReadOps  uint64
	WriteOps uint64
	EraseOps uint64

	ReadBytes  uint64
	WriteBytes uint64
	EraseBytes uint64

	ReadErrors  uint64
	WriteErrors uint64
	EraseErrors uint64

	AvgLatencyNs uint64
	UptimeNs     uint64

	LatencyP50Ns  uint64
	LatencyP99Ns  uint64
	LatencyP999Ns uint64

	LatencyHistogram [numLatencyBuckets]uint64

	ReadIOPS       float64
	WriteIOPS      float64
	ReadBandwidth  float64
	WriteBandwidth float64
	TotalOps       uint64
	TotalBytes     uint64
	ErrorRate      float64
}

// Snapshot computes a MetricsSnapshot from the current counter state.
func (m *Metrics) Snapshot() MetricsSnapshot {
	snap := MetricsSnapshot{
		ReadOps:     m.ReadOps.Load(),
		WriteOps:    m.WriteOps.Load(),
		EraseOps:    m.EraseOps.Load(),
		ReadBytes:   m.ReadBytes.Load(),
		WriteBytes:  m.WriteBytes.Load(),
		EraseBytes:  m.EraseBytes.Load(),
		ReadErrors:  m.ReadErrors.Load(),
		WriteErrors: m.WriteErrors.Load(),
		EraseErrors: m.EraseErrors.Load(),
	}

	snap.TotalOps = snap.ReadOps + snap.WriteOps + snap.EraseOps
	snap.TotalBytes = snap.ReadBytes + snap.WriteBytes + snap.EraseBytes

	totalLatencyNs := m.TotalLatencyNs.Load()
	opCount := m.OpCount.Load()
	if opCount > 0 {
		snap.AvgLatencyNs = totalLatencyNs / opCount
	}

	startTime := m.StartTime.Load()
	stopTime := m.StopTime.Load()
	if stopTime > 0 {
		snap.UptimeNs = uint64(stopTime - startTime)
	} else {
		snap.UptimeNs = uint64(time.Now().UnixNano() - startTime)
	}

	if snap.UptimeNs > 0 {
		uptimeSeconds := float64(snap.UptimeNs) / 1e9
		snap.ReadIOPS = float64(snap.ReadOps) / uptimeSeconds
		snap.WriteIOPS = float64(snap.WriteOps) / uptimeSeconds
		snap.ReadBandwidth = float64(snap.ReadBytes) / uptimeSeconds
		snap.WriteBandwidth = float64(snap.WriteBytes) / uptimeSeconds
	}

	totalErrors := snap.ReadErrors + snap.WriteErrors + snap.EraseErrors
	if snap.TotalOps > 0 {
		snap.ErrorRate = float64(totalErrors) / float64(snap.TotalOps) * 100.0
	}

	for i := 0; i < numLatencyBuckets; i++ {
		snap.LatencyHistogram[i] = m.LatencyBuckets[i].Load()
	}

	if opCount > 0 {
		snap.LatencyP50Ns = m.calculatePercentile(0.50)
		snap.LatencyP99Ns = m.calculatePercentile(0.99)
		snap.LatencyP999Ns = m.calculatePercentile(0.999)
	}

	return snap
}

// calculatePercentile estimates the latency at the given percentile
// (0.0-1.0) by linear interpolation between histogram buckets.
func (m *Metrics) calculatePercentile(percentile float64) uint64 {
	totalOps := m.OpCount.Load()
	if totalOps == 0 {
		return 0
	}

	targetCount := uint64(float64(totalOps) * percentile)

	prevBucket := uint64(0)
	for i, bucket := range LatencyBuckets {
		bucketCount := m.LatencyBuckets[i].Load()
		if bucketCount >= targetCount {
			prevCount := uint64(0)
			if i > 0 {
				prevCount = m.LatencyBuckets[i-1].Load()
			}
			if bucketCount == prevCount {
				return bucket
			}
			fraction := float64(targetCount-prevCount) / float64(bucketCount-prevCount)
			return prevBucket + uint64(fraction*float64(bucket-prevBucket))
		}
		prevBucket = bucket
	}

	return LatencyBuckets[numLatencyBuckets-1]
}

// Reset zeroes all counters and restarts StartTime. Useful between
// fixed-shape tests run in the same process.
func (m *Metrics) Reset() {
	m.ReadOps.Store(0)
	m.WriteOps.Store(0)
	m.EraseOps.Store(0)
	m.ReadBytes.Store(0)
	m.WriteBytes.Store(0)
	m.EraseBytes.Store(0)
	m.ReadErrors.Store(0)
	m.WriteErrors.Store(0)
	m.EraseErrors.Store(0)
	m.TotalLatencyNs.Store(0)
	m.OpCount.Store(0)
	for i := 0; i < numLatencyBuckets; i++ {
		m.LatencyBuckets[i].Store(0)
	}
	m.StartTime.Store(time.Now().UnixNano())
	m.StopTime.Store(0)
}

// MetricsObserver implements device.Observer by recording every
// primitive call into a Metrics instance.
type MetricsObserver struct {
	metrics *Metrics
}

// NewMetricsObserver returns an observer that records into m.
func NewMetricsObserver(m *Metrics) *MetricsObserver {
	return &MetricsObserver{metrics: m}
}

func (o *MetricsObserver) ObserveRead(bytes uint64, latencyNs int64, err error) {
	o.metrics.RecordRead(bytes, latencyNs, err)
}

func (o *MetricsObserver) ObserveWrite(bytes uint64, latencyNs int64, err error) {
	o.metrics.RecordWrite(bytes, latencyNs, err)
}

func (o *MetricsObserver) ObserveDiscard(bytes uint64, latencyNs int64, err error) {
	o.metrics.RecordErase(bytes, latencyNs, err)
}

var _ device.Observer = (*MetricsObserver)(nil)
