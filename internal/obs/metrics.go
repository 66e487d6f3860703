package obs

import (
	"sync/atomic"
	"time"

	"main/internal/bus"
)

const maxCategory = int(bus.CategoryData)

// Metrics collects lightweight counters and latency stats around the
// engine's dispatch loop. All methods are nil-safe so wiring metrics stays
// optional.
type Metrics struct {
	categoryCounts [maxCategory + 1]uint64
	riskRejects    uint64
	handlerErrors  uint64
	queueHighWater uint64

	dispatchLatency LatencyStats
}

// LatencyStats aggregates duration samples in nanoseconds.
type LatencyStats struct {
	count uint64
	sum   uint64
	min   uint64
	max   uint64
}

// LatencySnapshot is a point-in-time view of latency stats.
type LatencySnapshot struct {
	Count uint64
	Min   time.Duration
	Max   time.Duration
	Avg   time.Duration
}

// Snapshot captures the current metrics values.
type Snapshot struct {
	CategoryCounts  map[bus.Category]uint64
	RiskRejects     uint64
	HandlerErrors   uint64
	QueueHighWater  uint64
	DispatchLatency LatencySnapshot
}

// NewMetrics allocates a metrics container.
func NewMetrics() *Metrics {
	return &Metrics{}
}

// ObserveDispatch counts one dispatched message and records how long its
// handler ran.
func (m *Metrics) ObserveDispatch(c bus.Category, d time.Duration) {
	if m == nil {
		return
	}
	idx := int(c)
	if idx >= 0 && idx < len(m.categoryCounts) {
		atomic.AddUint64(&m.categoryCounts[idx], 1)
	}
	m.dispatchLatency.Observe(d)
}

// IncRiskReject records a command denied by the risk gate.
func (m *Metrics) IncRiskReject() {
	if m == nil {
		return
	}
	atomic.AddUint64(&m.riskRejects, 1)
}

// IncHandlerError records a handler failure surfaced to the error callback.
func (m *Metrics) IncHandlerError() {
	if m == nil {
		return
	}
	atomic.AddUint64(&m.handlerErrors, 1)
}

// ObserveQueueDepth tracks the deepest backlog seen.
func (m *Metrics) ObserveQueueDepth(n int) {
	if m == nil || n < 0 {
		return
	}
	depth := uint64(n)
	for {
		cur := atomic.LoadUint64(&m.queueHighWater)
		if depth <= cur {
			return
		}
		if atomic.CompareAndSwapUint64(&m.queueHighWater, cur, depth) {
			return
		}
	}
}

// Snapshot returns a copy of the current metrics values.
func (m *Metrics) Snapshot() Snapshot {
	if m == nil {
		return Snapshot{}
	}
	counts := make(map[bus.Category]uint64)
	for i := range m.categoryCounts {
		if v := atomic.LoadUint64(&m.categoryCounts[i]); v > 0 {
			counts[bus.Category(i)] = v
		}
	}
	return Snapshot{
		CategoryCounts:  counts,
		RiskRejects:     atomic.LoadUint64(&m.riskRejects),
		HandlerErrors:   atomic.LoadUint64(&m.handlerErrors),
		QueueHighWater:  atomic.LoadUint64(&m.queueHighWater),
		DispatchLatency: m.dispatchLatency.Snapshot(),
	}
}

// Observe records a duration sample.
func (l *LatencyStats) Observe(d time.Duration) {
	if d < 0 {
		return
	}
	nanos := uint64(d)
	atomic.AddUint64(&l.count, 1)
	atomic.AddUint64(&l.sum, nanos)

	for {
		min := atomic.LoadUint64(&l.min)
		if min != 0 && nanos >= min {
			break
		}
		if atomic.CompareAndSwapUint64(&l.min, min, nanos) {
			break
		}
	}

	for {
		max := atomic.LoadUint64(&l.max)
		if nanos <= max {
			break
		}
		if atomic.CompareAndSwapUint64(&l.max, max, nanos) {
			break
		}
	}
}

// Snapshot returns the aggregated latency stats.
func (l *LatencyStats) Snapshot() LatencySnapshot {
	count := atomic.LoadUint64(&l.count)
	if count == 0 {
		return LatencySnapshot{}
	}
	sum := atomic.LoadUint64(&l.sum)
	min := atomic.LoadUint64(&l.min)
	max := atomic.LoadUint64(&l.max)
	return LatencySnapshot{
		Count: count,
		Min:   time.Duration(min),
		Max:   time.Duration(max),
		Avg:   time.Duration(sum / count),
	}
}
