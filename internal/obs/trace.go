package obs

import (
	"sync/atomic"
	"time"
)

// CorrelationGenerator creates monotonically increasing correlation IDs for
// request/response pairing.
type CorrelationGenerator struct {
	next uint64
}

// NewCorrelationGenerator returns a generator seeded with the given value.
func NewCorrelationGenerator(seed uint64) *CorrelationGenerator {
	if seed == 0 {
		seed = uint64(time.Now().UTC().UnixNano())
	}
	return &CorrelationGenerator{next: seed}
}

// Next returns the next correlation ID.
func (g *CorrelationGenerator) Next() uint64 {
	if g == nil {
		return 0
	}
	return atomic.AddUint64(&g.next, 1)
}
