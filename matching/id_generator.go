package matching

import (
	"strconv"
	"sync/atomic"
)

// idGenerator mints opaque, monotonically increasing decimal IDs
// prefixed with a fixed string (e.g. "T" for trades).
type idGenerator struct {
	prefix  string
	counter uint64
}

func newIDGenerator(prefix string) *idGenerator {
	return &idGenerator{prefix: prefix}
}

func (g *idGenerator) next() string {
	count := atomic.AddUint64(&g.counter, 1)
	return g.prefix + strconv.FormatUint(count, 10)
}
