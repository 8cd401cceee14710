package system

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// IDGenerator produces unique IDs for system references. The hosting layer
// injects one when it creates references; the engine never mints IDs itself.
type IDGenerator interface {
	// NextID returns a new ID, unique within the generator's lifetime.
	NextID() string
}

// UUIDGenerator mints random UUIDv4 identifiers. Safe for concurrent use.
type UUIDGenerator struct{}

// NextID returns a new UUIDv4 string.
func (UUIDGenerator) NextID() string {
	return uuid.NewString()
}

// CounterGenerator mints sequential IDs with a fixed prefix. Deterministic,
// which makes it the right generator for tests and for reproducible design
// files. Safe for concurrent use.
type CounterGenerator struct {
	prefix string
	n      atomic.Uint64
}

// NewCounterGenerator returns a CounterGenerator whose IDs are
// "<prefix>-1", "<prefix>-2", ...
//
// Precondition: prefix must be non-empty.
func NewCounterGenerator(prefix string) *CounterGenerator {
	if prefix == "" {
		panic("system: NewCounterGenerator precondition violated: prefix must be non-empty")
	}
	return &CounterGenerator{prefix: prefix}
}

// NextID returns the next sequential ID.
func (g *CounterGenerator) NextID() string {
	return fmt.Sprintf("%s-%d", g.prefix, g.n.Add(1))
}
