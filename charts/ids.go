package charts

import (
	"crypto/rand"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

// IDGenerator hands out chart instance identifiers.
type IDGenerator interface {
	NewID() ID
}

// ULIDGenerator produces time-sortable ULIDs from monotonic entropy.
type ULIDGenerator struct {
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

func NewULIDGenerator() *ULIDGenerator {
	return &ULIDGenerator{entropy: ulid.Monotonic(rand.Reader, 0)}
}

func (g *ULIDGenerator) NewID() ID {
	g.mu.Lock()
	defer g.mu.Unlock()
	return ID(ulid.MustNew(ulid.Timestamp(time.Now()), g.entropy).String())
}

// UUIDGenerator produces random v4 UUIDs.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID() ID {
	return ID(uuid.NewString())
}

// CounterGenerator produces prefix-1, prefix-2, ... in order.
type CounterGenerator struct {
	Prefix string

	mu sync.Mutex
	n  int
}

func (g *CounterGenerator) NewID() ID {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	prefix := g.Prefix
	if prefix == "" {
		prefix = "chart"
	}
	return ID(fmt.Sprintf("%s-%d", prefix, g.n))
}

// GeneratorFor returns the generator for a scheme name: "ulid" (default),
// "uuid" or "counter".
func GeneratorFor(scheme string) (IDGenerator, error) {
	switch strings.ToLower(scheme) {
	case "", "ulid":
		return NewULIDGenerator(), nil
	case "uuid":
		return UUIDGenerator{}, nil
	case "counter":
		return &CounterGenerator{}, nil
	}
	return nil, fmt.Errorf("unknown id scheme %q", scheme)
}

// ShortID returns the last 7 characters of an id in lowercase.
func ShortID(id ID) string {
	s := string(id)
	if len(s) <= 7 {
		return strings.ToLower(s)
	}
	return strings.ToLower(s[len(s)-7:])
}
