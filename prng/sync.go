package prng

import "sync"

// lockedGenerator is concurrency safe generator
type lockedGenerator struct {
	g  Generator
	mu sync.Mutex
}

// Locked wraps g so it can be shared between goroutines. Each call still
// advances g exactly once, in lock order.
func Locked(g Generator) Generator {
	if lg, ok := g.(*lockedGenerator); ok {
		return lg
	}
	return &lockedGenerator{g: g}
}

func (l *lockedGenerator) SetSeed(seed uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.g.SetSeed(seed)
}

func (l *lockedGenerator) Seed() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.g.Seed()
}

func (l *lockedGenerator) Raw() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.g.Raw()
}

func (l *lockedGenerator) Normalized() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.g.Normalized()
}

func (l *lockedGenerator) NormalizedByte() byte {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.g.NormalizedByte()
}
