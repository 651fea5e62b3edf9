package replication

import (
	"math/rand"
	"sync"
	"time"
)

// Delayer produces one simulated network latency sample per replication
// attempt. Tests substitute a deterministic implementation.
type Delayer interface {
	Delay() time.Duration
}

// UniformDelayer draws uniformly from [min, max].
type UniformDelayer struct {
	min time.Duration
	max time.Duration
	rng *rand.Rand
	mu  sync.Mutex
}

// NewUniformDelayer builds a delayer over [min, max]. A nil rng falls back
// to a time-seeded source.
func NewUniformDelayer(min, max time.Duration, rng *rand.Rand) *UniformDelayer {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &UniformDelayer{min: min, max: max, rng: rng}
}

func (d *UniformDelayer) Delay() time.Duration {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.max <= d.min {
		return d.min
	}
	return d.min + time.Duration(d.rng.Int63n(int64(d.max-d.min)+1))
}

// FixedDelayer always returns the same sample. Used in tests and as the
// zero-latency default when no range is configured.
type FixedDelayer time.Duration

func (d FixedDelayer) Delay() time.Duration { return time.Duration(d) }
