// Package market produces synthetic market observations for the briefing.
//
// The providers are mock generators: prices, changes and news are drawn from
// an injected random source so that a fixed seed and a fixed clock always
// yield the same observations.
package market

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/bobmcallan/investiq/internal/models"
)

// EquityProvider returns observations for the AI equity universe.
type EquityProvider interface {
	FetchEquities(ctx context.Context) ([]models.Equity, error)
}

// TokenProvider returns observations for the crypto token universe.
type TokenProvider interface {
	FetchTokens(ctx context.Context) ([]models.Token, error)
}

// Random is the subset of *rand.Rand the providers draw from.
type Random interface {
	Float64() float64
	IntN(n int) int
	Shuffle(n int, swap func(i, j int))
}

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

// Now implements Clock.
func (f ClockFunc) Now() time.Time { return f() }

// SystemClock reads the wall clock.
var SystemClock Clock = ClockFunc(time.Now)

// FixedClock always returns t.
func FixedClock(t time.Time) Clock {
	return ClockFunc(func() time.Time { return t })
}

// Random streams keep equity and token draws independent for the same seed.
const (
	streamEquities uint64 = 1
	streamTokens   uint64 = 2
)

// NewRandom returns a PCG-backed source. A zero seed draws a fresh seed from
// the runtime's auto-seeded generator.
func NewRandom(seed, stream uint64) *rand.Rand {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, stream))
}

// between returns a value in [lo, hi).
func between(r Random, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}
