package market

import (
	"cmp"
	"context"
	"slices"

	"github.com/bobmcallan/investiq/internal/models"
)

// Listing identifies an equity in the AI universe.
type Listing struct {
	Ticker string
	Name   string
	Sector string
}

// Sector names used by the trend analyzer.
const (
	SectorSemiconductors = "Semiconductors"
	SectorSoftware       = "Software"
	SectorTechnology     = "Technology"
	SectorCloud          = "Cloud Computing"
	SectorRobotics       = "AI & Robotics"
)

// EquityUniverse is the fixed set of AI stocks covered by the briefing.
var EquityUniverse = []Listing{
	{"NVDA", "NVIDIA Corporation", SectorSemiconductors},
	{"MSFT", "Microsoft Corporation", SectorSoftware},
	{"GOOGL", "Alphabet Inc.", SectorSoftware},
	{"AAPL", "Apple Inc.", SectorTechnology},
	{"AMD", "Advanced Micro Devices", SectorSemiconductors},
	{"META", "Meta Platforms Inc.", SectorSoftware},
	{"AMZN", "Amazon.com Inc.", SectorCloud},
	{"TSLA", "Tesla Inc.", SectorRobotics},
}

// MockEquityProvider generates random observations for EquityUniverse.
// It holds no mutable state and is safe for concurrent use.
type MockEquityProvider struct {
	seed  uint64
	clock Clock
}

// NewEquityProvider creates a mock equity provider. A zero seed draws fresh
// data on every call.
func NewEquityProvider(seed uint64, clock Clock) *MockEquityProvider {
	if clock == nil {
		clock = SystemClock
	}
	return &MockEquityProvider{seed: seed, clock: clock}
}

// FetchEquities returns one observation per listing, sorted by descending
// 24h change. Ties keep universe order.
func (p *MockEquityProvider) FetchEquities(ctx context.Context) ([]models.Equity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r := NewRandom(p.seed, streamEquities)
	now := p.clock.Now()

	out := make([]models.Equity, 0, len(EquityUniverse))
	for _, l := range EquityUniverse {
		price := between(r, 100, 600)
		change := between(r, -5, 5)
		out = append(out, models.Equity{
			Sector:      l.Sector,
			CompanyName: l.Name,
			Ticker:      l.Ticker,
			Price:       price,
			Change24h:   change,
			MarketCap:   price * between(r, 1, 11) * 1e9,
			Volume24h:   price * between(r, 1, 6) * 1e6,
			PERatio:     models.Float(between(r, 15, 65)),
			News:        equityFeed.generate(r, l.Ticker, now),
		})
	}

	SortEquities(out)
	return out, nil
}

// SortEquities orders equities by descending 24h change, keeping the
// original order of ties.
func SortEquities(list []models.Equity) {
	slices.SortStableFunc(list, func(a, b models.Equity) int {
		return cmp.Compare(b.Change24h, a.Change24h)
	})
}
