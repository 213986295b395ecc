package market

import (
	"cmp"
	"context"
	"slices"

	"github.com/bobmcallan/investiq/internal/models"
)

// Coin identifies a token in the crypto universe.
type Coin struct {
	Symbol string
	Name   string
}

// Reference symbols the analysis keys off.
const (
	SymbolBTC = "BTC"
	SymbolETH = "ETH"
)

// TokenUniverse is the fixed set of tokens covered by the briefing, in rank order.
var TokenUniverse = []Coin{
	{SymbolBTC, "Bitcoin"},
	{SymbolETH, "Ethereum"},
	{"SOL", "Solana"},
	{"XRP", "Ripple"},
	{"ADA", "Cardano"},
	{"DOGE", "Dogecoin"},
	{"AVAX", "Avalanche"},
	{"DOT", "Polkadot"},
	{"LINK", "Chainlink"},
	{"MATIC", "Polygon"},
}

var basePrices = map[string]float64{
	SymbolBTC: 50000,
	SymbolETH: 3000,
}

// MockTokenProvider generates random observations for TokenUniverse.
// It holds no mutable state and is safe for concurrent use.
type MockTokenProvider struct {
	seed  uint64
	clock Clock
}

// NewTokenProvider creates a mock token provider. A zero seed draws fresh
// data on every call.
func NewTokenProvider(seed uint64, clock Clock) *MockTokenProvider {
	if clock == nil {
		clock = SystemClock
	}
	return &MockTokenProvider{seed: seed, clock: clock}
}

// FetchTokens returns one observation per coin, sorted by descending market
// capitalization. Rank reflects universe position, not the sorted order.
func (p *MockTokenProvider) FetchTokens(ctx context.Context) ([]models.Token, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r := NewRandom(p.seed, streamTokens)
	now := p.clock.Now()

	out := make([]models.Token, 0, len(TokenUniverse))
	for i, c := range TokenUniverse {
		base, ok := basePrices[c.Symbol]
		if !ok {
			base = between(r, 1, 101)
		}
		price := base * (1 + between(r, -0.05, 0.05))
		change := between(r, -7.5, 7.5)
		out = append(out, models.Token{
			Symbol:    c.Symbol,
			Name:      c.Name,
			Price:     price,
			Change24h: change,
			MarketCap: price * between(r, 10, 110) * 1e6,
			Volume24h: price * between(r, 1, 11) * 1e6,
			Rank:      i + 1,
			News:      tokenFeed.generate(r, c.Symbol, now),
		})
	}

	SortTokens(out)
	return out, nil
}

// SortTokens orders tokens by descending market cap, keeping the original
// order of ties.
func SortTokens(list []models.Token) {
	slices.SortStableFunc(list, func(a, b models.Token) int {
		return cmp.Compare(b.MarketCap, a.MarketCap)
	})
}
