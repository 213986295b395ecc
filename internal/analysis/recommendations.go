package analysis

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/bobmcallan/investiq/internal/common"
	"github.com/bobmcallan/investiq/internal/market"
	"github.com/bobmcallan/investiq/internal/models"
)

const maxMomentumConfidence = 85

// AIRecommendations applies the equity rules in order: momentum buys for the
// two strongest gainers with P/E under 35, a value buy for the cheapest
// decliner with P/E under 25, and a hold on the most expensive stock with P/E
// over 50 that gained more than 5%. Trends are accepted for future rules and
// currently unused.
func AIRecommendations(equities []models.Equity, _ []models.Trend) []models.Recommendation {
	var recs []models.Recommendation

	gainers := filter(equities, func(e models.Equity) bool { return e.Change24h > 0 })
	slices.SortStableFunc(gainers, func(a, b models.Equity) int { return cmp.Compare(b.Change24h, a.Change24h) })
	for _, e := range gainers[:min(2, len(gainers))] {
		if !e.HasPE() || e.PE() >= 35 {
			continue
		}
		recs = append(recs, models.Recommendation{
			Asset:      e.Ticker,
			Type:       models.AssetTypeAIStock,
			Action:     models.ActionBuy,
			Confidence: min(maxMomentumConfidence, 60+e.Change24h*2),
			Reasoning: fmt.Sprintf("Strong momentum (%.2f%% gain) with reasonable valuation (P/E: %.1f). %s sector showing positive trends.",
				e.Change24h, e.PE(), e.Sector),
			TargetPrice: models.Float(e.Price * 1.15),
			TimeHorizon: models.HorizonMedium,
		})
	}

	decliners := filter(equities, func(e models.Equity) bool { return e.Change24h < 0 && e.HasPE() && e.PE() < 25 })
	slices.SortStableFunc(decliners, func(a, b models.Equity) int { return cmp.Compare(a.PE(), b.PE()) })
	if len(decliners) > 0 {
		e := decliners[0]
		recs = append(recs, models.Recommendation{
			Asset:      e.Ticker,
			Type:       models.AssetTypeAIStock,
			Action:     models.ActionBuy,
			Confidence: 70,
			Reasoning: fmt.Sprintf("Attractive entry point after recent pullback. Low P/E ratio (%.1f) suggests potential upside as %s recovers.",
				e.PE(), e.Sector),
			TargetPrice: models.Float(e.Price * 1.20),
			TimeHorizon: models.HorizonLong,
		})
	}

	stretched := filter(equities, func(e models.Equity) bool { return e.HasPE() && e.PE() > 50 && e.Change24h > 5 })
	slices.SortStableFunc(stretched, func(a, b models.Equity) int { return cmp.Compare(b.PE(), a.PE()) })
	if len(stretched) > 0 {
		e := stretched[0]
		recs = append(recs, models.Recommendation{
			Asset:      e.Ticker,
			Type:       models.AssetTypeAIStock,
			Action:     models.ActionHold,
			Confidence: 65,
			Reasoning: fmt.Sprintf("Extended valuation (P/E: %.1f) despite strong performance. Consider taking partial profits while maintaining core position.",
				e.PE()),
			TargetPrice: models.Float(e.Price * 1.05),
			TimeHorizon: models.HorizonShort,
		})
	}

	return recs
}

// CryptoRecommendations applies the token rules: a BTC position call, an ETH
// call relative to BTC, and momentum buys for up to two altcoins gaining more
// than 3%.
func CryptoRecommendations(tokens []models.Token, _ []models.Trend) []models.Recommendation {
	var recs []models.Recommendation

	btc, hasBTC := findToken(tokens, market.SymbolBTC)
	if hasBTC {
		action, horizon, target := models.ActionHold, models.HorizonLong, 1.10
		note := "Consolidation phase - maintain current allocation"
		switch {
		case btc.Change24h > 5:
			note = "Strong momentum - consider holding existing positions"
		case btc.Change24h < -5:
			action, horizon, target = models.ActionBuy, models.HorizonMedium, 1.25
			note = "Pullback may present accumulation opportunity"
		}
		recs = append(recs, models.Recommendation{
			Asset:      market.SymbolBTC,
			Type:       models.AssetTypeCrypto,
			Action:     action,
			Confidence: 75,
			Reasoning: fmt.Sprintf("Bitcoin at $%s. %s. Market cap: %s.",
				common.FormatPrice(btc.Price), note, common.FormatBillions(btc.MarketCap, 1)),
			TargetPrice: models.Float(btc.Price * target),
			TimeHorizon: horizon,
		})
	}

	// The ETH call is relative to BTC and is skipped without it.
	if eth, ok := findToken(tokens, market.SymbolETH); ok && hasBTC && btc.Price > 0 {
		ratio := eth.Price / btc.Price
		action := models.ActionBuy
		if ratio > 0.06 {
			action = models.ActionHold
		}
		stance := "resilience"
		if eth.Change24h > 0 {
			stance = "strength"
		}
		recs = append(recs, models.Recommendation{
			Asset:      market.SymbolETH,
			Type:       models.AssetTypeCrypto,
			Action:     action,
			Confidence: 70,
			Reasoning: fmt.Sprintf("Ethereum showing %s against BTC. Current ETH/BTC ratio: %.4f. Smart contract platform adoption continues to grow.",
				stance, ratio),
			TargetPrice: models.Float(eth.Price * 1.30),
			TimeHorizon: models.HorizonLong,
		})
	}

	alts := filter(tokens, func(t models.Token) bool {
		return t.Symbol != market.SymbolBTC && t.Symbol != market.SymbolETH && t.Change24h > 3
	})
	slices.SortStableFunc(alts, func(a, b models.Token) int { return cmp.Compare(b.Change24h, a.Change24h) })
	for _, t := range alts[:min(2, len(alts))] {
		recs = append(recs, models.Recommendation{
			Asset:      t.Symbol,
			Type:       models.AssetTypeCrypto,
			Action:     models.ActionBuy,
			Confidence: 60,
			Reasoning: fmt.Sprintf("%s showing strong momentum (%.2f%%). Rank #%d by market cap with %s valuation.",
				t.Name, t.Change24h, t.Rank, common.FormatBillions(t.MarketCap, 2)),
			TargetPrice: models.Float(t.Price * 1.40),
			TimeHorizon: models.HorizonMedium,
		})
	}

	return recs
}

// Limit drops recommendations below minConfidence and keeps at most limit of
// the rest, preserving rule order. A limit below one keeps everything that
// passes the confidence filter.
func Limit(recs []models.Recommendation, limit int, minConfidence float64) []models.Recommendation {
	out := make([]models.Recommendation, 0, len(recs))
	for _, r := range recs {
		if r.Confidence < minConfidence {
			continue
		}
		if limit > 0 && len(out) == limit {
			break
		}
		out = append(out, r)
	}
	return out
}
