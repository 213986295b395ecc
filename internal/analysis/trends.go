package analysis

import (
	"fmt"
	"math"
	"slices"

	"github.com/bobmcallan/investiq/internal/common"
	"github.com/bobmcallan/investiq/internal/market"
	"github.com/bobmcallan/investiq/internal/models"
)

// Trend labels.
const (
	TrendAISector       = "AI Sector Performance"
	TrendSemiconductors = "Semiconductor Industry"
	TrendSoftware       = "Software & Cloud Services"
	TrendBitcoin        = "Bitcoin Market Leadership"
	TrendAltcoins       = "Altcoin Market Activity"
	TrendDeFi           = "DeFi Sector Performance"
)

// DeFiSymbols are the tokens grouped into the DeFi trend.
var DeFiSymbols = []string{"UNI", "AAVE", "LINK", "MATIC"}

// Classify maps a mean change to a direction by sign and a significance:
// high above 3 in magnitude, medium above 1, otherwise low.
func Classify(mean float64) (models.Direction, models.Level) {
	dir := models.DirectionNeutral
	switch {
	case mean > 0:
		dir = models.DirectionUp
	case mean < 0:
		dir = models.DirectionDown
	}

	sig := models.LevelLow
	switch abs := math.Abs(mean); {
	case abs > 3:
		sig = models.LevelHigh
	case abs > 1:
		sig = models.LevelMedium
	}
	return dir, sig
}

// AITrends derives the sector trends for the AI equity universe.
func AITrends(equities []models.Equity) []models.Trend {
	avg := MeanChange(equities)
	gainers := len(filter(equities, func(e models.Equity) bool { return e.Change24h > 0 }))
	broad := float64(gainers)/float64(len(equities)) > 0.6

	dir, sig := Classify(avg)
	tone := "facing pressure"
	if avg > 0 {
		tone = "showing strength"
	}
	momentum := "Mixed performance across the sector."
	if broad {
		momentum = "Broad-based bullish momentum observed across multiple stocks."
	}

	trends := []models.Trend{{
		Category:     models.CategoryAI,
		Trend:        TrendAISector,
		Direction:    dir,
		Significance: sig,
		Description:  fmt.Sprintf("The AI sector is %s with an average change of %.2f%%. %s", tone, avg, momentum),
	}}

	if semis := bySector(equities, market.SectorSemiconductors); len(semis) > 0 {
		m := MeanChange(semis)
		d := models.DirectionNeutral
		switch {
		case m > 2:
			d = models.DirectionUp
		case m < -2:
			d = models.DirectionDown
		}
		lead := "showing weakness"
		if m > 0 {
			lead = "leading gains"
		}
		trends = append(trends, models.Trend{
			Category:     models.CategoryAI,
			Trend:        TrendSemiconductors,
			Direction:    d,
			Significance: models.LevelHigh,
			Description: fmt.Sprintf("Semiconductor stocks, critical for AI infrastructure, are %s with %s sentiment in the chip market.",
				lead, semiconductorTone(m)),
		})
	}

	if software := bySector(equities, market.SectorSoftware); len(software) > 0 {
		m := MeanChange(software)
		d, phase := models.DirectionDown, "consolidation"
		if m > 0 {
			d, phase = models.DirectionUp, "positive momentum"
		}
		trends = append(trends, models.Trend{
			Category:     models.CategoryAI,
			Trend:        TrendSoftware,
			Direction:    d,
			Significance: models.LevelMedium,
			Description:  fmt.Sprintf("AI software and cloud services providers are experiencing %s as enterprise adoption continues.", phase),
		})
	}

	return trends
}

func bySector(equities []models.Equity, sector string) []models.Equity {
	return filter(equities, func(e models.Equity) bool { return e.Sector == sector })
}

func semiconductorTone(m float64) string {
	switch {
	case m > 3:
		return "strong"
	case m > 1:
		return "moderate"
	case m > -1:
		return "neutral"
	case m > -3:
		return "cautious"
	default:
		return "bearish"
	}
}

// CryptoTrends derives the market trends for the token universe.
func CryptoTrends(tokens []models.Token) []models.Trend {
	var trends []models.Trend

	btc, hasBTC := findToken(tokens, market.SymbolBTC)
	if hasBTC {
		dir, state := models.DirectionNeutral, "consolidating"
		switch {
		case btc.Change24h > 3:
			dir, state = models.DirectionUp, "showing strength"
		case btc.Change24h < -3:
			dir, state = models.DirectionDown, "under pressure"
		}
		effect := "influencing"
		if btc.Change24h > 0 {
			effect = "driving"
		}
		trends = append(trends, models.Trend{
			Category:     models.CategoryCrypto,
			Trend:        TrendBitcoin,
			Direction:    dir,
			Significance: models.LevelHigh,
			Description: fmt.Sprintf("Bitcoin is %s at $%s, %s broader market sentiment.",
				state, common.FormatPrice(btc.Price), effect),
		})
	}

	var total float64
	for _, t := range tokens {
		total += t.MarketCap
	}
	alt := total
	if hasBTC {
		alt -= btc.MarketCap
	}
	var dominance float64
	if total > 0 {
		dominance = alt / total
	}

	dir, sig, reading := models.DirectionNeutral, models.LevelMedium, "Bitcoin dominance"
	if dominance > 0.4 {
		dir, sig, reading = models.DirectionUp, models.LevelHigh, "strong diversification"
	}
	trends = append(trends, models.Trend{
		Category:     models.CategoryCrypto,
		Trend:        TrendAltcoins,
		Direction:    dir,
		Significance: sig,
		Description: fmt.Sprintf("Alternative cryptocurrencies represent %.1f%% of total market cap, indicating %s in the market.",
			dominance*100, reading),
	})

	defi := filter(tokens, func(t models.Token) bool { return slices.Contains(DeFiSymbols, t.Symbol) })
	if len(defi) > 0 {
		d, state := models.DirectionDown, "facing headwinds"
		if meanBy(defi, tokenChange) > 0 {
			d, state = models.DirectionUp, "gaining traction"
		}
		trends = append(trends, models.Trend{
			Category:     models.CategoryCrypto,
			Trend:        TrendDeFi,
			Direction:    d,
			Significance: models.LevelMedium,
			Description:  fmt.Sprintf("Decentralized Finance tokens are %s as the sector continues to evolve.", state),
		})
	}

	return trends
}
