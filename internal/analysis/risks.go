package analysis

import (
	"fmt"
	"math"

	"github.com/bobmcallan/investiq/internal/config"
	"github.com/bobmcallan/investiq/internal/market"
	"github.com/bobmcallan/investiq/internal/models"
)

// Fixed risk statements appended to every briefing.
const (
	RiskRegulatory  = "Regulatory uncertainty continues to impact both AI and cryptocurrency markets"
	RiskGeopolitics = "Geopolitical tensions could affect global technology supply chains and market sentiment"
)

// RiskThresholds controls when the conditional risk statements fire.
type RiskThresholds struct {
	AIVolatility       float64 // any |change| above this
	CryptoVolatility   float64
	OvervaluationPE    float64
	OvervaluationCount int // more than this many stocks above OvervaluationPE
	BTCLiquidityCap    float64
	MaxCount           int
}

// DefaultRiskThresholds returns the thresholds used when none are configured.
func DefaultRiskThresholds() RiskThresholds {
	return ThresholdsFromConfig(config.NewDefaultConfig().Briefing.Risk)
}

// ThresholdsFromConfig converts the [briefing.risk] section.
func ThresholdsFromConfig(c config.RiskConfig) RiskThresholds {
	return RiskThresholds{
		AIVolatility:       c.AIVolatility,
		CryptoVolatility:   c.CryptoVolatility,
		OvervaluationPE:    c.OvervaluationPE,
		OvervaluationCount: c.OvervaluationCount,
		BTCLiquidityCap:    c.BTCLiquidityCap,
		MaxCount:           c.MaxCount,
	}
}

// RiskFactors lists risk statements in a fixed order: AI volatility, crypto
// volatility, overvaluation, BTC liquidity, then the regulatory and
// geopolitical statements. The result holds at most th.MaxCount entries; the
// cap trims conditional statements only.
func RiskFactors(equities []models.Equity, tokens []models.Token, th RiskThresholds) []string {
	var risks []string

	if anyEquity(equities, func(e models.Equity) bool { return math.Abs(e.Change24h) > th.AIVolatility }) {
		risks = append(risks, "High volatility in AI sector stocks - investors should be prepared for significant price swings")
	}

	if anyToken(tokens, func(t models.Token) bool { return math.Abs(t.Change24h) > th.CryptoVolatility }) {
		risks = append(risks, "Extreme cryptocurrency volatility - allocate only what you can afford to lose")
	}

	expensive := len(filter(equities, func(e models.Equity) bool { return e.HasPE() && e.PE() > th.OvervaluationPE }))
	if expensive > th.OvervaluationCount {
		risks = append(risks, fmt.Sprintf("%d AI stocks with P/E ratios above %g - potential valuation concerns in the sector",
			expensive, th.OvervaluationPE))
	}

	if btc, ok := findToken(tokens, market.SymbolBTC); ok && btc.MarketCap < th.BTCLiquidityCap {
		risks = append(risks, fmt.Sprintf("Bitcoin market cap below $%gB - lower liquidity and higher sensitivity to large trades",
			th.BTCLiquidityCap/1e9))
	}

	if th.MaxCount > 0 {
		if limit := max(th.MaxCount-2, 0); len(risks) > limit {
			risks = risks[:limit]
		}
	}
	return append(risks, RiskRegulatory, RiskGeopolitics)
}

func anyEquity(list []models.Equity, f func(models.Equity) bool) bool {
	return len(filter(list, f)) > 0
}

func anyToken(list []models.Token, f func(models.Token) bool) bool {
	return len(filter(list, f)) > 0
}
