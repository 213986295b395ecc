package briefing

import (
	"fmt"
	"strings"

	"github.com/bobmcallan/investiq/internal/analysis"
	"github.com/bobmcallan/investiq/internal/common"
	"github.com/bobmcallan/investiq/internal/market"
	"github.com/bobmcallan/investiq/internal/models"
)

const highlightExcerpt = 80

// summarize builds the executive summary paragraph.
func summarize(equities []models.Equity, tokens []models.Token, aiTrends, cryptoTrends []models.Trend) string {
	avg := analysis.MeanChange(equities)

	sentiment := "neutral"
	switch {
	case avg > 1:
		sentiment = "bullish"
	case avg < -1:
		sentiment = "bearish"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "This week in AI and cryptocurrency markets shows %s sentiment in the AI sector with an average change of %.2f%%, ",
		sentiment, avg)

	if btc, ok := bitcoin(tokens); ok {
		direction := "sideways"
		switch {
		case btc.Change24h > 0:
			direction = "upward"
		case btc.Change24h < 0:
			direction = "downward"
		}
		fmt.Fprintf(&b, "while Bitcoin is leading the crypto market in a %s direction at $%s. ",
			direction, common.FormatPrice(btc.Price))
	} else {
		b.WriteString("while Bitcoin data is unavailable for the crypto market. ")
	}

	aiDev := "ongoing market dynamics"
	if len(aiTrends) > 0 {
		aiDev = strings.ToLower(aiTrends[0].Description)
	}
	cryptoDev := "evolving cryptocurrency landscape"
	if len(cryptoTrends) > 0 {
		cryptoDev = strings.ToLower(cryptoTrends[0].Description)
	}
	fmt.Fprintf(&b, "Key developments include %s and %s. ", aiDev, cryptoDev)

	watch := "sector trends"
	for _, t := range aiTrends {
		if t.Significance == models.LevelHigh {
			watch = t.Trend
			break
		}
	}
	fmt.Fprintf(&b, "Investors should monitor %s and maintain diversified portfolios.", watch)

	return b.String()
}

// highlights builds the key highlight bullets. equities must already be
// sorted by descending change.
func highlights(equities []models.Equity, tokens []models.Token, aiRecs, cryptoRecs []models.Recommendation) []string {
	var out []string

	if len(equities) > 0 {
		top := equities[0]
		out = append(out, fmt.Sprintf("🚀 %s leads AI stocks with %.2f%% gain, reaching $%.2f",
			top.Ticker, top.Change24h, top.Price))
	}

	if btc, ok := bitcoin(tokens); ok {
		sign := ""
		if btc.Change24h > 0 {
			sign = "+"
		}
		out = append(out, fmt.Sprintf("₿ Bitcoin at $%s (%s%.2f%%) with %s market cap",
			common.FormatPrice(btc.Price), sign, btc.Change24h, common.FormatBillions(btc.MarketCap, 1)))
	}

	for _, r := range aiRecs {
		if r.Action == models.ActionBuy {
			out = append(out, fmt.Sprintf("💡 Top AI Pick: %s - %s", r.Asset, common.Excerpt(r.Reasoning, highlightExcerpt)))
			break
		}
	}

	for _, r := range cryptoRecs {
		if r.Action == models.ActionBuy && r.Asset != market.SymbolBTC {
			out = append(out, fmt.Sprintf("⭐ Top Crypto Pick: %s - %s", r.Asset, common.Excerpt(r.Reasoning, highlightExcerpt)))
			break
		}
	}

	strong := 0
	for _, e := range equities {
		if e.Change24h > 3 {
			strong++
		}
	}
	out = append(out, fmt.Sprintf("📈 %d AI stocks showing strong momentum (+3%% or more)", strong))

	return out
}

func bitcoin(tokens []models.Token) (models.Token, bool) {
	for _, t := range tokens {
		if t.Symbol == market.SymbolBTC {
			return t, true
		}
	}
	return models.Token{}, false
}
