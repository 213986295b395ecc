package models

import (
	"fmt"
	"strings"

	"github.com/bobmcallan/investiq/internal/common"
)

// ToMarkdown renders the briefing as a readable markdown document.
func (r *Report) ToMarkdown() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("# Weekly Investment Briefing: Week %d\n\n", r.WeekNumber))
	b.WriteString(fmt.Sprintf("*Generated %s*\n\n", r.Date.UTC().Format("Monday, January 2, 2006")))

	b.WriteString("## Executive Summary\n\n")
	b.WriteString(r.Summary)
	b.WriteString("\n\n")

	if len(r.KeyHighlights) > 0 {
		b.WriteString("## Key Highlights\n\n")
		for _, h := range r.KeyHighlights {
			b.WriteString(fmt.Sprintf("- %s\n", h))
		}
		b.WriteString("\n")
	}

	b.WriteString("## AI Markets\n\n")
	if len(r.AIMarkets.TopPerformers) > 0 {
		b.WriteString("| Ticker | Company | Sector | Price | 24h | P/E |\n")
		b.WriteString("|--------|---------|--------|------:|----:|----:|\n")
		for _, e := range r.AIMarkets.TopPerformers {
			pe := "-"
			if e.HasPE() {
				pe = fmt.Sprintf("%.1f", e.PE())
			}
			b.WriteString(fmt.Sprintf("| %s | %s | %s | $%.2f | %s | %s |\n",
				e.Ticker, e.CompanyName, e.Sector, e.Price, common.FormatSignedPct(e.Change24h), pe))
		}
		b.WriteString("\n")
	}
	writeTrends(&b, r.AIMarkets.Trends)
	writeRecommendations(&b, r.AIMarkets.Recommendations)

	b.WriteString("## Crypto Markets\n\n")
	if len(r.CryptoMarkets.TopPerformers) > 0 {
		b.WriteString("| # | Symbol | Name | Price | 24h | Market Cap |\n")
		b.WriteString("|--:|--------|------|------:|----:|-----------:|\n")
		for _, t := range r.CryptoMarkets.TopPerformers {
			b.WriteString(fmt.Sprintf("| %d | %s | %s | $%s | %s | $%.2fB |\n",
				t.Rank, t.Symbol, t.Name, tokenPrice(t.Price), common.FormatSignedPct(t.Change24h), t.MarketCap/1e9))
		}
		b.WriteString("\n")
	}
	writeTrends(&b, r.CryptoMarkets.Trends)
	writeRecommendations(&b, r.CryptoMarkets.Recommendations)

	if len(r.RiskFactors) > 0 {
		b.WriteString("## Risk Factors\n\n")
		for _, risk := range r.RiskFactors {
			b.WriteString(fmt.Sprintf("- %s\n", risk))
		}
		b.WriteString("\n")
	}

	if len(r.UpcomingEvents) > 0 {
		b.WriteString("## Upcoming Events\n\n")
		b.WriteString("| Date | Event | Impact |\n")
		b.WriteString("|------|-------|--------|\n")
		for _, ev := range r.UpcomingEvents {
			b.WriteString(fmt.Sprintf("| %s | %s | %s |\n", ev.Date, ev.Event, ev.Impact))
		}
		b.WriteString("\n")
	}

	b.WriteString("---\n\n")
	b.WriteString("*Simulated market data for demonstration purposes only. Not financial advice.*\n")

	return b.String()
}

func writeTrends(b *strings.Builder, trends []Trend) {
	if len(trends) == 0 {
		return
	}
	b.WriteString("### Trends\n\n")
	for _, t := range trends {
		b.WriteString(fmt.Sprintf("- **%s** (%s, %s significance): %s\n", t.Trend, t.Direction, t.Significance, t.Description))
	}
	b.WriteString("\n")
}

func writeRecommendations(b *strings.Builder, recs []Recommendation) {
	if len(recs) == 0 {
		return
	}
	b.WriteString("### Recommendations\n\n")
	for _, rec := range recs {
		b.WriteString(fmt.Sprintf("- **%s %s** (confidence %.0f%%, %s term)", strings.ToUpper(string(rec.Action)), rec.Asset, rec.Confidence, rec.TimeHorizon))
		if rec.TargetPrice != nil {
			b.WriteString(fmt.Sprintf(", target $%.2f", *rec.TargetPrice))
		}
		b.WriteString(fmt.Sprintf(": %s\n", rec.Reasoning))
	}
	b.WriteString("\n")
}

// tokenPrice keeps sub-dollar tokens readable.
func tokenPrice(v float64) string {
	if v >= 1 {
		return fmt.Sprintf("%.2f", v)
	}
	return fmt.Sprintf("%.6f", v)
}
