// Package analysis derives trends, recommendations, risk statements and
// calendar events from market observations.
//
// All functions are pure: the same observations always produce the same
// output. Callers must not pass empty observation lists to the averaging
// analyzers; the briefing generator rejects those before analysis.
package analysis

import "github.com/bobmcallan/investiq/internal/models"

// meanBy averages f over items. Returns 0 for an empty slice.
func meanBy[T any](items []T, f func(T) float64) float64 {
	if len(items) == 0 {
		return 0
	}
	var sum float64
	for _, it := range items {
		sum += f(it)
	}
	return sum / float64(len(items))
}

func filter[T any](items []T, keep func(T) bool) []T {
	var out []T
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}

func equityChange(e models.Equity) float64 { return e.Change24h }
func tokenChange(t models.Token) float64   { return t.Change24h }

// findToken returns the first token with the given symbol.
func findToken(tokens []models.Token, symbol string) (models.Token, bool) {
	for _, t := range tokens {
		if t.Symbol == symbol {
			return t, true
		}
	}
	return models.Token{}, false
}

// MeanChange returns the average 24h change across equities.
func MeanChange(equities []models.Equity) float64 {
	return meanBy(equities, equityChange)
}
