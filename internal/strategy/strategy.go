// Package strategy maps a risk tolerance to a predefined asset allocation
// and prices it against an investment amount.
package strategy

import (
	"errors"
	"fmt"

	"github.com/bobmcallan/investiq/internal/models"
)

// ErrUnknownRisk is returned for a risk tolerance outside low/medium/high.
var ErrUnknownRisk = errors.New("unknown risk tolerance")

var catalog = map[models.RiskTolerance]models.Strategy{
	models.RiskLow: {
		ID:           "conservative",
		Name:         "Conservative Growth Strategy",
		Risk:         models.RiskConservative,
		Description:  "Focus on capital preservation with steady, reliable returns through bonds and stable dividend-paying stocks.",
		MinReturnPct: 4,
		MaxReturnPct: 6,
		Allocation: []models.Allocation{
			{Asset: "Government Bonds", Percentage: 40},
			{Asset: "Investment-Grade Corporate Bonds", Percentage: 25},
			{Asset: "Blue-Chip Dividend Stocks", Percentage: 25},
			{Asset: "Cash & Equivalents", Percentage: 10},
		},
	},
	models.RiskMedium: {
		ID:           "balanced",
		Name:         "Balanced Growth Strategy",
		Risk:         models.RiskModerate,
		Description:  "A balanced approach combining growth stocks with stable fixed-income investments for steady appreciation.",
		MinReturnPct: 7,
		MaxReturnPct: 9,
		Allocation: []models.Allocation{
			{Asset: "Large-Cap Growth Stocks", Percentage: 35},
			{Asset: "International Equities", Percentage: 20},
			{Asset: "Corporate Bonds", Percentage: 25},
			{Asset: "Real Estate Investment Trusts", Percentage: 10},
			{Asset: "Cash & Alternatives", Percentage: 10},
		},
	},
	models.RiskHigh: {
		ID:           "aggressive",
		Name:         "Aggressive Growth Strategy",
		Risk:         models.RiskAggressive,
		Description:  "Maximize long-term returns through concentrated positions in high-growth sectors and emerging markets.",
		MinReturnPct: 10,
		MaxReturnPct: 15,
		Allocation: []models.Allocation{
			{Asset: "Technology Stocks", Percentage: 40},
			{Asset: "Emerging Markets", Percentage: 20},
			{Asset: "Small-Cap Growth Stocks", Percentage: 20},
			{Asset: "Cryptocurrency & Digital Assets", Percentage: 10},
			{Asset: "Cash & Options", Percentage: 10},
		},
	},
}

// Tolerances lists the accepted risk tolerances in ascending order.
var Tolerances = []models.RiskTolerance{models.RiskLow, models.RiskMedium, models.RiskHigh}

// Lookup returns the strategy for a risk tolerance.
func Lookup(risk models.RiskTolerance) (models.Strategy, error) {
	s, ok := catalog[risk]
	if !ok {
		return models.Strategy{}, fmt.Errorf("%w: %q", ErrUnknownRisk, risk)
	}
	return withCopies(s), nil
}

// All returns every strategy, ordered by ascending risk.
func All() []models.Strategy {
	out := make([]models.Strategy, 0, len(Tolerances))
	for _, r := range Tolerances {
		out = append(out, withCopies(catalog[r]))
	}
	return out
}

// withCopies fills derived fields and detaches the allocation slice from the
// catalog so callers cannot mutate it.
func withCopies(s models.Strategy) models.Strategy {
	s.ExpectedReturn = fmt.Sprintf("%d-%d%% annually", s.MinReturnPct, s.MaxReturnPct)
	s.Allocation = append([]models.Allocation(nil), s.Allocation...)
	return s
}
