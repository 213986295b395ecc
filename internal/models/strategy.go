package models

import "github.com/shopspring/decimal"

// RiskTolerance is the three-valued selector on the strategy calculator.
type RiskTolerance string

const (
	RiskLow    RiskTolerance = "low"
	RiskMedium RiskTolerance = "medium"
	RiskHigh   RiskTolerance = "high"
)

// RiskProfile is the display label of a strategy's risk.
type RiskProfile string

const (
	RiskConservative RiskProfile = "Conservative"
	RiskModerate     RiskProfile = "Moderate"
	RiskAggressive   RiskProfile = "Aggressive"
)

// DefaultDisclaimer accompanies every strategy result.
const DefaultDisclaimer = "This is a simulated investment strategy for demonstration purposes only. Not actual financial advice. Please consult a licensed financial advisor before making investment decisions."

// Allocation is one asset bucket of a strategy.
type Allocation struct {
	Asset      string `json:"asset"`
	Percentage int    `json:"percentage"`
}

// Strategy is a predefined allocation for a risk tolerance. The expected
// annual return is a range of whole percentages.
type Strategy struct {
	ID             string       `json:"id"`
	Name           string       `json:"name"`
	Risk           RiskProfile  `json:"risk"`
	Description    string       `json:"description"`
	ExpectedReturn string       `json:"expected_return"`
	MinReturnPct   int          `json:"min_return_pct"`
	MaxReturnPct   int          `json:"max_return_pct"`
	Allocation     []Allocation `json:"allocation"`
}

// AllocationAmount is an allocation bucket priced against an investment amount.
type AllocationAmount struct {
	Asset      string          `json:"asset"`
	Percentage int             `json:"percentage"`
	Amount     decimal.Decimal `json:"amount"`
}

// Projection is the value of an investment compounded at the low and high
// ends of a strategy's expected return.
type Projection struct {
	Low  decimal.Decimal `json:"low"`
	High decimal.Decimal `json:"high"`
}

// StrategyPlan is a strategy applied to a concrete amount and timeline.
type StrategyPlan struct {
	RiskTolerance RiskTolerance      `json:"risk_tolerance"`
	Strategy      Strategy           `json:"strategy"`
	Amount        decimal.Decimal    `json:"amount"`
	Years         int                `json:"years"`
	Breakdown     []AllocationAmount `json:"breakdown"`
	Projection    Projection         `json:"projection"`
	Disclaimer    string             `json:"disclaimer"`
}
