// Package models defines data structures for InvestIQ.
package models

import "time"

// Sentiment tags a news item.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

// Category identifies the asset class a trend belongs to.
type Category string

const (
	CategoryAI     Category = "ai"
	CategoryCrypto Category = "crypto"
)

// Direction is the qualitative movement of a trend.
type Direction string

const (
	DirectionUp      Direction = "up"
	DirectionDown    Direction = "down"
	DirectionNeutral Direction = "neutral"
)

// Level is a three-step high/medium/low scale used for trend significance
// and calendar event impact.
type Level string

const (
	LevelHigh   Level = "high"
	LevelMedium Level = "medium"
	LevelLow    Level = "low"
)

// Action is the recommended trade.
type Action string

const (
	ActionBuy  Action = "buy"
	ActionHold Action = "hold"
	ActionSell Action = "sell"
)

// AssetType distinguishes equity and token recommendations.
type AssetType string

const (
	AssetTypeAIStock AssetType = "ai_stock"
	AssetTypeCrypto  AssetType = "crypto"
)

// Horizon is the holding period attached to a recommendation.
type Horizon string

const (
	HorizonShort  Horizon = "short"
	HorizonMedium Horizon = "medium"
	HorizonLong   Horizon = "long"
)

// NewsItem is a synthetic headline attached to an observation. Display only.
type NewsItem struct {
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	PublishedAt time.Time `json:"published_at"`
	Source      string    `json:"source"`
	Sentiment   Sentiment `json:"sentiment"`
	Summary     string    `json:"summary"`
}

// Equity is a market observation for an AI-related stock.
type Equity struct {
	Sector      string     `json:"sector"`
	CompanyName string     `json:"company_name"`
	Ticker      string     `json:"ticker"`
	Price       float64    `json:"current_price"`
	Change24h   float64    `json:"change_24h"`
	MarketCap   float64    `json:"market_cap"`
	Volume24h   float64    `json:"volume_24h"`
	PERatio     *float64   `json:"pe_ratio,omitempty"`
	News        []NewsItem `json:"news"`
}

// HasPE reports whether a P/E ratio is known for the stock.
func (e Equity) HasPE() bool {
	return e.PERatio != nil
}

// PE returns the P/E ratio, or zero when unknown.
func (e Equity) PE() float64 {
	if e.PERatio == nil {
		return 0
	}
	return *e.PERatio
}

// Token is a market observation for a cryptocurrency.
type Token struct {
	Symbol    string     `json:"symbol"`
	Name      string     `json:"name"`
	Price     float64    `json:"current_price"`
	Change24h float64    `json:"change_24h"`
	MarketCap float64    `json:"market_cap"`
	Volume24h float64    `json:"volume_24h"`
	Rank      int        `json:"rank"`
	News      []NewsItem `json:"news"`
}

// Trend is a qualitative descriptor derived from a group of observations.
type Trend struct {
	Category     Category  `json:"category"`
	Trend        string    `json:"trend"`
	Direction    Direction `json:"direction"`
	Significance Level     `json:"significance"`
	Description  string    `json:"description"`
}

// Recommendation is a buy/hold/sell suggestion. Confidence is a heuristic
// score on a 0-100 scale.
type Recommendation struct {
	Asset       string    `json:"asset"`
	Type        AssetType `json:"type"`
	Action      Action    `json:"action"`
	Confidence  float64   `json:"confidence"`
	Reasoning   string    `json:"reasoning"`
	TargetPrice *float64  `json:"target_price,omitempty"`
	TimeHorizon Horizon   `json:"time_horizon"`
}

// CalendarEvent is an upcoming market event.
type CalendarEvent struct {
	Date   string `json:"date"` // YYYY-MM-DD
	Event  string `json:"event"`
	Impact Level  `json:"impact"`
}

// AIMarkets groups the equity section of a report.
type AIMarkets struct {
	TopPerformers   []Equity         `json:"top_performers"`
	Trends          []Trend          `json:"trends"`
	Recommendations []Recommendation `json:"recommendations"`
}

// CryptoMarkets groups the token section of a report.
type CryptoMarkets struct {
	TopPerformers   []Token          `json:"top_performers"`
	Trends          []Trend          `json:"trends"`
	Recommendations []Recommendation `json:"recommendations"`
}

// Report is the weekly investment briefing.
type Report struct {
	ID             string          `json:"id"`
	Date           time.Time       `json:"date"`
	WeekNumber     int             `json:"week_number"`
	Summary        string          `json:"summary"`
	KeyHighlights  []string        `json:"key_highlights"`
	AIMarkets      AIMarkets       `json:"ai_markets"`
	CryptoMarkets  CryptoMarkets   `json:"crypto_markets"`
	RiskFactors    []string        `json:"risk_factors"`
	UpcomingEvents []CalendarEvent `json:"upcoming_events"`
}

// Float returns a pointer to v, for optional numeric fields.
func Float(v float64) *float64 {
	return &v
}
