package market

import (
	"fmt"
	"strings"
	"time"

	"github.com/bobmcallan/investiq/internal/models"
)

// headline is a news template; %s is replaced with the asset symbol.
type headline struct {
	format    string
	sentiment models.Sentiment
}

var equityHeadlines = []headline{
	{"%s Announces Breakthrough in AI Technology", models.SentimentPositive},
	{"%s Stock Surges on Strong Earnings Report", models.SentimentPositive},
	{"Analysts Upgrade %s Price Target Following AI Product Launch", models.SentimentPositive},
	{"%s Faces Regulatory Scrutiny Over AI Practices", models.SentimentNegative},
	{"Market Volatility Impacts %s Trading Volume", models.SentimentNeutral},
}

var tokenHeadlines = []headline{
	{"%s Breaks Key Resistance Level as Bulls Take Control", models.SentimentPositive},
	{"Institutional Investors Accumulate %s Amid Market Optimism", models.SentimentPositive},
	{"%s Network Upgrade Successfully Deployed", models.SentimentPositive},
	{"Regulatory Concerns Weigh on %s Price Action", models.SentimentNegative},
	{"%s Trading Volume Reaches Monthly Low", models.SentimentNeutral},
}

var (
	equitySources = []string{"TechCrunch", "Bloomberg", "Reuters", "WSJ"}
	tokenSources  = []string{"CoinDesk", "CryptoSlate", "Decrypt", "The Block"}
)

const (
	minNewsItems = 2
	maxNewsItems = 4
	newsWindow   = 48 * time.Hour
)

// newsFeed describes the pools one asset class samples from.
type newsFeed struct {
	headlines []headline
	sources   []string
	summary   string // %s is the symbol
}

var (
	equityFeed = newsFeed{equityHeadlines, equitySources, "Latest developments regarding %s and its impact on the market."}
	tokenFeed  = newsFeed{tokenHeadlines, tokenSources, "Latest developments regarding %s and cryptocurrency markets."}
)

// generate samples 2-4 distinct headlines for symbol, published within the
// last 48 hours of now.
func (f newsFeed) generate(r Random, symbol string, now time.Time) []models.NewsItem {
	count := minNewsItems + r.IntN(maxNewsItems-minNewsItems+1)

	order := make([]int, len(f.headlines))
	for i := range order {
		order[i] = i
	}
	r.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })

	items := make([]models.NewsItem, 0, count)
	for _, idx := range order[:count] {
		h := f.headlines[idx]
		age := time.Duration(r.Float64() * float64(newsWindow))
		items = append(items, models.NewsItem{
			Title:       fmt.Sprintf(h.format, symbol),
			URL:         "https://example.com/news/" + strings.ToLower(symbol),
			PublishedAt: now.Add(-age).UTC(),
			Source:      f.sources[r.IntN(len(f.sources))],
			Sentiment:   h.sentiment,
			Summary:     fmt.Sprintf(f.summary, symbol),
		})
	}
	return items
}
