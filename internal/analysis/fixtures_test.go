package analysis

import "github.com/bobmcallan/investiq/internal/models"

// equity builds a $100 stock observation. A zero pe leaves the ratio unknown.
func equity(ticker, sector string, change, pe float64) models.Equity {
	e := models.Equity{
		Ticker:      ticker,
		CompanyName: ticker + " Inc.",
		Sector:      sector,
		Price:       100,
		Change24h:   change,
		MarketCap:   500e9,
		Volume24h:   1e8,
	}
	if pe != 0 {
		e.PERatio = models.Float(pe)
	}
	return e
}

func token(symbol string, price, change, marketCap float64) models.Token {
	return models.Token{
		Symbol:    symbol,
		Name:      symbol + " Coin",
		Price:     price,
		Change24h: change,
		MarketCap: marketCap,
		Volume24h: 1e9,
		Rank:      1,
	}
}
