package domain

import (
	"context"
	"time"
)

// Quote is a market quote of a ticker symbol or index.
type Quote struct {
	Symbol           string
	CompanyName      string
	Currency         string
	Exchange         string
	Price            float64
	PreviousClose    float64
	DayHigh          float64
	DayLow           float64
	FiftyTwoWeekHigh float64
	FiftyTwoWeekLow  float64
	Volume           int64
	// Zero values mean the upstream did not report the field.
	MarketCap float64
	PERatio   float64
	Sector    string
}

// Change returns the absolute price change against the previous close.
func (q Quote) Change() float64 {
	return q.Price - q.PreviousClose
}

// ChangePercent returns the percent change against the previous close.
func (q Quote) ChangePercent() float64 {
	if q.PreviousClose == 0 {
		return 0
	}
	return q.Change() / q.PreviousClose * 100
}

// NewsItem is a market news headline.
type NewsItem struct {
	Title       string
	Publisher   string
	Link        string
	Type        string
	PublishedAt time.Time
}

// QuoteFetcher retrieves market data. Implementations are shared across
// concurrent chat turns.
type QuoteFetcher interface {
	// FetchQuote returns false when the upstream has no data for the symbol.
	FetchQuote(ctx context.Context, symbol string) (Quote, bool, error)
	// FetchNews returns at most limit news items related to the symbol.
	FetchNews(ctx context.Context, symbol string, limit int) ([]NewsItem, error)
	// Close releases resources. It is safe to call more than once.
	Close() error
}
