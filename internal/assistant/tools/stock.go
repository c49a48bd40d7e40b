package tools

import (
	"context"
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/cleitonmarx/symbiont-agenthub/internal/common"
	"github.com/cleitonmarx/symbiont-agenthub/internal/domain"
	"golang.org/x/sync/errgroup"
)

const (
	stockDataSource  = "Yahoo Finance"
	maxNewsItems     = 10
	generalNewsLimit = 3
)

var (
	popularSymbols = []string{"AAPL", "GOOGL", "MSFT", "TSLA", "AMZN", "NVDA", "META", "JPM", "V", "BRK-B"}

	generalNewsSymbols = []string{"SPY", "QQQ", "DIA"}

	marketIndices = []struct {
		Name   string
		Symbol string
	}{
		{Name: "S&P 500", Symbol: "^GSPC"},
		{Name: "NASDAQ", Symbol: "^IXIC"},
		{Name: "DOW Jones", Symbol: "^DJI"},
		{Name: "Russell 2000", Symbol: "^RUT"},
	}
)

// NewStockTools returns the tools of the finance assistant.
func NewStockTools(fetcher domain.QuoteFetcher, timeProvider domain.CurrentTimeProvider) []domain.Tool {
	return []domain.Tool{
		NewStockPriceTool(fetcher, timeProvider),
		NewMarketSummaryTool(fetcher, timeProvider),
		NewStockNewsTool(fetcher, timeProvider),
	}
}

// normalizeSymbol upper-cases the symbol and uses the dash share class
// notation, e.g. BRK.B becomes BRK-B.
func normalizeSymbol(symbol string) string {
	return strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(symbol)), ".", "-")
}

// StockPriceTool returns the current price and daily performance of a ticker.
type StockPriceTool struct {
	fetcher      domain.QuoteFetcher
	timeProvider domain.CurrentTimeProvider
}

// NewStockPriceTool creates a new StockPriceTool.
func NewStockPriceTool(fetcher domain.QuoteFetcher, timeProvider domain.CurrentTimeProvider) StockPriceTool {
	return StockPriceTool{fetcher: fetcher, timeProvider: timeProvider}
}

// Spec returns the tool spec of StockPriceTool.
func (t StockPriceTool) Spec() domain.ToolSpec {
	return domain.ToolSpec{
		Name:    "get_stock_price",
		Summary: "Get the current stock price and daily performance for a ticker symbol.",
		Params: []domain.ToolParam{
			{
				Name:        "symbol",
				Kind:        domain.ToolParamKind_String,
				Description: "Stock ticker symbol (e.g., AAPL, GOOGL, MSFT, TSLA)",
			},
		},
	}
}

type stockSymbolArgs struct {
	Symbol string `mapstructure:"symbol"`
}

// Call fetches the quote and formats it for the model.
func (t StockPriceTool) Call(ctx context.Context, args domain.ToolArguments) (domain.ToolResult, error) {
	var in stockSymbolArgs
	if err := decodeArguments(args, &in); err != nil {
		return nil, err
	}
	symbol := normalizeSymbol(in.Symbol)

	q, found, err := t.fetcher.FetchQuote(ctx, symbol)
	if err != nil {
		return domain.ToolResult{
			"success":           false,
			"error":             fmt.Sprintf("Failed to fetch data for '%s': %s", symbol, err.Error()),
			"suggestion":        "Try one of these popular symbols:",
			"available_symbols": popularSymbols,
		}, nil
	}
	if !found {
		return domain.ToolResult{
			"success":           false,
			"error":             fmt.Sprintf("Symbol '%s' not found or no data available", symbol),
			"suggestion":        "Try one of these popular symbols:",
			"available_symbols": popularSymbols,
			"tip":               "Make sure to enter a valid NYSE/NASDAQ ticker symbol",
		}, nil
	}

	now := t.timeProvider.Now()
	change := math.Round(q.Change()*100) / 100
	changePct := 0.0
	if q.PreviousClose != 0 {
		changePct = change / q.PreviousClose * 100
	}
	trend := "📈 Up"
	if change < 0 {
		trend = "📉 Down"
	}

	return domain.ToolResult{
		"success":        true,
		"symbol":         symbol,
		"company_name":   orDefault(q.CompanyName, symbol),
		"current_price":  common.FormatUSD(q.Price),
		"price_change":   common.FormatSigned(change, 2),
		"change_percent": common.FormatSignedPercent(changePct),
		"trend":          trend,
		"sector":         orDefault(q.Sector, "N/A"),
		"pe_ratio":       formatPERatio(q.PERatio),
		"market_cap":     formatMarketCap(q.MarketCap),
		"volume":         formatVolume(q.Volume),
		"day_high":       common.FormatUSD(q.DayHigh),
		"day_low":        common.FormatUSD(q.DayLow),
		"52_week_high":   common.FormatUSD(q.FiftyTwoWeekHigh),
		"52_week_low":    common.FormatUSD(q.FiftyTwoWeekLow),
		"market_status":  marketStatus(isMarketOpen(now)),
		"last_updated":   marketTimestamp(now),
		"data_source":    stockDataSource,
	}, nil
}

// MarketSummaryTool returns an overview of the major US indices.
type MarketSummaryTool struct {
	fetcher      domain.QuoteFetcher
	timeProvider domain.CurrentTimeProvider
}

// NewMarketSummaryTool creates a new MarketSummaryTool.
func NewMarketSummaryTool(fetcher domain.QuoteFetcher, timeProvider domain.CurrentTimeProvider) MarketSummaryTool {
	return MarketSummaryTool{fetcher: fetcher, timeProvider: timeProvider}
}

// Spec returns the tool spec of MarketSummaryTool.
func (t MarketSummaryTool) Spec() domain.ToolSpec {
	return domain.ToolSpec{
		Name:    "get_market_summary",
		Summary: "Get an overview of major market indices and overall market conditions.",
	}
}

// Call fetches the indices and the VIX concurrently. Indices that cannot be
// fetched are reported as N/A and excluded from the sentiment average.
func (t MarketSummaryTool) Call(ctx context.Context, _ domain.ToolArguments) (domain.ToolResult, error) {
	var (
		mu          sync.Mutex
		indices     = make(map[string]any, len(marketIndices))
		totalChange float64
		fetched     int
		vixLevel    = "N/A"
	)

	var g errgroup.Group
	for _, index := range marketIndices {
		g.Go(func() error {
			q, found, err := t.fetcher.FetchQuote(ctx, index.Symbol)
			mu.Lock()
			defer mu.Unlock()
			if err != nil || !found || q.Price == 0 || q.PreviousClose == 0 {
				indices[index.Name] = map[string]any{
					"value":  "N/A",
					"change": "N/A",
					"trend":  "❓",
				}
				return nil
			}
			pct := q.ChangePercent()
			totalChange += pct
			fetched++
			indices[index.Name] = map[string]any{
				"value":         common.FormatDecimal(q.Price, 2),
				"change":        common.FormatSignedPercent(pct),
				"change_points": common.FormatSigned(q.Change(), 2),
				"trend":         trendArrow(pct >= 0),
			}
			return nil
		})
	}
	g.Go(func() error {
		q, found, err := t.fetcher.FetchQuote(ctx, "^VIX")
		if err == nil && found && q.Price != 0 {
			mu.Lock()
			vixLevel = fmt.Sprintf("%.2f", q.Price)
			mu.Unlock()
		}
		return nil
	})
	_ = g.Wait()

	sentiment, description := "❓ Unknown", "Unable to determine market sentiment"
	if fetched > 0 {
		sentiment, description = marketSentiment(totalChange / float64(fetched))
	}

	now := t.timeProvider.Now()
	open := isMarketOpen(now)
	return domain.ToolResult{
		"success":               true,
		"market_status":         marketStatus(open),
		"trading_session":       tradingSession(open),
		"indices":               indices,
		"market_sentiment":      sentiment,
		"sentiment_description": description,
		"vix_level":             vixLevel,
		"timestamp":             marketTimestamp(now),
		"data_source":           stockDataSource,
	}, nil
}

func marketSentiment(avgChange float64) (string, string) {
	switch {
	case avgChange > 0.5:
		return "🟢 Bullish", "Markets showing positive momentum"
	case avgChange < -0.5:
		return "🔴 Bearish", "Markets under pressure"
	default:
		return "🟡 Neutral", "Markets trading mixed"
	}
}

// StockNewsTool returns recent financial news.
type StockNewsTool struct {
	fetcher      domain.QuoteFetcher
	timeProvider domain.CurrentTimeProvider
}

// NewStockNewsTool creates a new StockNewsTool.
func NewStockNewsTool(fetcher domain.QuoteFetcher, timeProvider domain.CurrentTimeProvider) StockNewsTool {
	return StockNewsTool{fetcher: fetcher, timeProvider: timeProvider}
}

// Spec returns the tool spec of StockNewsTool.
func (t StockNewsTool) Spec() domain.ToolSpec {
	return domain.ToolSpec{
		Name:    "get_stock_news",
		Summary: "Get the latest financial news, optionally filtered by stock symbol.",
		Params: []domain.ToolParam{
			{
				Name:        "symbol",
				Kind:        domain.ToolParamKind_String,
				Description: "Optional stock ticker to filter news (e.g., AAPL, TSLA)",
				Default:     "",
			},
		},
	}
}

// Call returns the symbol news, falling back to general market news from
// broad market ETFs when the symbol has none.
func (t StockNewsTool) Call(ctx context.Context, args domain.ToolArguments) (domain.ToolResult, error) {
	var in stockSymbolArgs
	if err := decodeArguments(args, &in); err != nil {
		return nil, err
	}

	now := t.timeProvider.Now()
	var items []domain.NewsItem
	filter := "All Markets"

	symbol := strings.ToUpper(strings.TrimSpace(in.Symbol))
	if symbol != "" {
		filter = symbol
		news, err := t.fetcher.FetchNews(ctx, normalizeSymbol(symbol), maxNewsItems)
		if err != nil {
			filter = fmt.Sprintf("%s (news unavailable, showing general)", symbol)
		} else {
			items = news
		}
	}

	if len(items) == 0 {
		for _, s := range generalNewsSymbols {
			news, err := t.fetcher.FetchNews(ctx, s, generalNewsLimit)
			if err != nil {
				continue
			}
			items = append(items, news...)
		}
		if symbol == "" {
			filter = "General Market News"
		}
	}

	seen := make(map[string]struct{}, len(items))
	articles := make([]map[string]any, 0, len(items))
	for _, item := range items {
		headline := orDefault(item.Title, "No title")
		if _, dup := seen[headline]; dup {
			continue
		}
		seen[headline] = struct{}{}
		articles = append(articles, map[string]any{
			"headline": headline,
			"source":   orDefault(item.Publisher, "Unknown"),
			"time":     timeAgo(item.PublishedAt, now),
			"link":     item.Link,
			"type":     orDefault(item.Type, "STORY"),
		})
	}

	count := len(articles)
	if len(articles) > maxNewsItems {
		articles = articles[:maxNewsItems]
	}

	return domain.ToolResult{
		"success":       true,
		"filter":        filter,
		"article_count": count,
		"news":          articles,
		"timestamp":     now.Format(domain.TimestampLayout),
		"data_source":   stockDataSource,
		"disclaimer":    "News is for informational purposes only. Not financial advice.",
	}, nil
}
