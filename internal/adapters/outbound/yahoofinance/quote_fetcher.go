package yahoofinance

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/cleitonmarx/symbiont-agenthub/internal/domain"
	"github.com/cleitonmarx/symbiont-agenthub/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// ErrClosed is returned by fetch operations after Close.
var ErrClosed = errors.New("quote fetcher is closed")

const quoteCacheSize = 256

// QuoteFetcher implements domain.QuoteFetcher with a short-lived quote cache.
type QuoteFetcher struct {
	client  APIClient
	cache   *expirable.LRU[string, domain.Quote]
	timeout time.Duration
	closed  atomic.Bool
}

// NewQuoteFetcher creates a QuoteFetcher caching quotes for cacheTTL and
// bounding every upstream call to timeout.
func NewQuoteFetcher(client APIClient, cacheTTL, timeout time.Duration) *QuoteFetcher {
	return &QuoteFetcher{
		client:  client,
		cache:   expirable.NewLRU[string, domain.Quote](quoteCacheSize, nil, cacheTTL),
		timeout: timeout,
	}
}

// NormalizeSymbol converts a user supplied ticker to the Yahoo format, e.g. brk.b -> BRK-B.
func NormalizeSymbol(symbol string) string {
	return strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(symbol)), ".", "-")
}

// FetchQuote returns the quote of a symbol. The boolean is false when Yahoo has no data for it.
func (f *QuoteFetcher) FetchQuote(ctx context.Context, symbol string) (domain.Quote, bool, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if f.closed.Load() {
		telemetry.RecordErrorAndStatus(span, ErrClosed)
		return domain.Quote{}, false, ErrClosed
	}

	symbol = NormalizeSymbol(symbol)
	if symbol == "" {
		return domain.Quote{}, false, nil
	}
	if q, ok := f.cache.Get(symbol); ok {
		return q, true, nil
	}

	callCtx, cancel := context.WithTimeout(spanCtx, f.timeout)
	defer cancel()

	meta, err := f.client.Chart(callCtx, symbol)
	if errors.Is(err, errSymbolNotFound) {
		return domain.Quote{}, false, nil
	}
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Quote{}, false, fmt.Errorf("fetch chart of %s: %w", symbol, err)
	}
	if meta.RegularMarketPrice == 0 {
		return domain.Quote{}, false, nil
	}

	q := quoteFromChart(symbol, meta)
	if !strings.HasPrefix(symbol, "^") {
		f.enrich(callCtx, &q)
	}

	f.cache.Add(symbol, q)
	return q, true, nil
}

// enrich fills the descriptive fields that the chart endpoint does not report.
// Lookup failures leave the quote unchanged.
func (f *QuoteFetcher) enrich(ctx context.Context, q *domain.Quote) {
	res, err := f.client.Search(ctx, q.Symbol, 1, 0)
	if err != nil {
		return
	}
	for _, match := range res.Quotes {
		if match.Symbol != q.Symbol {
			continue
		}
		q.Sector = match.Sector
		if q.CompanyName == "" {
			q.CompanyName = firstNonEmpty(match.ShortName, match.LongName)
		}
		return
	}
}

func quoteFromChart(symbol string, meta ChartMeta) domain.Quote {
	previousClose := meta.PreviousClose
	if previousClose == 0 {
		previousClose = meta.ChartPreviousClose
	}
	if previousClose == 0 {
		previousClose = meta.RegularMarketPrice
	}
	return domain.Quote{
		Symbol:           symbol,
		CompanyName:      firstNonEmpty(meta.ShortName, meta.LongName),
		Currency:         meta.Currency,
		Exchange:         firstNonEmpty(meta.FullExchangeName, meta.ExchangeName),
		Price:            meta.RegularMarketPrice,
		PreviousClose:    previousClose,
		DayHigh:          meta.RegularMarketDayHigh,
		DayLow:           meta.RegularMarketDayLow,
		FiftyTwoWeekHigh: meta.FiftyTwoWeekHigh,
		FiftyTwoWeekLow:  meta.FiftyTwoWeekLow,
		Volume:           meta.RegularMarketVolume,
	}
}

// FetchNews returns at most limit news items about the symbol.
func (f *QuoteFetcher) FetchNews(ctx context.Context, symbol string, limit int) ([]domain.NewsItem, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if f.closed.Load() {
		telemetry.RecordErrorAndStatus(span, ErrClosed)
		return nil, ErrClosed
	}

	symbol = NormalizeSymbol(symbol)
	if symbol == "" || limit <= 0 {
		return []domain.NewsItem{}, nil
	}

	callCtx, cancel := context.WithTimeout(spanCtx, f.timeout)
	defer cancel()

	res, err := f.client.Search(callCtx, symbol, 0, limit)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, fmt.Errorf("fetch news of %s: %w", symbol, err)
	}

	items := make([]domain.NewsItem, 0, min(limit, len(res.News)))
	for _, n := range res.News {
		if len(items) == limit {
			break
		}
		item := domain.NewsItem{
			Title:     n.Title,
			Publisher: n.Publisher,
			Link:      n.Link,
			Type:      n.Type,
		}
		if n.ProviderPublishTime > 0 {
			item.PublishedAt = time.Unix(n.ProviderPublishTime, 0).UTC()
		}
		items = append(items, item)
	}
	return items, nil
}

// Close purges the quote cache and rejects further fetches. It is safe to call more than once.
func (f *QuoteFetcher) Close() error {
	f.closed.Store(true)
	f.cache.Purge()
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// InitQuoteFetcher initializes the Yahoo Finance QuoteFetcher dependency.
type InitQuoteFetcher struct {
	HttpClient *http.Client  `resolve:""`
	Logger     *log.Logger   `resolve:""`
	BaseURL    string        `config:"YAHOO_FINANCE_BASE_URL" default:"https://query1.finance.yahoo.com"`
	UserAgent  string        `config:"YAHOO_FINANCE_USER_AGENT" default:"Mozilla/5.0 (compatible; agenthub/1.0)"`
	CacheTTL   time.Duration `config:"YAHOO_FINANCE_CACHE_TTL" default:"60s"`
	Timeout    time.Duration `config:"YAHOO_FINANCE_TIMEOUT" default:"30s"`
	fetcher    *QuoteFetcher
}

// Initialize registers the QuoteFetcher in the dependency container.
func (i *InitQuoteFetcher) Initialize(ctx context.Context) (context.Context, error) {
	i.fetcher = NewQuoteFetcher(NewAPIClient(i.BaseURL, i.UserAgent, i.HttpClient), i.CacheTTL, i.Timeout)
	depend.Register[domain.QuoteFetcher](i.fetcher)
	return ctx, nil
}

// Close releases the QuoteFetcher resources.
func (i *InitQuoteFetcher) Close() {
	if i.fetcher == nil {
		return
	}
	if err := i.fetcher.Close(); err != nil {
		i.Logger.Printf("InitQuoteFetcher: error closing quote fetcher: %v", err)
	}
}
