// Package yahoofinance implements domain.QuoteFetcher over the public Yahoo
// Finance chart and search endpoints.
package yahoofinance

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
)

// errSymbolNotFound is returned by the API client when the chart endpoint has no data for a symbol.
var errSymbolNotFound = errors.New("symbol not found")

// ChartMeta is the quote summary embedded in a chart response.
type ChartMeta struct {
	Symbol               string  `json:"symbol"`
	Currency             string  `json:"currency"`
	ExchangeName         string  `json:"exchangeName"`
	FullExchangeName     string  `json:"fullExchangeName"`
	ShortName            string  `json:"shortName"`
	LongName             string  `json:"longName"`
	RegularMarketPrice   float64 `json:"regularMarketPrice"`
	ChartPreviousClose   float64 `json:"chartPreviousClose"`
	PreviousClose        float64 `json:"previousClose"`
	RegularMarketDayHigh float64 `json:"regularMarketDayHigh"`
	RegularMarketDayLow  float64 `json:"regularMarketDayLow"`
	RegularMarketVolume  int64   `json:"regularMarketVolume"`
	FiftyTwoWeekHigh     float64 `json:"fiftyTwoWeekHigh"`
	FiftyTwoWeekLow      float64 `json:"fiftyTwoWeekLow"`
}

// ChartResponse is the body of /v8/finance/chart/{symbol}.
type ChartResponse struct {
	Chart struct {
		Result []struct {
			Meta ChartMeta `json:"meta"`
		} `json:"result"`
		Error *APIError `json:"error"`
	} `json:"chart"`
}

// APIError is the error object returned by the finance endpoints.
type APIError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// SearchQuote is a quote match of a search response.
type SearchQuote struct {
	Symbol    string `json:"symbol"`
	ShortName string `json:"shortname"`
	LongName  string `json:"longname"`
	Exchange  string `json:"exchange"`
	QuoteType string `json:"quoteType"`
	Sector    string `json:"sector"`
	Industry  string `json:"industry"`
}

// SearchNews is a news match of a search response.
type SearchNews struct {
	UUID                string `json:"uuid"`
	Title               string `json:"title"`
	Publisher           string `json:"publisher"`
	Link                string `json:"link"`
	Type                string `json:"type"`
	ProviderPublishTime int64  `json:"providerPublishTime"`
}

// SearchResponse is the body of /v1/finance/search.
type SearchResponse struct {
	Quotes []SearchQuote `json:"quotes"`
	News   []SearchNews  `json:"news"`
}

// APIClient is a thin client for the Yahoo Finance JSON API.
type APIClient struct {
	baseURL   string
	userAgent string
	http      *http.Client
}

// NewAPIClient creates a new APIClient.
func NewAPIClient(baseURL, userAgent string, httpClient *http.Client) APIClient {
	return APIClient{
		baseURL:   baseURL,
		userAgent: userAgent,
		http:      httpClient,
	}
}

// Chart returns the chart metadata of a symbol, or errSymbolNotFound.
func (c APIClient) Chart(ctx context.Context, symbol string) (ChartMeta, error) {
	query := url.Values{}
	query.Set("range", "1d")
	query.Set("interval", "1d")

	var out ChartResponse
	status, err := c.get(ctx, "/v8/finance/chart/"+url.PathEscape(symbol), query, &out)
	if status == http.StatusNotFound {
		return ChartMeta{}, errSymbolNotFound
	}
	if err != nil {
		return ChartMeta{}, err
	}
	if out.Chart.Error != nil {
		return ChartMeta{}, fmt.Errorf("chart error: %s: %s", out.Chart.Error.Code, out.Chart.Error.Description)
	}
	if len(out.Chart.Result) == 0 {
		return ChartMeta{}, errSymbolNotFound
	}
	return out.Chart.Result[0].Meta, nil
}

// Search looks up quotes and news matching the query.
func (c APIClient) Search(ctx context.Context, q string, quotesCount, newsCount int) (SearchResponse, error) {
	query := url.Values{}
	query.Set("q", q)
	query.Set("quotesCount", strconv.Itoa(quotesCount))
	query.Set("newsCount", strconv.Itoa(newsCount))

	var out SearchResponse
	if _, err := c.get(ctx, "/v1/finance/search", query, &out); err != nil {
		return SearchResponse{}, err
	}
	return out, nil
}

func (c APIClient) get(ctx context.Context, path string, query url.Values, out any) (int, error) {
	endpoint, err := url.JoinPath(c.baseURL, path)
	if err != nil {
		return 0, fmt.Errorf("invalid base URL: %w", err)
	}
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("http do: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return resp.StatusCode, fmt.Errorf("non-2xx response: %s: %s", resp.Status, string(body))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return resp.StatusCode, fmt.Errorf("unmarshal response: %w", err)
	}
	return resp.StatusCode, nil
}
