package tradingview

import (
	"context"
	"fmt"
	"strings"
	"time"

	"FinSignal/internal/domain/models"
	domrepo "FinSignal/internal/domain/repository"
	xhttp "FinSignal/pkg/http"
	xlogger "FinSignal/pkg/logger"
)

const providerName = "tradingview"

// Client implements AnalysisProvider backed by the TradingView scanner API.
type Client struct {
	scannerURL string
	exchange   string
	screener   string
	http       *xhttp.Client
	logger     *xlogger.Logger
	metrics    domrepo.Metrics
}

// Option configures Client.
type Option func(*Client)

// WithScannerURL overrides the scanner base URL.
func WithScannerURL(u string) Option {
	return func(c *Client) { c.scannerURL = strings.TrimRight(u, "/") }
}

// WithExchange sets the exchange prefix used for tickers.
func WithExchange(ex string) Option {
	return func(c *Client) { c.exchange = strings.ToUpper(ex) }
}

// WithScreener sets the screener path segment.
func WithScreener(s string) Option {
	return func(c *Client) { c.screener = strings.ToLower(s) }
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http = xhttp.NewClient(xhttp.WithTimeout(d))
		}
	}
}

// New creates a scanner client.
func New(logger *xlogger.Logger, metrics domrepo.Metrics, opts ...Option) *Client {
	c := &Client{
		scannerURL: "https://scanner.tradingview.com",
		exchange:   "BITGET",
		screener:   "crypto",
		http:       xhttp.NewClient(),
		logger:     logger,
		metrics:    metrics,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Exchange returns the exchange prefix used for tickers and chart links.
func (c *Client) Exchange() string { return c.exchange }

type scanRequest struct {
	Symbols scanSymbols `json:"symbols"`
	Columns []string    `json:"columns"`
}

type scanSymbols struct {
	Tickers []string  `json:"tickers"`
	Query   scanQuery `json:"query"`
}

type scanQuery struct {
	Types []string `json:"types"`
}

type scanResponse struct {
	TotalCount int `json:"totalCount"`
	Data       []struct {
		S string     `json:"s"`
		D []*float64 `json:"d"`
	} `json:"data"`
}

// Analysis fetches and tallies indicators for symbol. Failures are logged and
// returned as a failed result wrapping models.ErrUnavailable.
func (c *Client) Analysis(ctx context.Context, symbol string, tf domrepo.Timeframe) models.Result[models.AnalysisSnapshot] {
	start := time.Now()
	snap, err := c.fetch(ctx, symbol, tf)
	if c.metrics != nil {
		c.metrics.RecordFetchLatency(providerName, time.Since(start).Seconds())
	}
	if err != nil {
		if c.metrics != nil {
			c.metrics.RecordFetchError(providerName)
		}
		if c.logger != nil {
			c.logger.Error("tradingview analysis failed",
				xlogger.String("symbol", symbol),
				xlogger.String("timeframe", string(tf)),
				xlogger.Error(err),
			)
		}
		return models.Fail[models.AnalysisSnapshot](fmt.Errorf("tradingview %s: %w: %w", symbol, models.ErrUnavailable, err))
	}
	return models.Ok(snap)
}

func (c *Client) fetch(ctx context.Context, symbol string, tf domrepo.Timeframe) (models.AnalysisSnapshot, error) {
	suffix, err := intervalSuffix(tf)
	if err != nil {
		return models.AnalysisSnapshot{}, err
	}
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return models.AnalysisSnapshot{}, fmt.Errorf("symbol required")
	}

	req := scanRequest{
		Symbols: scanSymbols{Tickers: []string{c.exchange + ":" + symbol}, Query: scanQuery{Types: []string{}}},
		Columns: columnsFor(suffix),
	}
	var resp scanResponse
	err = c.http.SendAndParse(ctx, &xhttp.RequestOptions{
		Method:  xhttp.MethodPost,
		URL:     c.scannerURL + "/" + c.screener + "/scan",
		Headers: map[string]string{"Content-Type": "application/json"},
		Body:    req,
	}, &resp)
	if err != nil {
		return models.AnalysisSnapshot{}, fmt.Errorf("scan: %w", err)
	}
	if len(resp.Data) == 0 {
		return models.AnalysisSnapshot{}, fmt.Errorf("exchange or symbol not found")
	}

	vals, err := newValues(resp.Data[0].D)
	if err != nil {
		return models.AnalysisSnapshot{}, fmt.Errorf("decode row: %w", err)
	}
	return snapshot(symbol, tf, vals)
}

func snapshot(symbol string, tf domrepo.Timeframe, v values) (models.AnalysisSnapshot, error) {
	maVal, ok := v.get("Recommend.MA")
	if !ok {
		return models.AnalysisSnapshot{}, fmt.Errorf("missing Recommend.MA")
	}
	oscVal, ok := v.get("Recommend.Other")
	if !ok {
		return models.AnalysisSnapshot{}, fmt.Errorf("missing Recommend.Other")
	}
	ma, ok := recommend(maVal)
	if !ok {
		return models.AnalysisSnapshot{}, fmt.Errorf("Recommend.MA out of range: %v", maVal)
	}
	osc, ok := recommend(oscVal)
	if !ok {
		return models.AnalysisSnapshot{}, fmt.Errorf("Recommend.Other out of range: %v", oscVal)
	}

	sum := oscillators(v).plus(movingAverages(v))
	return models.AnalysisSnapshot{
		Symbol:        symbol,
		Timeframe:     string(tf),
		BuyVotes:      sum.buy,
		SellVotes:     sum.sell,
		NeutralVotes:  sum.neutral,
		MovingAverage: ma,
		Oscillators:   osc,
		Trend:         models.TrendFromVotes(sum.buy, sum.sell),
		FetchedAt:     time.Now(),
	}, nil
}

var _ domrepo.AnalysisProvider = (*Client)(nil)
