package bitget

import (
	"context"
	"fmt"
	"strings"
	"time"

	"FinSignal/internal/domain/models"
	domrepo "FinSignal/internal/domain/repository"
	xhttp "FinSignal/pkg/http"
	xlogger "FinSignal/pkg/logger"

	"github.com/shopspring/decimal"
)

const (
	providerName = "bitget"
	codeSuccess  = "00000"
)

// Client implements PriceProvider using the Bitget public spot REST API.
type Client struct {
	baseURL string
	http    *xhttp.Client
	logger  *xlogger.Logger
	metrics domrepo.Metrics
}

// Option configures Client.
type Option func(*Client)

// WithBaseURL overrides the REST base URL.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") }
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http = xhttp.NewClient(xhttp.WithTimeout(d))
		}
	}
}

// New creates a Bitget ticker client.
func New(logger *xlogger.Logger, metrics domrepo.Metrics, opts ...Option) *Client {
	c := &Client{
		baseURL: "https://api.bitget.com",
		http:    xhttp.NewClient(),
		logger:  logger,
		metrics: metrics,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type tickerResponse struct {
	Code string `json:"code"`
	Msg  string `json:"msg"`
	Data []struct {
		Symbol string `json:"symbol"`
		LastPr string `json:"lastPr"`
	} `json:"data"`
}

// LastPrice returns the last traded price for a compact symbol.
func (c *Client) LastPrice(ctx context.Context, symbol string) models.Result[decimal.Decimal] {
	start := time.Now()
	price, err := c.fetch(ctx, symbol)
	if c.metrics != nil {
		c.metrics.RecordFetchLatency(providerName, time.Since(start).Seconds())
	}
	if err != nil {
		if c.metrics != nil {
			c.metrics.RecordFetchError(providerName)
		}
		if c.logger != nil {
			c.logger.Error("bitget price failed", xlogger.String("symbol", symbol), xlogger.Error(err))
		}
		return models.Fail[decimal.Decimal](fmt.Errorf("bitget %s: %w: %w", symbol, models.ErrUnavailable, err))
	}
	if c.metrics != nil {
		c.metrics.RecordLastPrice(symbol, price.InexactFloat64())
	}
	return models.Ok(price)
}

func (c *Client) fetch(ctx context.Context, symbol string) (decimal.Decimal, error) {
	pair, err := ParsePair(symbol)
	if err != nil {
		return decimal.Decimal{}, err
	}

	var resp tickerResponse
	err = c.http.SendAndParse(ctx, &xhttp.RequestOptions{
		Method:      xhttp.MethodGet,
		URL:         c.baseURL + "/api/v2/spot/market/tickers",
		QueryParams: map[string][]string{"symbol": {pair.MarketID()}},
	}, &resp)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("ticker %s: %w", pair, err)
	}
	if resp.Code != codeSuccess {
		return decimal.Decimal{}, fmt.Errorf("ticker %s: code %s: %s", pair, resp.Code, resp.Msg)
	}
	for _, d := range resp.Data {
		if d.Symbol != pair.MarketID() {
			continue
		}
		p, err := decimal.NewFromString(d.LastPr)
		if err != nil {
			return decimal.Decimal{}, fmt.Errorf("ticker %s: parse last %q: %w", pair, d.LastPr, err)
		}
		if !p.IsPositive() {
			return decimal.Decimal{}, fmt.Errorf("ticker %s: non-positive last %s", pair, p)
		}
		return p, nil
	}
	return decimal.Decimal{}, fmt.Errorf("ticker %s: no data", pair)
}

var _ domrepo.PriceProvider = (*Client)(nil)
