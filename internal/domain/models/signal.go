package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TradeSignal is the discrete trade direction derived for a symbol.
type TradeSignal string

const (
	StrongLong  TradeSignal = "STRONG LONG"
	Long        TradeSignal = "LONG"
	StrongShort TradeSignal = "STRONG SHORT"
	Short       TradeSignal = "SHORT"
	Hold        TradeSignal = "HOLD"
)

// IsLong reports whether the signal opens a long position.
func (s TradeSignal) IsLong() bool { return s == Long || s == StrongLong }

// IsShort reports whether the signal opens a short position.
func (s TradeSignal) IsShort() bool { return s == Short || s == StrongShort }

// Priority orders signals for display; lower comes first.
func (s TradeSignal) Priority() int {
	switch s {
	case StrongLong:
		return 0
	case StrongShort:
		return 1
	case Long:
		return 2
	case Short:
		return 3
	default:
		return 4
	}
}

// Color is the card color used by the dashboard.
func (s TradeSignal) Color() string {
	switch s {
	case StrongLong:
		return "green"
	case Long:
		return "blue"
	case Short:
		return "orange"
	case StrongShort:
		return "red"
	default:
		return "black"
	}
}

// Recommendation is a provider summary for a class of indicators.
type Recommendation string

const (
	StrongBuy  Recommendation = "STRONG_BUY"
	Buy        Recommendation = "BUY"
	Neutral    Recommendation = "NEUTRAL"
	Sell       Recommendation = "SELL"
	StrongSell Recommendation = "STRONG_SELL"
)

// Trend is the coarse direction derived from vote counts.
type Trend string

const (
	Uptrend   Trend = "UPTREND"
	Downtrend Trend = "DOWNTREND"
)

// TrendFromVotes returns UPTREND when buy votes strictly exceed sell votes.
func TrendFromVotes(buy, sell int) Trend {
	if buy > sell {
		return Uptrend
	}
	return Downtrend
}

// AnalysisSnapshot is one TA provider answer for a (symbol, timeframe).
type AnalysisSnapshot struct {
	Symbol        string
	Timeframe     string
	BuyVotes      int
	SellVotes     int
	NeutralVotes  int
	MovingAverage Recommendation
	Oscillators   Recommendation
	Trend         Trend
	FetchedAt     time.Time
}

// RiskEnvelope holds stop-loss and take-profit levels. Both are nil when no
// envelope applies.
type RiskEnvelope struct {
	StopLoss   *decimal.Decimal
	TakeProfit *decimal.Decimal
}

// Empty reports whether the envelope carries no levels.
func (e RiskEnvelope) Empty() bool { return e.StopLoss == nil && e.TakeProfit == nil }

// SignalRecord is the per-symbol view rendered on a dashboard card.
type SignalRecord struct {
	Symbol        string           `json:"symbol"`
	Signal        TradeSignal      `json:"signal"`
	Color         string           `json:"color"`
	BuyVotes      int              `json:"buy_pressure"`
	SellVotes     int              `json:"sell_pressure"`
	NeutralVotes  int              `json:"neutral"`
	MovingAverage Recommendation   `json:"moving_averages"`
	Oscillators   Recommendation   `json:"oscillators"`
	Trend         Trend            `json:"market_trend"`
	Price         *decimal.Decimal `json:"current_price"`
	StopLoss      *decimal.Decimal `json:"stop_loss"`
	TakeProfit    *decimal.Decimal `json:"take_profit"`
	ChartURL      string           `json:"chart_url"`
}
