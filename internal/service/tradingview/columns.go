package tradingview

import (
	"fmt"

	domrepo "FinSignal/internal/domain/repository"
)

// columns requested from the scanner, without interval suffix.
var columns = []string{
	"Recommend.Other", "Recommend.All", "Recommend.MA",
	"RSI", "RSI[1]", "Stoch.K", "Stoch.D", "Stoch.K[1]", "Stoch.D[1]",
	"CCI20", "CCI20[1]", "ADX", "ADX+DI", "ADX-DI", "ADX+DI[1]", "ADX-DI[1]",
	"AO", "AO[1]", "AO[2]", "Mom", "Mom[1]", "MACD.macd", "MACD.signal",
	"Rec.Stoch.RSI", "Stoch.RSI.K", "Rec.WR", "W.R", "Rec.BBPower", "BBPower", "Rec.UO", "UO",
	"close",
	"EMA10", "SMA10", "EMA20", "SMA20", "EMA30", "SMA30",
	"EMA50", "SMA50", "EMA100", "SMA100", "EMA200", "SMA200",
	"Rec.Ichimoku", "Ichimoku.BLine", "Rec.VWMA", "VWMA", "Rec.HullMA9", "HullMA9",
}

// intervalSuffix returns the column suffix the scanner uses for tf. Daily
// columns carry no suffix.
func intervalSuffix(tf domrepo.Timeframe) (string, error) {
	switch tf {
	case domrepo.TF1m:
		return "|1", nil
	case domrepo.TF15m:
		return "|15", nil
	case domrepo.TF1h:
		return "|60", nil
	case domrepo.TF4h:
		return "|240", nil
	case domrepo.TF1d:
		return "", nil
	default:
		return "", fmt.Errorf("unsupported interval %q", tf)
	}
}

func columnsFor(suffix string) []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = c + suffix
	}
	return out
}

// values indexes one scanner row by column name. Null cells are kept as nil.
type values map[string]*float64

func newValues(row []*float64) (values, error) {
	if len(row) != len(columns) {
		return nil, fmt.Errorf("expected %d columns, got %d", len(columns), len(row))
	}
	v := make(values, len(columns))
	for i, c := range columns {
		v[c] = row[i]
	}
	return v, nil
}

func (v values) get(name string) (float64, bool) {
	p, ok := v[name]
	if !ok || p == nil {
		return 0, false
	}
	return *p, true
}

// all returns the named values only if every one is present.
func (v values) all(names ...string) ([]float64, bool) {
	out := make([]float64, len(names))
	for i, n := range names {
		x, ok := v.get(n)
		if !ok {
			return nil, false
		}
		out[i] = x
	}
	return out, true
}
