package repository

// Timeframe is a TA interval accepted by the provider.
type Timeframe string

const (
	TF1m  Timeframe = "1m"
	TF15m Timeframe = "15m"
	TF1h  Timeframe = "1h"
	TF4h  Timeframe = "4h"
	TF1d  Timeframe = "1d"
)

var timeframeLabels = []struct {
	tf    Timeframe
	label string
}{
	{TF1m, "1 Minute"},
	{TF15m, "15 Minutes"},
	{TF1h, "1 Hour"},
	{TF4h, "4 Hours"},
	{TF1d, "1 Day"},
}

// IsValidTimeframe returns true if tf is a supported timeframe.
func IsValidTimeframe(tf Timeframe) bool {
	switch tf {
	case TF1m, TF15m, TF1h, TF4h, TF1d:
		return true
	default:
		return false
	}
}

// DefaultTimeframe returns the default timeframe.
func DefaultTimeframe() Timeframe { return TF15m }

// NormalizeTimeframe converts raw string to a valid timeframe, or fallback.
// An invalid fallback yields DefaultTimeframe.
func NormalizeTimeframe(s string, fallback Timeframe) Timeframe {
	if !IsValidTimeframe(fallback) {
		fallback = DefaultTimeframe()
	}
	if tf := Timeframe(s); IsValidTimeframe(tf) {
		return tf
	}
	return fallback
}

// Timeframes lists supported timeframes in selector order.
func Timeframes() []Timeframe {
	out := make([]Timeframe, 0, len(timeframeLabels))
	for _, t := range timeframeLabels {
		out = append(out, t.tf)
	}
	return out
}

// Label returns the human readable name of tf.
func (tf Timeframe) Label() string {
	for _, t := range timeframeLabels {
		if t.tf == tf {
			return t.label
		}
	}
	return string(tf)
}
