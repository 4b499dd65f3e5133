package models

// SignalsRequest is the query accepted by the dashboard signals endpoint.
// Symbols is a comma separated list; empty values mean the configured
// defaults.
type SignalsRequest struct {
	Symbols string `query:"symbols" json:"symbols" validate:"max=1024"`
	TF      string `query:"tf" json:"tf" validate:"omitempty,oneof=1m 15m 1h 4h 1d"`
}

// SymbolOption is one entry of the symbol catalog.
type SymbolOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// TimeframeOption is one entry of the timeframe selector.
type TimeframeOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
}
