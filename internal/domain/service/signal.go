package service

import (
	"FinSignal/internal/domain/models"

	"github.com/shopspring/decimal"
)

// SignalEngine derives a trade signal from an analysis snapshot.
type SignalEngine interface {
	Generate(snap models.AnalysisSnapshot) models.TradeSignal
}

// RiskCalculator computes the stop-loss/take-profit envelope for an entry.
// A nil entry means no price was available.
type RiskCalculator interface {
	Envelope(entry *decimal.Decimal, sig models.TradeSignal) models.RiskEnvelope
}
