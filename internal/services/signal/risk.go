package signal

import (
	"FinSignal/internal/domain/models"
	domsvc "FinSignal/internal/domain/service"

	"github.com/shopspring/decimal"
)

// DefaultRiskFraction is the stop-loss/take-profit offset from entry (3%).
var DefaultRiskFraction = decimal.NewFromFloat(0.03)

// FixedRisk bands stop-loss and take-profit at a constant fraction of entry.
type FixedRisk struct {
	fraction decimal.Decimal
}

// NewFixedRisk returns a calculator for fraction; non-positive values fall
// back to DefaultRiskFraction.
func NewFixedRisk(fraction float64) *FixedRisk {
	f := decimal.NewFromFloat(fraction)
	if !f.IsPositive() {
		f = DefaultRiskFraction
	}
	return &FixedRisk{fraction: f}
}

// Fraction returns the configured offset.
func (r *FixedRisk) Fraction() decimal.Decimal { return r.fraction }

func (r *FixedRisk) Envelope(entry *decimal.Decimal, sig models.TradeSignal) models.RiskEnvelope {
	if entry == nil {
		return models.RiskEnvelope{}
	}
	one := decimal.NewFromInt(1)
	below := entry.Mul(one.Sub(r.fraction))
	above := entry.Mul(one.Add(r.fraction))

	switch {
	case sig.IsLong():
		return models.RiskEnvelope{StopLoss: &below, TakeProfit: &above}
	case sig.IsShort():
		return models.RiskEnvelope{StopLoss: &above, TakeProfit: &below}
	default:
		return models.RiskEnvelope{}
	}
}

var _ domsvc.RiskCalculator = (*FixedRisk)(nil)
