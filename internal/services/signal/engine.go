package signal

import (
	"FinSignal/internal/domain/models"
	domsvc "FinSignal/internal/domain/service"
)

// MinVotes is the vote count a side needs before a plain LONG/SHORT is issued.
const MinVotes = 10

// Engine is the threshold decision table mapping a snapshot to a signal.
type Engine struct{}

func NewEngine() *Engine { return &Engine{} }

// Generate applies the rules in order; the first match wins. Dual strong
// agreement is checked before the vote rule of the same side.
func (Engine) Generate(s models.AnalysisSnapshot) models.TradeSignal {
	switch {
	case s.MovingAverage == models.StrongBuy && s.Oscillators == models.StrongBuy:
		return models.StrongLong
	case s.BuyVotes > s.SellVotes && s.BuyVotes >= MinVotes:
		return models.Long
	case s.MovingAverage == models.StrongSell && s.Oscillators == models.StrongSell:
		return models.StrongShort
	case s.SellVotes > s.BuyVotes && s.SellVotes >= MinVotes:
		return models.Short
	default:
		return models.Hold
	}
}

var _ domsvc.SignalEngine = (*Engine)(nil)
