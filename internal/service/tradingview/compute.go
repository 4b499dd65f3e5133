package tradingview

import "FinSignal/internal/domain/models"

// Vote tallying mirrors the TradingView technicals widget: each indicator
// casts one BUY/SELL/NEUTRAL vote and the summary is the sum of both groups.

type tally struct {
	buy, sell, neutral int
}

func (t *tally) add(r models.Recommendation) {
	switch r {
	case models.Buy:
		t.buy++
	case models.Sell:
		t.sell++
	default:
		t.neutral++
	}
}

func (t tally) plus(o tally) tally {
	return tally{buy: t.buy + o.buy, sell: t.sell + o.sell, neutral: t.neutral + o.neutral}
}

// recommend buckets a Recommend.* value in [-1, 1].
func recommend(v float64) (models.Recommendation, bool) {
	switch {
	case v >= -1 && v < -0.5:
		return models.StrongSell, true
	case v >= -0.5 && v < -0.1:
		return models.Sell, true
	case v >= -0.1 && v <= 0.1:
		return models.Neutral, true
	case v > 0.1 && v <= 0.5:
		return models.Buy, true
	case v > 0.5 && v <= 1:
		return models.StrongBuy, true
	default:
		return "", false
	}
}

func voteMA(ma, close float64) models.Recommendation {
	switch {
	case ma < close:
		return models.Buy
	case ma > close:
		return models.Sell
	default:
		return models.Neutral
	}
}

func voteRSI(rsi, rsi1 float64) models.Recommendation {
	switch {
	case rsi < 30 && rsi1 < rsi:
		return models.Buy
	case rsi > 70 && rsi1 > rsi:
		return models.Sell
	default:
		return models.Neutral
	}
}

func voteStoch(k, d, k1, d1 float64) models.Recommendation {
	switch {
	case k < 20 && d < 20 && k > d && k1 < d1:
		return models.Buy
	case k > 80 && d > 80 && k < d && k1 > d1:
		return models.Sell
	default:
		return models.Neutral
	}
}

func voteCCI(cci, cci1 float64) models.Recommendation {
	switch {
	case cci < -100 && cci > cci1:
		return models.Buy
	case cci > 100 && cci < cci1:
		return models.Sell
	default:
		return models.Neutral
	}
}

func voteADX(adx, pdi, mdi, pdi1, mdi1 float64) models.Recommendation {
	switch {
	case adx > 20 && pdi1 < mdi1 && pdi > mdi:
		return models.Buy
	case adx > 20 && pdi1 > mdi1 && pdi < mdi:
		return models.Sell
	default:
		return models.Neutral
	}
}

func voteAO(ao, ao1, ao2 float64) models.Recommendation {
	switch {
	case (ao > 0 && ao1 < 0) || (ao > 0 && ao1 > 0 && ao > ao1 && ao2 > ao1):
		return models.Buy
	case (ao < 0 && ao1 > 0) || (ao < 0 && ao1 < 0 && ao < ao1 && ao2 < ao1):
		return models.Sell
	default:
		return models.Neutral
	}
}

func voteMom(mom, mom1 float64) models.Recommendation {
	switch {
	case mom < mom1:
		return models.Sell
	case mom > mom1:
		return models.Buy
	default:
		return models.Neutral
	}
}

func voteMACD(macd, signal float64) models.Recommendation {
	switch {
	case macd > signal:
		return models.Buy
	case macd < signal:
		return models.Sell
	default:
		return models.Neutral
	}
}

// voteSimple maps a precomputed Rec.* column (-1, 0, 1).
func voteSimple(v float64) models.Recommendation {
	switch v {
	case -1:
		return models.Sell
	case 1:
		return models.Buy
	default:
		return models.Neutral
	}
}

// oscillators tallies the oscillator group. Indicators with missing inputs
// do not vote.
func oscillators(v values) tally {
	var t tally
	if a, ok := v.all("RSI", "RSI[1]"); ok {
		t.add(voteRSI(a[0], a[1]))
	}
	if a, ok := v.all("Stoch.K", "Stoch.D", "Stoch.K[1]", "Stoch.D[1]"); ok {
		t.add(voteStoch(a[0], a[1], a[2], a[3]))
	}
	if a, ok := v.all("CCI20", "CCI20[1]"); ok {
		t.add(voteCCI(a[0], a[1]))
	}
	if a, ok := v.all("ADX", "ADX+DI", "ADX-DI", "ADX+DI[1]", "ADX-DI[1]"); ok {
		t.add(voteADX(a[0], a[1], a[2], a[3], a[4]))
	}
	if a, ok := v.all("AO", "AO[1]", "AO[2]"); ok {
		t.add(voteAO(a[0], a[1], a[2]))
	}
	if a, ok := v.all("Mom", "Mom[1]"); ok {
		t.add(voteMom(a[0], a[1]))
	}
	if a, ok := v.all("MACD.macd", "MACD.signal"); ok {
		t.add(voteMACD(a[0], a[1]))
	}
	for _, rec := range []string{"Rec.Stoch.RSI", "Rec.WR", "Rec.BBPower", "Rec.UO"} {
		if x, ok := v.get(rec); ok {
			t.add(voteSimple(x))
		}
	}
	return t
}

var movingAverageColumns = []string{
	"EMA10", "SMA10", "EMA20", "SMA20", "EMA30", "SMA30",
	"EMA50", "SMA50", "EMA100", "SMA100", "EMA200", "SMA200",
}

// movingAverages tallies the moving average group against the close.
func movingAverages(v values) tally {
	var t tally
	if closePrice, ok := v.get("close"); ok {
		for _, col := range movingAverageColumns {
			if ma, ok := v.get(col); ok {
				t.add(voteMA(ma, closePrice))
			}
		}
	}
	for _, rec := range []string{"Rec.Ichimoku", "Rec.VWMA", "Rec.HullMA9"} {
		if x, ok := v.get(rec); ok {
			t.add(voteSimple(x))
		}
	}
	return t
}
