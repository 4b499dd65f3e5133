package bitget

import (
	"fmt"
	"strings"
)

// quoteCurrencies are matched longest first so "BTCUSDC" splits on USDC.
var quoteCurrencies = []string{"USDT", "USDC", "BTC", "ETH"}

// Pair is a BASE/QUOTE market.
type Pair struct {
	Base  string
	Quote string
}

// ParsePair splits a compact symbol such as "BTCUSDT" into BTC/USDT.
func ParsePair(symbol string) (Pair, error) {
	s := strings.ToUpper(strings.TrimSpace(symbol))
	for _, q := range quoteCurrencies {
		if strings.HasSuffix(s, q) && len(s) > len(q) {
			return Pair{Base: strings.TrimSuffix(s, q), Quote: q}, nil
		}
	}
	return Pair{}, fmt.Errorf("unknown quote currency in %q", symbol)
}

// String renders the unified BASE/QUOTE notation.
func (p Pair) String() string { return p.Base + "/" + p.Quote }

// MarketID is the exchange's spot market identifier.
func (p Pair) MarketID() string { return p.Base + p.Quote }
