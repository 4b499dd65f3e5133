// Package catalog holds the static list of tradable symbols offered by the
// dashboard selector.
package catalog

import (
	"sort"
	"strings"

	"FinSignal/internal/domain/models"
)

var assets = []struct{ name, symbol string }{
	{"Algorand", "ALGOUSDT"},
	{"Avalanche", "AVAXUSDT"},
	{"Binance Coin", "BNBUSDT"},
	{"Bitcoin", "BTCUSDT"},
	{"Brett", "BRETTUSDT"},
	{"Cardano", "ADAUSDT"},
	{"Chainlink", "LINKUSDT"},
	{"Cosmos", "ATOMUSDT"},
	{"Dogecoin", "DOGEUSDT"},
	{"Ethereum", "ETHUSDT"},
	{"Ethereum Classic", "ETCUSDT"},
	{"Fetch.ai", "FETUSDT"},
	{"Filecoin", "FILUSDT"},
	{"Hedera", "HBARUSDT"},
	{"Injective Protocol", "INJUSDT"},
	{"Jupiter", "JUPUSDT"},
	{"Kaspa", "KASUSDT"},
	{"Lido DAO", "LDOUSDT"},
	{"Litecoin", "LTCUSDT"},
	{"Mocaverse", "MOCAUSDT"},
	{"NEAR Protocol", "NEARUSDT"},
	{"Polygon", "MATICUSDT"},
	{"Polkadot", "DOTUSDT"},
	{"Qtum", "QTUMUSDT"},
	{"Ripple", "XRPUSDT"},
	{"Shiba Inu", "SHIBUSDT"},
	{"Solana", "SOLUSDT"},
	{"Stellar", "XLMUSDT"},
	{"Sui", "SUIUSDT"},
	{"Tao", "TAOUSDT"},
	{"Tezos", "XTZUSDT"},
	{"Theta Network", "THETAUSDT"},
	{"Tron", "TRXUSDT"},
	{"TrumpCoin", "TRUMPUSDT"},
	{"VeChain", "VETUSDT"},
}

// Catalog is an immutable, label-sorted symbol list.
type Catalog struct {
	options []models.SymbolOption
	index   map[string]struct{}
}

// New builds the default catalog.
func New() *Catalog {
	opts := make([]models.SymbolOption, 0, len(assets))
	idx := make(map[string]struct{}, len(assets))
	for _, a := range assets {
		opts = append(opts, models.SymbolOption{Label: a.name + " (" + a.symbol + ")", Value: a.symbol})
		idx[a.symbol] = struct{}{}
	}
	sort.SliceStable(opts, func(i, j int) bool { return opts[i].Label < opts[j].Label })
	return &Catalog{options: opts, index: idx}
}

// Options returns a copy of the sorted options.
func (c *Catalog) Options() []models.SymbolOption {
	out := make([]models.SymbolOption, len(c.options))
	copy(out, c.options)
	return out
}

// Contains reports whether symbol is listed.
func (c *Catalog) Contains(symbol string) bool {
	_, ok := c.index[strings.ToUpper(symbol)]
	return ok
}
