package marketdata

import (
	"maps"
	"strings"

	"github.com/rxtech-lab/argo-advisor/internal/types"
)

// knownAssets maps upper-case tickers to CoinGecko identifiers.
var knownAssets = map[string]string{
	"BTC":   "bitcoin",
	"XBT":   "bitcoin",
	"ETH":   "ethereum",
	"ADA":   "cardano",
	"SOL":   "solana",
	"DOGE":  "dogecoin",
	"PENGU": "pudgy-penguins",
	"DOT":   "polkadot",
	"XRP":   "ripple",
	"MANYU": "manyu",
}

// Resolve upper-cases ticker and looks up its market-data identifier.
// Unknown tickers use the lower-cased ticker as identifier.
func Resolve(ticker string) types.Asset {
	normalized := strings.ToUpper(strings.TrimSpace(ticker))

	marketID, ok := knownAssets[normalized]
	if !ok {
		marketID = strings.ToLower(normalized)
	}

	return types.Asset{
		Ticker:   normalized,
		MarketID: marketID,
	}
}

// KnownAssets returns a copy of the ticker table.
func KnownAssets() map[string]string {
	return maps.Clone(knownAssets)
}
