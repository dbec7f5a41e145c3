package marketdata

import (
	"fmt"
	"sort"

	"github.com/rxtech-lab/argo-advisor/pkg/marketdata/provider"
)

// ProviderRole says what a provider is used for.
type ProviderRole string

const (
	RoleCandles  ProviderRole = "candles"
	RoleSnapshot ProviderRole = "snapshot"
)

// ProviderInfo contains metadata about a market data provider.
type ProviderInfo struct {
	Name         string       `json:"name"`
	DisplayName  string       `json:"displayName"`
	Description  string       `json:"description"`
	Role         ProviderRole `json:"role"`
	RequiresAuth bool         `json:"requiresAuth"`
}

// providerRegistry holds metadata about all supported providers.
var providerRegistry = map[provider.ProviderType]ProviderInfo{
	provider.ProviderBinance: {
		Name:         string(provider.ProviderBinance),
		DisplayName:  "Binance",
		Description:  "Cryptocurrency exchange serving daily klines for USDT pairs",
		Role:         RoleCandles,
		RequiresAuth: false,
	},
	provider.ProviderPolygon: {
		Name:         string(provider.ProviderPolygon),
		DisplayName:  "Polygon.io",
		Description:  "Market data vendor serving daily crypto aggregates for X:<TICKER>USD pairs",
		Role:         RoleCandles,
		RequiresAuth: true,
	},
	provider.ProviderCoinGecko: {
		Name:         string(provider.ProviderCoinGecko),
		DisplayName:  "CoinGecko",
		Description:  "Market cap, 24h volume and supply figures",
		Role:         RoleSnapshot,
		RequiresAuth: false,
	},
}

// GetSupportedProviders returns the names of all providers, sorted.
func GetSupportedProviders() []string {
	providers := make([]string, 0, len(providerRegistry))
	for providerType := range providerRegistry {
		providers = append(providers, string(providerType))
	}

	sort.Strings(providers)

	return providers
}

// GetCandleProviders returns the names of providers usable as candle source, sorted.
func GetCandleProviders() []string {
	providers := make([]string, 0, len(providerRegistry))

	for providerType, info := range providerRegistry {
		if info.Role == RoleCandles {
			providers = append(providers, string(providerType))
		}
	}

	sort.Strings(providers)

	return providers
}

// GetProviderInfo returns metadata for a specific provider.
func GetProviderInfo(providerName string) (ProviderInfo, error) {
	info, exists := providerRegistry[provider.ProviderType(providerName)]
	if !exists {
		return ProviderInfo{}, fmt.Errorf("unsupported provider: %s", providerName)
	}

	return info, nil
}
