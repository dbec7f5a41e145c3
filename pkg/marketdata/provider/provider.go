package provider

import (
	"context"
	"fmt"
	"time"

	"github.com/rxtech-lab/argo-advisor/internal/types"
)

// ProviderType defines the type of market data provider.
type ProviderType string

const (
	ProviderBinance   ProviderType = "binance"
	ProviderPolygon   ProviderType = "polygon"
	ProviderCoinGecko ProviderType = "coingecko"
)

// CandleSource fetches daily OHLCV candles from an exchange.
type CandleSource interface {
	// Name returns the provider type
	Name() ProviderType
	// Pair returns the trading pair the provider uses for an upper-case ticker
	Pair(ticker string) string
	// FetchDailyCandles returns up to limit daily candles for pair, oldest first.
	// An unknown pair is reported as ErrCodeExchangeRejected, a transport
	// failure as ErrCodeUpstreamUnavailable.
	FetchDailyCandles(ctx context.Context, pair string, limit int) ([]types.MarketData, error)
}

// SnapshotSource fetches the current market snapshot of an asset.
type SnapshotSource interface {
	// Name returns the provider type
	Name() ProviderType
	// FetchSnapshot returns the snapshot for a market-data identifier such as
	// "bitcoin". An empty result is reported as ErrCodeNoMarketData.
	FetchSnapshot(ctx context.Context, marketID string) (types.MarketSnapshot, error)
}

// CandleConfig configures NewCandleSource.
type CandleConfig struct {
	BinanceBaseURL string
	QuoteCurrency  string
	PolygonApiKey  string
	Timeout        time.Duration
}

// NewCandleSource creates a candle provider based on the provider type.
func NewCandleSource(providerType ProviderType, config CandleConfig) (CandleSource, error) {
	switch providerType {
	case ProviderBinance:
		return NewBinanceClient(config.BinanceBaseURL, config.QuoteCurrency, config.Timeout), nil
	case ProviderPolygon:
		client, err := NewPolygonClient(config.PolygonApiKey)
		if err != nil {
			return nil, err
		}

		return client, nil
	default:
		return nil, fmt.Errorf("unsupported candle provider: %s", providerType)
	}
}
