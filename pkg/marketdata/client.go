package marketdata

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/rxtech-lab/argo-advisor/internal/logger"
	"github.com/rxtech-lab/argo-advisor/internal/retry"
	"github.com/rxtech-lab/argo-advisor/internal/types"
	"github.com/rxtech-lab/argo-advisor/pkg/errors"
	"github.com/rxtech-lab/argo-advisor/pkg/marketdata/provider"
)

// ClientConfig holds the configuration for the market data client.
type ClientConfig struct {
	CandleProvider   provider.ProviderType `validate:"required,oneof=binance polygon"`
	PolygonApiKey    string                `validate:"required_if=CandleProvider polygon"`
	BinanceBaseURL   string                `validate:"omitempty,url"`
	CoinGeckoBaseURL string                `validate:"omitempty,url"`
	QuoteCurrency    string                `validate:"required,alphanum"`
	CandleLimit      int                   `validate:"required,min=2,max=1000"`
	RetryAttempts    int                   `validate:"required,min=1,max=10"`
	RetryDelay       time.Duration         `validate:"min=0"`
	Timeout          time.Duration         `validate:"min=0"`
}

// Client fetches candles and snapshots for an asset, retrying transient
// upstream failures.
type Client struct {
	candles     provider.CandleSource
	snapshots   provider.SnapshotSource
	candleLimit int
	policy      retry.Policy
}

// NewClient creates a new market data client with the given configuration.
func NewClient(config ClientConfig) (*Client, error) {
	validate := validator.New()
	if err := validate.Struct(config); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfiguration, "invalid market data configuration", err)
	}

	candles, err := provider.NewCandleSource(config.CandleProvider, provider.CandleConfig{
		BinanceBaseURL: config.BinanceBaseURL,
		QuoteCurrency:  config.QuoteCurrency,
		PolygonApiKey:  config.PolygonApiKey,
		Timeout:        config.Timeout,
	})
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidProvider, "failed to create candle provider", err)
	}

	snapshots := provider.NewCoinGeckoClient(config.CoinGeckoBaseURL, config.Timeout)

	return NewClientWithSources(candles, snapshots, config.CandleLimit, retry.Policy{
		Attempts:  config.RetryAttempts,
		Delay:     config.RetryDelay,
		Retryable: IsTransient,
		OnRetry:   nil,
	}), nil
}

// NewClientWithSources creates a client over the given sources.
func NewClientWithSources(candles provider.CandleSource, snapshots provider.SnapshotSource, candleLimit int, policy retry.Policy) *Client {
	if policy.Retryable == nil {
		policy.Retryable = IsTransient
	}

	return &Client{
		candles:     candles,
		snapshots:   snapshots,
		candleLimit: candleLimit,
		policy:      policy,
	}
}

// IsTransient reports whether err is worth retrying.
func IsTransient(err error) bool {
	return errors.HasCode(err, errors.ErrCodeUpstreamUnavailable)
}

// CandleProvider returns the name of the candle source.
func (c *Client) CandleProvider() provider.ProviderType {
	return c.candles.Name()
}

// FetchPrices returns the daily candles of asset, oldest first.
func (c *Client) FetchPrices(ctx context.Context, asset types.Asset) ([]types.MarketData, error) {
	pair := c.candles.Pair(asset.Ticker)

	candles, err := retry.Do(ctx, c.policyFor(ctx, "candles", pair), func(ctx context.Context) ([]types.MarketData, error) {
		return c.candles.FetchDailyCandles(ctx, pair, c.candleLimit)
	})
	if err != nil {
		return nil, err
	}

	if len(candles) == 0 {
		return nil, errors.Newf(errors.ErrCodeNoPriceData, "No price data for %s", pair)
	}

	return candles, nil
}

// FetchSnapshot returns the current market snapshot of asset.
func (c *Client) FetchSnapshot(ctx context.Context, asset types.Asset) (types.MarketSnapshot, error) {
	snapshot, err := retry.Do(ctx, c.policyFor(ctx, "snapshot", asset.MarketID), func(ctx context.Context) (types.MarketSnapshot, error) {
		return c.snapshots.FetchSnapshot(ctx, asset.MarketID)
	})
	if err != nil {
		if errors.HasCode(err, errors.ErrCodeNoMarketData) {
			return types.MarketSnapshot{}, errors.Wrapf(errors.ErrCodeNoMarketData, err, "No market data for %s", asset.Ticker)
		}

		return types.MarketSnapshot{}, err
	}

	return snapshot, nil
}

// policyFor logs every retry on the request logger.
func (c *Client) policyFor(ctx context.Context, resource string, key string) retry.Policy {
	policy := c.policy
	log := logger.FromContext(ctx)

	policy.OnRetry = func(attempt int, err error, delay time.Duration) {
		log.Warn("Upstream request failed, retrying",
			zap.String("resource", resource),
			zap.String("key", key),
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", policy.Attempts),
			zap.Duration("delay", delay),
			zap.Error(err),
		)
	}

	return policy
}
