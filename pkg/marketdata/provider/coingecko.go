package provider

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/moznion/go-optional"
	"go.uber.org/zap"

	"github.com/rxtech-lab/argo-advisor/internal/logger"
	"github.com/rxtech-lab/argo-advisor/internal/types"
	"github.com/rxtech-lab/argo-advisor/pkg/errors"
)

// DefaultCoinGeckoBaseURL is the public CoinGecko v3 API.
const DefaultCoinGeckoBaseURL = "https://api.coingecko.com/api/v3"

// coinMarket is one entry of /coins/markets. CoinGecko sends null for
// unknown figures.
type coinMarket struct {
	ID                string                   `json:"id"`
	MarketCap         optional.Option[float64] `json:"market_cap"`
	TotalVolume       optional.Option[float64] `json:"total_volume"`
	CirculatingSupply optional.Option[float64] `json:"circulating_supply"`
	TotalSupply       optional.Option[float64] `json:"total_supply"`
}

func (m coinMarket) snapshot() types.MarketSnapshot {
	return types.MarketSnapshot{
		MarketCap:         m.MarketCap.TakeOr(0),
		Volume24h:         m.TotalVolume.TakeOr(0),
		CirculatingSupply: m.CirculatingSupply.TakeOr(0),
		// uncapped supplies report null; 1 keeps the percentage finite
		TotalSupply: m.TotalSupply.TakeOr(1),
	}
}

// CoinGeckoClient reads market snapshots from CoinGecko.
type CoinGeckoClient struct {
	client *resty.Client
}

// NewCoinGeckoClient creates a client for baseURL. An empty baseURL uses
// DefaultCoinGeckoBaseURL.
func NewCoinGeckoClient(baseURL string, timeout time.Duration) *CoinGeckoClient {
	if baseURL == "" {
		baseURL = DefaultCoinGeckoBaseURL
	}

	client := resty.New().
		SetBaseURL(strings.TrimSuffix(baseURL, "/")).
		SetHeader("Accept", "application/json")

	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &CoinGeckoClient{client: client}
}

// Name returns the provider type.
func (c *CoinGeckoClient) Name() ProviderType {
	return ProviderCoinGecko
}

// FetchSnapshot implements SnapshotSource.
func (c *CoinGeckoClient) FetchSnapshot(ctx context.Context, marketID string) (types.MarketSnapshot, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"vs_currency": "usd",
			"ids":         marketID,
		}).
		Get("/coins/markets")
	if err != nil {
		if stderrors.Is(err, context.Canceled) {
			return types.MarketSnapshot{}, err
		}

		return types.MarketSnapshot{}, errors.Wrapf(errors.ErrCodeUpstreamUnavailable, err, "CoinGecko request failed: %s", err.Error())
	}

	if resp.IsError() {
		return types.MarketSnapshot{}, errors.Newf(errors.ErrCodeUpstreamUnavailable, "CoinGecko request failed: %s", resp.Status())
	}

	logger.FromContext(ctx).Debug("Market data response",
		zap.String("market_id", marketID),
		zap.ByteString("body", resp.Body()),
	)

	var markets []coinMarket
	if err := json.Unmarshal(resp.Body(), &markets); err != nil {
		return types.MarketSnapshot{}, errors.Wrap(errors.ErrCodeMalformedResponse, "invalid market data response", err)
	}

	if len(markets) == 0 {
		return types.MarketSnapshot{}, errors.Newf(errors.ErrCodeNoMarketData, "No market data for %s", marketID)
	}

	return markets[0].snapshot(), nil
}
