package provider

import (
	"context"
	stderrors "errors"
	"strings"
	"time"

	polygon "github.com/polygon-io/client-go/rest"
	"github.com/polygon-io/client-go/rest/models"

	"github.com/rxtech-lab/argo-advisor/internal/types"
	"github.com/rxtech-lab/argo-advisor/pkg/errors"
)

// aggsIterator is the subset of the polygon aggregates iterator used here.
type aggsIterator interface {
	Next() bool
	Item() models.Agg
	Err() error
}

// aggsLister lists aggregates for a ticker.
type aggsLister func(ctx context.Context, params *models.ListAggsParams) aggsIterator

// PolygonClient reads daily crypto aggregates from Polygon.io.
type PolygonClient struct {
	listAggs aggsLister
	now      func() time.Time
}

// NewPolygonClient creates a Polygon client. apiKey is required.
func NewPolygonClient(apiKey string) (*PolygonClient, error) {
	if apiKey == "" {
		return nil, errors.New(errors.ErrCodeInvalidConfiguration, "polygon api key is required")
	}

	client := polygon.New(apiKey)

	return newPolygonClientWithLister(func(ctx context.Context, params *models.ListAggsParams) aggsIterator {
		return client.ListAggs(ctx, params)
	}, time.Now), nil
}

func newPolygonClientWithLister(lister aggsLister, now func() time.Time) *PolygonClient {
	return &PolygonClient{
		listAggs: lister,
		now:      now,
	}
}

// Name returns the provider type.
func (c *PolygonClient) Name() ProviderType {
	return ProviderPolygon
}

// Pair returns e.g. X:BTCUSD.
func (c *PolygonClient) Pair(ticker string) string {
	return "X:" + strings.ToUpper(ticker) + "USD"
}

// FetchDailyCandles implements CandleSource. Polygon works on date ranges, so
// the window is sized to limit days and trimmed to the newest limit bars.
func (c *PolygonClient) FetchDailyCandles(ctx context.Context, pair string, limit int) ([]types.MarketData, error) {
	endDate := c.now().UTC()
	startDate := endDate.AddDate(0, 0, -limit)

	//nolint:exhaustruct // third-party struct with many optional fields
	params := models.ListAggsParams{
		Ticker:     pair,
		Multiplier: 1,
		Timespan:   models.Day,
		From:       models.Millis(startDate),
		To:         models.Millis(endDate),
	}.WithLimit(limit)

	iter := c.listAggs(ctx, params)

	candles := make([]types.MarketData, 0, limit)

	for iter.Next() {
		agg := iter.Item()
		candles = append(candles, types.MarketData{
			Symbol: pair,
			Time:   time.Time(agg.Timestamp).UTC(),
			Open:   agg.Open,
			High:   agg.High,
			Low:    agg.Low,
			Close:  agg.Close,
			Volume: agg.Volume,
		})
	}

	if err := iter.Err(); err != nil {
		return nil, classifyPolygonError(err)
	}

	if len(candles) > limit {
		candles = candles[len(candles)-limit:]
	}

	return candles, nil
}

func classifyPolygonError(err error) error {
	if stderrors.Is(err, context.Canceled) {
		return err
	}

	if isNetworkError(err) {
		return errors.Wrap(errors.ErrCodeUpstreamUnavailable, "Exchange network error", err)
	}

	return errors.Wrapf(errors.ErrCodeExchangeRejected, err, "Exchange error: %s", err.Error())
}
