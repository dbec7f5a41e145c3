package marketdata

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/rxtech-lab/argo-advisor/internal/logger"
	"github.com/rxtech-lab/argo-advisor/internal/retry"
	"github.com/rxtech-lab/argo-advisor/internal/types"
	"github.com/rxtech-lab/argo-advisor/mocks"
	"github.com/rxtech-lab/argo-advisor/pkg/errors"
	"github.com/rxtech-lab/argo-advisor/pkg/marketdata/provider"
)

// ClientTestSuite is a test suite for the Client implementation
type ClientTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockCandles   *mocks.MockCandleSource
	mockSnapshots *mocks.MockSnapshotSource
	client        *Client
	btc           types.Asset
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

// SetupTest runs before each test
func (suite *ClientTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockCandles = mocks.NewMockCandleSource(suite.ctrl)
	suite.mockSnapshots = mocks.NewMockSnapshotSource(suite.ctrl)
	suite.client = NewClientWithSources(suite.mockCandles, suite.mockSnapshots, 30, retry.Policy{
		Attempts:  3,
		Delay:     time.Millisecond,
		Retryable: nil,
		OnRetry:   nil,
	})
	suite.btc = Resolve("BTC")

	suite.mockCandles.EXPECT().Pair("BTC").Return("BTCUSDT").AnyTimes()
}

// TearDownTest runs after each test
func (suite *ClientTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ClientTestSuite) unavailable() error {
	return errors.Wrap(errors.ErrCodeUpstreamUnavailable, "Exchange network error", stderrors.New("connection reset"))
}

func (suite *ClientTestSuite) TestFetchPrices() {
	candles := mocks.Linear("BTCUSDT", 100, 130, 30)
	suite.mockCandles.EXPECT().FetchDailyCandles(gomock.Any(), "BTCUSDT", 30).Return(candles, nil)

	result, err := suite.client.FetchPrices(context.Background(), suite.btc)
	suite.NoError(err)
	suite.Equal(candles, result)
}

func (suite *ClientTestSuite) TestFetchPricesEmpty() {
	suite.mockCandles.EXPECT().FetchDailyCandles(gomock.Any(), "BTCUSDT", 30).Return(nil, nil)

	_, err := suite.client.FetchPrices(context.Background(), suite.btc)
	suite.True(errors.HasCode(err, errors.ErrCodeNoPriceData))
	suite.Equal("No price data for BTCUSDT", errors.Message(err))
}

func (suite *ClientTestSuite) TestFetchPricesRetriesTransientFailures() {
	core, logs := observer.New(zapcore.WarnLevel)
	ctx := logger.IntoContext(context.Background(), &logger.Logger{Logger: zap.New(core)})

	candles := mocks.Linear("BTCUSDT", 100, 130, 30)
	gomock.InOrder(
		suite.mockCandles.EXPECT().FetchDailyCandles(gomock.Any(), "BTCUSDT", 30).Return(nil, suite.unavailable()),
		suite.mockCandles.EXPECT().FetchDailyCandles(gomock.Any(), "BTCUSDT", 30).Return(nil, suite.unavailable()),
		suite.mockCandles.EXPECT().FetchDailyCandles(gomock.Any(), "BTCUSDT", 30).Return(candles, nil),
	)

	result, err := suite.client.FetchPrices(ctx, suite.btc)
	suite.NoError(err)
	suite.Len(result, 30)

	suite.Equal(2, logs.FilterMessage("Upstream request failed, retrying").Len())
	suite.Equal(int64(1), logs.All()[0].ContextMap()["attempt"])
	suite.Equal(int64(2), logs.All()[1].ContextMap()["attempt"])
}

func (suite *ClientTestSuite) TestFetchPricesGivesUpAfterThreeAttempts() {
	suite.mockCandles.EXPECT().FetchDailyCandles(gomock.Any(), "BTCUSDT", 30).Return(nil, suite.unavailable()).Times(3)

	_, err := suite.client.FetchPrices(context.Background(), suite.btc)
	suite.True(errors.HasCode(err, errors.ErrCodeUpstreamUnavailable))
	suite.Equal("Exchange network error", errors.Message(err))
}

func (suite *ClientTestSuite) TestFetchPricesDoesNotRetryRejection() {
	rejected := errors.New(errors.ErrCodeExchangeRejected, "Exchange error: Invalid symbol.")
	suite.mockCandles.EXPECT().FetchDailyCandles(gomock.Any(), "BTCUSDT", 30).Return(nil, rejected).Times(1)

	_, err := suite.client.FetchPrices(context.Background(), suite.btc)
	suite.True(errors.HasCode(err, errors.ErrCodeExchangeRejected))
}

func (suite *ClientTestSuite) TestFetchPricesStopsOnCancel() {
	ctx, cancel := context.WithCancel(context.Background())
	suite.client.policy.Delay = time.Hour

	suite.mockCandles.EXPECT().FetchDailyCandles(gomock.Any(), "BTCUSDT", 30).DoAndReturn(
		func(context.Context, string, int) ([]types.MarketData, error) {
			cancel()

			return nil, suite.unavailable()
		}).Times(1)

	_, err := suite.client.FetchPrices(ctx, suite.btc)
	suite.Error(err)
}

func (suite *ClientTestSuite) TestFetchSnapshot() {
	snapshot := types.MarketSnapshot{MarketCap: 1e12, Volume24h: 6e10, CirculatingSupply: 18.9e6, TotalSupply: 21e6}
	suite.mockSnapshots.EXPECT().FetchSnapshot(gomock.Any(), "bitcoin").Return(snapshot, nil)

	result, err := suite.client.FetchSnapshot(context.Background(), suite.btc)
	suite.NoError(err)
	suite.Equal(snapshot, result)
}

func (suite *ClientTestSuite) TestFetchSnapshotNoMarketData() {
	suite.mockSnapshots.EXPECT().FetchSnapshot(gomock.Any(), "bitcoin").
		Return(types.MarketSnapshot{}, errors.Newf(errors.ErrCodeNoMarketData, "No market data for %s", "bitcoin")).Times(1)

	_, err := suite.client.FetchSnapshot(context.Background(), suite.btc)
	suite.True(errors.HasCode(err, errors.ErrCodeNoMarketData))
	suite.Equal("No market data for BTC", errors.Message(err))
}

func (suite *ClientTestSuite) TestFetchSnapshotRetries() {
	snapshot := types.MarketSnapshot{MarketCap: 1, Volume24h: 1, CirculatingSupply: 1, TotalSupply: 1}
	gomock.InOrder(
		suite.mockSnapshots.EXPECT().FetchSnapshot(gomock.Any(), "bitcoin").
			Return(types.MarketSnapshot{}, errors.New(errors.ErrCodeUpstreamUnavailable, "CoinGecko request failed: 502 Bad Gateway")),
		suite.mockSnapshots.EXPECT().FetchSnapshot(gomock.Any(), "bitcoin").Return(snapshot, nil),
	)

	result, err := suite.client.FetchSnapshot(context.Background(), suite.btc)
	suite.NoError(err)
	suite.Equal(snapshot, result)
}

func (suite *ClientTestSuite) TestCandleProvider() {
	suite.mockCandles.EXPECT().Name().Return(provider.ProviderBinance)
	suite.Equal(provider.ProviderBinance, suite.client.CandleProvider())
}

func (suite *ClientTestSuite) TestIsTransient() {
	suite.True(IsTransient(suite.unavailable()))
	suite.False(IsTransient(errors.New(errors.ErrCodeNoPriceData, "none")))
	suite.False(IsTransient(stderrors.New("plain")))
}

func (suite *ClientTestSuite) TestNewClient() {
	validConfig := ClientConfig{
		CandleProvider:   provider.ProviderBinance,
		PolygonApiKey:    "",
		BinanceBaseURL:   "https://api.binance.com",
		CoinGeckoBaseURL: "https://api.coingecko.com/api/v3",
		QuoteCurrency:    "USDT",
		CandleLimit:      30,
		RetryAttempts:    3,
		RetryDelay:       2 * time.Second,
		Timeout:          10 * time.Second,
	}

	tests := []struct {
		name        string
		mutate      func(c *ClientConfig)
		expectError bool
	}{
		{name: "valid binance", mutate: func(*ClientConfig) {}, expectError: false},
		{name: "polygon with key", mutate: func(c *ClientConfig) {
			c.CandleProvider = provider.ProviderPolygon
			c.PolygonApiKey = "key"
		}, expectError: false},
		{name: "polygon without key", mutate: func(c *ClientConfig) { c.CandleProvider = provider.ProviderPolygon }, expectError: true},
		{name: "coingecko is not a candle provider", mutate: func(c *ClientConfig) { c.CandleProvider = provider.ProviderCoinGecko }, expectError: true},
		{name: "limit too small", mutate: func(c *ClientConfig) { c.CandleLimit = 1 }, expectError: true},
		{name: "no attempts", mutate: func(c *ClientConfig) { c.RetryAttempts = 0 }, expectError: true},
		{name: "bad url", mutate: func(c *ClientConfig) { c.CoinGeckoBaseURL = "not a url" }, expectError: true},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			config := validConfig
			tc.mutate(&config)

			client, err := NewClient(config)
			if tc.expectError {
				suite.Error(err)
				suite.True(errors.HasCode(err, errors.ErrCodeInvalidConfiguration))
				suite.Nil(client)

				return
			}

			suite.NoError(err)
			suite.NotNil(client)
		})
	}
}
