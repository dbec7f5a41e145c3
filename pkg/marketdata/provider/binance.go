package provider

import (
	"context"
	stderrors "errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	binance "github.com/adshao/go-binance/v2"
	"github.com/adshao/go-binance/v2/common"
	"github.com/rxtech-lab/argo-advisor/internal/types"
	"github.com/rxtech-lab/argo-advisor/pkg/errors"
)

const binanceDailyInterval = "1d"

// Binance error codes that describe a temporary condition on their side.
// Ref: https://developers.binance.com/docs/binance-spot-api-docs/errors
var binanceTransientCodes = map[int64]bool{
	-1000: true, // UNKNOWN
	-1001: true, // DISCONNECTED
	-1003: true, // TOO_MANY_REQUESTS
	-1006: true, // UNEXPECTED_RESP
	-1007: true, // TIMEOUT
	-1008: true, // SERVER_BUSY
}

// BinanceKlinesService is the part of the go-binance klines builder used here.
type BinanceKlinesService interface {
	Symbol(symbol string) BinanceKlinesService
	Interval(interval string) BinanceKlinesService
	Limit(limit int) BinanceKlinesService
	Do(ctx context.Context) ([]*binance.Kline, error)
}

// BinanceAPIClient creates klines requests.
type BinanceAPIClient interface {
	NewKlinesService() BinanceKlinesService
}

// BinanceClient reads daily candles from the Binance spot API.
type BinanceClient struct {
	apiClient     BinanceAPIClient
	quoteCurrency string
}

// NewBinanceClient creates a client for the public Binance API. An empty
// baseURL keeps the library default.
func NewBinanceClient(baseURL string, quoteCurrency string, timeout time.Duration) *BinanceClient {
	client := binance.NewClient("", "")
	if baseURL != "" {
		client.BaseURL = strings.TrimSuffix(baseURL, "/")
	}

	if timeout > 0 {
		client.HTTPClient = &http.Client{Timeout: timeout}
	}

	return NewBinanceClientWithAPI(&binanceAPIAdapter{client: client}, quoteCurrency)
}

// NewBinanceClientWithAPI creates a client over any BinanceAPIClient.
func NewBinanceClientWithAPI(apiClient BinanceAPIClient, quoteCurrency string) *BinanceClient {
	if quoteCurrency == "" {
		quoteCurrency = "USDT"
	}

	return &BinanceClient{
		apiClient:     apiClient,
		quoteCurrency: strings.ToUpper(quoteCurrency),
	}
}

// Name returns the provider type.
func (c *BinanceClient) Name() ProviderType {
	return ProviderBinance
}

// Pair returns e.g. BTCUSDT.
func (c *BinanceClient) Pair(ticker string) string {
	return strings.ToUpper(ticker) + c.quoteCurrency
}

// FetchDailyCandles implements CandleSource.
func (c *BinanceClient) FetchDailyCandles(ctx context.Context, pair string, limit int) ([]types.MarketData, error) {
	klines, err := c.apiClient.NewKlinesService().
		Symbol(pair).
		Interval(binanceDailyInterval).
		Limit(limit).
		Do(ctx)
	if err != nil {
		return nil, classifyBinanceError(err)
	}

	candles := make([]types.MarketData, 0, len(klines))

	for _, k := range klines {
		candle, err := convertKline(pair, k)
		if err != nil {
			return nil, err
		}

		candles = append(candles, candle)
	}

	return candles, nil
}

// convertKline converts a Binance kline to our MarketData.
func convertKline(pair string, k *binance.Kline) (types.MarketData, error) {
	fields := []string{k.Open, k.High, k.Low, k.Close, k.Volume}
	values := make([]float64, len(fields))

	for i, field := range fields {
		value, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return types.MarketData{}, errors.Wrapf(errors.ErrCodeMalformedResponse, err, "invalid kline value %q for %s", field, pair)
		}

		values[i] = value
	}

	return types.MarketData{
		Symbol: pair,
		Time:   time.UnixMilli(k.OpenTime).UTC(),
		Open:   values[0],
		High:   values[1],
		Low:    values[2],
		Close:  values[3],
		Volume: values[4],
	}, nil
}

// classifyBinanceError maps a go-binance error onto our codes. API errors
// with a known transient code, or without any code (gateway pages), are
// retryable; every other API error is a rejection of the request.
func classifyBinanceError(err error) error {
	var apiErr *common.APIError
	if stderrors.As(err, &apiErr) {
		if apiErr.Code == 0 || binanceTransientCodes[apiErr.Code] {
			return errors.Wrap(errors.ErrCodeUpstreamUnavailable, "Exchange network error", err)
		}

		return errors.Wrapf(errors.ErrCodeExchangeRejected, err, "Exchange error: %s", apiErr.Message)
	}

	if isNetworkError(err) {
		return errors.Wrap(errors.ErrCodeUpstreamUnavailable, "Exchange network error", err)
	}

	if stderrors.Is(err, context.Canceled) {
		return err
	}

	return errors.Wrap(errors.ErrCodeMalformedResponse, "invalid exchange response", err)
}

// binanceAPIAdapter adapts *binance.Client to BinanceAPIClient.
type binanceAPIAdapter struct {
	client *binance.Client
}

func (a *binanceAPIAdapter) NewKlinesService() BinanceKlinesService {
	return &binanceKlinesAdapter{service: a.client.NewKlinesService()}
}

type binanceKlinesAdapter struct {
	service *binance.KlinesService
}

func (k *binanceKlinesAdapter) Symbol(symbol string) BinanceKlinesService {
	k.service.Symbol(symbol)

	return k
}

func (k *binanceKlinesAdapter) Interval(interval string) BinanceKlinesService {
	k.service.Interval(interval)

	return k
}

func (k *binanceKlinesAdapter) Limit(limit int) BinanceKlinesService {
	k.service.Limit(limit)

	return k
}

func (k *binanceKlinesAdapter) Do(ctx context.Context) ([]*binance.Kline, error) {
	return k.service.Do(ctx)
}
