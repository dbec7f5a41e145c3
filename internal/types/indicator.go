package types

type IndicatorType string

const (
	IndicatorTypeRSI            IndicatorType = "rsi"
	IndicatorTypeMA             IndicatorType = "ma"
	IndicatorTypeEMA            IndicatorType = "ema"
	IndicatorTypeMACD           IndicatorType = "macd"
	IndicatorTypeBollingerBands IndicatorType = "bollinger_bands"
	IndicatorTypeVolatility     IndicatorType = "volatility"
)

// IndicatorSet holds the values derived from one PriceSeries.
type IndicatorSet struct {
	// LatestPrice is the most recent close.
	LatestPrice float64
	// AveragePrice is the mean of every close in the series.
	AveragePrice float64
	// PriceChangePercent is the change from the first to the latest close.
	PriceChangePercent float64
	// VolatilityPercent is the annualized standard deviation of daily returns.
	VolatilityPercent float64
	// RSI is the 14 period relative strength index.
	RSI float64
	// SMA30 is the 30 period simple moving average.
	SMA30 float64
	// MACDHistogram is the MACD line minus its signal line, NaN while the
	// history is too short to define the signal line.
	MACDHistogram float64
	// BollingerPosition is where the latest close sits between the lower (0)
	// and upper (1) band. It may fall outside [0, 1].
	BollingerPosition float64
}
