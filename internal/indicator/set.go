package indicator

import (
	"github.com/rxtech-lab/argo-advisor/internal/types"
	"github.com/rxtech-lab/argo-advisor/pkg/errors"
)

// MinDataPoints is the shortest series Compute accepts.
const MinDataPoints = 2

// Compute derives the full IndicatorSet of a series using the default
// parameters: RSI(14), SMA(30), MACD(12, 26, 9), Bollinger(20, 2) and
// volatility annualized over 365 days.
func Compute(series types.PriceSeries) (types.IndicatorSet, error) {
	if len(series) < MinDataPoints {
		return types.IndicatorSet{}, errors.Newf(errors.ErrCodeInsufficientData,
			"insufficient price data: required %d closes, got %d", MinDataPoints, len(series))
	}

	values := make(map[types.IndicatorType]float64, 5)

	for _, ind := range []Indicator{NewRSI(), NewMA(), NewMACD(), NewBollingerBands(), NewVolatility()} {
		value, err := ind.Calculate(series)
		if err != nil {
			return types.IndicatorSet{}, errors.Wrapf(errors.ErrCodeInsufficientData, err, "failed to calculate %s", ind.Name())
		}

		values[ind.Name()] = value
	}

	return types.IndicatorSet{
		LatestPrice:        series.Latest(),
		AveragePrice:       mean(series),
		PriceChangePercent: PercentChange(series),
		VolatilityPercent:  values[types.IndicatorTypeVolatility],
		RSI:                values[types.IndicatorTypeRSI],
		SMA30:              values[types.IndicatorTypeMA],
		MACDHistogram:      values[types.IndicatorTypeMACD],
		BollingerPosition:  values[types.IndicatorTypeBollingerBands],
	}, nil
}

// PercentChange is the change from the first to the latest close in percent.
// It is 0 when the first close is not positive.
func PercentChange(series types.PriceSeries) float64 {
	first := series.First()
	if first <= 0 {
		return 0
	}

	return (series.Latest() - first) / first * 100
}
