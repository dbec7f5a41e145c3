package indicator

import (
	"math"

	"github.com/rxtech-lab/argo-advisor/internal/types"
	"github.com/rxtech-lab/argo-advisor/pkg/errors"
)

// BollingerBands implements the Indicator interface for Bollinger Bands.
// Calculate reports the position of the latest close between the bands.
type BollingerBands struct {
	period int     // Number of periods for moving average
	stdDev float64 // Number of standard deviations
}

// NewBollingerBands creates a new Bollinger Bands indicator with default configuration.
func NewBollingerBands() Indicator {
	return &BollingerBands{
		period: 20,  // Default period
		stdDev: 2.0, // Default standard deviation
	}
}

// Name returns the name of the indicator.
func (bb *BollingerBands) Name() types.IndicatorType {
	return types.IndicatorTypeBollingerBands
}

// Config configures the Bollinger Bands indicator. Expected parameters: period (int), stdDev (float64).
func (bb *BollingerBands) Config(params ...any) error {
	if len(params) != 2 {
		return errors.New(errors.ErrCodeInvalidParameter, "Config expects 2 parameters: period (int), stdDev (float64)")
	}

	period, err := positiveInt("period", params[0])
	if err != nil {
		return err
	}

	stdDev, ok := params[1].(float64)
	if !ok {
		return errors.New(errors.ErrCodeInvalidParameter, "invalid type for stdDev parameter, expected float64")
	}

	if stdDev <= 0 {
		return errors.Newf(errors.ErrCodeInvalidParameter, "stdDev must be a positive number, got %f", stdDev)
	}

	bb.period = period
	bb.stdDev = stdDev

	return nil
}

// Bands returns the upper, middle and lower band over the last period closes.
// The deviation is the population standard deviation.
func (bb *BollingerBands) Bands(series types.PriceSeries) (upper, middle, lower float64, err error) {
	if err := requireData(series, bb.Name()); err != nil {
		return 0, 0, 0, err
	}

	window := series.Tail(bb.period)
	middle = mean(window)
	sd := populationStdDev(window, middle)

	return middle + bb.stdDev*sd, middle, middle - bb.stdDev*sd, nil
}

// Calculate returns (latest - lower) / (upper - lower). The result is 0 when
// the bands coincide and is not clamped, so closes outside the bands fall
// below 0 or above 1.
func (bb *BollingerBands) Calculate(series types.PriceSeries) (float64, error) {
	upper, _, lower, err := bb.Bands(series)
	if err != nil {
		return 0, err
	}

	if upper == lower {
		return 0, nil
	}

	return (series.Latest() - lower) / (upper - lower), nil
}

func populationStdDev(values []float64, avg float64) float64 {
	if len(values) == 0 {
		return 0
	}

	sum := 0.0
	for _, v := range values {
		sum += (v - avg) * (v - avg)
	}

	return math.Sqrt(sum / float64(len(values)))
}
