package indicator

import (
	"math"

	"github.com/rxtech-lab/argo-advisor/internal/types"
	"github.com/rxtech-lab/argo-advisor/pkg/errors"
)

// EMA indicator implements Exponential Moving Average calculation.
type EMA struct {
	period int
}

// NewEMA creates a new EMA indicator with default configuration.
func NewEMA() Indicator {
	return &EMA{
		period: 20, // Default period
	}
}

// Name returns the name of the indicator.
func (e *EMA) Name() types.IndicatorType {
	return types.IndicatorTypeEMA
}

// Config configures the EMA indicator. Expected parameters: period (int).
func (e *EMA) Config(params ...any) error {
	if len(params) != 1 {
		return errors.New(errors.ErrCodeInvalidParameter, "Config expects 1 parameter: period (int)")
	}

	period, err := positiveInt("period", params[0])
	if err != nil {
		return err
	}

	e.period = period

	return nil
}

// Calculate returns the EMA at the latest close. It is NaN until the series
// holds period closes.
func (e *EMA) Calculate(series types.PriceSeries) (float64, error) {
	if err := requireData(series, e.Name()); err != nil {
		return 0, err
	}

	values := exponentialMovingAverage(series, e.period)

	return values[len(values)-1], nil
}

// exponentialMovingAverage returns the EMA at every point of data, matching
// pandas ewm(span=period, min_periods=period, adjust=False): alpha is
// 2/(period+1), the recursion starts at the first defined value and points
// backed by fewer than period observations are NaN.
func exponentialMovingAverage(data []float64, period int) []float64 {
	return warmUp(smooth(data, 2.0/float64(period+1)), period)
}

// smooth applies y[i] = alpha*x[i] + (1-alpha)*y[i-1], seeded with the first
// value that is not NaN. Leading NaNs stay NaN.
func smooth(data []float64, alpha float64) []float64 {
	if len(data) == 0 {
		return nil
	}

	out := make([]float64, len(data))
	start := 0

	for start < len(data) && math.IsNaN(data[start]) {
		out[start] = math.NaN()
		start++
	}

	if start == len(data) {
		return out
	}

	out[start] = data[start]

	for i := start + 1; i < len(data); i++ {
		out[i] = alpha*data[i] + (1-alpha)*out[i-1]
	}

	return out
}

// warmUp blanks values with NaN until period defined observations are seen.
func warmUp(values []float64, period int) []float64 {
	seen := 0

	for i, v := range values {
		if math.IsNaN(v) {
			continue
		}

		seen++
		if seen < period {
			values[i] = math.NaN()
		}
	}

	return values
}
