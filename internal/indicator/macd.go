package indicator

import (
	"github.com/rxtech-lab/argo-advisor/internal/types"
	"github.com/rxtech-lab/argo-advisor/pkg/errors"
)

// MACD represents the Moving Average Convergence Divergence indicator.
// Calculate reports the histogram: the MACD line minus its signal line.
type MACD struct {
	fastPeriod   int
	slowPeriod   int
	signalPeriod int
}

// NewMACD creates a new MACD indicator with default configuration.
func NewMACD() Indicator {
	return &MACD{
		fastPeriod:   12, // Default fast period
		slowPeriod:   26, // Default slow period
		signalPeriod: 9,  // Default signal period
	}
}

// Name returns the name of the indicator.
func (m *MACD) Name() types.IndicatorType {
	return types.IndicatorTypeMACD
}

// Config configures the MACD indicator. Expected parameters: fastPeriod (int), slowPeriod (int), signalPeriod (int).
func (m *MACD) Config(params ...any) error {
	if len(params) != 3 {
		return errors.New(errors.ErrCodeInvalidParameter, "Config expects 3 parameters: fastPeriod (int), slowPeriod (int), signalPeriod (int)")
	}

	fastPeriod, err := positiveInt("fastPeriod", params[0])
	if err != nil {
		return err
	}

	slowPeriod, err := positiveInt("slowPeriod", params[1])
	if err != nil {
		return err
	}

	signalPeriod, err := positiveInt("signalPeriod", params[2])
	if err != nil {
		return err
	}

	if fastPeriod >= slowPeriod {
		return errors.Newf(errors.ErrCodeInvalidParameter, "fastPeriod (%d) must be smaller than slowPeriod (%d)", fastPeriod, slowPeriod)
	}

	m.fastPeriod = fastPeriod
	m.slowPeriod = slowPeriod
	m.signalPeriod = signalPeriod

	return nil
}

// Calculate returns the MACD histogram at the latest close.
//
// Each average stays undefined until its period is filled and the signal line
// starts at the first defined MACD value, so the histogram needs
// slowPeriod+signalPeriod-1 closes. A shorter series yields NaN.
func (m *MACD) Calculate(series types.PriceSeries) (float64, error) {
	if err := requireData(series, m.Name()); err != nil {
		return 0, err
	}

	fast := exponentialMovingAverage(series, m.fastPeriod)
	slow := exponentialMovingAverage(series, m.slowPeriod)

	line := make([]float64, len(series))
	for i := range series {
		line[i] = fast[i] - slow[i]
	}

	signal := exponentialMovingAverage(line, m.signalPeriod)
	last := len(line) - 1

	return line[last] - signal[last], nil
}
