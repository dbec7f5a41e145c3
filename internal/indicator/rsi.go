package indicator

import (
	"github.com/rxtech-lab/argo-advisor/internal/types"
	"github.com/rxtech-lab/argo-advisor/pkg/errors"
)

// RSI represents the Relative Strength Index indicator.
type RSI struct {
	period int
}

// NewRSI creates a new RSI indicator with default configuration.
func NewRSI() Indicator {
	return &RSI{
		period: 14, // Default period
	}
}

// Name returns the name of the indicator.
func (r *RSI) Name() types.IndicatorType {
	return types.IndicatorTypeRSI
}

// Config configures the RSI indicator. Expected parameters: period (int).
func (r *RSI) Config(params ...any) error {
	if len(params) != 1 {
		return errors.New(errors.ErrCodeInvalidParameter, "Config expects 1 parameter: period (int)")
	}

	period, err := positiveInt("period", params[0])
	if err != nil {
		return err
	}

	r.period = period

	return nil
}

// Calculate returns the RSI at the latest close.
//
// Gains and losses are smoothed with Wilder's method expressed as an
// exponential average (alpha = 1/period) seeded at the first close, whose
// change counts as zero. An average loss of zero yields 100.
func (r *RSI) Calculate(series types.PriceSeries) (float64, error) {
	if err := requireData(series, r.Name()); err != nil {
		return 0, err
	}

	gains := make([]float64, len(series))
	losses := make([]float64, len(series))

	for i := 1; i < len(series); i++ {
		change := series[i] - series[i-1]
		if change > 0 {
			gains[i] = change
		} else {
			losses[i] = -change
		}
	}

	alpha := 1.0 / float64(r.period)
	avgGain := smooth(gains, alpha)
	avgLoss := smooth(losses, alpha)

	lastGain := avgGain[len(avgGain)-1]
	lastLoss := avgLoss[len(avgLoss)-1]

	if lastLoss == 0 {
		return 100, nil
	}

	rs := lastGain / lastLoss

	return 100 - (100 / (1 + rs)), nil
}
