package indicator

import (
	"math"

	"github.com/rxtech-lab/argo-advisor/internal/types"
	"github.com/rxtech-lab/argo-advisor/pkg/errors"
)

// Volatility is the realized volatility of daily simple returns, annualized
// and expressed as a percentage.
type Volatility struct {
	periodsPerYear int
}

// NewVolatility creates a volatility indicator annualized over 365 days.
func NewVolatility() Indicator {
	return &Volatility{
		periodsPerYear: 365,
	}
}

// Name returns the name of the indicator.
func (v *Volatility) Name() types.IndicatorType {
	return types.IndicatorTypeVolatility
}

// Config configures the annualization. Expected parameters: periodsPerYear (int).
func (v *Volatility) Config(params ...any) error {
	if len(params) != 1 {
		return errors.New(errors.ErrCodeInvalidParameter, "Config expects 1 parameter: periodsPerYear (int)")
	}

	periods, err := positiveInt("periodsPerYear", params[0])
	if err != nil {
		return err
	}

	v.periodsPerYear = periods

	return nil
}

// Calculate returns stddev(returns) * sqrt(periodsPerYear) * 100 using the
// sample standard deviation. Fewer than two returns yield 0.
func (v *Volatility) Calculate(series types.PriceSeries) (float64, error) {
	if err := requireData(series, v.Name()); err != nil {
		return 0, err
	}

	returns := make([]float64, 0, len(series))
	for i := 1; i < len(series); i++ {
		if series[i-1] == 0 {
			continue
		}

		returns = append(returns, series[i]/series[i-1]-1)
	}

	if len(returns) < 2 {
		return 0, nil
	}

	avg := mean(returns)
	sum := 0.0

	for _, r := range returns {
		sum += (r - avg) * (r - avg)
	}

	sd := math.Sqrt(sum / float64(len(returns)-1))

	return sd * math.Sqrt(float64(v.periodsPerYear)) * 100, nil
}
