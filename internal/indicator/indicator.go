package indicator

import (
	"github.com/rxtech-lab/argo-advisor/internal/types"
	"github.com/rxtech-lab/argo-advisor/pkg/errors"
)

// Indicator is a technical indicator evaluated over a series of daily closes.
type Indicator interface {
	// Name returns the name of the indicator
	Name() types.IndicatorType
	// Calculate returns the indicator value at the latest close
	Calculate(series types.PriceSeries) (float64, error)
	// Config overrides the default parameters
	Config(params ...any) error
}

// positiveInt reads an int parameter that must be greater than zero.
func positiveInt(name string, param any) (int, error) {
	value, ok := param.(int)
	if !ok {
		return 0, errors.Newf(errors.ErrCodeInvalidParameter, "invalid type for %s parameter, expected int", name)
	}

	if value <= 0 {
		return 0, errors.Newf(errors.ErrCodeInvalidParameter, "%s must be a positive integer, got %d", name, value)
	}

	return value, nil
}

func requireData(series types.PriceSeries, indicator types.IndicatorType) error {
	if len(series) == 0 {
		return errors.Newf(errors.ErrCodeInsufficientData, "no data for %s calculation", indicator)
	}

	return nil
}
