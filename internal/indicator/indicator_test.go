package indicator

import (
	"math"
	"testing"

	"github.com/rxtech-lab/argo-advisor/internal/types"
	"github.com/rxtech-lab/argo-advisor/pkg/errors"
	"github.com/stretchr/testify/suite"
)

type IndicatorTestSuite struct {
	suite.Suite
}

func TestIndicatorSuite(t *testing.T) {
	suite.Run(t, new(IndicatorTestSuite))
}

// linearSeries returns n closes rising evenly from start to end.
func linearSeries(n int, start, end float64) types.PriceSeries {
	series := make(types.PriceSeries, n)
	for i := range series {
		series[i] = start + (end-start)*float64(i)/float64(n-1)
	}

	return series
}

func (suite *IndicatorTestSuite) TestNames() {
	suite.Equal(types.IndicatorTypeRSI, NewRSI().Name())
	suite.Equal(types.IndicatorTypeMA, NewMA().Name())
	suite.Equal(types.IndicatorTypeEMA, NewEMA().Name())
	suite.Equal(types.IndicatorTypeMACD, NewMACD().Name())
	suite.Equal(types.IndicatorTypeBollingerBands, NewBollingerBands().Name())
	suite.Equal(types.IndicatorTypeVolatility, NewVolatility().Name())
}

func (suite *IndicatorTestSuite) TestEmptySeries() {
	for _, ind := range []Indicator{NewRSI(), NewMA(), NewEMA(), NewMACD(), NewBollingerBands(), NewVolatility()} {
		_, err := ind.Calculate(nil)
		suite.Error(err, string(ind.Name()))
		suite.True(errors.HasCode(err, errors.ErrCodeInsufficientData))
	}
}

func (suite *IndicatorTestSuite) TestRSIUptrend() {
	value, err := NewRSI().Calculate(linearSeries(30, 100, 130))
	suite.NoError(err)
	suite.Equal(100.0, value)
}

func (suite *IndicatorTestSuite) TestRSIDowntrend() {
	value, err := NewRSI().Calculate(linearSeries(30, 130, 100))
	suite.NoError(err)
	suite.InDelta(0.0, value, 1e-9)
}

func (suite *IndicatorTestSuite) TestRSISmoothing() {
	// gains [0 1 0], losses [0 0 1] with alpha 1/14:
	// avgGain = 13/196, avgLoss = 14/196, RSI = 100 - 100*14/27
	value, err := NewRSI().Calculate(types.PriceSeries{1, 2, 1})
	suite.NoError(err)
	suite.InDelta(100-100*14.0/27.0, value, 1e-9)
}

func (suite *IndicatorTestSuite) TestRSIConfig() {
	rsi := NewRSI()
	suite.NoError(rsi.Config(21))
	suite.Equal(21, rsi.(*RSI).period)

	suite.Error(rsi.Config())
	suite.Error(rsi.Config("14"))
	suite.Error(rsi.Config(0))
}

func (suite *IndicatorTestSuite) TestMA() {
	ma := NewMA()
	suite.NoError(ma.Config(3))

	value, err := ma.Calculate(types.PriceSeries{1, 2, 3, 4, 5})
	suite.NoError(err)
	suite.InDelta(4.0, value, 1e-12)

	// shorter than the period averages everything
	value, err = NewMA().Calculate(types.PriceSeries{2, 4})
	suite.NoError(err)
	suite.InDelta(3.0, value, 1e-12)
}

func (suite *IndicatorTestSuite) TestEMA() {
	ema := NewEMA()
	suite.NoError(ema.Config(3))

	// alpha = 0.5: 1, 1.5, 2.25
	value, err := ema.Calculate(types.PriceSeries{1, 2, 3})
	suite.NoError(err)
	suite.InDelta(2.25, value, 1e-12)

	value, err = ema.Calculate(types.PriceSeries{1, 2})
	suite.NoError(err)
	suite.True(math.IsNaN(value))

	suite.Error(ema.Config(-1))
}

func (suite *IndicatorTestSuite) TestMACDFlatSeries() {
	value, err := NewMACD().Calculate(linearSeries(40, 100, 100))
	suite.NoError(err)
	suite.InDelta(0.0, value, 1e-12)
}

func (suite *IndicatorTestSuite) TestMACDTrend() {
	up, err := NewMACD().Calculate(linearSeries(40, 100, 140))
	suite.NoError(err)
	suite.Greater(up, 0.0)

	down, err := NewMACD().Calculate(linearSeries(40, 140, 100))
	suite.NoError(err)
	suite.Less(down, 0.0)
}

func (suite *IndicatorTestSuite) TestMACDUndefinedUntilSignalLineFills() {
	// 26 closes define the MACD line and 8 more fill the signal line
	for _, n := range []int{2, 26, 30, 33} {
		value, err := NewMACD().Calculate(linearSeries(n, 100, 130))
		suite.NoError(err)
		suite.True(math.IsNaN(value), "%d closes", n)
	}

	value, err := NewMACD().Calculate(linearSeries(34, 100, 133))
	suite.NoError(err)
	suite.False(math.IsNaN(value))
	suite.Greater(value, 0.0)
}

func (suite *IndicatorTestSuite) TestMACDWarmUp() {
	macd := NewMACD()
	suite.NoError(macd.Config(2, 3, 2))

	// fast: NaN 5/3 23/9 95/27, slow: NaN NaN 9/4 25/8
	// line: NaN NaN 11/36 85/216, signal seeded at 11/36: NaN NaN NaN 59/162
	value, err := macd.Calculate(types.PriceSeries{1, 2, 3, 4})
	suite.NoError(err)
	suite.InDelta(19.0/648.0, value, 1e-12)

	value, err = macd.Calculate(types.PriceSeries{1, 2, 3})
	suite.NoError(err)
	suite.True(math.IsNaN(value))
}

func (suite *IndicatorTestSuite) TestMACDConfig() {
	macd := NewMACD()
	suite.NoError(macd.Config(5, 10, 3))
	suite.Error(macd.Config(10, 5, 3))
	suite.Error(macd.Config(5, 10))
	suite.Error(macd.Config(5, "10", 3))
}

func (suite *IndicatorTestSuite) TestBollingerBands() {
	bb := NewBollingerBands().(*BollingerBands)
	series := types.PriceSeries{1, 2, 3, 4, 5}

	upper, middle, lower, err := bb.Bands(series)
	suite.NoError(err)
	suite.InDelta(3.0, middle, 1e-12)
	suite.InDelta(3+2*math.Sqrt2, upper, 1e-12)
	suite.InDelta(3-2*math.Sqrt2, lower, 1e-12)

	position, err := bb.Calculate(series)
	suite.NoError(err)
	suite.InDelta((1+math.Sqrt2)/(2*math.Sqrt2), position, 1e-12)
}

func (suite *IndicatorTestSuite) TestBollingerUsesLastPeriodCloses() {
	bb := NewBollingerBands()
	suite.NoError(bb.Config(2, 1.0))

	// window [10 20]: mean 15, sd 5, bands 10..20, latest at the upper band
	position, err := bb.Calculate(types.PriceSeries{1000, 10, 20})
	suite.NoError(err)
	suite.InDelta(1.0, position, 1e-12)
}

func (suite *IndicatorTestSuite) TestBollingerFlatSeries() {
	position, err := NewBollingerBands().Calculate(linearSeries(25, 50, 50))
	suite.NoError(err)
	suite.Equal(0.0, position)
}

func (suite *IndicatorTestSuite) TestBollingerConfig() {
	bb := NewBollingerBands()
	suite.Error(bb.Config(20))
	suite.Error(bb.Config(20, 2))
	suite.Error(bb.Config(20, -2.0))
	suite.NoError(bb.Config(10, 1.5))
}

func (suite *IndicatorTestSuite) TestVolatility() {
	value, err := NewVolatility().Calculate(types.PriceSeries{100, 110, 99})
	suite.NoError(err)
	suite.InDelta(math.Sqrt(0.02)*math.Sqrt(365)*100, value, 1e-9)
}

func (suite *IndicatorTestSuite) TestVolatilityNeedsTwoReturns() {
	value, err := NewVolatility().Calculate(types.PriceSeries{100, 110})
	suite.NoError(err)
	suite.Equal(0.0, value)
}

func (suite *IndicatorTestSuite) TestPercentChange() {
	suite.InDelta(30.0, PercentChange(types.PriceSeries{100, 115, 130}), 1e-12)
	suite.InDelta(-50.0, PercentChange(types.PriceSeries{2, 1}), 1e-12)
	suite.Equal(0.0, PercentChange(types.PriceSeries{0, 1}))
}

func (suite *IndicatorTestSuite) TestComputeRejectsShortSeries() {
	_, err := Compute(types.PriceSeries{100})
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeInsufficientData))

	_, err = Compute(nil)
	suite.True(errors.HasCode(err, errors.ErrCodeInsufficientData))
}

func (suite *IndicatorTestSuite) TestComputeLinearUptrend() {
	set, err := Compute(linearSeries(30, 100, 130))
	suite.Require().NoError(err)

	suite.InDelta(130.0, set.LatestPrice, 1e-9)
	suite.InDelta(115.0, set.AveragePrice, 1e-9)
	suite.InDelta(115.0, set.SMA30, 1e-9)
	suite.InDelta(30.0, set.PriceChangePercent, 1e-9)
	suite.Greater(set.RSI, 70.0)
	// 30 closes cannot fill the signal line
	suite.True(math.IsNaN(set.MACDHistogram))
	// the latest close sits 9.5 steps above the 20 close mean
	suite.InDelta(0.5+9.5/(4*math.Sqrt(399.0/12.0)), set.BollingerPosition, 1e-9)
	suite.Greater(set.VolatilityPercent, 0.0)
}
