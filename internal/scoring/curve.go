package scoring

import (
	"math"

	"github.com/rxtech-lab/argo-advisor/internal/types"
)

// Kind selects how a curve pays out between its thresholds.
type Kind int

const (
	// KindLinear interpolates between From and To.
	KindLinear Kind = iota
	// KindStep pays the full weight strictly beyond Full and nothing otherwise.
	KindStep
)

// Direction tells which side of the thresholds is bullish.
type Direction int

const (
	// Rising curves reward larger inputs.
	Rising Direction = iota
	// Falling curves reward smaller inputs.
	Falling
)

// Curve maps one signal onto [0, Weight].
//
// For linear curves, inputs at or beyond Full earn Weight, inputs at or
// beyond Zero earn nothing, and everything else earns
// clamp((x-From)/(To-From), 0, 1) * Weight.
type Curve struct {
	Signal    types.SignalType
	Weight    float64
	Kind      Kind
	Direction Direction
	Full      float64
	Zero      float64
	From      float64
	To        float64
}

// Points evaluates the curve at x. NaN earns nothing.
func (c Curve) Points(x float64) float64 {
	if math.IsNaN(x) {
		return 0
	}

	if c.Kind == KindStep {
		if c.past(x, c.Full) {
			return c.Weight
		}

		return 0
	}

	if c.reached(x, c.Full) {
		return c.Weight
	}

	if c.reachedZero(x) {
		return 0
	}

	fraction := (x - c.From) / (c.To - c.From)

	return math.Max(0, math.Min(1, fraction)) * c.Weight
}

// reached reports whether x is at or beyond t on the bullish side.
func (c Curve) reached(x, t float64) bool {
	if c.Direction == Rising {
		return x >= t
	}

	return x <= t
}

// past reports whether x is strictly beyond t on the bullish side.
func (c Curve) past(x, t float64) bool {
	if c.Direction == Rising {
		return x > t
	}

	return x < t
}

func (c Curve) reachedZero(x float64) bool {
	if c.Direction == Rising {
		return x <= c.Zero
	}

	return x >= c.Zero
}

// DefaultCurves is the weighting table of the composite score.
func DefaultCurves() []Curve {
	return []Curve{
		// oversold is bullish; (100-RSI)/100 between the bands
		{Signal: types.SignalRSI, Weight: 20, Kind: KindLinear, Direction: Falling, Full: 30, Zero: 70, From: 100, To: 0},
		{Signal: types.SignalPriceChange, Weight: 20, Kind: KindLinear, Direction: Rising, Full: 5, Zero: -5, From: -5, To: 5},
		// volatility is compared against an assumed maximum of 0.10
		{Signal: types.SignalVolatility, Weight: 10, Kind: KindLinear, Direction: Falling, Full: 0, Zero: 0.10, From: 0.10, To: 0},
		{Signal: types.SignalMACD, Weight: 15, Kind: KindStep, Direction: Rising, Full: 0},
		{Signal: types.SignalBollingerPosition, Weight: 10, Kind: KindLinear, Direction: Falling, Full: 0, Zero: 1, From: 1, To: 0},
		{Signal: types.SignalVolumeToMarketCap, Weight: 15, Kind: KindLinear, Direction: Rising, Full: 0.05, Zero: 0.01, From: 0.01, To: 0.05},
		// linear up to a one trillion ceiling
		{Signal: types.SignalMarketCap, Weight: 10, Kind: KindLinear, Direction: Rising, Full: 1e12, Zero: 0, From: 0, To: 1e12},
		{Signal: types.SignalCirculatingPercent, Weight: 10, Kind: KindLinear, Direction: Rising, Full: 80, Zero: 20, From: 20, To: 80},
	}
}
