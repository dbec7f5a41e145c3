package scoring

import (
	"github.com/rxtech-lab/argo-advisor/internal/types"
)

const (
	// MaxScore caps the composite score. The weights sum to 110, so a
	// perfect reading on every curve is clamped here.
	MaxScore = 100.0

	buyAbove  = 60.0
	sellBelow = 40.0
)

// Contribution is the share of the composite score earned by one signal.
type Contribution struct {
	Signal types.SignalType `json:"signal"`
	Input  float64          `json:"input"`
	Points float64          `json:"points"`
	Weight float64          `json:"weight"`
}

// Scorer combines signals into a composite score. It holds no mutable state.
type Scorer struct {
	curves []Curve
}

// NewScorer returns a scorer over the given curves, or DefaultCurves when
// none are given.
func NewScorer(curves ...Curve) *Scorer {
	if len(curves) == 0 {
		curves = DefaultCurves()
	}

	return &Scorer{curves: curves}
}

// Breakdown evaluates every curve.
func (s *Scorer) Breakdown(signals types.Signals) []Contribution {
	contributions := make([]Contribution, 0, len(s.curves))

	for _, curve := range s.curves {
		input := signals.Value(curve.Signal)
		contributions = append(contributions, Contribution{
			Signal: curve.Signal,
			Input:  input,
			Points: curve.Points(input),
			Weight: curve.Weight,
		})
	}

	return contributions
}

// Score sums the contributions, clamps the total to [0, MaxScore] and rounds
// it to 2 decimals.
func (s *Scorer) Score(signals types.Signals) float64 {
	total := 0.0
	for _, c := range s.Breakdown(signals) {
		total += c.Points
	}

	if total > MaxScore {
		total = MaxScore
	}

	if total < 0 {
		total = 0
	}

	return types.Round(total, 2)
}

// Recommend maps a score to buy (> 60), sell (< 40) or hold.
func Recommend(score float64) types.Recommendation {
	switch {
	case score > buyAbove:
		return types.RecommendationBuy
	case score < sellBelow:
		return types.RecommendationSell
	default:
		return types.RecommendationHold
	}
}

// SignalsFrom assembles the scorer inputs from derived indicators and the
// market snapshot.
func SignalsFrom(ind types.IndicatorSet, snapshot types.MarketSnapshot) types.Signals {
	return types.Signals{
		RSI:                      ind.RSI,
		PriceChangePercent:       ind.PriceChangePercent,
		VolatilityPercent:        ind.VolatilityPercent,
		MACDHistogram:            ind.MACDHistogram,
		BollingerPosition:        ind.BollingerPosition,
		VolumeToMarketCap:        snapshot.VolumeToMarketCap(),
		MarketCap:                snapshot.MarketCap,
		CirculatingSupplyPercent: snapshot.CirculatingSupplyPercent(),
	}
}
