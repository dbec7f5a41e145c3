package types

// Recommendation is the categorical outcome of a composite score.
type Recommendation string

const (
	// RecommendationBuy is returned for scores above 60
	RecommendationBuy Recommendation = "buy"
	// RecommendationSell is returned for scores below 40
	RecommendationSell Recommendation = "sell"
	// RecommendationHold is returned for everything in between, bounds included
	RecommendationHold Recommendation = "hold"
)

// SignalType names one of the eight weighted inputs of the composite score.
type SignalType string

const (
	SignalRSI                SignalType = "rsi"
	SignalPriceChange        SignalType = "price_change"
	SignalVolatility         SignalType = "volatility"
	SignalMACD               SignalType = "macd"
	SignalBollingerPosition  SignalType = "bollinger_position"
	SignalVolumeToMarketCap  SignalType = "volume_to_market_cap"
	SignalMarketCap          SignalType = "market_cap"
	SignalCirculatingPercent SignalType = "circulating_supply_percent"
)

// Signals is the input vector of the scorer.
type Signals struct {
	RSI                      float64
	PriceChangePercent       float64
	VolatilityPercent        float64
	MACDHistogram            float64
	BollingerPosition        float64
	VolumeToMarketCap        float64
	MarketCap                float64
	CirculatingSupplyPercent float64
}

// Value returns the input for the given signal.
func (s Signals) Value(signal SignalType) float64 {
	switch signal {
	case SignalRSI:
		return s.RSI
	case SignalPriceChange:
		return s.PriceChangePercent
	case SignalVolatility:
		return s.VolatilityPercent
	case SignalMACD:
		return s.MACDHistogram
	case SignalBollingerPosition:
		return s.BollingerPosition
	case SignalVolumeToMarketCap:
		return s.VolumeToMarketCap
	case SignalMarketCap:
		return s.MarketCap
	case SignalCirculatingPercent:
		return s.CirculatingSupplyPercent
	default:
		return 0
	}
}
