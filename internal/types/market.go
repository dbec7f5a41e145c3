package types

import "time"

// MarketData is a single OHLCV candle returned by an exchange provider.
type MarketData struct {
	Symbol string    `json:"symbol"`
	Time   time.Time `json:"time"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume float64   `json:"volume"`
}

// PriceSeries holds daily closing prices, oldest first.
type PriceSeries []float64

// ClosesOf extracts the closing prices of candles in their given order.
func ClosesOf(candles []MarketData) PriceSeries {
	closes := make(PriceSeries, 0, len(candles))
	for _, c := range candles {
		closes = append(closes, c.Close)
	}

	return closes
}

// First returns the oldest close, or 0 for an empty series.
func (s PriceSeries) First() float64 {
	if len(s) == 0 {
		return 0
	}

	return s[0]
}

// Latest returns the most recent close, or 0 for an empty series.
func (s PriceSeries) Latest() float64 {
	if len(s) == 0 {
		return 0
	}

	return s[len(s)-1]
}

// Tail returns the last n closes, or the whole series when it is shorter.
func (s PriceSeries) Tail(n int) PriceSeries {
	if n <= 0 {
		return PriceSeries{}
	}

	if n >= len(s) {
		return s
	}

	return s[len(s)-n:]
}

// MarketSnapshot is the current market state of an asset as reported by the
// market-data provider.
type MarketSnapshot struct {
	MarketCap         float64 `json:"market_cap"`
	Volume24h         float64 `json:"volume_24h"`
	CirculatingSupply float64 `json:"circulating_supply"`
	TotalSupply       float64 `json:"total_supply"`
}

// VolumeToMarketCap is 24h volume over market cap. It is 0 when the market
// cap is not positive.
func (m MarketSnapshot) VolumeToMarketCap() float64 {
	if m.MarketCap <= 0 {
		return 0
	}

	return m.Volume24h / m.MarketCap
}

// CirculatingSupplyPercent is circulating supply as a percentage of total
// supply. It is 0 when the total supply is not positive.
func (m MarketSnapshot) CirculatingSupplyPercent() float64 {
	if m.TotalSupply <= 0 {
		return 0
	}

	return m.CirculatingSupply / m.TotalSupply * 100
}

// Asset identifies a ticker on both upstreams.
type Asset struct {
	// Ticker is the upper-cased symbol the caller asked for.
	Ticker string
	// MarketID is the market-data provider identifier, e.g. "bitcoin".
	MarketID string
}
