package types

import (
	"math"
	"math/big"
	"time"

	"github.com/shopspring/decimal"
)

// ScoreResult is the response of a successful analysis.
type ScoreResult struct {
	Ticker                   string         `json:"ticker"`
	LatestPrice              float64        `json:"latest_price"`
	AveragePrice             float64        `json:"30d_avg_price"`
	PriceChangePercent       float64        `json:"30d_price_change_percent"`
	VolatilityPercent        float64        `json:"volatility_percent"`
	RSI                      float64        `json:"rsi"`
	SMA30                    float64        `json:"sma_30"`
	MACDHistogram            float64        `json:"macd_diff"`
	BollingerPosition        float64        `json:"bollinger_position"`
	MarketCap                float64        `json:"market_cap_usd"`
	Volume24h                float64        `json:"volume_24h_usd"`
	VolumeToMarketCap        float64        `json:"volume_to_market_cap"`
	CirculatingSupplyPercent float64        `json:"circulating_supply_percent"`
	Score                    float64        `json:"score"`
	Recommendation           Recommendation `json:"recommendation"`
	Timestamp                time.Time      `json:"timestamp"`
}

// NewScoreResult assembles the response record, applying the rounding of
// each field. Market cap and volume are echoed unrounded.
func NewScoreResult(ticker string, ind IndicatorSet, snapshot MarketSnapshot, score float64, rec Recommendation, at time.Time) ScoreResult {
	return ScoreResult{
		Ticker:                   ticker,
		LatestPrice:              Round(ind.LatestPrice, 2),
		AveragePrice:             Round(ind.AveragePrice, 2),
		PriceChangePercent:       Round(ind.PriceChangePercent, 2),
		VolatilityPercent:        Round(ind.VolatilityPercent, 2),
		RSI:                      Round(ind.RSI, 2),
		SMA30:                    Round(ind.SMA30, 2),
		MACDHistogram:            Round(ind.MACDHistogram, 2),
		BollingerPosition:        Round(ind.BollingerPosition, 2),
		MarketCap:                snapshot.MarketCap,
		Volume24h:                snapshot.Volume24h,
		VolumeToMarketCap:        Round(snapshot.VolumeToMarketCap(), 4),
		CirculatingSupplyPercent: Round(snapshot.CirculatingSupplyPercent(), 2),
		Score:                    Round(score, 2),
		Recommendation:           rec,
		Timestamp:                at.UTC(),
	}
}

// Round rounds the exact binary value of v to the given number of decimal
// places, sending exact ties to the even digit. 2.675 is stored just below
// the tie and rounds to 2.67, while 0.125 is an exact tie and rounds to 0.12.
// NaN and infinities are returned as 0 so results always encode as JSON.
func Round(v float64, places int32) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}

	exact, err := decimal.NewFromString(new(big.Float).SetFloat64(v).Text('f', exactDigits))
	if err != nil {
		return decimal.NewFromFloat(v).RoundBank(places).InexactFloat64()
	}

	return exact.RoundBank(places).InexactFloat64()
}

// exactDigits covers the longest fractional expansion of a float64.
const exactDigits = 1074
