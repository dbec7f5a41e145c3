package mocks

import (
	"math"
	"math/rand"
	"time"

	"github.com/rxtech-lab/argo-advisor/internal/types"
)

// DataGenerator generates daily crypto candles for tests.
type DataGenerator struct {
	rng *rand.Rand
}

// NewDataGenerator creates a new DataGenerator with the given seed.
// Use a fixed seed for reproducible results in tests.
func NewDataGenerator(seed int64) *DataGenerator {
	return &DataGenerator{
		//nolint:gosec // test data
		rng: rand.New(rand.NewSource(seed)),
	}
}

// GeneratorConfig configures how candles are generated.
type GeneratorConfig struct {
	// Symbol is the trading pair (e.g., "BTCUSDT")
	Symbol string
	// StartTime is the open time of the first candle
	StartTime time.Time
	// Count is the number of daily candles to generate
	Count int
	// InitialPrice is the starting price
	InitialPrice float64
	// Volatility controls price movement (0.03 = 3% typical daily move)
	Volatility float64
	// Trend is the total drift over the series (-0.3 to 0.3 for bearish to bullish)
	Trend float64
	// VolumeBase is the average volume per candle
	VolumeBase float64
}

// DefaultConfig returns thirty days of a neutral BTCUSDT-like series.
func DefaultConfig() GeneratorConfig {
	return GeneratorConfig{
		Symbol:       "BTCUSDT",
		StartTime:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Count:        30,
		InitialPrice: 42000.0,
		Volatility:   0.03,
		Trend:        0.0,
		VolumeBase:   25000,
	}
}

// Generate creates daily candles following a geometric Brownian motion.
func (g *DataGenerator) Generate(config GeneratorConfig) []types.MarketData {
	data := make([]types.MarketData, config.Count)
	currentPrice := config.InitialPrice

	drift := 0.0
	if config.Count > 0 {
		drift = config.Trend / float64(config.Count)
	}

	for i := range data {
		open := currentPrice

		// Box-Muller transform for a standard normal draw
		u1 := 1 - g.rng.Float64()
		u2 := g.rng.Float64()
		z := math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)

		closePrice := open * (1 + config.Volatility*z + drift)
		if closePrice <= 0 {
			closePrice = open * 0.99
		}

		extension := config.Volatility * open * 0.5
		high := math.Max(open, closePrice) + g.rng.Float64()*extension
		low := math.Min(open, closePrice) - g.rng.Float64()*extension

		if low <= 0 {
			low = math.Min(open, closePrice) * 0.99
		}

		volume := config.VolumeBase * (0.7 + g.rng.Float64()*0.6)

		data[i] = types.MarketData{
			Symbol: config.Symbol,
			Time:   config.StartTime.AddDate(0, 0, i),
			Open:   types.Round(open, 4),
			High:   types.Round(high, 4),
			Low:    types.Round(low, 4),
			Close:  types.Round(closePrice, 4),
			Volume: types.Round(volume, 2),
		}

		currentPrice = closePrice
	}

	return data
}

// Linear returns count daily candles whose closes step evenly from first to
// last. Open, high and low equal the close.
func Linear(symbol string, first, last float64, count int) []types.MarketData {
	data := make([]types.MarketData, count)
	start := DefaultConfig().StartTime

	step := 0.0
	if count > 1 {
		step = (last - first) / float64(count-1)
	}

	for i := range data {
		price := first + step*float64(i)
		data[i] = types.MarketData{
			Symbol: symbol,
			Time:   start.AddDate(0, 0, i),
			Open:   price,
			High:   price,
			Low:    price,
			Close:  price,
			Volume: 1000,
		}
	}

	return data
}
