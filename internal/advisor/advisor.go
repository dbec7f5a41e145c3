// Package advisor turns a ticker into a scored buy/sell/hold recommendation.
package advisor

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/rxtech-lab/argo-advisor/internal/indicator"
	"github.com/rxtech-lab/argo-advisor/internal/logger"
	"github.com/rxtech-lab/argo-advisor/internal/scoring"
	"github.com/rxtech-lab/argo-advisor/internal/types"
	"github.com/rxtech-lab/argo-advisor/pkg/errors"
	"github.com/rxtech-lab/argo-advisor/pkg/marketdata"
)

// MarketFetcher provides the upstream data of an asset.
type MarketFetcher interface {
	FetchPrices(ctx context.Context, asset types.Asset) ([]types.MarketData, error)
	FetchSnapshot(ctx context.Context, asset types.Asset) (types.MarketSnapshot, error)
}

// Advisor runs one analysis per call. It holds no per-request state.
type Advisor struct {
	market MarketFetcher
	scorer *scoring.Scorer
	now    func() time.Time
}

// NewAdvisor creates an Advisor with the default scoring curves.
func NewAdvisor(market MarketFetcher) *Advisor {
	return &Advisor{
		market: market,
		scorer: scoring.NewScorer(),
		now:    time.Now,
	}
}

// Analyze fetches daily closes and the market snapshot of ticker, derives
// the indicators and scores them. Either every step succeeds or an error
// carrying a pkg/errors code is returned.
func (a *Advisor) Analyze(ctx context.Context, ticker string) (types.ScoreResult, error) {
	if strings.TrimSpace(ticker) == "" {
		return types.ScoreResult{}, errors.New(errors.ErrCodeMissingParameter, "Ticker is required")
	}

	asset := marketdata.Resolve(ticker)
	log := logger.FromContext(ctx).With(zap.String("ticker", asset.Ticker))
	ctx = logger.IntoContext(ctx, log)

	candles, err := a.market.FetchPrices(ctx, asset)
	if err != nil {
		log.Error("Failed to fetch prices", zap.Error(err))

		return types.ScoreResult{}, err
	}

	series := types.ClosesOf(candles)

	indicators, err := indicator.Compute(series)
	if err != nil {
		log.Error("Failed to compute indicators", zap.Int("closes", len(series)), zap.Error(err))

		return types.ScoreResult{}, err
	}

	snapshot, err := a.market.FetchSnapshot(ctx, asset)
	if err != nil {
		log.Error("Failed to fetch market snapshot", zap.String("market_id", asset.MarketID), zap.Error(err))

		return types.ScoreResult{}, err
	}

	signals := scoring.SignalsFrom(indicators, snapshot)
	score := a.scorer.Score(signals)
	recommendation := scoring.Recommend(score)

	if ce := log.Check(zap.DebugLevel, "Score breakdown"); ce != nil {
		breakdown := a.scorer.Breakdown(signals)

		fields := make([]zap.Field, 0, len(breakdown))
		for _, c := range breakdown {
			fields = append(fields, zap.Float64(string(c.Signal), c.Points))
		}

		ce.Write(fields...)
	}

	result := types.NewScoreResult(asset.Ticker, indicators, snapshot, score, recommendation, a.now())

	log.Info("Analysis completed",
		zap.Float64("score", result.Score),
		zap.String("recommendation", string(result.Recommendation)),
		zap.Int("closes", len(series)),
	)

	return result, nil
}
