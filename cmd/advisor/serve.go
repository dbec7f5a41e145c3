package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/rxtech-lab/argo-advisor/internal/advisor"
	"github.com/rxtech-lab/argo-advisor/internal/config"
	"github.com/rxtech-lab/argo-advisor/internal/logger"
	"github.com/rxtech-lab/argo-advisor/internal/server"
	"github.com/rxtech-lab/argo-advisor/internal/version"
	"github.com/rxtech-lab/argo-advisor/pkg/marketdata"
)

// loadConfig reads the config file and applies the flags that were set.
func loadConfig(cmd *cli.Command) (config.Config, error) {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return config.Config{}, err
	}

	if cmd.IsSet("host") {
		cfg.Server.Host = cmd.String("host")
	}

	if cmd.IsSet("port") {
		cfg.Server.Port = int(cmd.Int("port"))
	}

	if cmd.IsSet("log-level") {
		cfg.Log.Level = cmd.String("log-level")
	}

	if cmd.IsSet("provider") {
		cfg.Market.CandleProvider = cmd.String("provider")
	}

	if cmd.IsSet("polygon-api-key") {
		cfg.Market.PolygonApiKey = cmd.String("polygon-api-key")
	}

	if cmd.IsSet("binance-base-url") {
		cfg.Market.BinanceBaseURL = cmd.String("binance-base-url")
	}

	if cmd.IsSet("coingecko-base-url") {
		cfg.Market.CoinGeckoBaseURL = cmd.String("coingecko-base-url")
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}

	return cfg, nil
}

// newServer wires the advisor stack for cfg.
func newServer(cfg config.Config, log *logger.Logger) (*server.Server, error) {
	client, err := marketdata.NewClient(cfg.ClientConfig())
	if err != nil {
		return nil, err
	}

	return server.NewServer(advisor.NewAdvisor(client), log, version.GetVersion(), cfg.Server.ShutdownTimeout), nil
}

func serveAction(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	log, err := logger.NewLoggerWithLevel(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	defer func() { _ = log.Sync() }()

	srv, err := newServer(cfg, log)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := srv.Start(cfg.Addr()); err != nil {
		return err
	}

	log.Info("Advisor started",
		zap.String("candle_provider", cfg.Market.CandleProvider),
		zap.Int("candle_limit", cfg.Market.CandleLimit),
	)

	<-ctx.Done()

	return srv.Stop()
}
