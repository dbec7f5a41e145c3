package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/rxtech-lab/argo-advisor/internal/version"
	"github.com/rxtech-lab/argo-advisor/pkg/marketdata"
)

func newCommand() *cli.Command {
	return &cli.Command{
		Name:    "advisor",
		Usage:   "Crypto analysis API scoring tickers into buy, sell or hold",
		Version: version.GetVersion(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to a YAML configuration file",
				Sources: cli.EnvVars("ADVISOR_CONFIG"),
			},
			&cli.StringFlag{
				Name:    "host",
				Usage:   "Interface to bind",
				Sources: cli.EnvVars("ADVISOR_HOST"),
			},
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "Port to listen on",
				Sources: cli.EnvVars("ADVISOR_PORT"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (debug, info, warn, error)",
				Sources: cli.EnvVars("ADVISOR_LOG_LEVEL"),
			},
			&cli.StringFlag{
				Name:    "provider",
				Usage:   fmt.Sprintf("Candle provider (%v)", marketdata.GetCandleProviders()),
				Sources: cli.EnvVars("ADVISOR_PROVIDER"),
			},
			&cli.StringFlag{
				Name:    "polygon-api-key",
				Usage:   "Polygon.io API key, required with --provider polygon",
				Sources: cli.EnvVars("POLYGON_API_KEY"),
			},
			&cli.StringFlag{
				Name:    "binance-base-url",
				Usage:   "Override the Binance API base URL",
				Sources: cli.EnvVars("ADVISOR_BINANCE_BASE_URL"),
			},
			&cli.StringFlag{
				Name:    "coingecko-base-url",
				Usage:   "Override the CoinGecko API base URL",
				Sources: cli.EnvVars("ADVISOR_COINGECKO_BASE_URL"),
			},
		},
		Action: serveAction,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Start the HTTP API (default)",
				Action: serveAction,
			},
			{
				Name:   "schema",
				Usage:  "Print the JSON schema of the configuration file",
				Action: schemaAction,
			},
			{
				Name:   "providers",
				Usage:  "List the supported market data providers",
				Action: providersAction,
			},
		},
	}
}

func main() {
	if err := newCommand().Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
