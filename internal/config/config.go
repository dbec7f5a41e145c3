// Package config loads the advisor configuration from defaults and an
// optional YAML file.
package config

import (
	"net"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/rxtech-lab/argo-advisor/internal/version"
	"github.com/rxtech-lab/argo-advisor/pkg/errors"
	"github.com/rxtech-lab/argo-advisor/pkg/marketdata"
	"github.com/rxtech-lab/argo-advisor/pkg/marketdata/provider"
)

// Config is the full advisor configuration.
type Config struct {
	Version string       `yaml:"version,omitempty" json:"version,omitempty" jsonschema:"title=Version,description=Advisor version the file was written for. Must share major and minor with the running binary"`
	Server  ServerConfig `yaml:"server" json:"server" jsonschema:"title=Server"`
	Log     LogConfig    `yaml:"log" json:"log" jsonschema:"title=Log"`
	Market  MarketConfig `yaml:"market" json:"market" jsonschema:"title=Market Data"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Host            string        `yaml:"host" json:"host" jsonschema:"title=Host,description=Interface to bind,default=0.0.0.0" validate:"required"`
	Port            int           `yaml:"port" json:"port" jsonschema:"title=Port,minimum=1,maximum=65535,default=5000" validate:"required,min=1,max=65535"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" json:"shutdown_timeout" jsonschema:"title=Shutdown Timeout,description=Grace period for in-flight requests,default=10s" validate:"min=0"`
}

// LogConfig configures the logger.
type LogConfig struct {
	Level string `yaml:"level" json:"level" jsonschema:"title=Level,enum=debug,enum=info,enum=warn,enum=error,default=info" validate:"required,oneof=debug info warn error"`
}

// MarketConfig configures the upstream providers.
type MarketConfig struct {
	CandleProvider   string        `yaml:"candle_provider" json:"candle_provider" jsonschema:"title=Candle Provider,enum=binance,enum=polygon,default=binance" validate:"required,oneof=binance polygon"`
	PolygonApiKey    string        `yaml:"polygon_api_key,omitempty" json:"polygon_api_key,omitempty" jsonschema:"title=Polygon API Key,description=Required when candle_provider is polygon" validate:"required_if=CandleProvider polygon"`
	BinanceBaseURL   string        `yaml:"binance_base_url,omitempty" json:"binance_base_url,omitempty" jsonschema:"title=Binance Base URL,format=uri" validate:"omitempty,url"`
	CoinGeckoBaseURL string        `yaml:"coingecko_base_url" json:"coingecko_base_url" jsonschema:"title=CoinGecko Base URL,format=uri,default=https://api.coingecko.com/api/v3" validate:"required,url"`
	QuoteCurrency    string        `yaml:"quote_currency" json:"quote_currency" jsonschema:"title=Quote Currency,default=USDT" validate:"required,alphanum"`
	CandleLimit      int           `yaml:"candle_limit" json:"candle_limit" jsonschema:"title=Candle Limit,description=Number of daily candles to analyze,minimum=2,maximum=1000,default=30" validate:"required,min=2,max=1000"`
	RetryAttempts    int           `yaml:"retry_attempts" json:"retry_attempts" jsonschema:"title=Retry Attempts,minimum=1,maximum=10,default=3" validate:"required,min=1,max=10"`
	RetryDelay       time.Duration `yaml:"retry_delay" json:"retry_delay" jsonschema:"title=Retry Delay,default=2s" validate:"min=0"`
	Timeout          time.Duration `yaml:"timeout" json:"timeout" jsonschema:"title=HTTP Timeout,default=10s" validate:"min=0"`
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{
		Version: "",
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            5000,
			ShutdownTimeout: 10 * time.Second,
		},
		Log: LogConfig{
			Level: "info",
		},
		Market: MarketConfig{
			CandleProvider:   string(provider.ProviderBinance),
			PolygonApiKey:    "",
			BinanceBaseURL:   "",
			CoinGeckoBaseURL: provider.DefaultCoinGeckoBaseURL,
			QuoteCurrency:    "USDT",
			CandleLimit:      30,
			RetryAttempts:    3,
			RetryDelay:       2 * time.Second,
			Timeout:          10 * time.Second,
		},
	}
}

// Load reads the YAML file at path over the defaults. An empty path returns
// the defaults. The result is not validated.
func Load(path string) (Config, error) {
	config := Default()
	if path == "" {
		return config, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(errors.ErrCodeInvalidConfiguration, err, "failed to read config file %s", path)
	}

	if err := yaml.Unmarshal(content, &config); err != nil {
		return Config{}, errors.Wrapf(errors.ErrCodeInvalidConfiguration, err, "failed to parse config file %s", path)
	}

	return config, nil
}

// Validate checks every field and that the file version matches the binary.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfiguration, "invalid configuration", err)
	}

	if c.Version != "" {
		if err := version.CheckVersionCompatibility(version.GetVersion(), c.Version); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfiguration, "incompatible configuration version", err)
		}
	}

	return nil
}

// Addr returns host:port for the listener.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))
}

// ClientConfig returns the market data client configuration.
func (c Config) ClientConfig() marketdata.ClientConfig {
	return marketdata.ClientConfig{
		CandleProvider:   provider.ProviderType(c.Market.CandleProvider),
		PolygonApiKey:    c.Market.PolygonApiKey,
		BinanceBaseURL:   c.Market.BinanceBaseURL,
		CoinGeckoBaseURL: c.Market.CoinGeckoBaseURL,
		QuoteCurrency:    c.Market.QuoteCurrency,
		CandleLimit:      c.Market.CandleLimit,
		RetryAttempts:    c.Market.RetryAttempts,
		RetryDelay:       c.Market.RetryDelay,
		Timeout:          c.Market.Timeout,
	}
}
