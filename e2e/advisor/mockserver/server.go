// Package mockserver provides a mock upstream for end-to-end tests.
// It serves the Binance klines endpoint and the CoinGecko markets endpoint.
package mockserver

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/mux"

	"github.com/rxtech-lab/argo-advisor/internal/types"
)

// CoinMarket is one CoinGecko /coins/markets entry. Nil fields encode as null.
type CoinMarket struct {
	ID                string   `json:"id"`
	MarketCap         *float64 `json:"market_cap"`
	TotalVolume       *float64 `json:"total_volume"`
	CirculatingSupply *float64 `json:"circulating_supply"`
	TotalSupply       *float64 `json:"total_supply"`
}

// NewCoinMarket builds an entry with every figure set.
func NewCoinMarket(id string, snapshot types.MarketSnapshot) CoinMarket {
	return CoinMarket{
		ID:                id,
		MarketCap:         &snapshot.MarketCap,
		TotalVolume:       &snapshot.Volume24h,
		CirculatingSupply: &snapshot.CirculatingSupply,
		TotalSupply:       &snapshot.TotalSupply,
	}
}

// MockUpstreamServer fakes Binance and CoinGecko on one listener.
type MockUpstreamServer struct {
	mu sync.RWMutex

	httpServer *http.Server
	listener   net.Listener

	candles map[string][]types.MarketData
	markets map[string]CoinMarket

	// klineFailures is the number of upcoming klines calls answered with 502
	klineFailures int
	klineCalls    int
	marketCalls   int
}

// NewMockUpstreamServer creates an empty mock upstream.
func NewMockUpstreamServer() *MockUpstreamServer {
	return &MockUpstreamServer{
		mu:            sync.RWMutex{},
		httpServer:    nil,
		listener:      nil,
		candles:       make(map[string][]types.MarketData),
		markets:       make(map[string]CoinMarket),
		klineFailures: 0,
		klineCalls:    0,
		marketCalls:   0,
	}
}

// Start starts the mock server on the given address.
func (s *MockUpstreamServer) Start(address string) error {
	if address == "" {
		address = "127.0.0.1:0"
	}

	listener, err := net.Listen("tcp", address)
	if err != nil {
		return fmt.Errorf("failed to create listener: %w", err)
	}

	s.listener = listener

	router := mux.NewRouter()
	router.HandleFunc("/api/v3/klines", s.handleKlines).Methods(http.MethodGet)
	router.HandleFunc("/coins/markets", s.handleCoinMarkets).Methods(http.MethodGet)

	s.httpServer = &http.Server{
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := s.httpServer.Serve(listener); err != http.ErrServerClosed {
			fmt.Printf("HTTP server error: %v\n", err)
		}
	}()

	return nil
}

// Stop stops the mock server.
func (s *MockUpstreamServer) Stop() error {
	if s.httpServer == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return s.httpServer.Shutdown(ctx)
}

// BaseURL returns the HTTP base URL for both upstreams.
func (s *MockUpstreamServer) BaseURL() string {
	return "http://" + s.listener.Addr().String()
}

// SetCandles registers the klines served for symbol.
func (s *MockUpstreamServer) SetCandles(symbol string, candles []types.MarketData) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.candles[symbol] = candles
}

// SetMarket registers the CoinGecko entry served for market.ID.
func (s *MockUpstreamServer) SetMarket(market CoinMarket) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.markets[market.ID] = market
}

// FailNextKlines makes the next n klines calls return 502.
func (s *MockUpstreamServer) FailNextKlines(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.klineFailures = n
}

// KlineCalls returns how many klines requests were received.
func (s *MockUpstreamServer) KlineCalls() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.klineCalls
}

// MarketCalls returns how many markets requests were received.
func (s *MockUpstreamServer) MarketCalls() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.marketCalls
}

// handleKlines handles GET /api/v3/klines
func (s *MockUpstreamServer) handleKlines(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.klineCalls++
	failing := s.klineFailures > 0

	if failing {
		s.klineFailures--
	}

	candles, known := s.candles[r.URL.Query().Get("symbol")]
	s.mu.Unlock()

	if failing {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>502 Bad Gateway</html>"))

		return
	}

	if r.URL.Query().Get("interval") != "1d" {
		writeBinanceError(w, -1120, "Invalid interval.")

		return
	}

	if !known {
		writeBinanceError(w, -1121, "Invalid symbol.")

		return
	}

	if limit, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && limit < len(candles) {
		candles = candles[len(candles)-limit:]
	}

	// Binance kline format: [openTime, open, high, low, close, volume, closeTime, ...]
	klines := make([][]any, 0, len(candles))
	for _, d := range candles {
		klines = append(klines, []any{
			d.Time.UnixMilli(),
			strconv.FormatFloat(d.Open, 'f', 8, 64),
			strconv.FormatFloat(d.High, 'f', 8, 64),
			strconv.FormatFloat(d.Low, 'f', 8, 64),
			strconv.FormatFloat(d.Close, 'f', 8, 64),
			strconv.FormatFloat(d.Volume, 'f', 8, 64),
			d.Time.Add(24*time.Hour).UnixMilli() - 1,
			"0",
			0,
			"0",
			"0",
			"0",
		})
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(klines)
}

// handleCoinMarkets handles GET /coins/markets
func (s *MockUpstreamServer) handleCoinMarkets(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("vs_currency") != "usd" {
		http.Error(w, `{"error":"invalid vs_currency"}`, http.StatusUnprocessableEntity)

		return
	}

	s.mu.Lock()
	s.marketCalls++

	markets := make([]CoinMarket, 0)

	for _, id := range strings.Split(r.URL.Query().Get("ids"), ",") {
		if market, ok := s.markets[id]; ok {
			markets = append(markets, market)
		}
	}
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(markets)
}

func writeBinanceError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	_ = json.NewEncoder(w).Encode(map[string]any{"code": code, "msg": message})
}
