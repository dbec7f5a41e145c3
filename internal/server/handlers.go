package server

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/rxtech-lab/argo-advisor/internal/logger"
	"github.com/rxtech-lab/argo-advisor/pkg/errors"
)

// AnalyzeRequest is the body of POST /analyze.
type AnalyzeRequest struct {
	Ticker string `json:"ticker" validate:"required"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleLiveness(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(LivenessMessage))
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var request AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Warn("Invalid request body", zap.Error(err))
		writeError(w, http.StatusBadRequest, "Invalid JSON body")

		return
	}

	if err := s.validate.Struct(request); err != nil {
		writeError(w, http.StatusBadRequest, "Ticker is required")

		return
	}

	result, err := s.analyzer.Analyze(r.Context(), request.Ticker)
	if err != nil {
		status := StatusFor(err)
		message := errors.Message(err)

		if status == http.StatusInternalServerError && errors.GetCode(err) == errors.ErrCodeUnknown {
			message = "Unexpected error: " + message
		}

		log.Error("Analysis failed", zap.Int("status", status), zap.Error(err))
		writeError(w, status, message)

		return
	}

	writeJSON(w, http.StatusOK, result)
}

// StatusFor maps an error code to its HTTP status.
func StatusFor(err error) int {
	switch errors.GetCode(err) {
	case errors.ErrCodeMissingParameter, errors.ErrCodeInvalidParameter, errors.ErrCodeExchangeRejected:
		return http.StatusBadRequest
	case errors.ErrCodeNoPriceData, errors.ErrCodeNoMarketData, errors.ErrCodeInsufficientData:
		return http.StatusNotFound
	case errors.ErrCodeUpstreamUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}
