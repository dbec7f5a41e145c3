package errors

// ErrorCode represents a unique error code for identifying different error types.
type ErrorCode int

const (
	// General errors (1-99)
	ErrCodeUnknown ErrorCode = 1

	// Validation errors (100-199)
	ErrCodeInvalidParameter     ErrorCode = 100
	ErrCodeInvalidConfiguration ErrorCode = 101
	ErrCodeMissingParameter     ErrorCode = 109

	// Not-found errors (200-299)
	ErrCodeNoPriceData      ErrorCode = 204
	ErrCodeNoMarketData     ErrorCode = 206
	ErrCodeInsufficientData ErrorCode = 207

	// Upstream errors (700-799)
	ErrCodeUpstreamUnavailable ErrorCode = 700
	ErrCodeMalformedResponse   ErrorCode = 702
	ErrCodeInvalidProvider     ErrorCode = 704
	ErrCodeExchangeRejected    ErrorCode = 705
)
