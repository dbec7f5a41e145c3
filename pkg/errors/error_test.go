package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ErrorTestSuite struct {
	suite.Suite
}

func TestErrorSuite(t *testing.T) {
	suite.Run(t, new(ErrorTestSuite))
}

func (suite *ErrorTestSuite) TestNewError() {
	err := New(ErrCodeMissingParameter, "Ticker is required")
	suite.NotNil(err)
	suite.Equal(ErrCodeMissingParameter, err.Code)
	suite.Equal("Ticker is required", err.Message)
	suite.Nil(err.Cause)
}

func (suite *ErrorTestSuite) TestNewfError() {
	err := Newf(ErrCodeNoPriceData, "No price data for %s", "BTCUSDT")
	suite.Equal(ErrCodeNoPriceData, err.Code)
	suite.Equal("No price data for BTCUSDT", err.Message)
}

func (suite *ErrorTestSuite) TestWrapAndUnwrap() {
	cause := errors.New("connection reset")
	err := Wrap(ErrCodeUpstreamUnavailable, "Exchange network error", cause)
	suite.Equal(cause, err.Unwrap())
	suite.True(Is(err, cause))
	suite.Equal("[700] Exchange network error: connection reset", err.Error())
}

func (suite *ErrorTestSuite) TestWrapfError() {
	cause := errors.New("status 500")
	err := Wrapf(ErrCodeUpstreamUnavailable, cause, "market data request failed for %s", "bitcoin")
	suite.Equal("market data request failed for bitcoin", err.Message)
	suite.Equal(cause, err.Cause)
}

func (suite *ErrorTestSuite) TestErrorStringWithoutCause() {
	err := New(ErrCodeExchangeRejected, "invalid symbol")
	suite.Equal("[705] invalid symbol", err.Error())
}

func (suite *ErrorTestSuite) TestGetCode() {
	suite.Equal(ErrCodeNoMarketData, GetCode(New(ErrCodeNoMarketData, "none")))
	suite.Equal(ErrCodeUnknown, GetCode(errors.New("plain")))

	// the outermost coded error wins
	inner := New(ErrCodeNoPriceData, "no candles")
	outer := Wrap(ErrCodeInsufficientData, "need two closes", inner)
	suite.Equal(ErrCodeInsufficientData, GetCode(outer))

	// codes survive fmt wrapping
	suite.Equal(ErrCodeNoPriceData, GetCode(fmt.Errorf("analyze: %w", inner)))
}

func (suite *ErrorTestSuite) TestHasCode() {
	err := New(ErrCodeMalformedResponse, "bad json")
	suite.True(HasCode(err, ErrCodeMalformedResponse))
	suite.False(HasCode(err, ErrCodeUnknown))
}

func (suite *ErrorTestSuite) TestAsError() {
	err := fmt.Errorf("outer: %w", New(ErrCodeInvalidParameter, "bad body"))

	var coded *Error
	suite.True(As(err, &coded))
	suite.Equal(ErrCodeInvalidParameter, coded.Code)
}

func (suite *ErrorTestSuite) TestMessage() {
	suite.Equal("", Message(nil))
	suite.Equal("plain", Message(errors.New("plain")))
	suite.Equal("Exchange network error", Message(Wrap(ErrCodeUpstreamUnavailable, "Exchange network error", errors.New("eof"))))
}

func (suite *ErrorTestSuite) TestErrorCodeValues() {
	suite.Equal(ErrorCode(1), ErrCodeUnknown)
	suite.Equal(ErrorCode(100), ErrCodeInvalidParameter)
	suite.Equal(ErrorCode(204), ErrCodeNoPriceData)
	suite.Equal(ErrorCode(700), ErrCodeUpstreamUnavailable)
	suite.Equal(ErrorCode(705), ErrCodeExchangeRejected)
}
