package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

var (
	errTransient = errors.New("connection reset")
	errFatal     = errors.New("invalid symbol")
)

func isTransient(err error) bool {
	return errors.Is(err, errTransient)
}

type RetryTestSuite struct {
	suite.Suite
	policy Policy
}

func TestRetrySuite(t *testing.T) {
	suite.Run(t, new(RetryTestSuite))
}

func (suite *RetryTestSuite) SetupTest() {
	suite.policy = Policy{
		Attempts:  3,
		Delay:     time.Millisecond,
		Retryable: isTransient,
		OnRetry:   nil,
	}
}

// flaky fails with the given errors in order, then succeeds.
func flaky(calls *int, failures ...error) func(ctx context.Context) (string, error) {
	return func(_ context.Context) (string, error) {
		*calls++
		if *calls <= len(failures) {
			return "", failures[*calls-1]
		}

		return "ok", nil
	}
}

func (suite *RetryTestSuite) TestSucceedsFirstTry() {
	calls := 0
	result, err := Do(context.Background(), suite.policy, flaky(&calls))
	suite.NoError(err)
	suite.Equal("ok", result)
	suite.Equal(1, calls)
}

func (suite *RetryTestSuite) TestRecoversAfterTwoTransientFailures() {
	calls := 0
	retried := []int{}
	suite.policy.OnRetry = func(attempt int, err error, delay time.Duration) {
		retried = append(retried, attempt)
		suite.ErrorIs(err, errTransient)
		suite.Equal(time.Millisecond, delay)
	}

	result, err := Do(context.Background(), suite.policy, flaky(&calls, errTransient, errTransient))
	suite.NoError(err)
	suite.Equal("ok", result)
	suite.Equal(3, calls)
	suite.Equal([]int{1, 2}, retried)
}

func (suite *RetryTestSuite) TestGivesUpAfterAllAttempts() {
	calls := 0
	_, err := Do(context.Background(), suite.policy, flaky(&calls, errTransient, errTransient, errTransient))
	suite.ErrorIs(err, errTransient)
	suite.Equal(3, calls)
}

func (suite *RetryTestSuite) TestFatalErrorIsNotRetried() {
	calls := 0
	_, err := Do(context.Background(), suite.policy, flaky(&calls, errFatal))
	suite.ErrorIs(err, errFatal)
	suite.Equal(1, calls)
}

func (suite *RetryTestSuite) TestFatalAfterTransient() {
	calls := 0
	_, err := Do(context.Background(), suite.policy, flaky(&calls, errTransient, errFatal))
	suite.ErrorIs(err, errFatal)
	suite.Equal(2, calls)
}

func (suite *RetryTestSuite) TestNilClassifierRetriesEverything() {
	calls := 0
	suite.policy.Retryable = nil

	result, err := Do(context.Background(), suite.policy, flaky(&calls, errFatal, errFatal))
	suite.NoError(err)
	suite.Equal("ok", result)
	suite.Equal(3, calls)
}

func (suite *RetryTestSuite) TestSingleAttempt() {
	calls := 0
	suite.policy.Attempts = 0

	_, err := Do(context.Background(), suite.policy, flaky(&calls, errTransient))
	suite.ErrorIs(err, errTransient)
	suite.Equal(1, calls)
}

func (suite *RetryTestSuite) TestCancelledContextStopsWaiting() {
	ctx, cancel := context.WithCancel(context.Background())
	suite.policy.Delay = time.Hour
	suite.policy.OnRetry = func(int, error, time.Duration) { cancel() }

	calls := 0
	_, err := Do(ctx, suite.policy, flaky(&calls, errTransient, errTransient))
	suite.ErrorIs(err, context.Canceled)
	suite.Equal(1, calls)
}

func (suite *RetryTestSuite) TestDefaultPolicy() {
	policy := DefaultPolicy(isTransient)
	suite.Equal(3, policy.Attempts)
	suite.Equal(2*time.Second, policy.Delay)
	suite.NotNil(policy.Retryable)
}
