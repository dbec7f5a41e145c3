package provider

import (
	"context"
	stderrors "errors"
	"io"
	"net"
)

// isNetworkError reports whether err comes from the transport rather than
// from the upstream's answer.
func isNetworkError(err error) bool {
	if err == nil {
		return false
	}

	if stderrors.Is(err, context.DeadlineExceeded) ||
		stderrors.Is(err, io.EOF) ||
		stderrors.Is(err, io.ErrUnexpectedEOF) {
		return true
	}

	var netErr net.Error

	return stderrors.As(err, &netErr)
}
