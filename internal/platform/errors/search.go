package errors

// Search-index specific helpers for mapping transport and HTTP-level failures
// to project ErrorCodes and retry semantics

import (
	"context"
	stderrs "errors"
	"fmt"
	"net"
	"net/http"
	"syscall"
)

// RetryableStatus reports whether an HTTP status from the search index
// represents a transient condition worth retrying
func RetryableStatus(status int) bool {
	switch status {
	case http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}

// SearchStatusCode maps an HTTP status from the search index to an ErrorCode.
// 2xx maps to Unknown with ok=false; callers should not be asking about those
func SearchStatusCode(status int) (ErrorCode, bool) {
	if status >= 200 && status < 300 {
		return ErrorCodeUnknown, false
	}
	if RetryableStatus(status) {
		return ErrorCodeUnavailable, true
	}
	// 400 malformed query, 401/403 auth, 404 missing index: all fatal
	return ErrorCodeSearchFatal, true
}

// FromSearchStatus wraps a non-2xx search response into an *Error with the
// mapped code. Returns nil for 2xx
func FromSearchStatus(status int, msg string) error {
	code, ok := SearchStatusCode(status)
	if !ok {
		return nil
	}
	return Newf(code, "%s: status %d", msg, status)
}

// FromSearchTransport wraps a client-side transport failure (dial, reset,
// timeout) as Unavailable. These are transient by definition: the query never
// reached the index or the index never answered
func FromSearchTransport(err error, msg string) error {
	if err == nil {
		return nil
	}
	return Wrap(err, ErrorCodeUnavailable, msg)
}

// FromSearchTransportf is the formatted variant of FromSearchTransport
func FromSearchTransportf(err error, format string, a ...any) error {
	if err == nil {
		return nil
	}
	return Wrap(err, ErrorCodeUnavailable, fmt.Sprintf(format, a...))
}

// IsTransportError reports whether err looks like a network-level failure
// (as opposed to a response the index actually produced)
func IsTransportError(err error) bool {
	if err == nil {
		return false
	}
	root := Root(err)

	var netErr net.Error
	if stderrs.As(root, &netErr) {
		return true
	}
	var opErr *net.OpError
	if stderrs.As(root, &opErr) {
		return true
	}
	switch {
	case stderrs.Is(root, syscall.ECONNREFUSED),
		stderrs.Is(root, syscall.ECONNRESET),
		stderrs.Is(root, syscall.EPIPE),
		stderrs.Is(root, context.DeadlineExceeded):
		return true
	}
	return false
}

// IsRetryable reports whether a search error represents a transient condition
// worth retrying. Cancellation of the overall request context is never
// retryable; the caller's budget is gone
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	if stderrs.Is(err, context.Canceled) {
		return false
	}
	if e, ok := As(err); ok {
		switch e.Code() {
		case ErrorCodeUnavailable:
			return true
		case ErrorCodeSearchFatal, ErrorCodeTimeout, ErrorCodeNotFound:
			return false
		}
	}
	return IsTransportError(err)
}
