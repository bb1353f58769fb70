package httpjson

import "fmt"

// TransportError is a network or HTTP level failure: connection errors,
// timeouts, or a non-2xx status. StatusCode is zero when no response was
// received at all.
type TransportError struct {
	StatusCode int
	cause      error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("transport: unexpected status %d (%v)", e.StatusCode, e.cause)
	}
	return fmt.Sprintf("transport: %v", e.cause)
}

func (e *TransportError) Unwrap() error {
	return e.cause
}
