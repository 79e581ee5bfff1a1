package domain

import "errors"

// FailureKind labels the category of a failed fetch cycle.
type FailureKind string

const (
	// FailureNetwork covers rejected requests and HTTP statuses outside 200–299.
	FailureNetwork FailureKind = "network"
	// FailureData covers malformed XML, a missing location node, or a
	// non-numeric index value.
	FailureData FailureKind = "data"
)

// FetchError categorizes a failed fetch so callers can label logs and metrics
// by failure kind instead of letting lookup faults propagate unhandled.
type FetchError struct {
	Kind FailureKind
	Err  error
}

func (e *FetchError) Error() string {
	return string(e.Kind) + " failure: " + e.Err.Error()
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// NewNetworkError wraps err as a network-kind fetch failure.
func NewNetworkError(err error) error {
	return &FetchError{Kind: FailureNetwork, Err: err}
}

// NewDataError wraps err as a data-kind fetch failure.
func NewDataError(err error) error {
	return &FetchError{Kind: FailureData, Err: err}
}

// KindOf extracts the failure kind from err. Uncategorized errors
// (e.g. context cancellation) report as network failures.
func KindOf(err error) FailureKind {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return FailureNetwork
}
