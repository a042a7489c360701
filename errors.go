package authy

import (
	"errors"
	"fmt"

	"github.com/hansimehdi/AuthyClient/internal/api"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrMissingAPIKey is returned when the client is constructed
	// without an API key.
	ErrMissingAPIKey = errors.New("API key is required")

	// ErrInvalidInput is matched by ValidationError for errors.Is checks.
	ErrInvalidInput = errors.New("invalid input")
)

// AuthyError is implemented by all SDK errors.
type AuthyError interface {
	error
	AuthyError() // marker method
}

// ValidationError reports a locally rejected call input. No request is
// sent to the service when a ValidationError is returned.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

// Is implements errors.Is for sentinel error matching.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// AuthyError implements the AuthyError interface.
func (e *ValidationError) AuthyError() {}

// TransportError reports a failure to complete an HTTP exchange or to
// parse the response body. No result is fabricated when a
// TransportError is returned.
type TransportError struct {
	Op  string
	URL string
	Err error
}

func (e *TransportError) Error() string {
	if e.URL != "" {
		return fmt.Sprintf("%s: transport error for %s: %v", e.Op, e.URL, e.Err)
	}
	return fmt.Sprintf("%s: transport error: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// AuthyError implements the AuthyError interface.
func (e *TransportError) AuthyError() {}

// wrapTransport converts internal API errors to public TransportErrors.
func wrapTransport(op string, err error) error {
	if err == nil {
		return nil
	}

	var netErr *api.NetworkError
	if errors.As(err, &netErr) {
		return &TransportError{Op: op, URL: netErr.URL, Err: netErr.Err}
	}

	return &TransportError{Op: op, Err: err}
}
