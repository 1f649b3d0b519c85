package customerrors

import (
	"errors"
	"fmt"
)

var (
	ErrNetwork          = errors.New("network unavailable")
	ErrProvider         = errors.New("provider rejected request")
	ErrEmptySeries      = errors.New("no data for symbol")
	ErrMalformedRecord  = errors.New("malformed record")
	ErrInsufficientData = errors.New("insufficient data")
	ErrInvalidInput     = errors.New("invalid input")
)

// ProviderError is a response the provider answered with but which carries no usable data.
// Field is the top-level key the provider used for its message ("Note", "Error Message",
// "Information"), or empty when the response shape itself was wrong.
type ProviderError struct {
	Field   string
	Message string
	Status  int
}

func (e *ProviderError) Error() string {
	switch {
	case e.Field != "":
		return fmt.Sprintf("provider %s: %s", e.Field, e.Message)
	case e.Status != 0:
		return fmt.Sprintf("provider status %d: %s", e.Status, e.Message)
	default:
		return "provider: " + e.Message
	}
}

func (e *ProviderError) Is(target error) bool { return target == ErrProvider }

// Kind names the class of err for logs and request records.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNetwork):
		return "network"
	case errors.Is(err, ErrProvider):
		return "provider"
	case errors.Is(err, ErrEmptySeries):
		return "empty"
	case errors.Is(err, ErrInsufficientData):
		return "insufficient"
	case errors.Is(err, ErrInvalidInput):
		return "invalid"
	case errors.Is(err, ErrMalformedRecord):
		return "malformed"
	default:
		return "internal"
	}
}
