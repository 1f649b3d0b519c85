package trace

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type ctxKey int

const requestIDKey ctxKey = 0

// Header is the HTTP header used to accept and echo request IDs.
const Header = "X-Request-ID"

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

func RequestID(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}

// MaxRequestIDLength bounds client-supplied request IDs.
const MaxRequestIDLength = 64

func NewRequestID() string {
	return uuid.NewString()
}

// FromHeader returns the client's request ID when it is short and made of
// letters, digits, '-', '_' or '.'; anything else is replaced by a fresh ID.
func FromHeader(v string) string {
	if v == "" || len(v) > MaxRequestIDLength {
		return NewRequestID()
	}
	for _, r := range v {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_', r == '.':
		default:
			return NewRequestID()
		}
	}
	return v
}

// Logger returns the global logger tagged with the request ID from ctx.
func Logger(ctx context.Context) *zerolog.Logger {
	id := RequestID(ctx)
	if id == "" {
		id = "-"
	}
	l := log.With().Str("request_id", id).Logger()
	return &l
}
