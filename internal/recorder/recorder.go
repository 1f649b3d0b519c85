package recorder

import "time"

// Outcome values stored with each request.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// RequestEvent describes one served page request.
type RequestEvent struct {
	Time       time.Time `json:"time"`
	RequestID  string    `json:"request_id"`
	Page       string    `json:"page"`
	Symbols    []string  `json:"symbols"`
	Outcome    string    `json:"outcome"`
	ErrorKind  string    `json:"error_kind,omitempty"` // customerrors.Kind of the failure, empty on success
	Points     int       `json:"points"`
	Skipped    int       `json:"skipped"`
	DurationMS int64     `json:"duration_ms"`
}

// Recorder persists request events and reads back the latest ones.
type Recorder interface {
	RecordRequest(evt *RequestEvent) error
	Recent(limit int) ([]RequestEvent, error)
	Close() error
}
