package recorder

// NoopRecorder is used when no SQLite path is configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordRequest(_ *RequestEvent) error  { return nil }
func (n *NoopRecorder) Recent(_ int) ([]RequestEvent, error) { return nil, nil }
func (n *NoopRecorder) Close() error                         { return nil }
