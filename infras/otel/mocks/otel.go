package mocks

import (
	"context"
	"sync"

	"tie/infras/otel"
)

// Recorder is an otel.Otel that keeps span names and traced errors in memory instead of exporting them.
type Recorder struct {
	mu     sync.Mutex
	spans  []string
	errors []error
}

// NewScope implements otel.Otel.
func (r *Recorder) NewScope(ctx context.Context, _, spanName string) (context.Context, otel.Scope) {
	r.mu.Lock()
	r.spans = append(r.spans, spanName)
	r.mu.Unlock()

	return ctx, &scope{recorder: r}
}

// Spans returns the span names opened so far, in order.
func (r *Recorder) Spans() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]string(nil), r.spans...)
}

// Errors returns every error passed to TraceError or a non-nil TraceIfError.
func (r *Recorder) Errors() []error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]error(nil), r.errors...)
}

func (r *Recorder) record(err error) {
	r.mu.Lock()
	r.errors = append(r.errors, err)
	r.mu.Unlock()
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

// NewOtel returns a recorder for tests that do not inspect spans.
func NewOtel() otel.Otel {
	return NewRecorder()
}
