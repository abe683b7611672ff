package mocks

import (
	"context"
	"journal/infras/otel"
	"sync"
)

// Recorder is an otel.Otel that exports nothing and keeps every scope it opened.
type Recorder struct {
	mu     sync.Mutex
	scopes []*Scope
}

func (r *Recorder) NewScope(ctx context.Context, _, spanName string) (context.Context, otel.Scope) {
	scope := NewScope()
	scope.name = spanName

	r.mu.Lock()
	r.scopes = append(r.scopes, scope)
	r.mu.Unlock()

	return ctx, scope
}

func (r *Recorder) Shutdown(_ context.Context) error {
	return nil
}

// Scopes returns the opened scopes in order.
func (r *Recorder) Scopes() []*Scope {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]*Scope(nil), r.scopes...)
}

// Find returns the last scope opened under spanName, or nil.
func (r *Recorder) Find(spanName string) *Scope {
	scopes := r.Scopes()

	for i := len(scopes) - 1; i >= 0; i-- {
		if scopes[i].name == spanName {
			return scopes[i]
		}
	}

	return nil
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

// NewOtel returns a tracer that records scopes in memory only.
func NewOtel() otel.Otel {
	return NewRecorder()
}
