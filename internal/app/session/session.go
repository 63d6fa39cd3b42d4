package session

import (
	"context"
	"fmt"
	"sync"
)

type ctxKey struct{}

// Session is the state of one pass through the pipeline.
type Session struct {
	ctx       context.Context
	cache     sync.Map
	actions   []Action
	mu        sync.Mutex
	committed bool
}

// New creates a Session bound to ctx.
func New(ctx context.Context) *Session {
	return &Session{ctx: ctx}
}

// FromContext returns the Session stored in ctx, or nil.
func FromContext(ctx context.Context) *Session {
	if ctx == nil {
		return nil
	}

	if s, ok := ctx.Value(ctxKey{}).(*Session); ok {
		return s
	}

	return nil
}

// WithContext stores s in ctx.
func WithContext(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// Context returns the context the Session was created with.
func (s *Session) Context() context.Context {
	return s.ctx
}

// GetOrFetch returns the value cached under key, calling fetchFn on the
// first request. Errors are not cached.
func (s *Session) GetOrFetch(key string, fetchFn func(ctx context.Context) (any, error)) (any, error) {
	if cached, ok := s.cache.Load(key); ok {
		return cached, nil
	}

	value, err := fetchFn(s.ctx)
	if err != nil {
		return nil, err
	}

	actual, _ := s.cache.LoadOrStore(key, value)

	return actual, nil
}

// Fetch is the typed form of GetOrFetch.
func Fetch[T any](s *Session, key string, fetchFn func(ctx context.Context) (T, error)) (T, error) {
	var zero T

	v, err := s.GetOrFetch(key, func(ctx context.Context) (any, error) {
		return fetchFn(ctx)
	})
	if err != nil {
		return zero, err
	}

	typed, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("session key %q holds %T", key, v)
	}

	return typed, nil
}

// FetchCtx memoizes fetchFn in the session stored in ctx. Without a session
// it simply calls fetchFn(ctx).
func FetchCtx[T any](ctx context.Context, key string, fetchFn func(ctx context.Context) (T, error)) (T, error) {
	s := FromContext(ctx)
	if s == nil {
		return fetchFn(ctx)
	}

	return Fetch(s, key, fetchFn)
}
