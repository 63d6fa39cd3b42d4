package session

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromContext(t *testing.T) {
	assert.Nil(t, FromContext(nil))
	assert.Nil(t, FromContext(context.Background()))

	s := New(context.Background())
	ctx := WithContext(context.Background(), s)

	assert.Same(t, s, FromContext(ctx))
}

func TestGetOrFetch_Memoizes(t *testing.T) {
	s := New(context.Background())

	var calls int32

	fetch := func(_ context.Context) (any, error) {
		atomic.AddInt32(&calls, 1)
		return "clear", nil
	}

	for range 3 {
		v, err := s.GetOrFetch("weather", fetch)
		require.NoError(t, err)
		assert.Equal(t, "clear", v)
	}

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestGetOrFetch_DoesNotCacheErrors(t *testing.T) {
	s := New(context.Background())
	boom := errors.New("boom")

	_, err := s.GetOrFetch("k", func(context.Context) (any, error) { return nil, boom })
	require.ErrorIs(t, err, boom)

	v, err := s.GetOrFetch("k", func(context.Context) (any, error) { return 7, nil })
	require.NoError(t, err)
	assert.Equal(t, 7, v)
}

func TestGetOrFetch_Concurrent(t *testing.T) {
	s := New(context.Background())

	var wg sync.WaitGroup

	results := make([]any, 20)

	for i := range results {
		wg.Go(func() {
			v, err := s.GetOrFetch("k", func(context.Context) (any, error) { return i, nil })
			if err == nil {
				results[i] = v
			}
		})
	}

	wg.Wait()

	for _, r := range results {
		assert.Equal(t, results[0], r)
	}
}

func TestFetch_Typed(t *testing.T) {
	s := New(context.Background())

	n, err := Fetch(s, "n", func(context.Context) (int, error) { return 42, nil })
	require.NoError(t, err)
	assert.Equal(t, 42, n)

	_, err = Fetch(s, "n", func(context.Context) (string, error) { return "x", nil })
	assert.Error(t, err)
}

func TestFetchCtx_WithoutSession(t *testing.T) {
	var calls int

	fetch := func(context.Context) (string, error) {
		calls++
		return "v", nil
	}

	for range 2 {
		v, err := FetchCtx(context.Background(), "k", fetch)
		require.NoError(t, err)
		assert.Equal(t, "v", v)
	}

	assert.Equal(t, 2, calls)

	ctx := WithContext(context.Background(), New(context.Background()))
	calls = 0

	for range 2 {
		_, err := FetchCtx(ctx, "k", fetch)
		require.NoError(t, err)
	}

	assert.Equal(t, 1, calls)
}

type recorder struct {
	mu  sync.Mutex
	log []string
}

func (r *recorder) add(s string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.log = append(r.log, s)
}

func (r *recorder) action(name string, fail bool) Action {
	return NewAction(name,
		func(context.Context) error {
			if fail {
				return errors.New(name + " broke")
			}

			r.add("exec " + name)

			return nil
		},
		func(context.Context) error {
			r.add("undo " + name)
			return nil
		},
	)
}

func TestCommit_RunsInOrder(t *testing.T) {
	s := New(context.Background())
	rec := &recorder{}

	require.NoError(t, s.AddAction(rec.action("favorite", false)))
	require.NoError(t, s.AddAction(rec.action("history", false)))
	assert.Len(t, s.Actions(), 2)

	assert.False(t, s.Committed())
	require.NoError(t, s.Commit(context.Background()))
	assert.True(t, s.Committed())
	assert.Equal(t, []string{"exec favorite", "exec history"}, rec.log)

	assert.ErrorIs(t, s.Commit(context.Background()), ErrAlreadyCommitted)
	assert.ErrorIs(t, s.AddAction(rec.action("late", false)), ErrAlreadyCommitted)
}

func TestCommit_RollsBackInReverse(t *testing.T) {
	s := New(context.Background())
	rec := &recorder{}

	require.NoError(t, s.AddAction(rec.action("a", false)))
	require.NoError(t, s.AddAction(rec.action("b", false)))
	require.NoError(t, s.AddAction(rec.action("c", true)))

	err := s.Commit(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), `action "c" failed`)
	assert.False(t, s.Committed())

	assert.Equal(t, []string{"exec a", "exec b", "undo b", "undo a"}, rec.log)
}

func TestCommit_JoinsRollbackErrors(t *testing.T) {
	s := New(context.Background())
	undoErr := errors.New("cannot undo")

	require.NoError(t, s.AddAction(NewAction("a",
		func(context.Context) error { return nil },
		func(context.Context) error { return undoErr },
	)))
	require.NoError(t, s.AddAction(NewAction("b",
		func(context.Context) error { return errors.New("b broke") },
		nil,
	)))

	err := s.Commit(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, undoErr)
}

func TestNewAction_NilRollback(t *testing.T) {
	a := NewAction("noop", func(context.Context) error { return nil }, nil)

	assert.NoError(t, a.Rollback(context.Background()))
	assert.Equal(t, "noop", a.Description())
}
