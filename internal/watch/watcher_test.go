package watch

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradelens/internal/journal"
	"tradelens/internal/tablescan"
)

// stubSource fails with ErrTableNotFound a fixed number of times before
// serving rows.
type stubSource struct {
	failures int32
	fetches  int32
}

func (s *stubSource) Fetch(ctx context.Context) ([]journal.Row, error) {
	atomic.AddInt32(&s.fetches, 1)
	if atomic.AddInt32(&s.failures, -1) >= 0 {
		return nil, tablescan.ErrTableNotFound
	}
	return []journal.Row{{journal.ColDate: "2024-01-02", journal.ColSymbol: "AAA"}}, nil
}

func TestRunOncePropagatesError(t *testing.T) {
	src := &stubSource{failures: 1}
	w := New(src, time.Millisecond, time.Millisecond, func(context.Context, []journal.Row) {})

	err := w.RunOnce(context.Background())
	assert.ErrorIs(t, err, tablescan.ErrTableNotFound)
}

func TestRunRetriesUntilTableAppears(t *testing.T) {
	src := &stubSource{failures: 3}
	got := make(chan []journal.Row, 1)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w := New(src, 5*time.Millisecond, 5*time.Millisecond, func(_ context.Context, rows []journal.Row) {
		got <- rows
	})

	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	select {
	case rows := <-got:
		require.Len(t, rows, 1)
	case <-time.After(2 * time.Second):
		t.Fatal("handler was never invoked")
	}
	assert.GreaterOrEqual(t, atomic.LoadInt32(&src.fetches), int32(4))

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}

func TestNotifyBurstCoalesces(t *testing.T) {
	src := &stubSource{}
	var runs int32

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w := New(src, 5*time.Millisecond, 50*time.Millisecond, func(context.Context, []journal.Row) {
		atomic.AddInt32(&runs, 1)
	})

	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// Wait for the initial run, then fire a burst of signals inside one
	// debounce window.
	require.Eventually(t, func() bool { return atomic.LoadInt32(&runs) == 1 }, time.Second, time.Millisecond)
	for i := 0; i < 5; i++ {
		w.Notify()
		time.Sleep(2 * time.Millisecond)
	}

	require.Eventually(t, func() bool { return atomic.LoadInt32(&runs) == 2 }, time.Second, 5*time.Millisecond)

	// The burst produced exactly one extra run.
	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, int32(2), atomic.LoadInt32(&runs))

	cancel()
	<-done
}
