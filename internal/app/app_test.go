package app

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRunSweeper(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var calls atomic.Int32
	var gotTTL atomic.Int64
	done := make(chan struct{})

	go func() {
		runSweeper(ctx, 5*time.Millisecond, time.Hour, func(ttl time.Duration) int {
			gotTTL.Store(int64(ttl))
			calls.Add(1)
			return 0
		})
		close(done)
	}()

	assert.Eventually(t, func() bool { return calls.Load() >= 2 }, time.Second, time.Millisecond)
	cancel()
	<-done
	assert.Equal(t, int64(time.Hour), gotTTL.Load())
}

func TestRunSweeper_Disabled(t *testing.T) {
	done := make(chan struct{})
	go func() {
		runSweeper(context.Background(), 0, time.Hour, func(time.Duration) int {
			t.Error("sweep must not be called")
			return 0
		})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("runSweeper with zero interval must return immediately")
	}
}

func TestDeps_CloseInReverseOrder(t *testing.T) {
	var order []int
	d := &deps{closers: []func() error{
		func() error { order = append(order, 1); return nil },
		func() error { order = append(order, 2); return assert.AnError },
		func() error { order = append(order, 3); return nil },
	}}

	d.close(newDiscardLogger())

	assert.Equal(t, []int{3, 2, 1}, order)
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
