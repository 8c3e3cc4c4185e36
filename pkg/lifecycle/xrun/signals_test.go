package xrun

import (
	"context"
	"errors"
	"os"
	"sync/atomic"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOnSignal_CallsForEachSignal(t *testing.T) {
	sigCh := make(chan os.Signal)
	ctx, cancel := context.WithCancel(withTestSigChan(context.Background(), sigCh))

	var calls atomic.Int32
	done := make(chan error, 1)
	go func() {
		done <- OnSignal([]os.Signal{syscall.SIGHUP}, func(_ context.Context, sig os.Signal) error {
			assert.Equal(t, syscall.SIGHUP, sig)
			calls.Add(1)
			return nil
		})(ctx)
	}()

	for range 3 {
		sigCh <- syscall.SIGHUP
	}
	require.Eventually(t, func() bool { return calls.Load() == 3 }, time.Second, 5*time.Millisecond)

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}

func TestOnSignal_ErrorStopsService(t *testing.T) {
	sigCh := make(chan os.Signal, 1)
	ctx := withTestSigChan(context.Background(), sigCh)
	boom := errors.New("roll failed")

	g, gctx := NewGroup(ctx)
	g.Go(OnSignal([]os.Signal{syscall.SIGHUP}, func(context.Context, os.Signal) error { return boom }))
	g.Go(WaitForDone())

	sigCh <- syscall.SIGHUP
	assert.ErrorIs(t, g.Wait(), boom)
	assert.Error(t, gctx.Err())
}

func TestOnSignal_NilFunc(t *testing.T) {
	assert.ErrorIs(t, OnSignal(nil, nil)(context.Background()), ErrNilFunc)
}
