// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGo_DeliversValue(t *testing.T) {
	results := Go(context.Background(), func(context.Context) (string, error) {
		return "backup-1.bak", nil
	})

	res := <-results
	require.NoError(t, res.Err)
	assert.Equal(t, "backup-1.bak", res.Value)

	_, ok := <-results
	assert.False(t, ok, "channel is closed after the single result")
}

func TestGo_DeliversError(t *testing.T) {
	boom := errors.New("boom")
	res := <-Go(context.Background(), func(context.Context) (int, error) {
		return 3, boom
	})

	assert.ErrorIs(t, res.Err, boom)
	assert.Equal(t, 3, res.Value, "partial values are passed through")
}

func TestGo_CancelledBeforeStart(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	res := <-Go(ctx, func(context.Context) (int, error) {
		called = true
		return 1, nil
	})

	assert.ErrorIs(t, res.Err, context.Canceled)
	assert.False(t, called)
}

func TestGo_RecoversPanic(t *testing.T) {
	res := <-Go(context.Background(), func(context.Context) (int, error) {
		panic("index out of range")
	})

	assert.ErrorIs(t, res.Err, ErrTaskPanicked)
	assert.Contains(t, res.Err.Error(), "index out of range")
}

func TestGo_DoesNotBlockWithoutReader(t *testing.T) {
	done := make(chan struct{})
	_ = Go(context.Background(), func(context.Context) (int, error) {
		defer close(done)
		return 1, nil
	})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("task did not finish")
	}
}

func TestWait_ReturnsResult(t *testing.T) {
	res := Wait(context.Background(), Go(context.Background(), func(context.Context) (int, error) {
		return 42, nil
	}))

	require.NoError(t, res.Err)
	assert.Equal(t, 42, res.Value)
}

func TestWait_CollectsTaskErrorAfterCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	started := make(chan struct{})

	results := Go(ctx, func(ctx context.Context) (int, error) {
		close(started)
		<-ctx.Done()
		return 2, errors.Join(errors.New("restore interrupted"), ctx.Err())
	})

	<-started
	cancel()
	res := Wait(ctx, results)

	assert.ErrorIs(t, res.Err, context.Canceled)
	assert.Contains(t, res.Err.Error(), "restore interrupted")
	assert.Equal(t, 2, res.Value)
}

func TestWait_ClosedChannel(t *testing.T) {
	ch := make(chan Result[int])
	close(ch)

	res := Wait(context.Background(), ch)
	assert.ErrorIs(t, res.Err, ErrTaskPanicked)
}
