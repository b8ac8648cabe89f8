package circuitbreaker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errDuplicate = errors.New("duplicate key")

func TestStoreGuard_PassesThroughResult(t *testing.T) {
	g := NewStoreGuard(StoreConfig(), time.Second)

	got, err := Call(context.Background(), g, "test.ok", func(ctx context.Context) (int, error) {
		_, hasDeadline := ctx.Deadline()
		assert.True(t, hasDeadline)
		return 42, nil
	})

	require.NoError(t, err)
	assert.Equal(t, 42, got)
}

func TestStoreGuard_TimeoutIsUnavailable(t *testing.T) {
	g := NewStoreGuard(StoreConfig(), 10*time.Millisecond)

	err := g.Do(context.Background(), "test.slow", func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStoreUnavailable)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestStoreGuard_CallerCancellationIsNotUnavailable(t *testing.T) {
	g := NewStoreGuard(StoreConfig(), time.Second)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := g.Do(ctx, "test.cancelled", func(ctx context.Context) error {
		return ctx.Err()
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, ErrStoreUnavailable)
}

func TestStoreGuard_OpenCircuitIsUnavailable(t *testing.T) {
	g := NewStoreGuard(StoreConfig(), time.Second)
	storeErr := errors.New("connection refused")

	for i := 0; i < 5; i++ {
		err := g.Do(context.Background(), "test.fail", func(context.Context) error { return storeErr })
		assert.ErrorIs(t, err, storeErr)
	}

	called := false
	err := g.Do(context.Background(), "test.fail", func(context.Context) error {
		called = true
		return nil
	})

	assert.False(t, called, "store must not be called while the circuit is open")
	assert.ErrorIs(t, err, ErrStoreUnavailable)
	assert.Equal(t, 30*time.Second, g.RetryAfter())
}

func TestStoreGuard_BenignErrorsDoNotTrip(t *testing.T) {
	g := NewStoreGuard(StoreConfig(), time.Second, errDuplicate)

	for i := 0; i < 10; i++ {
		err := g.Do(context.Background(), "test.dup", func(context.Context) error { return errDuplicate })
		assert.ErrorIs(t, err, errDuplicate)
	}

	assert.False(t, g.cb.IsOpen())
	assert.Equal(t, time.Second, g.RetryAfter())
}

func TestStoreGuard_NilRunsDirectly(t *testing.T) {
	var g *StoreGuard

	got, err := Call(context.Background(), g, "test.nil", func(context.Context) (string, error) {
		return "direct", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "direct", got)
	assert.Equal(t, time.Duration(0), g.RetryAfter())
}

func TestCall_NilInterface(t *testing.T) {
	got, err := Call[int](context.Background(), nil, "test.nil", func(context.Context) (int, error) {
		return 7, nil
	})

	require.NoError(t, err)
	assert.Equal(t, 7, got)
}
