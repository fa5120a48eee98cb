package application_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beatzboy/site/internal/application"
	"github.com/beatzboy/site/internal/domain/model"
)

func isClosed(ch <-chan struct{}) bool {
	select {
	case <-ch:
		return true
	default:
		return false
	}
}

func TestSplashGate_StartsLoading(t *testing.T) {
	clock := &fakeClock{}
	gate := application.NewSplashGate(2*time.Second, clock)

	require.NoError(t, gate.Activate())

	assert.Equal(t, model.SplashLoading, gate.State())
	assert.False(t, isClosed(gate.Ready()))
	assert.Equal(t, 1, clock.Pending())
}

func TestSplashGate_TransitionsAfterDelay(t *testing.T) {
	clock := &fakeClock{}
	gate := application.NewSplashGate(1500*time.Millisecond, clock)
	require.NoError(t, gate.Activate())

	clock.Advance(1499 * time.Millisecond)
	assert.Equal(t, model.SplashLoading, gate.State())

	clock.Advance(time.Millisecond)
	assert.Equal(t, model.SplashReady, gate.State())
	assert.True(t, isClosed(gate.Ready()))
}

func TestSplashGate_ReadyIsTerminal(t *testing.T) {
	clock := &fakeClock{}
	gate := application.NewSplashGate(time.Second, clock)
	require.NoError(t, gate.Activate())

	clock.Advance(time.Second)
	gate.Deactivate()
	clock.Advance(time.Hour)

	assert.Equal(t, model.SplashReady, gate.State())
}

func TestSplashGate_DeactivateBeforeExpiryCancelsTimer(t *testing.T) {
	clock := &fakeClock{}
	gate := application.NewSplashGate(2*time.Second, clock)
	require.NoError(t, gate.Activate())

	clock.Advance(time.Second)
	gate.Deactivate()
	clock.Advance(5 * time.Second)

	assert.Equal(t, model.SplashLoading, gate.State())
	assert.False(t, isClosed(gate.Ready()))
	assert.Equal(t, 0, clock.Pending())
}

func TestSplashGate_DeactivateIsIdempotent(t *testing.T) {
	gate := application.NewSplashGate(time.Second, &fakeClock{})

	gate.Deactivate()
	gate.Deactivate()
	require.NoError(t, gate.Activate())
	gate.Deactivate()

	assert.Equal(t, model.SplashLoading, gate.State())
}

func TestSplashGate_SecondActivateFails(t *testing.T) {
	clock := &fakeClock{}
	gate := application.NewSplashGate(time.Second, clock)

	require.NoError(t, gate.Activate())
	err := gate.Activate()

	assert.ErrorIs(t, err, application.ErrGateActivated)
	assert.Equal(t, 1, clock.Pending())
}

func TestSplashGate_ZeroDelayIsImmediatelyReady(t *testing.T) {
	clock := &fakeClock{}
	gate := application.NewSplashGate(0, clock)

	require.NoError(t, gate.Activate())

	assert.Equal(t, model.SplashReady, gate.State())
	assert.Equal(t, 0, clock.Pending())
}

func TestSplashGate_WaitReturnsOnReady(t *testing.T) {
	clock := &fakeClock{}
	gate := application.NewSplashGate(time.Second, clock)
	require.NoError(t, gate.Activate())

	done := make(chan error, 1)
	go func() { done <- gate.Wait(context.Background()) }()

	clock.Advance(time.Second)

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Wait did not return after the gate became ready")
	}
}

func TestSplashGate_WaitCanceledDeactivates(t *testing.T) {
	clock := &fakeClock{}
	gate := application.NewSplashGate(time.Second, clock)
	require.NoError(t, gate.Activate())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := gate.Wait(ctx)
	clock.Advance(time.Minute)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, model.SplashLoading, gate.State())
	assert.Equal(t, 0, clock.Pending())
}

func TestSplashGate_WaitBeforeActivate(t *testing.T) {
	gate := application.NewSplashGate(time.Second, &fakeClock{})

	err := gate.Wait(context.Background())

	assert.ErrorIs(t, err, application.ErrGateNotActivated)
}

func TestSplashGate_SystemClock(t *testing.T) {
	gate := application.NewSplashGate(10*time.Millisecond, nil)
	require.NoError(t, gate.Activate())

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	require.NoError(t, gate.Wait(ctx))
	assert.Equal(t, model.SplashReady, gate.State())
}

func TestSplashGate_ConcurrentDeactivateAndExpire(t *testing.T) {
	for range 50 {
		clock := &fakeClock{}
		gate := application.NewSplashGate(time.Second, clock)
		require.NoError(t, gate.Activate())

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			clock.Advance(time.Second)
		}()
		go func() {
			defer wg.Done()
			gate.Deactivate()
		}()
		wg.Wait()

		// Either outcome is valid; the ready channel must agree with the state.
		assert.Equal(t, gate.State() == model.SplashReady, isClosed(gate.Ready()))
	}
}
