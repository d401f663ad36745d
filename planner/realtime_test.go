// File: planner/realtime_test.go
package planner

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvalidationBridgeRefetchesOnEvent(t *testing.T) {
	backend := newFakeBackend()
	backend.addEntry("09:00", "10:00", 1)
	loader := NewDayLoader(backend, "day-1", editor, nil)
	require.NoError(t, loader.Load(context.Background()))
	baseline := backend.listCallCount()

	events := make(chan string)
	bridge := NewInvalidationBridge(events, loader)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- bridge.Run(ctx) }()

	// Another client mutated the day; the signal carries no detail.
	backend.addEntry("10:00", "11:00", 2)
	events <- "changed"

	waitFor(t, func() bool { return backend.listCallCount() == baseline+1 })
	waitFor(t, func() bool { return len(loader.Slots()) == 2 })

	events <- "changed"
	events <- "changed"
	waitFor(t, func() bool { return backend.listCallCount() == baseline+3 })

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("bridge did not stop after cancel")
	}
}

func TestInvalidationBridgeStopsOnClosedStream(t *testing.T) {
	backend := newFakeBackend()
	loader := NewDayLoader(backend, "day-1", editor, nil)
	require.NoError(t, loader.Load(context.Background()))

	events := make(chan string)
	bridge := NewInvalidationBridge(events, loader)

	done := make(chan error, 1)
	go func() { done <- bridge.Run(context.Background()) }()

	close(events)
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("bridge did not stop after stream close")
	}
}

func TestInvalidationBridgeSurvivesFailedRefresh(t *testing.T) {
	backend := newFakeBackend()
	backend.addEntry("09:00", "10:00", 1)
	loader := NewDayLoader(backend, "day-1", editor, nil)
	require.NoError(t, loader.Load(context.Background()))

	events := make(chan string)
	bridge := NewInvalidationBridge(events, loader)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go bridge.Run(ctx)

	backend.mu.Lock()
	backend.failListEntries = true
	backend.mu.Unlock()
	events <- "changed"

	// Previously loaded slots stay visible through the failure.
	waitFor(t, func() bool { return loader.Err() != "" })
	assert.Len(t, loader.Slots(), 1)

	backend.mu.Lock()
	backend.failListEntries = false
	backend.mu.Unlock()
	backend.addEntry("10:00", "11:00", 2)
	events <- "changed"
	waitFor(t, func() bool { return len(loader.Slots()) == 2 })
}
