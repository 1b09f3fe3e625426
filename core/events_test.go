package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nextEvent(t *testing.T, ch <-chan Event, eventType EventType) Event {
	timeout := time.After(2 * time.Second)
	for {
		select {
		case e, ok := <-ch:
			require.True(t, ok, "event channel closed while waiting for %s", eventType)
			if e.Type == eventType {
				return e
			}
		case <-timeout:
			require.FailNow(t, "timed out waiting for event", "%s", eventType)
		}
	}
}

func TestTicksArriveWhileRunning(t *testing.T) {
	e := NewEngine(NewSystemClock(), Config{TickInterval: time.Millisecond})
	defer e.Close()
	events := e.Subscribe(64)

	require.NoError(t, e.Start())
	assert.Equal(t, PhaseRunning, nextEvent(t, events, EventPhaseChange).Phase)

	tick := nextEvent(t, events, EventElapsedTick)
	assert.True(t, tick.ElapsedMillis >= 0)
	assert.Equal(t, PhaseRunning, tick.Phase)
}

func TestNoTicksAfterPause(t *testing.T) {
	e := NewEngine(NewSystemClock(), Config{TickInterval: time.Millisecond})
	defer e.Close()
	events := e.Subscribe(1024)

	require.NoError(t, e.Start())
	nextEvent(t, events, EventElapsedTick)
	require.NoError(t, e.Pause())

	// Pause waits for the ticker goroutine, so everything queued from
	// here on was emitted before Pause returned.
	for drained := false; !drained; {
		select {
		case <-events:
		default:
			drained = true
		}
	}

	time.Sleep(20 * time.Millisecond)
	select {
	case ev := <-events:
		assert.Failf(t, "unexpected event after pause", "%+v", ev)
	default:
	}
}

func TestLedgerEventsCarryLaps(t *testing.T) {
	e := NewEngine(NewSystemClock(), Config{})
	defer e.Close()
	events := e.Subscribe(16)

	require.NoError(t, e.Start())
	_, err := e.Ledger().RecordLap("a", "b", time.Now(), time.Now())
	require.NoError(t, err)

	ev := nextEvent(t, events, EventLedgerChange)
	require.Len(t, ev.Laps, 1)
	assert.Equal(t, "a", ev.Laps[0].Category)
}

func TestCloseClosesSubscriptions(t *testing.T) {
	e := NewEngine(NewSystemClock(), Config{TickInterval: time.Millisecond})
	events := e.Subscribe(1)
	require.NoError(t, e.Start())

	e.Close()

	for range events {
	}
	// Closing twice and emitting after close are both harmless.
	e.Close()
	assert.Equal(t, PhaseRunning, e.Phase())
	assert.NoError(t, e.Pause())
}

func TestSubscribeDropsWhenFull(t *testing.T) {
	e := NewEngine(NewSystemClock(), Config{})
	events := e.Subscribe(1)

	require.NoError(t, e.Start())
	require.NoError(t, e.Pause())
	e.Reset()

	e.Close()
	var received []Event
	for ev := range events {
		received = append(received, ev)
	}
	require.Len(t, received, 1)
	assert.Equal(t, PhaseRunning, received[0].Phase)
}

func TestTickerStopsOnRequest(t *testing.T) {
	calls := make(chan struct{}, 100)
	ticker := NewTicker(time.Millisecond, func() {
		select {
		case calls <- struct{}{}:
		default:
		}
	})
	ticker.Start()
	<-calls

	ticker.Stop()
	select {
	case <-ticker.Awaiter().Done():
	case <-time.After(2 * time.Second):
		require.FailNow(t, "ticker did not stop")
	}
	assert.NoError(t, ticker.Awaiter().Err())
}
