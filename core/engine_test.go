/*
Copyright © 2026 Lapwatch Contributors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package core

import (
	"testing"
	"time"

	"lapwatch/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine() (*Engine, *utils.TestClock) {
	tc := utils.NewTestClock()
	return NewEngine(tc, Config{}), tc
}

func TestIdleEngine(t *testing.T) {
	e, tc := newTestEngine()
	tc.Advance(time.Hour)

	assert.Equal(t, PhaseIdle, e.Phase())
	assert.Equal(t, time.Duration(0), e.Elapsed())
	assert.Equal(t, 0, e.Ledger().Len())
}

func TestStartPauseAccumulatesRunningTime(t *testing.T) {
	e, tc := newTestEngine()
	segments := []time.Duration{5 * time.Second, 3 * time.Second, 250 * time.Millisecond, 0, time.Hour}
	var expected time.Duration

	for _, segment := range segments {
		require.NoError(t, e.Start())
		tc.Advance(segment)
		require.NoError(t, e.Pause())
		expected += segment

		// Paused time is never counted.
		tc.Advance(time.Minute)
		assert.Equal(t, expected, e.Elapsed())
	}
}

func TestElapsedWhileRunning(t *testing.T) {
	e, tc := newTestEngine()
	require.NoError(t, e.Start())
	tc.Advance(1500 * time.Millisecond)

	assert.Equal(t, 1500*time.Millisecond, e.Elapsed())
	assert.Equal(t, PhaseRunning, e.Phase())

	tc.Advance(500 * time.Millisecond)
	assert.Equal(t, 2*time.Second, e.Elapsed())
}

func TestStartWhileRunning(t *testing.T) {
	e, tc := newTestEngine()
	require.NoError(t, e.Start())
	tc.Advance(time.Second)

	assert.Equal(t, ErrAlreadyRunning, e.Start())
	tc.Advance(time.Second)
	assert.Equal(t, 2*time.Second, e.Elapsed())
}

func TestPauseWhenNotRunning(t *testing.T) {
	e, tc := newTestEngine()
	assert.Equal(t, ErrNotRunning, e.Pause())
	assert.Equal(t, PhaseIdle, e.Phase())

	require.NoError(t, e.Start())
	tc.Advance(time.Second)
	require.NoError(t, e.Pause())

	assert.Equal(t, ErrNotRunning, e.Pause())
	assert.Equal(t, PhasePaused, e.Phase())
	assert.Equal(t, time.Second, e.Elapsed())
}

func TestResetWhileRunning(t *testing.T) {
	e, tc := newTestEngine()
	require.NoError(t, e.Start())
	tc.Advance(3 * time.Second)
	_, err := e.Ledger().RecordLap("work", "", tc.Wall(), tc.Wall())
	require.NoError(t, err)
	require.NoError(t, e.Start())
	tc.Advance(time.Second)

	e.Reset()

	assert.Equal(t, PhaseIdle, e.Phase())
	assert.Equal(t, time.Duration(0), e.Elapsed())
	assert.Equal(t, time.Duration(0), e.LastLapBoundary())
	assert.Empty(t, e.Ledger().Laps())
	assert.Equal(t, int64(0), e.Ledger().LastCumulative())
}

func TestStopwatchScenario(t *testing.T) {
	e, tc := newTestEngine()

	require.NoError(t, e.Start())
	tc.Advance(5000 * time.Millisecond)
	require.NoError(t, e.Pause())
	assert.Equal(t, 5000*time.Millisecond, e.Elapsed())

	require.NoError(t, e.Start())
	tc.Advance(3000 * time.Millisecond)
	require.NoError(t, e.Pause())
	assert.Equal(t, 8000*time.Millisecond, e.Elapsed())

	require.NoError(t, e.Start())
	lap, err := e.Ledger().RecordLap("work", "first", tc.Wall(), tc.Wall())
	require.NoError(t, err)
	assert.Equal(t, 1, lap.Index)
	assert.Equal(t, int64(8000), lap.IntervalMillis)
	assert.Equal(t, int64(8000), lap.CumulativeMillis)

	e.Reset()
	assert.Equal(t, time.Duration(0), e.Elapsed())
	assert.Empty(t, e.Ledger().Laps())

	require.NoError(t, e.Start())
	tc.Advance(time.Second)
	lap, err = e.Ledger().RecordLap("work", "again", tc.Wall(), tc.Wall())
	require.NoError(t, err)
	assert.Equal(t, 1, lap.Index)
	assert.Equal(t, int64(1000), lap.CumulativeMillis)
}

func TestRecoverRunningCreditsNoDeadTime(t *testing.T) {
	for _, dead := range []time.Duration{0, time.Millisecond, time.Hour, 240 * time.Hour} {
		e, tc := newTestEngine()
		tc.Advance(dead)

		require.NoError(t, e.RecoverFromPersisted(true, 5*time.Second, 2*time.Second))

		assert.Equal(t, PhaseRunning, e.Phase())
		assert.Equal(t, 5*time.Second, e.Elapsed(), "dead time %v", dead)
		assert.Equal(t, 2*time.Second, e.LastLapBoundary())

		tc.Advance(time.Second)
		assert.Equal(t, 6*time.Second, e.Elapsed())
	}
}

func TestRecoverNotRunning(t *testing.T) {
	e, tc := newTestEngine()
	require.NoError(t, e.RecoverFromPersisted(false, 4*time.Second, time.Second))
	tc.Advance(time.Hour)

	assert.Equal(t, PhasePaused, e.Phase())
	assert.Equal(t, 4*time.Second, e.Elapsed())

	pristine, _ := newTestEngine()
	require.NoError(t, pristine.RecoverFromPersisted(false, 0, 0))
	assert.Equal(t, PhaseIdle, pristine.Phase())
}

func TestRecoverWithLapsAndZeroElapsedIsPaused(t *testing.T) {
	e, _ := newTestEngine()
	e.Ledger().Restore([]Lap{{Index: 1}}, "epoch-1")
	require.NoError(t, e.RecoverFromPersisted(false, 0, 0))

	assert.Equal(t, PhasePaused, e.Phase())
	assert.Equal(t, "epoch-1", e.Ledger().Epoch())
}

func TestRecoverOnlyOnce(t *testing.T) {
	e, _ := newTestEngine()
	require.NoError(t, e.RecoverFromPersisted(false, time.Second, 0))

	assert.Equal(t, ErrAlreadyRecovered, e.RecoverFromPersisted(true, time.Hour, 0))
	assert.Equal(t, PhasePaused, e.Phase())
	assert.Equal(t, time.Second, e.Elapsed())
}

func TestRecoverClampsNegativeValues(t *testing.T) {
	e, _ := newTestEngine()
	require.NoError(t, e.RecoverFromPersisted(false, -time.Second, -time.Second))

	assert.Equal(t, time.Duration(0), e.Elapsed())
	assert.Equal(t, time.Duration(0), e.LastLapBoundary())
}

func TestCheckpointIncludesInFlightSegment(t *testing.T) {
	e, tc := newTestEngine()
	require.NoError(t, e.Start())
	tc.Advance(2 * time.Second)
	_, err := e.Ledger().RecordLap("a", "", tc.Wall(), tc.Wall())
	require.NoError(t, err)
	require.NoError(t, e.Start())
	tc.Advance(700 * time.Millisecond)

	cp := e.Checkpoint()

	assert.True(t, cp.Running)
	assert.Equal(t, 2700*time.Millisecond, cp.Elapsed)
	assert.Equal(t, 2*time.Second, cp.LastLapBoundary)
	assert.Equal(t, e.Ledger().Epoch(), cp.Epoch)
	require.Len(t, cp.Laps, 1)

	// Recovering from the checkpoint loses nothing and adds nothing.
	restored, restoredClock := newTestEngine()
	restoredClock.Advance(time.Hour)
	restored.Ledger().Restore(cp.Laps, cp.Epoch)
	require.NoError(t, restored.RecoverFromPersisted(cp.Running, cp.Elapsed, cp.LastLapBoundary))
	assert.Equal(t, 2700*time.Millisecond, restored.Elapsed())

	restoredClock.Advance(300 * time.Millisecond)
	lap, err := restored.Ledger().RecordLap("b", "", restoredClock.Wall(), restoredClock.Wall())
	require.NoError(t, err)
	assert.Equal(t, 2, lap.Index)
	assert.Equal(t, int64(1000), lap.IntervalMillis)
	assert.Equal(t, int64(3000), lap.CumulativeMillis)
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "idle", PhaseIdle.String())
	assert.Equal(t, "running", PhaseRunning.String())
	assert.Equal(t, "paused", PhasePaused.String())
	assert.Equal(t, "unknown", Phase(42).String())
}
