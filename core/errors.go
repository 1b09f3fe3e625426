package core

import (
	"fmt"

	"github.com/pkg/errors"
)

// Usage errors. They are returned synchronously and leave the
// engine state untouched.
var (
	ErrAlreadyRunning   = errors.New("timer is already running")
	ErrNotRunning       = errors.New("timer is not running")
	ErrNotStarted       = errors.New("timer must be running to record a lap")
	ErrAlreadyRecovered = errors.New("engine state has already been recovered")
)

// ErrNegativeInterval is matched by `*NegativeIntervalError`.
var ErrNegativeInterval = errors.New("negative lap interval")

// ErrInvalidDuration is returned by `ParseDuration` for malformed input.
var ErrInvalidDuration = errors.New("invalid duration")

// NegativeIntervalError reports a lap whose raw interval was negative.
// The lap has been recorded with a zero interval when this is returned.
type NegativeIntervalError struct {
	Index          int
	RawMillis      int64
	ElapsedMillis  int64
	BoundaryMillis int64
}

func (e *NegativeIntervalError) Error() string {
	return fmt.Sprintf("lap %d: interval %dms clamped to 0 (elapsed %dms, boundary %dms)",
		e.Index, e.RawMillis, e.ElapsedMillis, e.BoundaryMillis)
}

func (e *NegativeIntervalError) Is(target error) bool {
	return target == ErrNegativeInterval
}
