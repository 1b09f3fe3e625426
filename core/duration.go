package core

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const (
	millisPerHour   int64 = 3600000
	millisPerMinute int64 = 60000
	millisPerSecond int64 = 1000

	// Upper bound for each parsed component. Keeps the reconstructed
	// value well inside int64.
	maxDurationComponent int64 = 1 << 40
)

// MaxDurationMillis is the largest millisecond count a time.Duration
// can hold.
const MaxDurationMillis = math.MaxInt64 / int64(time.Millisecond)

// MillisToDuration converts ms to a time.Duration clamped to
// [0, MaxDurationMillis].
func MillisToDuration(ms int64) time.Duration {
	if ms < 0 {
		return 0
	}
	if ms > MaxDurationMillis {
		ms = MaxDurationMillis
	}
	return time.Duration(ms) * time.Millisecond
}

// FormatDuration renders ms as H:MM:SS.cc.
// Hours are not padded; cc is centiseconds. Negative input renders as
// 0:00:00.00.
func FormatDuration(ms int64) string {
	if ms < 0 {
		ms = 0
	}
	hours := ms / millisPerHour
	minutes := (ms / millisPerMinute) % 60
	seconds := (ms / millisPerSecond) % 60
	centis := (ms % 1000) / 10
	return fmt.Sprintf("%d:%02d:%02d.%02d", hours, minutes, seconds, centis)
}

// ParseDuration is the inverse of `FormatDuration`.
// The input must have exactly four unsigned numeric components
// separated by ':' and '.'. Callers importing foreign data substitute 0
// when an error is returned.
func ParseDuration(s string) (int64, error) {
	tokens := strings.Split(strings.ReplaceAll(s, ".", ":"), ":")
	if len(tokens) != 4 {
		return 0, errors.Wrapf(ErrInvalidDuration, "%q: expected 4 components, got %d", s, len(tokens))
	}

	var parts [4]int64
	for i, token := range tokens {
		token = strings.TrimSpace(token)
		if token == "" || token[0] == '+' || token[0] == '-' {
			return 0, errors.Wrapf(ErrInvalidDuration, "%q: component %d is not a number", s, i+1)
		}
		v, err := strconv.ParseInt(token, 10, 64)
		if err != nil || v > maxDurationComponent {
			return 0, errors.Wrapf(ErrInvalidDuration, "%q: component %d is not a number", s, i+1)
		}
		parts[i] = v
	}

	total := parts[0]*millisPerHour +
		parts[1]*millisPerMinute +
		parts[2]*millisPerSecond +
		parts[3]*10
	if total > MaxDurationMillis {
		return 0, errors.Wrapf(ErrInvalidDuration, "%q: exceeds the longest representable duration", s)
	}
	return total, nil
}
