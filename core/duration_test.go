package core

import (
	"math"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDuration(t *testing.T) {
	cases := map[int64]string{
		0:        "0:00:00.00",
		9:        "0:00:00.00",
		10:       "0:00:00.01",
		999:      "0:00:00.99",
		1000:     "0:00:01.00",
		61010:    "0:01:01.01",
		3599990:  "0:59:59.99",
		3600000:  "1:00:00.00",
		45296780: "12:34:56.78",
		-1:       "0:00:00.00",
		-3600000: "0:00:00.00",
	}
	for ms, expected := range cases {
		assert.Equal(t, expected, FormatDuration(ms), "ms=%d", ms)
	}
}

func TestFormatDurationHoursAreNotCapped(t *testing.T) {
	assert.Equal(t, "125:00:00.00", FormatDuration(125*millisPerHour))
}

func TestParseDuration(t *testing.T) {
	cases := map[string]int64{
		"0:00:00.00":     0,
		"0:00:00.01":     10,
		"0:00:01.50":     1500,
		"1:02:03.45":     3723450,
		"12:34:56.78":    45296780,
		" 1 : 00 :00.00": 3600000,
		"100:00:00.00":   360000000,
	}
	for s, expected := range cases {
		ms, err := ParseDuration(s)
		require.NoError(t, err, s)
		assert.Equal(t, expected, ms, s)
	}
}

func TestParseDurationRejectsMalformedInput(t *testing.T) {
	inputs := []string{
		"",
		"garbage",
		"1:00:00",
		"1:00:00.00.00",
		"1:0a:00.00",
		"1::00.00",
		"-1:00:00.00",
		"+1:00:00.00",
		"1:00:00.",
		"99999999999999999999:00:00.00",
		"\x00:\x00:\x00.\x00",
	}
	for _, s := range inputs {
		assert.NotPanics(t, func() {
			ms, err := ParseDuration(s)
			assert.Error(t, err, "input %q", s)
			assert.True(t, errors.Is(err, ErrInvalidDuration), "input %q", s)
			assert.Equal(t, int64(0), ms)
		})
	}
}

func TestParseDurationRejectsValuesBeyondDurationRange(t *testing.T) {
	ms, err := ParseDuration("5000000:00:00.00")
	assert.True(t, errors.Is(err, ErrInvalidDuration))
	assert.Equal(t, int64(0), ms)

	ms, err = ParseDuration("2562047:47:16.85")
	require.NoError(t, err)
	assert.Equal(t, int64(9223372036850), ms)
	assert.True(t, MillisToDuration(ms) > 0)
}

func TestMillisToDurationClamps(t *testing.T) {
	assert.Equal(t, time.Duration(0), MillisToDuration(-1))
	assert.Equal(t, 1500*time.Millisecond, MillisToDuration(1500))
	assert.Equal(t, time.Duration(MaxDurationMillis)*time.Millisecond, MillisToDuration(math.MaxInt64))
	assert.True(t, MillisToDuration(math.MaxInt64) > 0)
}

func TestFormatParseRoundTrip(t *testing.T) {
	normalized := map[string]string{
		"0:00:00.00":   "0:00:00.00",
		"1:02:03.45":   "1:02:03.45",
		"01:02:03.45":  "1:02:03.45",
		"007:00:09.05": "7:00:09.05",
		"23:59:59.99":  "23:59:59.99",
	}
	for s, expected := range normalized {
		ms, err := ParseDuration(s)
		require.NoError(t, err)
		assert.Equal(t, expected, FormatDuration(ms))
	}

	for _, ms := range []int64{0, 10, 990, 1000, 59990, 3600000, 86399990} {
		parsed, err := ParseDuration(FormatDuration(ms))
		require.NoError(t, err)
		assert.Equal(t, ms, parsed)
	}
}
