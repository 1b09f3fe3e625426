package persistence

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"

	"lapwatch/core"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// lapFormatVersion is stored in every lap map under "v". Fields are
// listed explicitly so renaming a Go field never changes the format.
const lapFormatVersion = 1

const (
	lapFieldVersion          = "v"
	lapFieldIndex            = "index"
	lapFieldDate             = "date"
	lapFieldIntervalMillis   = "intervalMillis"
	lapFieldCumulativeMillis = "cumulativeMillis"
	lapFieldStartTime        = "startTime"
	lapFieldRecordTime       = "recordTime"
	lapFieldRecordUnixMillis = "recordUnixMillis"
	lapFieldCategory         = "category"
	lapFieldDetail           = "detail"
)

func lapToMap(lap core.Lap) map[string]interface{} {
	return map[string]interface{}{
		lapFieldVersion:          lapFormatVersion,
		lapFieldIndex:            lap.Index,
		lapFieldDate:             lap.Date,
		lapFieldIntervalMillis:   lap.IntervalMillis,
		lapFieldCumulativeMillis: lap.CumulativeMillis,
		lapFieldStartTime:        lap.StartTime,
		lapFieldRecordTime:       lap.RecordTime,
		lapFieldRecordUnixMillis: lap.RecordUnixMillis,
		lapFieldCategory:         lap.Category,
		lapFieldDetail:           lap.Detail,
	}
}

var lapLogFields = log.Fields{"module": "lap_records"}

// lapFromMap reads the known fields of m. Missing or mistyped fields
// are left at their zero value and durations are clamped to
// [0, core.MaxDurationMillis].
func lapFromMap(m map[string]interface{}) core.Lap {
	return core.Lap{
		Index:            int(int64Field(m, lapFieldIndex)),
		Date:             stringField(m, lapFieldDate),
		IntervalMillis:   millisField(m, lapFieldIntervalMillis),
		CumulativeMillis: millisField(m, lapFieldCumulativeMillis),
		StartTime:        stringField(m, lapFieldStartTime),
		RecordTime:       stringField(m, lapFieldRecordTime),
		RecordUnixMillis: int64Field(m, lapFieldRecordUnixMillis),
		Category:         stringField(m, lapFieldCategory),
		Detail:           stringField(m, lapFieldDetail),
	}
}

// EncodeLaps renders laps as a JSON array of lap maps.
func EncodeLaps(laps []core.Lap) (string, error) {
	maps := make([]map[string]interface{}, 0, len(laps))
	for _, lap := range laps {
		maps = append(maps, lapToMap(lap))
	}
	data, err := json.Marshal(maps)
	if err != nil {
		return "", errors.Wrap(err, "encode laps")
	}
	return string(data), nil
}

// DecodeLaps parses the output of `EncodeLaps`. An empty string is an
// empty list.
func DecodeLaps(s string) ([]core.Lap, error) {
	if s == "" {
		return nil, nil
	}
	decoder := json.NewDecoder(bytes.NewBufferString(s))
	decoder.UseNumber()

	var maps []map[string]interface{}
	if err := decoder.Decode(&maps); err != nil {
		return nil, errors.Wrap(err, "decode laps")
	}

	laps := make([]core.Lap, 0, len(maps))
	for _, m := range maps {
		laps = append(laps, lapFromMap(m))
	}
	return laps, nil
}

func int64Field(m map[string]interface{}, key string) int64 {
	switch v := m[key].(type) {
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return n
		}
		if f, err := v.Float64(); err == nil && f >= math.MinInt64 && f < math.MaxInt64 {
			return int64(f)
		}
	case string:
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return 0
}

func millisField(m map[string]interface{}, key string) int64 {
	ms := int64Field(m, key)
	switch {
	case ms < 0:
		log.WithFields(lapLogFields).WithFields(log.Fields{"field": key, "value": ms}).Warn("negative stored lap duration clamped to 0")
		return 0
	case ms > core.MaxDurationMillis:
		log.WithFields(lapLogFields).WithFields(log.Fields{"field": key, "value": ms}).Warn("stored lap duration too large, clamped")
		return core.MaxDurationMillis
	}
	return ms
}

func stringField(m map[string]interface{}, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}
