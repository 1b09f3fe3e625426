package codec

import (
	"bufio"
	"bytes"
	"io"
	"io/ioutil"
	"os"
	"strconv"
	"strings"

	"lapwatch/core"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// FieldCount is the number of columns of an exported lap line.
const FieldCount = 8

const bom = "\uFEFF"

// Header is the first line written by `Export`.
var Header = []string{"Index", "Date", "Interval", "Cumulative", "Start Time", "Record Time", "Category", "Detail"}

// A header is accepted when it contains every marker of one set.
// The second set matches files with Chinese column names.
var headerMarkerSets = [][]string{
	{"index", "cumulative", "detail"},
	{"序号", "间隔累计", "具体事件"},
}

var logFields = log.Fields{"module": "csv_codec"}

// ImportResult is the outcome of a successful `Import`.
type ImportResult struct {
	Laps                []core.Lap
	MaxCumulativeMillis int64
	// Warnings lists skipped lines and fields that defaulted to 0.
	Warnings []*LineError
}

// Export writes a UTF-8 BOM, the header and one line per lap.
func Export(w io.Writer, laps []core.Lap) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(bom)
	writeRecord(bw, Header)
	for _, lap := range laps {
		writeRecord(bw, []string{
			strconv.Itoa(lap.Index),
			lap.Date,
			core.FormatDuration(lap.IntervalMillis),
			core.FormatDuration(lap.CumulativeMillis),
			lap.StartTime,
			lap.RecordTime,
			lap.Category,
			lap.Detail,
		})
	}
	return errors.WithStack(bw.Flush())
}

func writeRecord(w *bufio.Writer, fields []string) {
	for i, f := range fields {
		if i > 0 {
			w.WriteByte(',')
		}
		w.WriteString(escapeField(f))
	}
	w.WriteByte('\n')
}

// escapeField quotes f only when it contains a separator, a quote or a
// line break. Surrounding whitespace is written raw and survives
// `Import`, which trims numeric columns only.
func escapeField(f string) string {
	if !strings.ContainsAny(f, ",\"\n\r") {
		return f
	}
	return `"` + strings.ReplaceAll(f, `"`, `""`) + `"`
}

// Import parses a lap export. The header must match, otherwise nothing
// is imported. Short lines are skipped and unparsable numbers become 0;
// both are reported in `ImportResult.Warnings`.
func Import(r io.Reader) (*ImportResult, error) {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	data = bytes.TrimPrefix(data, []byte(bom))
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyFile
	}

	reader := newRecordReader(string(data))

	header, _, malformed, ok := reader.read()
	if !ok {
		return nil, ErrEmptyFile
	}
	if malformed {
		return nil, &HeaderMismatchError{Header: firstLine(data), Missing: headerMarkerSets[0]}
	}
	if err := checkHeader(strings.Join(header, ",")); err != nil {
		return nil, err
	}

	result := &ImportResult{}
	for {
		record, line, malformed, ok := reader.read()
		if !ok {
			break
		}
		if malformed {
			result.warn(&LineError{Line: line, Err: ErrMalformedLine})
			continue
		}
		if len(record) < FieldCount {
			result.warn(&LineError{Line: line, Value: strings.Join(record, ","), Err: ErrLineTooShort})
			continue
		}
		result.addLap(line, record)
	}

	log.WithFields(logFields).WithFields(log.Fields{
		"laps":     len(result.Laps),
		"warnings": len(result.Warnings),
		"resume":   core.FormatDuration(result.MaxCumulativeMillis),
	}).Info("laps imported")
	return result, nil
}

// addLap converts one record. Only the numeric columns are trimmed;
// text columns are kept as written.
func (res *ImportResult) addLap(line int, record []string) {
	numeric := func(i int) string {
		return strings.TrimSpace(record[i])
	}

	index, err := strconv.Atoi(numeric(0))
	if err != nil {
		res.warn(&LineError{Line: line, Field: "index", Value: numeric(0), Err: ErrFieldParse})
	}
	interval := res.parseDuration(line, "interval", numeric(2))
	cumulative := res.parseDuration(line, "cumulative", numeric(3))

	res.Laps = append(res.Laps, core.Lap{
		Index:            index,
		Date:             record[1],
		IntervalMillis:   interval,
		CumulativeMillis: cumulative,
		StartTime:        record[4],
		RecordTime:       record[5],
		Category:         record[6],
		Detail:           record[7],
	})
	if cumulative > res.MaxCumulativeMillis {
		res.MaxCumulativeMillis = cumulative
	}
}

func (res *ImportResult) parseDuration(line int, name, value string) int64 {
	ms, err := core.ParseDuration(value)
	if err != nil {
		res.warn(&LineError{Line: line, Field: name, Value: value, Err: ErrFieldParse})
		return 0
	}
	return ms
}

func (res *ImportResult) warn(e *LineError) {
	log.WithFields(logFields).WithField("line", e.Line).Warn(e.Error())
	res.Warnings = append(res.Warnings, e)
}

func checkHeader(header string) error {
	lower := strings.ToLower(header)
	var best []string
	for _, markers := range headerMarkerSets {
		var missing []string
		for _, m := range markers {
			if !strings.Contains(lower, m) {
				missing = append(missing, m)
			}
		}
		if len(missing) == 0 {
			return nil
		}
		if best == nil || len(missing) < len(best) {
			best = missing
		}
	}
	return &HeaderMismatchError{Header: header, Missing: best}
}

func firstLine(data []byte) string {
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		data = data[:i]
	}
	return string(data)
}

// ExportFile writes laps to path, replacing any existing file.
func ExportFile(path string, laps []core.Lap) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.WithStack(err)
	}
	if err := Export(f, laps); err != nil {
		f.Close()
		return err
	}
	return errors.WithStack(f.Close())
}

func ImportFile(path string) (*ImportResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer f.Close()
	return Import(f)
}
