package codec

import (
	"strconv"
	"strings"
)

// recordReader splits an export into records one physical line at a
// time. A quoted field may continue onto following lines. When a
// record turns out to be malformed the reader reports it and resumes
// at the line after the one the record started on, so a stray quote
// costs one line instead of the rest of the file.
type recordReader struct {
	lines []string
	next  int
}

func newRecordReader(data string) *recordReader {
	return &recordReader{lines: strings.Split(data, "\n")}
}

// read returns the next non-blank record and its 1-based line number.
// ok is false at the end of the input. A malformed record is returned
// with a nil record and malformed set.
func (r *recordReader) read() (record []string, line int, malformed bool, ok bool) {
	for r.next < len(r.lines) && strings.TrimSpace(r.lines[r.next]) == "" {
		r.next++
	}
	if r.next >= len(r.lines) {
		return nil, 0, false, false
	}

	start := r.next
	record, end, good := r.parse(start)
	if !good {
		r.next = start + 1
		return nil, start + 1, true, true
	}
	r.next = end + 1
	return record, start + 1, false, true
}

// parse reads the record beginning at lines[start] and returns the
// index of the last line it consumed.
func (r *recordReader) parse(start int) ([]string, int, bool) {
	i := start
	line := r.lines[i]
	pos := 0
	var fields []string

	for {
		if pos < len(line) && line[pos] == '"' {
			var buf strings.Builder
			pos++
			for {
				k := strings.IndexByte(line[pos:], '"')
				if k < 0 {
					buf.WriteString(line[pos:])
					buf.WriteByte('\n')
					i++
					if i >= len(r.lines) || looksLikeRecord(r.lines[i]) {
						return nil, i, false
					}
					line, pos = r.lines[i], 0
					continue
				}
				buf.WriteString(line[pos : pos+k])
				pos += k + 1
				if pos < len(line) && line[pos] == '"' {
					buf.WriteByte('"')
					pos++
					continue
				}
				break
			}
			fields = append(fields, buf.String())

			switch {
			case atLineEnd(line, pos):
				return fields, i, true
			case line[pos] == ',':
				pos++
			default:
				return nil, i, false
			}
			continue
		}

		k := strings.IndexByte(line[pos:], ',')
		if k < 0 {
			fields = append(fields, strings.TrimSuffix(line[pos:], "\r"))
			return fields, i, true
		}
		fields = append(fields, line[pos:pos+k])
		pos += k + 1
	}
}

func atLineEnd(line string, pos int) bool {
	return pos == len(line) || line[pos:] == "\r"
}

// looksLikeRecord reports whether a line swallowed by an open quote is
// really a lap line of its own: a full set of unquoted fields that
// starts with a lap index.
func looksLikeRecord(line string) bool {
	if strings.ContainsRune(line, '"') {
		return false
	}
	tokens := strings.Split(line, ",")
	if len(tokens) < FieldCount {
		return false
	}
	_, err := strconv.Atoi(strings.TrimSpace(tokens[0]))
	return err == nil
}
