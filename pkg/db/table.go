package db

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/edsrzf/mmap-go"
)

// Defining possible error
var ErrMalformedRow = errors.New("malformed row")

// RowError points at the offending line of a table.
type RowError struct {
	Path string
	Line int    // 1-based line number in the file
	Msg  string // additional context for the error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.Path, e.Line, e.Msg)
}

func (e *RowError) Unwrap() error {
	return ErrMalformedRow
}

// Row is one tab-separated data line.
type Row struct {
	Line   int
	Fields []string
}

// Table is a whole tab-separated file held in memory. The first non-blank
// line is the header.
type Table struct {
	Path   string
	Header []string
	Rows   []Row
}

// ReadTable loads path fully into memory and splits it into rows.
func ReadTable(path string) (*Table, error) {

	text, err := slurp(path)
	if err != nil {
		return nil, fmt.Errorf("read table %s: %w", path, err)
	}

	return ParseTable(path, text), nil
}

// ParseTable splits text into a header and data rows. Blank lines are
// skipped and a trailing carriage return is dropped from every line.
func ParseTable(path string, text string) *Table {

	tbl := &Table{Path: path}
	lines := strings.Split(text, "\n")
	tbl.Rows = make([]Row, 0, len(lines))

	headerSeen := false
	for i, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if !headerSeen {
			tbl.Header = fields
			headerSeen = true
			continue
		}
		tbl.Rows = append(tbl.Rows, Row{Line: i + 1, Fields: fields})
	}

	return tbl
}

// RowError builds a malformed-row error for r.
func (t *Table) RowError(r Row, format string, a ...any) error {
	return &RowError{
		Path: t.Path,
		Line: r.Line,
		Msg:  fmt.Sprintf(format, a...),
	}
}

// slurp maps regular files read-only and copies them out in one go.
// Pipes and other special files fall back to a plain read.
func slurp(path string) (string, error) {
	var fp *os.File
	var err error
	var mm mmap.MMap

	if fp, err = os.Open(path); err != nil {
		return "", err
	}
	defer fp.Close()

	info, err := fp.Stat()
	if err != nil {
		return "", err
	}
	if info.IsDir() {
		return "", fmt.Errorf("%s is a directory", path)
	}
	if !info.Mode().IsRegular() {
		buf, err := io.ReadAll(fp)
		if err != nil {
			return "", err
		}
		return string(buf), nil
	}
	if info.Size() == 0 { // mmap refuses zero-length mappings
		return "", nil
	}

	if mm, err = mmap.Map(fp, mmap.RDONLY, 0); err != nil {
		return "", err
	}
	defer mm.Unmap()

	return string(mm), nil
}
