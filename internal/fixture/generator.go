// Package fixture writes and re-checks the synthetic CSV files used as
// benchmark input.
package fixture

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
)

const writeBufferSize = 64 * 1024

// ProgressFunc is called with the number of data rows written so far and the total.
type ProgressFunc func(row, total int)

// Options tune generation. The zero value writes LF files and never reports progress.
type Options struct {
	// ProgressEvery is the row cadence at which progress is reported.
	ProgressEvery int
	// ProgressThreshold: files with this many rows or fewer report no progress.
	ProgressThreshold int
	// UseCRLF terminates every record with \r\n instead of \n.
	UseCRLF bool
}

// Generator writes deterministic fixture files.
type Generator struct {
	opts Options
}

// NewGenerator creates a new Generator
func NewGenerator(opts Options) *Generator {
	return &Generator{opts: opts}
}

// ColumnName returns the header label of the 1-based column col.
func ColumnName(col int) string {
	return "column_" + strconv.Itoa(col)
}

// CellValue returns the content of the 1-based (row, col) data cell.
func CellValue(row, col int) string {
	return "test_data_" + strconv.Itoa(row) + "_" + strconv.Itoa(col)
}

// Generate creates (or truncates) path and writes a header plus rows data
// records of cols fields each. It returns the number of bytes written. A
// failure part way through leaves the partial file behind.
func (g *Generator) Generate(path string, rows, cols int, progress ProgressFunc) (written int64, err error) {
	if rows < 0 || cols < 1 {
		return 0, fmt.Errorf("%w: %d rows × %d columns", ErrInvalidDimensions, rows, cols)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return 0, fmt.Errorf("%w: create data dir: %w", ErrIO, err)
	}

	file, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("%w: open %s: %w", ErrIO, path, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: close %s: %w", ErrIO, path, cerr)
		}
	}()

	buf := bufio.NewWriterSize(file, writeBufferSize)
	counter := &countingWriter{w: buf}
	writer := csv.NewWriter(counter)
	writer.UseCRLF = g.opts.UseCRLF

	record := make([]string, cols)
	for c := 1; c <= cols; c++ {
		record[c-1] = ColumnName(c)
	}
	if err := writer.Write(record); err != nil {
		return counter.n, fmt.Errorf("%w: write header: %w", ErrIO, err)
	}

	report := progress != nil && g.opts.ProgressEvery > 0 && rows > g.opts.ProgressThreshold
	for r := 1; r <= rows; r++ {
		for c := 1; c <= cols; c++ {
			record[c-1] = CellValue(r, c)
		}
		if err := writer.Write(record); err != nil {
			return counter.n, fmt.Errorf("%w: write row %d: %w", ErrIO, r, err)
		}
		if report && r%g.opts.ProgressEvery == 0 {
			progress(r, rows)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return counter.n, fmt.Errorf("%w: flush %s: %w", ErrIO, path, err)
	}
	if err := buf.Flush(); err != nil {
		return counter.n, fmt.Errorf("%w: flush %s: %w", ErrIO, path, err)
	}

	return counter.n, nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
