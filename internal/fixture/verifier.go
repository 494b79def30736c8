package fixture

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"csvprep/internal/domain"
)

// Verifier re-reads fixture files and checks their dimensions.
type Verifier struct{}

// NewVerifier creates a new Verifier
func NewVerifier() *Verifier {
	return &Verifier{}
}

// Verify checks that path has a header of expectedCols fields followed by
// exactly expectedRows rows. Blank lines count as rows. Read and parse
// failures are reported in the result, never returned.
func (v *Verifier) Verify(path string, expectedRows, expectedCols int) domain.VerificationResult {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.VerificationResult{Message: "File not found", Err: ErrNotFound}
		}
		return readFailure(err)
	}
	defer file.Close()

	lines := &lineCounter{r: file}
	reader := csv.NewReader(lines)
	reader.FieldsPerRecord = -1
	reader.ReuseRecord = true
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err == io.EOF {
		return readFailure(errors.New("file is empty"))
	}
	if err != nil {
		return readFailure(err)
	}
	if len(header) != expectedCols {
		return mismatch(fmt.Sprintf("Header has %d columns, expected %d", len(header), expectedCols))
	}

	records := 1
	span := 1 + embeddedNewlines(header)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return readFailure(err)
		}
		records++
		span += 1 + embeddedNewlines(record)
	}

	total := records + lines.blankLines(span)
	expectedTotal := expectedRows + 1
	if total != expectedTotal {
		return mismatch(fmt.Sprintf("File has %d rows, expected %d", total, expectedTotal))
	}

	return domain.VerificationResult{OK: true, Message: "OK"}
}

func mismatch(msg string) domain.VerificationResult {
	return domain.VerificationResult{Message: msg, Err: fmt.Errorf("%w: %s", ErrStructuralMismatch, msg)}
}

func readFailure(err error) domain.VerificationResult {
	return domain.VerificationResult{
		Message: fmt.Sprintf("Error reading file: %v", err),
		Err:     fmt.Errorf("%w: %w", ErrIO, err),
	}
}

func embeddedNewlines(record []string) int {
	n := 0
	for _, field := range record {
		n += strings.Count(field, "\n")
	}
	return n
}

var newline = []byte{'\n'}

// lineCounter counts physical lines as bytes stream past, so blank lines
// skipped by encoding/csv can still be accounted for.
type lineCounter struct {
	r        io.Reader
	newlines int
	size     int64
	last     byte
}

func (l *lineCounter) Read(p []byte) (int, error) {
	n, err := l.r.Read(p)
	if n > 0 {
		l.newlines += bytes.Count(p[:n], newline)
		l.size += int64(n)
		l.last = p[n-1]
	}
	return n, err
}

// blankLines returns how many physical lines were not covered by records
// that together spanned span lines. Only valid once the input hit EOF.
func (l *lineCounter) blankLines(span int) int {
	physical := l.newlines
	if l.size > 0 && l.last != '\n' {
		physical++
	}
	if physical <= span {
		return 0
	}
	return physical - span
}
