package fixture

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// ReadHead returns the header and up to limit data records of a fixture.
func ReadHead(path string, limit int) ([]string, [][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, nil, fmt.Errorf("%w: open %s: %w", ErrIO, path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil, fmt.Errorf("%w: %s is empty", ErrIO, path)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("%w: read header: %w", ErrIO, err)
	}

	var rows [][]string
	for len(rows) < limit {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return header, rows, fmt.Errorf("%w: read row %d: %w", ErrIO, len(rows)+1, err)
		}
		rows = append(rows, record)
	}

	return header, rows, nil
}
