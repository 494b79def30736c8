package fixture

import "errors"

var (
	// ErrNotFound means the fixture file does not exist.
	ErrNotFound = errors.New("file not found")
	// ErrStructuralMismatch means the header width or row count is wrong.
	ErrStructuralMismatch = errors.New("structural mismatch")
	// ErrIO covers directory creation, open, read and write failures.
	ErrIO = errors.New("i/o error")
	// ErrInvalidDimensions is returned for negative rows or fewer than one column.
	ErrInvalidDimensions = errors.New("invalid dimensions")
)
