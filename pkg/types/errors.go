package types

import (
	"errors"
	"fmt"
)

// Query validation errors, raised before any filesystem access.
var (
	ErrUnknownStyle     = errors.New("unknown record style")
	ErrConflictingInput = errors.New("name and style cannot be given together with a record")
)

// Retrieval errors.
var (
	ErrNotFound        = errors.New("no matching record")
	ErrAmbiguous       = errors.New("multiple matching records")
	ErrArchiveNotFound = errors.New("record archive not found")
)

// ErrUnsupported reports an operation that is not meaningful for a
// database style. Errors wrapping it name the rejected operation.
var ErrUnsupported = errors.New("operation not supported by this database style")

// LoadError reports a record file that failed to parse during a scan.
// Per-file failures are never skipped silently; the whole query aborts
// with a LoadError identifying the offending record.
type LoadError struct {
	Style string
	Name  string
	Err   error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load record %s/%s: %v", e.Style, e.Name, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }
