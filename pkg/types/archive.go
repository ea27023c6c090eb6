package types

import (
	"archive/tar"
	"io"
)

// ArchiveReader reads the entries of a record's gzip-compressed tar
// archive. It owns the underlying gzip and file handles; the caller must
// call Close on every exit path to release them.
type ArchiveReader struct {
	*tar.Reader
	closers []io.Closer
}

// NewArchiveReader wraps an entry reader together with the handles that
// must be released when reading ends. Closers are closed in the order
// given, innermost first.
func NewArchiveReader(tr *tar.Reader, closers ...io.Closer) *ArchiveReader {
	return &ArchiveReader{Reader: tr, closers: closers}
}

// Close releases every underlying handle. All closers run even when one
// fails; the first error wins.
func (a *ArchiveReader) Close() error {
	var first error
	for _, c := range a.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
