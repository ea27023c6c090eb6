package local

import (
	"archive/tar"
	"fmt"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/gzip"

	"github.com/mesh-materials/kiln/pkg/types"
)

// GetArchiveBytes returns the exact byte content of the tar archive
// associated with one record.
func (d *Database) GetArchiveBytes(rec types.Record, name, style string) ([]byte, error) {
	path, err := d.resolveArchive(rec, name, style)
	if err != nil {
		return nil, err
	}
	return os.ReadFile(path)
}

// OpenArchive opens the record's tar archive for reading entries,
// positioned at the first entry. The caller must close the returned
// reader on every path, including error paths, to avoid descriptor
// leaks.
func (d *Database) OpenArchive(rec types.Record, name, style string) (*types.ArchiveReader, error) {
	path, err := d.resolveArchive(rec, name, style)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	gz, err := gzip.NewReader(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("open archive %s: %w", path, err)
	}
	return types.NewArchiveReader(tar.NewReader(gz), gz, f), nil
}

// resolveArchive confirms the target record and returns its archive
// path, deterministically <host>/<style>/<name>.tar.gz. Exactly one of
// rec or the name/style pair may identify the record; a rec given
// together with a non-empty name or style is rejected as conflicting
// input. A rec is re-resolved through GetRecord to confirm it still
// exists in the store, defending against stale references.
func (d *Database) resolveArchive(rec types.Record, name, style string) (string, error) {
	if rec == nil {
		r, err := d.GetRecord(types.Query{Names: oneOrNone(name), Styles: oneOrNone(style)})
		if err != nil {
			return "", err
		}
		rec = r
	} else if name != "" || style != "" {
		return "", types.ErrConflictingInput
	} else {
		r, err := d.GetRecord(types.Query{
			Names:  []string{rec.Name()},
			Styles: []string{rec.Style()},
		})
		if err != nil {
			return "", err
		}
		rec = r
	}

	path := filepath.Join(d.host, rec.Style(), rec.Name()+".tar.gz")
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s/%s", types.ErrArchiveNotFound, rec.Style(), rec.Name())
		}
		return "", err
	}
	return path, nil
}

func oneOrNone(s string) []string {
	if s == "" {
		return nil
	}
	return []string{s}
}
