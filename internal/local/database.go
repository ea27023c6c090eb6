// Package local implements the local database style: a read-mostly
// record store laid out as one directory per record style under a host
// directory, one JSON file per record, and an optional tar.gz archive
// alongside each record file.
//
// Records are enumerated directly from the filesystem on every query.
// There is no index and no snapshot isolation: a file added or removed
// by external tooling mid-scan may or may not be observed. That race is
// accepted; the store tolerates external writers only in this weak sense.
package local

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/mesh-materials/kiln/pkg/record"
	"github.com/mesh-materials/kiln/pkg/types"
)

// StyleName is the database style implemented by this package.
const StyleName = "local"

// Database is a local file-backed record store rooted at a host
// directory. All I/O is synchronous and blocking; operations run to
// completion or fail.
type Database struct {
	host   string
	loader types.RecordLoader
	log    *zap.Logger
}

// Option configures a Database.
type Option func(*Database)

// WithLoader replaces the record loader used to recognize styles and
// parse record files. The default is the package-level record registry.
func WithLoader(loader types.RecordLoader) Option {
	return func(d *Database) { d.loader = loader }
}

// WithLogger attaches a logger for debug-level scan activity.
func WithLogger(log *zap.Logger) Option {
	return func(d *Database) { d.log = log }
}

// New opens a local database rooted at host, creating the directory if
// it does not exist. The host path is made absolute so records resolve
// the same way regardless of the caller's working directory.
func New(host string, opts ...Option) (*Database, error) {
	abs, err := filepath.Abs(host)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("create host directory: %w", err)
	}

	d := &Database{host: abs, loader: record.Default, log: zap.NewNop()}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// Style returns the database style name.
func (d *Database) Style() string { return StyleName }

// Host returns the absolute host directory path.
func (d *Database) Host() string { return d.host }

// GetRecords returns every record matching the query, in enumeration
// order.
func (d *Database) GetRecords(q types.Query) ([]types.Record, error) {
	records, _, err := d.scan(q, false, true)
	return records, err
}

// GetRecordsTable returns the tabular projection of every record
// matching the query, re-indexed from zero after filtering.
func (d *Database) GetRecordsTable(q types.Query, full, flat bool) (*types.Table, error) {
	_, table, err := d.scan(q, full, flat)
	return table, err
}

// GetRecord returns the single record matching the query. Zero matches
// fail with ErrNotFound and multiple matches with ErrAmbiguous, so
// callers can branch on the two outcomes programmatically.
func (d *Database) GetRecord(q types.Query) (types.Record, error) {
	records, err := d.GetRecords(q)
	if err != nil {
		return nil, err
	}
	switch len(records) {
	case 1:
		return records[0], nil
	case 0:
		return nil, fmt.Errorf("%w: %s (%s)", types.ErrNotFound,
			strings.Join(q.Names, ","), strings.Join(q.Styles, ","))
	default:
		return nil, fmt.Errorf("%w: %d found", types.ErrAmbiguous, len(records))
	}
}

// scan enumerates the record files selected by the query, loads each one,
// and applies the query's filters. The returned record list and table
// rows are index-aligned: both are sliced by the same kept-index set.
// full and flat select the row projection.
func (d *Database) scan(q types.Query, full, flat bool) ([]types.Record, *types.Table, error) {
	styles, err := d.normalizeStyles(q.Styles)
	if err != nil {
		return nil, nil, err
	}
	if q.Text != "" {
		return nil, nil, fmt.Errorf("free-text query %w", types.ErrUnsupported)
	}

	var records []types.Record
	table := types.NewTable()

	for _, style := range styles {
		files, err := d.candidateFiles(style, q.Names)
		if err != nil {
			return nil, nil, err
		}
		for _, path := range files {
			name := strings.TrimSuffix(filepath.Base(path), ".json")
			rec, err := d.loader.Load(style, name, path)
			if err != nil {
				return nil, nil, &types.LoadError{Style: style, Name: name, Err: err}
			}
			row, err := rec.ToDict(full, flat)
			if err != nil {
				return nil, nil, &types.LoadError{Style: style, Name: name, Err: err}
			}
			records = append(records, rec)
			table.AddRow(row)
		}
	}
	d.log.Debug("scanned records",
		zap.Strings("styles", styles),
		zap.Int("loaded", table.Len()),
		zap.Int("filters", len(q.Filters)))

	kept := table.MatchIndices(q.Filters)
	if len(kept) == table.Len() {
		return records, table, nil
	}
	filtered := make([]types.Record, 0, len(kept))
	for _, i := range kept {
		filtered = append(filtered, records[i])
	}
	return filtered, table.Select(kept), nil
}

// normalizeStyles expands an empty style selection to every recognized
// style and validates explicit selections against the loader.
func (d *Database) normalizeStyles(styles []string) ([]string, error) {
	if len(styles) == 0 {
		return d.loader.Styles(), nil
	}
	for _, s := range styles {
		if !d.loader.Recognizes(s) {
			return nil, fmt.Errorf("%w: %s", types.ErrUnknownStyle, s)
		}
	}
	return styles, nil
}

// candidateFiles returns the record files to load for one style: every
// *.json file in the style directory when no names are given, otherwise
// the explicit <name>.json paths that exist. An explicit name with no
// matching file is skipped, not an error; a missing style directory
// simply yields no candidates.
func (d *Database) candidateFiles(style string, names []string) ([]string, error) {
	dir := filepath.Join(d.host, style)
	if len(names) == 0 {
		return filepath.Glob(filepath.Join(dir, "*.json"))
	}

	var files []string
	for _, name := range names {
		path := filepath.Join(dir, name+".json")
		if _, err := os.Stat(path); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
		files = append(files, path)
	}
	return files, nil
}
