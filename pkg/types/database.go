// Package types defines the Database and Record interfaces, the query and
// result-table value types, and the standard errors shared by all kiln
// database styles.
package types

// Database is the backend-agnostic interface to a record store. Callers
// query records by name and style, project them into a result table, and
// retrieve per-record tar archives. Styles that cannot support an
// operation return ErrUnsupported rather than silently doing nothing, so
// callers can branch on capability.
type Database interface {
	// Style returns the database style name.
	Style() string

	// Host returns the host location (directory path or URL) of the store.
	Host() string

	// GetRecords returns all records matching the query, in enumeration
	// order. An individual record file that fails to load aborts the query
	// with a LoadError naming the offending style and name.
	GetRecords(q Query) ([]Record, error)

	// GetRecordsTable returns the tabular projection of all records
	// matching the query. full selects the complete dictionary view over
	// the reduced summary subset; flat collapses nesting to single-level
	// keys.
	GetRecordsTable(q Query, full, flat bool) (*Table, error)

	// GetRecord returns the single record matching the query. Returns
	// ErrNotFound when no record matches and ErrAmbiguous when more than
	// one does.
	GetRecord(q Query) (Record, error)

	// GetArchiveBytes returns the exact byte content of the tar archive
	// associated with one record. The record is identified either by a
	// previously retrieved Record or by a name/style pair, never both;
	// supplying both is rejected with ErrConflictingInput. A missing
	// archive file is reported as ErrArchiveNotFound, distinct from a
	// missing record.
	GetArchiveBytes(rec Record, name, style string) ([]byte, error)

	// OpenArchive opens the record's tar archive for reading entries,
	// positioned at the first entry. Record identification follows the
	// same rules as GetArchiveBytes. The caller must close the returned
	// reader on every path.
	OpenArchive(rec Record, name, style string) (*ArchiveReader, error)

	// BuildRefs populates the store with reference records from a library
	// directory.
	BuildRefs(libDir string, refresh bool) error

	// CleanRecords resets error-state records and their calculation
	// folders back into a run directory.
	CleanRecords(runDir, style string) error

	// DestroyRecords permanently deletes all records of one style.
	DestroyRecords(style string) error

	// Prepare stages calculation instances of the given calculation into
	// a run directory.
	Prepare(runDir, calculation string, params map[string]string) error

	// Runner executes staged calculations from a run directory, moving
	// failed ones to the orphan directory.
	Runner(runDir, orphanDir string) error
}
