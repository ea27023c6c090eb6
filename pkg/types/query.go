package types

// Query selects records from a database. The zero value matches every
// record of every recognized style.
type Query struct {
	// Names limits the search to explicit record identifiers. When set,
	// each selected style directory is probed for the exact <name>.json
	// files; identifiers with no matching file are silently skipped. When
	// empty, every record file in each selected style directory is a
	// candidate.
	Names []string

	// Styles limits the search to the given record styles. Empty means
	// all recognized styles. An unrecognized style fails the query with
	// ErrUnknownStyle.
	Styles []string

	// Text is a free-text search expression. File-backed styles cannot
	// evaluate it and fail with ErrUnsupported when it is non-empty.
	Text string

	// Filters maps a field name to its accepted values. A record is
	// retained only if, for every entry, its value for that field is a
	// member of the accepted set.
	Filters map[string][]any
}
