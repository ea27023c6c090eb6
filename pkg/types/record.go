package types

// Record is one typed, named piece of calculation metadata. Its identity
// is the (style, name) pair: the style selects the storage subdirectory
// and the loader, the name gives the filename stem within that style.
type Record interface {
	// Name returns the record identifier, unique within its style.
	Name() string

	// Style returns the record type.
	Style() string

	// ToDict produces a dictionary view of the record. full selects all
	// fields over the reduced summary subset; flat collapses nested
	// structure to single-level key-value terms suitable for comparisons.
	ToDict(full, flat bool) (map[string]any, error)
}

// RecordLoader parses record files into typed Record objects. Databases
// consult it both to recognize styles and to load candidate files during
// a scan.
type RecordLoader interface {
	// Load parses the record file at path as the given style.
	Load(style, name, path string) (Record, error)

	// Styles returns every recognized record style.
	Styles() []string

	// Recognizes reports whether the style has a loader.
	Recognizes(style string) bool
}
