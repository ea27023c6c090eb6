package local

import (
	"fmt"

	"github.com/mesh-materials/kiln/pkg/types"
)

// The local style is read-mostly: record lifecycle, reference building,
// cleanup, and calculation workflow belong to external tooling. Each
// operation below fails immediately, before any filesystem access, so
// callers can branch on capability instead of observing a silent no-op.

// BuildRefs is not supported by the local style.
func (d *Database) BuildRefs(libDir string, refresh bool) error {
	return unsupported("build_refs")
}

// CleanRecords is not supported by the local style.
func (d *Database) CleanRecords(runDir, style string) error {
	return unsupported("clean_records")
}

// DestroyRecords is not supported by the local style.
func (d *Database) DestroyRecords(style string) error {
	return unsupported("destroy_records")
}

// Prepare is not supported by the local style.
func (d *Database) Prepare(runDir, calculation string, params map[string]string) error {
	return unsupported("prepare")
}

// Runner is not supported by the local style.
func (d *Database) Runner(runDir, orphanDir string) error {
	return unsupported("runner")
}

func unsupported(op string) error {
	return fmt.Errorf("%s: %w", op, types.ErrUnsupported)
}
