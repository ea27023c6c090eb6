package record

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-materials/kiln/pkg/types"
)

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	assert.Empty(t, r.Styles())
	assert.False(t, r.Recognizes("reference"))

	r.Register("reference", func(name, path string) (types.Record, error) {
		return LoadRaw("reference", name, path)
	})
	r.Register("calculation", func(name, path string) (types.Record, error) {
		return LoadRaw("calculation", name, path)
	})

	assert.True(t, r.Recognizes("reference"))
	assert.Equal(t, []string{"calculation", "reference"}, r.Styles())
}

func TestRegistryLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "r1.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"key": "k1"}`), 0o644))

	r := NewRegistry()
	r.Register("reference", func(name, path string) (types.Record, error) {
		return LoadRaw("reference", name, path)
	})

	rec, err := r.Load("reference", "r1", path)
	require.NoError(t, err)
	assert.Equal(t, "r1", rec.Name())
	assert.Equal(t, "reference", rec.Style())

	_, err = r.Load("unknown", "r1", path)
	assert.ErrorIs(t, err, types.ErrUnknownStyle)
}

func TestNewKey(t *testing.T) {
	k1 := NewKey()
	k2 := NewKey()
	assert.NotEqual(t, k1, k2)
	assert.Len(t, k1, 36)
}
