package kiln

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-materials/kiln/internal/settings"
	"github.com/mesh-materials/kiln/pkg/types"
)

func TestDatabaseStyles(t *testing.T) {
	assert.Contains(t, DatabaseStyles(), "local")
}

func TestOpenStyle(t *testing.T) {
	host := filepath.Join(t.TempDir(), "library")

	db, err := OpenStyle("local", host, nil)
	require.NoError(t, err)
	assert.Equal(t, "local", db.Style())
	assert.DirExists(t, db.Host())
}

func TestOpenStyleUnknown(t *testing.T) {
	_, err := OpenStyle("mongo", "localhost", nil)
	assert.ErrorIs(t, err, ErrUnknownDatabaseStyle)
}

func TestRegisterStyle(t *testing.T) {
	called := false
	RegisterStyle("fake", func(host string, params map[string]string) (types.Database, error) {
		called = true
		return nil, errors.New("fake open")
	})

	_, err := OpenStyle("fake", "anywhere", nil)
	assert.True(t, called)
	assert.ErrorContains(t, err, "fake open")
}

func TestOpenFromSettings(t *testing.T) {
	s, err := settings.Load(t.TempDir(), nil)
	require.NoError(t, err)

	host := filepath.Join(t.TempDir(), "library")
	require.NoError(t, s.SetDatabase(settings.Database{Name: "main", Style: "local", Host: host}))

	db, err := Open(s, "main")
	require.NoError(t, err)
	assert.Equal(t, "local", db.Style())

	_, err = Open(s, "ghost")
	assert.ErrorIs(t, err, types.ErrNotFound)
}
