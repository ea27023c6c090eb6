package settings

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-materials/kiln/pkg/types"
)

// scriptPrompter answers prompts from a fixed script.
type scriptPrompter struct {
	answers []string
	prompts []string
}

func (p *scriptPrompter) Ask(prompt string) (string, error) {
	p.prompts = append(p.prompts, prompt)
	if len(p.answers) == 0 {
		return "", errors.New("no scripted answer left")
	}
	answer := p.answers[0]
	p.answers = p.answers[1:]
	return answer, nil
}

func TestLoadCreatesSettingsFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "kiln")

	s, err := Load(dir, nil)
	require.NoError(t, err)
	assert.FileExists(t, s.Path())

	names, err := s.ListDatabases()
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestSetGetDatabase(t *testing.T) {
	s, err := Load(t.TempDir(), nil)
	require.NoError(t, err)

	entry := Database{
		Name:   "main",
		Style:  "local",
		Host:   "/srv/calc-library",
		Params: map[string]string{"readonly": "true"},
	}
	require.NoError(t, s.SetDatabase(entry))

	got, err := s.GetDatabase("main")
	require.NoError(t, err)
	assert.Equal(t, entry, got)

	names, err := s.ListDatabases()
	require.NoError(t, err)
	assert.Equal(t, []string{"main"}, names)

	_, err = s.GetDatabase("other")
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestSettingsPersistAcrossLoads(t *testing.T) {
	dir := t.TempDir()

	s, err := Load(dir, nil)
	require.NoError(t, err)
	require.NoError(t, s.SetDatabase(Database{Name: "main", Style: "local", Host: "/srv/lib"}))

	reloaded, err := Load(dir, nil)
	require.NoError(t, err)
	got, err := reloaded.GetDatabase("main")
	require.NoError(t, err)
	assert.Equal(t, "local", got.Style)
	assert.Equal(t, "/srv/lib", got.Host)
}

func TestSetDatabasePromptsForMissingValues(t *testing.T) {
	p := &scriptPrompter{answers: []string{"main", "local", "/srv/lib"}}
	s, err := Load(t.TempDir(), p)
	require.NoError(t, err)

	require.NoError(t, s.SetDatabase(Database{}))

	got, err := s.GetDatabase("main")
	require.NoError(t, err)
	assert.Equal(t, "local", got.Style)
	assert.Equal(t, "/srv/lib", got.Host)
	assert.Len(t, p.prompts, 3)
}

func TestSetDatabaseOverwrite(t *testing.T) {
	tests := []struct {
		name     string
		answer   string
		wantHost string
		wantErr  error
	}{
		{name: "accepted", answer: "yes", wantHost: "/new"},
		{name: "accepted short", answer: "y", wantHost: "/new"},
		{name: "declined keeps stored entry", answer: "no", wantHost: "/old"},
		{name: "invalid choice", answer: "maybe", wantHost: "/old", wantErr: ErrInvalidChoice},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &scriptPrompter{answers: []string{tt.answer}}
			s, err := Load(t.TempDir(), p)
			require.NoError(t, err)
			require.NoError(t, s.SetDatabase(Database{Name: "main", Style: "local", Host: "/old"}))

			err = s.SetDatabase(Database{Name: "main", Style: "local", Host: "/new"})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}

			got, err := s.GetDatabase("main")
			require.NoError(t, err)
			assert.Equal(t, tt.wantHost, got.Host)
		})
	}
}

func TestSetDatabaseNoPrompter(t *testing.T) {
	s, err := Load(t.TempDir(), nil)
	require.NoError(t, err)

	err = s.SetDatabase(Database{Style: "local", Host: "/srv/lib"})
	assert.ErrorIs(t, err, ErrNoPrompter)
}

func TestUnsetDatabase(t *testing.T) {
	t.Run("confirmed deletion", func(t *testing.T) {
		p := &scriptPrompter{answers: []string{"yes"}}
		s, err := Load(t.TempDir(), p)
		require.NoError(t, err)
		require.NoError(t, s.SetDatabase(Database{Name: "main", Style: "local", Host: "/srv"}))

		require.NoError(t, s.UnsetDatabase("main"))
		_, err = s.GetDatabase("main")
		assert.ErrorIs(t, err, types.ErrNotFound)
	})

	t.Run("deletion requires the exact answer yes", func(t *testing.T) {
		p := &scriptPrompter{answers: []string{"y"}}
		s, err := Load(t.TempDir(), p)
		require.NoError(t, err)
		require.NoError(t, s.SetDatabase(Database{Name: "main", Style: "local", Host: "/srv"}))

		require.NoError(t, s.UnsetDatabase("main"))
		_, err = s.GetDatabase("main")
		assert.NoError(t, err, "entry should survive a declined confirmation")
	})

	t.Run("unknown name", func(t *testing.T) {
		s, err := Load(t.TempDir(), nil)
		require.NoError(t, err)
		assert.ErrorIs(t, s.UnsetDatabase("ghost"), types.ErrNotFound)
	})

	t.Run("empty name selects from a numbered list", func(t *testing.T) {
		p := &scriptPrompter{answers: []string{"1", "yes"}}
		s, err := Load(t.TempDir(), p)
		require.NoError(t, err)
		require.NoError(t, s.SetDatabase(Database{Name: "main", Style: "local", Host: "/srv"}))

		require.NoError(t, s.UnsetDatabase(""))
		_, err = s.GetDatabase("main")
		assert.ErrorIs(t, err, types.ErrNotFound)
		assert.Contains(t, p.prompts[0], "1 main")
	})
}

func TestRunDirectories(t *testing.T) {
	s, err := Load(t.TempDir(), nil)
	require.NoError(t, err)

	require.NoError(t, s.SetRunDirectory("queue_1", "relative/run"))

	path, err := s.GetRunDirectory("queue_1")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(path), "stored path should be absolute")

	names, err := s.ListRunDirectories()
	require.NoError(t, err)
	assert.Equal(t, []string{"queue_1"}, names)

	_, err = s.GetRunDirectory("ghost")
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestUnsetRunDirectory(t *testing.T) {
	p := &scriptPrompter{answers: []string{"yes"}}
	s, err := Load(t.TempDir(), p)
	require.NoError(t, err)
	require.NoError(t, s.SetRunDirectory("queue_1", "/srv/run"))

	require.NoError(t, s.UnsetRunDirectory("queue_1"))
	_, err = s.GetRunDirectory("queue_1")
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestRecordStyles(t *testing.T) {
	s, err := Load(t.TempDir(), nil)
	require.NoError(t, err)
	assert.Empty(t, s.RecordStyles())

	require.NoError(t, s.AddRecordStyle("reference"))
	require.NoError(t, s.AddRecordStyle("calculation"))
	require.NoError(t, s.AddRecordStyle("reference"), "adding twice is a no-op")
	assert.Equal(t, []string{"calculation", "reference"}, s.RecordStyles())

	require.NoError(t, s.RemoveRecordStyle("calculation"))
	assert.Equal(t, []string{"reference"}, s.RecordStyles())

	assert.ErrorIs(t, s.RemoveRecordStyle("ghost"), types.ErrNotFound)
}
