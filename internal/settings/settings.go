// Package settings manages the registry of named databases and run
// directories kept in the kiln settings file. The file is a small
// hierarchical document managed with viper; entries are simple CRUD.
package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"github.com/mesh-materials/kiln/pkg/types"
)

// SettingsFileName is the settings file created under the settings
// directory.
const SettingsFileName = "settings.yaml"

// Prompter supplies values that were not given programmatically. The CLI
// backs it with stdin; library callers may leave it nil, in which case
// prompt-requiring paths fail with ErrNoPrompter instead of touching the
// terminal.
type Prompter interface {
	Ask(prompt string) (string, error)
}

// PromptFunc adapts a function to the Prompter interface.
type PromptFunc func(prompt string) (string, error)

// Ask calls f.
func (f PromptFunc) Ask(prompt string) (string, error) { return f(prompt) }

// Settings errors.
var (
	ErrNoPrompter    = errors.New("value required but no prompter available")
	ErrInvalidChoice = errors.New("invalid choice")
)

// Database is one named database entry.
type Database struct {
	Name   string            `mapstructure:"name"`
	Style  string            `mapstructure:"style"`
	Host   string            `mapstructure:"host"`
	Params map[string]string `mapstructure:"params"`
}

// RunDirectory is one named run-directory entry.
type RunDirectory struct {
	Name string `mapstructure:"name"`
	Path string `mapstructure:"path"`
}

// Settings is the registry held in one settings file.
type Settings struct {
	v        *viper.Viper
	path     string
	prompter Prompter
}

// Load opens the settings file under dir, creating the directory and an
// empty file on first use. prompter may be nil for non-interactive
// callers.
func Load(dir string, prompter Prompter) (*Settings, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create settings dir: %w", err)
	}

	path := filepath.Join(dir, SettingsFileName)
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, fmt.Errorf("read settings: %w", err)
		}
		if err := v.WriteConfigAs(path); err != nil {
			return nil, fmt.Errorf("create settings file: %w", err)
		}
	}
	return &Settings{v: v, path: path, prompter: prompter}, nil
}

// Path returns the settings file location.
func (s *Settings) Path() string { return s.path }

// ListDatabases returns the names of the stored database entries.
func (s *Settings) ListDatabases() ([]string, error) {
	entries, err := s.databases()
	if err != nil {
		return nil, err
	}
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names, nil
}

// GetDatabase returns the entry stored under name.
func (s *Settings) GetDatabase(name string) (Database, error) {
	entries, err := s.databases()
	if err != nil {
		return Database{}, err
	}
	for _, e := range entries {
		if e.Name == name {
			return e, nil
		}
	}
	return Database{}, fmt.Errorf("database %s: %w", name, types.ErrNotFound)
}

// SetDatabase stores a database entry. A missing name, style, or host is
// requested through the prompter. Overwriting an existing entry asks for
// confirmation first; declining leaves the stored entry unchanged.
func (s *Settings) SetDatabase(entry Database) error {
	var err error
	if entry.Name == "" {
		if entry.Name, err = s.ask("Enter a name for the database:"); err != nil {
			return err
		}
	}

	entries, err := s.databases()
	if err != nil {
		return err
	}
	idx := indexOf(entries, entry.Name, func(d Database) string { return d.Name })
	if idx >= 0 {
		ok, err := s.confirmOverwrite(fmt.Sprintf("Database %s already defined. Overwrite? (yes or no):", entry.Name))
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}

	if entry.Style == "" {
		if entry.Style, err = s.ask("Enter the database's style:"); err != nil {
			return err
		}
	}
	if entry.Host == "" {
		if entry.Host, err = s.ask("Enter the database's host:"); err != nil {
			return err
		}
	}

	if idx >= 0 {
		entries[idx] = entry
	} else {
		entries = append(entries, entry)
	}
	return s.saveDatabases(entries)
}

// UnsetDatabase deletes the entry stored under name. An empty name asks
// the prompter to select one from a numbered list. Deletion requires the
// confirmation answer "yes"; anything else leaves the entry in place.
func (s *Settings) UnsetDatabase(name string) error {
	entries, err := s.databases()
	if err != nil {
		return err
	}
	if name == "" {
		names := make([]string, len(entries))
		for i, e := range entries {
			names[i] = e.Name
		}
		if name, err = s.choose("database", names); err != nil {
			return err
		}
	}
	idx := indexOf(entries, name, func(d Database) string { return d.Name })
	if idx < 0 {
		return fmt.Errorf("database %s: %w", name, types.ErrNotFound)
	}

	ok, err := s.confirmDelete(fmt.Sprintf("Delete settings for database %s? (must type yes):", name))
	if err != nil || !ok {
		return err
	}
	return s.saveDatabases(append(entries[:idx], entries[idx+1:]...))
}

// ListRunDirectories returns the names of the stored run-directory
// entries.
func (s *Settings) ListRunDirectories() ([]string, error) {
	entries, err := s.runDirectories()
	if err != nil {
		return nil, err
	}
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names, nil
}

// GetRunDirectory returns the path stored under name.
func (s *Settings) GetRunDirectory(name string) (string, error) {
	entries, err := s.runDirectories()
	if err != nil {
		return "", err
	}
	for _, e := range entries {
		if e.Name == name {
			return e.Path, nil
		}
	}
	return "", fmt.Errorf("run directory %s: %w", name, types.ErrNotFound)
}

// SetRunDirectory stores a run-directory entry. The path is stored
// absolute. A missing name or path is requested through the prompter;
// overwriting an existing entry asks for confirmation first.
func (s *Settings) SetRunDirectory(name, path string) error {
	var err error
	if name == "" {
		if name, err = s.ask("Enter a name for the run directory:"); err != nil {
			return err
		}
	}

	entries, err := s.runDirectories()
	if err != nil {
		return err
	}
	idx := indexOf(entries, name, func(r RunDirectory) string { return r.Name })
	if idx >= 0 {
		ok, err := s.confirmOverwrite(fmt.Sprintf("Run directory %s already defined. Overwrite? (yes or no):", name))
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}

	if path == "" {
		if path, err = s.ask("Enter the run directory's path:"); err != nil {
			return err
		}
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	entry := RunDirectory{Name: name, Path: abs}
	if idx >= 0 {
		entries[idx] = entry
	} else {
		entries = append(entries, entry)
	}
	return s.saveRunDirectories(entries)
}

// UnsetRunDirectory deletes the entry stored under name, with the same
// selection and confirmation behavior as UnsetDatabase.
func (s *Settings) UnsetRunDirectory(name string) error {
	entries, err := s.runDirectories()
	if err != nil {
		return err
	}
	if name == "" {
		names := make([]string, len(entries))
		for i, e := range entries {
			names[i] = e.Name
		}
		if name, err = s.choose("run directory", names); err != nil {
			return err
		}
	}
	idx := indexOf(entries, name, func(r RunDirectory) string { return r.Name })
	if idx < 0 {
		return fmt.Errorf("run directory %s: %w", name, types.ErrNotFound)
	}

	ok, err := s.confirmDelete(fmt.Sprintf("Delete settings for run directory %s? (must type yes):", name))
	if err != nil || !ok {
		return err
	}
	return s.saveRunDirectories(append(entries[:idx], entries[idx+1:]...))
}

func (s *Settings) databases() ([]Database, error) {
	var out []Database
	if err := s.v.UnmarshalKey("databases", &out); err != nil {
		return nil, fmt.Errorf("decode databases: %w", err)
	}
	return out, nil
}

func (s *Settings) runDirectories() ([]RunDirectory, error) {
	var out []RunDirectory
	if err := s.v.UnmarshalKey("run_directories", &out); err != nil {
		return nil, fmt.Errorf("decode run directories: %w", err)
	}
	return out, nil
}

func (s *Settings) saveDatabases(entries []Database) error {
	rows := make([]map[string]any, len(entries))
	for i, e := range entries {
		row := map[string]any{"name": e.Name, "style": e.Style, "host": e.Host}
		if len(e.Params) > 0 {
			row["params"] = e.Params
		}
		rows[i] = row
	}
	s.v.Set("databases", rows)
	return s.v.WriteConfigAs(s.path)
}

func (s *Settings) saveRunDirectories(entries []RunDirectory) error {
	rows := make([]map[string]any, len(entries))
	for i, e := range entries {
		rows[i] = map[string]any{"name": e.Name, "path": e.Path}
	}
	s.v.Set("run_directories", rows)
	return s.v.WriteConfigAs(s.path)
}

func (s *Settings) ask(prompt string) (string, error) {
	if s.prompter == nil {
		return "", ErrNoPrompter
	}
	return s.prompter.Ask(prompt)
}

// confirmOverwrite accepts yes/y and no/n; any other answer is an
// invalid choice.
func (s *Settings) confirmOverwrite(prompt string) (bool, error) {
	answer, err := s.ask(prompt)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "yes", "y":
		return true, nil
	case "no", "n":
		return false, nil
	default:
		return false, ErrInvalidChoice
	}
}

// confirmDelete requires the exact answer "yes"; anything else declines
// without error.
func (s *Settings) confirmDelete(prompt string) (bool, error) {
	answer, err := s.ask(prompt)
	if err != nil {
		return false, err
	}
	return strings.TrimSpace(answer) == "yes", nil
}

// choose presents a numbered list of names and returns the selection.
// The answer may be a list number or a literal name.
func (s *Settings) choose(kind string, names []string) (string, error) {
	if len(names) == 0 {
		return "", fmt.Errorf("no %s entries set: %w", kind, types.ErrNotFound)
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "Select a %s:\n", kind)
	for i, name := range names {
		fmt.Fprintf(&sb, "%d %s\n", i+1, name)
	}
	sb.WriteString(":")

	answer, err := s.ask(sb.String())
	if err != nil {
		return "", err
	}
	answer = strings.TrimSpace(answer)
	if n, err := strconv.Atoi(answer); err == nil {
		if n < 1 || n > len(names) {
			return "", ErrInvalidChoice
		}
		return names[n-1], nil
	}
	return answer, nil
}

func indexOf[T any](entries []T, name string, key func(T) string) int {
	for i, e := range entries {
		if key(e) == name {
			return i
		}
	}
	return -1
}
