package settings

import (
	"fmt"
	"sort"

	"github.com/mesh-materials/kiln/pkg/types"
)

// RecordStyles returns the record style names declared in the settings
// file, sorted.
func (s *Settings) RecordStyles() []string {
	styles := s.v.GetStringSlice("record_styles")
	sort.Strings(styles)
	return styles
}

// AddRecordStyle declares a record style name in the settings file.
// Adding an already-declared style is a no-op.
func (s *Settings) AddRecordStyle(name string) error {
	styles := s.v.GetStringSlice("record_styles")
	for _, style := range styles {
		if style == name {
			return nil
		}
	}
	s.v.Set("record_styles", append(styles, name))
	return s.v.WriteConfigAs(s.path)
}

// RemoveRecordStyle deletes a record style declaration.
func (s *Settings) RemoveRecordStyle(name string) error {
	styles := s.v.GetStringSlice("record_styles")
	for i, style := range styles {
		if style == name {
			s.v.Set("record_styles", append(styles[:i], styles[i+1:]...))
			return s.v.WriteConfigAs(s.path)
		}
	}
	return fmt.Errorf("record style %s: %w", name, types.ErrNotFound)
}
