// Package kiln opens record databases, either directly from a style and
// host or from an entry stored in the settings registry.
package kiln

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/mesh-materials/kiln/internal/local"
	"github.com/mesh-materials/kiln/internal/settings"
	"github.com/mesh-materials/kiln/pkg/types"
)

// Version is the kiln release version.
const Version = "0.1.0"

// ErrUnknownDatabaseStyle reports a database style with no registered
// opener.
var ErrUnknownDatabaseStyle = errors.New("unknown database style")

// OpenFunc opens a database of one style at the given host. params carry
// style-specific access parameters.
type OpenFunc func(host string, params map[string]string) (types.Database, error)

var (
	stylesMu sync.RWMutex
	styles   = map[string]OpenFunc{}
)

func init() {
	RegisterStyle(local.StyleName, func(host string, params map[string]string) (types.Database, error) {
		return local.New(host)
	})
}

// RegisterStyle adds a database style, replacing any previous opener
// registered under the same name.
func RegisterStyle(style string, open OpenFunc) {
	stylesMu.Lock()
	defer stylesMu.Unlock()
	styles[style] = open
}

// DatabaseStyles returns the registered database style names, sorted.
func DatabaseStyles() []string {
	stylesMu.RLock()
	defer stylesMu.RUnlock()
	out := make([]string, 0, len(styles))
	for style := range styles {
		out = append(out, style)
	}
	sort.Strings(out)
	return out
}

// OpenStyle opens a database directly from a style and host.
func OpenStyle(style, host string, params map[string]string) (types.Database, error) {
	stylesMu.RLock()
	open, ok := styles[style]
	stylesMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownDatabaseStyle, style)
	}
	return open(host, params)
}

// Open opens the database stored under name in the settings registry.
func Open(s *settings.Settings, name string) (types.Database, error) {
	entry, err := s.GetDatabase(name)
	if err != nil {
		return nil, err
	}
	return OpenStyle(entry.Style, entry.Host, entry.Params)
}
