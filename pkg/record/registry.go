// Package record provides the record-style registry and a generic
// JSON-backed record implementation. A style corresponds to one loader
// and one storage subdirectory; databases consult the registry to decide
// which styles are recognized and how to parse their files.
package record

import (
	"fmt"
	"sort"
	"sync"

	"github.com/mesh-materials/kiln/pkg/types"
)

// LoadFunc parses one record file into a typed record.
type LoadFunc func(name, path string) (types.Record, error)

// Registry maps record styles to their loaders. It implements
// types.RecordLoader and is safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	styles map[string]LoadFunc
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{styles: make(map[string]LoadFunc)}
}

// Register adds a loader for the given style, replacing any previous one.
func (r *Registry) Register(style string, load LoadFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.styles[style] = load
}

// Recognizes reports whether the style has a registered loader.
func (r *Registry) Recognizes(style string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.styles[style]
	return ok
}

// Styles returns the registered style names in sorted order.
func (r *Registry) Styles() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.styles))
	for style := range r.styles {
		out = append(out, style)
	}
	sort.Strings(out)
	return out
}

// Load parses the record file at path using the loader registered for
// style. Returns ErrUnknownStyle when no loader is registered.
func (r *Registry) Load(style, name, path string) (types.Record, error) {
	r.mu.RLock()
	load, ok := r.styles[style]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", types.ErrUnknownStyle, style)
	}
	return load(name, path)
}

// Default is the registry used when no explicit loader is injected into
// a database.
var Default = NewRegistry()

// Register adds a loader to the default registry.
func Register(style string, load LoadFunc) { Default.Register(style, load) }

// Styles lists the styles known to the default registry.
func Styles() []string { return Default.Styles() }
