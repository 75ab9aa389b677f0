// Package host holds the collaborators a running debugger would provide:
// the registry that learns about new containers and the execution-context
// state that picks a target architecture.
package host

import (
	"sync"

	"symforge/internal/arch"
	"symforge/internal/objfile"
)

// Registry records every container it is notified about and tracks the
// currently selected execution context. It implements objfile.EventSink and
// objfile.ContextProvider. Safe for concurrent use: several builders may
// publish into one registry at once.
type Registry struct {
	mu       sync.RWMutex
	objfiles []*objfile.Objfile
	selected *arch.Arch
}

// NewRegistry returns an empty registry with no selected context.
func NewRegistry() *Registry {
	return &Registry{}
}

// ObjfileCreated records a newly built container, in notification order.
func (r *Registry) ObjfileCreated(of *objfile.Objfile) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.objfiles = append(r.objfiles, of)
}

// Objfiles returns the recorded containers in notification order.
func (r *Registry) Objfiles() []*objfile.Objfile {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*objfile.Objfile, len(r.objfiles))
	copy(out, r.objfiles)
	return out
}

// Lookup returns the first recorded container with the given name.
func (r *Registry) Lookup(name string) (*objfile.Objfile, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, of := range r.objfiles {
		if of.Name() == name {
			return of, true
		}
	}
	return nil, false
}

// Select makes target the selected execution context's architecture. Passing
// nil clears the selection.
func (r *Registry) Select(target *arch.Arch) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.selected = target
}

// SelectedArchitecture returns the selected context's architecture, or nil
// when no context is selected.
func (r *Registry) SelectedArchitecture() *arch.Arch {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.selected
}

var _ objfile.EventSink = (*Registry)(nil)
var _ objfile.ContextProvider = (*Registry)(nil)
