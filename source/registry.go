package source

import "sort"

// Registry maps runner names to their sources. It is filled once at
// startup and read-only afterwards, so no locking is needed.
type Registry struct {
	sources map[string]ContentSource
}

func NewRegistry() *Registry {
	return &Registry{sources: make(map[string]ContentSource)}
}

func (r *Registry) Register(name string, src ContentSource) {
	r.sources[name] = src
}

// Get returns the source registered under name, or nil.
func (r *Registry) Get(name string) ContentSource {
	return r.sources[name]
}

// Names returns the registered runner names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.sources))
	for name := range r.sources {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
