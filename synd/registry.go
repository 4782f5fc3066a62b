package synd

// Registry is a catalog of extension Descriptors keyed by namespace URI.
//
// A Registry is expected to be populated once during startup, before any
// concurrent parsing begins, and treated as read-only afterwards. Concurrent
// reads are safe under that discipline; concurrent Register calls during
// active parsing must be serialized by the caller.
type Registry struct {
	order []string
	byNS  map[string]Descriptor
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byNS: map[string]Descriptor{}}
}

// Register adds or replaces the descriptor for its namespace URI. Last write
// wins, allowing host applications to override built-in extensions; a
// replaced descriptor keeps its original position in iteration order.
func (r *Registry) Register(d Descriptor) {
	if d.Namespace == "" {
		panic("synd: Register called with empty namespace")
	}
	if d.New == nil {
		panic("synd: Register called with nil factory")
	}
	if _, ok := r.byNS[d.Namespace]; !ok {
		r.order = append(r.order, d.Namespace)
	}
	r.byNS[d.Namespace] = d
}

// ByNamespace returns the descriptor registered for the exact URI. Matching
// is case-sensitive, per XML namespace convention.
func (r *Registry) ByNamespace(uri string) (Descriptor, bool) {
	d, ok := r.byNS[uri]
	return d, ok
}

// Descriptors returns a snapshot of all descriptors in registration order.
func (r *Registry) Descriptors() []Descriptor {
	out := make([]Descriptor, 0, len(r.order))
	for _, ns := range r.order {
		out = append(out, r.byNS[ns])
	}
	return out
}

// Len returns the number of registered descriptors.
func (r *Registry) Len() int { return len(r.order) }

// DefaultRegistry returns a new registry pre-populated with the built-in
// extension modules: Dublin Core, Syndication, Slash and iTunes.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(DublinCoreDescriptor())
	r.Register(SyndicationDescriptor())
	r.Register(SlashDescriptor())
	r.Register(ITunesDescriptor())
	return r
}
