package synd

import "github.com/beevik/etree"

// Extension is a self-contained, namespace-qualified bundle of metadata
// attached to a feed entity. Concrete extension kinds (one per supported
// vendor namespace) implement this fixed contract; the Adapter creates
// instances and the owning entity keeps them until serialization.
type Extension interface {
	// Namespace returns the XML namespace URI the extension owns.
	Namespace() string
	// Name returns the short module name used in registration and diagnostics.
	Name() string
	// Parse extracts the extension's content from the children and attributes
	// of el. It reports whether any matching content was found; instances
	// reporting false are discarded by the Adapter.
	Parse(el *etree.Element) bool
	// WriteTo appends the extension's elements to parent, qualified with the
	// prefix assigned to the extension's namespace in scope. The namespace
	// itself is never re-declared here; declarations live on the document
	// root (see NamespaceWriter).
	WriteTo(parent *etree.Element, scope NamespaceScope)
}

// Descriptor is the immutable registration record for one extension kind.
type Descriptor struct {
	// Namespace is the XML namespace URI the extension owns. It is the
	// registry key: registering a second Descriptor for the same namespace
	// replaces the first.
	Namespace string
	// Name is the short module name (e.g. "dc").
	Name string
	// Prefix is the preferred serialization prefix. When empty, or when the
	// prefix is already taken, the NamespaceWriter generates one.
	Prefix string
	// New produces an empty instance of the extension's value type.
	New func() Extension
}

// ExtensibleEntity is implemented by document nodes capable of carrying
// extensions. ExtensionContainer provides the canonical implementation.
type ExtensibleEntity interface {
	// Extensions returns the attached extensions in stored order: document
	// discovery order on read, append order on write.
	Extensions() []Extension
	// HasExtensions reports whether any extension is attached.
	HasExtensions() bool
	// AddExtension appends ext to the entity's extension sequence.
	AddExtension(ext Extension)
	// RemoveExtension removes the given extension instance, reporting
	// whether it was present.
	RemoveExtension(ext Extension) bool
	// FindExtension returns the first attached extension matching the
	// predicate.
	FindExtension(match func(Extension) bool) (Extension, bool)
}

// ExtensionContainer holds an entity's ordered extension sequence. Feed
// entities embed it to satisfy ExtensibleEntity. The sequence is owned by the
// container and mutated only through its methods.
type ExtensionContainer struct {
	exts []Extension
}

// Extensions returns the attached extensions in stored order. The returned
// slice is the container's own; callers must not mutate it.
func (c *ExtensionContainer) Extensions() []Extension { return c.exts }

// HasExtensions reports whether any extension is attached.
func (c *ExtensionContainer) HasExtensions() bool { return len(c.exts) > 0 }

// AddExtension appends ext to the sequence.
func (c *ExtensionContainer) AddExtension(ext Extension) {
	if ext == nil {
		panic("synd: AddExtension called with nil extension")
	}
	c.exts = append(c.exts, ext)
}

// RemoveExtension removes the given instance, reporting whether it was
// present. Identity is instance identity, not structural equality.
func (c *ExtensionContainer) RemoveExtension(ext Extension) bool {
	for i, e := range c.exts {
		if e == ext {
			c.exts = append(c.exts[:i], c.exts[i+1:]...)
			return true
		}
	}
	return false
}

// FindExtension returns the first attached extension matching the predicate.
func (c *ExtensionContainer) FindExtension(match func(Extension) bool) (Extension, bool) {
	for _, e := range c.exts {
		if match(e) {
			return e, true
		}
	}
	return nil, false
}

// NamespaceSet is the set of namespace URIs declared in scope for a document:
// the "ambient" namespaces the Adapter consults when deciding which
// registered extensions to invoke.
type NamespaceSet map[string]struct{}

// Add records a namespace URI in the set.
func (s NamespaceSet) Add(uri string) { s[uri] = struct{}{} }

// Contains reports whether the exact URI is in the set. Matching is
// case-sensitive, per XML namespace convention.
func (s NamespaceSet) Contains(uri string) bool {
	_, ok := s[uri]
	return ok
}

// CollectNamespaces gathers every namespace URI declared on el or any of its
// descendants. Feed loaders call it on the document root to build the
// ambient set for Adapter.Fill.
func CollectNamespaces(el *etree.Element) NamespaceSet {
	set := NamespaceSet{}
	collectNamespaces(el, set)
	return set
}

func collectNamespaces(el *etree.Element, set NamespaceSet) {
	if el == nil {
		return
	}
	for _, attr := range el.Attr {
		if attr.Space == "xmlns" || (attr.Space == "" && attr.Key == "xmlns") {
			if attr.Value != "" {
				set.Add(attr.Value)
			}
		}
	}
	for _, child := range el.ChildElements() {
		collectNamespaces(child, set)
	}
}

// NamespaceScope maps namespace URIs to the prefixes declared for one
// serialization pass. It is built by NamespaceWriter.Declare, immutable
// during writing, and discarded afterwards.
type NamespaceScope map[string]string

// Prefix returns the prefix assigned to the URI, or "" if the namespace was
// not declared for this pass.
func (s NamespaceScope) Prefix(uri string) string { return s[uri] }
