package synd

import (
	"fmt"

	"github.com/beevik/etree"
)

// NamespaceWriter handles the write path of the extension mechanism: it
// collects the distinct namespaces used by attached extensions, declares
// exactly those on the document root, and replays each extension's own
// element-writing logic with the assigned prefixes.
type NamespaceWriter struct {
	registry *Registry
}

// NewNamespaceWriter creates a namespace writer over the given registry. The
// registry supplies preferred prefix hints; a nil registry selects
// DefaultRegistry.
func NewNamespaceWriter(registry *Registry) *NamespaceWriter {
	if registry == nil {
		registry = DefaultRegistry()
	}
	return &NamespaceWriter{registry: registry}
}

// Declare performs the serialization pre-pass: it visits the supplied
// entities (the format collaborator supplies the traversal set, normally the
// feed plus every item), collects the distinct namespace URIs used by any
// attached extension, assigns each a prefix and declares all of them once on
// root. It returns the resulting scope for use by WriteExtensions.
//
// A namespace is declared if and only if at least one extension using it is
// attached somewhere in entities: never an unused declaration, never a
// missing one. Deeper elements never re-declare.
//
// A nil root is a caller bug and panics.
func (w *NamespaceWriter) Declare(root *etree.Element, entities ...ExtensibleEntity) NamespaceScope {
	if root == nil {
		panic("synd: Declare called with nil root")
	}
	used := collectUsedNamespaces(entities)
	scope := NamespaceScope{}
	taken := map[string]bool{"xml": true, "xmlns": true}
	for _, attr := range root.Attr {
		if attr.Space == "xmlns" {
			taken[attr.Key] = true
		}
	}
	for _, uri := range used {
		prefix := w.assignPrefix(uri, taken)
		taken[prefix] = true
		scope[uri] = prefix
		root.CreateAttr("xmlns:"+prefix, uri)
	}
	return scope
}

// WriteExtensions appends each of the entity's attached extensions to parent
// in stored order, using the prefixes established by Declare. Extensions rely
// on the root-level declarations and never re-declare their namespace.
//
// A nil parent, entity or scope is a caller bug and panics. Write errors
// surface later, when the etree document is serialized to its output, and
// propagate unmodified.
func (w *NamespaceWriter) WriteExtensions(parent *etree.Element, entity ExtensibleEntity, scope NamespaceScope) {
	if parent == nil {
		panic("synd: WriteExtensions called with nil parent")
	}
	if entity == nil {
		panic("synd: WriteExtensions called with nil entity")
	}
	if scope == nil {
		panic("synd: WriteExtensions called with nil scope")
	}
	for _, ext := range entity.Extensions() {
		ext.WriteTo(parent, scope)
	}
}

// assignPrefix picks a prefix for uri: the registered descriptor's hint when
// available and free, otherwise a generated token, with collisions resolved
// by numeric suffixing.
func (w *NamespaceWriter) assignPrefix(uri string, taken map[string]bool) string {
	base := ""
	if d, ok := w.registry.ByNamespace(uri); ok {
		base = d.Prefix
	}
	if base == "" {
		base = "ext"
		for i := 0; ; i++ {
			candidate := fmt.Sprintf("%s%d", base, i)
			if !taken[candidate] {
				return candidate
			}
		}
	}
	if !taken[base] {
		return base
	}
	for i := 2; ; i++ {
		candidate := fmt.Sprintf("%s%d", base, i)
		if !taken[candidate] {
			return candidate
		}
	}
}

// collectUsedNamespaces returns the distinct namespace URIs used by attached
// extensions across entities, in first-seen order.
func collectUsedNamespaces(entities []ExtensibleEntity) []string {
	var order []string
	seen := map[string]bool{}
	for _, entity := range entities {
		if entity == nil {
			continue
		}
		for _, ext := range entity.Extensions() {
			uri := ext.Namespace()
			if uri == "" || seen[uri] {
				continue
			}
			seen[uri] = true
			order = append(order, uri)
		}
	}
	return order
}
