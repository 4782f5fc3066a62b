package synd

import (
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryRegistrationOrder(t *testing.T) {
	r := NewRegistry()
	r.Register(ITunesDescriptor())
	r.Register(DublinCoreDescriptor())
	r.Register(SlashDescriptor())

	descriptors := r.Descriptors()
	require.Len(t, descriptors, 3)
	assert.Equal(t, "itunes", descriptors[0].Name)
	assert.Equal(t, "dc", descriptors[1].Name)
	assert.Equal(t, "slash", descriptors[2].Name)
	assert.Equal(t, 3, r.Len())
}

func TestRegistryReplacementKeepsPosition(t *testing.T) {
	r := NewRegistry()
	r.Register(DublinCoreDescriptor())
	r.Register(SlashDescriptor())

	// Host override of a built-in: last write wins, position unchanged.
	override := Descriptor{
		Namespace: DublinCoreNamespace,
		Name:      "dc-custom",
		Prefix:    "dcx",
		New:       func() Extension { return &DublinCore{} },
	}
	r.Register(override)

	require.Equal(t, 2, r.Len())
	descriptors := r.Descriptors()
	assert.Equal(t, "dc-custom", descriptors[0].Name)
	assert.Equal(t, "slash", descriptors[1].Name)

	d, ok := r.ByNamespace(DublinCoreNamespace)
	require.True(t, ok)
	assert.Equal(t, "dcx", d.Prefix)
}

func TestRegistryLookupIsCaseSensitive(t *testing.T) {
	r := NewRegistry()
	r.Register(DublinCoreDescriptor())

	_, ok := r.ByNamespace("HTTP://PURL.ORG/DC/ELEMENTS/1.1/")
	assert.False(t, ok)

	_, ok = r.ByNamespace(DublinCoreNamespace)
	assert.True(t, ok)
}

func TestRegistryRejectsInvalidDescriptors(t *testing.T) {
	r := NewRegistry()
	assert.Panics(t, func() {
		r.Register(Descriptor{Name: "x", New: func() Extension { return &DublinCore{} }})
	})
	assert.Panics(t, func() {
		r.Register(Descriptor{Namespace: "urn:x", Name: "x"})
	})
}

func TestDefaultRegistryBuiltins(t *testing.T) {
	r := DefaultRegistry()
	for _, ns := range []string{DublinCoreNamespace, SyndicationNamespace, SlashNamespace, ITunesNamespace} {
		d, ok := r.ByNamespace(ns)
		require.True(t, ok, ns)
		ext := d.New()
		require.NotNil(t, ext)
		assert.Equal(t, ns, ext.Namespace())
		assert.Equal(t, d.Name, ext.Name())
	}
}

func TestExtensionContainerOperations(t *testing.T) {
	c := &ExtensionContainer{}
	assert.False(t, c.HasExtensions())

	first := &flagExtension{Flag: true}
	second := &flagExtension{}
	c.AddExtension(first)
	c.AddExtension(second)
	assert.Len(t, c.Extensions(), 2)

	found, ok := c.FindExtension(func(e Extension) bool {
		f, ok := e.(*flagExtension)
		return ok && f.Flag
	})
	require.True(t, ok)
	assert.Same(t, first, found)

	assert.True(t, c.RemoveExtension(first))
	assert.False(t, c.RemoveExtension(first))
	require.Len(t, c.Extensions(), 1)
	assert.Same(t, second, c.Extensions()[0].(*flagExtension))

	assert.Panics(t, func() { c.AddExtension(nil) })
}

func TestCollectNamespaces(t *testing.T) {
	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromString(`<rss xmlns:dc="http://purl.org/dc/elements/1.1/" version="2.0">
		<channel>
			<item xmlns:slash="http://purl.org/rss/1.0/modules/slash/"/>
		</channel>
	</rss>`))

	set := CollectNamespaces(doc.Root())
	assert.True(t, set.Contains(DublinCoreNamespace))
	assert.True(t, set.Contains(SlashNamespace))
	assert.False(t, set.Contains(ITunesNamespace))
}
