package synd

import (
	"strings"
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeclareMinimization(t *testing.T) {
	feedEntity := &ExtensionContainer{}
	feedEntity.AddExtension(&DublinCore{Creator: "a"})
	itemEntity := &ExtensionContainer{}
	itemEntity.AddExtension(&Slash{Section: "s"})
	itemEntity.AddExtension(&DublinCore{Creator: "b"})

	doc := etree.NewDocument()
	root := doc.CreateElement("rss")
	nsw := NewNamespaceWriter(DefaultRegistry())
	scope := nsw.Declare(root, feedEntity, itemEntity)

	// Declared set equals used set: dc and slash, nothing else. The
	// registered but unused sy/itunes namespaces must not appear.
	declared := map[string]string{}
	for _, attr := range root.Attr {
		if attr.Space == "xmlns" {
			declared[attr.Value] = attr.Key
		}
	}
	assert.Len(t, declared, 2)
	assert.Equal(t, "dc", declared[DublinCoreNamespace])
	assert.Equal(t, "slash", declared[SlashNamespace])
	assert.Equal(t, "dc", scope.Prefix(DublinCoreNamespace))
	assert.Equal(t, "", scope.Prefix(SyndicationNamespace))
}

func TestDeclareNoExtensionsDeclaresNothing(t *testing.T) {
	doc := etree.NewDocument()
	root := doc.CreateElement("rss")
	scope := NewNamespaceWriter(DefaultRegistry()).Declare(root, &ExtensionContainer{})

	assert.Empty(t, scope)
	for _, attr := range root.Attr {
		assert.NotEqual(t, "xmlns", attr.Space)
	}
}

func TestDeclareGeneratesPrefixWithoutHint(t *testing.T) {
	registry := NewRegistry()
	registry.Register(Descriptor{
		Namespace: testExtNamespace,
		Name:      "ext",
		New:       func() Extension { return &flagExtension{} },
	})
	entity := &ExtensionContainer{}
	entity.AddExtension(&flagExtension{Flag: true})

	doc := etree.NewDocument()
	root := doc.CreateElement("root")
	scope := NewNamespaceWriter(registry).Declare(root, entity)

	assert.Equal(t, "ext0", scope.Prefix(testExtNamespace))
	assert.Equal(t, testExtNamespace, root.SelectAttrValue("xmlns:ext0", ""))
}

func TestDeclareResolvesPrefixCollisions(t *testing.T) {
	registry := NewRegistry()
	registry.Register(Descriptor{
		Namespace: "urn:test:one",
		Name:      "one",
		Prefix:    "dc",
		New:       func() Extension { return &flagExtension{} },
	})
	registry.Register(DublinCoreDescriptor())

	one := &collisionExtension{ns: "urn:test:one"}
	entity := &ExtensionContainer{}
	entity.AddExtension(one)
	entity.AddExtension(&DublinCore{Creator: "x"})

	doc := etree.NewDocument()
	root := doc.CreateElement("root")
	scope := NewNamespaceWriter(registry).Declare(root, entity)

	assert.Equal(t, "dc", scope.Prefix("urn:test:one"))
	assert.Equal(t, "dc2", scope.Prefix(DublinCoreNamespace))
	assert.Equal(t, DublinCoreNamespace, root.SelectAttrValue("xmlns:dc2", ""))
}

func TestWriteExtensionsUsesScopePrefixes(t *testing.T) {
	entity := &ExtensionContainer{}
	entity.AddExtension(&DublinCore{Creator: "ada"})

	doc := etree.NewDocument()
	root := doc.CreateElement("root")
	nsw := NewNamespaceWriter(DefaultRegistry())
	scope := nsw.Declare(root, entity)
	nsw.WriteExtensions(root, entity, scope)

	out, err := doc.WriteToString()
	require.NoError(t, err)
	assert.Contains(t, out, `<dc:creator>ada</dc:creator>`)
	// Declared once at the root, never re-declared deeper.
	assert.Equal(t, 1, strings.Count(out, `xmlns:dc=`))
}

func TestNamespaceWriterNilArgumentsPanic(t *testing.T) {
	nsw := NewNamespaceWriter(nil)
	doc := etree.NewDocument()
	root := doc.CreateElement("root")

	assert.Panics(t, func() { nsw.Declare(nil) })
	assert.Panics(t, func() { nsw.WriteExtensions(nil, &ExtensionContainer{}, NamespaceScope{}) })
	assert.Panics(t, func() { nsw.WriteExtensions(root, nil, NamespaceScope{}) })
	assert.Panics(t, func() { nsw.WriteExtensions(root, &ExtensionContainer{}, nil) })
}

// collisionExtension reports an arbitrary namespace so prefix collision
// handling can be exercised.
type collisionExtension struct {
	ns string
}

func (c *collisionExtension) Namespace() string { return c.ns }
func (c *collisionExtension) Name() string      { return "collision" }

func (c *collisionExtension) Parse(el *etree.Element) bool { return false }

func (c *collisionExtension) WriteTo(parent *etree.Element, scope NamespaceScope) {
	parent.CreateElement(scope.Prefix(c.ns) + ":value").SetText("v")
}
