package synd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

func TestParseCommonAttributes(t *testing.T) {
	el := parseElement(t, `<entry xml:base="http://example.com/" xml:lang="en-US"/>`)
	c := parseCommonAttributes(el, zap.NewNop())

	assert.Equal(t, "http://example.com/", c.BaseURI)
	assert.Equal(t, language.MustParse("en-US"), c.Language)
	assert.False(t, c.IsZero())
}

func TestParseCommonAttributesAbsent(t *testing.T) {
	el := parseElement(t, `<entry/>`)
	c := parseCommonAttributes(el, zap.NewNop())

	assert.Equal(t, "", c.BaseURI)
	assert.Equal(t, language.Und, c.Language)
	assert.True(t, c.IsZero())
}

func TestParseLanguageBestEffort(t *testing.T) {
	// Malformed tags are a diagnostic, not an error: the field stays unset.
	assert.Equal(t, language.Und, parseLanguage("!!not-a-tag!!", zap.NewNop()))
	assert.Equal(t, language.Und, parseLanguage("", nil))

	// Underscores, a common feed sloppiness, are tolerated.
	tag := parseLanguage("pt_BR", zap.NewNop())
	require.NotEqual(t, language.Und, tag)
	assert.Equal(t, "pt-BR", tag.String())

	tag = parseLanguage("  en  ", nil)
	assert.Equal(t, "en", tag.String())
}

func TestCommonAttributesCompare(t *testing.T) {
	a := CommonAttributes{BaseURI: "http://example.com/", Language: language.MustParse("en")}
	b := CommonAttributes{BaseURI: "http://example.com/", Language: language.MustParse("en")}
	assert.Equal(t, 0, a.Compare(b))

	b.Language = language.MustParse("fr")
	assert.Equal(t, -1, a.Compare(b))
}

func TestWriteCommonAttributes(t *testing.T) {
	el := parseElement(t, `<entry/>`)
	writeCommonAttributes(el, CommonAttributes{
		BaseURI:  "http://example.com/",
		Language: language.MustParse("en"),
	})

	assert.Equal(t, "http://example.com/", el.SelectAttrValue("xml:base", ""))
	assert.Equal(t, "en", el.SelectAttrValue("xml:lang", ""))

	empty := parseElement(t, `<entry/>`)
	writeCommonAttributes(empty, CommonAttributes{})
	assert.Empty(t, empty.Attr)
}
