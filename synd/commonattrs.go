package synd

import (
	"strings"

	"github.com/beevik/etree"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

// CommonAttributes is the small bundle of fields shared by entity kinds
// across formats: the base reference URI (xml:base) and the content language
// (xml:lang).
type CommonAttributes struct {
	// BaseURI is the xml:base reference, empty when absent.
	BaseURI string
	// Language is the xml:lang tag, language.Und when absent or unparseable.
	Language language.Tag
}

// IsZero reports whether no common attribute is set.
func (c CommonAttributes) IsZero() bool {
	return c.BaseURI == "" && c.Language == language.Und
}

// Compare applies the comparison protocol: base URI, then language tag.
func (c CommonAttributes) Compare(o CommonAttributes) int {
	return CombineComparisons(
		CompareURIs(c.BaseURI, o.BaseURI),
		CompareLanguages(c.Language, o.Language),
	)
}

// parseCommonAttributes reads xml:base and xml:lang from el. An unparseable
// language tag is a best-effort field: it is logged and left unset, never
// escalated.
func parseCommonAttributes(el *etree.Element, logger *zap.Logger) CommonAttributes {
	c := CommonAttributes{Language: language.Und}
	if el == nil {
		return c
	}
	c.BaseURI = el.SelectAttrValue("xml:base", "")
	c.Language = parseLanguage(el.SelectAttrValue("xml:lang", ""), logger)
	return c
}

// parseLanguage parses a language tag, tolerating the usual feed sloppiness
// (surrounding whitespace, underscores for hyphens).
func parseLanguage(raw string, logger *zap.Logger) language.Tag {
	lang := strings.TrimSpace(raw)
	if lang == "" {
		return language.Und
	}
	tag, err := language.Parse(lang)
	if err == nil {
		return tag
	}
	tag, err = language.Parse(strings.ReplaceAll(lang, "_", "-"))
	if err == nil {
		return tag
	}
	if logger != nil {
		logger.Warn("unable to parse language tag", zap.String("lang", raw))
	}
	return language.Und
}

// writeCommonAttributes emits xml:base and xml:lang on el for the fields set.
func writeCommonAttributes(el *etree.Element, c CommonAttributes) {
	if c.BaseURI != "" {
		el.CreateAttr("xml:base", c.BaseURI)
	}
	if c.Language != language.Und {
		el.CreateAttr("xml:lang", c.Language.String())
	}
}
