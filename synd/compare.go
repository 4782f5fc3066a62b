package synd

import (
	"hash/fnv"
	"net/url"
	"strings"
	"time"

	"github.com/beevik/etree"
	"golang.org/x/text/language"
)

// Comparison protocol shared by extensions, common attributes and feed
// entities: each semantically significant field is compared in a fixed
// declared order and the per-field results are combined with CombineComparisons.
//
// The combination rule is a bitwise OR of the signed per-field results,
// reproduced here faithfully from the system this package is compatible
// with. OR of signed integers is not a valid total-order composition: when
// two fields disagree in sign the negative result dominates in both
// directions, so the ordering is coarse and non-transitive. Callers needing
// only equality (combined result zero) are unaffected.

// CombineComparisons folds per-field comparison results with bitwise OR.
// Each input is normalized to -1, 0 or 1 first, so the combined value is
// -1 when any field compares negative, otherwise 1 when any field compares
// positive, otherwise 0.
func CombineComparisons(fields ...int) int {
	combined := 0
	for _, f := range fields {
		switch {
		case f < 0:
			combined |= -1
		case f > 0:
			combined |= 1
		}
	}
	return combined
}

// CompareStrings compares two strings ordinally, ignoring case.
func CompareStrings(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

// CompareInts compares two integers.
func CompareInts(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// CompareTimes compares two timestamps; the zero time sorts first.
func CompareTimes(a, b time.Time) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	default:
		return 0
	}
}

// CompareURIs compares two URI references as absolute-URI strings. References
// that fail to parse fall back to ordinal comparison of the raw text.
func CompareURIs(a, b string) int {
	return strings.Compare(absoluteURI(a), absoluteURI(b))
}

func absoluteURI(ref string) string {
	u, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	return u.String()
}

// CompareLanguages compares two language tags as normalized tag strings.
// The undefined tag sorts before any defined tag.
func CompareLanguages(a, b language.Tag) int {
	if a == language.Und || b == language.Und {
		switch {
		case a == b:
			return 0
		case a == language.Und:
			return -1
		default:
			return 1
		}
	}
	return strings.Compare(strings.ToLower(a.String()), strings.ToLower(b.String()))
}

// CompareExtensions applies the comparison protocol to two extension values
// of any kind: namespace URI, module name, then serialized content.
func CompareExtensions(a, b Extension) int {
	if a == nil || b == nil {
		switch {
		case a == b:
			return 0
		case a == nil:
			return -1
		default:
			return 1
		}
	}
	return CombineComparisons(
		CompareURIs(a.Namespace(), b.Namespace()),
		CompareStrings(a.Name(), b.Name()),
		CompareStrings(serializeExtension(a), serializeExtension(b)),
	)
}

// serializeExtension renders an extension's element content in a scratch
// document under a fixed prefix, yielding a canonical text for comparison
// and hashing.
func serializeExtension(ext Extension) string {
	doc := etree.NewDocument()
	root := doc.CreateElement("scratch")
	ext.WriteTo(root, NamespaceScope{ext.Namespace(): "x"})
	s, err := doc.WriteToString()
	if err != nil {
		return ""
	}
	return s
}

// HashExtension returns the FNV-64a hash of the extension's serialized XML
// text. Extensions equal under CompareExtensions hash identically.
func HashExtension(ext Extension) uint64 {
	doc := etree.NewDocument()
	root := doc.CreateElement("scratch")
	ext.WriteTo(root, NamespaceScope{ext.Namespace(): "x"})
	return HashXML(root)
}

// HashXML returns the FNV-64a hash of an element's serialized XML text,
// the hashing rule entities use alongside the comparison protocol.
func HashXML(el *etree.Element) uint64 {
	h := fnv.New64a()
	if el != nil {
		doc := etree.NewDocument()
		doc.SetRoot(el.Copy())
		s, err := doc.WriteToString()
		if err == nil {
			h.Write([]byte(s))
		}
	}
	return h.Sum64()
}
