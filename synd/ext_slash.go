package synd

import (
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"go.uber.org/zap"
)

// SlashNamespace is the Slash metadata module namespace URI.
const SlashNamespace = "http://purl.org/rss/1.0/modules/slash/"

// SlashDescriptor returns the registration record for the Slash extension
// module.
func SlashDescriptor() Descriptor {
	return Descriptor{
		Namespace: SlashNamespace,
		Name:      "slash",
		Prefix:    "slash",
		New:       func() Extension { return &Slash{} },
	}
}

// Slash carries the Slash site metadata attachable to an item.
type Slash struct {
	Section    string
	Department string
	// Comments is the slash:comments count, nil when absent or malformed.
	Comments *int
	// HitParade is the slash:hit_parade comma-separated count list.
	HitParade []int

	log *zap.Logger
}

func (s *Slash) setLogger(l *zap.Logger) { s.log = l }

// Namespace returns the Slash module namespace URI.
func (s *Slash) Namespace() string { return SlashNamespace }

// Name returns "slash".
func (s *Slash) Name() string { return "slash" }

// Parse extracts Slash module elements among el's children. It reports
// whether any were found.
func (s *Slash) Parse(el *etree.Element) bool {
	found := false
	for _, child := range el.ChildElements() {
		if child.NamespaceURI() != SlashNamespace {
			continue
		}
		switch child.Tag {
		case "section":
			s.Section = elementText(child.Text())
		case "department":
			s.Department = elementText(child.Text())
		case "comments":
			if n, ok := parseIntValue(child.Text(), s.log, "slash:comments"); ok {
				s.Comments = &n
			}
		case "hit_parade":
			s.HitParade = parseHitParade(child.Text(), s.log)
		default:
			continue
		}
		found = true
	}
	return found
}

// WriteTo appends the set Slash elements to parent using the prefix
// assigned in scope.
func (s *Slash) WriteTo(parent *etree.Element, scope NamespaceScope) {
	prefix := scope.Prefix(SlashNamespace)
	if s.Section != "" {
		parent.CreateElement(prefix + ":section").SetText(s.Section)
	}
	if s.Department != "" {
		parent.CreateElement(prefix + ":department").SetText(s.Department)
	}
	if s.Comments != nil {
		parent.CreateElement(prefix + ":comments").SetText(strconv.Itoa(*s.Comments))
	}
	if len(s.HitParade) > 0 {
		parts := make([]string, len(s.HitParade))
		for i, n := range s.HitParade {
			parts[i] = strconv.Itoa(n)
		}
		parent.CreateElement(prefix + ":hit_parade").SetText(strings.Join(parts, ","))
	}
}

// parseHitParade parses the comma-separated hit_parade list. Malformed
// entries are skipped individually.
func parseHitParade(value string, logger *zap.Logger) []int {
	var out []int
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			if logger != nil {
				logger.Debug("skipping malformed hit_parade entry", zap.String("value", part))
			}
			continue
		}
		out = append(out, n)
	}
	return out
}

// Compare applies the comparison protocol across the module's fields in
// declared order.
func (s *Slash) Compare(o *Slash) int {
	if s == nil || o == nil {
		switch {
		case s == o:
			return 0
		case s == nil:
			return -1
		default:
			return 1
		}
	}
	return CombineComparisons(
		CompareStrings(s.Section, o.Section),
		CompareStrings(s.Department, o.Department),
		compareOptionalInts(s.Comments, o.Comments),
		CompareInts(len(s.HitParade), len(o.HitParade)),
	)
}

func compareOptionalInts(a, b *int) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	default:
		return CompareInts(*a, *b)
	}
}
