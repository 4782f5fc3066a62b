package synd

import (
	"time"

	"github.com/beevik/etree"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

// DublinCoreNamespace is the Dublin Core Metadata Element Set namespace URI.
const DublinCoreNamespace = "http://purl.org/dc/elements/1.1/"

// DublinCoreDescriptor returns the registration record for the Dublin Core
// extension module.
func DublinCoreDescriptor() Descriptor {
	return Descriptor{
		Namespace: DublinCoreNamespace,
		Name:      "dc",
		Prefix:    "dc",
		New:       func() Extension { return &DublinCore{} },
	}
}

// DublinCore carries the Dublin Core metadata elements attachable to a
// channel or item. Fields with malformed source content (dates, language
// tags) are left unset; the rest of the module still loads.
type DublinCore struct {
	Title       string
	Creator     string
	Subject     string
	Description string
	Publisher   string
	// Date is the dc:date value, zero when absent or unparseable.
	Date time.Time
	// Language is the dc:language tag, language.Und when absent or
	// unparseable.
	Language language.Tag

	log *zap.Logger
}

func (d *DublinCore) setLogger(l *zap.Logger) { d.log = l }

// Namespace returns the Dublin Core namespace URI.
func (d *DublinCore) Namespace() string { return DublinCoreNamespace }

// Name returns "dc".
func (d *DublinCore) Name() string { return "dc" }

// Parse extracts Dublin Core elements among el's children. It reports
// whether any were found.
func (d *DublinCore) Parse(el *etree.Element) bool {
	found := false
	for _, child := range el.ChildElements() {
		if child.NamespaceURI() != DublinCoreNamespace {
			continue
		}
		switch child.Tag {
		case "title":
			d.Title = elementText(child.Text())
		case "creator":
			d.Creator = elementText(child.Text())
		case "subject":
			d.Subject = elementText(child.Text())
		case "description":
			d.Description = elementText(child.Text())
		case "publisher":
			d.Publisher = elementText(child.Text())
		case "date":
			d.Date = parseTimeValue(child.Text(), w3cdtfLayouts, d.log, "dc:date")
		case "language":
			d.Language = parseLanguage(child.Text(), d.log)
		default:
			if d.log != nil {
				d.log.Debug("unmapped dublin core element, ignoring", zap.String("tag", child.Tag))
			}
			continue
		}
		found = true
	}
	return found
}

// WriteTo appends the set Dublin Core elements to parent using the prefix
// assigned in scope.
func (d *DublinCore) WriteTo(parent *etree.Element, scope NamespaceScope) {
	prefix := scope.Prefix(DublinCoreNamespace)
	write := func(tag, text string) {
		parent.CreateElement(prefix + ":" + tag).SetText(text)
	}
	if d.Title != "" {
		write("title", d.Title)
	}
	if d.Creator != "" {
		write("creator", d.Creator)
	}
	if d.Subject != "" {
		write("subject", d.Subject)
	}
	if d.Description != "" {
		write("description", d.Description)
	}
	if d.Publisher != "" {
		write("publisher", d.Publisher)
	}
	if !d.Date.IsZero() {
		write("date", d.Date.UTC().Format(time.RFC3339))
	}
	if d.Language != language.Und {
		write("language", d.Language.String())
	}
}

// Compare applies the comparison protocol across the module's fields in
// declared order.
func (d *DublinCore) Compare(o *DublinCore) int {
	if d == nil || o == nil {
		switch {
		case d == o:
			return 0
		case d == nil:
			return -1
		default:
			return 1
		}
	}
	return CombineComparisons(
		CompareStrings(d.Title, o.Title),
		CompareStrings(d.Creator, o.Creator),
		CompareStrings(d.Subject, o.Subject),
		CompareStrings(d.Description, o.Description),
		CompareStrings(d.Publisher, o.Publisher),
		CompareTimes(d.Date, o.Date),
		CompareLanguages(d.Language, o.Language),
	)
}
