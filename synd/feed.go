package synd

import "time"

// Feed is a format-neutral syndication document: the channel-level metadata
// shared by RSS 2.0 and Atom 1.0, the entries, and any attached extensions.
type Feed struct {
	// Title is the channel or feed title.
	Title string
	// Link is the primary link of the feed.
	Link string
	// Description is the channel description (RSS) or subtitle (Atom).
	Description string
	// ID is the feed identifier (Atom). Empty for RSS sources.
	ID string
	// Updated is the last-updated timestamp, zero when absent or unparseable.
	Updated time.Time
	// Authors lists author names.
	Authors []string
	// Common carries the base URI and content language.
	Common CommonAttributes

	// Items are the feed's entries in document order.
	Items []*Item

	ExtensionContainer
}

// Item is a single feed entry.
type Item struct {
	// Title is the entry title.
	Title string
	// Link is the entry's primary link.
	Link string
	// Description is the entry description (RSS) or summary (Atom).
	Description string
	// GUID is the entry identifier (RSS guid or Atom id).
	GUID string
	// Published is the publication timestamp, zero when absent or unparseable.
	Published time.Time
	// Authors lists author names.
	Authors []string
	// Common carries the base URI and content language.
	Common CommonAttributes

	ExtensionContainer
}

// Compare applies the comparison protocol to the feed's channel-level
// fields: title, link, description, common attributes.
func (f *Feed) Compare(o *Feed) int {
	if f == nil || o == nil {
		switch {
		case f == o:
			return 0
		case f == nil:
			return -1
		default:
			return 1
		}
	}
	return CombineComparisons(
		CompareStrings(f.Title, o.Title),
		CompareURIs(f.Link, o.Link),
		CompareStrings(f.Description, o.Description),
		f.Common.Compare(o.Common),
	)
}

// Compare applies the comparison protocol to the entry's fields: title,
// link, identifier, description, common attributes.
func (it *Item) Compare(o *Item) int {
	if it == nil || o == nil {
		switch {
		case it == o:
			return 0
		case it == nil:
			return -1
		default:
			return 1
		}
	}
	return CombineComparisons(
		CompareStrings(it.Title, o.Title),
		CompareURIs(it.Link, o.Link),
		CompareStrings(it.GUID, o.GUID),
		CompareStrings(it.Description, o.Description),
		it.Common.Compare(o.Common),
	)
}

// extensibleEntities returns the feed and every item as the traversal set
// handed to NamespaceWriter.Declare.
func (f *Feed) extensibleEntities() []ExtensibleEntity {
	entities := make([]ExtensibleEntity, 0, len(f.Items)+1)
	entities = append(entities, f)
	for _, item := range f.Items {
		entities = append(entities, item)
	}
	return entities
}
