package synd

import (
	"time"

	"github.com/piprate/json-gold/ld"
	"golang.org/x/text/language"
)

const schemaOrgIRI = "https://schema.org/"

// FeedJSONLD renders the feed's channel metadata as a compacted schema.org
// JSON-LD document (a DataFeed with DataFeedItem elements), suitable for
// embedding alongside the XML serialization. Extension content is not
// exported; this covers the format-neutral channel fields only.
//
// A nil feed is a caller bug and panics.
func FeedJSONLD(feed *Feed) (map[string]interface{}, error) {
	if feed == nil {
		panic("synd: FeedJSONLD called with nil feed")
	}

	node := map[string]interface{}{
		"@type": schemaOrgIRI + "DataFeed",
	}
	node[schemaOrgIRI+"name"] = feed.Title
	if feed.ID != "" {
		node["@id"] = feed.ID
	}
	if feed.Link != "" {
		node[schemaOrgIRI+"url"] = map[string]interface{}{"@id": feed.Link}
	}
	if feed.Description != "" {
		node[schemaOrgIRI+"description"] = feed.Description
	}
	if !feed.Updated.IsZero() {
		node[schemaOrgIRI+"dateModified"] = feed.Updated.UTC().Format(time.RFC3339)
	}
	if feed.Common.Language != language.Und {
		node[schemaOrgIRI+"inLanguage"] = feed.Common.Language.String()
	}
	if len(feed.Items) > 0 {
		elements := make([]interface{}, 0, len(feed.Items))
		for _, item := range feed.Items {
			elements = append(elements, itemJSONLDNode(item))
		}
		node[schemaOrgIRI+"dataFeedElement"] = elements
	}

	// Compact against an inline context so no remote document loading is
	// needed.
	context := map[string]interface{}{
		"@context": map[string]interface{}{
			"@vocab": schemaOrgIRI,
		},
	}
	proc := ld.NewJsonLdProcessor()
	opts := ld.NewJsonLdOptions("")
	return proc.Compact(node, context, opts)
}

func itemJSONLDNode(item *Item) map[string]interface{} {
	node := map[string]interface{}{
		"@type": schemaOrgIRI + "DataFeedItem",
	}
	if item.GUID != "" {
		node["@id"] = item.GUID
	}
	if item.Title != "" {
		node[schemaOrgIRI+"name"] = item.Title
	}
	if item.Link != "" {
		node[schemaOrgIRI+"url"] = map[string]interface{}{"@id": item.Link}
	}
	if item.Description != "" {
		node[schemaOrgIRI+"description"] = item.Description
	}
	if !item.Published.IsZero() {
		node[schemaOrgIRI+"datePublished"] = item.Published.UTC().Format(time.RFC3339)
	}
	return node
}
