package synd

import (
	"errors"
	"time"

	"github.com/beevik/etree"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AtomNamespace is the Atom 1.0 namespace URI.
const AtomNamespace = "http://www.w3.org/2005/Atom"

// loadAtom maps an Atom 1.0 document onto a Feed.
func loadAtom(doc *etree.Document, options Options) (*Feed, error) {
	root := doc.Root()
	if root == nil || root.Tag != "feed" {
		return nil, wrapParseError("atom", "", errors.New("missing feed root element"))
	}

	logger := options.Logger
	ambient := CollectNamespaces(root)
	adapter := &Adapter{registry: options.registry(), logger: logger}

	feed := &Feed{}
	feed.Common = parseCommonAttributes(root, logger)
	for _, child := range root.ChildElements() {
		if !atomElement(child) {
			continue // extension content, handled by the adapter
		}
		switch child.Tag {
		case "title":
			feed.Title = elementText(child.Text())
		case "subtitle":
			feed.Description = elementText(child.Text())
		case "id":
			feed.ID = elementText(child.Text())
		case "updated":
			feed.Updated = parseTimeValue(child.Text(), w3cdtfLayouts, logger, "updated")
		case "link":
			if feed.Link == "" || child.SelectAttrValue("rel", "alternate") == "alternate" {
				feed.Link = child.SelectAttrValue("href", feed.Link)
			}
		case "author":
			if name := atomPersonName(child); name != "" {
				feed.Authors = append(feed.Authors, name)
			}
		case "entry":
			feed.Items = append(feed.Items, loadAtomEntry(child, adapter, ambient, options))
		case "generator", "icon", "logo", "rights", "contributor", "category":
			// Recognized Atom feed elements with no Feed mapping.
		default:
			logger.Debug("unexpected element in feed, ignoring",
				zap.String("parent", root.Tag), zap.String("tag", child.Tag))
		}
	}
	if options.ExtensionsEnabled {
		adapter.Fill(feed, root, ambient)
	}
	return feed, nil
}

func loadAtomEntry(el *etree.Element, adapter *Adapter, ambient NamespaceSet, options Options) *Item {
	logger := options.Logger
	item := &Item{}
	item.Common = parseCommonAttributes(el, logger)
	for _, child := range el.ChildElements() {
		if !atomElement(child) {
			continue
		}
		switch child.Tag {
		case "title":
			item.Title = elementText(child.Text())
		case "id":
			item.GUID = elementText(child.Text())
		case "summary", "content":
			if item.Description == "" {
				item.Description = elementText(child.Text())
			}
		case "updated", "published":
			if item.Published.IsZero() {
				item.Published = parseTimeValue(child.Text(), w3cdtfLayouts, logger, child.Tag)
			}
		case "link":
			if item.Link == "" || child.SelectAttrValue("rel", "alternate") == "alternate" {
				item.Link = child.SelectAttrValue("href", item.Link)
			}
		case "author":
			if name := atomPersonName(child); name != "" {
				item.Authors = append(item.Authors, name)
			}
		case "contributor", "category", "rights", "source":
			// Recognized Atom entry elements with no Item mapping.
		default:
			logger.Debug("unexpected element in entry, ignoring",
				zap.String("parent", el.Tag), zap.String("tag", child.Tag))
		}
	}
	if options.ExtensionsEnabled {
		adapter.Fill(item, el, ambient)
	}
	return item
}

// atomElement reports whether el belongs to the Atom namespace, either
// through the default namespace or an explicit prefix.
func atomElement(el *etree.Element) bool {
	uri := el.NamespaceURI()
	return uri == AtomNamespace || (uri == "" && el.Space == "")
}

func atomPersonName(el *etree.Element) string {
	for _, child := range el.ChildElements() {
		if child.Tag == "name" {
			return elementText(child.Text())
		}
	}
	return ""
}

// buildAtom renders the feed as an Atom 1.0 etree document. Entries carrying
// no identifier are assigned a urn:uuid ID, as Atom requires one.
func buildAtom(feed *Feed, options Options) *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := doc.CreateElement("feed")
	root.CreateAttr("xmlns", AtomNamespace)
	writeCommonAttributes(root, feed.Common)

	nsw := NewNamespaceWriter(options.registry())
	scope := nsw.Declare(root, feed.extensibleEntities()...)

	id := feed.ID
	if id == "" {
		id = "urn:uuid:" + uuid.NewString()
	}
	root.CreateElement("id").SetText(id)
	root.CreateElement("title").SetText(feed.Title)
	if feed.Description != "" {
		root.CreateElement("subtitle").SetText(feed.Description)
	}
	updated := feed.Updated
	if updated.IsZero() {
		updated = time.Now().UTC()
	}
	root.CreateElement("updated").SetText(updated.Format(time.RFC3339))
	if feed.Link != "" {
		link := root.CreateElement("link")
		link.CreateAttr("rel", "alternate")
		link.CreateAttr("href", feed.Link)
	}
	for _, name := range feed.Authors {
		root.CreateElement("author").CreateElement("name").SetText(name)
	}
	nsw.WriteExtensions(root, feed, scope)

	for _, item := range feed.Items {
		el := root.CreateElement("entry")
		writeCommonAttributes(el, item.Common)
		entryID := item.GUID
		if entryID == "" {
			entryID = "urn:uuid:" + uuid.NewString()
		}
		el.CreateElement("id").SetText(entryID)
		el.CreateElement("title").SetText(item.Title)
		published := item.Published
		if published.IsZero() {
			published = updated
		}
		el.CreateElement("updated").SetText(published.Format(time.RFC3339))
		if item.Link != "" {
			link := el.CreateElement("link")
			link.CreateAttr("rel", "alternate")
			link.CreateAttr("href", item.Link)
		}
		if item.Description != "" {
			el.CreateElement("summary").SetText(item.Description)
		}
		for _, name := range item.Authors {
			el.CreateElement("author").CreateElement("name").SetText(name)
		}
		nsw.WriteExtensions(el, item, scope)
	}
	return doc
}
