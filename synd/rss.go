package synd

import (
	"errors"
	"time"

	"github.com/beevik/etree"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

// loadRSS maps an RSS 2.0 document onto a Feed. Unqualified channel/item
// children it does not recognize are logged and skipped; namespace-qualified
// children are left to the extension adapter.
func loadRSS(doc *etree.Document, options Options) (*Feed, error) {
	root := doc.Root()
	if root == nil || root.Tag != "rss" {
		return nil, wrapParseError("rss", "", errors.New("missing rss root element"))
	}
	channel := root.SelectElement("channel")
	if channel == nil {
		return nil, wrapParseError("rss", "rss", errors.New("missing channel element"))
	}

	logger := options.Logger
	ambient := CollectNamespaces(root)
	adapter := &Adapter{registry: options.registry(), logger: logger}

	feed := &Feed{}
	feed.Common = parseCommonAttributes(channel, logger)
	for _, child := range channel.ChildElements() {
		if child.Space != "" {
			continue // extension content, handled by the adapter
		}
		switch child.Tag {
		case "title":
			feed.Title = elementText(child.Text())
		case "link":
			feed.Link = elementText(child.Text())
		case "description":
			feed.Description = elementText(child.Text())
		case "language":
			feed.Common.Language = parseLanguage(child.Text(), logger)
		case "pubDate", "lastBuildDate":
			if feed.Updated.IsZero() {
				feed.Updated = parseTimeValue(child.Text(), rssTimeLayouts, logger, child.Tag)
			}
		case "managingEditor", "webMaster":
			if name := elementText(child.Text()); name != "" {
				feed.Authors = append(feed.Authors, name)
			}
		case "item":
			feed.Items = append(feed.Items, loadRSSItem(child, adapter, ambient, options))
		case "generator", "docs", "ttl", "category", "copyright", "image", "cloud", "rating", "skipHours", "skipDays", "textInput":
			// Recognized RSS 2.0 channel elements with no Feed mapping.
		default:
			logger.Debug("unexpected element in channel, ignoring",
				zap.String("parent", channel.Tag), zap.String("tag", child.Tag))
		}
	}
	if options.ExtensionsEnabled {
		adapter.Fill(feed, channel, ambient)
	}
	return feed, nil
}

func loadRSSItem(el *etree.Element, adapter *Adapter, ambient NamespaceSet, options Options) *Item {
	logger := options.Logger
	item := &Item{}
	item.Common = parseCommonAttributes(el, logger)
	for _, child := range el.ChildElements() {
		if child.Space != "" {
			continue
		}
		switch child.Tag {
		case "title":
			item.Title = elementText(child.Text())
		case "link":
			item.Link = elementText(child.Text())
		case "description":
			item.Description = elementText(child.Text())
		case "guid":
			item.GUID = elementText(child.Text())
		case "pubDate":
			item.Published = parseTimeValue(child.Text(), rssTimeLayouts, logger, "pubDate")
		case "author":
			if name := elementText(child.Text()); name != "" {
				item.Authors = append(item.Authors, name)
			}
		case "category", "comments", "enclosure", "source":
			// Recognized RSS 2.0 item elements with no Item mapping.
		default:
			logger.Debug("unexpected element in item, ignoring",
				zap.String("parent", el.Tag), zap.String("tag", child.Tag))
		}
	}
	if options.ExtensionsEnabled {
		adapter.Fill(item, el, ambient)
	}
	return item
}

// buildRSS renders the feed as an RSS 2.0 etree document. The namespace
// writer declares every extension namespace in use on the <rss> root before
// any extension content is written.
func buildRSS(feed *Feed, options Options) *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := doc.CreateElement("rss")
	root.CreateAttr("version", "2.0")

	nsw := NewNamespaceWriter(options.registry())
	scope := nsw.Declare(root, feed.extensibleEntities()...)

	channel := root.CreateElement("channel")
	if feed.Common.BaseURI != "" {
		channel.CreateAttr("xml:base", feed.Common.BaseURI)
	}
	channel.CreateElement("title").SetText(feed.Title)
	channel.CreateElement("link").SetText(feed.Link)
	channel.CreateElement("description").SetText(feed.Description)
	if feed.Common.Language != language.Und {
		channel.CreateElement("language").SetText(feed.Common.Language.String())
	}
	if !feed.Updated.IsZero() {
		channel.CreateElement("lastBuildDate").SetText(feed.Updated.Format(time.RFC1123Z))
	}
	for _, name := range feed.Authors {
		channel.CreateElement("managingEditor").SetText(name)
	}
	nsw.WriteExtensions(channel, feed, scope)

	for _, item := range feed.Items {
		el := channel.CreateElement("item")
		if item.Common.BaseURI != "" {
			el.CreateAttr("xml:base", item.Common.BaseURI)
		}
		if item.Common.Language != language.Und {
			el.CreateAttr("xml:lang", item.Common.Language.String())
		}
		if item.Title != "" {
			el.CreateElement("title").SetText(item.Title)
		}
		if item.Link != "" {
			el.CreateElement("link").SetText(item.Link)
		}
		if item.Description != "" {
			el.CreateElement("description").SetText(item.Description)
		}
		if item.GUID != "" {
			el.CreateElement("guid").SetText(item.GUID)
		}
		if !item.Published.IsZero() {
			el.CreateElement("pubDate").SetText(item.Published.Format(time.RFC1123Z))
		}
		for _, name := range item.Authors {
			el.CreateElement("author").SetText(name)
		}
		nsw.WriteExtensions(el, item, scope)
	}
	return doc
}
