// Package synd parses and serializes XML web-syndication documents (RSS 2.0,
// Atom 1.0) with namespace-driven support for vendor extension modules.
//
// The package centers on three cooperating pieces:
//   - Registry: a catalog of extension Descriptors keyed by namespace URI.
//   - Adapter: discovers which registered extensions a document declares and
//     attaches parsed extension values to feed entities, in registration order.
//   - NamespaceWriter: collects the namespaces actually used by attached
//     extensions and declares exactly those, once, on the document root.
//
// Example (parsing a feed):
//
//	feed, err := synd.Parse(ctx, r, synd.FormatAuto)
//	if err != nil {
//	    // handle error
//	}
//	for _, item := range feed.Items {
//	    // process item.Title, item.Extensions(), ...
//	}
//
// Example (writing a feed):
//
//	err := synd.Write(ctx, w, feed, synd.FormatRSS)
//
// Unknown extension namespaces never cause a parse failure: a document that
// declares namespaces with no registered Descriptor loads successfully with
// those extensions simply absent. Malformed content inside a known extension
// is skipped field by field and reported through the configured logger.
//
// The built-in modules (Dublin Core, Syndication, Slash, iTunes) are
// registered in DefaultRegistry. Host applications may register their own
// Descriptors, including replacements for the built-ins; registration must
// complete before concurrent parsing begins, after which the registry is
// treated as read-only.
package synd
