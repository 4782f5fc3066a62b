package synd

import (
	"context"
	"io"

	"github.com/beevik/etree"
)

// Parse reads a syndication document from r. If format is FormatAuto the
// format is detected from the content, which advances the reader; the
// sampled bytes are replayed internally.
//
// Documents declaring namespaces with no registered extension descriptor
// load successfully with those extensions absent. Malformed content inside a
// known extension is skipped, not fatal. If ctx is nil, context.Background()
// is used.
func Parse(ctx context.Context, r io.Reader, format Format, opts ...Option) (*Feed, error) {
	if r == nil {
		panic("synd: Parse called with nil reader")
	}
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	ctx, cancel := deriveContext(ctx, options)
	defer cancel()

	if format == FormatAuto {
		detected, restored, ok := DetectFormat(r)
		if !ok {
			return nil, ErrUnsupportedFormat
		}
		format = detected
		r = restored
	}

	data, err := readDocument(r, options.MaxDocumentBytes)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, wrapParseError(string(format), "", err)
	}

	switch format {
	case FormatRSS:
		return loadRSS(doc, options)
	case FormatAtom:
		return loadAtom(doc, options)
	default:
		return nil, ErrUnsupportedFormat
	}
}

// Write serializes the feed to w in the given format. Namespace declarations
// for attached extensions are emitted once, on the document root, covering
// exactly the namespaces in use. I/O errors from w propagate unchanged.
//
// A nil writer or feed is a caller bug and panics.
func Write(ctx context.Context, w io.Writer, feed *Feed, format Format, opts ...Option) error {
	if w == nil {
		panic("synd: Write called with nil writer")
	}
	if feed == nil {
		panic("synd: Write called with nil feed")
	}
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	ctx, cancel := deriveContext(ctx, options)
	defer cancel()

	var doc *etree.Document
	switch format {
	case FormatRSS:
		doc = buildRSS(feed, options)
	case FormatAtom:
		doc = buildAtom(feed, options)
	default:
		return ErrUnsupportedFormat
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	doc.Indent(2)
	_, err := doc.WriteTo(w)
	return err
}

// deriveContext applies the Timeout option; the tree walks have no
// suspension points, so the deadline is checked between phases only.
func deriveContext(ctx context.Context, options Options) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	if options.Timeout > 0 {
		return context.WithTimeout(ctx, options.Timeout)
	}
	return ctx, func() {}
}

// readDocument buffers the whole document, enforcing MaxDocumentBytes for
// untrusted input. I/O errors propagate unchanged.
func readDocument(r io.Reader, maxBytes int64) ([]byte, error) {
	if maxBytes <= 0 {
		return io.ReadAll(r)
	}
	data, err := io.ReadAll(io.LimitReader(r, maxBytes+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > maxBytes {
		return nil, ErrDocumentTooLarge
	}
	return data, nil
}
