package synd

import (
	"bytes"
	"io"
	"strings"
)

// Format identifies feed serialization formats.
type Format string

const (
	// FormatAuto requests content-based detection.
	FormatAuto Format = ""
	// FormatRSS is RSS 2.0.
	FormatRSS Format = "rss"
	// FormatAtom is Atom 1.0.
	FormatAtom Format = "atom"
)

// ParseFormat normalizes a format string.
func ParseFormat(value string) (Format, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "rss", "rss2", "rss2.0":
		return FormatRSS, true
	case "atom", "atom1", "atom1.0":
		return FormatAtom, true
	default:
		return "", false
	}
}

// DetectFormat attempts to detect the feed format by examining the first few
// bytes for the document's root element. It returns the detected format, a
// reader that includes the sampled bytes, and whether detection succeeded.
func DetectFormat(r io.Reader) (Format, io.Reader, bool) {
	const sampleSize = 512
	buf := make([]byte, sampleSize)
	n, err := io.ReadFull(r, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return FormatAuto, r, false
	}
	sample := buf[:n]
	restored := io.MultiReader(bytes.NewReader(sample), r)

	format, ok := detectFormatFromSample(string(sample))
	return format, restored, ok
}

func detectFormatFromSample(sample string) (Format, bool) {
	// Skip the XML declaration, comments and leading whitespace to find the
	// root element.
	s := sample
	for {
		s = strings.TrimLeft(s, " \t\r\n")
		switch {
		case strings.HasPrefix(s, "<?"):
			end := strings.Index(s, "?>")
			if end < 0 {
				return FormatAuto, false
			}
			s = s[end+2:]
		case strings.HasPrefix(s, "<!--"):
			end := strings.Index(s, "-->")
			if end < 0 {
				return FormatAuto, false
			}
			s = s[end+3:]
		default:
			if strings.HasPrefix(s, "<rss") {
				return FormatRSS, true
			}
			if strings.HasPrefix(s, "<feed") {
				return FormatAtom, true
			}
			return FormatAuto, false
		}
	}
}
