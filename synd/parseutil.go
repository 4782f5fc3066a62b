package synd

import (
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Accepted timestamp layouts. Feeds in the wild are loose about RFC 822
// versus RFC 1123 and two- versus four-digit years, so several layouts are
// tried in order.
var rssTimeLayouts = []string{
	time.RFC1123Z,
	time.RFC1123,
	time.RFC822Z,
	time.RFC822,
	time.RFC3339,
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"Mon, 2 Jan 2006 15:04:05 MST",
}

// W3C-DTF layouts (Atom timestamps, Dublin Core dates, sy:updateBase).
var w3cdtfLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05.999999999Z07:00",
	"2006-01-02T15:04Z07:00",
	"2006-01-02",
	"2006-01",
	"2006",
}

// parseTimeValue parses a timestamp best-effort. Failure is a diagnostic,
// not an error: the zero time is returned and the caller leaves the field
// unset.
func parseTimeValue(value string, layouts []string, logger *zap.Logger, field string) time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	if logger != nil {
		logger.Debug("failed to parse timestamp", zap.String("field", field), zap.String("value", value))
	}
	return time.Time{}
}

// parseIntValue parses an integer best-effort, returning ok=false on
// malformed input after logging.
func parseIntValue(value string, logger *zap.Logger, field string) (int, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, false
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		if logger != nil {
			logger.Debug("failed to parse integer", zap.String("field", field), zap.String("value", value))
		}
		return 0, false
	}
	return n, true
}

// elementText returns an element's trimmed text content.
func elementText(value string) string { return strings.TrimSpace(value) }
