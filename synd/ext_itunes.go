package synd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/beevik/etree"
	"go.uber.org/zap"
)

// ITunesNamespace is the Apple Podcasts (iTunes) extension namespace URI.
const ITunesNamespace = "http://www.itunes.com/dtds/podcast-1.0.dtd"

// ITunesDescriptor returns the registration record for the iTunes extension
// module.
func ITunesDescriptor() Descriptor {
	return Descriptor{
		Namespace: ITunesNamespace,
		Name:      "itunes",
		Prefix:    "itunes",
		New:       func() Extension { return &ITunes{} },
	}
}

// ITunes carries the Apple Podcasts metadata attachable to a channel or
// item. Image demonstrates attribute-qualified extension content: the value
// lives in the href attribute of an empty itunes:image element.
type ITunes struct {
	Author   string
	Subtitle string
	Summary  string
	// Explicit is "yes", "no" or "clean"; empty when absent or not one of
	// the accepted values.
	Explicit string
	// Duration is the episode duration, zero when absent or unparseable.
	Duration time.Duration
	// Image is the href of the itunes:image element.
	Image string

	log *zap.Logger
}

func (i *ITunes) setLogger(l *zap.Logger) { i.log = l }

// Namespace returns the iTunes extension namespace URI.
func (i *ITunes) Namespace() string { return ITunesNamespace }

// Name returns "itunes".
func (i *ITunes) Name() string { return "itunes" }

// Parse extracts iTunes elements among el's children. It reports whether
// any were found.
func (i *ITunes) Parse(el *etree.Element) bool {
	found := false
	for _, child := range el.ChildElements() {
		if child.NamespaceURI() != ITunesNamespace {
			continue
		}
		switch child.Tag {
		case "author":
			i.Author = elementText(child.Text())
		case "subtitle":
			i.Subtitle = elementText(child.Text())
		case "summary":
			i.Summary = elementText(child.Text())
		case "explicit":
			value := strings.ToLower(elementText(child.Text()))
			switch value {
			case "yes", "no", "clean":
				i.Explicit = value
			default:
				if i.log != nil {
					i.log.Warn("invalid itunes:explicit, leaving unset", zap.String("value", child.Text()))
				}
			}
		case "duration":
			i.Duration = parseITunesDuration(child.Text(), i.log)
		case "image":
			i.Image = child.SelectAttrValue("href", "")
		default:
			continue
		}
		found = true
	}
	return found
}

// WriteTo appends the set iTunes elements to parent using the prefix
// assigned in scope.
func (i *ITunes) WriteTo(parent *etree.Element, scope NamespaceScope) {
	prefix := scope.Prefix(ITunesNamespace)
	if i.Author != "" {
		parent.CreateElement(prefix + ":author").SetText(i.Author)
	}
	if i.Subtitle != "" {
		parent.CreateElement(prefix + ":subtitle").SetText(i.Subtitle)
	}
	if i.Summary != "" {
		parent.CreateElement(prefix + ":summary").SetText(i.Summary)
	}
	if i.Explicit != "" {
		parent.CreateElement(prefix + ":explicit").SetText(i.Explicit)
	}
	if i.Duration > 0 {
		parent.CreateElement(prefix + ":duration").SetText(formatITunesDuration(i.Duration))
	}
	if i.Image != "" {
		parent.CreateElement(prefix + ":image").CreateAttr("href", i.Image)
	}
}

// parseITunesDuration accepts "HH:MM:SS", "MM:SS" or plain seconds.
func parseITunesDuration(value string, logger *zap.Logger) time.Duration {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0
	}
	parts := strings.Split(value, ":")
	if len(parts) > 3 {
		if logger != nil {
			logger.Debug("failed to parse itunes:duration", zap.String("value", value))
		}
		return 0
	}
	total := 0
	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n < 0 {
			if logger != nil {
				logger.Debug("failed to parse itunes:duration", zap.String("value", value))
			}
			return 0
		}
		total = total*60 + n
	}
	return time.Duration(total) * time.Second
}

func formatITunesDuration(d time.Duration) string {
	total := int(d / time.Second)
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60
	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}

// Compare applies the comparison protocol across the module's fields in
// declared order.
func (i *ITunes) Compare(o *ITunes) int {
	if i == nil || o == nil {
		switch {
		case i == o:
			return 0
		case i == nil:
			return -1
		default:
			return 1
		}
	}
	return CombineComparisons(
		CompareStrings(i.Author, o.Author),
		CompareStrings(i.Subtitle, o.Subtitle),
		CompareStrings(i.Summary, o.Summary),
		CompareStrings(i.Explicit, o.Explicit),
		CompareInts(int(i.Duration/time.Second), int(o.Duration/time.Second)),
		CompareURIs(i.Image, o.Image),
	)
}
