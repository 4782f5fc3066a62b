package synd

import (
	"strconv"
	"strings"
	"time"

	"github.com/beevik/etree"
	"go.uber.org/zap"
)

// SyndicationNamespace is the RSS 1.0 Syndication module namespace URI.
const SyndicationNamespace = "http://purl.org/rss/1.0/modules/syndication/"

// UpdatePeriod is the sy:updatePeriod enumeration.
type UpdatePeriod string

const (
	UpdatePeriodHourly  UpdatePeriod = "hourly"
	UpdatePeriodDaily   UpdatePeriod = "daily"
	UpdatePeriodWeekly  UpdatePeriod = "weekly"
	UpdatePeriodMonthly UpdatePeriod = "monthly"
	UpdatePeriodYearly  UpdatePeriod = "yearly"
)

// ParseUpdatePeriod normalizes an update period string.
func ParseUpdatePeriod(value string) (UpdatePeriod, bool) {
	switch UpdatePeriod(strings.ToLower(strings.TrimSpace(value))) {
	case UpdatePeriodHourly:
		return UpdatePeriodHourly, true
	case UpdatePeriodDaily:
		return UpdatePeriodDaily, true
	case UpdatePeriodWeekly:
		return UpdatePeriodWeekly, true
	case UpdatePeriodMonthly:
		return UpdatePeriodMonthly, true
	case UpdatePeriodYearly:
		return UpdatePeriodYearly, true
	default:
		return "", false
	}
}

// SyndicationDescriptor returns the registration record for the Syndication
// extension module.
func SyndicationDescriptor() Descriptor {
	return Descriptor{
		Namespace: SyndicationNamespace,
		Name:      "sy",
		Prefix:    "sy",
		New:       func() Extension { return &Syndication{} },
	}
}

// Syndication carries the RSS 1.0 Syndication module's update schedule
// hints.
type Syndication struct {
	// UpdatePeriod is the sy:updatePeriod value, empty when absent or not
	// one of the enumerated periods.
	UpdatePeriod UpdatePeriod
	// UpdateFrequency is the sy:updateFrequency value, zero when absent or
	// malformed.
	UpdateFrequency int
	// UpdateBase is the sy:updateBase timestamp, zero when absent or
	// unparseable.
	UpdateBase time.Time

	log *zap.Logger
}

func (s *Syndication) setLogger(l *zap.Logger) { s.log = l }

// Namespace returns the Syndication module namespace URI.
func (s *Syndication) Namespace() string { return SyndicationNamespace }

// Name returns "sy".
func (s *Syndication) Name() string { return "sy" }

// Parse extracts Syndication module elements among el's children. It
// reports whether any were found.
func (s *Syndication) Parse(el *etree.Element) bool {
	found := false
	for _, child := range el.ChildElements() {
		if child.NamespaceURI() != SyndicationNamespace {
			continue
		}
		switch child.Tag {
		case "updatePeriod":
			period, ok := ParseUpdatePeriod(child.Text())
			if ok {
				s.UpdatePeriod = period
			} else if s.log != nil {
				s.log.Warn("invalid sy:updatePeriod, leaving unset", zap.String("value", child.Text()))
			}
		case "updateFrequency":
			if n, ok := parseIntValue(child.Text(), s.log, "sy:updateFrequency"); ok {
				s.UpdateFrequency = n
			}
		case "updateBase":
			s.UpdateBase = parseTimeValue(child.Text(), w3cdtfLayouts, s.log, "sy:updateBase")
		default:
			continue
		}
		found = true
	}
	return found
}

// WriteTo appends the set Syndication elements to parent using the prefix
// assigned in scope.
func (s *Syndication) WriteTo(parent *etree.Element, scope NamespaceScope) {
	prefix := scope.Prefix(SyndicationNamespace)
	if s.UpdatePeriod != "" {
		parent.CreateElement(prefix + ":updatePeriod").SetText(string(s.UpdatePeriod))
	}
	if s.UpdateFrequency > 0 {
		parent.CreateElement(prefix + ":updateFrequency").SetText(strconv.Itoa(s.UpdateFrequency))
	}
	if !s.UpdateBase.IsZero() {
		parent.CreateElement(prefix + ":updateBase").SetText(s.UpdateBase.UTC().Format(time.RFC3339))
	}
}

// Compare applies the comparison protocol across the module's fields in
// declared order.
func (s *Syndication) Compare(o *Syndication) int {
	if s == nil || o == nil {
		switch {
		case s == o:
			return 0
		case s == nil:
			return -1
		default:
			return 1
		}
	}
	return CombineComparisons(
		CompareStrings(string(s.UpdatePeriod), string(o.UpdatePeriod)),
		CompareInts(s.UpdateFrequency, o.UpdateFrequency),
		CompareTimes(s.UpdateBase, o.UpdateBase),
	)
}
