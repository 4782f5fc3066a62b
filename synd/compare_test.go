package synd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestCombineComparisons(t *testing.T) {
	tests := []struct {
		name   string
		fields []int
		want   int
	}{
		{"all zero", []int{0, 0, 0}, 0},
		{"single positive", []int{0, 1, 0}, 1},
		{"single negative", []int{0, -1, 0}, -1},
		{"unnormalized inputs", []int{5, -3}, -1},
		{"empty", nil, 0},
		// The OR rule: a negative field dominates regardless of position
		// or how many fields compare positive.
		{"negative dominates", []int{1, 1, -1, 1}, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CombineComparisons(tt.fields...))
		})
	}
}

// TestComparisonIsNotAntisymmetric pins the OR-combination quirk: when two
// values disagree in sign across fields, both orderings report negative.
// This is the documented behavior of the protocol, not standard
// lexicographic ordering.
func TestComparisonIsNotAntisymmetric(t *testing.T) {
	a := &DublinCore{Title: "alpha", Creator: "zimmer"}
	b := &DublinCore{Title: "beta", Creator: "young"}

	// title: a < b (negative); creator: a > b (positive). OR keeps the
	// negative in both directions.
	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, -1, b.Compare(a))
}

func TestCompareEquality(t *testing.T) {
	a := &DublinCore{Title: "Title", Creator: "Creator"}
	b := &DublinCore{Title: "title", Creator: "creator"} // ordinal case-insensitive
	assert.Equal(t, 0, a.Compare(b))

	c := &Syndication{UpdatePeriod: UpdatePeriodDaily, UpdateFrequency: 2}
	d := &Syndication{UpdatePeriod: UpdatePeriodDaily, UpdateFrequency: 2}
	assert.Equal(t, 0, c.Compare(d))
	d.UpdateFrequency = 3
	assert.Equal(t, -1, c.Compare(d))
}

func TestCompareLanguages(t *testing.T) {
	en := language.MustParse("en")
	enUS := language.MustParse("en-US")

	assert.Equal(t, 0, CompareLanguages(en, en))
	assert.Equal(t, -1, CompareLanguages(en, enUS))
	assert.Equal(t, 1, CompareLanguages(enUS, en))
	assert.Equal(t, -1, CompareLanguages(language.Und, en))
	assert.Equal(t, 1, CompareLanguages(en, language.Und))
	assert.Equal(t, 0, CompareLanguages(language.Und, language.Und))
}

func TestCompareURIs(t *testing.T) {
	assert.Equal(t, 0, CompareURIs("http://example.com/a", "http://example.com/a"))
	assert.Equal(t, -1, CompareURIs("http://example.com/a", "http://example.com/b"))
	assert.Equal(t, 1, CompareURIs("http://example.com/b", "http://example.com/a"))
}

func TestCompareExtensionsStructural(t *testing.T) {
	a := &DublinCore{Creator: "ada"}
	b := &DublinCore{Creator: "ada"}
	assert.Equal(t, 0, CompareExtensions(a, b))

	c := &DublinCore{Creator: "grace"}
	assert.NotEqual(t, 0, CompareExtensions(a, c))

	// Different kinds never compare equal.
	assert.NotEqual(t, 0, CompareExtensions(a, &Slash{Section: "x"}))

	assert.Equal(t, 0, CompareExtensions(nil, nil))
	assert.Equal(t, -1, CompareExtensions(nil, a))
	assert.Equal(t, 1, CompareExtensions(a, nil))
}

func TestHashExtensionMatchesEquality(t *testing.T) {
	a := &DublinCore{Creator: "ada", Title: "t"}
	b := &DublinCore{Creator: "ada", Title: "t"}
	c := &DublinCore{Creator: "grace"}

	require.Equal(t, 0, CompareExtensions(a, b))
	assert.Equal(t, HashExtension(a), HashExtension(b))
	assert.NotEqual(t, HashExtension(a), HashExtension(c))
}

func TestHashXML(t *testing.T) {
	a := parseElement(t, `<item><title>One</title></item>`)
	b := parseElement(t, `<item><title>One</title></item>`)
	c := parseElement(t, `<item><title>Two</title></item>`)

	assert.Equal(t, HashXML(a), HashXML(b))
	assert.NotEqual(t, HashXML(a), HashXML(c))

	// The nil element hashes to the empty-input FNV-64a value, stable across
	// calls.
	assert.Equal(t, HashXML(nil), HashXML(nil))
	assert.NotEqual(t, HashXML(nil), HashXML(a))
}

func TestFeedAndItemCompare(t *testing.T) {
	f1 := &Feed{Title: "Feed", Link: "http://example.com/"}
	f2 := &Feed{Title: "feed", Link: "http://example.com/"}
	assert.Equal(t, 0, f1.Compare(f2))

	i1 := &Item{Title: "One", GUID: "g1"}
	i2 := &Item{Title: "One", GUID: "g2"}
	assert.Equal(t, -1, i1.Compare(i2))
	assert.Equal(t, 0, i1.Compare(i1))

	var nilFeed *Feed
	assert.Equal(t, -1, nilFeed.Compare(f1))
	assert.Equal(t, 1, f1.Compare(nilFeed))
}
