package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// flat renders ranks with "" for nil so tests can compare plain strings.
func flat(r Ranks) [7]string {
	var out [7]string
	for i, v := range r.Values() {
		if v != nil {
			out[i] = *v
		}
	}
	return out
}

func TestFullClassification(t *testing.T) {
	r := ParseString("d__Bacteria;p__Firmicutes;c__Bacilli;o__Lactobacillales;" +
		"f__Lactobacillaceae;g__Lactobacillus;s__Lactobacillus_acidophilus")
	assert.Equal(t, [7]string{
		"Bacteria", "Firmicutes", "Bacilli", "Lactobacillales",
		"Lactobacillaceae", "Lactobacillus", "Lactobacillus_acidophilus",
	}, flat(r))
	for _, v := range r.Values() {
		assert.NotNil(t, v)
	}
}

func TestNonStringYieldsAllNil(t *testing.T) {
	var nilStr *string
	for _, in := range []any{nil, 42, 3.14, []string{"d__Bacteria"}, nilStr, struct{}{}} {
		assert.Equal(t, Ranks{}, Parse(in), "input %#v", in)
	}
}

func TestParseAcceptsStringPointer(t *testing.T) {
	s := "g__Escherichia"
	r := Parse(&s)
	if assert.NotNil(t, r.Genus) {
		assert.Equal(t, "Escherichia", *r.Genus)
	}
}

func TestEmptyStringYieldsAllNil(t *testing.T) {
	assert.Equal(t, Ranks{}, Parse(""))
}

func TestMalformedTokensSkipped(t *testing.T) {
	r := ParseString("d__Bacteria;garbage;p__Firmicutes;x__Unknown;;c-Bacilli")
	assert.Equal(t, [7]string{"Bacteria", "Firmicutes"}, flat(r))
	assert.Nil(t, r.Class)
	assert.Nil(t, r.Species)
}

func TestLastOccurrenceWins(t *testing.T) {
	r := ParseString("d__Bacteria;d__Archaea")
	if assert.NotNil(t, r.Domain) {
		assert.Equal(t, "Archaea", *r.Domain)
	}
}

func TestSplitsOnFirstSeparatorOnly(t *testing.T) {
	r := ParseString("s__Genus__species;g__")
	if assert.NotNil(t, r.Species) {
		assert.Equal(t, "Genus__species", *r.Species)
	}
	if assert.NotNil(t, r.Genus) {
		assert.Equal(t, "", *r.Genus)
	}
}
