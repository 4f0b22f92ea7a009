package frame

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func build(cols []string, rows ...[]string) Frame {
	f := New(cols...)
	for _, r := range rows {
		cells := make([]Cell, len(r))
		for i, s := range r {
			if s != "<nil>" {
				cells[i] = Str(s)
			}
		}
		f.Append(cells...)
	}
	return f
}

func TestColMissing(t *testing.T) {
	f := build([]string{"a"}, []string{"1"})
	_, err := f.Col("b")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingColumn))
	assert.Contains(t, err.Error(), `"b"`)

	assert.NoError(t, f.Require("a"))
	assert.ErrorIs(t, f.Require("a", "zz"), ErrMissingColumn)
}

func TestAppendPadsShortRows(t *testing.T) {
	f := New("a", "b")
	f.Append(Str("x"))
	assert.Equal(t, Str("x"), f.Value(0, "a"))
	assert.Equal(t, Null, f.Value(0, "b"))
	assert.Equal(t, Null, f.Value(0, "nope"))
}

func TestConcatUnionsColumns(t *testing.T) {
	a := build([]string{"rname", "numreads"}, []string{"c1", "10"})
	b := build([]string{"rname", "sample_id"}, []string{"c2", "S2"})
	got := Concat(a, b)

	assert.Equal(t, []string{"rname", "numreads", "sample_id"}, got.Columns)
	want := [][]Cell{
		{Str("c1"), Str("10"), Null},
		{Str("c2"), Null, Str("S2")},
	}
	if diff := cmp.Diff(want, got.Rows); diff != "" {
		t.Fatalf("rows mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 0, Concat().Len())
	assert.Empty(t, Concat().Columns)
}

func TestOuterJoinKeepsUnmatchedBothSides(t *testing.T) {
	c2b := build([]string{"contig", "bin"},
		[]string{"contigA", "bin1"},
		[]string{"contigB", "bin2"},
		[]string{"contigC", "bin3"},
	)
	summary := build([]string{"bin", "bin_score"},
		[]string{"bin1", "0.9"},
		[]string{"bin2", "0.4"},
		[]string{"bin9", "0.1"},
	)
	got, err := OuterJoin(c2b, summary, "bin")
	require.NoError(t, err)
	assert.Equal(t, []string{"contig", "bin", "bin_score"}, got.Columns)
	assert.Equal(t, [][]string{
		{"contigA", "bin1", "0.9"},
		{"contigB", "bin2", "0.4"},
		{"contigC", "bin3", ""},
		{"", "bin9", "0.1"},
	}, got.Strings())
	assert.False(t, got.Value(2, "bin_score").Valid)
	assert.False(t, got.Value(3, "contig").Valid)
}

func TestOuterJoinSuffixesClashingColumns(t *testing.T) {
	l := build([]string{"bin", "note"}, []string{"b1", "left"})
	r := build([]string{"note", "bin"}, []string{"right", "b1"})
	got, err := OuterJoin(l, r, "bin")
	require.NoError(t, err)
	assert.Equal(t, []string{"bin", "note_x", "note_y"}, got.Columns)
	assert.Equal(t, [][]string{{"b1", "left", "right"}}, got.Strings())
}

func TestOuterJoinRequiresKey(t *testing.T) {
	_, err := OuterJoin(New("contig", "bin"), New("score"), "bin")
	assert.ErrorIs(t, err, ErrMissingColumn)
}

func TestRenameColumns(t *testing.T) {
	f := build([]string{"#rname", "x"}, []string{"c1", "1"})
	g := f.RenameColumns(func(s string) string { return s + "!" })
	assert.Equal(t, []string{"#rname!", "x!"}, g.Columns)
	assert.Equal(t, []string{"#rname", "x"}, f.Columns)

	assert.Equal(t, []string{"rname", "x"}, f.RenameColumns(StripMarker).Columns)
	assert.Equal(t, "a#b", StripMarker("##a#b"))
}
