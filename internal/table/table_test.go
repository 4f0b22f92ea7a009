package table

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestParseFloat(t *testing.T) {
	tests := []struct {
		in   string
		want Float
	}{
		{"95.5", Num(95.5)},
		{" 12 ", Num(12)},
		{"1e3", Num(1000)},
		{"not_a_number", Null},
		{"", Null},
		{"NaN", Null},
		{"nan", Null},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseFloat(tt.in), "ParseFloat(%q)", tt.in)
	}
	assert.True(t, math.IsInf(ParseFloat("inf").V, 1))
	assert.Equal(t, Null, Coerce("3", false))
}

func TestFloatArithmetic(t *testing.T) {
	assert.Equal(t, Num(5), Num(2).Add(Num(3)))
	assert.Equal(t, Num(2), Num(2).Add(Null))
	assert.Equal(t, Num(0), Null.Add(Null))

	assert.Equal(t, Num(3), Num(2).Max(Num(3)))
	assert.Equal(t, Num(2), Num(2).Max(Null))
	assert.Equal(t, Num(2), Null.Max(Num(2)))
	assert.Equal(t, Null, Null.Max(Null))

	assert.Equal(t, "300", Num(300).String())
	assert.Equal(t, "0.25", Num(0.25).String())
	assert.Equal(t, "", Null.String())
	assert.Equal(t, "inf", ParseFloat("inf").String())
	assert.Equal(t, "-inf", Num(math.Inf(-1)).String())
	assert.Nil(t, Null.Ptr())
	assert.Equal(t, 1.5, *Num(1.5).Ptr())
}

type kv struct {
	K string
	V int
}

func TestGroupByKeepsFirstSeenOrder(t *testing.T) {
	rows := []kv{{"b", 1}, {"a", 2}, {"b", 3}}
	got := GroupBy(rows, func(r kv) string { return r.K }, func(acc int, r kv) int { return acc + r.V })
	want := []Group[string, int]{{"b", 4}, {"a", 2}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("GroupBy mismatch (-want +got):\n%s", diff)
	}
}

func TestFilterAndMap(t *testing.T) {
	rows := []kv{{"a", 1}, {"b", 2}, {"c", 3}}
	odd := Filter(rows, func(r kv) bool { return r.V%2 == 1 })
	assert.Equal(t, []string{"a", "c"}, Map(odd, func(r kv) string { return r.K }))
}

func TestDedupFirst(t *testing.T) {
	rows := []kv{{"a", 1}, {"a", 2}, {"b", 3}}
	got := DedupFirst(rows, func(r kv) string { return r.K })
	assert.Equal(t, []kv{{"a", 1}, {"b", 3}}, got)
}

func TestJoins(t *testing.T) {
	left := []kv{{"a", 1}, {"b", 2}, {"c", 3}}
	right := []kv{{"a", 10}, {"c", 30}, {"c", 31}}
	key := func(r kv) string { return r.K }

	inner := InnerJoin(left, right, key, key, func(l, r kv) int { return l.V + r.V })
	assert.Equal(t, []int{11, 33, 34}, inner)

	outer := LeftJoin(left, right, key, key, func(l kv, r *kv) int {
		if r == nil {
			return -l.V
		}
		return l.V + r.V
	})
	assert.Equal(t, []int{11, -2, 33, 34}, outer)
}
