// internal/frame/combine.go
package frame

// Concat stacks frames in order. The result carries the union of all columns
// in first-seen order; cells a frame does not have are null.
func Concat(frames ...Frame) Frame {
	var out Frame
	pos := map[string]int{}
	for _, f := range frames {
		for _, c := range f.Columns {
			if _, ok := pos[c]; !ok {
				pos[c] = len(out.Columns)
				out.Columns = append(out.Columns, c)
			}
		}
	}
	for _, f := range frames {
		for _, row := range f.Rows {
			dst := make([]Cell, len(out.Columns))
			for i, c := range f.Columns {
				dst[pos[c]] = row[i]
			}
			out.Rows = append(out.Rows, dst)
		}
	}
	return out
}

// OuterJoin performs a full outer join of left and right on column key,
// which both frames must carry. Matched and left-only rows come first in left
// order, then right-only rows in right order. Non-key columns present on both
// sides are suffixed with _x (left) and _y (right). Null keys never match.
func OuterJoin(left, right Frame, key string) (Frame, error) {
	if err := left.Require(key); err != nil {
		return Frame{}, err
	}
	if err := right.Require(key); err != nil {
		return Frame{}, err
	}
	lk, rk := left.Index(key), right.Index(key)

	var out Frame
	lpos := make([]int, len(left.Columns))
	for i, c := range left.Columns {
		if i != lk && right.Has(c) {
			c += "_x"
		}
		lpos[i] = len(out.Columns)
		out.Columns = append(out.Columns, c)
	}
	rpos := make([]int, len(right.Columns))
	for i, c := range right.Columns {
		if i == rk {
			rpos[i] = lpos[lk]
			continue
		}
		if left.Has(c) {
			c += "_y"
		}
		rpos[i] = len(out.Columns)
		out.Columns = append(out.Columns, c)
	}

	byKey := map[string][]int{}
	for r, row := range right.Rows {
		if k := row[rk]; k.Valid {
			byKey[k.S] = append(byKey[k.S], r)
		}
	}
	matched := make([]bool, len(right.Rows))

	emit := func(l, r []Cell) {
		dst := make([]Cell, len(out.Columns))
		for i, c := range l {
			dst[lpos[i]] = c
		}
		for i, c := range r {
			if i == rk && !c.Valid {
				continue
			}
			dst[rpos[i]] = c
		}
		out.Rows = append(out.Rows, dst)
	}

	for _, l := range left.Rows {
		var hits []int
		if k := l[lk]; k.Valid {
			hits = byKey[k.S]
		}
		if len(hits) == 0 {
			emit(l, nil)
			continue
		}
		for _, r := range hits {
			matched[r] = true
			emit(l, right.Rows[r])
		}
	}
	for r, row := range right.Rows {
		if !matched[r] {
			emit(nil, row)
		}
	}
	return out, nil
}
