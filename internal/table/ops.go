// internal/table/ops.go
package table

// Group is one key of a GroupBy result with its aggregated value.
type Group[K comparable, V any] struct {
	Key   K
	Value V
}

// Filter keeps rows for which keep returns true, preserving order.
func Filter[T any](rows []T, keep func(T) bool) []T {
	out := make([]T, 0, len(rows))
	for _, r := range rows {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

// Map applies fn to every row.
func Map[T, U any](rows []T, fn func(T) U) []U {
	out := make([]U, len(rows))
	for i, r := range rows {
		out[i] = fn(r)
	}
	return out
}

// GroupBy folds rows into one value per key. Groups come back in first-seen
// key order; callers sort when they need a different order.
func GroupBy[T any, K comparable, V any](rows []T, key func(T) K, fold func(V, T) V) []Group[K, V] {
	idx := make(map[K]int)
	var out []Group[K, V]
	for _, r := range rows {
		k := key(r)
		i, ok := idx[k]
		if !ok {
			i = len(out)
			idx[k] = i
			var zero V
			out = append(out, Group[K, V]{Key: k, Value: zero})
		}
		out[i].Value = fold(out[i].Value, r)
	}
	return out
}

// Index maps each key to every row carrying it, in row order.
func Index[T any, K comparable](rows []T, key func(T) K) map[K][]T {
	m := make(map[K][]T, len(rows))
	for _, r := range rows {
		k := key(r)
		m[k] = append(m[k], r)
	}
	return m
}

// DedupFirst keeps the first row for each key.
func DedupFirst[T any, K comparable](rows []T, key func(T) K) []T {
	seen := make(map[K]struct{}, len(rows))
	out := make([]T, 0, len(rows))
	for _, r := range rows {
		k := key(r)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, r)
	}
	return out
}

// InnerJoin emits merge(l, r) for every matching pair, in left order and then
// right order within a key.
func InnerJoin[L, R any, K comparable, O any](left []L, right []R, lk func(L) K, rk func(R) K, merge func(L, R) O) []O {
	byKey := Index(right, rk)
	var out []O
	for _, l := range left {
		for _, r := range byKey[lk(l)] {
			out = append(out, merge(l, r))
		}
	}
	return out
}

// LeftJoin is InnerJoin that also keeps unmatched left rows, passing nil for
// the right side.
func LeftJoin[L, R any, K comparable, O any](left []L, right []R, lk func(L) K, rk func(R) K, merge func(L, *R) O) []O {
	byKey := Index(right, rk)
	out := make([]O, 0, len(left))
	for _, l := range left {
		matches := byKey[lk(l)]
		if len(matches) == 0 {
			out = append(out, merge(l, nil))
			continue
		}
		for i := range matches {
			out = append(out, merge(l, &matches[i]))
		}
	}
	return out
}
