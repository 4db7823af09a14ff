// Package relop provides the small set of relational primitives the report
// definitions are composed from: filter, inner equi-join, grouping,
// aggregation, stable descending sort and top-N. All operators are pure and
// never mutate their inputs.
package relop

import (
	"cmp"
	"errors"
	"iter"
	"sort"
)

// ErrEmptyAggregation is returned by Max when the group has no members.
// Groups produced by GroupBy are never empty, so seeing this error means an
// upstream invariant was violated.
var ErrEmptyAggregation = errors.New("relop: aggregation over empty group")

// FromSlice exposes a slice as a restartable sequence.
func FromSlice[T any](items []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range items {
			if !yield(item) {
				return
			}
		}
	}
}

// Collect materializes a sequence into a slice.
func Collect[T any](seq iter.Seq[T]) []T {
	var out []T
	for item := range seq {
		out = append(out, item)
	}
	return out
}

// Filter returns a lazy sequence of the elements matching pred. The predicate
// is re-evaluated on every iteration; nothing is cached.
func Filter[T any](seq iter.Seq[T], pred func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range seq {
			if !pred(item) {
				continue
			}
			if !yield(item) {
				return
			}
		}
	}
}

// Pair is one output row of Join.
type Pair[L, R any] struct {
	Left  L
	Right R
}

// Join performs an inner equi-join. For each left element, every right
// element with the same key is emitted as a Pair, preserving left order and
// then right order within a key. Elements without a match on the other side
// produce no output.
func Join[L, R any, K comparable](
	left iter.Seq[L],
	right iter.Seq[R],
	leftKey func(L) K,
	rightKey func(R) K,
) iter.Seq[Pair[L, R]] {
	return func(yield func(Pair[L, R]) bool) {
		matches := make(map[K][]R)
		for r := range right {
			k := rightKey(r)
			matches[k] = append(matches[k], r)
		}
		for l := range left {
			for _, r := range matches[leftKey(l)] {
				if !yield(Pair[L, R]{Left: l, Right: r}) {
					return
				}
			}
		}
	}
}

// Project maps each element through fn, lazily. Reports use it between join
// stages to flatten nested pairs into named row types.
func Project[T, U any](seq iter.Seq[T], fn func(T) U) iter.Seq[U] {
	return func(yield func(U) bool) {
		for item := range seq {
			if !yield(fn(item)) {
				return
			}
		}
	}
}

// Group is a key together with its non-empty member sequence.
type Group[K comparable, T any] struct {
	Key     K
	Members []T
}

// GroupBy partitions the sequence by key. Members keep their source order and
// groups are returned in order of first appearance of their key. Callers that
// need a specific group order must sort explicitly.
func GroupBy[T any, K comparable](seq iter.Seq[T], key func(T) K) []Group[K, T] {
	index := make(map[K]int)
	var groups []Group[K, T]
	for item := range seq {
		k := key(item)
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, Group[K, T]{Key: k})
		}
		groups[i].Members = append(groups[i].Members, item)
	}
	return groups
}

// Number covers the numeric measure types the reports sum over.
type Number interface {
	~int | ~int64 | ~float64
}

// Sum adds sel over all members. An empty slice sums to the type's zero.
func Sum[T any, N Number](members []T, sel func(T) N) N {
	var total N
	for _, m := range members {
		total += sel(m)
	}
	return total
}

// Count reports the number of members.
func Count[T any](members []T) int {
	return len(members)
}

// Max returns the largest sel value across members, or ErrEmptyAggregation
// when there are none.
func Max[T any, N cmp.Ordered](members []T, sel func(T) N) (N, error) {
	var best N
	if len(members) == 0 {
		return best, ErrEmptyAggregation
	}
	best = sel(members[0])
	for _, m := range members[1:] {
		if v := sel(m); v > best {
			best = v
		}
	}
	return best, nil
}

// Reduce folds members into an accumulator starting from init. It exists for
// measure types that are not built-in numerics, such as fixed-point money;
// an empty slice yields init, the caller-supplied additive identity.
func Reduce[T, A any](members []T, init A, fn func(A, T) A) A {
	acc := init
	for _, m := range members {
		acc = fn(acc, m)
	}
	return acc
}

// SortDesc returns a new slice sorted descending by key. The sort is stable:
// equal keys keep their input order, which makes TopN deterministic.
func SortDesc[T any, K cmp.Ordered](items []T, key func(T) K) []T {
	out := make([]T, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		return key(out[i]) > key(out[j])
	})
	return out
}

// SortDescFunc is SortDesc for key types without a built-in ordering.
// compare must behave like cmp.Compare over the sort key.
func SortDescFunc[T any](items []T, compare func(a, b T) int) []T {
	out := make([]T, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		return compare(out[i], out[j]) > 0
	})
	return out
}

// TopN returns the first n elements of an already-ordered slice. Fewer than
// n elements is not an error; all of them are returned.
func TopN[T any](items []T, n int) []T {
	if n < 0 {
		n = 0
	}
	if n > len(items) {
		n = len(items)
	}
	return items[:n:n]
}
