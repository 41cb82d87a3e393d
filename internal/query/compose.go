// Package query holds the stateless read-side helpers layered on top of
// collection snapshots: predicate filtering, composable multi-key ordering,
// and read-time foreign-key joins. Every helper is a pure function; inputs
// are never mutated.
package query

import (
	"sort"
	"strings"

	"estatehub/internal/domain/model"
)

// Direction orders a sort key ascending or descending.
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// Order is one (key, direction) pair of a sort plan. Compare returns a
// negative, zero, or positive value for the key in its natural ascending
// order; Direction flips it.
type Order[T any] struct {
	Compare   func(a, b T) int
	Direction Direction
}

// SortBy stably sorts a copy of records by the given plan, applying each
// order in turn until one discriminates.
func SortBy[T any](records []T, orders ...Order[T]) []T {
	out := make([]T, len(records))
	copy(out, records)

	sort.SliceStable(out, func(i, j int) bool {
		for _, o := range orders {
			c := o.Compare(out[i], out[j])
			if o.Direction == Descending {
				c = -c
			}
			if c != 0 {
				return c < 0
			}
		}
		return false
	})
	return out
}

// Filter keeps the records for which keep returns true.
func Filter[T any](records []T, keep func(T) bool) []T {
	out := make([]T, 0, len(records))
	for _, r := range records {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

// FilterActive keeps records whose active flag is absent or true. The
// tolerant default applies on both the public and the admin surface.
func FilterActive[T model.Activatable](records []T) []T {
	return Filter(records, func(r T) bool { return r.Active() })
}

// FilterUnread keeps records not yet marked as seen.
func FilterUnread[T model.Readable](records []T) []T {
	return Filter(records, func(r T) bool { return !r.Read() })
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case a:
		return 1
	default:
		return -1
	}
}

// ByDisplayOrder orders on the manual display position, zero and missing first.
func ByDisplayOrder[T model.Orderable]() Order[T] {
	return Order[T]{
		Compare:   func(a, b T) int { return compareInt(a.Order(), b.Order()) },
		Direction: Ascending,
	}
}

// ByRecency orders newest first on createdAt.
func ByRecency[T model.Record]() Order[T] {
	return Order[T]{
		Compare:   func(a, b T) int { return strings.Compare(a.Created(), b.Created()) },
		Direction: Descending,
	}
}

// ByFeatured orders featured records first.
func ByFeatured[T interface{ Featured() bool }]() Order[T] {
	return Order[T]{
		Compare:   func(a, b T) int { return compareBool(a.Featured(), b.Featured()) },
		Direction: Descending,
	}
}

// SortByDisplayThenRecency applies the standard public-listing order: manual
// display position ascending, then newest first.
func SortByDisplayThenRecency[T model.Listable](records []T) []T {
	return SortBy(records, ByDisplayOrder[T](), ByRecency[T]())
}

// SortByRecency applies the message-feed order: newest first only.
func SortByRecency[T model.Record](records []T) []T {
	return SortBy(records, ByRecency[T]())
}

// JoinOne attaches a value looked up from others onto each record by foreign
// key. project is called with the matching other record, or nil when the key
// resolves to nothing; the projected field then stays null. The input slice
// is left untouched.
func JoinOne[A, B any](records []A, key func(A) string, others []B, otherKey func(B) string, project func(*A, *B)) []A {
	index := make(map[string]*B, len(others))
	for i := range others {
		index[otherKey(others[i])] = &others[i]
	}

	out := make([]A, len(records))
	copy(out, records)
	for i := range out {
		project(&out[i], index[key(out[i])])
	}
	return out
}
