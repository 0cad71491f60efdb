// Package view derives the displayed subsequence of a collection from the
// page's active selection.
package view

import (
	"cmp"
	"fmt"
	"slices"
	"time"
)

// Kind tags the active branch of a Selection.
type Kind int

const (
	KindAll Kind = iota
	KindByKey
	KindLocked
)

func (k Kind) String() string {
	switch k {
	case KindAll:
		return "all"
	case KindByKey:
		return "key"
	case KindLocked:
		return "locked"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Selection is exactly one of: show all, filtered by a key, or a locked
// section that needs a gate before it shows anything.
type Selection[K comparable] struct {
	kind Kind
	key  K
	name string
}

func All[K comparable]() Selection[K] { return Selection[K]{kind: KindAll} }

func ByKey[K comparable](k K) Selection[K] { return Selection[K]{kind: KindByKey, key: k} }

func Locked[K comparable](name string) Selection[K] {
	return Selection[K]{kind: KindLocked, name: name}
}

func (s Selection[K]) Kind() Kind { return s.kind }

// Key returns the filter key when the selection is KindByKey.
func (s Selection[K]) Key() (K, bool) {
	return s.key, s.kind == KindByKey
}

// Name returns the locked section name when the selection is KindLocked.
func (s Selection[K]) Name() string { return s.name }

func (s Selection[K]) String() string {
	switch s.kind {
	case KindByKey:
		return fmt.Sprint(s.key)
	case KindLocked:
		return s.name
	default:
		return "all"
	}
}

// SortByDateDesc returns recs newest first. Records without a date sort as
// oldest and keep their relative order.
func SortByDateDesc[T any](recs []T, dateOf func(T) (time.Time, bool)) []T {
	out := slices.Clone(recs)
	if out == nil {
		out = []T{}
	}
	slices.SortStableFunc(out, func(a, b T) int {
		da, oka := dateOf(a)
		db, okb := dateOf(b)
		switch {
		case oka && okb:
			return db.Compare(da)
		case oka:
			return -1
		case okb:
			return 1
		default:
			return 0
		}
	})
	return out
}

// FilterByKey keeps the records whose key equals key, ordered by rank
// ascending. Unranked records follow the ranked ones in original order.
func FilterByKey[T any, K comparable](recs []T, key K, keyOf func(T) (K, bool), rankOf func(T) (int, bool)) []T {
	out := Match(recs, func(r T) bool {
		k, ok := keyOf(r)
		return ok && k == key
	})
	if rankOf == nil {
		return out
	}
	slices.SortStableFunc(out, func(a, b T) int {
		ra, oka := rankOf(a)
		rb, okb := rankOf(b)
		switch {
		case oka && okb:
			return cmp.Compare(ra, rb)
		case oka:
			return -1
		case okb:
			return 1
		default:
			return 0
		}
	})
	return out
}

// DistinctKeys returns the distinct keys of recs sorted descending. An empty
// collection yields no keys.
func DistinctKeys[T any, K cmp.Ordered](recs []T, keyOf func(T) (K, bool)) []K {
	seen := make(map[K]struct{})
	keys := []K{}
	for _, r := range recs {
		k, ok := keyOf(r)
		if !ok {
			continue
		}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b K) int { return cmp.Compare(b, a) })
	return keys
}

// Match keeps the records satisfying pred, preserving order. The result is
// never nil.
func Match[T any](recs []T, pred func(T) bool) []T {
	out := []T{}
	for _, r := range recs {
		if pred(r) {
			out = append(out, r)
		}
	}
	return out
}

// Source describes how to read dates, keys and ranks from a collection.
type Source[T any, K comparable] struct {
	Records []T
	DateOf  func(T) (time.Time, bool)
	KeyOf   func(T) (K, bool)
	RankOf  func(T) (int, bool)
}

// Apply returns the records visible under sel. A locked selection yields an
// empty list; its content lives outside the collection.
func Apply[T any, K comparable](sel Selection[K], src Source[T, K]) []T {
	switch sel.kind {
	case KindByKey:
		return FilterByKey(src.Records, sel.key, src.KeyOf, src.RankOf)
	case KindLocked:
		return []T{}
	default:
		return SortByDateDesc(src.Records, src.DateOf)
	}
}
