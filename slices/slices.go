// Package slices defines the generic slice helpers shared by the grammar and
// automaton packages.
package slices

import (
	"sort"

	"golang.org/x/exp/constraints"
)

// Equal reports whether two slices have the same length and elements.
func Equal[E comparable](s1, s2 []E) bool {
	if len(s1) != len(s2) {
		return false
	}
	for i := range s1 {
		if s1[i] != s2[i] {
			return false
		}
	}
	return true
}

// Index returns the index of the first occurrence of v in s, or -1.
func Index[S ~[]T, T comparable](s S, v T) int {
	return IndexFunc(s, func(item T) bool { return item == v })
}

// IndexFunc returns the first index i satisfying f(s[i]), or -1.
func IndexFunc[S ~[]T, T any](s S, f func(T) bool) int {
	for i, v := range s {
		if f(v) {
			return i
		}
	}
	return -1
}

func Contains[S ~[]T, T comparable](s S, v T) bool         { return Index(s, v) >= 0 }
func ContainsFunc[S ~[]T, T any](s S, f func(T) bool) bool { return IndexFunc(s, f) >= 0 }

// Clone returns a shallow copy of the slice, preserving nil.
func Clone[S ~[]E, E any](s S) S {
	if s == nil {
		return nil
	}
	return append(S([]E{}), s...)
}

// Remap builds a new slice by applying f to every element of s.
func Remap[S ~[]T, T, U any](s S, f func(int, T) U) []U {
	res := make([]U, len(s))
	for i, item := range s {
		res[i] = f(i, item)
	}
	return res
}

// Filter MODIFIES s, so the only sane way to use it is s = Filter(s, ...)
func Filter[S ~[]T, T any](s S, f func(T) bool) S {
	i := 0
	for _, item := range s {
		if f(item) {
			s[i] = item
			i++
		}
	}
	return s[:i:i]
}

// Possibles returns every combination picking one element from each of the
// given alternative lists. Empty alternative lists are skipped.
func Possibles[S ~[]T, T any](z []S) []S {
	if len(z) == 0 {
		return []S{}
	}
	if len(z[0]) == 0 {
		return Possibles(z[1:])
	}

	res := []S{}
	for _, elem := range z[0] {
		rest := Possibles(z[1:])
		if len(rest) == 0 {
			res = append(res, S{elem})
		}
		for _, tail := range rest {
			res = append(res, append(S{elem}, tail...))
		}
	}
	return res
}

// AppendMany concatenates the given slices into a fresh one.
func AppendMany[S ~[]T, T any](items ...S) S {
	res := S{}
	for _, item := range items {
		res = append(res, item...)
	}
	return res
}

// GentlyAppend appends only the items not already present in s.
func GentlyAppend[S ~[]T, T comparable](s S, items ...T) S {
	for _, item := range items {
		if !Contains(s, item) {
			s = append(s, item)
		}
	}
	return s
}

// ToMap turns a slice into a membership set.
func ToMap[S ~[]T, T comparable](s S) map[T]struct{} {
	res := make(map[T]struct{}, len(s))
	for _, item := range s {
		res[item] = struct{}{}
	}
	return res
}

// Sort sorts s in place and returns it, for call chaining.
func Sort[S ~[]T, T constraints.Ordered](s S) S {
	sort.Slice(s, func(i, j int) bool { return s[i] < s[j] })
	return s
}

// SortFunc sorts s in place with the given less function and returns it.
func SortFunc[S ~[]T, T any](s S, less func(a, b T) bool) S {
	sort.Slice(s, func(i, j int) bool { return less(s[i], s[j]) })
	return s
}
