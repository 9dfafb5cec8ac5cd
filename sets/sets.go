// Package sets provides the ordered-key set type used for grammar symbol and
// automaton state collections.
package sets

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"

	"github.com/Tirppy/lfa-course-repo/slices"
)

// WTF??? https://github.com/golang/go/issues/46477
type Set[T constraints.Ordered] map[T]struct{}

func New[T constraints.Ordered](items ...T) Set[T] {
	return make(Set[T], len(items)).Append(items...)
}

// Append adds the items and returns the set, allocating it when nil.
func (s Set[T]) Append(items ...T) Set[T] {
	if s == nil {
		s = make(Set[T], len(items))
	}
	for _, item := range items {
		s[item] = struct{}{}
	}
	return s
}

func (s Set[T]) Has(k T) bool {
	_, ok := s[k]
	return ok
}

func (s Set[T]) Delete(k T) { delete(s, k) }

func (s Set[T]) Clone() Set[T] { return New(maps.Keys(s)...) }

// Sorted returns the members in ascending order.
func (s Set[T]) Sorted() []T { return slices.Sort(maps.Keys(s)) }

// Intersects reports whether the sets share at least one member.
func (s Set[T]) Intersects(o Set[T]) bool {
	for k := range s {
		if o.Has(k) {
			return true
		}
	}
	return false
}

// Disjoint reports whether the sets share no members.
func (s Set[T]) Disjoint(o Set[T]) bool { return !s.Intersects(o) }

func (s Set[T]) String() string {
	members := slices.Remap(s.Sorted(), func(_ int, k T) string { return fmt.Sprint(k) })
	return "{" + strings.Join(members, ", ") + "}"
}
