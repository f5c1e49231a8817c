package client

import "slices"

// Store is an ordered list of entities addressed by id. Every operation returns
// a new slice and leaves its input untouched.
type Store[T Entity] []T

func (s Store[T]) Index(id string) int {
	return slices.IndexFunc(s, func(item T) bool { return item.EntityID() == id })
}

func (s Store[T]) Append(item T) Store[T] {
	return append(slices.Clone(s), item)
}

// Replace swaps the entity with item's id for item. Unknown ids leave s unchanged.
func (s Store[T]) Replace(item T) Store[T] {
	i := s.Index(item.EntityID())
	if i < 0 {
		return s
	}
	out := slices.Clone(s)
	out[i] = item
	return out
}

// Remove drops the entity with id and reports where it was, or -1.
func (s Store[T]) Remove(id string) (Store[T], T, int) {
	var zero T
	i := s.Index(id)
	if i < 0 {
		return s, zero, -1
	}
	removed := s[i]
	return slices.Delete(slices.Clone(s), i, i+1), removed, i
}

// Insert puts item back at index i, clamped to the current length.
func (s Store[T]) Insert(i int, item T) Store[T] {
	i = max(0, min(i, len(s)))
	return slices.Insert(slices.Clone(s), i, item)
}
