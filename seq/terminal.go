package seq

// Next forces a single element, returning it together with the sequence
// for the remainder. ok is false when s is exhausted.
func Next[T any](s Seq[T]) (value T, rest Seq[T], ok bool) {
	st, ok := s().(Continue[T])
	if !ok {
		var zero T
		return zero, nil, false
	}
	return st.Value, st.Next, true
}

// Fold forces every element of s, threading an accumulator through f.
func Fold[T, Acc any](s Seq[T], initial Acc, f func(Acc, T) Acc) Acc {
	acc := initial
	cur := s
	for {
		st, ok := cur().(Continue[T])
		if !ok {
			return acc
		}
		acc = f(acc, st.Value)
		cur = st.Next
	}
}

// FoldUntil folds s through f until f signals a stop by returning false.
// The accumulator at the point of stopping is returned; elements past the
// stopping point are never forced.
func FoldUntil[T, Acc any](s Seq[T], initial Acc, f func(Acc, T) (Acc, bool)) Acc {
	acc := initial
	cur := s
	for {
		st, ok := cur().(Continue[T])
		if !ok {
			return acc
		}
		var keep bool
		if acc, keep = f(acc, st.Value); !keep {
			return acc
		}
		cur = st.Next
	}
}

// TryFold folds s through f, short-circuiting on the first error. The
// error is returned unchanged; no further elements are forced.
func TryFold[T, Acc any](s Seq[T], initial Acc, f func(Acc, T) (Acc, error)) (Acc, error) {
	acc := initial
	cur := s
	for {
		st, ok := cur().(Continue[T])
		if !ok {
			return acc, nil
		}
		var err error
		if acc, err = f(acc, st.Value); err != nil {
			return acc, err
		}
		cur = st.Next
	}
}

// Reduce folds s through f seeded by its first element. ok is false on an
// empty sequence.
func Reduce[T any](s Seq[T], f func(T, T) T) (T, bool) {
	st, ok := s().(Continue[T])
	if !ok {
		var zero T
		return zero, false
	}
	return Fold(st.Next, st.Value, f), true
}

// ToSlice forces the whole sequence into a slice. An empty sequence
// yields nil.
func ToSlice[T any](s Seq[T]) []T {
	return Fold(s, []T(nil), func(acc []T, v T) []T {
		return append(acc, v)
	})
}

// Run forces the whole sequence, discarding the values. Useful when the
// work lives in the generators themselves.
func Run[T any](s Seq[T]) {
	Each(s, func(T) {})
}

// Each forces the whole sequence, applying f to every element in order.
func Each[T any](s Seq[T], f func(T)) {
	cur := s
	for {
		st, ok := cur().(Continue[T])
		if !ok {
			return
		}
		f(st.Value)
		cur = st.Next
	}
}

// Length forces the whole sequence and returns the number of elements.
func Length[T any](s Seq[T]) int {
	return Fold(s, 0, func(n int, _ T) int { return n + 1 })
}

// First returns the first element of s. ok is false on an empty sequence.
func First[T any](s Seq[T]) (T, bool) {
	st, ok := s().(Continue[T])
	if !ok {
		var zero T
		return zero, false
	}
	return st.Value, true
}

// Last forces the whole sequence and returns its final element. ok is
// false on an empty sequence.
func Last[T any](s Seq[T]) (T, bool) {
	st, ok := s().(Continue[T])
	if !ok {
		var zero T
		return zero, false
	}
	last := st.Value
	Each(st.Next, func(v T) { last = v })
	return last, true
}

// At returns the element at index, forcing elements up to and including
// it. Negative indices are clamped to 0; ok is false when index is past
// the end of the sequence.
func At[T any](s Seq[T], index int) (T, bool) {
	if index < 0 {
		index = 0
	}
	return First(Drop(s, index))
}

// Find returns the first element satisfying pred, forcing no further
// elements. ok is false when no element matches.
func Find[T any](s Seq[T], pred func(T) bool) (T, bool) {
	return First(Filter(s, pred))
}

// FindMap returns the first accepted result of f, forcing no further
// elements. ok is false when f accepts nothing.
func FindMap[T, R any](s Seq[T], f func(T) (R, bool)) (R, bool) {
	return First(FilterMap(s, f))
}

// Any reports whether some element satisfies pred, short-circuiting on
// the first match. An empty sequence reports false.
func Any[T any](s Seq[T], pred func(T) bool) bool {
	_, ok := Find(s, pred)
	return ok
}

// All reports whether every element satisfies pred, short-circuiting on
// the first miss. An empty sequence reports true.
func All[T any](s Seq[T], pred func(T) bool) bool {
	return !Any(s, func(v T) bool { return !pred(v) })
}

// Group forces the whole sequence and maps each key to the elements
// sharing it, preserving relative order within each group. Keys are
// compared with ==.
func Group[T any, K comparable](s Seq[T], keyFn func(T) K) map[K][]T {
	groups := make(map[K][]T)
	Each(s, func(v T) {
		k := keyFn(v)
		groups[k] = append(groups[k], v)
	})
	return groups
}
