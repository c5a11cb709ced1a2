package seq

// Empty returns a sequence that yields no elements.
func Empty[T any]() Seq[T] {
	return func() Step[T] { return Stop[T]{} }
}

// Single returns a sequence that yields exactly one element.
func Single[T any](value T) Seq[T] {
	return func() Step[T] {
		return Continue[T]{Value: value, Next: Empty[T]()}
	}
}

// Once returns a sequence whose single element is computed by f when pulled.
func Once[T any](f func() T) Seq[T] {
	return func() Step[T] {
		return Continue[T]{Value: f(), Next: Empty[T]()}
	}
}

// FromSlice returns a sequence over the elements of items, in order.
// The slice is captured by reference and must not be mutated while the
// sequence is live.
func FromSlice[T any](items []T) Seq[T] {
	var from func(i int) Seq[T]
	from = func(i int) Seq[T] {
		return func() Step[T] {
			if i >= len(items) {
				return Stop[T]{}
			}
			return Continue[T]{Value: items[i], Next: from(i + 1)}
		}
	}
	return from(0)
}

// Unfold builds a sequence from a seed and a step function. Each pull
// applies step to the current seed; ok reports whether a value was
// produced. A false ok terminates the sequence and the returned value
// is not emitted.
func Unfold[Acc, T any](seed Acc, step func(Acc) (value T, next Acc, ok bool)) Seq[T] {
	return func() Step[T] {
		value, next, ok := step(seed)
		if !ok {
			return Stop[T]{}
		}
		return Continue[T]{Value: value, Next: Unfold(next, step)}
	}
}

// Repeat returns the infinite sequence value, value, value, ...
// Bound it with Take before applying an unbounded terminal operation.
func Repeat[T any](value T) Seq[T] {
	var s Seq[T]
	s = func() Step[T] {
		return Continue[T]{Value: value, Next: s}
	}
	return s
}

// Iterate returns the infinite sequence initial, f(initial), f(f(initial)), ...
func Iterate[T any](initial T, f func(T) T) Seq[T] {
	return Unfold(initial, func(x T) (T, T, bool) {
		return x, f(x), true
	})
}

// Range returns the integers from from to to, inclusive of both endpoints.
// It counts down when from > to, and yields exactly one element when they
// are equal.
func Range(from, to int) Seq[int] {
	delta := 1
	if from > to {
		delta = -1
	}
	return Unfold(from, func(n int) (int, int, bool) {
		if delta > 0 && n > to || delta < 0 && n < to {
			return 0, 0, false
		}
		return n, n + delta, true
	})
}
