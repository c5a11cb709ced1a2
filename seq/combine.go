package seq

// Map returns a sequence that applies f to each element of s.
func Map[T, R any](s Seq[T], f func(T) R) Seq[R] {
	return func() Step[R] {
		st, ok := s().(Continue[T])
		if !ok {
			return Stop[R]{}
		}
		return Continue[R]{Value: f(st.Value), Next: Map(st.Next, f)}
	}
}

// Map2 pairs elements of a and b positionally through f, stopping as soon
// as either input stops.
func Map2[A, B, R any](a Seq[A], b Seq[B], f func(A, B) R) Seq[R] {
	return func() Step[R] {
		sa, ok := a().(Continue[A])
		if !ok {
			return Stop[R]{}
		}
		sb, ok := b().(Continue[B])
		if !ok {
			return Stop[R]{}
		}
		return Continue[R]{Value: f(sa.Value, sb.Value), Next: Map2(sa.Next, sb.Next, f)}
	}
}

// Zip pairs elements of a and b positionally, truncating to the shorter input.
func Zip[A, B any](a Seq[A], b Seq[B]) Seq[Pair[A, B]] {
	return Map2(a, b, func(x A, y B) Pair[A, B] {
		return Pair[A, B]{First: x, Second: y}
	})
}

// Index pairs each element with its zero-based position.
func Index[T any](s Seq[T]) Seq[Pair[int, T]] {
	return Map2(Iterate(0, func(i int) int { return i + 1 }), s,
		func(i int, v T) Pair[int, T] {
			return Pair[int, T]{First: i, Second: v}
		})
}

// Filter returns the elements of s satisfying pred, in order. Skipping
// happens inside the resumption: each pull advances the source until a
// match or exhaustion.
func Filter[T any](s Seq[T], pred func(T) bool) Seq[T] {
	return FilterMap(s, func(v T) (T, bool) {
		return v, pred(v)
	})
}

// FilterMap applies f to each element and keeps the results f accepts.
func FilterMap[T, R any](s Seq[T], f func(T) (R, bool)) Seq[R] {
	return func() Step[R] {
		cur := s
		for {
			st, ok := cur().(Continue[T])
			if !ok {
				return Stop[R]{}
			}
			if r, keep := f(st.Value); keep {
				return Continue[R]{Value: r, Next: FilterMap(st.Next, f)}
			}
			cur = st.Next
		}
	}
}

// Take returns at most n leading elements of s. A non-positive n yields an
// empty sequence, and elements beyond the nth are never forced.
func Take[T any](s Seq[T], n int) Seq[T] {
	return func() Step[T] {
		if n <= 0 {
			return Stop[T]{}
		}
		st, ok := s().(Continue[T])
		if !ok {
			return Stop[T]{}
		}
		return Continue[T]{Value: st.Value, Next: Take(st.Next, n-1)}
	}
}

// TakeWhile returns the leading elements of s for which pred holds.
func TakeWhile[T any](s Seq[T], pred func(T) bool) Seq[T] {
	return func() Step[T] {
		st, ok := s().(Continue[T])
		if !ok || !pred(st.Value) {
			return Stop[T]{}
		}
		return Continue[T]{Value: st.Value, Next: TakeWhile(st.Next, pred)}
	}
}

// Drop discards up to n leading elements by forcing them. If s has fewer
// than n elements the result is empty.
func Drop[T any](s Seq[T], n int) Seq[T] {
	return func() Step[T] {
		cur := s
		for i := 0; i < n; i++ {
			st, ok := cur().(Continue[T])
			if !ok {
				return Stop[T]{}
			}
			cur = st.Next
		}
		return cur()
	}
}

// DropWhile discards leading elements while pred holds.
func DropWhile[T any](s Seq[T], pred func(T) bool) Seq[T] {
	return func() Step[T] {
		cur := s
		for {
			st, ok := cur().(Continue[T])
			if !ok {
				return Stop[T]{}
			}
			if !pred(st.Value) {
				return st
			}
			cur = st.Next
		}
	}
}

// Append yields every element of a, then every element of b. a is
// exhausted lazily before b is first forced.
func Append[T any](a, b Seq[T]) Seq[T] {
	return func() Step[T] {
		st, ok := a().(Continue[T])
		if !ok {
			return b()
		}
		return Continue[T]{Value: st.Value, Next: Append(st.Next, b)}
	}
}

// Flatten concatenates one level of nesting: each inner sequence is fully
// exhausted, in order, before the next is forced.
func Flatten[T any](s Seq[Seq[T]]) Seq[T] {
	return func() Step[T] {
		st, ok := s().(Continue[Seq[T]])
		if !ok {
			return Stop[T]{}
		}
		return Append(st.Value, Flatten(st.Next))()
	}
}

// FlatMap maps each element to a sequence and concatenates the results.
func FlatMap[T, R any](s Seq[T], f func(T) Seq[R]) Seq[R] {
	return Flatten(Map(s, f))
}

// Cycle repeats s endlessly. Cycling an empty sequence yields an empty
// sequence; cycling anything else is infinite and must be bounded with
// Take before an unbounded terminal operation.
func Cycle[T any](s Seq[T]) Seq[T] {
	var loop func(cur Seq[T]) Seq[T]
	loop = func(cur Seq[T]) Seq[T] {
		return func() Step[T] {
			st, ok := cur().(Continue[T])
			if !ok {
				if st, ok = s().(Continue[T]); !ok {
					return Stop[T]{}
				}
			}
			return Continue[T]{Value: st.Value, Next: loop(st.Next)}
		}
	}
	return loop(s)
}

// Chunk groups consecutive elements sharing the same key into slices,
// emitting each maximal run in encounter order. A key change starts a new
// chunk. Keys are compared with ==.
func Chunk[T any, K comparable](s Seq[T], keyFn func(T) K) Seq[[]T] {
	return func() Step[[]T] {
		st, ok := s().(Continue[T])
		if !ok {
			return Stop[[]T]{}
		}
		return chunkRun(st.Value, keyFn(st.Value), st.Next, keyFn)
	}
}

// chunkRun accumulates the run starting at first until the key changes or
// the source stops, then hands the element that broke the run to the next
// resumption.
func chunkRun[T any, K comparable](first T, key K, rest Seq[T], keyFn func(T) K) Step[[]T] {
	run := []T{first}
	cur := rest
	for {
		st, ok := cur().(Continue[T])
		if !ok {
			return Continue[[]T]{Value: run, Next: Empty[[]T]()}
		}
		if k := keyFn(st.Value); k != key {
			value, next := st.Value, st.Next
			return Continue[[]T]{Value: run, Next: func() Step[[]T] {
				return chunkRun(value, k, next, keyFn)
			}}
		}
		run = append(run, st.Value)
		cur = st.Next
	}
}

// SizedChunk groups elements into slices of n, in order. A final partial
// chunk is still emitted; an exhausted source with nothing accumulated
// emits no trailing empty chunk. A non-positive n is treated as 1.
func SizedChunk[T any](s Seq[T], n int) Seq[[]T] {
	if n <= 0 {
		n = 1
	}
	return func() Step[[]T] {
		chunk := make([]T, 0, n)
		cur := s
		for len(chunk) < n {
			st, ok := cur().(Continue[T])
			if !ok {
				break
			}
			chunk = append(chunk, st.Value)
			cur = st.Next
		}
		if len(chunk) == 0 {
			return Stop[[]T]{}
		}
		return Continue[[]T]{Value: chunk, Next: SizedChunk(cur, n)}
	}
}

// Intersperse inserts sep between consecutive elements only, never leading
// or trailing. Sequences of fewer than two elements are unchanged.
func Intersperse[T any](s Seq[T], sep T) Seq[T] {
	return func() Step[T] {
		st, ok := s().(Continue[T])
		if !ok {
			return Stop[T]{}
		}
		return Continue[T]{Value: st.Value, Next: interspersed(st.Next, sep)}
	}
}

func interspersed[T any](s Seq[T], sep T) Seq[T] {
	return func() Step[T] {
		st, ok := s().(Continue[T])
		if !ok {
			return Stop[T]{}
		}
		return Continue[T]{Value: sep, Next: func() Step[T] {
			return Continue[T]{Value: st.Value, Next: interspersed(st.Next, sep)}
		}}
	}
}

// Interleave alternates one element from a then one from b. Once either
// side is exhausted the other is drained to completion.
func Interleave[T any](a, b Seq[T]) Seq[T] {
	return func() Step[T] {
		st, ok := a().(Continue[T])
		if !ok {
			return b()
		}
		return Continue[T]{Value: st.Value, Next: Interleave(b, st.Next)}
	}
}

// Scan folds s through f, emitting every intermediate accumulator. The
// initial accumulator itself is not emitted.
func Scan[T, Acc any](s Seq[T], initial Acc, f func(Acc, T) Acc) Seq[Acc] {
	return func() Step[Acc] {
		st, ok := s().(Continue[T])
		if !ok {
			return Stop[Acc]{}
		}
		acc := f(initial, st.Value)
		return Continue[Acc]{Value: acc, Next: Scan(st.Next, acc, f)}
	}
}
