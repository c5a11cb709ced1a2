// Package seq provides a pull-based lazy sequence abstraction.
//
// A Seq produces its elements on demand: nothing is computed until a
// terminal operation (Fold, ToSlice, Find, ...) drives it. Combinators
// (Map, Filter, Take, ...) wrap a sequence in a new one without forcing
// any evaluation, so pipelines can be assembled freely and paid for only
// when consumed.
//
// # Resumption model
//
// A Seq is a zero-argument resumption function. Calling it yields a Step:
// either Stop (exhausted) or Continue, carrying one value plus the Seq for
// the remainder. Sequences are immutable handles; combinators always return
// a new handle and "state" lives only in the closures they capture. Handles
// may be shared across goroutines, and for pure generators re-driving a
// handle replays the same prefix. Replay purity is a caller contract:
// a generator reading external input advances that input on every pull.
//
// # Infinite sequences
//
// Repeat, Iterate and Cycle produce unbounded sequences. Constructing one
// is fine; driving it with an unbounded terminal such as ToSlice or Length
// never returns. Bound it first with Take or TakeWhile.
//
// # Absent results
//
// Operations that may have nothing to return (Find, First, Last, At,
// Reduce) report absence with a false ok result, never a panic.
package seq
