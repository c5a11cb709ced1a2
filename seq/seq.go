package seq

// Seq is a pull-based lazy sequence of T. Calling it forces exactly one
// step of evaluation and yields either Stop or Continue.
type Seq[T any] func() Step[T]

// Step is the result of forcing one step of a Seq.
// The only implementations are Stop and Continue.
type Step[T any] interface {
	sealedStep()
}

// Stop marks an exhausted sequence. It is terminal: there is no remainder.
type Stop[T any] struct{}

func (Stop[T]) sealedStep() {}

// Continue carries one produced value plus the sequence for the remainder.
type Continue[T any] struct {
	Value T
	Next  Seq[T]
}

func (Continue[T]) sealedStep() {}

// Pair groups two positionally related values, as produced by Zip and Index.
type Pair[A, B any] struct {
	First  A
	Second B
}
