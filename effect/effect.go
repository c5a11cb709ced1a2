package effect

// Capabilities is the record of concrete callbacks an action runs against.
// The runtime driver builds one per Perform call; actions must not retain it
// past their own invocation.
type Capabilities[Msg any] struct {
	Dispatch  func(Msg)
	Emit      func(name string, data any)
	Subscribe func(Selector[Msg])
	Root      any
}

// Selector matches asynchronous external events, translating those it
// recognizes into application messages.
type Selector[Msg any] interface {
	Select(event any) (Msg, bool)
}

// SelectorFunc adapts a plain function to the Selector interface.
type SelectorFunc[Msg any] func(event any) (Msg, bool)

func (f SelectorFunc[Msg]) Select(event any) (Msg, bool) { return f(event) }

// Action is a single deferred side effect, invoked with the capability
// record when its Effect is performed.
type Action[Msg any] func(Capabilities[Msg])

// Effect is an ordered, immutable batch of actions. The zero value carries
// no actions and performs no observable work.
type Effect[Msg any] struct {
	actions []Action[Msg]
}

// None returns an Effect carrying zero actions.
func None[Msg any]() Effect[Msg] {
	return Effect[Msg]{}
}

// From wraps an action that only needs the dispatch capability.
func From[Msg any](run func(dispatch func(Msg))) Effect[Msg] {
	return Custom(func(caps Capabilities[Msg]) {
		run(caps.Dispatch)
	})
}

// Event wraps an action that emits a single named event. data must be
// JSON-serializable.
func Event[Msg any](name string, data any) Effect[Msg] {
	return Custom(func(caps Capabilities[Msg]) {
		caps.Emit(name, data)
	})
}

// Custom wraps an action given the full capability record directly. It is
// the general escape hatch for actions that need Subscribe or Root.
func Custom[Msg any](run Action[Msg]) Effect[Msg] {
	return Effect[Msg]{actions: []Action[Msg]{run}}
}

// Batch concatenates the action lists of effects into one Effect. Actions
// within each input keep their order, and inputs keep their relative order.
func Batch[Msg any](effects ...Effect[Msg]) Effect[Msg] {
	total := 0
	for _, e := range effects {
		total += len(e.actions)
	}
	if total == 0 {
		return Effect[Msg]{}
	}
	actions := make([]Action[Msg], 0, total)
	for _, e := range effects {
		actions = append(actions, e.actions...)
	}
	return Effect[Msg]{actions: actions}
}

// Map re-targets an Effect from message type A to B. Each action is wrapped
// so that dispatched messages pass through f before reaching the original
// dispatch target, and subscribed selectors have their matches rewritten
// through f as well. Emit and Root are untouched: Map is a functor over the
// message type only.
func Map[A, B any](e Effect[A], f func(A) B) Effect[B] {
	if len(e.actions) == 0 {
		return Effect[B]{}
	}
	actions := make([]Action[B], len(e.actions))
	for i, run := range e.actions {
		actions[i] = mapAction(run, f)
	}
	return Effect[B]{actions: actions}
}

func mapAction[A, B any](run Action[A], f func(A) B) Action[B] {
	return func(caps Capabilities[B]) {
		run(Capabilities[A]{
			Dispatch: func(msg A) {
				caps.Dispatch(f(msg))
			},
			Emit: caps.Emit,
			Subscribe: func(sel Selector[A]) {
				caps.Subscribe(mappedSelector[A, B]{inner: sel, transform: f})
			},
			Root: caps.Root,
		})
	}
}

// mappedSelector decorates a Selector so its matches are rewritten through
// the transform before reaching the outer message type.
type mappedSelector[A, B any] struct {
	inner     Selector[A]
	transform func(A) B
}

func (m mappedSelector[A, B]) Select(event any) (B, bool) {
	msg, ok := m.inner.Select(event)
	if !ok {
		var zero B
		return zero, false
	}
	return m.transform(msg), true
}

// Empty reports whether e carries no actions.
func (e Effect[Msg]) Empty() bool {
	return len(e.actions) == 0
}

// Perform invokes every action of e in list order, synchronously, against
// the given capabilities. It returns once each action has been invoked;
// panics from actions or capabilities propagate to the caller. Inputs are
// not validated — a nil capability an action uses is the caller's concern.
func Perform[Msg any](
	e Effect[Msg],
	dispatch func(Msg),
	emit func(name string, data any),
	subscribe func(Selector[Msg]),
	root any,
) {
	caps := Capabilities[Msg]{
		Dispatch:  dispatch,
		Emit:      emit,
		Subscribe: subscribe,
		Root:      root,
	}
	for _, run := range e.actions {
		run(caps)
	}
}
