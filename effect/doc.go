// Package effect provides a composable description of deferred side effects.
//
// An Effect is an ordered batch of actions returned by pure state-transition
// code. It describes what should happen without doing it: nothing runs until
// a runtime driver calls Perform with concrete capabilities. Effects compose
// structurally — Batch concatenates them in order, Map re-targets the message
// type — so application logic stays free of runtime wiring.
//
// # Capabilities
//
// Every action receives the same four-capability record:
//   - Dispatch feeds a message back into the application's update cycle.
//   - Emit forwards a named event with a JSON-serializable payload to an
//     external listener.
//   - Subscribe registers a Selector to receive asynchronous external events.
//   - Root is an opaque host context handle for low-level actions.
//
// Effect values are immutable and safe to share. Perform runs every action
// synchronously on the caller's goroutine and returns once each has been
// invoked; work an action starts elsewhere is neither tracked nor cancelable
// here. Panics raised by actions or capabilities are not recovered — the
// invoking runtime owns that policy.
package effect
