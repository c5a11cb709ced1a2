// Package runtime drives a Program: it owns the model, runs the update
// loop, and performs the effects each transition returns against concrete
// capabilities.
//
// Dispatch re-enters the update loop, Emit fans a named event out to
// registered listeners and the event journal, Subscribe registers selectors
// for asynchronous external events delivered via Send, and Root is the
// opaque host handle given at Start. Effect actions run synchronously on
// the loop goroutine; external work an action starts is not tracked or
// canceled by the runtime.
package runtime
