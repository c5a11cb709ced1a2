package effect_test

import (
	"testing"

	"github.com/josevictorferreira/lazyfx/effect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testMsg struct {
	tag string
	n   int
}

// caps returns a capability set that records everything it is handed.
type recorder struct {
	dispatched []testMsg
	emitted    []string
	selectors  []effect.Selector[testMsg]
	rootSeen   []any
}

func (r *recorder) perform(e effect.Effect[testMsg], root any) {
	effect.Perform(e,
		func(msg testMsg) { r.dispatched = append(r.dispatched, msg) },
		func(name string, data any) { r.emitted = append(r.emitted, name) },
		func(sel effect.Selector[testMsg]) { r.selectors = append(r.selectors, sel) },
		root,
	)
}

func TestNone_PerformsNoWork(t *testing.T) {
	var r recorder
	r.perform(effect.None[testMsg](), nil)
	assert.Empty(t, r.dispatched)
	assert.Empty(t, r.emitted)
	assert.Empty(t, r.selectors)
	assert.True(t, effect.None[testMsg]().Empty())
}

func TestFrom_UsesDispatchOnly(t *testing.T) {
	var r recorder
	r.perform(effect.From(func(dispatch func(testMsg)) {
		dispatch(testMsg{tag: "a"})
		dispatch(testMsg{tag: "b"})
	}), nil)
	assert.Equal(t, []testMsg{{tag: "a"}, {tag: "b"}}, r.dispatched)
	assert.Empty(t, r.emitted)
}

func TestEvent_UsesEmitOnly(t *testing.T) {
	var r recorder
	r.perform(effect.Event[testMsg]("saved", map[string]any{"id": 7}), nil)
	assert.Equal(t, []string{"saved"}, r.emitted)
	assert.Empty(t, r.dispatched)
}

func TestCustom_SeesAllCapabilities(t *testing.T) {
	var r recorder
	root := &struct{ name string }{name: "host"}
	r.perform(effect.Custom(func(caps effect.Capabilities[testMsg]) {
		caps.Dispatch(testMsg{tag: "x"})
		caps.Emit("ev", nil)
		caps.Subscribe(effect.SelectorFunc[testMsg](func(any) (testMsg, bool) {
			return testMsg{}, false
		}))
		r.rootSeen = append(r.rootSeen, caps.Root)
	}), root)

	assert.Len(t, r.dispatched, 1)
	assert.Len(t, r.emitted, 1)
	assert.Len(t, r.selectors, 1)
	require.Len(t, r.rootSeen, 1)
	assert.Same(t, root, r.rootSeen[0])
}

func TestBatch_PreservesOrderAcrossEffects(t *testing.T) {
	var r recorder
	e1 := effect.Batch(
		effect.From(func(d func(testMsg)) { d(testMsg{tag: "e1-first"}) }),
		effect.From(func(d func(testMsg)) { d(testMsg{tag: "e1-second"}) }),
	)
	e2 := effect.From(func(d func(testMsg)) { d(testMsg{tag: "e2"}) })

	r.perform(effect.Batch(e1, e2), nil)

	tags := make([]string, 0, len(r.dispatched))
	for _, m := range r.dispatched {
		tags = append(tags, m.tag)
	}
	assert.Equal(t, []string{"e1-first", "e1-second", "e2"}, tags)
}

func TestBatch_OfEmptiesIsEmpty(t *testing.T) {
	assert.True(t, effect.Batch(effect.None[testMsg](), effect.None[testMsg]()).Empty())
	assert.True(t, effect.Batch[testMsg]().Empty())
}

func TestMap_TransformsDispatchedMessages(t *testing.T) {
	var r recorder
	inner := effect.From(func(d func(int)) {
		d(1)
		d(2)
	})
	r.perform(effect.Map(inner, func(n int) testMsg {
		return testMsg{tag: "wrapped", n: n * 10}
	}), nil)

	assert.Equal(t, []testMsg{{tag: "wrapped", n: 10}, {tag: "wrapped", n: 20}}, r.dispatched)
}

func TestMap_LeavesEmitUntouched(t *testing.T) {
	var (
		gotName string
		gotData any
	)
	payload := map[string]any{"k": "v"}
	e := effect.Map(effect.Event[int]("x", payload), func(n int) testMsg {
		return testMsg{n: n}
	})
	effect.Perform(e,
		func(testMsg) {},
		func(name string, data any) { gotName, gotData = name, data },
		func(effect.Selector[testMsg]) {},
		nil,
	)
	assert.Equal(t, "x", gotName)
	assert.Equal(t, payload, gotData, "map must not rewrite emit payloads")
}

func TestMap_RewritesSelectorMatches(t *testing.T) {
	var r recorder
	inner := effect.Custom(func(caps effect.Capabilities[int]) {
		caps.Subscribe(effect.SelectorFunc[int](func(event any) (int, bool) {
			n, ok := event.(int)
			return n, ok
		}))
	})
	r.perform(effect.Map(inner, func(n int) testMsg {
		return testMsg{tag: "sel", n: n}
	}), nil)

	require.Len(t, r.selectors, 1)
	sel := r.selectors[0]

	msg, ok := sel.Select(5)
	require.True(t, ok)
	assert.Equal(t, testMsg{tag: "sel", n: 5}, msg)

	_, ok = sel.Select("not an int")
	assert.False(t, ok, "non-matches stay non-matches after mapping")
}

func TestMap_PreservesRoot(t *testing.T) {
	root := &struct{}{}
	var seen any
	e := effect.Map(effect.Custom(func(caps effect.Capabilities[int]) {
		seen = caps.Root
	}), func(n int) testMsg { return testMsg{n: n} })

	var r recorder
	r.perform(e, root)
	assert.Same(t, root, seen)
}

func TestPerform_PanicsPropagate(t *testing.T) {
	e := effect.Custom(func(effect.Capabilities[testMsg]) {
		panic("action failure")
	})
	assert.PanicsWithValue(t, "action failure", func() {
		var r recorder
		r.perform(e, nil)
	})
}

func TestBatchedActions_DoNotInterleave(t *testing.T) {
	var order []string
	mark := func(s string) effect.Effect[testMsg] {
		return effect.Custom(func(effect.Capabilities[testMsg]) {
			order = append(order, s)
		})
	}
	e := effect.Batch(
		effect.Batch(mark("a1"), mark("a2")),
		mark("b1"),
		effect.Batch(mark("c1"), mark("c2")),
	)
	var r recorder
	r.perform(e, nil)
	assert.Equal(t, []string{"a1", "a2", "b1", "c1", "c2"}, order)
}
