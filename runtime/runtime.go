package runtime

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/josevictorferreira/lazyfx/effect"
	"github.com/josevictorferreira/lazyfx/seq"
)

// Config bounds the runtime's internal queues.
type Config struct {
	BufferSize    int
	NumPartitions int
}

// NewConfig builds a Config, normalizing non-positive values to 1.
func NewConfig(bufferSize, numPartitions int) Config {
	if bufferSize < 1 {
		bufferSize = 1
	}
	if numPartitions < 1 {
		numPartitions = 1
	}
	return Config{BufferSize: bufferSize, NumPartitions: numPartitions}
}

// Program couples an initial state with a pure transition function. Both
// return an Effect describing the side effects the runtime should perform
// after the transition; return effect.None for none.
type Program[Model, Msg any] struct {
	Init   func() (Model, effect.Effect[Msg])
	Update func(Model, Msg) (Model, effect.Effect[Msg])
}

// Runtime owns a running Program until its context is canceled or
// Shutdown is called.
type Runtime[Model, Msg any] struct {
	RuntimeId string

	ctx     context.Context
	program Program[Model, Msg]
	root    any
	logger  *zap.Logger

	msgCh chan Msg

	mu     sync.RWMutex
	model  Model
	closed bool

	listeners *listenerTable
	selectors *selectorTable[Msg]
	journal   *journal

	closeFn func()
}

// Start calls program.Init, performs its effect, and launches the update
// loop. root is the opaque host handle actions see via the Root
// capability. A nil logger falls back to zap's production logger.
func Start[Model, Msg any](
	ctx context.Context,
	program Program[Model, Msg],
	config Config,
	root any,
	logger *zap.Logger,
) *Runtime[Model, Msg] {
	if logger == nil {
		logger, _ = zap.NewProduction()
	}
	ctx, cancelFn := context.WithCancel(ctx)

	rt := &Runtime[Model, Msg]{
		RuntimeId: uuid.New().String(),
		ctx:       ctx,
		program:   program,
		root:      root,
		logger:    logger,
		msgCh:     make(chan Msg, config.BufferSize),
		listeners: newListenerTable(logger),
		journal:   &journal{},
		closeFn:   cancelFn,
	}
	rt.selectors = newSelectorTable(ctx, config.NumPartitions, config.BufferSize, rt.Dispatch, logger)

	model, eff := program.Init()
	rt.model = model

	ready := make(chan struct{})
	go func() {
		defer close(rt.msgCh)
		close(ready)
		for {
			select {
			case msg := <-rt.msgCh:
				rt.step(msg)
			case <-ctx.Done():
				return
			}
		}
	}()
	<-ready

	rt.perform(eff)
	logger.Sugar().Debugf("started program runtime: runtimeId: %v", rt.RuntimeId)
	return rt
}

func (rt *Runtime[Model, Msg]) step(msg Msg) {
	rt.mu.Lock()
	model, eff := rt.program.Update(rt.model, msg)
	rt.model = model
	rt.mu.Unlock()
	rt.perform(eff)
}

func (rt *Runtime[Model, Msg]) perform(eff effect.Effect[Msg]) {
	if eff.Empty() {
		return
	}
	effect.Perform(eff, rt.Dispatch, rt.emit, rt.subscribe, rt.root)
}

// Dispatch enqueues msg for the update loop. It may be called from effect
// actions and external callbacks alike; messages dispatched after Shutdown
// are dropped with a log, never a panic.
func (rt *Runtime[Model, Msg]) Dispatch(msg Msg) {
	defer func() {
		if r := recover(); r != nil {
			rt.logger.Warn("dropped message dispatched after shutdown",
				zap.String("runtimeId", rt.RuntimeId),
				zap.Any("recovered", r),
			)
		}
	}()
	select {
	case <-rt.ctx.Done():
	case rt.msgCh <- msg:
	}
}

func (rt *Runtime[Model, Msg]) emit(name string, data any) {
	rt.journal.record(rt.logger, name, data)
	rt.listeners.notify(name, data)
}

func (rt *Runtime[Model, Msg]) subscribe(sel effect.Selector[Msg]) {
	rt.selectors.register(sel)
}

// Send offers an external event to every registered selector. Matches are
// translated to messages and dispatched into the update loop.
func (rt *Runtime[Model, Msg]) Send(event any) {
	rt.selectors.offer(event)
}

// AddEventListener registers fn for events emitted under name.
func (rt *Runtime[Model, Msg]) AddEventListener(name string, fn Listener) {
	rt.listeners.add(name, fn)
}

// Model returns a snapshot of the current model.
func (rt *Runtime[Model, Msg]) Model() Model {
	rt.mu.RLock()
	defer rt.mu.RUnlock()
	return rt.model
}

// Events returns the journal of emitted events so far as a lazy sequence,
// in emission order.
func (rt *Runtime[Model, Msg]) Events() seq.Seq[EventRecord] {
	return seq.FromSlice(rt.journal.snapshot())
}

// Shutdown stops the update loop and the selector partitions. Idempotent.
func (rt *Runtime[Model, Msg]) Shutdown() {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	if rt.closed {
		return
	}
	rt.closed = true
	rt.closeFn()
	rt.logger.Sugar().Debugf("closed program runtime: runtimeId: %v", rt.RuntimeId)
}
