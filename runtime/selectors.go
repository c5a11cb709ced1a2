package runtime

import (
	"context"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/josevictorferreira/lazyfx/effect"
)

// selectorOp is the sealed message union consumed by partition workers.
type selectorOp[Msg any] interface {
	sealedSelectorOp()
}

// registerOp adds a selector to the partition owning its subscription id.
type registerOp[Msg any] struct {
	id  string
	sel effect.Selector[Msg]
}

func (registerOp[Msg]) sealedSelectorOp() {}

// deliverOp offers one external event to every selector in the partition.
type deliverOp[Msg any] struct {
	event any
}

func (deliverOp[Msg]) sealedSelectorOp() {}

type selectorEntry[Msg any] struct {
	id  string
	sel effect.Selector[Msg]
}

// selectorTable spreads selectors across hashed partitions. A selector is
// always owned by the same worker, so each selector sees events in the
// order they were offered.
type selectorTable[Msg any] struct {
	ctx        context.Context
	partitions []chan selectorOp[Msg]
	dispatch   func(Msg)
	logger     *zap.Logger
}

func newSelectorTable[Msg any](
	ctx context.Context,
	numPartitions, bufferSize int,
	dispatch func(Msg),
	logger *zap.Logger,
) *selectorTable[Msg] {
	t := &selectorTable[Msg]{
		ctx:        ctx,
		partitions: make([]chan selectorOp[Msg], numPartitions),
		dispatch:   dispatch,
		logger:     logger,
	}
	ready := sync.WaitGroup{}
	for i := 0; i < numPartitions; i++ {
		ready.Add(1)
		ch := make(chan selectorOp[Msg], bufferSize)
		go func(ch chan selectorOp[Msg]) {
			defer close(ch)
			ready.Done()
			t.work(ch)
		}(ch)
		t.partitions[i] = ch
	}
	ready.Wait()
	return t
}

func (t *selectorTable[Msg]) work(ch chan selectorOp[Msg]) {
	var entries []selectorEntry[Msg]
	for {
		select {
		case op := <-ch:
			switch op := op.(type) {
			case registerOp[Msg]:
				entries = append(entries, selectorEntry[Msg]{id: op.id, sel: op.sel})
			case deliverOp[Msg]:
				for _, e := range entries {
					t.match(e, op.event)
				}
			}
		case <-t.ctx.Done():
			return
		}
	}
}

// match translates one event through one selector. Recovery here is the
// runtime's policy: a panicking selector is logged and the worker keeps
// serving the rest.
func (t *selectorTable[Msg]) match(e selectorEntry[Msg], event any) {
	defer func() {
		if r := recover(); r != nil {
			t.logger.Error("panic in selector",
				zap.String("subscriptionId", e.id),
				zap.Any("recovered", r),
			)
		}
	}()
	if msg, ok := e.sel.Select(event); ok {
		t.dispatch(msg)
	}
}

func (t *selectorTable[Msg]) register(sel effect.Selector[Msg]) {
	id := uuid.New().String()
	idx := partitionIndex(id, len(t.partitions))
	t.send(t.partitions[idx], registerOp[Msg]{id: id, sel: sel})
}

func (t *selectorTable[Msg]) offer(event any) {
	for _, ch := range t.partitions {
		t.send(ch, deliverOp[Msg]{event: event})
	}
}

func (t *selectorTable[Msg]) send(ch chan selectorOp[Msg], op selectorOp[Msg]) {
	defer func() {
		if r := recover(); r != nil {
			t.logger.Warn("dropped selector op after shutdown", zap.Any("recovered", r))
		}
	}()
	select {
	case <-t.ctx.Done():
	case ch <- op:
	}
}

func partitionIndex(key string, numPartitions int) int {
	switch numPartitions {
	case 0:
		panic("number of partitions cannot be 0")
	case 1:
		return 0
	default:
		return int(xxhash.Sum64String(key) % uint64(numPartitions))
	}
}
