package runtime

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/josevictorferreira/lazyfx/shared/helper"
)

// Listener receives events emitted under a name it registered for.
type Listener func(name string, data any)

// listenerList entries are replaced wholesale on registration so notify
// never observes a partially built slice.
type listenerList struct {
	list []Listener
}

type listenerTable struct {
	m      *sync.Map
	logger *zap.Logger
}

func newListenerTable(logger *zap.Logger) *listenerTable {
	return &listenerTable{m: &sync.Map{}, logger: logger}
}

const maxRegisterAttempts = 5

func (t *listenerTable) add(name string, fn Listener) {
	tryRegister := func() error {
		raw, ok := t.m.Load(name)
		if !ok {
			if _, loaded := t.m.LoadOrStore(name, &listenerList{list: []Listener{fn}}); !loaded {
				return nil
			}
			return fmt.Errorf("listener list for %q appeared concurrently", name)
		}
		old, ok := raw.(*listenerList)
		if !ok {
			return fmt.Errorf("unexpected registry entry for %q: %T", name, raw)
		}
		grown := append(old.list[:len(old.list):len(old.list)], fn)
		if t.m.CompareAndSwap(name, old, &listenerList{list: grown}) {
			return nil
		}
		return fmt.Errorf("listener list for %q changed concurrently", name)
	}

	if err := helper.Retry(maxRegisterAttempts, tryRegister); err != nil {
		t.logger.Error("fail to register event listener",
			zap.String("event", name),
			zap.Error(err),
		)
	}
}

func (t *listenerTable) notify(name string, data any) {
	listeners, ok := helper.LoadTyped[*listenerList](func() (any, bool) {
		return t.m.Load(name)
	})
	if !ok {
		return
	}
	for _, fn := range listeners.list {
		fn(name, data)
	}
}
