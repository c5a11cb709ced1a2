package runtime

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/rickb777/date/v2/timespan"
	"go.uber.org/zap"
)

// EventRecord is one emitted event as observed by the runtime.
type EventRecord struct {
	Name string
	Data json.RawMessage
	Span timespan.TimeSpan
}

// An emit is stamped with a small span around the wall-clock reading
// rather than a false-precision instant.
const epsilon = time.Millisecond

func observedSpan() timespan.TimeSpan {
	now := time.Now()
	return timespan.BetweenTimes(now.Add(-1*epsilon), now.Add(epsilon))
}

// journal keeps the ordered trail of emitted events.
type journal struct {
	mu      sync.Mutex
	records []EventRecord
}

func (j *journal) record(logger *zap.Logger, name string, data any) {
	raw, err := json.Marshal(data)
	if err != nil {
		logger.Error("fail to encode emitted event payload",
			zap.String("event", name),
			zap.Error(err),
		)
		raw = nil
	}
	rec := EventRecord{Name: name, Data: raw, Span: observedSpan()}

	j.mu.Lock()
	j.records = append(j.records, rec)
	j.mu.Unlock()
}

func (j *journal) snapshot() []EventRecord {
	j.mu.Lock()
	defer j.mu.Unlock()
	out := make([]EventRecord, len(j.records))
	copy(out, j.records)
	return out
}
