package audit

import (
	"go.uber.org/zap"

	"github.com/clipperbook/booking-api/internal/metrics"
)

type Event struct {
	Action   string
	Entity   string
	EntityID *uint
	Metadata any
}

// Dispatcher writes audit entries off the request path. The queue is lossy:
// a full buffer drops the event rather than blocking the API.
type Dispatcher struct {
	logger  *Logger
	log     *zap.Logger
	collect *metrics.Collector
	queue   chan Event
}

func NewDispatcher(logger *Logger, log *zap.Logger, collect *metrics.Collector) *Dispatcher {
	d := &Dispatcher{
		logger:  logger,
		log:     log,
		collect: collect,
		queue:   make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.logger.Log(
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Metadata,
		); err != nil {
			d.log.Error("audit write failed",
				zap.String("action", ev.Action),
				zap.Error(err),
			)
			continue
		}
		d.collect.AuditEntriesTotal.Inc()
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		d.collect.AuditBufferDropped.Inc()
		d.log.Warn("audit queue full, dropping event",
			zap.String("action", ev.Action),
		)
	}
}
