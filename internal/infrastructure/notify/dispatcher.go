package notify

import (
	"context"
	"hash/fnv"

	"github.com/rs/zerolog"

	"github.com/V-HUB-cpu/rotaract-dashboard/internal/api/metrics"
	"github.com/V-HUB-cpu/rotaract-dashboard/internal/core/domain"
)

const (
	defaultWorkers = 4
	channelBuffer  = 64
)

// Sink receives notifications after dispatch. Implementations must not block
// for long; delivery shares a small worker pool.
type Sink interface {
	Deliver(notification domain.Notification)
}

// Dispatcher fans notifications out to a fixed set of workers, sharded by
// actor so each actor's notifications keep their emission order. Callers fire
// and forget; a full worker channel drops the notification rather than block
// a management request.
type Dispatcher struct {
	workers []chan domain.Notification
	sink    Sink
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, sink Sink, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan domain.Notification, numWorkers),
		sink:    sink,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.Notification, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Notify enqueues a notification for the worker responsible for its actor.
func (d *Dispatcher) Notify(n domain.Notification) {
	select {
	case d.workers[d.shardIndex(n.Actor)] <- n:
		metrics.NotificationsDispatchedTotal.WithLabelValues(n.Entity).Inc()
	default:
		d.log.Warn().
			Str("entity", n.Entity).
			Str("action", n.Action).
			Msg("notification dropped, worker queue full")
	}
}

// shardIndex maps an actor deterministically to a worker index.
func (d *Dispatcher) shardIndex(actor string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(actor))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.Notification) {
	for {
		select {
		case <-ctx.Done():
			return
		case n, ok := <-ch:
			if !ok {
				return
			}
			d.sink.Deliver(n)
		}
	}
}

// LogSink is the default delivery target: it writes the notification to the
// structured log. The dashboards poll nothing — outcomes only need to be
// observable, not routed anywhere.
type LogSink struct {
	log zerolog.Logger
}

func NewLogSink(log zerolog.Logger) *LogSink {
	return &LogSink{log: log}
}

func (s *LogSink) Deliver(n domain.Notification) {
	s.log.Info().
		Str("entity", n.Entity).
		Str("action", n.Action).
		Str("actor", n.Actor).
		Msg(n.Message)
}
