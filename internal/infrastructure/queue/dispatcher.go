package queue

import (
	"context"
	"hash/fnv"

	"github.com/rs/zerolog"

	"github.com/whiskerworks/cat-registry/internal/core/domain"
	"github.com/whiskerworks/cat-registry/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher routes audit entries to a fixed set of workers using consistent
// hashing on the actor id, keeping each actor's trail in order. Recording is
// non-blocking and never fails the mutation that produced the entry.
type Dispatcher struct {
	workers []chan domain.AuditEntry
	service ports.AuditService
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.AuditService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan domain.AuditEntry, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.AuditEntry, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Record enqueues an entry for the worker responsible for its actor. When the
// worker channel is full the entry is dropped with a warning; audit writes
// must never stall a request.
func (d *Dispatcher) Record(entry domain.AuditEntry) {
	select {
	case d.workers[d.shardIndex(entry.ActorID)] <- entry:
	default:
		d.log.Warn().
			Str("actor", entry.ActorID).
			Str("action", entry.Action).
			Msg("audit queue full, entry dropped")
	}
}

// shardIndex maps an actor id deterministically to a worker index.
func (d *Dispatcher) shardIndex(actorID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(actorID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.AuditEntry) {
	for {
		select {
		case <-ctx.Done():
			return
		case entry, ok := <-ch:
			if !ok {
				return
			}
			if err := d.service.Process(ctx, entry); err != nil {
				d.log.Error().Err(err).
					Str("actor", entry.ActorID).
					Str("action", entry.Action).
					Int("worker_id", id).
					Msg("audit processing failed")
			}
		}
	}
}
