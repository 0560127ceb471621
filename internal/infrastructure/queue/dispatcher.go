package queue

import (
	"context"
	"hash/fnv"

	"github.com/rs/zerolog"

	"github.com/nestera/savings-api/internal/core/domain"
	"github.com/nestera/savings-api/internal/core/ports"
)

const (
	defaultWorkers = 8
	channelBuffer  = 256
)

// Dispatcher routes gateway events to a fixed set of workers using
// consistent hashing on the plan id, guaranteeing per-plan event ordering.
type Dispatcher struct {
	workers []chan domain.GatewayEvent
	service ports.EventService
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.EventService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan domain.GatewayEvent, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.GatewayEvent, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends an event to the worker responsible for its plan id.
// The call is non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(event domain.GatewayEvent) {
	d.workers[d.shardIndex(event.PlanID)] <- event
}

// shardIndex maps a plan id deterministically to a worker index.
func (d *Dispatcher) shardIndex(planID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(planID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.GatewayEvent) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			if err := d.service.Process(ctx, event); err != nil {
				d.log.Error().Err(err).
					Str("event_id", event.EventID).
					Str("plan_id", event.PlanID).
					Int("worker_id", id).
					Msg("event processing failed")
			}
		}
	}
}
