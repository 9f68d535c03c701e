package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/harvestconnect/delivery-service/internal/api/metrics"
	"github.com/harvestconnect/delivery-service/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher routes quote-audit records to a fixed set of workers using
// consistent hashing on the request hash, so repeated estimates of the same
// cart land on the same worker in order.
type Dispatcher struct {
	workers []chan ports.QuoteRecordInput
	service ports.QuoteService
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.QuoteService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.QuoteRecordInput, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.QuoteRecordInput, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends a quote to the worker responsible for its request hash.
// The call is non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(input ports.QuoteRecordInput) {
	idx := d.shardIndex(input.RequestHash)
	d.workers[idx] <- input
	metrics.QuoteQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
}

// shardIndex maps a request hash deterministically to a worker index.
func (d *Dispatcher) shardIndex(requestHash string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(requestHash))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.QuoteRecordInput) {
	for {
		select {
		case <-ctx.Done():
			return
		case input, ok := <-ch:
			if !ok {
				return
			}
			metrics.QuoteQueueDepth.WithLabelValues(strconv.Itoa(id)).Set(float64(len(ch)))
			if err := d.service.Record(ctx, input); err != nil {
				d.log.Error().Err(err).
					Str("request_hash", input.RequestHash).
					Int("worker_id", id).
					Msg("quote recording failed")
			}
		}
	}
}
