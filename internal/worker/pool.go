package worker

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog/log"
)

// Job is the generic envelope for all async tasks.
type Job struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// ReceiptJobPayload is the job envelope for receipt rendering.
type ReceiptJobPayload struct {
	BillID uint `json:"bill_id"`
}

// Handler processes one dequeued job.
type Handler interface {
	Process(ctx context.Context, raw json.RawMessage)
}

// Dispatcher enqueues async jobs into an in-process buffered channel.
// The worker pool consumes it; when the buffer is full the job is dropped
// rather than blocking the billing transaction's caller.
type Dispatcher struct {
	jobs chan Job
}

func NewDispatcher(buffer int) *Dispatcher {
	if buffer < 1 {
		buffer = 64
	}
	return &Dispatcher{jobs: make(chan Job, buffer)}
}

// EnqueueReceipt queues a receipt-rendering job. Best-effort: reports whether
// the job was accepted.
func (d *Dispatcher) EnqueueReceipt(billID uint) bool {
	payload, err := json.Marshal(ReceiptJobPayload{BillID: billID})
	if err != nil {
		return false
	}
	select {
	case d.jobs <- Job{Type: "receipt", Payload: payload}:
		return true
	default:
		log.Warn().Uint("bill_id", billID).Msg("worker: queue full, receipt job dropped")
		return false
	}
}

// Start launches numWorkers goroutines consuming the job channel. Handlers
// are keyed by job type; unknown types are logged and discarded.
func (d *Dispatcher) Start(ctx context.Context, numWorkers int, handlers map[string]Handler) {
	if numWorkers < 1 {
		numWorkers = 1
	}
	for i := 0; i < numWorkers; i++ {
		go d.runWorker(ctx, i, handlers)
	}
	log.Info().Msgf("worker pool started with %d workers", numWorkers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, handlers map[string]Handler) {
	for {
		select {
		case <-ctx.Done():
			log.Info().Msgf("worker %d shutting down", id)
			return
		case job := <-d.jobs:
			h, ok := handlers[job.Type]
			if !ok {
				log.Error().Str("type", job.Type).Msg("worker: no handler for job type")
				continue
			}
			h.Process(ctx, job.Payload)
		}
	}
}
