package worker

import (
	"log/slog"
	"time"

	"github.com/ramisesreis/modelando-sistema-bancario/internal/core/notifications"
)

const maxAttempts = 5

// WebhookQueue feeds recorded-transaction events to a background worker
// that delivers them to the configured listener. Jobs live in memory
// only; undelivered events are lost on process exit, same as the rest
// of the ledger state.
type WebhookQueue struct {
	url     string
	jobs    chan notifications.TransactionEvent
	done    chan struct{}
	backoff func(attempts int) time.Duration
}

// StartWebhookWorker launches the delivery goroutine. Returns nil when
// no listener URL is configured, and Enqueue on a nil queue is a no-op.
func StartWebhookWorker(url string) *WebhookQueue {
	if url == "" {
		return nil
	}
	q := &WebhookQueue{
		url:  url,
		jobs: make(chan notifications.TransactionEvent, 64),
		done: make(chan struct{}),
		// Same schedule the retrying delivery always used: 10s, 20s, 30s...
		backoff: func(attempts int) time.Duration {
			return time.Duration(attempts*10+10) * time.Second
		},
	}
	go q.run()
	return q
}

// Enqueue hands an event to the worker without blocking the request
// path. Events are dropped (with a log line) if the queue is full.
func (q *WebhookQueue) Enqueue(ev notifications.TransactionEvent) {
	if q == nil {
		return
	}
	select {
	case q.jobs <- ev:
	default:
		slog.Error("Worker: queue full, dropping event", "transaction_id", ev.TransactionID)
	}
}

// Close stops the worker after the current delivery finishes.
func (q *WebhookQueue) Close() {
	if q == nil {
		return
	}
	close(q.done)
}

func (q *WebhookQueue) run() {
	slog.Info("Webhook worker started", "url", q.url)
	for {
		select {
		case <-q.done:
			return
		case ev := <-q.jobs:
			q.deliver(ev)
		}
	}
}

func (q *WebhookQueue) deliver(ev notifications.TransactionEvent) {
	for attempts := 0; attempts < maxAttempts; attempts++ {
		err := notifications.SendWebhook(q.url, ev)
		if err == nil {
			slog.Info("Worker: webhook sent", "transaction_id", ev.TransactionID)
			return
		}
		slog.Error("Worker: webhook failed", "error", err, "attempts", attempts+1)

		if attempts+1 >= maxAttempts {
			break
		}
		select {
		case <-q.done:
			return
		case <-time.After(q.backoff(attempts)):
		}
	}
	slog.Error("Worker: event dropped, max attempts reached", "transaction_id", ev.TransactionID)
}
