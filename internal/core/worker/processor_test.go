package worker

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ramisesreis/modelando-sistema-bancario/internal/core/notifications"
)

func newTestQueue(url string) *WebhookQueue {
	return &WebhookQueue{
		url:     url,
		jobs:    make(chan notifications.TransactionEvent, 4),
		done:    make(chan struct{}),
		backoff: func(int) time.Duration { return time.Millisecond },
	}
}

func testEvent() notifications.TransactionEvent {
	return notifications.TransactionEvent{Event: "transaction.recorded", TransactionID: uuid.New()}
}

func TestDeliverRetriesUntilSuccess(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&hits, 1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	q := newTestQueue(srv.URL)
	q.deliver(testEvent())

	assert.Equal(t, int32(3), atomic.LoadInt32(&hits))
}

func TestDeliverGivesUpAfterMaxAttempts(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	q := newTestQueue(srv.URL)
	q.deliver(testEvent())

	assert.Equal(t, int32(maxAttempts), atomic.LoadInt32(&hits))
}

func TestWorkerConsumesQueue(t *testing.T) {
	delivered := make(chan struct{}, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		delivered <- struct{}{}
	}))
	defer srv.Close()

	q := StartWebhookWorker(srv.URL)
	require.NotNil(t, q)
	defer q.Close()

	q.Enqueue(testEvent())

	select {
	case <-delivered:
	case <-time.After(5 * time.Second):
		t.Fatal("event was never delivered")
	}
}

func TestNilQueueIsInert(t *testing.T) {
	q := StartWebhookWorker("")
	require.Nil(t, q)

	// Both must be safe on the nil queue.
	q.Enqueue(notifications.TransactionEvent{})
	q.Close()
}
