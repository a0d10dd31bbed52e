// Package webhook delivers fire-and-forget status notifications to the URL a
// parcel was created with.
//
// Delivery is best effort by contract: one POST per transition, a bounded
// timeout, no retry and no dead-lettering. Failures are logged and swallowed;
// they can never affect the API response of the transition that triggered
// them.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"agencysim/internal/core/domain/model/parcel"

	"github.com/google/uuid"
)

// DefaultTimeout bounds a single delivery attempt.
const DefaultTimeout = 5 * time.Second

// Notifier implements ports.ParcelNotifier with a bounded queue drained by a
// fixed pool of worker goroutines. Notify only snapshots the parcel and
// enqueues; the HTTP call happens on a worker, so the caller's response path
// is never blocked by a slow webhook endpoint.
type Notifier struct {
	client *http.Client
	logger *slog.Logger

	queue     chan delivery
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// delivery is one queued notification. The id correlates the enqueue, success
// and failure log lines of a single attempt.
type delivery struct {
	id      uuid.UUID
	url     string
	payload eventPayload
}

// NewNotifier creates a notifier with the given delivery timeout, worker
// count and queue capacity, and starts its workers.
func NewNotifier(logger *slog.Logger, timeout time.Duration, workers, queueSize int) *Notifier {
	notifier := &Notifier{
		client: &http.Client{Timeout: timeout},
		logger: logger.With("component", "webhook_notifier"),
		queue:  make(chan delivery, queueSize),
	}

	for i := 0; i < workers; i++ {
		notifier.wg.Add(1)
		go notifier.worker()
	}

	return notifier
}

// Notify snapshots the parcel's current state and enqueues a notification to
// its webhook URL. Parcels without a webhook URL are ignored. When the queue
// is full the notification is dropped with a log line: the contract is best
// effort, not guaranteed delivery.
func (n *Notifier) Notify(ctx context.Context, aggregate *parcel.Parcel) {
	if !aggregate.HasWebhook() {
		return
	}

	d := delivery{
		id:      uuid.New(),
		url:     aggregate.WebhookURL(),
		payload: newEventPayload(aggregate),
	}

	select {
	case n.queue <- d:
	default:
		n.logger.WarnContext(ctx, "Webhook notification dropped, queue is full",
			"delivery_id", d.id,
			"tracking_number", d.payload.Data.TrackingNumber,
			"url", d.url,
		)
	}
}

// Close stops accepting notifications and waits for queued deliveries to
// finish. Calling Notify after Close panics; Close is for process shutdown.
func (n *Notifier) Close() {
	n.closeOnce.Do(func() {
		close(n.queue)
	})
	n.wg.Wait()
}

func (n *Notifier) worker() {
	defer n.wg.Done()
	for d := range n.queue {
		n.deliver(d)
	}
}

// deliver performs one POST. Every outcome is terminal, failed deliveries
// are never retried.
func (n *Notifier) deliver(d delivery) {
	ctx := context.Background()

	body, err := json.Marshal(d.payload)
	if err != nil {
		n.logger.ErrorContext(ctx, "Webhook payload marshaling failed",
			"delivery_id", d.id, "error", err)
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.url, bytes.NewReader(body))
	if err != nil {
		n.logger.ErrorContext(ctx, "Webhook request construction failed",
			"delivery_id", d.id, "url", d.url, "error", err)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		n.logger.ErrorContext(ctx, "Webhook delivery failed",
			"delivery_id", d.id,
			"tracking_number", d.payload.Data.TrackingNumber,
			"url", d.url,
			"error", err,
		)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		n.logger.ErrorContext(ctx, "Webhook endpoint returned non-success status",
			"delivery_id", d.id,
			"tracking_number", d.payload.Data.TrackingNumber,
			"url", d.url,
			"status_code", resp.StatusCode,
		)
		return
	}

	n.logger.InfoContext(ctx, "Webhook notification delivered",
		"delivery_id", d.id,
		"tracking_number", d.payload.Data.TrackingNumber,
		"status", d.payload.Data.Status,
		"url", d.url,
	)
}
