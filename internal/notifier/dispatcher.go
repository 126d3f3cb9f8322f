package notifier

import (
	"auction-marketplace/internal/models"
	"auction-marketplace/internal/repository"
	"auction-marketplace/utils"
	"context"
	"time"
)

// Dispatcher redelivers winner notifications whose first synchronous attempt
// failed. Settlement stays the financial source of truth: the dispatcher only
// works off outbox records the settlement transaction already committed.
type Dispatcher struct {
	repo        repository.MarketDB
	notifier    Notifier
	queue       chan models.Notification
	maxAttempts int
	backoff     time.Duration
	timeout     time.Duration
	done        chan struct{}
}

// NewDispatcher creates a dispatcher. maxAttempts counts total delivery
// attempts including the synchronous one made by the settlement engine.
func NewDispatcher(repo repository.MarketDB, n Notifier, maxAttempts int, backoff, timeout time.Duration) *Dispatcher {
	return &Dispatcher{
		repo:        repo,
		notifier:    n,
		queue:       make(chan models.Notification, 64),
		maxAttempts: maxAttempts,
		backoff:     backoff,
		timeout:     timeout,
		done:        make(chan struct{}),
	}
}

// Start launches the delivery worker and requeues any outbox records left
// pending by a previous run.
func (d *Dispatcher) Start() {
	go d.run()
	for _, n := range d.repo.ListPendingNotifications() {
		d.Enqueue(n)
	}
}

// Enqueue hands a pending notification to the worker. Drops to the outbox's
// pending state if the queue is full; the record is still durable and is
// requeued on the next restart.
func (d *Dispatcher) Enqueue(n models.Notification) {
	select {
	case d.queue <- n:
	default:
		utils.Warn("dispatcher: queue full, notification left pending", map[string]any{
			"notification_id": n.ID,
			"product_id":      n.ProductID,
		})
	}
}

// Stop shuts down the worker after it finishes the current delivery.
func (d *Dispatcher) Stop() {
	close(d.done)
}

func (d *Dispatcher) run() {
	for {
		select {
		case <-d.done:
			return
		case n := <-d.queue:
			d.deliver(n)
		}
	}
}

// deliver retries a notification up to maxAttempts with a fixed backoff
// between tries, then marks the record failed.
func (d *Dispatcher) deliver(n models.Notification) {
	attempts := n.Attempts
	for attempts < d.maxAttempts {
		attempts++

		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		err := d.notifier.Notify(ctx, n.Recipient, n.Subject, n.Body)
		cancel()

		if err == nil {
			if markErr := d.repo.MarkNotification(n.ID, models.NotificationDelivered, attempts); markErr != nil {
				utils.Error("dispatcher: failed to mark notification delivered", map[string]any{
					"notification_id": n.ID,
					"error":           markErr.Error(),
				})
			}
			utils.Info("dispatcher: notification delivered", map[string]any{
				"notification_id": n.ID,
				"product_id":      n.ProductID,
				"attempts":        attempts,
			})
			return
		}

		utils.Warn("dispatcher: delivery attempt failed", map[string]any{
			"notification_id": n.ID,
			"attempt":         attempts,
			"error":           err.Error(),
		})

		select {
		case <-d.done:
			return
		case <-time.After(d.backoff):
		}
	}

	if err := d.repo.MarkNotification(n.ID, models.NotificationFailed, attempts); err != nil {
		utils.Error("dispatcher: failed to mark notification failed", map[string]any{
			"notification_id": n.ID,
			"error":           err.Error(),
		})
	}
}
