// Package queue runs contact notifications off the request path.
package queue

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/monishsatpuri/blogcms/internal/api/metrics"
	"github.com/monishsatpuri/blogcms/internal/core/domain"
	"github.com/monishsatpuri/blogcms/internal/core/ports"
)

const (
	defaultWorkers = 2
	channelBuffer  = 64
	sendTimeout    = 30 * time.Second
)

// Dispatcher feeds stored contact messages to a fixed set of workers that
// deliver them through a ContactSender.
type Dispatcher struct {
	jobs    chan domain.ContactMessage
	workers int
	sender  ports.ContactSender
	log     zerolog.Logger

	cancel  context.CancelFunc
	wg      sync.WaitGroup
	stopped atomic.Bool
}

// NewDispatcher creates a Dispatcher with numWorkers workers and a queue of
// buffer messages. Non-positive values fall back to the defaults.
func NewDispatcher(numWorkers, buffer int, sender ports.ContactSender, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	if buffer <= 0 {
		buffer = channelBuffer
	}
	return &Dispatcher{
		jobs:    make(chan domain.ContactMessage, buffer),
		workers: numWorkers,
		sender:  sender,
		log:     log,
	}
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled
// or Stop is called.
func (d *Dispatcher) Start(ctx context.Context) {
	ctx, d.cancel = context.WithCancel(ctx)
	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.runWorker(ctx, i)
	}
}

// Stop cancels the workers and waits for in-flight sends to return.
// Messages still queued are dropped.
func (d *Dispatcher) Stop() {
	d.stopped.Store(true)
	if d.cancel != nil {
		d.cancel()
	}
	d.wg.Wait()
}

// Notify queues msg without blocking. It returns false when the queue is
// full or the dispatcher has stopped.
func (d *Dispatcher) Notify(msg domain.ContactMessage) bool {
	if d.stopped.Load() {
		metrics.NotificationsTotal.WithLabelValues("dropped").Inc()
		return false
	}
	select {
	case d.jobs <- msg:
		metrics.NotificationQueueDepth.Inc()
		return true
	default:
		metrics.NotificationsTotal.WithLabelValues("dropped").Inc()
		return false
	}
}

func (d *Dispatcher) runWorker(ctx context.Context, id int) {
	defer d.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case msg := <-d.jobs:
			metrics.NotificationQueueDepth.Dec()
			d.send(ctx, id, msg)
		}
	}
}

func (d *Dispatcher) send(ctx context.Context, id int, msg domain.ContactMessage) {
	ctx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	if err := d.sender.Send(ctx, msg); err != nil {
		metrics.NotificationsTotal.WithLabelValues("failed").Inc()
		d.log.Error().Err(err).
			Int64("contact_id", msg.ID).
			Int("worker_id", id).
			Msg("contact notification failed")
		return
	}
	metrics.NotificationsTotal.WithLabelValues("sent").Inc()
	d.log.Debug().Int64("contact_id", msg.ID).Int("worker_id", id).Msg("contact notification sent")
}
