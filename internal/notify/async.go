package notify

import "pokehub/backend/pkg/logger"

// AsyncDispatcher decouples notification delivery from the request
// that triggered it. Enqueueing never blocks: if the buffer is full
// the notification is dropped, which keeps the at-most-once, no-retry
// contract.
type AsyncDispatcher struct {
	next  Dispatcher
	queue chan Notification
}

// NewAsyncDispatcher wraps next with a buffered queue drained by a
// single background goroutine.
func NewAsyncDispatcher(next Dispatcher, buffer int) *AsyncDispatcher {
	d := &AsyncDispatcher{
		next:  next,
		queue: make(chan Notification, buffer),
	}
	go d.drain()
	return d
}

func (d *AsyncDispatcher) Dispatch(n Notification) {
	select {
	case d.queue <- n:
	default:
		logger.Warn("notification queue full, dropping", "title", n.Title)
	}
}

func (d *AsyncDispatcher) drain() {
	for n := range d.queue {
		d.next.Dispatch(n)
	}
}

// Close stops the drain goroutine once the queue is empty. Pending
// notifications are still delivered.
func (d *AsyncDispatcher) Close() {
	close(d.queue)
}
