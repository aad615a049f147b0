package progress

import (
	"sync"

	"go.uber.org/zap"
)

// Reporter receives one-line status messages from the pipeline.
// Implementations must tolerate being called from a single producer goroutine.
type Reporter interface {
	Put(msg string)
}

// Put publishes a message to r if r is non-nil. Pipeline code uses this so a
// nil reporter simply discards status lines.
func Put(r Reporter, msg string) {
	if r != nil {
		r.Put(msg)
	}
}

// Queue is a buffered channel-backed Reporter. Messages are drained by a
// consumer goroutine; Close signals that no further messages will arrive.
type Queue struct {
	ch     chan string
	closed sync.Once
}

// NewQueue creates a queue with the given buffer size.
func NewQueue(size int) *Queue {
	if size <= 0 {
		size = 256
	}
	return &Queue{ch: make(chan string, size)}
}

// Put publishes a message. It blocks while the buffer is full so that no
// status line is dropped.
func (q *Queue) Put(msg string) {
	q.ch <- msg
}

// Close marks the queue as finished. Safe to call more than once.
func (q *Queue) Close() {
	q.closed.Do(func() { close(q.ch) })
}

// Messages exposes the receive side of the queue.
func (q *Queue) Messages() <-chan string {
	return q.ch
}

// DrainTo consumes all messages and logs each one at info level until the
// queue is closed. Intended to run in its own goroutine:
//
//	go q.DrainTo(logger)
func (q *Queue) DrainTo(l *zap.Logger) {
	for msg := range q.ch {
		l.Info(msg)
	}
}

// Collector is a Reporter that records messages in memory, used by tests and
// by the HTTP facade to return the run log in the response.
type Collector struct {
	mu    sync.Mutex
	lines []string
}

// Put records a message.
func (c *Collector) Put(msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = append(c.lines, msg)
}

// Lines returns a copy of all recorded messages in arrival order.
func (c *Collector) Lines() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string{}, c.lines...)
}
