// Package toast implements the transient notification queue. Every
// controller reports success and error outcomes through it, so it must
// never fail regardless of input shape.
package toast

import (
	"sync"
	"sync/atomic"
	"time"
)

// Severity classifies a notification
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// DefaultDuration is used when the caller passes a zero or negative one
const DefaultDuration = 3 * time.Second

// Notification is a short-lived status message
type Notification struct {
	ID        int64
	Severity  Severity
	Message   string
	CreatedAt time.Time
}

// Center is the process-wide notification queue. Notifications expire on
// their own timers; there is no cap on how many are visible at once.
type Center struct {
	mu         sync.Mutex
	visible    []Notification
	timers     map[int64]*time.Timer
	nextID     atomic.Int64
	defaultDur time.Duration
}

// NewCenter creates an empty notification center with the standard
// default duration
func NewCenter() *Center {
	return NewCenterWithDuration(DefaultDuration)
}

// NewCenterWithDuration creates a notification center whose Success and
// Error notifications live for d. Non-positive values fall back to
// DefaultDuration.
func NewCenterWithDuration(d time.Duration) *Center {
	if d <= 0 {
		d = DefaultDuration
	}
	return &Center{
		timers:     make(map[int64]*time.Timer),
		defaultDur: d,
	}
}

// Notify enqueues a notification and schedules its removal after
// duration. Two notifications raised in the same tick get distinct ids.
func (c *Center) Notify(severity Severity, message string, duration time.Duration) {
	if severity != SeveritySuccess && severity != SeverityError {
		severity = SeverityError
	}
	if message == "" {
		message = "Something went wrong"
	}
	if duration <= 0 {
		duration = c.defaultDur
	}

	id := c.nextID.Add(1)
	n := Notification{
		ID:        id,
		Severity:  severity,
		Message:   message,
		CreatedAt: time.Now(),
	}

	c.mu.Lock()
	c.visible = append(c.visible, n)
	c.timers[id] = time.AfterFunc(duration, func() {
		c.expire(id)
	})
	c.mu.Unlock()
}

// Success raises a success notification with the center's default
// duration
func (c *Center) Success(message string) {
	c.Notify(SeveritySuccess, message, c.defaultDur)
}

// Error raises an error notification with the center's default duration
func (c *Center) Error(message string) {
	c.Notify(SeverityError, message, c.defaultDur)
}

// expire removes a notification exactly once. A second fire for the same
// id finds no timer entry and does nothing.
func (c *Center) expire(id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.timers[id]; !ok {
		return
	}
	delete(c.timers, id)

	filtered := c.visible[:0:0]
	for _, n := range c.visible {
		if n.ID != id {
			filtered = append(filtered, n)
		}
	}
	c.visible = filtered
}

// Visible returns a snapshot of the notifications currently on screen
func (c *Center) Visible() []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Notification(nil), c.visible...)
}

// ClearAll removes every pending notification and stops their timers.
// Used on unmount so no timer leaks past the owning view.
func (c *Center) ClearAll() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for id, t := range c.timers {
		t.Stop()
		delete(c.timers, id)
	}
	c.visible = nil
}
