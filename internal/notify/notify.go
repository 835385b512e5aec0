// Package notify carries short user-facing status messages (toasts) from
// anywhere in the load flow to whatever surface displays them.
package notify

import (
	"log/slog"
)

// Severity classifies a notification.
type Severity string

const (
	SeverityError   Severity = "error"
	SeveritySuccess Severity = "success"
	SeverityInfo    Severity = "info"
)

// Notification is a transient, non-blocking status message.
type Notification struct {
	Severity Severity `json:"severity"`
	Title    string   `json:"title"`
	Body     string   `json:"body,omitempty"`
}

// Notifier reports notifications to the user. Implementations must not block
// the caller for long and must be safe for concurrent use.
type Notifier interface {
	Notify(n Notification)
}

// Error is shorthand for an error-severity notification.
func Error(title, body string) Notification {
	return Notification{Severity: SeverityError, Title: title, Body: body}
}

// Func adapts a function to Notifier.
type Func func(Notification)

func (f Func) Notify(n Notification) { f(n) }

// Multi fans a notification out to every non-nil notifier.
type Multi []Notifier

func (m Multi) Notify(n Notification) {
	for _, x := range m {
		if x != nil {
			x.Notify(n)
		}
	}
}

// Log writes notifications to a structured logger.
type Log struct {
	Logger *slog.Logger
}

func (l Log) Notify(n Notification) {
	log := l.Logger
	if log == nil {
		log = slog.Default()
	}
	attrs := []any{"severity", string(n.Severity), "title", n.Title}
	if n.Body != "" {
		attrs = append(attrs, "body", n.Body)
	}
	if n.Severity == SeverityError {
		log.Error("notify: toast", attrs...)
		return
	}
	log.Info("notify: toast", attrs...)
}

// Chan delivers notifications into a buffered channel read by a UI loop.
// When the buffer is full the notification is dropped.
type Chan struct {
	C      chan Notification
	Logger *slog.Logger
}

// NewChan creates a Chan with the given buffer size.
func NewChan(size int) *Chan {
	if size <= 0 {
		size = 16
	}
	return &Chan{C: make(chan Notification, size)}
}

func (c *Chan) Notify(n Notification) {
	select {
	case c.C <- n:
	default:
		if c.Logger != nil {
			c.Logger.Warn("notify: toast dropped, buffer full", "title", n.Title)
		}
	}
}

// Discard drops every notification.
var Discard Notifier = Func(func(Notification) {})
