// Package notify is the client's transient-message surface. The transport
// layer emits translated backend errors through a Notifier; what "showing" a
// notification means is up to the front end consuming the SDK.
package notify

import (
	"log/slog"
	"sync"
	"time"
)

// Severity classifies a notification for visual treatment.
type Severity string

const (
	SeverityInfo  Severity = "info"
	SeverityError Severity = "error"
)

// Notification is a timed, dismissible transient message.
type Notification struct {
	Text     string
	Duration time.Duration
	Severity Severity
}

// Notifier shows transient messages to the user.
type Notifier interface {
	Show(n Notification)
}

// LogNotifier writes notifications to a structured logger. The terminal
// client uses it; a GUI front end would supply its own Notifier.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier creates a notifier backed by logger.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// Show logs the notification at a level matching its severity.
func (l *LogNotifier) Show(n Notification) {
	attrs := []any{"severity", string(n.Severity), "duration", n.Duration}
	if n.Severity == SeverityError {
		l.logger.Error(n.Text, attrs...)
		return
	}
	l.logger.Info(n.Text, attrs...)
}

// Recorder captures notifications for assertions in tests.
type Recorder struct {
	mu    sync.Mutex
	shown []Notification
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Show records the notification.
func (r *Recorder) Show(n Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.shown = append(r.shown, n)
}

// Shown returns a copy of everything recorded so far.
func (r *Recorder) Shown() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Notification, len(r.shown))
	copy(out, r.shown)
	return out
}

var (
	_ Notifier = (*LogNotifier)(nil)
	_ Notifier = (*Recorder)(nil)
)
