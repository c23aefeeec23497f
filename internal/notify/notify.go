// Package notify is the transient-message sink consumed by the checkout
// flow. Delivery is fire-and-forget; nobody waits on or retries a toast.
package notify

import "log/slog"

type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// LogNotifier writes notifications to the structured log.
type LogNotifier struct {
	log *slog.Logger
}

func NewLogNotifier(log *slog.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) Success(msg string) {
	n.log.Info("notification", slog.String("kind", "success"), slog.String("msg", msg))
}

func (n *LogNotifier) Error(msg string) {
	n.log.Warn("notification", slog.String("kind", "error"), slog.String("msg", msg))
}

// Discard drops every notification.
type Discard struct{}

func (Discard) Success(string) {}
func (Discard) Error(string)   {}
