package notifier

import (
	"context"
	"log/slog"
)

type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// Notification is the toast shown to the cashier.
type Notification struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Severity    Severity `json:"severity"`
}

type Notifier interface {
	Notify(ctx context.Context, n Notification)
}

// LogNotifier writes notifications to the log. It stands in for a real
// presentation layer.
type LogNotifier struct {
	log *slog.Logger
}

func NewLogNotifier(log *slog.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) Notify(ctx context.Context, notification Notification) {
	n.log.InfoContext(ctx, "notification",
		slog.String("title", notification.Title),
		slog.String("description", notification.Description),
		slog.String("severity", string(notification.Severity)),
	)
}
