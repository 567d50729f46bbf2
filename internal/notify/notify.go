// Package notify carries fire-and-forget user notices emitted after store
// mutations ("added to cart", "already in wishlist"). The store never
// consumes a return value; a failing or absent notifier must not affect it.
package notify

import (
	"context"
	"log/slog"
	"time"
)

// Level classifies a notice for the consuming UI surface.
type Level string

const (
	LevelSuccess Level = "success"
	LevelInfo    Level = "info"
	LevelError   Level = "error"
)

// Notice is a single user-facing message.
type Notice struct {
	Level   Level     `json:"level"`
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

// Notifier receives notices. Implementations must not block.
type Notifier interface {
	Push(ctx context.Context, n Notice)
}

// Nop discards all notices.
type Nop struct{}

func (Nop) Push(ctx context.Context, n Notice) {}

// LogNotifier writes notices to the structured log.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier creates a notifier backed by the given logger.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Push(ctx context.Context, notice Notice) {
	n.logger.InfoContext(ctx, "user notice",
		slog.String("notice_level", string(notice.Level)),
		slog.String("message", notice.Message),
	)
}

// Multi fans a notice out to several notifiers in order.
type Multi []Notifier

func (m Multi) Push(ctx context.Context, n Notice) {
	for _, notifier := range m {
		notifier.Push(ctx, n)
	}
}
