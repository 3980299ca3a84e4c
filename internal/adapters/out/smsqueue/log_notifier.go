package smsqueue

import (
	"context"
	"log/slog"

	"snackshop/internal/core/domain/model/sms"
)

// LogNotifier stands in for the dispatcher when no broker is configured. It
// accepts every valid message and writes it to the log.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger.With("component", "sms-log")}
}

func (n *LogNotifier) Send(ctx context.Context, msg sms.Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}
	n.logger.InfoContext(ctx, "sms not dispatched, no broker configured",
		"orderId", msg.OrderID,
		"to", msg.Phone,
		"length", len([]rune(msg.Text)),
	)
	return nil
}
