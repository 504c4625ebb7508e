package worker

import (
	"context"
	"encoding/json"
	"log/slog"

	"cleansched/internal/infra/mq"
	"cleansched/internal/infra/notify"
)

// MailWorker drains the notification queue and hands each event to the
// mailer. Malformed messages are acked and dropped; a mailer failure nacks
// with requeue so transient API outages retry.
type MailWorker struct {
	consumer *mq.Consumer
	mailer   notify.Mailer
}

func NewMailWorker(consumer *mq.Consumer, mailer notify.Mailer) *MailWorker {
	return &MailWorker{consumer: consumer, mailer: mailer}
}

func (w *MailWorker) Run(ctx context.Context) error {
	deliveries, err := w.consumer.Deliveries(ctx)
	if err != nil {
		return err
	}

	slog.Info("mail worker started")
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-deliveries:
			if !ok {
				return nil
			}

			var event notify.MailEvent
			if err := json.Unmarshal(d.Body, &event); err != nil {
				slog.Warn("dropping malformed mail event", "error", err.Error())
				_ = d.Ack(false)
				continue
			}

			if err := w.mailer.Send(ctx, event); err != nil {
				slog.Error("failed to send mail, requeueing",
					"kind", event.Kind, "booking_id", event.BookingID, "error", err.Error())
				_ = d.Nack(false, true)
				continue
			}
			_ = d.Ack(false)
		}
	}
}
