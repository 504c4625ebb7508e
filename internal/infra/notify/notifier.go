package notify

import (
	"context"
	"log/slog"
	"time"

	"cleansched/internal/infra/mq"
	"cleansched/internal/usecase/commands"

	"github.com/google/uuid"
)

// QueueNotifier publishes mail events to the notification exchange. It is
// strictly fire-and-forget: a broker failure is logged and swallowed so a
// delivery problem can never fail or roll back a booking transition.
type QueueNotifier struct {
	publisher *mq.Publisher
}

func NewQueueNotifier(publisher *mq.Publisher) commands.Notifier {
	return &QueueNotifier{publisher: publisher}
}

func (n *QueueNotifier) BookingServed(ctx context.Context, email string, bookingID uuid.UUID) {
	n.publish(ctx, KeyBookingServed, MailEvent{
		Kind:       KeyBookingServed,
		Email:      email,
		BookingID:  bookingID,
		OccurredAt: time.Now().UTC(),
	})
}

func (n *QueueNotifier) BookingRescheduled(ctx context.Context, email string, bookingID uuid.UUID, date time.Time) {
	n.publish(ctx, KeyBookingRescheduled, MailEvent{
		Kind:         KeyBookingRescheduled,
		Email:        email,
		BookingID:    bookingID,
		CleaningDate: &date,
		OccurredAt:   time.Now().UTC(),
	})
}

func (n *QueueNotifier) PaymentCompleted(ctx context.Context, email string, bookingID uuid.UUID, amount int64) {
	n.publish(ctx, KeyPaymentCompleted, MailEvent{
		Kind:       KeyPaymentCompleted,
		Email:      email,
		BookingID:  bookingID,
		Amount:     &amount,
		OccurredAt: time.Now().UTC(),
	})
}

func (n *QueueNotifier) publish(ctx context.Context, key string, event MailEvent) {
	if err := n.publisher.PublishJSON(ctx, key, event); err != nil {
		slog.Error("failed to publish mail event",
			"routing_key", key, "booking_id", event.BookingID, "error", err.Error())
	}
}
