package notify

import (
	"time"

	"github.com/google/uuid"
)

// Routing keys on the notification exchange. The mail worker binds all of
// them onto one queue.
const (
	KeyBookingServed      = "notify.booking.served"
	KeyBookingRescheduled = "notify.booking.rescheduled"
	KeyPaymentCompleted   = "notify.payment.completed"
)

// MailEvent is the wire payload between the API process and the mail
// worker. Kind carries the routing key so the consumer does not depend on
// delivery metadata.
type MailEvent struct {
	Kind         string     `json:"kind"`
	Email        string     `json:"email"`
	BookingID    uuid.UUID  `json:"booking_id"`
	CleaningDate *time.Time `json:"cleaning_date,omitempty"`
	Amount       *int64     `json:"amount,omitempty"`
	OccurredAt   time.Time  `json:"occurred_at"`
}
