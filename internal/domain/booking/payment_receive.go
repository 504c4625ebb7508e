package booking

import (
	"time"

	"github.com/google/uuid"
)

// PaymentReceive is the record of an actually captured payment. It is
// created only by the reconciliation engine once the processor confirms a
// capture; the intent id is unique so replayed confirmations collapse onto
// one record.
type PaymentReceive struct {
	id        uuid.UUID
	bookingID uuid.UUID
	intentID  string
	amount    int64
	createdAt time.Time
}

func NewPaymentReceive(bookingID uuid.UUID, intentID string, amount int64, now time.Time) (*PaymentReceive, error) {
	if intentID == "" {
		return nil, ErrEmptyIntentID
	}
	if amount <= 0 {
		return nil, ErrNonPositiveAmount
	}
	return &PaymentReceive{
		id:        uuid.New(),
		bookingID: bookingID,
		intentID:  intentID,
		amount:    amount,
		createdAt: now,
	}, nil
}

func ReconstructPaymentReceive(id, bookingID uuid.UUID, intentID string, amount int64, createdAt time.Time) *PaymentReceive {
	return &PaymentReceive{
		id:        id,
		bookingID: bookingID,
		intentID:  intentID,
		amount:    amount,
		createdAt: createdAt,
	}
}

func (p *PaymentReceive) ID() uuid.UUID        { return p.id }
func (p *PaymentReceive) BookingID() uuid.UUID { return p.bookingID }
func (p *PaymentReceive) IntentID() string     { return p.intentID }
func (p *PaymentReceive) Amount() int64        { return p.amount }
func (p *PaymentReceive) CreatedAt() time.Time { return p.createdAt }
