package commands

import (
	"context"
	"time"

	"cleansched/internal/domain/booking"
	"cleansched/internal/infra/db"

	"github.com/google/uuid"
)

// Write-side snapshots prevent dependency on Read-side query types (CQRS separation)
type BookingSnapshot struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	Status          booking.Status
	PaymentStatus   booking.PaymentStatus
	TotalAmount     int64
	CleaningDate    time.Time
	PaymentIntentID *string
	IsActive        bool
}

// UpdatePatch carries the recognized fields of a booking edit. MarkAsServed
// is an intent flag, never a raw status value.
type UpdatePatch struct {
	CleaningDate      *time.Time
	Remarks           *string
	AdditionalCharges *float64
	MarkAsServed      bool
}

func (p UpdatePatch) IsEmpty() bool {
	return p.CleaningDate == nil && p.Remarks == nil && p.AdditionalCharges == nil && !p.MarkAsServed
}

// BookingRepository is the write side of the booking store. The Eligible
// variants fold the eligibility invariant into the statement's WHERE clause
// so the check and the write are one atomic store operation; a miss comes
// back as a KindNotFound repository error.
type BookingRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, b *booking.Booking) (uuid.UUID, error)
	ApplyEligiblePatch(ctx context.Context, dbtx db.DBTX, id uuid.UUID, patch UpdatePatch, now time.Time) (*BookingSnapshot, error)
	CancelEligible(ctx context.Context, dbtx db.DBTX, id uuid.UUID, now time.Time) error
	DeactivateEligible(ctx context.Context, dbtx db.DBTX, id uuid.UUID, now time.Time) error
	// CompletePayment reports whether the guarded transition applied;
	// false means the row no longer matched the pending filter (replay or
	// unknown booking) and nothing changed.
	CompletePayment(ctx context.Context, dbtx db.DBTX, id uuid.UUID, intentID string, now time.Time) (bool, error)
	FailPayment(ctx context.Context, dbtx db.DBTX, id uuid.UUID, now time.Time) (bool, error)
	AttachIntent(ctx context.Context, dbtx db.DBTX, id uuid.UUID, intentID string, now time.Time) error
	// FindByID reads without the eligibility filter; used for ownership
	// checks and for classifying a guarded-update miss.
	FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*BookingSnapshot, error)
}

type PaymentReceiveRepository interface {
	// InsertIfAbsent reports false when the intent id was already
	// recorded, so replayed confirmations collapse onto one record.
	InsertIfAbsent(ctx context.Context, dbtx db.DBTX, rec *booking.PaymentReceive) (bool, error)
}

type UserReads interface {
	EmailByID(ctx context.Context, id uuid.UUID) (string, error)
}

// PaymentEventType classifies a verified processor event.
type PaymentEventType string

const (
	EventPaymentSucceeded PaymentEventType = "payment.succeeded"
	EventPaymentFailed    PaymentEventType = "payment.failed"
	EventIgnored          PaymentEventType = "ignored"
)

// PaymentEvent is a processor event after authenticity verification,
// normalized to the fields reconciliation needs.
type PaymentEvent struct {
	Type      PaymentEventType
	EventID   string
	IntentID  string
	BookingID uuid.UUID
	Amount    int64
}

// IntentRef is the processor-side reference for an authorized payment
// scoped to an amount.
type IntentRef struct {
	ID       string
	Amount   int64
	Currency string
	Status   string
}

// PaymentGateway wraps the processor SDK. VerifyEvent authenticates an
// inbound webhook event; an error means the event could not be verified and
// must be dropped without applying any transition.
type PaymentGateway interface {
	CreateIntent(ctx context.Context, bookingID uuid.UUID, amount int64) (*IntentRef, error)
	RetrieveIntent(ctx context.Context, intentID string) (*IntentRef, error)
	VerifyEvent(ctx context.Context, eventID string) (*PaymentEvent, error)
}

// Notifier is the fire-and-forget notification sink. Implementations
// swallow and log failures; nothing here may fail a state transition.
type Notifier interface {
	BookingServed(ctx context.Context, email string, bookingID uuid.UUID)
	BookingRescheduled(ctx context.Context, email string, bookingID uuid.UUID, date time.Time)
	PaymentCompleted(ctx context.Context, email string, bookingID uuid.UUID, amount int64)
}
