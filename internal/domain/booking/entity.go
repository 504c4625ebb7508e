package booking

import (
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNegativeCharges    = errors.New("charges cannot be negative")
	ErrNotEligible        = errors.New("booking is not eligible for mutation")
	ErrInvalidTransition  = errors.New("invalid booking status transition")
	ErrPaymentNotPending  = errors.New("payment is not pending")
	ErrZeroCleaningDate   = errors.New("cleaning date is required")
	ErrNonPositiveAmount  = errors.New("amount must be positive")
	ErrEmptyIntentID      = errors.New("payment intent id is required")
	ErrInactiveBooking    = errors.New("booking is inactive")
	ErrAlreadyDeactivated = errors.New("booking is already inactive")
)

// Charges groups the priced components captured on a booking. The derived
// total is never stored independently of them.
type Charges struct {
	CleaningPrice     float64
	SuppliesCharges   float64
	DiscountAmount    float64
	AdditionalCharges float64
}

// Total is ceil(cleaningPrice + additionalCharges + suppliesCharges - discountAmount),
// clamped at zero so an oversized discount cannot produce a negative bill.
func (c Charges) Total() int64 {
	sum := c.CleaningPrice + c.AdditionalCharges + c.SuppliesCharges - c.DiscountAmount
	if sum < 0 {
		return 0
	}
	return int64(math.Ceil(sum))
}

type Booking struct {
	id              uuid.UUID
	userID          uuid.UUID
	status          Status
	paymentStatus   PaymentStatus
	charges         Charges
	totalAmount     int64
	cleaningDate    time.Time
	remarks         string
	paymentIntentID *string
	isActive        bool
	createdAt       time.Time
	updatedAt       time.Time
}

func NewBooking(userID uuid.UUID, charges Charges, cleaningDate time.Time, remarks string, now time.Time) (*Booking, error) {
	if charges.CleaningPrice < 0 || charges.SuppliesCharges < 0 || charges.DiscountAmount < 0 || charges.AdditionalCharges < 0 {
		return nil, ErrNegativeCharges
	}
	if cleaningDate.IsZero() {
		return nil, ErrZeroCleaningDate
	}

	return &Booking{
		id:            uuid.New(),
		userID:        userID,
		status:        StatusInitiated,
		paymentStatus: PaymentPending,
		charges:       charges,
		totalAmount:   charges.Total(),
		cleaningDate:  cleaningDate,
		remarks:       remarks,
		isActive:      true,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func ReconstructBooking(
	id, userID uuid.UUID,
	status Status,
	paymentStatus PaymentStatus,
	charges Charges,
	totalAmount int64,
	cleaningDate time.Time,
	remarks string,
	paymentIntentID *string,
	isActive bool,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:              id,
		userID:          userID,
		status:          status,
		paymentStatus:   paymentStatus,
		charges:         charges,
		totalAmount:     totalAmount,
		cleaningDate:    cleaningDate,
		remarks:         remarks,
		paymentIntentID: paymentIntentID,
		isActive:        isActive,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// IsEligible reports whether any mutation is allowed: the booking must be
// active, not in a terminal delivery state, and not already paid.
func (b *Booking) IsEligible() bool {
	return b.isActive && !b.status.IsTerminal() && b.paymentStatus != PaymentCompleted
}

// IsPayable reports whether a payment intent may be issued for the booking.
func (b *Booking) IsPayable() bool {
	return b.isActive && b.status != StatusCancelled && b.paymentStatus == PaymentPending
}

// MarkServed advances initiated → served.
func (b *Booking) MarkServed(now time.Time) error {
	if !b.IsEligible() {
		return ErrNotEligible
	}
	if b.status != StatusInitiated {
		return ErrInvalidTransition
	}
	b.status = StatusServed
	b.updatedAt = now
	return nil
}

// SetAdditionalCharges replaces the additional charge and recomputes the
// derived total from the stored price components.
func (b *Booking) SetAdditionalCharges(amount float64, now time.Time) error {
	if !b.IsEligible() {
		return ErrNotEligible
	}
	if amount < 0 {
		return ErrNegativeCharges
	}
	b.charges.AdditionalCharges = amount
	b.totalAmount = b.charges.Total()
	b.updatedAt = now
	return nil
}

func (b *Booking) Reschedule(date time.Time, now time.Time) error {
	if !b.IsEligible() {
		return ErrNotEligible
	}
	if date.IsZero() {
		return ErrZeroCleaningDate
	}
	b.cleaningDate = date
	b.updatedAt = now
	return nil
}

func (b *Booking) SetRemarks(remarks string, now time.Time) error {
	if !b.IsEligible() {
		return ErrNotEligible
	}
	b.remarks = remarks
	b.updatedAt = now
	return nil
}

// Cancel moves initiated → cancelled. Served and completed bookings are
// terminal for cancellation purposes.
func (b *Booking) Cancel(now time.Time) error {
	if !b.IsEligible() {
		return ErrNotEligible
	}
	if b.status != StatusInitiated {
		return ErrInvalidTransition
	}
	b.status = StatusCancelled
	b.updatedAt = now
	return nil
}

// CompletePayment applies a confirmed capture: pending → completed on the
// payment side, and the delivery status moves to completed. Replays are
// no-ops at the store layer; called on an already-completed payment it
// reports the violated invariant. Cancelled has no outgoing transition, so
// a capture confirmed after a cancel is rejected rather than resurrecting
// the booking.
func (b *Booking) CompletePayment(now time.Time) error {
	if b.paymentStatus == PaymentCompleted {
		return ErrInvalidTransition
	}
	if b.status == StatusCancelled {
		return ErrInvalidTransition
	}
	if !b.isActive {
		return ErrInactiveBooking
	}
	b.paymentStatus = PaymentCompleted
	b.status = StatusCompleted
	b.updatedAt = now
	return nil
}

// FailPayment records a processor failure. Only a pending payment can fail;
// a late failure event after completion must never revert the capture.
func (b *Booking) FailPayment(now time.Time) error {
	if b.paymentStatus != PaymentPending {
		return ErrPaymentNotPending
	}
	b.paymentStatus = PaymentFailed
	b.updatedAt = now
	return nil
}

func (b *Booking) AttachIntent(intentID string, now time.Time) error {
	if intentID == "" {
		return ErrEmptyIntentID
	}
	if !b.IsPayable() {
		return ErrNotEligible
	}
	b.paymentIntentID = &intentID
	b.updatedAt = now
	return nil
}

func (b *Booking) Deactivate(now time.Time) error {
	if !b.isActive {
		return ErrAlreadyDeactivated
	}
	b.isActive = false
	b.updatedAt = now
	return nil
}

func (b *Booking) ID() uuid.UUID                { return b.id }
func (b *Booking) UserID() uuid.UUID            { return b.userID }
func (b *Booking) Status() Status               { return b.status }
func (b *Booking) PaymentStatus() PaymentStatus { return b.paymentStatus }
func (b *Booking) Charges() Charges             { return b.charges }
func (b *Booking) TotalAmount() int64           { return b.totalAmount }
func (b *Booking) CleaningDate() time.Time      { return b.cleaningDate }
func (b *Booking) Remarks() string              { return b.remarks }
func (b *Booking) PaymentIntentID() *string     { return b.paymentIntentID }
func (b *Booking) IsActive() bool               { return b.isActive }
func (b *Booking) CreatedAt() time.Time         { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time         { return b.updatedAt }
