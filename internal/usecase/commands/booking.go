package commands

import (
	"context"
	"log/slog"
	"time"

	"cleansched/internal/domain/booking"
	"cleansched/internal/infra"
	"cleansched/internal/pkg/clock"
	"cleansched/internal/pkg/errs"
	"cleansched/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrEmptyPatch           = errs.New("update payload contains no recognized field")
	ErrNegativeCharges      = errs.New("additional charges cannot be negative")
	ErrBookingNotEligible   = errs.New("no active booking found")
	ErrInvalidTransition    = errs.New("requested transition is not allowed")
	ErrBookingNotOwned      = errs.New("booking not owned by user")
	ErrDomainValidation     = errs.New("domain validation error")
	ErrStoreOperationFailed = errs.New("store operation failed")
)

type CreateBookingInput struct {
	CleaningPrice   float64
	SuppliesCharges float64
	DiscountAmount  float64
	CleaningDate    time.Time
	Remarks         string
}

type CreateBookingResult struct {
	BookingID uuid.UUID
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, input CreateBookingInput, userID uuid.UUID) (*CreateBookingResult, error)
	UpdateBooking(ctx context.Context, bookingID uuid.UUID, patch UpdatePatch, actorID uuid.UUID, actorRole string) (*BookingSnapshot, error)
	CancelBooking(ctx context.Context, bookingID uuid.UUID, actorID uuid.UUID, actorRole string) error
	DeactivateBooking(ctx context.Context, bookingID uuid.UUID) error
}

type bookingUseCaseImpl struct {
	bookings BookingRepository
	users    UserReads
	notifier Notifier
	pool     *pgxpool.Pool
	clock    clock.Clock
}

func NewBookingUseCase(
	bookings BookingRepository,
	users UserReads,
	notifier Notifier,
	pool *pgxpool.Pool,
	clk clock.Clock,
) BookingCommands {
	return &bookingUseCaseImpl{
		bookings: bookings,
		users:    users,
		notifier: notifier,
		pool:     pool,
		clock:    clk,
	}
}

func (uc *bookingUseCaseImpl) CreateBooking(ctx context.Context, input CreateBookingInput, userID uuid.UUID) (*CreateBookingResult, error) {
	charges := booking.Charges{
		CleaningPrice:   input.CleaningPrice,
		SuppliesCharges: input.SuppliesCharges,
		DiscountAmount:  input.DiscountAmount,
	}

	entity, err := booking.NewBooking(userID, charges, input.CleaningDate, input.Remarks, uc.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	id, err := uc.bookings.Create(ctx, uc.pool, entity)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreOperationFailed)
	}

	return &CreateBookingResult{BookingID: id}, nil
}

// UpdateBooking is the single transition authority for admin/user edits.
// Eligibility is enforced by the repository's guarded conditional update;
// a second writer racing on the same booking simply stops matching the
// eligible set once the first writer advanced it.
func (uc *bookingUseCaseImpl) UpdateBooking(
	ctx context.Context,
	bookingID uuid.UUID,
	patch UpdatePatch,
	actorID uuid.UUID,
	actorRole string,
) (*BookingSnapshot, error) {
	if patch.IsEmpty() {
		return nil, ErrEmptyPatch
	}
	if patch.AdditionalCharges != nil && *patch.AdditionalCharges < 0 {
		return nil, ErrNegativeCharges
	}

	if actorRole != queries.RoleAdmin {
		if err := uc.assertOwnership(ctx, bookingID, actorID); err != nil {
			return nil, err
		}
	}

	snap, err := uc.bookings.ApplyEligiblePatch(ctx, uc.pool, bookingID, patch, uc.clock.Now())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, uc.classifyMiss(ctx, bookingID, patch)
		}
		return nil, errs.Mark(err, ErrStoreOperationFailed)
	}

	uc.dispatchUpdateNotifications(ctx, snap, patch)

	return snap, nil
}

func (uc *bookingUseCaseImpl) CancelBooking(ctx context.Context, bookingID uuid.UUID, actorID uuid.UUID, actorRole string) error {
	if actorRole != queries.RoleAdmin {
		if err := uc.assertOwnership(ctx, bookingID, actorID); err != nil {
			return err
		}
	}

	err := uc.bookings.CancelEligible(ctx, uc.pool, bookingID, uc.clock.Now())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return uc.classifyMiss(ctx, bookingID, UpdatePatch{MarkAsServed: true})
		}
		return errs.Mark(err, ErrStoreOperationFailed)
	}
	return nil
}

func (uc *bookingUseCaseImpl) DeactivateBooking(ctx context.Context, bookingID uuid.UUID) error {
	err := uc.bookings.DeactivateEligible(ctx, uc.pool, bookingID, uc.clock.Now())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrBookingNotEligible
		}
		return errs.Mark(err, ErrStoreOperationFailed)
	}
	return nil
}

func (uc *bookingUseCaseImpl) assertOwnership(ctx context.Context, bookingID, actorID uuid.UUID) error {
	snap, err := uc.bookings.FindByID(ctx, uc.pool, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrBookingNotEligible
		}
		return errs.Mark(err, ErrStoreOperationFailed)
	}
	if snap.UserID != actorID {
		return ErrBookingNotOwned
	}
	return nil
}

// classifyMiss picks the error for a guarded update that matched nothing.
// The read here is advisory only: the conditional update already decided
// that no state change happens, this just distinguishes "ineligible" from
// "eligible but wrong delivery status" for the caller's message.
func (uc *bookingUseCaseImpl) classifyMiss(ctx context.Context, bookingID uuid.UUID, patch UpdatePatch) error {
	snap, err := uc.bookings.FindByID(ctx, uc.pool, bookingID)
	if err != nil {
		return ErrBookingNotEligible
	}

	eligible := snap.IsActive &&
		!snap.Status.IsTerminal() &&
		snap.PaymentStatus != booking.PaymentCompleted

	if eligible && patch.MarkAsServed && snap.Status != booking.StatusInitiated {
		return ErrInvalidTransition
	}
	return ErrBookingNotEligible
}

// Post-commit, best-effort. A mail failure never rolls back or fails the
// state update; the sink logs and swallows.
func (uc *bookingUseCaseImpl) dispatchUpdateNotifications(ctx context.Context, snap *BookingSnapshot, patch UpdatePatch) {
	email, err := uc.users.EmailByID(ctx, snap.UserID)
	if err != nil {
		slog.Warn("skipping booking notification, user lookup failed",
			"booking_id", snap.ID, "user_id", snap.UserID, "error", err.Error())
		return
	}

	if patch.MarkAsServed && snap.Status == booking.StatusServed {
		uc.notifier.BookingServed(ctx, email, snap.ID)
	}
	if patch.CleaningDate != nil {
		uc.notifier.BookingRescheduled(ctx, email, snap.ID, snap.CleaningDate)
	}
}
