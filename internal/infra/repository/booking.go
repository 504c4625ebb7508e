package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cleansched/internal/domain/booking"
	"cleansched/internal/infra"
	"cleansched/internal/infra/db"
	"cleansched/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// eligibleFilter is the single source of truth for which bookings may be
// mutated. Every guarded statement embeds it so the eligibility check and
// the write are one atomic operation against the row's current state.
const eligibleFilter = `is_active
  AND booking_status NOT IN ('completed', 'cancelled')
  AND payment_status <> 'completed'`

const bookingSnapshotCols = `id, user_id, booking_status, payment_status, total_amount, cleaning_date, payment_intent_id, is_active`

type bookingRepository struct{}

func NewBookingRepository() commands.BookingRepository {
	return &bookingRepository{}
}

func (r *bookingRepository) Create(ctx context.Context, dbtx db.DBTX, b *booking.Booking) (uuid.UUID, error) {
	const q = `
		INSERT INTO bookings (
			id, user_id, booking_status, payment_status,
			cleaning_price, supplies_charges, discount_amount, additional_charges,
			total_amount, cleaning_date, remarks, is_active, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	charges := b.Charges()
	_, err := dbtx.Exec(ctx, q,
		b.ID(), b.UserID(), b.Status().String(), b.PaymentStatus().String(),
		charges.CleaningPrice, charges.SuppliesCharges, charges.DiscountAmount, charges.AdditionalCharges,
		b.TotalAmount(), b.CleaningDate(), b.Remarks(), b.IsActive(), b.CreatedAt(), b.UpdatedAt(),
	)
	if err != nil {
		return uuid.Nil, classifyPgError("failed to insert booking", err)
	}
	return b.ID(), nil
}

// ApplyEligiblePatch folds the patch into one conditional UPDATE. When the
// patch carries additional charges the derived total is recomputed in the
// same statement from the stored price components, so the invariant holds
// even against a concurrent writer. A serve request adds an extra
// booking_status = 'initiated' predicate: a served/targeted-again row then
// falls out of the matched set instead of being double-advanced.
func (r *bookingRepository) ApplyEligiblePatch(
	ctx context.Context,
	dbtx db.DBTX,
	id uuid.UUID,
	patch commands.UpdatePatch,
	now time.Time,
) (*commands.BookingSnapshot, error) {
	sets := make([]string, 0, 5)
	args := make([]any, 0, 6)
	args = append(args, id)

	next := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if patch.CleaningDate != nil {
		sets = append(sets, "cleaning_date = "+next(*patch.CleaningDate))
	}
	if patch.Remarks != nil {
		sets = append(sets, "remarks = "+next(*patch.Remarks))
	}
	if patch.AdditionalCharges != nil {
		p := next(*patch.AdditionalCharges)
		sets = append(sets, "additional_charges = "+p)
		sets = append(sets,
			"total_amount = GREATEST(CEIL(cleaning_price + "+p+" + supplies_charges - discount_amount), 0)::bigint")
	}
	if patch.MarkAsServed {
		sets = append(sets, "booking_status = 'served'")
	}
	sets = append(sets, "updated_at = "+next(now))

	where := "id = $1 AND " + eligibleFilter
	if patch.MarkAsServed {
		where += " AND booking_status = 'initiated'"
	}

	q := fmt.Sprintf(
		"UPDATE bookings SET %s WHERE %s RETURNING %s",
		strings.Join(sets, ", "), where, bookingSnapshotCols,
	)

	snap, err := scanBookingSnapshot(dbtx.QueryRow(ctx, q, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("no eligible booking matched", err, infra.KindNotFound)
		}
		return nil, classifyPgError("failed to update booking", err)
	}
	return snap, nil
}

func (r *bookingRepository) CancelEligible(ctx context.Context, dbtx db.DBTX, id uuid.UUID, now time.Time) error {
	q := `
		UPDATE bookings
		SET booking_status = 'cancelled', updated_at = $2
		WHERE id = $1 AND ` + eligibleFilter + ` AND booking_status = 'initiated'`

	tag, err := dbtx.Exec(ctx, q, id, now)
	if err != nil {
		return classifyPgError("failed to cancel booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("no eligible booking matched", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func (r *bookingRepository) DeactivateEligible(ctx context.Context, dbtx db.DBTX, id uuid.UUID, now time.Time) error {
	q := `
		UPDATE bookings
		SET is_active = FALSE, updated_at = $2
		WHERE id = $1 AND is_active`

	tag, err := dbtx.Exec(ctx, q, id, now)
	if err != nil {
		return classifyPgError("failed to deactivate booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("no active booking matched", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

// CompletePayment is guarded on payment_status <> 'completed': of N
// concurrent confirmations for the same intent exactly one matches, the
// rest report applied=false and change nothing. Cancelled is terminal, so
// a confirmation landing after a cancel is treated as a replay-style miss
// rather than resurrecting the booking.
func (r *bookingRepository) CompletePayment(ctx context.Context, dbtx db.DBTX, id uuid.UUID, intentID string, now time.Time) (bool, error) {
	q := `
		UPDATE bookings
		SET payment_status = 'completed',
		    booking_status = 'completed',
		    payment_intent_id = COALESCE(payment_intent_id, $2),
		    updated_at = $3
		WHERE id = $1 AND is_active
		  AND booking_status <> 'cancelled'
		  AND payment_status <> 'completed'`

	tag, err := dbtx.Exec(ctx, q, id, intentID, now)
	if err != nil {
		return false, classifyPgError("failed to complete payment", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *bookingRepository) FailPayment(ctx context.Context, dbtx db.DBTX, id uuid.UUID, now time.Time) (bool, error) {
	q := `
		UPDATE bookings
		SET payment_status = 'failed', updated_at = $2
		WHERE id = $1 AND is_active AND payment_status = 'pending'`

	tag, err := dbtx.Exec(ctx, q, id, now)
	if err != nil {
		return false, classifyPgError("failed to record payment failure", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *bookingRepository) AttachIntent(ctx context.Context, dbtx db.DBTX, id uuid.UUID, intentID string, now time.Time) error {
	q := `
		UPDATE bookings
		SET payment_intent_id = $2, updated_at = $3
		WHERE id = $1 AND is_active
		  AND booking_status <> 'cancelled'
		  AND payment_status = 'pending'`

	tag, err := dbtx.Exec(ctx, q, id, intentID, now)
	if err != nil {
		return classifyPgError("failed to attach payment intent", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("no payable booking matched", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*commands.BookingSnapshot, error) {
	q := fmt.Sprintf("SELECT %s FROM bookings WHERE id = $1", bookingSnapshotCols)

	snap, err := scanBookingSnapshot(dbtx.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, classifyPgError("failed to find booking", err)
	}
	return snap, nil
}

func scanBookingSnapshot(row pgx.Row) (*commands.BookingSnapshot, error) {
	var (
		snap          commands.BookingSnapshot
		status        string
		paymentStatus string
	)
	err := row.Scan(
		&snap.ID, &snap.UserID, &status, &paymentStatus,
		&snap.TotalAmount, &snap.CleaningDate, &snap.PaymentIntentID, &snap.IsActive,
	)
	if err != nil {
		return nil, err
	}
	snap.Status = booking.Status(status)
	snap.PaymentStatus = booking.PaymentStatus(paymentStatus)
	return &snap, nil
}

func classifyPgError(msg string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return infra.WrapRepoErr(msg, err, infra.KindDuplicateKey)
		case "23503":
			return infra.WrapRepoErr(msg, err, infra.KindForeignKeyViolated)
		}
	}
	return infra.WrapRepoErr(msg, err, infra.KindDBFailure)
}
