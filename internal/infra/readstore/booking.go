package readstore

import (
	"context"
	"errors"
	"fmt"

	"cleansched/internal/infra"
	"cleansched/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type bookingReadStore struct {
	pool *pgxpool.Pool
}

func NewBookingReadStore(pool *pgxpool.Pool) queries.BookingReadStore {
	return &bookingReadStore{pool: pool}
}

func (s *bookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	const q = `
		SELECT
			b.id, b.user_id, u.email,
			b.booking_status, b.payment_status,
			b.cleaning_price, b.supplies_charges, b.discount_amount, b.additional_charges,
			b.total_amount, b.cleaning_date, NULLIF(b.remarks, ''), b.payment_intent_id,
			b.is_active, b.created_at, b.updated_at
		FROM bookings b
		JOIN users u ON u.id = b.user_id
		WHERE b.id = $1`

	var view queries.BookingView
	err := s.pool.QueryRow(ctx, q, id).Scan(
		&view.ID, &view.UserID, &view.UserEmail,
		&view.BookingStatus, &view.PaymentStatus,
		&view.CleaningPrice, &view.SuppliesCharges, &view.DiscountAmount, &view.AdditionalCharges,
		&view.TotalAmount, &view.CleaningDate, &view.Remarks, &view.PaymentIntentID,
		&view.IsActive, &view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}
	return &view, nil
}

// List returns one page plus the unpaginated total so the handler can
// build the pagination envelope. Count and page run as two statements;
// the count can be marginally stale against concurrent writes, which is
// acceptable for a listing.
func (s *bookingReadStore) List(ctx context.Context, filter queries.BookingListFilter) (*queries.BookingPage, error) {
	where := "TRUE"
	args := make([]any, 0, 4)

	if filter.UserID != nil {
		args = append(args, *filter.UserID)
		where += fmt.Sprintf(" AND user_id = $%d", len(args))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		where += fmt.Sprintf(" AND booking_status = $%d", len(args))
	}

	var total int64
	countQ := "SELECT COUNT(*) FROM bookings WHERE " + where
	if err := s.pool.QueryRow(ctx, countQ, args...).Scan(&total); err != nil {
		return nil, infra.WrapRepoErr("failed to count bookings", err)
	}

	args = append(args, filter.PageSize)
	limitPos := len(args)
	args = append(args, (filter.Page-1)*filter.PageSize)
	offsetPos := len(args)

	pageQ := fmt.Sprintf(`
		SELECT id, user_id, booking_status, payment_status, total_amount, cleaning_date, created_at
		FROM bookings
		WHERE %s
		ORDER BY created_at DESC, id DESC
		LIMIT $%d OFFSET $%d`, where, limitPos, offsetPos)

	rows, err := s.pool.Query(ctx, pageQ, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	items := make([]*queries.BookingListItem, 0, filter.PageSize)
	for rows.Next() {
		var item queries.BookingListItem
		if err := rows.Scan(
			&item.ID, &item.UserID, &item.BookingStatus, &item.PaymentStatus,
			&item.TotalAmount, &item.CleaningDate, &item.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}

	return &queries.BookingPage{
		TotalRecords: total,
		Page:         filter.Page,
		PageSize:     filter.PageSize,
		Items:        items,
	}, nil
}
