package repository

import (
	"context"

	"cleansched/internal/domain/booking"
	"cleansched/internal/infra/db"
	"cleansched/internal/usecase/commands"
)

type paymentReceiveRepository struct{}

func NewPaymentReceiveRepository() commands.PaymentReceiveRepository {
	return &paymentReceiveRepository{}
}

// InsertIfAbsent relies on the unique index on intent_id: a replayed
// confirmation conflicts, DO NOTHING leaves the original record untouched
// and the zero rows-affected count reports the no-op to the caller.
func (r *paymentReceiveRepository) InsertIfAbsent(ctx context.Context, dbtx db.DBTX, rec *booking.PaymentReceive) (bool, error) {
	const q = `
		INSERT INTO payment_receives (id, booking_id, intent_id, amount, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (intent_id) DO NOTHING`

	tag, err := dbtx.Exec(ctx, q, rec.ID(), rec.BookingID(), rec.IntentID(), rec.Amount(), rec.CreatedAt())
	if err != nil {
		return false, classifyPgError("failed to insert payment receive", err)
	}
	return tag.RowsAffected() > 0, nil
}
