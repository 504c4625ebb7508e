package readstore

import (
	"context"

	"cleansched/internal/infra"
	"cleansched/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
)

type reportReadStore struct {
	pool *pgxpool.Pool
}

func NewReportReadStore(pool *pgxpool.Pool) queries.ReportReadStore {
	return &reportReadStore{pool: pool}
}

// SumCompletedEarnings aggregates over bookings whose payment actually
// captured. Deactivated rows still count: earnings are historical facts.
func (s *reportReadStore) SumCompletedEarnings(ctx context.Context) (*queries.EarningsReport, error) {
	const q = `
		SELECT COALESCE(SUM(total_amount), 0), COUNT(*)
		FROM bookings
		WHERE booking_status = 'completed' AND payment_status = 'completed'`

	var report queries.EarningsReport
	if err := s.pool.QueryRow(ctx, q).Scan(&report.TotalEarnings, &report.CompletedBookings); err != nil {
		return nil, infra.WrapRepoErr("failed to sum completed earnings", err)
	}
	return &report, nil
}

func (s *reportReadStore) TopUsersByCompletedCount(ctx context.Context, limit int) ([]*queries.TopUser, error) {
	const q = `
		SELECT u.id, u.email, u.name, u.avatar_url, COUNT(b.id) AS completed_count
		FROM bookings b
		JOIN users u ON u.id = b.user_id
		WHERE b.booking_status = 'completed' AND b.payment_status = 'completed'
		GROUP BY u.id, u.email, u.name, u.avatar_url
		ORDER BY completed_count DESC
		LIMIT $1`

	rows, err := s.pool.Query(ctx, q, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query top users", err)
	}
	defer rows.Close()

	users := make([]*queries.TopUser, 0, limit)
	for rows.Next() {
		var u queries.TopUser
		if err := rows.Scan(&u.UserID, &u.Email, &u.Name, &u.AvatarURL, &u.CompletedCount); err != nil {
			return nil, infra.WrapRepoErr("failed to scan top user row", err)
		}
		users = append(users, &u)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate top user rows", err)
	}
	return users, nil
}
