package queries

import (
	"context"

	"github.com/google/uuid"
)

const TopUsersLimit = 10

// EarningsReport sums total_amount over bookings whose delivery and payment
// lifecycles have both reached their completed terminal values.
type EarningsReport struct {
	TotalEarnings     int64 `json:"total_earnings"`
	CompletedBookings int64 `json:"completed_bookings"`
}

// TopUser is the minimal user projection the admin dashboard displays.
// Ordering is by completed-booking count only; ties come back in store
// order and are not deterministic.
type TopUser struct {
	UserID         uuid.UUID `json:"user_id"`
	Email          string    `json:"email"`
	Name           string    `json:"name"`
	AvatarURL      *string   `json:"avatar_url,omitempty"`
	CompletedCount int64     `json:"completed_count"`
}

type ReportQueries interface {
	TotalEarnings(ctx context.Context) (*EarningsReport, error)
	TopUsers(ctx context.Context) ([]*TopUser, error)
}

type ReportReadStore interface {
	SumCompletedEarnings(ctx context.Context) (*EarningsReport, error)
	TopUsersByCompletedCount(ctx context.Context, limit int) ([]*TopUser, error)
}

type reportQueriesImpl struct {
	readStore ReportReadStore
}

func NewReportQueries(readStore ReportReadStore) ReportQueries {
	return &reportQueriesImpl{
		readStore: readStore,
	}
}

func (q *reportQueriesImpl) TotalEarnings(ctx context.Context) (*EarningsReport, error) {
	return q.readStore.SumCompletedEarnings(ctx)
}

func (q *reportQueriesImpl) TopUsers(ctx context.Context) ([]*TopUser, error) {
	return q.readStore.TopUsersByCompletedCount(ctx, TopUsersLimit)
}
