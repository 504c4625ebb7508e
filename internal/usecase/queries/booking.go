package queries

import (
	"context"
	"time"

	"cleansched/internal/infra"
	"cleansched/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100

	RoleAdmin = "admin"
)

var (
	ErrBookingNotFound = errs.New("booking not found")
	ErrBookingAccess   = errs.New("booking access denied")
)

// BookingView represents read-optimized booking data
type BookingView struct {
	ID                uuid.UUID  `json:"id"`
	UserID            uuid.UUID  `json:"user_id"`
	UserEmail         string     `json:"user_email"`
	BookingStatus     string     `json:"booking_status"`
	PaymentStatus     string     `json:"payment_status"`
	CleaningPrice     float64    `json:"cleaning_price"`
	SuppliesCharges   float64    `json:"supplies_charges"`
	DiscountAmount    float64    `json:"discount_amount"`
	AdditionalCharges float64    `json:"additional_charges"`
	TotalAmount       int64      `json:"total_amount"`
	CleaningDate      time.Time  `json:"cleaning_date"`
	Remarks           *string    `json:"remarks,omitempty"`
	PaymentIntentID   *string    `json:"payment_intent_id,omitempty"`
	IsActive          bool       `json:"is_active"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

type BookingListItem struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"user_id"`
	BookingStatus string    `json:"booking_status"`
	PaymentStatus string    `json:"payment_status"`
	TotalAmount   int64     `json:"total_amount"`
	CleaningDate  time.Time `json:"cleaning_date"`
	CreatedAt     time.Time `json:"created_at"`
}

// BookingPage is the offset-pagination envelope the listing endpoints return.
type BookingPage struct {
	TotalRecords int64
	Page         int
	PageSize     int
	Items        []*BookingListItem
}

// BookingListFilter narrows a listing. A nil UserID means all users
// (admin listing); non-admins are always pinned to their own id upstream.
type BookingListFilter struct {
	UserID   *uuid.UUID
	Status   *string
	Page     int
	PageSize int
}

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID, actorID uuid.UUID, actorRole string) (*BookingView, error)
	List(ctx context.Context, filter BookingListFilter) (*BookingPage, error)
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	List(ctx context.Context, filter BookingListFilter) (*BookingPage, error)
}

type bookingQueriesImpl struct {
	readStore BookingReadStore
}

func NewBookingQueries(readStore BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{
		readStore: readStore,
	}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID, actorID uuid.UUID, actorRole string) (*BookingView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	if actorRole != RoleAdmin && view.UserID != actorID {
		return nil, ErrBookingAccess
	}

	return view, nil
}

func (q *bookingQueriesImpl) List(ctx context.Context, filter BookingListFilter) (*BookingPage, error) {
	filter.Page, filter.PageSize = ValidatePage(filter.Page, filter.PageSize)
	return q.readStore.List(ctx, filter)
}

func ValidatePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return page, pageSize
}
