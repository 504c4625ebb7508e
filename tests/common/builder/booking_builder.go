//go:build unit || e2e

package builder

import (
	"time"

	"cleansched/internal/domain/booking"
	reqdto "cleansched/internal/handler/dto/request"
	"cleansched/internal/usecase/commands"
	"cleansched/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingBuilder struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	UserEmail         string
	BookingStatus     string
	PaymentStatus     string
	CleaningPrice     float64
	SuppliesCharges   float64
	DiscountAmount    float64
	AdditionalCharges float64
	TotalAmount       int64
	CleaningDate      time.Time
	Remarks           *string
	PaymentIntentID   *string
	IsActive          bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Now().UTC().Truncate(time.Second)
	return &BookingBuilder{
		ID:              uuid.New(),
		UserID:          uuid.New(),
		UserEmail:       "customer@example.com",
		BookingStatus:   "initiated",
		PaymentStatus:   "pending",
		CleaningPrice:   100,
		SuppliesCharges: 10,
		DiscountAmount:  5,
		TotalAmount:     105,
		CleaningDate:    now.Add(72 * time.Hour),
		IsActive:        true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods

func (b *BookingBuilder) BuildView() *queries.BookingView {
	var view queries.BookingView
	// field names line up, copier maps them directly
	_ = copier.Copy(&view, b)
	return &view
}

func (b *BookingBuilder) BuildListItem() *queries.BookingListItem {
	var item queries.BookingListItem
	_ = copier.Copy(&item, b)
	return &item
}

func (b *BookingBuilder) BuildSnapshot() *commands.BookingSnapshot {
	return &commands.BookingSnapshot{
		ID:              b.ID,
		UserID:          b.UserID,
		Status:          booking.Status(b.BookingStatus),
		PaymentStatus:   booking.PaymentStatus(b.PaymentStatus),
		TotalAmount:     b.TotalAmount,
		CleaningDate:    b.CleaningDate,
		PaymentIntentID: b.PaymentIntentID,
		IsActive:        b.IsActive,
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		CleaningPrice:   b.CleaningPrice,
		SuppliesCharges: b.SuppliesCharges,
		DiscountAmount:  b.DiscountAmount,
		CleaningDate:    b.CleaningDate,
		Remarks:         b.Remarks,
	}
}

func (b *BookingBuilder) BuildUpdateRequestDTO() reqdto.UpdateBookingRequest {
	charges := b.AdditionalCharges
	return reqdto.UpdateBookingRequest{
		CleaningDate:      &b.CleaningDate,
		Remarks:           b.Remarks,
		AdditionalCharges: &charges,
	}
}
