package response

import (
	"time"

	"cleansched/internal/usecase/commands"
	"cleansched/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID                uuid.UUID `json:"id"`
	UserID            uuid.UUID `json:"userId"`
	UserEmail         string    `json:"userEmail"`
	BookingStatus     string    `json:"bookingStatus"`
	PaymentStatus     string    `json:"paymentStatus"`
	CleaningPrice     float64   `json:"cleaningPrice"`
	SuppliesCharges   float64   `json:"suppliesCharges"`
	DiscountAmount    float64   `json:"discountAmount"`
	AdditionalCharges float64   `json:"additionalCharges"`
	TotalAmount       int64     `json:"totalAmount"`
	CleaningDate      time.Time `json:"cleaningDate"`
	Remarks           *string   `json:"remarks,omitempty"`
	PaymentIntentID   *string   `json:"paymentIntentId,omitempty"`
	IsActive          bool      `json:"isActive"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

type BookingListItemResponse struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"userId"`
	BookingStatus string    `json:"bookingStatus"`
	PaymentStatus string    `json:"paymentStatus"`
	TotalAmount   int64     `json:"totalAmount"`
	CleaningDate  time.Time `json:"cleaningDate"`
	CreatedAt     time.Time `json:"createdAt"`
}

// BookingPageResponse is the pagination envelope for listings.
type BookingPageResponse struct {
	TotalRecords int64                      `json:"totalRecords"`
	Page         int                        `json:"page"`
	PageSize     int                        `json:"pageSize"`
	Data         []*BookingListItemResponse `json:"data"`
}

// BookingSnapshotResponse reflects the row state an update returned, read
// back from the same statement that changed it.
type BookingSnapshotResponse struct {
	ID              uuid.UUID `json:"id"`
	UserID          uuid.UUID `json:"userId"`
	BookingStatus   string    `json:"bookingStatus"`
	PaymentStatus   string    `json:"paymentStatus"`
	TotalAmount     int64     `json:"totalAmount"`
	CleaningDate    time.Time `json:"cleaningDate"`
	PaymentIntentID *string   `json:"paymentIntentId,omitempty"`
	IsActive        bool      `json:"isActive"`
}

type CreateBookingResponse struct {
	ID uuid.UUID `json:"id"`
}

func FromBookingView(rm *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:                rm.ID,
		UserID:            rm.UserID,
		UserEmail:         rm.UserEmail,
		BookingStatus:     rm.BookingStatus,
		PaymentStatus:     rm.PaymentStatus,
		CleaningPrice:     rm.CleaningPrice,
		SuppliesCharges:   rm.SuppliesCharges,
		DiscountAmount:    rm.DiscountAmount,
		AdditionalCharges: rm.AdditionalCharges,
		TotalAmount:       rm.TotalAmount,
		CleaningDate:      rm.CleaningDate,
		Remarks:           rm.Remarks,
		PaymentIntentID:   rm.PaymentIntentID,
		IsActive:          rm.IsActive,
		CreatedAt:         rm.CreatedAt,
		UpdatedAt:         rm.UpdatedAt,
	}
}

func FromBookingPage(page *queries.BookingPage) *BookingPageResponse {
	items := make([]*BookingListItemResponse, len(page.Items))
	for i, item := range page.Items {
		items[i] = &BookingListItemResponse{
			ID:            item.ID,
			UserID:        item.UserID,
			BookingStatus: item.BookingStatus,
			PaymentStatus: item.PaymentStatus,
			TotalAmount:   item.TotalAmount,
			CleaningDate:  item.CleaningDate,
			CreatedAt:     item.CreatedAt,
		}
	}
	return &BookingPageResponse{
		TotalRecords: page.TotalRecords,
		Page:         page.Page,
		PageSize:     page.PageSize,
		Data:         items,
	}
}

func FromBookingSnapshot(snap *commands.BookingSnapshot) *BookingSnapshotResponse {
	return &BookingSnapshotResponse{
		ID:              snap.ID,
		UserID:          snap.UserID,
		BookingStatus:   snap.Status.String(),
		PaymentStatus:   snap.PaymentStatus.String(),
		TotalAmount:     snap.TotalAmount,
		CleaningDate:    snap.CleaningDate,
		PaymentIntentID: snap.PaymentIntentID,
		IsActive:        snap.IsActive,
	}
}
