package request

import (
	"strings"
	"time"

	"cleansched/internal/pkg/patch"
	"cleansched/internal/usecase/commands"
)

type CreateBookingRequest struct {
	CleaningPrice   float64   `json:"cleaning_price" binding:"required,gte=0"`
	SuppliesCharges float64   `json:"supplies_charges" binding:"gte=0"`
	DiscountAmount  float64   `json:"discount_amount" binding:"gte=0"`
	CleaningDate    time.Time `json:"cleaning_date" binding:"required"`
	Remarks         *string   `json:"remarks,omitempty"`
}

func (r CreateBookingRequest) ToInput() commands.CreateBookingInput {
	remarks := strings.TrimSpace(patch.Coalesce(r.Remarks, ""))
	return commands.CreateBookingInput{
		CleaningPrice:   r.CleaningPrice,
		SuppliesCharges: r.SuppliesCharges,
		DiscountAmount:  r.DiscountAmount,
		CleaningDate:    r.CleaningDate,
		Remarks:         remarks,
	}
}

// UpdateBookingRequest is a partial edit. Absent fields leave the booking
// untouched; sending the booking status directly is not supported, only
// the mark_as_served intent flag.
type UpdateBookingRequest struct {
	CleaningDate      *time.Time `json:"cleaning_date,omitempty"`
	Remarks           *string    `json:"remarks,omitempty"`
	AdditionalCharges *float64   `json:"additional_charges,omitempty"`
	MarkAsServed      bool       `json:"mark_as_served,omitempty"`
}

func (r UpdateBookingRequest) ToPatch() commands.UpdatePatch {
	patch := commands.UpdatePatch{
		CleaningDate:      r.CleaningDate,
		AdditionalCharges: r.AdditionalCharges,
		MarkAsServed:      r.MarkAsServed,
	}
	if r.Remarks != nil {
		trimmed := strings.TrimSpace(*r.Remarks)
		patch.Remarks = &trimmed
	}
	return patch
}

type ListBookingsRequest struct {
	Status   *string `form:"status" binding:"omitempty,oneof=initiated served completed cancelled"`
	Page     int     `form:"page,default=1" binding:"omitempty,gte=1"`
	PageSize int     `form:"page_size,default=20" binding:"omitempty,gte=1,lte=100"`
}
