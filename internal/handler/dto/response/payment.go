package response

import (
	"cleansched/internal/usecase/commands"
	"cleansched/internal/usecase/queries"

	"github.com/google/uuid"
)

type PaymentIntentResponse struct {
	IntentID string `json:"intentId"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Status   string `json:"status"`
}

func FromIntentRef(ref *commands.IntentRef) *PaymentIntentResponse {
	return &PaymentIntentResponse{
		IntentID: ref.ID,
		Amount:   ref.Amount,
		Currency: ref.Currency,
		Status:   ref.Status,
	}
}

type EarningsReportResponse struct {
	TotalEarnings     int64 `json:"totalEarnings"`
	CompletedBookings int64 `json:"completedBookings"`
}

type TopUserResponse struct {
	UserID         uuid.UUID `json:"userId"`
	Email          string    `json:"email"`
	Name           string    `json:"name"`
	AvatarURL      *string   `json:"avatarUrl,omitempty"`
	CompletedCount int64     `json:"completedCount"`
}

func FromEarningsReport(rm *queries.EarningsReport) *EarningsReportResponse {
	return &EarningsReportResponse{
		TotalEarnings:     rm.TotalEarnings,
		CompletedBookings: rm.CompletedBookings,
	}
}

func FromTopUsers(rms []*queries.TopUser) []*TopUserResponse {
	out := make([]*TopUserResponse, len(rms))
	for i, rm := range rms {
		out[i] = &TopUserResponse{
			UserID:         rm.UserID,
			Email:          rm.Email,
			Name:           rm.Name,
			AvatarURL:      rm.AvatarURL,
			CompletedCount: rm.CompletedCount,
		}
	}
	return out
}
