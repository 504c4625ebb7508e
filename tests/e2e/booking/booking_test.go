//go:build e2e

package booking_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"cleansched/internal/domain/user"
	"cleansched/internal/handler/dto/response"
	"cleansched/internal/usecase/commands"
	"cleansched/tests/common/authtest"
	"cleansched/tests/common/builder"
	"cleansched/tests/common/dbtest"
	"cleansched/tests/common/httptest"
	"cleansched/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	bookingsURL = "/api/bookings"
	webhookURL  = "/api/payment-receives/webhook-event"
	intentURL   = "/api/payment-receives/bookings/%s/intent"
)

type BookingSuite struct {
	e2e.SharedSuite
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

func (s *BookingSuite) token(userID uuid.UUID, role user.Role) string {
	return authtest.NewJWTHelper(s.Config.JWT).GenerateToken(s.T(), userID, role)
}

func (s *BookingSuite) bookingRow(bookingID uuid.UUID) (status, paymentStatus string, totalAmount int64, intentID *string, isActive bool) {
	err := s.DB.QueryRow(context.Background(),
		"SELECT booking_status, payment_status, total_amount, payment_intent_id, is_active FROM bookings WHERE id = $1",
		bookingID).Scan(&status, &paymentStatus, &totalAmount, &intentID, &isActive)
	require.NoError(s.T(), err)
	return
}

func (s *BookingSuite) receiveCount(bookingID uuid.UUID) int {
	var n int
	err := s.DB.QueryRow(context.Background(),
		"SELECT COUNT(*) FROM payment_receives WHERE booking_id = $1", bookingID).Scan(&n)
	require.NoError(s.T(), err)
	return n
}

// =============================================================================
// TestBookingLifecycle
// =============================================================================

func (s *BookingSuite) TestBookingLifecycle() {
	s.Run("Normal case: user creates and fetches a booking", func() {
		t := s.T()

		userID := dbtest.CreateTestUser(t, s.DB, "customer@example.com", string(user.RoleUser))
		token := s.token(userID, user.RoleUser)

		reqBody := builder.NewBookingBuilder().BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, token)

		var created response.CreateBookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
		require.NotEqual(t, uuid.Nil, created.ID)

		dw := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"/"+created.ID.String(), nil, token)

		var actual response.BookingResponse
		httptest.AssertSuccessResponse(t, dw, http.StatusOK, &actual)

		expected := &response.BookingResponse{
			UserID:          userID,
			UserEmail:       "customer@example.com",
			BookingStatus:   "initiated",
			PaymentStatus:   "pending",
			CleaningPrice:   100,
			SuppliesCharges: 10,
			DiscountAmount:  5,
			TotalAmount:     105,
			IsActive:        true,
		}
		opts := []cmp.Option{
			cmpopts.IgnoreFields(response.BookingResponse{}, "ID", "CleaningDate", "CreatedAt", "UpdatedAt"),
		}
		if diff := cmp.Diff(expected, &actual, opts...); diff != "" {
			t.Errorf("Booking response mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("Normal case: patching additional charges recomputes the total", func() {
		t := s.T()

		userID := dbtest.CreateTestUser(t, s.DB, "customer@example.com", string(user.RoleUser))
		bookingID := dbtest.CreateTestBooking(t, s.DB, userID, "initiated", "pending")
		token := s.token(userID, user.RoleUser)

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, bookingsURL+"/"+bookingID.String(),
			map[string]any{"additional_charges": 20}, token)

		var snap response.BookingSnapshotResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &snap)
		require.Equal(t, int64(125), snap.TotalAmount)

		_, _, total, _, _ := s.bookingRow(bookingID)
		require.Equal(t, int64(125), total)
	})

	s.Run("Normal case: admin marks a booking served and the customer is notified", func() {
		t := s.T()

		customerID := dbtest.CreateTestUser(t, s.DB, "customer@example.com", string(user.RoleUser))
		adminID := dbtest.CreateTestUser(t, s.DB, "admin@example.com", string(user.RoleAdmin))
		bookingID := dbtest.CreateTestBooking(t, s.DB, customerID, "initiated", "pending")

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, bookingsURL+"/"+bookingID.String(),
			map[string]any{"mark_as_served": true}, s.token(adminID, user.RoleAdmin))

		var snap response.BookingSnapshotResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &snap)
		require.Equal(t, "served", snap.BookingStatus)

		served := s.Notifier.CallsOfKind("booking_served")
		require.Len(t, served, 1)
		require.Equal(t, "customer@example.com", served[0].Email)
		require.Equal(t, bookingID, served[0].BookingID)
	})

	s.Run("Error case: serving a booking twice conflicts", func() {
		t := s.T()

		userID := dbtest.CreateTestUser(t, s.DB, "customer@example.com", string(user.RoleUser))
		bookingID := dbtest.CreateTestBooking(t, s.DB, userID, "served", "pending")
		token := s.token(userID, user.RoleUser)

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, bookingsURL+"/"+bookingID.String(),
			map[string]any{"mark_as_served": true}, token)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "current state")
	})

	s.Run("Normal case: user cancels an initiated booking", func() {
		t := s.T()

		userID := dbtest.CreateTestUser(t, s.DB, "customer@example.com", string(user.RoleUser))
		bookingID := dbtest.CreateTestBooking(t, s.DB, userID, "initiated", "pending")
		token := s.token(userID, user.RoleUser)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL+"/"+bookingID.String()+"/cancel", nil, token)
		require.Equal(t, http.StatusNoContent, w.Code)

		status, _, _, _, _ := s.bookingRow(bookingID)
		require.Equal(t, "cancelled", status)
	})

	s.Run("Error case: cancelling a served booking conflicts", func() {
		t := s.T()

		userID := dbtest.CreateTestUser(t, s.DB, "customer@example.com", string(user.RoleUser))
		bookingID := dbtest.CreateTestBooking(t, s.DB, userID, "served", "pending")
		token := s.token(userID, user.RoleUser)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL+"/"+bookingID.String()+"/cancel", nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "")
	})

	s.Run("Normal case: admin deactivates a booking and it stops accepting edits", func() {
		t := s.T()

		customerID := dbtest.CreateTestUser(t, s.DB, "customer@example.com", string(user.RoleUser))
		adminID := dbtest.CreateTestUser(t, s.DB, "admin@example.com", string(user.RoleAdmin))
		bookingID := dbtest.CreateTestBooking(t, s.DB, customerID, "initiated", "pending")
		adminToken := s.token(adminID, user.RoleAdmin)

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, bookingsURL+"/"+bookingID.String(), nil, adminToken)
		require.Equal(t, http.StatusNoContent, w.Code)

		_, _, _, _, isActive := s.bookingRow(bookingID)
		require.False(t, isActive)

		pw := httptest.PerformRequest(t, s.Router, http.MethodPatch, bookingsURL+"/"+bookingID.String(),
			map[string]any{"additional_charges": 20}, adminToken)
		httptest.AssertErrorResponse(t, pw, http.StatusNotFound, "No active booking found")
	})
}

// =============================================================================
// TestBookingAccessControl
// =============================================================================

func (s *BookingSuite) TestBookingAccessControl() {
	s.Run("Error case: unauthenticated request is rejected", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("Error case: user cannot fetch another user's booking", func() {
		t := s.T()

		ownerID := dbtest.CreateTestUser(t, s.DB, "owner@example.com", string(user.RoleUser))
		otherID := dbtest.CreateTestUser(t, s.DB, "other@example.com", string(user.RoleUser))
		bookingID := dbtest.CreateTestBooking(t, s.DB, ownerID, "initiated", "pending")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"/"+bookingID.String(), nil,
			s.token(otherID, user.RoleUser))
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "")
	})

	s.Run("Error case: user cannot edit another user's booking", func() {
		t := s.T()

		ownerID := dbtest.CreateTestUser(t, s.DB, "owner@example.com", string(user.RoleUser))
		otherID := dbtest.CreateTestUser(t, s.DB, "other@example.com", string(user.RoleUser))
		bookingID := dbtest.CreateTestBooking(t, s.DB, ownerID, "initiated", "pending")

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, bookingsURL+"/"+bookingID.String(),
			map[string]any{"additional_charges": 20}, s.token(otherID, user.RoleUser))
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "another user")
	})

	s.Run("Normal case: listing is pinned to the caller's own bookings", func() {
		t := s.T()

		ownerID := dbtest.CreateTestUser(t, s.DB, "owner@example.com", string(user.RoleUser))
		otherID := dbtest.CreateTestUser(t, s.DB, "other@example.com", string(user.RoleUser))
		ownBooking := dbtest.CreateTestBooking(t, s.DB, ownerID, "initiated", "pending")
		dbtest.CreateTestBooking(t, s.DB, otherID, "initiated", "pending")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL, nil, s.token(ownerID, user.RoleUser))

		var page response.BookingPageResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &page)
		require.Equal(t, int64(1), page.TotalRecords)
		require.Len(t, page.Data, 1)
		require.Equal(t, ownBooking, page.Data[0].ID)
	})

	s.Run("Normal case: admin list sees every user's bookings", func() {
		t := s.T()

		ownerID := dbtest.CreateTestUser(t, s.DB, "owner@example.com", string(user.RoleUser))
		otherID := dbtest.CreateTestUser(t, s.DB, "other@example.com", string(user.RoleUser))
		adminID := dbtest.CreateTestUser(t, s.DB, "admin@example.com", string(user.RoleAdmin))
		dbtest.CreateTestBooking(t, s.DB, ownerID, "initiated", "pending")
		dbtest.CreateTestBooking(t, s.DB, otherID, "served", "pending")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"?status=served", nil,
			s.token(adminID, user.RoleAdmin))

		var page response.BookingPageResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &page)
		require.Equal(t, int64(1), page.TotalRecords)
		require.Equal(t, "served", page.Data[0].BookingStatus)
	})

	s.Run("Error case: non-admin cannot deactivate a booking", func() {
		t := s.T()

		userID := dbtest.CreateTestUser(t, s.DB, "customer@example.com", string(user.RoleUser))
		bookingID := dbtest.CreateTestBooking(t, s.DB, userID, "initiated", "pending")

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, bookingsURL+"/"+bookingID.String(), nil,
			s.token(userID, user.RoleUser))
		require.Equal(t, http.StatusForbidden, w.Code)
	})
}

// =============================================================================
// TestPaymentIntent
// =============================================================================

func (s *BookingSuite) TestPaymentIntent() {
	s.Run("Normal case: first request creates an intent, second reuses it", func() {
		t := s.T()

		userID := dbtest.CreateTestUser(t, s.DB, "customer@example.com", string(user.RoleUser))
		bookingID := dbtest.CreateTestBooking(t, s.DB, userID, "initiated", "pending")
		token := s.token(userID, user.RoleUser)
		url := fmt.Sprintf(intentURL, bookingID)

		w1 := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, token)
		var first response.PaymentIntentResponse
		httptest.AssertSuccessResponse(t, w1, http.StatusOK, &first)
		require.NotEmpty(t, first.IntentID)
		require.Equal(t, int64(105), first.Amount)

		_, _, _, intentID, _ := s.bookingRow(bookingID)
		require.NotNil(t, intentID)
		require.Equal(t, first.IntentID, *intentID)

		w2 := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, token)
		var second response.PaymentIntentResponse
		httptest.AssertSuccessResponse(t, w2, http.StatusOK, &second)
		require.Equal(t, first.IntentID, second.IntentID)
	})

	s.Run("Error case: settled booking is not open for payment", func() {
		t := s.T()

		userID := dbtest.CreateTestUser(t, s.DB, "customer@example.com", string(user.RoleUser))
		bookingID := dbtest.CreateTestBooking(t, s.DB, userID, "completed", "completed")
		token := s.token(userID, user.RoleUser)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(intentURL, bookingID), nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "not open for payment")
	})
}

// =============================================================================
// TestWebhookReconciliation
// =============================================================================

func (s *BookingSuite) TestWebhookReconciliation() {
	s.Run("Normal case: succeeded event completes the booking exactly once", func() {
		t := s.T()

		userID := dbtest.CreateTestUser(t, s.DB, "customer@example.com", string(user.RoleUser))
		bookingID := dbtest.CreateTestBooking(t, s.DB, userID, "initiated", "pending")

		s.Gateway.RegisterEvent(commands.PaymentEvent{
			Type:      commands.EventPaymentSucceeded,
			EventID:   "evnt_success",
			IntentID:  "chrg_e2e_1",
			BookingID: bookingID,
			Amount:    105,
		})

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, webhookURL,
			map[string]any{"id": "evnt_success", "key": "charge.complete"}, "")
		var ack map[string]string
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &ack)
		require.Equal(t, "applied", ack["status"])

		status, paymentStatus, _, intentID, _ := s.bookingRow(bookingID)
		require.Equal(t, "completed", status)
		require.Equal(t, "completed", paymentStatus)
		require.NotNil(t, intentID)
		require.Equal(t, "chrg_e2e_1", *intentID)
		require.Equal(t, 1, s.receiveCount(bookingID))

		mails := s.Notifier.CallsOfKind("payment_completed")
		require.Len(t, mails, 1)
		require.Equal(t, "customer@example.com", mails[0].Email)
		require.Equal(t, int64(105), mails[0].Amount)

		// Replay of the same event must not produce a second receive or mail.
		rw := httptest.PerformRequest(t, s.Router, http.MethodPost, webhookURL,
			map[string]any{"id": "evnt_success", "key": "charge.complete"}, "")
		var replayAck map[string]string
		httptest.AssertSuccessResponse(t, rw, http.StatusOK, &replayAck)
		require.Equal(t, "skipped", replayAck["status"])
		require.Equal(t, 1, s.receiveCount(bookingID))
		require.Len(t, s.Notifier.CallsOfKind("payment_completed"), 1)
	})

	s.Run("Normal case: served booking completes on payment confirmation", func() {
		t := s.T()

		userID := dbtest.CreateTestUser(t, s.DB, "customer@example.com", string(user.RoleUser))
		bookingID := dbtest.CreateTestBooking(t, s.DB, userID, "served", "pending")

		s.Gateway.RegisterEvent(commands.PaymentEvent{
			Type:      commands.EventPaymentSucceeded,
			EventID:   "evnt_served",
			IntentID:  "chrg_e2e_2",
			BookingID: bookingID,
			Amount:    105,
		})

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, webhookURL,
			map[string]any{"id": "evnt_served", "key": "charge.complete"}, "")
		require.Equal(t, http.StatusOK, w.Code)

		status, paymentStatus, _, _, _ := s.bookingRow(bookingID)
		require.Equal(t, "completed", status)
		require.Equal(t, "completed", paymentStatus)
	})

	s.Run("Edge case: succeeded event never resurrects a cancelled booking", func() {
		t := s.T()

		userID := dbtest.CreateTestUser(t, s.DB, "customer@example.com", string(user.RoleUser))
		bookingID := dbtest.CreateTestBooking(t, s.DB, userID, "cancelled", "pending")

		s.Gateway.RegisterEvent(commands.PaymentEvent{
			Type:      commands.EventPaymentSucceeded,
			EventID:   "evnt_after_cancel",
			IntentID:  "chrg_e2e_cancelled",
			BookingID: bookingID,
			Amount:    105,
		})

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, webhookURL,
			map[string]any{"id": "evnt_after_cancel", "key": "charge.complete"}, "")
		var ack map[string]string
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &ack)
		require.Equal(t, "skipped", ack["status"])

		status, paymentStatus, _, _, _ := s.bookingRow(bookingID)
		require.Equal(t, "cancelled", status)
		require.Equal(t, "pending", paymentStatus)
		require.Equal(t, 0, s.receiveCount(bookingID))
		require.Empty(t, s.Notifier.CallsOfKind("payment_completed"))
	})

	s.Run("Normal case: failure event marks a pending payment failed", func() {
		t := s.T()

		userID := dbtest.CreateTestUser(t, s.DB, "customer@example.com", string(user.RoleUser))
		bookingID := dbtest.CreateTestBooking(t, s.DB, userID, "initiated", "pending")

		s.Gateway.RegisterEvent(commands.PaymentEvent{
			Type:      commands.EventPaymentFailed,
			EventID:   "evnt_failed",
			IntentID:  "chrg_e2e_3",
			BookingID: bookingID,
		})

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, webhookURL,
			map[string]any{"id": "evnt_failed", "key": "charge.complete"}, "")
		var ack map[string]string
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &ack)
		require.Equal(t, "applied", ack["status"])

		status, paymentStatus, _, _, _ := s.bookingRow(bookingID)
		require.Equal(t, "initiated", status)
		require.Equal(t, "failed", paymentStatus)
		require.Equal(t, 0, s.receiveCount(bookingID))
	})

	s.Run("Edge case: stale failure after completion never regresses the capture", func() {
		t := s.T()

		userID := dbtest.CreateTestUser(t, s.DB, "customer@example.com", string(user.RoleUser))
		bookingID := dbtest.CreateTestBooking(t, s.DB, userID, "completed", "completed")

		s.Gateway.RegisterEvent(commands.PaymentEvent{
			Type:      commands.EventPaymentFailed,
			EventID:   "evnt_stale_fail",
			IntentID:  "chrg_e2e_4",
			BookingID: bookingID,
		})

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, webhookURL,
			map[string]any{"id": "evnt_stale_fail", "key": "charge.complete"}, "")
		var ack map[string]string
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &ack)
		require.Equal(t, "skipped", ack["status"])

		_, paymentStatus, _, _, _ := s.bookingRow(bookingID)
		require.Equal(t, "completed", paymentStatus)
	})

	s.Run("Edge case: succeeded event for an unknown booking acks without change", func() {
		t := s.T()

		s.Gateway.RegisterEvent(commands.PaymentEvent{
			Type:      commands.EventPaymentSucceeded,
			EventID:   "evnt_ghost",
			IntentID:  "chrg_ghost",
			BookingID: uuid.New(),
			Amount:    105,
		})

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, webhookURL,
			map[string]any{"id": "evnt_ghost", "key": "charge.complete"}, "")
		var ack map[string]string
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &ack)
		require.Equal(t, "skipped", ack["status"])
	})

	s.Run("Edge case: unverifiable event id is acked and ignored", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, webhookURL,
			map[string]any{"id": "evnt_unknown", "key": "charge.complete"}, "")
		var ack map[string]string
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &ack)
		require.Equal(t, "ignored", ack["status"])
	})
}
