//go:build unit

package booking_test

import (
	"testing"
	"time"

	"cleansched/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBooking(t *testing.T, now time.Time) *booking.Booking {
	t.Helper()
	b, err := booking.NewBooking(uuid.New(), booking.Charges{
		CleaningPrice:   100,
		SuppliesCharges: 10,
		DiscountAmount:  5,
	}, now.Add(72*time.Hour), "weekly clean", now)
	require.NoError(t, err)
	return b
}

func TestNewBooking(t *testing.T) {
	now := time.Now()

	t.Run("basic success case", func(t *testing.T) {
		b := newTestBooking(t, now)

		assert.NotEqual(t, uuid.Nil, b.ID())
		assert.Equal(t, booking.StatusInitiated, b.Status())
		assert.Equal(t, booking.PaymentPending, b.PaymentStatus())
		assert.True(t, b.IsActive())
		assert.Equal(t, int64(105), b.TotalAmount())
	})

	t.Run("negative charge component", func(t *testing.T) {
		_, err := booking.NewBooking(uuid.New(), booking.Charges{
			CleaningPrice:  100,
			DiscountAmount: -1,
		}, now.Add(time.Hour), "", now)
		assert.ErrorIs(t, err, booking.ErrNegativeCharges)
	})

	t.Run("zero cleaning date", func(t *testing.T) {
		_, err := booking.NewBooking(uuid.New(), booking.Charges{CleaningPrice: 100}, time.Time{}, "", now)
		assert.ErrorIs(t, err, booking.ErrZeroCleaningDate)
	})
}

func TestChargesTotal(t *testing.T) {
	cases := []struct {
		name    string
		charges booking.Charges
		want    int64
	}{
		{
			name:    "sum of components",
			charges: booking.Charges{CleaningPrice: 100, SuppliesCharges: 10, DiscountAmount: 5},
			want:    105,
		},
		{
			name:    "fractional sum rounds up",
			charges: booking.Charges{CleaningPrice: 99.5, SuppliesCharges: 0.2},
			want:    100,
		},
		{
			name:    "oversized discount clamps to zero",
			charges: booking.Charges{CleaningPrice: 50, DiscountAmount: 80},
			want:    0,
		},
		{
			name:    "additional charges included",
			charges: booking.Charges{CleaningPrice: 100, SuppliesCharges: 10, DiscountAmount: 5, AdditionalCharges: 20},
			want:    125,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.charges.Total())
		})
	}
}

func TestSetAdditionalCharges(t *testing.T) {
	now := time.Now()

	t.Run("recomputes derived total", func(t *testing.T) {
		b := newTestBooking(t, now)
		require.NoError(t, b.SetAdditionalCharges(20, now))
		assert.Equal(t, int64(125), b.TotalAmount())
	})

	t.Run("rejects negative amount", func(t *testing.T) {
		b := newTestBooking(t, now)
		assert.ErrorIs(t, b.SetAdditionalCharges(-1, now), booking.ErrNegativeCharges)
	})

	t.Run("rejected after cancel", func(t *testing.T) {
		b := newTestBooking(t, now)
		require.NoError(t, b.Cancel(now))
		assert.ErrorIs(t, b.SetAdditionalCharges(20, now), booking.ErrNotEligible)
	})
}

func TestDeliveryTransitions(t *testing.T) {
	now := time.Now()

	t.Run("initiated to served", func(t *testing.T) {
		b := newTestBooking(t, now)
		require.NoError(t, b.MarkServed(now))
		assert.Equal(t, booking.StatusServed, b.Status())
	})

	t.Run("serving twice fails", func(t *testing.T) {
		b := newTestBooking(t, now)
		require.NoError(t, b.MarkServed(now))
		assert.ErrorIs(t, b.MarkServed(now), booking.ErrInvalidTransition)
	})

	t.Run("cancel only from initiated", func(t *testing.T) {
		b := newTestBooking(t, now)
		require.NoError(t, b.MarkServed(now))
		assert.ErrorIs(t, b.Cancel(now), booking.ErrInvalidTransition)
	})

	t.Run("terminal states reject edits", func(t *testing.T) {
		b := newTestBooking(t, now)
		require.NoError(t, b.Cancel(now))
		assert.ErrorIs(t, b.Reschedule(now.Add(96*time.Hour), now), booking.ErrNotEligible)
		assert.ErrorIs(t, b.SetRemarks("late", now), booking.ErrNotEligible)
	})
}

func TestPaymentTransitions(t *testing.T) {
	now := time.Now()

	t.Run("complete payment also completes delivery", func(t *testing.T) {
		b := newTestBooking(t, now)
		require.NoError(t, b.CompletePayment(now))
		assert.Equal(t, booking.PaymentCompleted, b.PaymentStatus())
		assert.Equal(t, booking.StatusCompleted, b.Status())
	})

	t.Run("completed payment locks the booking", func(t *testing.T) {
		b := newTestBooking(t, now)
		require.NoError(t, b.CompletePayment(now))
		assert.ErrorIs(t, b.CompletePayment(now), booking.ErrInvalidTransition)
		assert.False(t, b.IsEligible())
	})

	t.Run("completion never resurrects a cancelled booking", func(t *testing.T) {
		b := newTestBooking(t, now)
		require.NoError(t, b.Cancel(now))
		assert.ErrorIs(t, b.CompletePayment(now), booking.ErrInvalidTransition)
		assert.Equal(t, booking.StatusCancelled, b.Status())
		assert.Equal(t, booking.PaymentPending, b.PaymentStatus())
	})

	t.Run("failure only from pending", func(t *testing.T) {
		b := newTestBooking(t, now)
		require.NoError(t, b.FailPayment(now))
		assert.Equal(t, booking.PaymentFailed, b.PaymentStatus())
		assert.ErrorIs(t, b.FailPayment(now), booking.ErrPaymentNotPending)
	})

	t.Run("failure never reverts a completed payment", func(t *testing.T) {
		b := newTestBooking(t, now)
		require.NoError(t, b.CompletePayment(now))
		assert.ErrorIs(t, b.FailPayment(now), booking.ErrPaymentNotPending)
		assert.Equal(t, booking.PaymentCompleted, b.PaymentStatus())
	})

	t.Run("failed booking can retry and complete", func(t *testing.T) {
		b := newTestBooking(t, now)
		require.NoError(t, b.FailPayment(now))
		require.NoError(t, b.CompletePayment(now))
		assert.Equal(t, booking.PaymentCompleted, b.PaymentStatus())
	})
}

func TestAttachIntent(t *testing.T) {
	now := time.Now()

	t.Run("attaches to payable booking", func(t *testing.T) {
		b := newTestBooking(t, now)
		require.NoError(t, b.AttachIntent("chrg_test_1", now))
		require.NotNil(t, b.PaymentIntentID())
		assert.Equal(t, "chrg_test_1", *b.PaymentIntentID())
	})

	t.Run("empty intent id rejected", func(t *testing.T) {
		b := newTestBooking(t, now)
		assert.ErrorIs(t, b.AttachIntent("", now), booking.ErrEmptyIntentID)
	})

	t.Run("not payable after completion", func(t *testing.T) {
		b := newTestBooking(t, now)
		require.NoError(t, b.CompletePayment(now))
		assert.ErrorIs(t, b.AttachIntent("chrg_test_2", now), booking.ErrNotEligible)
	})
}

func TestDeactivate(t *testing.T) {
	now := time.Now()

	b := newTestBooking(t, now)
	require.NoError(t, b.Deactivate(now))
	assert.False(t, b.IsActive())
	assert.False(t, b.IsEligible())
	assert.ErrorIs(t, b.Deactivate(now), booking.ErrAlreadyDeactivated)
}

func TestPaymentReceive(t *testing.T) {
	now := time.Now()

	t.Run("valid receive", func(t *testing.T) {
		rec, err := booking.NewPaymentReceive(uuid.New(), "chrg_test_1", 105, now)
		require.NoError(t, err)
		assert.Equal(t, int64(105), rec.Amount())
	})

	t.Run("empty intent id", func(t *testing.T) {
		_, err := booking.NewPaymentReceive(uuid.New(), "", 105, now)
		assert.ErrorIs(t, err, booking.ErrEmptyIntentID)
	})

	t.Run("non-positive amount", func(t *testing.T) {
		_, err := booking.NewPaymentReceive(uuid.New(), "chrg_test_1", 0, now)
		assert.ErrorIs(t, err, booking.ErrNonPositiveAmount)
	})
}
