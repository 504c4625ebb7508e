package commands

import (
	"context"
	"log/slog"

	"cleansched/internal/domain/booking"
	"cleansched/internal/infra"
	"cleansched/internal/infra/db"
	"cleansched/internal/pkg/clock"
	"cleansched/internal/pkg/errs"
	"cleansched/internal/usecase/queries"
	"cleansched/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrEventVerification = errs.New("event could not be verified with the processor")
	ErrBookingNotPayable = errs.New("booking is not open for payment")
	ErrGatewayFailure    = errs.New("payment processor request failed")
)

type WebhookResult struct {
	Applied bool
}

type PaymentCommands interface {
	// HandleWebhookEvent re-retrieves the event from the processor, then
	// applies the corresponding transition. Replays, out-of-order failure
	// events and unknown bookings all resolve to Applied=false without
	// error so the endpoint can ack regardless.
	HandleWebhookEvent(ctx context.Context, eventID string) (*WebhookResult, error)
	GetIntentByBookingID(ctx context.Context, bookingID uuid.UUID, actorID uuid.UUID, actorRole string) (*IntentRef, error)
}

type paymentUseCaseImpl struct {
	bookings BookingRepository
	receives PaymentReceiveRepository
	users    UserReads
	gateway  PaymentGateway
	notifier Notifier
	pool     *pgxpool.Pool
	clock    clock.Clock
}

func NewPaymentUseCase(
	bookings BookingRepository,
	receives PaymentReceiveRepository,
	users UserReads,
	gateway PaymentGateway,
	notifier Notifier,
	pool *pgxpool.Pool,
	clk clock.Clock,
) PaymentCommands {
	return &paymentUseCaseImpl{
		bookings: bookings,
		receives: receives,
		users:    users,
		gateway:  gateway,
		notifier: notifier,
		pool:     pool,
		clock:    clk,
	}
}

func (uc *paymentUseCaseImpl) HandleWebhookEvent(ctx context.Context, eventID string) (*WebhookResult, error) {
	event, err := uc.gateway.VerifyEvent(ctx, eventID)
	if err != nil {
		return nil, errs.Mark(err, ErrEventVerification)
	}

	switch event.Type {
	case EventPaymentSucceeded:
		return uc.applySucceeded(ctx, event)
	case EventPaymentFailed:
		return uc.applyFailed(ctx, event)
	default:
		slog.Debug("ignoring payment event", "event_id", event.EventID, "type", string(event.Type))
		return &WebhookResult{Applied: false}, nil
	}
}

// applySucceeded runs the completion transition and the receive insert in
// one transaction. The guarded update is the concurrency authority: of N
// concurrent deliveries for the same intent, exactly one matches the
// pending filter, and only that one records a receive and sends mail.
func (uc *paymentUseCaseImpl) applySucceeded(ctx context.Context, event *PaymentEvent) (*WebhookResult, error) {
	type outcome struct {
		applied bool
		snap    *BookingSnapshot
	}

	// Processors redeliver aggressively; retrying on serialization failures
	// keeps concurrent deliveries of the same event from surfacing as 5xx.
	result, err := shared.WithDefaultRetry(ctx, uc.pool, func(tx db.DBTX) (outcome, error) {
		applied, err := uc.bookings.CompletePayment(ctx, tx, event.BookingID, event.IntentID, uc.clock.Now())
		if err != nil {
			return outcome{}, errs.Mark(err, ErrStoreOperationFailed)
		}
		if !applied {
			// Replay, unknown booking id, or a capture landing after a
			// cancel. Nothing to undo, nothing to record: commit the empty
			// transaction and ack. A post-cancel capture is left to operator
			// review against the processor.
			return outcome{applied: false}, nil
		}

		rec, err := booking.NewPaymentReceive(event.BookingID, event.IntentID, event.Amount, uc.clock.Now())
		if err != nil {
			return outcome{}, errs.Mark(err, ErrDomainValidation)
		}
		if _, err := uc.receives.InsertIfAbsent(ctx, tx, rec); err != nil {
			return outcome{}, errs.Mark(err, ErrStoreOperationFailed)
		}

		snap, err := uc.bookings.FindByID(ctx, tx, event.BookingID)
		if err != nil {
			return outcome{}, errs.Mark(err, ErrStoreOperationFailed)
		}
		return outcome{applied: true, snap: snap}, nil
	})
	if err != nil {
		return nil, err
	}

	if !result.applied {
		slog.Info("payment completion skipped, booking not completable",
			"event_id", event.EventID, "booking_id", event.BookingID, "intent_id", event.IntentID)
		return &WebhookResult{Applied: false}, nil
	}

	uc.dispatchPaymentMail(ctx, result.snap, event.Amount)

	return &WebhookResult{Applied: true}, nil
}

// applyFailed only touches bookings still awaiting payment; a failure
// arriving after a success is stale processor noise and must not regress
// the completed state.
func (uc *paymentUseCaseImpl) applyFailed(ctx context.Context, event *PaymentEvent) (*WebhookResult, error) {
	applied, err := uc.bookings.FailPayment(ctx, uc.pool, event.BookingID, uc.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrStoreOperationFailed)
	}
	if !applied {
		slog.Info("payment failure skipped, booking not pending",
			"event_id", event.EventID, "booking_id", event.BookingID)
	}
	return &WebhookResult{Applied: applied}, nil
}

// GetIntentByBookingID returns the processor intent for an open booking,
// creating one on first request and reusing the stored reference after.
func (uc *paymentUseCaseImpl) GetIntentByBookingID(
	ctx context.Context,
	bookingID uuid.UUID,
	actorID uuid.UUID,
	actorRole string,
) (*IntentRef, error) {
	snap, err := uc.bookings.FindByID(ctx, uc.pool, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotEligible
		}
		return nil, errs.Mark(err, ErrStoreOperationFailed)
	}

	if actorRole != queries.RoleAdmin && snap.UserID != actorID {
		return nil, ErrBookingNotOwned
	}

	payable := snap.IsActive &&
		!snap.Status.IsTerminal() &&
		snap.PaymentStatus == booking.PaymentPending
	if !payable {
		return nil, ErrBookingNotPayable
	}

	if snap.PaymentIntentID != nil {
		ref, err := uc.gateway.RetrieveIntent(ctx, *snap.PaymentIntentID)
		if err != nil {
			return nil, errs.Mark(err, ErrGatewayFailure)
		}
		return ref, nil
	}

	ref, err := uc.gateway.CreateIntent(ctx, bookingID, snap.TotalAmount)
	if err != nil {
		return nil, errs.Mark(err, ErrGatewayFailure)
	}
	if err := uc.bookings.AttachIntent(ctx, uc.pool, bookingID, ref.ID, uc.clock.Now()); err != nil {
		return nil, errs.Mark(err, ErrStoreOperationFailed)
	}
	return ref, nil
}

func (uc *paymentUseCaseImpl) dispatchPaymentMail(ctx context.Context, snap *BookingSnapshot, amount int64) {
	email, err := uc.users.EmailByID(ctx, snap.UserID)
	if err != nil {
		slog.Warn("skipping payment notification, user lookup failed",
			"booking_id", snap.ID, "user_id", snap.UserID, "error", err.Error())
		return
	}
	uc.notifier.PaymentCompleted(ctx, email, snap.ID, amount)
}
