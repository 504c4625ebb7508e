package gateway

import (
	"context"
	"encoding/json"
	"log/slog"

	"cleansched/internal/pkg/config"
	"cleansched/internal/pkg/errs"
	"cleansched/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/omise/omise-go"
	"github.com/omise/omise-go/operations"
)

var (
	ErrEventRetrieve  = errs.New("failed to retrieve event from processor")
	ErrEventMalformed = errs.New("event payload is not a charge")
)

type omiseGateway struct {
	client *omise.Client
	cfg    config.PaymentConfig
}

func NewOmiseClient(cfg config.PaymentConfig) (*omise.Client, error) {
	client, err := omise.NewClient(cfg.PublicKey, cfg.SecretKey)
	if err != nil {
		return nil, errs.Wrap(err, "failed to build omise client")
	}
	client.SetDebug(false)
	return client, nil
}

func NewOmiseGateway(client *omise.Client, cfg config.PaymentConfig) commands.PaymentGateway {
	return &omiseGateway{client: client, cfg: cfg}
}

// CreateIntent opens a processor charge tagged with the booking id. The
// charge id doubles as the intent id followed through the webhook flow.
func (g *omiseGateway) CreateIntent(ctx context.Context, bookingID uuid.UUID, amount int64) (*commands.IntentRef, error) {
	charge := &omise.Charge{}
	req := &operations.CreateCharge{
		Amount:    amount,
		Currency:  g.cfg.Currency,
		ReturnURI: g.cfg.CallbackURL,
		Metadata:  map[string]any{"booking_id": bookingID.String()},
	}
	if err := g.client.Do(charge, req); err != nil {
		return nil, errs.Wrap(err, "failed to create charge")
	}
	return chargeToIntent(charge), nil
}

func (g *omiseGateway) RetrieveIntent(ctx context.Context, intentID string) (*commands.IntentRef, error) {
	charge := &omise.Charge{}
	if err := g.client.Do(charge, &operations.RetrieveCharge{ChargeID: intentID}); err != nil {
		return nil, errs.Wrap(err, "failed to retrieve charge")
	}
	return chargeToIntent(charge), nil
}

// VerifyEvent never trusts the inbound payload: the event is re-retrieved
// from the processor by id, so a forged request body can at worst replay a
// real event the processor actually holds.
func (g *omiseGateway) VerifyEvent(ctx context.Context, eventID string) (*commands.PaymentEvent, error) {
	event := &omise.Event{}
	if err := g.client.Do(event, &operations.RetrieveEvent{EventID: eventID}); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "failed to retrieve event"), ErrEventRetrieve)
	}

	if event.Key != "charge.complete" && event.Key != "charge.create" {
		return &commands.PaymentEvent{Type: commands.EventIgnored, EventID: event.ID}, nil
	}

	// Data comes back untyped; round-trip through JSON to get a Charge.
	raw, err := json.Marshal(event.Data)
	if err != nil {
		return nil, errs.Mark(err, ErrEventMalformed)
	}
	var charge omise.Charge
	if err := json.Unmarshal(raw, &charge); err != nil {
		return nil, errs.Mark(err, ErrEventMalformed)
	}

	bookingRaw, _ := charge.Metadata["booking_id"].(string)
	bookingID, err := uuid.Parse(bookingRaw)
	if err != nil {
		slog.Warn("charge event carries no usable booking id",
			"event_id", event.ID, "charge_id", charge.ID)
		return &commands.PaymentEvent{Type: commands.EventIgnored, EventID: event.ID}, nil
	}

	out := &commands.PaymentEvent{
		EventID:   event.ID,
		IntentID:  charge.ID,
		BookingID: bookingID,
		Amount:    charge.Amount,
	}
	switch string(charge.Status) {
	case "successful":
		out.Type = commands.EventPaymentSucceeded
	case "failed":
		out.Type = commands.EventPaymentFailed
	default:
		// pending / awaiting_authorize: the processor will emit a final
		// charge.complete later.
		out.Type = commands.EventIgnored
	}
	return out, nil
}

func chargeToIntent(charge *omise.Charge) *commands.IntentRef {
	return &commands.IntentRef{
		ID:       charge.ID,
		Amount:   charge.Amount,
		Currency: charge.Currency,
		Status:   string(charge.Status),
	}
}
