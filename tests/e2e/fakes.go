//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"sync"
	"time"

	"cleansched/internal/pkg/errs"
	"cleansched/internal/usecase/commands"

	"github.com/google/uuid"
)

// FakePaymentGateway stands in for the payment processor. Tests register
// events up front; VerifyEvent then behaves like the processor's event
// retrieval API, including the not-found case for unregistered ids.
type FakePaymentGateway struct {
	mu      sync.Mutex
	counter int
	events  map[string]commands.PaymentEvent
	intents map[string]commands.IntentRef
}

func NewFakePaymentGateway() *FakePaymentGateway {
	g := &FakePaymentGateway{}
	g.Reset()
	return g
}

func (g *FakePaymentGateway) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.counter = 0
	g.events = make(map[string]commands.PaymentEvent)
	g.intents = make(map[string]commands.IntentRef)
}

// RegisterEvent makes an event retrievable by VerifyEvent, as if the
// processor had emitted it.
func (g *FakePaymentGateway) RegisterEvent(event commands.PaymentEvent) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.events[event.EventID] = event
}

func (g *FakePaymentGateway) CreateIntent(_ context.Context, bookingID uuid.UUID, amount int64) (*commands.IntentRef, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.counter++
	ref := commands.IntentRef{
		ID:       fmt.Sprintf("chrg_test_%d_%s", g.counter, bookingID.String()[:8]),
		Amount:   amount,
		Currency: "thb",
		Status:   "pending",
	}
	g.intents[ref.ID] = ref
	return &ref, nil
}

func (g *FakePaymentGateway) RetrieveIntent(_ context.Context, intentID string) (*commands.IntentRef, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	ref, ok := g.intents[intentID]
	if !ok {
		return nil, errs.New("intent not found: " + intentID)
	}
	return &ref, nil
}

func (g *FakePaymentGateway) VerifyEvent(_ context.Context, eventID string) (*commands.PaymentEvent, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	event, ok := g.events[eventID]
	if !ok {
		return nil, errs.New("event not found: " + eventID)
	}
	return &event, nil
}

// RecordingNotifier captures notifications instead of publishing to a
// broker, so tests can assert on what would have been mailed.
type RecordingNotifier struct {
	mu    sync.Mutex
	calls []NotifierCall
}

type NotifierCall struct {
	Kind      string
	Email     string
	BookingID uuid.UUID
	Date      time.Time
	Amount    int64
}

func NewRecordingNotifier() *RecordingNotifier {
	return &RecordingNotifier{}
}

func (n *RecordingNotifier) Reset() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.calls = nil
}

func (n *RecordingNotifier) Calls() []NotifierCall {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]NotifierCall, len(n.calls))
	copy(out, n.calls)
	return out
}

func (n *RecordingNotifier) CallsOfKind(kind string) []NotifierCall {
	var out []NotifierCall
	for _, c := range n.Calls() {
		if c.Kind == kind {
			out = append(out, c)
		}
	}
	return out
}

func (n *RecordingNotifier) record(call NotifierCall) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.calls = append(n.calls, call)
}

func (n *RecordingNotifier) BookingServed(_ context.Context, email string, bookingID uuid.UUID) {
	n.record(NotifierCall{Kind: "booking_served", Email: email, BookingID: bookingID})
}

func (n *RecordingNotifier) BookingRescheduled(_ context.Context, email string, bookingID uuid.UUID, date time.Time) {
	n.record(NotifierCall{Kind: "booking_rescheduled", Email: email, BookingID: bookingID, Date: date})
}

func (n *RecordingNotifier) PaymentCompleted(_ context.Context, email string, bookingID uuid.UUID, amount int64) {
	n.record(NotifierCall{Kind: "payment_completed", Email: email, BookingID: bookingID, Amount: amount})
}
