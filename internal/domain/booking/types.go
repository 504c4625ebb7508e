package booking

// Status is the service-delivery lifecycle of a booking. It only moves
// forward: initiated → served → completed, or initiated → cancelled.
type Status string

const (
	StatusInitiated Status = "initiated"
	StatusServed    Status = "served"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

// IsTerminal reports whether no further delivery transition is defined.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// PaymentStatus is the financial lifecycle, orthogonal to delivery.
// pending → completed is one-way; a completed payment is never reverted.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
)

func (s PaymentStatus) String() string {
	return string(s)
}
