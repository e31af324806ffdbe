package ticketing

// ErrorKind identifies which rule or collaborator rejected a purchase.
type ErrorKind int

const (
	MalformedRequest ErrorKind = iota + 1
	DuplicateCategory
	BelowMinimumTickets
	ExceedsOrderLimit
	AdultRequired
	TooManyInfants
	SeatReservationFailed
	SeatReservationRejectedInput
	PaymentFailed
	PaymentRejectedInput
)

func (k ErrorKind) String() string {
	switch k {
	case MalformedRequest:
		return "malformed_request"
	case DuplicateCategory:
		return "duplicate_category"
	case BelowMinimumTickets:
		return "below_minimum_tickets"
	case ExceedsOrderLimit:
		return "exceeds_order_limit"
	case AdultRequired:
		return "adult_required"
	case TooManyInfants:
		return "too_many_infants"
	case SeatReservationFailed:
		return "seat_reservation_failed"
	case SeatReservationRejectedInput:
		return "seat_reservation_rejected_input"
	case PaymentFailed:
		return "payment_failed"
	case PaymentRejectedInput:
		return "payment_rejected_input"
	}

	return "unknown"
}

// PurchaseError is the only error type PurchaseTickets returns. It carries
// the transaction id assigned to the attempt, so failures can be correlated
// with logs, and a human-readable reason safe to surface to callers.
type PurchaseError struct {
	Kind          ErrorKind
	TransactionID string
	Reason        string
	Err           error
}

func (e *PurchaseError) Error() string {
	return e.Reason
}

func (e *PurchaseError) Unwrap() error {
	return e.Err
}

// CallerInput reports whether the failure is a caller-input-class error, as
// opposed to a business-rule rejection or a collaborator failure.
func (e *PurchaseError) CallerInput() bool {
	return e.Kind == MalformedRequest
}

func newValidationError(kind ErrorKind, txID, reason string) *PurchaseError {
	return &PurchaseError{Kind: kind, TransactionID: txID, Reason: reason}
}
