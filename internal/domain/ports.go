package domain

import "context"

// SeatReserver reserves physical seats for an account. Implementations wrap
// ErrInvalidInput when the call itself was malformed; any other error is an
// operational failure of the reservation backend.
type SeatReserver interface {
	ReserveSeats(ctx context.Context, accountID int64, seatCount int) error
}

// PaymentProcessor charges an account for the given amount. The same error
// classification contract as SeatReserver applies.
type PaymentProcessor interface {
	MakePayment(ctx context.Context, accountID int64, amount int) error
}
