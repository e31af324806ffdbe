// Package ticketing implements the purchase orchestration: request
// validation, cost and seat calculation, and the reserve-then-pay
// coordination of the external collaborators.
package ticketing

import (
	"context"
	"errors"
	"log/slog"

	"github.com/cinex/cinema-ticket-service/internal/domain"
	"github.com/cinex/cinema-ticket-service/internal/txid"
)

// ConfirmationMessage is the fixed success text of a confirmed purchase.
const ConfirmationMessage = "Thank you for your purchase! Enjoy the movie."

// Service coordinates a ticket purchase end to end. Seats are reserved
// before payment is taken: the system must not accept money for a purchase
// it cannot physically honor with a seat.
type Service struct {
	logger   *slog.Logger
	ids      *txid.Generator
	seats    domain.SeatReserver
	payments domain.PaymentProcessor
	cfg      Config
}

func NewService(
	logger *slog.Logger,
	ids *txid.Generator,
	seats domain.SeatReserver,
	payments domain.PaymentProcessor,
	cfg Config) *Service {

	return &Service{
		logger:   logger,
		ids:      ids,
		seats:    seats,
		payments: payments,
		cfg:      cfg,
	}
}

// Config returns the rule set the service validates against.
func (s *Service) Config() Config {
	return s.cfg
}

// PurchaseTickets validates the request, reserves seating, takes payment,
// and returns a confirmation carrying the transaction id assigned to this
// attempt. On failure it returns a *PurchaseError carrying the same id.
// Each invocation runs to completion; there are no retries, and a failed
// payment does not release the already-made seat reservation.
func (s *Service) PurchaseTickets(
	ctx context.Context,
	accountID int64,
	items ...domain.LineItem) (*domain.Confirmation, error) {

	transactionID := s.ids.Generate()
	logger := s.logger.With("transaction_id", transactionID)

	if purchaseErr := validate(transactionID, accountID, items, s.cfg); purchaseErr != nil {
		logger.Warn("purchase rejected",
			"kind", purchaseErr.Kind.String(),
			"reason", purchaseErr.Reason,
		)

		return nil, purchaseErr
	}

	seatCount := TotalSeats(items)

	err := s.seats.ReserveSeats(ctx, accountID, seatCount)
	if err != nil {
		logger.Error("seat reservation failed", "error", err, "seats", seatCount)

		if errors.Is(err, domain.ErrInvalidInput) {
			return nil, &PurchaseError{
				Kind:          SeatReservationRejectedInput,
				TransactionID: transactionID,
				Reason:        "seat reservation rejected the request as invalid",
				Err:           err,
			}
		}

		return nil, &PurchaseError{
			Kind:          SeatReservationFailed,
			TransactionID: transactionID,
			Reason:        "seat reservation is currently unavailable",
			Err:           err,
		}
	}

	amount := TotalCost(items, s.cfg.Pricing)

	err = s.payments.MakePayment(ctx, accountID, amount)
	if err != nil {
		// The seat reservation is deliberately left in place: rollback
		// and retry are out of scope for a single transaction.
		logger.Error("payment failed after seats were reserved", "error", err, "amount", amount)

		if errors.Is(err, domain.ErrInvalidInput) {
			return nil, &PurchaseError{
				Kind:          PaymentRejectedInput,
				TransactionID: transactionID,
				Reason:        "payment rejected the request as invalid",
				Err:           err,
			}
		}

		return nil, &PurchaseError{
			Kind:          PaymentFailed,
			TransactionID: transactionID,
			Reason:        "payment could not be completed",
			Err:           err,
		}
	}

	logger.Info("purchase confirmed",
		"account_id", accountID,
		"seats", seatCount,
		"amount", amount,
	)

	return &domain.Confirmation{
		Message:       ConfirmationMessage,
		TransactionID: transactionID,
	}, nil
}
