package app

import (
	"context"
	"errors"
	"net/http"

	"github.com/cinex/cinema-ticket-service/api"
	"github.com/cinex/cinema-ticket-service/internal/domain"
	"github.com/cinex/cinema-ticket-service/internal/ticketing"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// PurchaseTicketsHandler is the single entry point of the purchase flow:
// decode, validate the shape, hand over to the orchestrator, and map its
// error taxonomy onto HTTP statuses.
func (app *Application) PurchaseTicketsHandler(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	var input api.PurchaseRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	items := toLineItems(input.Tickets)

	confirmation, err := app.purchases.PurchaseTickets(r.Context(), input.AccountID, items...)
	if err != nil {
		app.recordPurchase(r.Context(), "rejected")

		var purchaseErr *ticketing.PurchaseError
		if !errors.As(err, &purchaseErr) {
			app.serverErrorResponse(w, r, err)
			return
		}

		logger.Warn("purchase failed",
			"transaction_id", purchaseErr.TransactionID,
			"kind", purchaseErr.Kind.String(),
		)

		switch purchaseErr.Kind {
		case ticketing.MalformedRequest:
			app.badRequestResponse(w, r, purchaseErr)
		case ticketing.SeatReservationFailed, ticketing.PaymentFailed:
			app.collaboratorUnavailableResponse(w, r, purchaseErr.Reason)
		case ticketing.SeatReservationRejectedInput, ticketing.PaymentRejectedInput:
			// A collaborator rejected arguments we produced: a defect on
			// our side, not a caller or business condition.
			app.serverErrorResponse(w, r, purchaseErr)
		default:
			app.purchaseRejectedResponse(w, r, purchaseErr.Reason)
		}

		return
	}

	app.recordPurchase(r.Context(), "confirmed")

	totalAmount := ticketing.TotalCost(items, app.purchases.Config().Pricing)
	totalSeats := ticketing.TotalSeats(items)

	if input.Email != nil {
		app.sendReceipt(r, *input.Email, confirmation.TransactionID, input.Tickets, totalAmount, totalSeats)
	}

	resp := api.PurchaseResponse{
		Message:       confirmation.Message,
		TransactionID: confirmation.TransactionID,
		TotalAmount:   totalAmount,
		TotalSeats:    totalSeats,
	}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) sendReceipt(
	r *http.Request,
	email, transactionID string,
	tickets []api.TicketLine,
	totalAmount, totalSeats int) {

	logger := app.contextGetLogger(r).With("transaction_id", transactionID)

	app.background(func() {
		data := map[string]any{
			"transactionID": transactionID,
			"totalAmount":   totalAmount,
			"totalSeats":    totalSeats,
			"tickets":       tickets,
		}

		err := app.mailer.Send(email, "purchase_receipt.tmpl", data)
		if err != nil {
			logger.Error("failed to send receipt email", "error", err)
		} else {
			logger.Info("receipt email sent")
		}
	})
}

func (app *Application) recordPurchase(ctx context.Context, outcome string) {
	if app.purchasesTotal == nil {
		return
	}

	app.purchasesTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}

func toLineItems(tickets []api.TicketLine) []domain.LineItem {
	items := make([]domain.LineItem, len(tickets))

	for i, t := range tickets {
		items[i] = domain.LineItem{
			Category: domain.TicketCategory(t.Category),
			Count:    t.Count,
		}
	}

	return items
}
