package ticketing

import (
	"fmt"

	"github.com/cinex/cinema-ticket-service/internal/domain"
)

// Config is the static configuration of the purchase rules.
type Config struct {
	// OrderLimit is the maximum total number of tickets in one order.
	OrderLimit int
	// Pricing maps each ticket category to its unit price.
	Pricing domain.PricingTable
}

// DefaultConfig returns the standard rule set: at most 25 tickets per order
// at the default rate table.
func DefaultConfig() Config {
	return Config{
		OrderLimit: 25,
		Pricing:    domain.DefaultPricingTable(),
	}
}

// validate runs the business checks over a purchase request in a fixed
// order; the first failing check wins and the rest are skipped, so error
// precedence is stable under test. The adult-requirement and infant-capacity
// rules apply to the aggregated totals of the order, not to individual line
// items.
func validate(txID string, accountID int64, items []domain.LineItem, cfg Config) *PurchaseError {
	if accountID <= 0 {
		return newValidationError(MalformedRequest, txID, "account id must be a positive integer")
	}

	if len(items) == 0 {
		return newValidationError(MalformedRequest, txID, "at least one ticket line is required")
	}

	for _, item := range items {
		if !item.Category.Known() {
			return newValidationError(MalformedRequest, txID,
				fmt.Sprintf("unrecognized ticket category %q", string(item.Category)))
		}

		if item.Count < 0 {
			return newValidationError(MalformedRequest, txID,
				fmt.Sprintf("ticket count for category %s cannot be negative", item.Category))
		}
	}

	seen := make(map[domain.TicketCategory]bool, len(items))
	for _, item := range items {
		if seen[item.Category] {
			return newValidationError(DuplicateCategory, txID,
				fmt.Sprintf("ticket category %s appears more than once", item.Category))
		}

		seen[item.Category] = true
	}

	totals := domain.AggregateTotals(items)

	total := totals.Total()
	if total < 1 {
		return newValidationError(BelowMinimumTickets, txID, "at least one ticket must be purchased")
	}
	if total > cfg.OrderLimit {
		return newValidationError(ExceedsOrderLimit, txID,
			fmt.Sprintf("cannot purchase more than %d tickets in one order", cfg.OrderLimit))
	}

	if (totals.Child > 0 || totals.Infant > 0) && totals.Adult == 0 {
		return newValidationError(AdultRequired, txID,
			"child and infant tickets require at least one adult ticket")
	}

	// Each infant occupies an adult's lap, one-to-one.
	if totals.Infant > totals.Adult {
		return newValidationError(TooManyInfants, txID,
			"infant tickets cannot exceed adult tickets")
	}

	return nil
}
