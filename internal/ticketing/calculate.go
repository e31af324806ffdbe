package ticketing

import "github.com/cinex/cinema-ticket-service/internal/domain"

// TotalCost returns the price of the order: the sum of count times unit
// price over all line items. Inputs are assumed validated; a category
// missing from the pricing table is a configuration defect and prices at
// zero rather than failing.
func TotalCost(items []domain.LineItem, pricing domain.PricingTable) int {
	cost := 0

	for _, item := range items {
		cost += pricing[item.Category] * item.Count
	}

	return cost
}

// TotalSeats returns the number of physical seats the order needs. Infants
// sit on an adult's lap and do not occupy a seat.
func TotalSeats(items []domain.LineItem) int {
	seats := 0

	for _, item := range items {
		if item.Category == domain.Infant {
			continue
		}

		seats += item.Count
	}

	return seats
}
