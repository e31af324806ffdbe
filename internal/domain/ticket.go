package domain

// TicketCategory is the closed set of ticket types that can be purchased.
type TicketCategory string

const (
	Adult  TicketCategory = "ADULT"
	Child  TicketCategory = "CHILD"
	Infant TicketCategory = "INFANT"
)

// Known reports whether the category is one of the recognized ticket types.
func (c TicketCategory) Known() bool {
	switch c {
	case Adult, Child, Infant:
		return true
	}

	return false
}

// LineItem is one (category, count) pair of a purchase request.
type LineItem struct {
	Category TicketCategory
	Count    int
}

// CategoryTotals holds the aggregated ticket counts of one order. Using a
// fixed field per category keeps the category set closed: adding a category
// forces every rule that reads the totals to be revisited.
type CategoryTotals struct {
	Adult  int
	Child  int
	Infant int
}

// AggregateTotals sums line items into per-category totals in a single pass.
// Unrecognized categories are ignored; structural validation rejects them
// before aggregation matters.
func AggregateTotals(items []LineItem) CategoryTotals {
	var totals CategoryTotals

	for _, item := range items {
		switch item.Category {
		case Adult:
			totals.Adult += item.Count
		case Child:
			totals.Child += item.Count
		case Infant:
			totals.Infant += item.Count
		}
	}

	return totals
}

// Total returns the overall ticket count of the order.
func (t CategoryTotals) Total() int {
	return t.Adult + t.Child + t.Infant
}

// PricingTable maps a ticket category to its unit price. It is process-wide
// configuration; a missing mapping is a configuration defect, not a runtime
// error path.
type PricingTable map[TicketCategory]int

// DefaultPricingTable returns the standard rate table. Infants travel on an
// adult's lap and are free.
func DefaultPricingTable() PricingTable {
	return PricingTable{
		Adult:  25,
		Child:  15,
		Infant: 0,
	}
}

// Confirmation is returned to the caller after a successful purchase.
type Confirmation struct {
	Message       string
	TransactionID string
}
