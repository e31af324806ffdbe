package payment

import (
	"context"
	"fmt"
	"sync"

	"github.com/cinex/cinema-ticket-service/internal/domain"
)

// InMemoryProcessor accepts every well-formed payment and records it. It is
// wired in when no Stripe key is configured, so the service can run locally
// without charging anyone.
type InMemoryProcessor struct {
	mu       sync.Mutex
	payments []Record
}

type Record struct {
	AccountID int64
	Amount    int
}

func NewInMemoryProcessor() *InMemoryProcessor {
	return &InMemoryProcessor{}
}

func (p *InMemoryProcessor) MakePayment(ctx context.Context, accountID int64, amount int) error {
	if accountID <= 0 {
		return fmt.Errorf("account id must be positive, got %d: %w", accountID, domain.ErrInvalidInput)
	}

	if amount <= 0 {
		return fmt.Errorf("amount must be positive, got %d: %w", amount, domain.ErrInvalidInput)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.payments = append(p.payments, Record{AccountID: accountID, Amount: amount})

	return nil
}

// Payments returns a copy of everything charged so far.
func (p *InMemoryProcessor) Payments() []Record {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]Record, len(p.payments))
	copy(out, p.payments)

	return out
}
