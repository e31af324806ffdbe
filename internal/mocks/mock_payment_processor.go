package mocks

import (
	"context"

	"github.com/cinex/cinema-ticket-service/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockPaymentProcessor struct {
	mock.Mock
	domain.PaymentProcessor
}

func (m *MockPaymentProcessor) MakePayment(ctx context.Context, accountID int64, amount int) error {
	args := m.Called(ctx, accountID, amount)
	return args.Error(0)
}
