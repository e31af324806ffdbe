package mocks

import (
	"context"

	"github.com/cinex/cinema-ticket-service/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockSeatReserver struct {
	mock.Mock
	domain.SeatReserver
}

func (m *MockSeatReserver) ReserveSeats(ctx context.Context, accountID int64, seatCount int) error {
	args := m.Called(ctx, accountID, seatCount)
	return args.Error(0)
}
