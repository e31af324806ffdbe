// Package reservation provides the seat-reservation collaborator backed by
// Redis. A reservation is a per-account hold key with a TTL; the box office
// confirms holds out of band before they expire.
package reservation

import (
	"context"
	"fmt"
	"time"

	"github.com/cinex/cinema-ticket-service/internal/domain"
	"github.com/redis/go-redis/v9"
)

const defaultHoldTTL = 15 * time.Minute

type RedisReserver struct {
	client  redis.UniversalClient
	holdTTL time.Duration
}

func NewRedisReserver(client redis.UniversalClient) *RedisReserver {
	return &RedisReserver{
		client:  client,
		holdTTL: defaultHoldTTL,
	}
}

// ReserveSeats stores a seat hold for the account. Argument errors wrap
// domain.ErrInvalidInput; anything else is an operational failure of the
// reservation backend.
func (r *RedisReserver) ReserveSeats(ctx context.Context, accountID int64, seatCount int) error {
	if accountID <= 0 {
		return fmt.Errorf("account id must be positive, got %d: %w", accountID, domain.ErrInvalidInput)
	}

	if seatCount <= 0 {
		return fmt.Errorf("seat count must be positive, got %d: %w", seatCount, domain.ErrInvalidInput)
	}

	err := r.client.Set(ctx, seatHoldKey(accountID), seatCount, r.holdTTL).Err()
	if err != nil {
		return fmt.Errorf("failed to store seat hold: %w", err)
	}

	return nil
}

func seatHoldKey(accountID int64) string {
	return fmt.Sprintf("seat_hold:%d", accountID)
}
