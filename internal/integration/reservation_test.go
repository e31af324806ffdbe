package integration_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/cinex/cinema-ticket-service/internal/reservation"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

const cacheImageName = "redis:7"

type ReservationSuite struct {
	suite.Suite
	container *tcredis.RedisContainer
	client    *redis.Client
	reserver  *reservation.RedisReserver
}

func (s *ReservationSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tcredis.Run(ctx, cacheImageName)
	s.Require().NoError(err, "failed to start cache container")
	s.container = container

	host, err := container.Host(ctx)
	s.Require().NoError(err)

	port, err := container.MappedPort(ctx, "6379")
	s.Require().NoError(err)

	s.client = redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})

	s.Require().NoError(s.client.Ping(ctx).Err())

	s.reserver = reservation.NewRedisReserver(s.client)
}

func (s *ReservationSuite) TearDownSuite() {
	if s.client != nil {
		s.client.Close()
	}
	if s.container != nil {
		s.Require().NoError(testcontainers.TerminateContainer(s.container))
	}
}

func (s *ReservationSuite) SetupTest() {
	s.Require().NoError(s.client.FlushAll(context.Background()).Err())
}

func TestReservationSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}

	suite.Run(t, new(ReservationSuite))
}

func (s *ReservationSuite) TestReserveSeatsStoresHold() {
	ctx := context.Background()

	err := s.reserver.ReserveSeats(ctx, 42, 3)
	s.Require().NoError(err)

	val, err := s.client.Get(ctx, "seat_hold:42").Int()
	s.Require().NoError(err)
	s.Equal(3, val)

	ttl, err := s.client.TTL(ctx, "seat_hold:42").Result()
	s.Require().NoError(err)
	s.Greater(ttl, time.Duration(0), "hold must expire")
}

func (s *ReservationSuite) TestReserveSeatsOverwritesPreviousHold() {
	ctx := context.Background()

	s.Require().NoError(s.reserver.ReserveSeats(ctx, 42, 3))
	s.Require().NoError(s.reserver.ReserveSeats(ctx, 42, 5))

	val, err := s.client.Get(ctx, "seat_hold:42").Int()
	s.Require().NoError(err)
	s.Equal(5, val)
}

func (s *ReservationSuite) TestHoldsAreScopedPerAccount() {
	ctx := context.Background()

	s.Require().NoError(s.reserver.ReserveSeats(ctx, 1, 2))
	s.Require().NoError(s.reserver.ReserveSeats(ctx, 2, 4))

	first, err := s.client.Get(ctx, "seat_hold:1").Int()
	s.Require().NoError(err)
	s.Equal(2, first)

	second, err := s.client.Get(ctx, "seat_hold:2").Int()
	s.Require().NoError(err)
	s.Equal(4, second)
}
