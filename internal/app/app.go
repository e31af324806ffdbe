package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/cinex/cinema-ticket-service/internal/domain"
	"github.com/cinex/cinema-ticket-service/internal/mailer"
	"github.com/cinex/cinema-ticket-service/internal/payment"
	"github.com/cinex/cinema-ticket-service/internal/reservation"
	"github.com/cinex/cinema-ticket-service/internal/ticketing"
	"github.com/cinex/cinema-ticket-service/internal/txid"
	appvalidator "github.com/cinex/cinema-ticket-service/internal/validator"
	"github.com/cinex/cinema-ticket-service/internal/vcs"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stripe/stripe-go/v82"
	"go.opentelemetry.io/otel/metric"
)

var (
	version = vcs.Version()
)

type Application struct {
	config    config
	logger    *slog.Logger
	validator *validator.Validate
	mailer    mailer.Mailer
	purchases *ticketing.Service

	purchasesTotal metric.Int64Counter

	wg sync.WaitGroup
}

type config struct {
	port       int
	env        string
	machineID  int64
	orderLimit int
	redis      struct {
		url          string
		maxOpenConns int
		maxIdleConns int
		maxIdleTime  time.Duration
	}
	stripe struct {
		secretKey string
	}
	smtp struct {
		host     string
		port     int
		username string
		password string
		sender   string
	}
	otelCollectorUrl string
}

func Run() error {
	var cfg config

	flag.IntVar(&cfg.port, "port", 3000, "server port")
	flag.StringVar(&cfg.env, "env", "dev", "Environment (dev|staging|prod)")

	flag.Int64Var(&cfg.machineID, "machine-id", 1, "Machine id of the transaction id generator (10-bit)")
	flag.IntVar(&cfg.orderLimit, "order-limit", 25, "Maximum tickets per order")

	flag.StringVar(&cfg.redis.url, "redis-url", "", "Redis URL")
	flag.IntVar(&cfg.redis.maxOpenConns, "redis-max-open-conns", 25, "Redis max open connections")
	flag.IntVar(&cfg.redis.maxIdleConns, "redis-max-idle-conns", 10, "Redis max idle connections")
	flag.DurationVar(&cfg.redis.maxIdleTime, "redis-max-idle-time", 2*time.Minute, "Redis max idle time for connections")

	flag.StringVar(&cfg.stripe.secretKey, "stripe-key", "", "Stripe secret key")

	flag.StringVar(&cfg.smtp.host, "smtp-host", "sandbox.smtp.mailtrap.io", "SMTP host")
	flag.IntVar(&cfg.smtp.port, "smtp-port", 2525, "SMTP port")
	flag.StringVar(&cfg.smtp.username, "smtp-username", "", "SMTP username")
	flag.StringVar(&cfg.smtp.password, "smtp-password", "", "SMTP password")
	flag.StringVar(&cfg.smtp.sender, "smtp-sender", "CineX <no-reply@cinex.example.com>", "SMTP sender")

	flag.StringVar(&cfg.otelCollectorUrl, "otel-collector-url", "", "OpenTelemetry collector URL")

	displayVersion := flag.Bool("version", false, "Display version and exit")

	flag.Parse()

	if *displayVersion {
		fmt.Printf("Version:\t%s\n", version)
		os.Exit(0)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	app := &Application{
		config:    cfg,
		logger:    logger,
		validator: appvalidator.NewValidator(),
		mailer:    mailer.NewSMTPMailer(cfg.smtp.host, cfg.smtp.port, cfg.smtp.username, cfg.smtp.password, cfg.smtp.sender),
	}

	shutdownTelemetry, err := app.InitTelemetry()
	if err != nil {
		return err
	}
	defer shutdownTelemetry(context.Background())

	err = app.initMetrics()
	if err != nil {
		return err
	}

	redisClient, err := newRedisClient(cfg)
	if err != nil {
		return err
	}
	defer redisClient.Close()

	stripe.Key = cfg.stripe.secretKey

	var processor domain.PaymentProcessor = payment.NewStripeProcessor()
	if cfg.stripe.secretKey == "" {
		app.logger.Warn("no stripe key configured, payments are recorded in memory only")
		processor = payment.NewInMemoryProcessor()
	}

	app.purchases = ticketing.NewService(
		app.logger,
		txid.NewGenerator(cfg.machineID),
		reservation.NewRedisReserver(redisClient),
		processor,
		ticketing.Config{
			OrderLimit: cfg.orderLimit,
			Pricing:    domain.DefaultPricingTable(),
		},
	)

	return app.run()
}

func newRedisClient(cfg config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:            cfg.redis.url,
		MaxIdleConns:    cfg.redis.maxIdleConns,
		MaxActiveConns:  cfg.redis.maxOpenConns,
		ConnMaxIdleTime: cfg.redis.maxIdleTime,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := rdb.Ping(ctx).Err()
	if err != nil {
		return nil, err
	}

	err = redisotel.InstrumentTracing(rdb)
	if err != nil {
		return nil, err
	}

	err = redisotel.InstrumentMetrics(rdb)
	if err != nil {
		return nil, err
	}

	return rdb, nil
}

func (app *Application) run() error {
	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%d", app.config.port),
		Handler:      app.routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(app.logger.Handler(), slog.LevelDebug),
	}

	shutdownError := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		app.logger.Info("shutting down server", "signal", s.String())

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		err := srv.Shutdown(ctx)
		if err != nil {
			shutdownError <- err
			return
		}

		// Let in-flight receipt emails finish before exiting.
		app.wg.Wait()

		shutdownError <- nil
	}()

	app.logger.Info("starting server", "addr", srv.Addr, "env", app.config.env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdownError
	if err != nil {
		return err
	}

	app.logger.Info("stopped server", "addr", srv.Addr)

	return nil
}

func (app *Application) routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(app.notFoundResponse)

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(app.recoverPanic)
	r.Use(app.requestScopedLogger)

	r.Get("/health", app.GetHealth)

	r.Route("/purchases", func(r chi.Router) {
		r.Post("/", app.PurchaseTicketsHandler)
	})

	return r
}

// background runs fn on its own goroutine, tracked so shutdown can wait for
// it, with panics contained.
func (app *Application) background(fn func()) {
	app.wg.Add(1)

	go func() {
		defer app.wg.Done()

		defer func() {
			if err := recover(); err != nil {
				app.logger.Error("panic in background task", "panic", err)
			}
		}()

		fn()
	}()
}
