package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/scarr-eth/spree-event-booker/internal/app"
	"github.com/scarr-eth/spree-event-booker/internal/catalog"
	"github.com/scarr-eth/spree-event-booker/internal/clock"
	"github.com/scarr-eth/spree-event-booker/internal/config"
	"github.com/scarr-eth/spree-event-booker/internal/kv"
	"github.com/scarr-eth/spree-event-booker/internal/ledger"
	"github.com/scarr-eth/spree-event-booker/internal/session"
	"github.com/scarr-eth/spree-event-booker/internal/storage/postgres"
	transporthttp "github.com/scarr-eth/spree-event-booker/internal/transport/http"
	"github.com/scarr-eth/spree-event-booker/migrations"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logger := log.Default()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	startupCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	store, cleanup, err := openStore(startupCtx, cfg, logger)
	if err != nil {
		log.Fatalf("open store: %v", err)
	}
	defer cleanup()

	cat := catalog.New(catalog.Seed())
	holder := session.NewHolder(kv.NewMemStore())
	bookLedger := ledger.New(store)

	bookingSvc := app.NewBookingService(cat, bookLedger, holder)
	creationSvc := app.NewCreationService(store, clock.NewSystem())

	mux := http.NewServeMux()
	mux.HandleFunc("/health", transporthttp.HealthHandler)
	mux.Handle("/events", transporthttp.HandleListEvents(cat))
	mux.Handle("/events/", transporthttp.HandleBookEvent(bookingSvc))
	mux.Handle("/categories", transporthttp.HandleListCategories(cat))
	mux.Handle("/bookings", transporthttp.HandleListBookings(bookingSvc))
	mux.Handle("/session", transporthttp.HandleSession(holder))
	mux.Handle("/created-events", transporthttp.HandleCreatedEvents(creationSvc))
	mux.Handle("/", transporthttp.NotFoundHandler())

	handler := transporthttp.RequestLogger(
		transporthttp.RequestID(transporthttp.CORS(cfg.Origins(), mux)),
		logger,
	)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: handler,
	}

	log.Printf("api listening on :%s", cfg.Port)

	srvErr := make(chan error, 1)
	go func() {
		srvErr <- server.ListenAndServe()
	}()

	stopCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-srvErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("server error: %v", err)
		}
	case <-stopCtx.Done():
		log.Printf("shutdown signal received, stopping server")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Printf("server shutdown error: %v", err)
	}
	log.Printf("server stopped")
}

// openStore picks the persistent store backend: Postgres when DATABASE_URL
// is set, a local file store otherwise.
func openStore(ctx context.Context, cfg *config.Config, logger *log.Logger) (kv.Store, func(), error) {
	if !cfg.UsePostgres() {
		logger.Printf("WARN: DATABASE_URL not set, persisting to %s", cfg.DataDir)
		store, err := kv.NewFileStore(cfg.DataDir)
		if err != nil {
			return nil, nil, err
		}
		return store, func() {}, nil
	}

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, err
	}
	if err := migrations.Apply(ctx, pool); err != nil {
		pool.Close()
		return nil, nil, err
	}
	return postgres.NewKVStore(pool), pool.Close, nil
}
