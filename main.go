package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shuttlebook/internal/config"
	api "shuttlebook/internal/http"
	"shuttlebook/internal/http/handlers"
	"shuttlebook/internal/services"
	"shuttlebook/internal/store"
	"shuttlebook/internal/store/memstore"
	"shuttlebook/internal/store/mysqlstore"
)

func main() {
	env := config.LoadEnv()

	var (
		st store.Store
		db *sql.DB
	)
	switch env.StoreDriver {
	case "memory":
		st = memstore.New()
		log.Println("Using in-memory store")
	default:
		conn, err := config.ConnectDB(env)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		db = conn
		defer db.Close()

		mysql := mysqlstore.New(db)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := mysql.EnsureSchema(ctx); err != nil {
			cancel()
			log.Fatalf("Failed to ensure schema: %v", err)
		}
		cancel()
		st = mysql
	}

	trips := services.TripService{Store: st}
	bookings := &services.BookingService{Store: st, Trips: trips}
	h := &handlers.API{
		Store:     st,
		DB:        db,
		Trips:     trips,
		Bookings:  bookings,
		Manifests: services.ManifestService{Store: st},
		Payments:  services.PaymentService{Store: st, Provider: services.StubProvider{}},
		JWTSecret: []byte(env.JWTSecret),
	}

	r := api.NewRouter(env, h)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("Server listening on %s", env.AppAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}

	log.Println("Server stopped cleanly.")
}
