// cmd/server/main.go
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"github.com/garageline/garage-mock-backend/internal/config"
	"github.com/garageline/garage-mock-backend/internal/controller"
	"github.com/garageline/garage-mock-backend/internal/fixture"
	"github.com/garageline/garage-mock-backend/internal/repository"
	"github.com/garageline/garage-mock-backend/internal/service"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, relying on OS environment variables")
	}

	cfg := config.Load()

	// Load fixture tables once; they are immutable for the process lifetime.
	store, err := fixture.Load(cfg.FixtureDir)
	if err != nil {
		log.Fatalf("failed to load fixtures: %v", err)
	}
	log.Println("✅ Fixture tables loaded")

	bookingRepo := repository.NewBookingRepository()

	lookupController := &controller.LookupController{
		CustomerService: &service.CustomerLookupService{Store: store},
		TireService:     &service.TireInventoryService{Store: store},
		EstimateService: &service.ServiceEstimateService{Store: store},
	}
	adminController := &controller.AdminController{
		BookingRepo: bookingRepo,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	// Mock API routes
	r.Post("/api/customer-lookup", lookupController.CustomerLookup)
	r.Post("/api/tire-inventory", lookupController.TireInventory)
	r.Post("/api/service-estimate", lookupController.ServiceEstimate)
	r.Get("/api/admin/bookings", adminController.ListBookings)
	r.Delete("/api/admin/bookings", adminController.ClearBookings)
	r.Get("/", controller.Root)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		log.Println("🚀 Server running on :" + cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("graceful shutdown failed: %v", err)
	}
	log.Println("server stopped")
}
