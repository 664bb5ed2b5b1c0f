package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"booking-backend/config"
	"booking-backend/controllers"
	"booking-backend/events"
	"booking-backend/repositories"
	"booking-backend/routes"
	"booking-backend/services"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	cfg := config.Load()

	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Database connect failed: %v", err)
	}
	log.Printf("✅ Database connection established (%s) and migrations applied.", cfg.DBDriver)

	if cfg.SeedDemo {
		if err := config.SeedDatabase(db); err != nil {
			log.Fatalf("❌ Demo seed failed: %v", err)
		}
	}

	// Repositories
	users := repositories.NewUserRepository(db)
	bookings := repositories.NewBookingRepository(db)
	properties := repositories.NewPropertyRepository(db)
	if cfg.PropertyCacheTTL > 0 {
		properties = repositories.NewCachedPropertyRepository(properties, cfg.PropertyCacheSize, cfg.PropertyCacheTTL)
	}

	// Booking events
	var publisher events.Publisher = events.NopPublisher{}
	if cfg.RabbitMQURL != "" {
		p, err := events.NewRabbitMQPublisher(cfg.RabbitMQURL, cfg.BookingEventsQueue)
		if err != nil {
			log.Printf("⚠️  RabbitMQ unavailable, booking events disabled: %v", err)
		} else {
			publisher = p
			log.Println("✅ Booking events publisher ready.")
		}
	}
	defer publisher.Close()

	// Services
	userService := services.NewUserService(users)
	propertyService := services.NewPropertyService(properties)
	bookingService := services.NewBookingService(bookings, properties, users, publisher)

	// Controllers
	propertyController := controllers.NewPropertyController(propertyService, bookingService)
	userController := controllers.NewUserController(userService)
	bookingController := controllers.NewBookingController(bookingService)

	router := routes.SetupRouter(propertyController, userController, bookingController, cfg.CorsOrigins)

	addr := ":" + cfg.Port
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("🚀 Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with timeout
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("⚠️  Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("❌ Server forced to shutdown: %v", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
	log.Println("✅ Server stopped gracefully")
}
