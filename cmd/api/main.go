package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/tripnest/tripnest-api/internal/http/handlers"
	sessionmw "github.com/tripnest/tripnest-api/internal/http/middleware"
	"github.com/tripnest/tripnest-api/internal/idempotency"
	"github.com/tripnest/tripnest-api/internal/mailer"
	"github.com/tripnest/tripnest-api/internal/repo/mongodb"
	"github.com/tripnest/tripnest-api/internal/samples"
	"github.com/tripnest/tripnest-api/internal/service"
	"github.com/tripnest/tripnest-api/pkg/config"
	"github.com/tripnest/tripnest-api/pkg/database"
	"github.com/tripnest/tripnest-api/pkg/events"
	"github.com/tripnest/tripnest-api/pkg/logger"
	mw "github.com/tripnest/tripnest-api/pkg/middleware"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	// Connect to MongoDB
	ctx := context.Background()
	client, err := database.Connect(ctx, cfg.Mongo.URI)
	if err != nil {
		logger.Error("Failed to connect to MongoDB", "error", err)
		os.Exit(1)
	}
	defer client.Disconnect(context.Background())
	db := client.Database(cfg.Mongo.Database)

	// Connect to event bus
	var eventBus events.EventBus
	if cfg.NATS.URL != "" {
		natsBus, err := events.NewNATSEventBus(cfg.NATS.URL)
		if err != nil {
			logger.Error("Failed to connect to NATS", "error", err)
			os.Exit(1)
		}
		defer natsBus.Close()
		eventBus = natsBus
	} else {
		eventBus = events.NoopEventBus{}
	}

	// Redis backs idempotent booking creation
	redisOpts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		logger.Error("Invalid Redis URL", "error", err)
		os.Exit(1)
	}
	redisClient := redis.NewClient(redisOpts)
	defer redisClient.Close()
	idemStore := idempotency.NewRedisStore(redisClient)

	// Initialize repositories
	bookingRepo := mongodb.NewBookingRepository(db)
	userRepo := mongodb.NewUserRepository(db)
	catalogRepo := mongodb.NewCatalogRepository(db)

	// Initialize services
	mail := mailer.New(cfg.Email)
	searchService := service.NewSearchService(catalogRepo, samples.NewDemo())
	bookingService := service.NewBookingService(bookingRepo, eventBus, mail)
	profileService := service.NewProfileService(userRepo)

	// Initialize handlers
	h := handlers.New(searchService, bookingService, profileService)

	// Setup router
	r := chi.NewRouter()

	// Middleware
	r.Use(mw.RequestID)
	r.Use(mw.ServiceName("api"))
	r.Use(mw.Logging)
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.ErrorContext(req.Context(), "Panic recovered", "error", rec)
					http.Error(w, "Internal server error", http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, req)
		})
	})
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:3000", "*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "Idempotency-Key"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(mw.Health)

	requireSession := sessionmw.RequireSession(cfg.Auth.SessionSecret)

	// Routes
	r.Route("/api", func(r chi.Router) {
		// Public search endpoints
		r.Post("/flights/search", h.SearchFlights)
		r.Post("/cars/search", h.SearchCars)
		r.Post("/hotels/search", h.SearchHotels)
		r.Post("/guides/search", h.SearchGuides)
		r.Get("/guides/{id}", h.GetGuide)

		// Identity-scoped endpoints
		r.Route("/bookings", func(r chi.Router) {
			r.Use(requireSession)
			r.With(mw.Idempotency(idemStore)).Post("/", h.CreateBooking)
			r.Get("/", h.ListBookings)
		})
		r.Route("/user", func(r chi.Router) {
			r.Use(requireSession)
			r.Get("/profile", h.GetProfile)
			r.Put("/profile", h.UpdateProfile)
		})
	})

	// Start server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info("Shutting down API server...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("API server shutdown error", "error", err)
		}
	}()

	logger.Info("Starting API server", "port", cfg.Server.Port)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("API server error", "error", err)
		os.Exit(1)
	}
}
