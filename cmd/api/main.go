package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"

	"github.com/CodyBrat/PlayNxt/internal/adapter/auth"
	"github.com/CodyBrat/PlayNxt/internal/adapter/cache"
	"github.com/CodyBrat/PlayNxt/internal/adapter/events"
	"github.com/CodyBrat/PlayNxt/internal/adapter/handler"
	"github.com/CodyBrat/PlayNxt/internal/adapter/repository/memory"
	"github.com/CodyBrat/PlayNxt/internal/adapter/repository/postgres"
	"github.com/CodyBrat/PlayNxt/internal/core/ports"
	"github.com/CodyBrat/PlayNxt/internal/core/services"
	"github.com/CodyBrat/PlayNxt/internal/platform/config"
	"github.com/CodyBrat/PlayNxt/internal/platform/database"
	"github.com/CodyBrat/PlayNxt/internal/platform/logger"
)

type repositories struct {
	users    ports.UserRepository
	venues   ports.VenueRepository
	bookings ports.BookingRepository
}

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Format)
	gin.SetMode(cfg.Server.Mode)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repos, db := openStorage(ctx, cfg, log)
	if db != nil {
		defer db.Close()
	}

	var venueCache ports.VenueCache = cache.Nop{}
	if cfg.Redis.Enabled {
		client, err := cache.NewRedisClient(ctx, cache.RedisConfig{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			log.WithError(err).Warn("Redis unavailable, venue cache disabled")
		} else {
			defer client.Close()
			venueCache = cache.NewVenueCache(client, cfg.Redis.VenueTTL)
			log.WithField("addr", cfg.Redis.Addr).Info("Redis connected")
		}
	}

	var publisher ports.EventPublisher = events.Nop{}
	if cfg.AMQP.Enabled {
		p, err := events.NewPublisher(cfg.AMQP.URL, cfg.AMQP.Exchange)
		if err != nil {
			log.WithError(err).Warn("RabbitMQ unavailable, booking events disabled")
		} else {
			defer p.Close()
			publisher = p
			log.WithField("exchange", cfg.AMQP.Exchange).Info("RabbitMQ connected")
		}
	}

	opts := []services.Option{services.WithLogger(log)}

	authService := services.NewAuthService(
		repos.users,
		auth.NewBcryptHasher(cfg.Auth.BcryptCost),
		auth.NewJWTIssuer(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.TokenTTL),
		append(opts, services.WithVenueCache(venueCache))...,
	)
	catalogService := services.NewCatalogService(repos.venues, repos.bookings, venueCache, opts...)
	bookingService := services.NewBookingService(
		repos.venues,
		repos.bookings,
		services.NewRewardAccumulator(cfg.Booking.PointsPerBooking),
		publisher,
		opts...,
	)

	router := handler.NewRouter(handler.RouterConfig{
		Auth:           authService,
		Catalog:        catalogService,
		Bookings:       bookingService,
		Log:            log,
		AuthLimiter:    handler.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst),
		RequestTimeout: cfg.Server.RequestTimeout,
	})

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      corsHandler.Handler(router),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.WithField("addr", server.Addr).Info("Server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server startup failed: %v", err)
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Server forced to shutdown: %v", err)
		return
	}

	log.Info("Server exiting")
}

func openStorage(ctx context.Context, cfg *config.Config, log *logrus.Logger) (repositories, *sql.DB) {
	if cfg.Storage.Driver == "memory" {
		log.Warn("Using in-memory storage, data is lost on restart")
		store := memory.NewStore()
		return repositories{users: store.Users(), venues: store.Venues(), bookings: store.Bookings()}, nil
	}

	db, err := database.NewPostgresDB(ctx, database.Config{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		User:            cfg.Database.User,
		Password:        cfg.Database.Password,
		DBName:          cfg.Database.DBName,
		SSLMode:         cfg.Database.SSLMode,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnectRetries:  cfg.Database.ConnectRetries,
		RetryInterval:   cfg.Database.RetryInterval,
	}, log)
	if err != nil {
		log.Fatalf("Failed to connect to db after retries: %v", err)
	}

	if err := database.RunMigrations(ctx, db, log); err != nil {
		db.Close()
		log.Fatalf("Failed to run migrations: %v", err)
	}

	return repositories{
		users:    postgres.NewUserRepository(db),
		venues:   postgres.NewVenueRepository(db),
		bookings: postgres.NewBookingRepository(db),
	}, db
}
