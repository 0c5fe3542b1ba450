package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fitconnect/internal/availability"
	"fitconnect/internal/booking"
	"fitconnect/internal/config"
	"fitconnect/internal/connection"
	"fitconnect/internal/course"
	"fitconnect/internal/db"
	"fitconnect/internal/directory"
	"fitconnect/internal/email"
	"fitconnect/internal/logger"
	"fitconnect/internal/seed"
	"fitconnect/internal/server"
	"fitconnect/internal/storage"
	"fitconnect/internal/user"

	"github.com/redis/go-redis/v9"
)

// @title                      FitConnect API
// @version                    1.0
// @description                Trainer and client marketplace with weekly availability, bookings, courses and a member directory table.
// @host                       localhost:8080
// @BasePath                   /
// @securityDefinitions.apikey BearerAuth
// @in                         header
// @name                       Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger.SetLevel(cfg.LogLevel)
	logger.Init()
	defer logger.Sync()
	logger.Info("Starting FitConnect", "env", cfg.Env, "storage", cfg.StorageDriver)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, err := openStore(ctx, cfg)
	if err != nil {
		logger.Fatalf("Failed to open %s store: %v", cfg.StorageDriver, err)
	}
	defer store.Close()

	userRepo := user.NewRepository(store)
	connRepo := connection.NewRepository(store)

	if cfg.SeedData {
		seeded, err := seed.Run(ctx, userRepo, connRepo)
		if err != nil {
			logger.Fatalf("Failed to seed data: %v", err)
		}
		if seeded {
			logger.Info("Seeded demo trainers and clients", "password", seed.Password)
		}
	}

	users := user.NewService(userRepo, cfg.JWTSecret, cfg.JWTRefreshSecret)
	conns := connection.NewService(connRepo, users)
	avail := availability.NewService(availability.NewRepository(store))
	courses := course.NewService(course.NewRepository(store), conns, users)

	var notifier booking.Notifier
	if cfg.EmailEnabled {
		emailService := email.New(redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		}), email.Config{
			From:     cfg.EmailFrom,
			FromName: cfg.EmailFromName,
			SMTPHost: cfg.SMTPHost,
			SMTPPort: cfg.SMTPPort,
			SMTPUser: cfg.SMTPUser,
			SMTPPass: cfg.SMTPPass,
		})
		defer emailService.Close()
		go emailService.Start(ctx)
		notifier = emailService
		logger.Info("Email worker enabled", "smtp_host", cfg.SMTPHost)
	}

	bookings := booking.NewService(booking.NewRepository(store), avail, conns, users, notifier, booking.Options{
		RequiresApproval: cfg.BookingRequiresApproval,
		HorizonMonths:    cfg.BookingHorizonMonths,
	})

	srv := server.New(cfg, store.Name(), server.Handlers{
		Users:        user.NewHandler(users),
		Availability: availability.NewHandler(avail),
		Bookings:     booking.NewHandler(bookings),
		Connections:  connection.NewHandler(conns),
		Courses:      course.NewHandler(courses),
		Directory:    directory.NewHandler(directory.New(cfg.DirectorySize, cfg.DirectoryDelay), cfg.DirectorySize),
	})

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- srv.Start()
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		logger.Infof("Received signal: %v", sig)
	case err := <-serverErrChan:
		if err != nil {
			logger.Errorf("Server error: %v", err)
		}
	}

	logger.Info("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Error during server shutdown: %v", err)
	}

	logger.Info("Server stopped")
}

func openStore(ctx context.Context, cfg *config.Config) (storage.Store, error) {
	switch cfg.StorageDriver {
	case config.StorageRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, err
		}
		return storage.NewRedisStore(client), nil

	case config.StoragePostgres:
		database, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		if err := db.RunMigrations(database, cfg.MigrationsPath); err != nil {
			database.Close()
			return nil, err
		}
		return storage.NewPostgresStore(database), nil

	case config.StorageMemory:
		return storage.NewMemoryStore(), nil

	default:
		return nil, config.ErrUnknownStorageDriver
	}
}
