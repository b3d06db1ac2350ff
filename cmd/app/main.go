package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/explorex/reservations/config"
	"github.com/explorex/reservations/internal/auth"
	"github.com/explorex/reservations/internal/bootstrap"
	"github.com/explorex/reservations/internal/kafka"
	"github.com/explorex/reservations/internal/repository"
	"github.com/explorex/reservations/internal/service/passenger"
	"github.com/explorex/reservations/internal/service/reservation"
	"github.com/explorex/reservations/internal/service/user"
	"github.com/explorex/reservations/internal/verify"
	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	userRepo := repository.NewUserRepository(pool)
	reservationRepo := repository.NewReservationRepository(pool)
	passengerRepo := repository.NewPassengerRepository(pool)

	userService := user.NewUserService(userRepo)
	reservationService := reservation.NewReservationService(
		reservationRepo,
		passengerRepo,
		producer,
		cfg.Kafka.NotificationsTopic,
		reservation.WithAlertRecipient(cfg.Mail.To),
	)
	passengerService := passenger.NewPassengerService(passengerRepo, reservationRepo)

	tokens := auth.NewManager(cfg.Auth.AccessSecret, cfg.Auth.RefreshSecret)
	verifier := verify.NewRecaptcha(cfg.Verify.RecaptchaSecret)

	if err := bootstrap.Run(ctx, cfg, userService, reservationService, passengerService, tokens, verifier); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
