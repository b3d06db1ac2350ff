package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/explorex/reservations/config"
	"github.com/explorex/reservations/internal/email"
	"github.com/explorex/reservations/internal/kafka"
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

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.NotificationsTopic)
	defer consumer.Close()

	sender := email.NewSender(cfg.Mail.Host, cfg.Mail.Port, cfg.Mail.Username, cfg.Mail.Password, cfg.Mail.From)

	err = consumer.Consume(ctx, func(ctx context.Context, event kafka.ReservationEvent) error {
		// Delivery is best-effort; a failed send never stops the consumer.
		if err := sender.Send(ctx, event); err != nil {
			log.Printf("send email for event %s: %v", event.ID, err)
		}
		return nil
	})
	if err != nil && ctx.Err() == nil {
		log.Fatalf("consumer stopped: %v", err)
	}
	log.Println("worker shut down")
}
