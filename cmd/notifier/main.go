package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"cleansched/internal/infra/mq"
	"cleansched/internal/infra/notify"
	"cleansched/internal/infra/worker"
	"cleansched/internal/pkg/config"
)

// The notifier is a separate process draining the mail queue so a slow or
// failing mail provider never backs up the API.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	consumer, err := mq.NewConsumer(cfg.MQ.URL, cfg.MQ.Exchange, cfg.MQ.Queue, []string{
		notify.KeyBookingServed,
		notify.KeyBookingRescheduled,
		notify.KeyPaymentCompleted,
	})
	if err != nil {
		slog.Error("failed to connect to message broker", "error", err)
		os.Exit(1)
	}
	defer consumer.Close()

	mailer := notify.NewResendMailer(cfg.Mail)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	w := worker.NewMailWorker(consumer, mailer)
	if err := w.Run(ctx); err != nil && ctx.Err() == nil {
		slog.Error("mail worker stopped with error", "error", err)
		os.Exit(1)
	}

	slog.Info("mail worker stopped")
}
