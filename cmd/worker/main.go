package main

import (
	"log/slog"
	"os"

	"github.com/hibiken/asynq"

	"paymentsvc/internal/notification"
	"paymentsvc/kit/config"
	"paymentsvc/kit/observability"
)

func main() {
	cfg := config.Load()

	slogger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(slogger)
	logger := observability.NewLoggerWith(slogger)

	retryPolicy := notification.RetryPolicy{
		MaxAttempts: cfg.QueuedMaxRetries,
		Delay:       cfg.NotificationRetryDelay,
		Backoff:     notification.BackoffExponential,
	}

	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: cfg.RedisAddr},
		asynq.Config{
			Concurrency:    5,
			Queues:         map[string]int{notification.QueueNotifications: 1},
			RetryDelayFunc: notification.ExponentialRetryDelay(retryPolicy),
		},
	)

	mux := asynq.NewServeMux()
	mux.Handle(notification.TypePaymentNotification, notification.NewTaskHandler(cfg.NotificationTimeout, logger))

	logger.Info("notification worker starting", "redis", cfg.RedisAddr)
	if err := srv.Run(mux); err != nil {
		logger.Error("worker stopped", "error", err)
		os.Exit(1)
	}
}
