package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"ticketpurchase/clients"
	"ticketpurchase/config"
	"ticketpurchase/service"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	"github.com/ThreeDotsLabs/watermill"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

func main() {
	log.Init(logrus.InfoLevel)
	logger := watermill.NewStdLogger(false, false)

	if err := run(logger); err != nil {
		logger.Error("failed to run", err, nil)
		os.Exit(1)
	}
}

func run(logger watermill.LoggerAdapter) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	logrus.SetLevel(cfg.LogLevel)

	c, err := clients.NewGateway(cfg.GatewayAddr)
	if err != nil {
		return fmt.Errorf("creating gateway client: %w", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	defer func() {
		if err := rdb.Close(); err != nil {
			logger.Error("failed to close redis connection", err, nil)
		}
	}()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	svc, err := service.New(service.Deps{
		Logger:              logger,
		RedisClient:         rdb,
		SpreadsheetAppender: clients.NewSpreadsheetsClient(c),
		HTTPAddr:            cfg.HTTPAddr,
	})
	if err != nil {
		return fmt.Errorf("creating service: %w", err)
	}

	return svc.Run(ctx)
}
