package service

import (
	"context"
	"errors"
	"fmt"
	"ticketpurchase/http"
	"ticketpurchase/message"
	"ticketpurchase/message/command"
	"ticketpurchase/message/event"
	"ticketpurchase/purchase"
	"time"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-redisstream/pkg/redisstream"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

type Service struct {
	msgRouter  *message.Router
	httpRouter *echo.Echo
	httpAddr   string
}

type Deps struct {
	Logger              watermill.LoggerAdapter
	RedisClient         *redis.Client
	SpreadsheetAppender event.SpreadsheetAppender
	HTTPAddr            string
}

func New(deps Deps) (*Service, error) {
	publisher, err := redisstream.NewPublisher(redisstream.PublisherConfig{
		Client: deps.RedisClient,
	}, deps.Logger)
	if err != nil {
		return nil, fmt.Errorf("creating publisher: %w", err)
	}
	decoratedPublisher := log.CorrelationPublisherDecorator{Publisher: publisher}

	commandBus, err := command.NewBus(decoratedPublisher, deps.Logger)
	if err != nil {
		return nil, fmt.Errorf("creating command bus: %w", err)
	}

	eventBus, err := event.NewBus(decoratedPublisher, deps.Logger)
	if err != nil {
		return nil, fmt.Errorf("creating event bus: %w", err)
	}

	processor := purchase.NewProcessor(
		command.NewPayments(commandBus),
		command.NewSeatReservations(commandBus),
		eventBus,
	)

	msgRouter, err := message.NewRouter(message.RouterDeps{
		Logger:              deps.Logger,
		RedisClient:         deps.RedisClient,
		SpreadsheetAppender: deps.SpreadsheetAppender,
	})
	if err != nil {
		return nil, fmt.Errorf("creating message router: %w", err)
	}

	return &Service{
		msgRouter:  msgRouter,
		httpRouter: http.NewRouter(processor),
		httpAddr:   deps.HTTPAddr,
	}, nil
}

func (s Service) Run(ctx context.Context) error {
	g, runCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := s.msgRouter.Run(runCtx); err != nil {
			return fmt.Errorf("running messaging router: %w", err)
		}

		return nil
	})

	g.Go(func() error {
		// Wait for message router
		<-s.msgRouter.Running()

		logrus.WithField("addr", s.httpAddr).Info("Starting HTTP server...")
		err := s.httpRouter.Start(s.httpAddr)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("starting http server: %w", err)
		}

		return nil
	})

	g.Go(func() error {
		<-runCtx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		logrus.Info("Shutting down HTTP server...")
		if err := s.httpRouter.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down http server: %w", err)
		}

		return nil
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("waiting for shutdown: %w", err)
	}
	logrus.Info("Shutdown complete.")

	return nil
}
