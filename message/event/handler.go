package event

import (
	"context"
	"fmt"
	"strconv"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-redisstream/pkg/redisstream"
	"github.com/ThreeDotsLabs/watermill/components/cqrs"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/redis/go-redis/v9"
	"ticketpurchase/event"
)

const trackerSheet = "tickets-purchased"

type SpreadsheetAppender interface {
	AppendRow(ctx context.Context, spreadsheetName string, row []string) error
}

func NewBus(publisher message.Publisher, logger watermill.LoggerAdapter) (*cqrs.EventBus, error) {
	return cqrs.NewEventBusWithConfig(publisher, cqrs.EventBusConfig{
		GeneratePublishTopic: func(params cqrs.GenerateEventPublishTopicParams) (string, error) {
			return params.EventName, nil
		},
		Marshaler: cqrs.JSONMarshaler{
			GenerateName: cqrs.StructName,
		},
		Logger: logger,
	})
}

func NewProcessorConfig(logger watermill.LoggerAdapter, redisClient *redis.Client) cqrs.EventProcessorConfig {
	return cqrs.EventProcessorConfig{
		SubscriberConstructor: func(params cqrs.EventProcessorSubscriberConstructorParams) (message.Subscriber, error) {
			return redisstream.NewSubscriber(redisstream.SubscriberConfig{
				Client:        redisClient,
				ConsumerGroup: "svc-ticket-purchase." + params.HandlerName,
			}, logger)
		},
		GenerateSubscribeTopic: func(params cqrs.EventProcessorGenerateSubscribeTopicParams) (string, error) {
			return params.EventName, nil
		},
		Marshaler: cqrs.JSONMarshaler{
			GenerateName: cqrs.StructName,
		},
		Logger: logger,
	}
}

type Handler struct {
	spreadsheetAppender SpreadsheetAppender
}

func NewHandler(sa SpreadsheetAppender) Handler {
	return Handler{
		spreadsheetAppender: sa,
	}
}

func (h Handler) AppendToTracker(ctx context.Context, e *event.TicketsPurchased) error {
	log.FromContext(ctx).WithField("account_id", e.AccountID).Info("Appending purchase to tracker")

	row := []string{
		strconv.FormatInt(e.AccountID, 10),
		strconv.Itoa(e.AdultTickets),
		strconv.Itoa(e.ChildTickets),
		strconv.Itoa(e.InfantTickets),
		strconv.Itoa(e.SeatsReserved),
		e.TotalPrice.Amount,
		e.TotalPrice.Currency,
	}
	if err := h.spreadsheetAppender.AppendRow(ctx, trackerSheet, row); err != nil {
		return fmt.Errorf("failed to append row to tracker: %w", err)
	}

	return nil
}
