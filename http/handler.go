package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"ticketpurchase/entity"
	"ticketpurchase/purchase"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	"github.com/labstack/echo/v4"
	"github.com/lithammer/shortuuid/v3"
	"github.com/sirupsen/logrus"
)

const headerKeyCorrelationID = "Correlation-ID"

type TicketPurchaser interface {
	PurchaseTickets(ctx context.Context, accountID int64, requests ...entity.TicketTypeRequest) error
}

type handler struct {
	purchaser TicketPurchaser
}

type purchaseRequest struct {
	AccountID int64           `json:"account_id"`
	Tickets   []ticketRequest `json:"tickets"`
}

type ticketRequest struct {
	Type     string `json:"type"`
	Quantity int    `json:"quantity"`
}

type purchaseResponse struct {
	AccountID int64  `json:"account_id"`
	Status    string `json:"status"`
}

func (h handler) PurchaseTickets(c echo.Context) error {
	correlationID := c.Request().Header.Get(headerKeyCorrelationID)
	if correlationID == "" {
		correlationID = "gen_" + shortuuid.New()
	}
	c.Response().Header().Set(headerKeyCorrelationID, correlationID)

	var request purchaseRequest
	if err := c.Bind(&request); err != nil {
		return &echo.HTTPError{
			Code:     http.StatusBadRequest,
			Message:  "failed to parse request",
			Internal: fmt.Errorf("failed to bind request: %w", err),
		}
	}

	logger := logrus.WithField("correlation_id", correlationID)
	ctx := log.ContextWithCorrelationID(c.Request().Context(), correlationID)
	ctx = log.ToContext(ctx, logger)

	requests := make([]entity.TicketTypeRequest, 0, len(request.Tickets))
	for _, t := range request.Tickets {
		// unknown types are left to the processor, which checks the account first
		ticketType, err := entity.ParseTicketType(t.Type)
		if err != nil {
			logger.WithError(err).Debug("Passing unknown ticket type to processor")
		}
		requests = append(requests, entity.NewTicketTypeRequest(ticketType, t.Quantity))
	}

	err := h.purchaser.PurchaseTickets(ctx, request.AccountID, requests...)
	var invalid purchase.InvalidPurchaseError
	switch {
	case errors.As(err, &invalid):
		return &echo.HTTPError{
			Code:     http.StatusBadRequest,
			Message:  invalid.Reason,
			Internal: err,
		}
	case err != nil:
		return &echo.HTTPError{
			Code:     http.StatusInternalServerError,
			Message:  http.StatusText(http.StatusInternalServerError),
			Internal: fmt.Errorf("purchasing tickets: %w", err),
		}
	}

	return c.JSON(http.StatusCreated, purchaseResponse{
		AccountID: request.AccountID,
		Status:    "purchased",
	})
}
