package clients

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/ThreeDotsLabs/go-event-driven/common/clients"
	"github.com/ThreeDotsLabs/go-event-driven/common/log"
)

func NewGateway(gatewayAddress string) (*clients.Clients, error) {
	if gatewayAddress == "" {
		return nil, errors.New("gateway address is empty")
	}

	c, err := clients.NewClients(gatewayAddress, func(ctx context.Context, req *http.Request) error {
		req.Header.Set("Correlation-ID", log.CorrelationIDFromContext(ctx))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("creating gateway clients: %w", err)
	}

	return c, nil
}
