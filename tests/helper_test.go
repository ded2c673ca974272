package tests_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"os"
	"testing"
	"ticketpurchase/service"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-redisstream/pkg/redisstream"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/lithammer/shortuuid/v3"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const serviceAddr = "localhost:8080"

func getEnvOrDefault(key string, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

// Run the following before running the tests:
//
//	docker compose up -d
//	export REDIS_ADDR=localhost:6379
func setupRedis(t *testing.T) *redis.Client {
	t.Helper()

	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	t.Cleanup(func() {
		_ = rdb.Close()
	})

	return rdb
}

func startService(t *testing.T, redisClient *redis.Client, spreadsheetAppender *MockSpreadsheetAppender) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	svc, err := service.New(service.Deps{
		Logger:              watermill.NewStdLogger(false, false),
		RedisClient:         redisClient,
		SpreadsheetAppender: spreadsheetAppender,
		HTTPAddr:            getEnvOrDefault("HTTP_ADDR", serviceAddr),
	})
	require.NoError(t, err)

	go func() {
		assert.NoError(t, svc.Run(ctx))
	}()

	waitForHttpServer(t)
}

func waitForHttpServer(t *testing.T) {
	t.Helper()

	require.EventuallyWithT(
		t,
		func(t *assert.CollectT) {
			resp, err := http.Get("http://" + serviceAddr + "/health")
			if !assert.NoError(t, err) {
				return
			}
			defer resp.Body.Close()

			if assert.Less(t, resp.StatusCode, 300, "API not ready, http status: %d", resp.StatusCode) {
				return
			}
		},
		time.Second*10,
		time.Millisecond*50,
	)
}

func subscribe(t *testing.T, redisClient *redis.Client, topic string) <-chan *message.Message {
	t.Helper()

	sub, err := redisstream.NewSubscriber(redisstream.SubscriberConfig{
		Client:        redisClient,
		ConsumerGroup: "component-test-" + shortuuid.New(),
	}, watermill.NopLogger{})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = sub.Close()
	})

	messages, err := sub.Subscribe(context.Background(), topic)
	require.NoError(t, err)

	return messages
}

type PurchaseRequest struct {
	AccountID int64           `json:"account_id"`
	Tickets   []TicketRequest `json:"tickets"`
}

type TicketRequest struct {
	Type     string `json:"type"`
	Quantity int    `json:"quantity"`
}

func sendPurchase(t *testing.T, req PurchaseRequest) int {
	t.Helper()

	payload, err := json.Marshal(req)
	require.NoError(t, err)

	httpReq, err := http.NewRequest(
		http.MethodPost,
		"http://"+serviceAddr+"/ticket-purchases",
		bytes.NewBuffer(payload),
	)
	require.NoError(t, err)

	httpReq.Header.Set("Correlation-ID", shortuuid.New())
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(httpReq)
	require.NoError(t, err)
	defer resp.Body.Close()

	return resp.StatusCode
}

type commandPayload struct {
	AccountID int64 `json:"account_id"`
	Amount    int   `json:"amount"`
	SeatCount int   `json:"seat_count"`
}

func assertCommandReceived(t *testing.T, messages <-chan *message.Message, accountID int64) commandPayload {
	t.Helper()

	timeout := time.After(10 * time.Second)
	for {
		select {
		case msg := <-messages:
			msg.Ack()

			var p commandPayload
			require.NoError(t, json.Unmarshal(msg.Payload, &p))
			if p.AccountID == accountID {
				return p
			}
		case <-timeout:
			t.Fatalf("no command received for account %d", accountID)
			return commandPayload{}
		}
	}
}

func assertPurchaseRowAppended(t *testing.T, spreadsheetAppender *MockSpreadsheetAppender, accountID string) []string {
	t.Helper()

	var row []string
	assert.EventuallyWithT(
		t,
		func(collectT *assert.CollectT) {
			for _, r := range spreadsheetAppender.Rows() {
				if r.spreadsheetName == "tickets-purchased" && len(r.row) > 0 && r.row[0] == accountID {
					row = r.row
					return
				}
			}
			assert.Fail(collectT, "purchase row not appended")
		},
		10*time.Second,
		100*time.Millisecond,
	)

	return row
}
