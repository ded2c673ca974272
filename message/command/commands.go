package command

import (
	"time"

	"github.com/ThreeDotsLabs/watermill"
)

type Header struct {
	ID          string    `json:"id"`
	PublishedAt time.Time `json:"published_at"`
}

func newHeader() Header {
	return Header{
		ID:          watermill.NewUUID(),
		PublishedAt: time.Now().UTC(),
	}
}

type MakePayment struct {
	Header    Header `json:"header"`
	AccountID int64  `json:"account_id"`
	Amount    int    `json:"amount"`
}

type ReserveSeats struct {
	Header    Header `json:"header"`
	AccountID int64  `json:"account_id"`
	SeatCount int    `json:"seat_count"`
}
