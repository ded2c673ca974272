package event

import (
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"ticketpurchase/entity"
)

type Header struct {
	ID          string    `json:"id"`
	PublishedAt time.Time `json:"published_at"`
}

func NewHeader() Header {
	return Header{
		ID:          watermill.NewUUID(),
		PublishedAt: time.Now().UTC(),
	}
}

type TicketsPurchased struct {
	Header        Header       `json:"header"`
	AccountID     int64        `json:"account_id"`
	AdultTickets  int          `json:"adult_tickets"`
	ChildTickets  int          `json:"child_tickets"`
	InfantTickets int          `json:"infant_tickets"`
	TotalTickets  int          `json:"total_tickets"`
	SeatsReserved int          `json:"seats_reserved"`
	TotalPrice    entity.Money `json:"total_price"`
}
