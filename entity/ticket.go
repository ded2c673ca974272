package entity

import (
	"fmt"
	"strings"
)

type TicketType int

const (
	TicketTypeUnknown TicketType = iota
	TicketTypeAdult
	TicketTypeChild
	TicketTypeInfant
)

func (t TicketType) String() string {
	switch t {
	case TicketTypeAdult:
		return "ADULT"
	case TicketTypeChild:
		return "CHILD"
	case TicketTypeInfant:
		return "INFANT"
	default:
		return "UNKNOWN"
	}
}

func ParseTicketType(s string) (TicketType, error) {
	switch strings.ToUpper(s) {
	case "ADULT":
		return TicketTypeAdult, nil
	case "CHILD":
		return TicketTypeChild, nil
	case "INFANT":
		return TicketTypeInfant, nil
	default:
		return TicketTypeUnknown, fmt.Errorf("unknown ticket type %q", s)
	}
}

// TicketTypeRequest asks for Quantity tickets of a single type.
type TicketTypeRequest struct {
	Type     TicketType
	Quantity int
}

func NewTicketTypeRequest(t TicketType, quantity int) TicketTypeRequest {
	return TicketTypeRequest{
		Type:     t,
		Quantity: quantity,
	}
}

type Money struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}
