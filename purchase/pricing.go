package purchase

import "ticketpurchase/entity"

const (
	MaxTicketsPerPurchase = 20
	Currency              = "GBP"
)

var ticketPrices = map[entity.TicketType]int{
	entity.TicketTypeAdult:  20,
	entity.TicketTypeChild:  10,
	entity.TicketTypeInfant: 0,
}

// Summary is built fresh for every purchase and never kept on the Processor.
type Summary struct {
	Adults        int
	Children      int
	Infants       int
	TotalTickets  int
	SeatsReserved int
	TotalPrice    int
}

func tally(requests []entity.TicketTypeRequest) (Summary, error) {
	var s Summary
	for _, r := range requests {
		price, ok := ticketPrices[r.Type]
		if !ok {
			return Summary{}, invalidPurchase(ReasonUnknownTicketType)
		}
		if r.Quantity < 0 {
			return Summary{}, invalidPurchase(ReasonInvalidQuantity)
		}
		// checked before adding so large quantities cannot overflow the sums
		if r.Quantity > MaxTicketsPerPurchase-s.TotalTickets {
			return Summary{}, invalidPurchase(ReasonTooManyTickets)
		}

		switch r.Type {
		case entity.TicketTypeAdult:
			s.Adults += r.Quantity
		case entity.TicketTypeChild:
			s.Children += r.Quantity
		case entity.TicketTypeInfant:
			s.Infants += r.Quantity
		}

		s.TotalTickets += r.Quantity
		s.TotalPrice += price * r.Quantity
	}

	// infants sit on an adult's lap
	s.SeatsReserved = s.Adults + s.Children

	return s, nil
}

func (s Summary) validate() error {
	if s.TotalTickets == 0 {
		return invalidPurchase(ReasonNoTickets)
	}
	if s.TotalTickets > MaxTicketsPerPurchase {
		return invalidPurchase(ReasonTooManyTickets)
	}
	if s.Adults < 1 {
		return invalidPurchase(ReasonAdultRequired)
	}
	if s.Infants > s.Adults {
		return invalidPurchase(ReasonTooManyInfants)
	}

	return nil
}
