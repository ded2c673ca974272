package purchase

import (
	"context"
	"fmt"
	"strconv"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	"github.com/sirupsen/logrus"
	"ticketpurchase/entity"
	"ticketpurchase/event"
)

type PaymentTaker interface {
	MakePayment(ctx context.Context, accountID int64, amount int) error
}

type SeatReserver interface {
	ReserveSeats(ctx context.Context, accountID int64, seatCount int) error
}

type EventPublisher interface {
	Publish(ctx context.Context, event any) error
}

// Processor holds only its collaborators, so one instance can serve any
// number of purchases.
type Processor struct {
	payments     PaymentTaker
	reservations SeatReserver
	events       EventPublisher
}

func NewProcessor(p PaymentTaker, r SeatReserver, e EventPublisher) Processor {
	return Processor{
		payments:     p,
		reservations: r,
		events:       e,
	}
}

func (p Processor) PurchaseTickets(ctx context.Context, accountID int64, requests ...entity.TicketTypeRequest) error {
	logger := log.FromContext(ctx).WithField("account_id", accountID)

	if accountID <= 0 {
		logger.Error("Rejected purchase: account id must be greater than zero")
		return invalidPurchase(ReasonInvalidAccount)
	}

	summary, err := tally(requests)
	if err == nil {
		err = summary.validate()
	}
	if err != nil {
		logger.WithError(err).Error("Rejected purchase")
		return err
	}

	if err := p.payments.MakePayment(ctx, accountID, summary.TotalPrice); err != nil {
		return fmt.Errorf("making payment: %w", err)
	}
	logger.Infof("Total amount of %d %s has been paid", summary.TotalPrice, Currency)

	if err := p.reservations.ReserveSeats(ctx, accountID, summary.SeatsReserved); err != nil {
		// No compensation: the payment stands and has to be refunded by hand.
		logger.WithError(err).WithField("amount_paid", summary.TotalPrice).
			Error("Seat reservation failed after payment was taken")
		return fmt.Errorf("reserving seats: %w", err)
	}
	logger.Infof("%d seats are reserved", summary.SeatsReserved)

	logger.WithFields(logrus.Fields{
		"total_tickets":  summary.TotalTickets,
		"adult_tickets":  summary.Adults,
		"child_tickets":  summary.Children,
		"infant_tickets": summary.Infants,
	}).Info("Tickets have been booked")

	// The purchase is paid and seated at this point, so a lost event must not fail it.
	if err := p.events.Publish(ctx, newTicketsPurchased(accountID, summary)); err != nil {
		logger.WithError(err).WithField("amount_paid", summary.TotalPrice).
			Error("Failed to publish tickets purchased event")
	}

	return nil
}

func newTicketsPurchased(accountID int64, s Summary) event.TicketsPurchased {
	return event.TicketsPurchased{
		Header:        event.NewHeader(),
		AccountID:     accountID,
		AdultTickets:  s.Adults,
		ChildTickets:  s.Children,
		InfantTickets: s.Infants,
		TotalTickets:  s.TotalTickets,
		SeatsReserved: s.SeatsReserved,
		TotalPrice: entity.Money{
			Amount:   strconv.Itoa(s.TotalPrice),
			Currency: Currency,
		},
	}
}
