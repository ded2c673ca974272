package command

import (
	"context"
	"fmt"
)

type Sender interface {
	Send(ctx context.Context, cmd any) error
}

// Payments hands payment capture to the payment service.
type Payments struct {
	bus Sender
}

func NewPayments(bus Sender) Payments {
	return Payments{
		bus: bus,
	}
}

func (p Payments) MakePayment(ctx context.Context, accountID int64, amount int) error {
	cmd := MakePayment{
		Header:    newHeader(),
		AccountID: accountID,
		Amount:    amount,
	}
	if err := p.bus.Send(ctx, cmd); err != nil {
		return fmt.Errorf("sending make payment command: %w", err)
	}

	return nil
}

// SeatReservations hands seat allocation to the seat reservation service.
type SeatReservations struct {
	bus Sender
}

func NewSeatReservations(bus Sender) SeatReservations {
	return SeatReservations{
		bus: bus,
	}
}

func (s SeatReservations) ReserveSeats(ctx context.Context, accountID int64, seatCount int) error {
	cmd := ReserveSeats{
		Header:    newHeader(),
		AccountID: accountID,
		SeatCount: seatCount,
	}
	if err := s.bus.Send(ctx, cmd); err != nil {
		return fmt.Errorf("sending reserve seats command: %w", err)
	}

	return nil
}
