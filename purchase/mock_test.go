package purchase_test

import (
	"context"
	"sync"
)

type MockPaymentTaker struct {
	lock     sync.Mutex
	Payments []PaymentRequest
	Err      error
}

type PaymentRequest struct {
	accountID int64
	amount    int
}

func (m *MockPaymentTaker) MakePayment(_ context.Context, accountID int64, amount int) error {
	m.lock.Lock()
	defer m.lock.Unlock()

	if m.Err != nil {
		return m.Err
	}
	m.Payments = append(m.Payments, PaymentRequest{accountID: accountID, amount: amount})

	return nil
}

type MockSeatReserver struct {
	lock         sync.Mutex
	Reservations []ReservationRequest
	Err          error
}

type ReservationRequest struct {
	accountID int64
	seatCount int
}

func (m *MockSeatReserver) ReserveSeats(_ context.Context, accountID int64, seatCount int) error {
	m.lock.Lock()
	defer m.lock.Unlock()

	if m.Err != nil {
		return m.Err
	}
	m.Reservations = append(m.Reservations, ReservationRequest{accountID: accountID, seatCount: seatCount})

	return nil
}

type MockPublisher struct {
	lock   sync.Mutex
	Events []any
	Err    error
}

func (m *MockPublisher) Publish(_ context.Context, event any) error {
	m.lock.Lock()
	defer m.lock.Unlock()

	if m.Err != nil {
		return m.Err
	}
	m.Events = append(m.Events, event)

	return nil
}
