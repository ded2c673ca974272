package purchase

import "errors"

// ErrInvalidPurchase matches every InvalidPurchaseError via errors.Is.
var ErrInvalidPurchase = errors.New("invalid purchase")

const (
	ReasonInvalidAccount    = "invalid account"
	ReasonInvalidQuantity   = "invalid ticket quantity"
	ReasonUnknownTicketType = "unknown ticket type"
	ReasonNoTickets         = "no tickets requested"
	ReasonTooManyTickets    = "exceeds maximum ticket count"
	ReasonAdultRequired     = "child/infant require an adult"
	ReasonTooManyInfants    = "more infants than adults"
)

type InvalidPurchaseError struct {
	Reason string
}

func (e InvalidPurchaseError) Error() string {
	return "invalid purchase: " + e.Reason
}

func (e InvalidPurchaseError) Is(target error) bool {
	return target == ErrInvalidPurchase
}

func invalidPurchase(reason string) error {
	return InvalidPurchaseError{Reason: reason}
}
