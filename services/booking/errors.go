package booking

import "fmt"

// ListingNotFoundError signals that the booked listing does not exist.
// No notification is attempted for either recipient.
type ListingNotFoundError struct {
	ID string
}

func (e *ListingNotFoundError) Error() string {
	return fmt.Sprintf("listing %s not found", e.ID)
}

// InvalidBookingError signals booking details that cannot be rendered into a
// notification, e.g. an online payment method without a payment option.
type InvalidBookingError struct {
	Reason string
}

func (e *InvalidBookingError) Error() string {
	return fmt.Sprintf("invalid booking: %s", e.Reason)
}
