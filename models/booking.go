package models

// PayAtHotel is the payment method sentinel that needs no online payment option.
const PayAtHotel = "payAtHotel"

// BookingDetails carries the booking form fields submitted by the booker.
// Dates are passed through as-is; date validation lives with the caller.
type BookingDetails struct {
	CheckInDate         string `json:"checkInDate"`
	CheckOutDate        string `json:"checkOutDate"`
	Guests              int    `json:"guests"`
	PhoneNumber         string `json:"phoneNumber"`
	PaymentMethod       string `json:"paymentMethod"`
	OnlinePaymentOption string `json:"onlinePaymentOption,omitempty"`
	SpecialRequests     string `json:"specialRequests,omitempty"`
}

// PaymentLabel resolves the human-readable payment method for notification bodies.
func (d BookingDetails) PaymentLabel() string {
	if d.PaymentMethod == PayAtHotel {
		return "Pay at Hotel"
	}
	return d.OnlinePaymentOption
}

// RequestsOrDefault returns the special requests text, defaulting to "None".
func (d BookingDetails) RequestsOrDefault() string {
	if d.SpecialRequests == "" {
		return "None"
	}
	return d.SpecialRequests
}

// NotificationOutcome records the result of one notification send attempt.
// Outcomes are observed, never persisted.
type NotificationOutcome struct {
	Recipient string `json:"recipient"`
	Delivered bool   `json:"delivered"`
	Reason    string `json:"reason,omitempty"`
}

// BookingReceipt reports the per-recipient outcomes of a booking notification.
type BookingReceipt struct {
	Booker NotificationOutcome `json:"booker"`
	Owner  NotificationOutcome `json:"owner"`
}
