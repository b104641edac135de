package models

// ReminderPayload is the asynq task payload for a check-in reminder email.
type ReminderPayload struct {
	BookingID    string `json:"bookingId"`
	Email        string `json:"email"`
	ListingTitle string `json:"listingTitle"`
	CheckInDate  string `json:"checkInDate"`
}
