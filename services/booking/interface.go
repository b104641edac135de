package booking

import (
	"context"
	"time"

	"wanderstay/models"
)

// BookingNotifier dispatches the two booking notification emails.
type BookingNotifier interface {
	// Notify looks up the listing, renders the booker confirmation and the
	// owner notification, and attempts one send to each recipient. Individual
	// send failures are recorded in the receipt, never returned as errors; the
	// booking itself stays successful. A missing listing fails fast with
	// *ListingNotFoundError before any send.
	Notify(ctx context.Context, listingID, bookerEmail string, details models.BookingDetails) (*models.BookingReceipt, error)
}

// ReminderScheduler enqueues a check-in reminder to be delivered later.
type ReminderScheduler interface {
	ScheduleCheckInReminder(payload models.ReminderPayload, fireAt time.Time) error
}
