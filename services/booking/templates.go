package booking

import (
	"bytes"
	"fmt"
	"html/template"

	"wanderstay/models"
)

type emailData struct {
	ListingTitle    string
	BookerEmail     string
	OwnerName       string
	CheckInDate     string
	CheckOutDate    string
	Guests          int
	PhoneNumber     string
	PaymentLabel    string
	SpecialRequests string
}

var bookerTmpl = template.Must(template.New("booker").Parse(`<html>
  <body>
    <div class="container">
      <h1>Booking Confirmation</h1>
      <p>Dear <strong>{{.BookerEmail}}</strong>,</p>
      <p>Thank you for booking with us! Here are your booking details:</p>
      <p>Your booking for <strong>{{.ListingTitle}}</strong> has been confirmed.</p>
      <div class="details">
        <h2>Booking Details:</h2>
        <ul>
          <li><strong>Check-in Date:</strong> {{.CheckInDate}}</li>
          <li><strong>Check-out Date:</strong> {{.CheckOutDate}}</li>
          <li><strong>Number of Guests:</strong> {{.Guests}}</li>
          <li><strong>Phone Number:</strong> {{.PhoneNumber}}</li>
          <li><strong>Payment Method:</strong> {{.PaymentLabel}}</li>
          <li><strong>Special Requests:</strong> {{.SpecialRequests}}</li>
        </ul>
        <p>We look forward to welcoming you!</p>
      </div>
      <p>If you have any questions, feel free to <a href="mailto:support@example.com">contact our support team</a>.</p>
    </div>
  </body>
</html>`))

var ownerTmpl = template.Must(template.New("owner").Parse(`<html>
  <body>
    <p>Dear {{.OwnerName}},</p>
    <p>You have received a new booking for <strong>{{.ListingTitle}}</strong>.</p>
    <h2>Booking Details:</h2>
    <ul>
      <li><strong>User Email:</strong> {{.BookerEmail}}</li>
      <li><strong>Check-in Date:</strong> {{.CheckInDate}}</li>
      <li><strong>Check-out Date:</strong> {{.CheckOutDate}}</li>
      <li><strong>Number of Guests:</strong> {{.Guests}}</li>
      <li><strong>Phone Number:</strong> {{.PhoneNumber}}</li>
      <li><strong>Payment Method:</strong> {{.PaymentLabel}}</li>
      <li><strong>Special Requests:</strong> {{.SpecialRequests}}</li>
    </ul>
    <p>Thank you for using our service!</p>
  </body>
</html>`))

type renderedEmail struct {
	Subject  string
	TextBody string
	HTMLBody string
}

func renderBookerEmail(listing *models.Listing, bookerEmail string, details models.BookingDetails) (renderedEmail, error) {
	var buf bytes.Buffer
	data := newEmailData(listing, bookerEmail, details)
	if err := bookerTmpl.Execute(&buf, data); err != nil {
		return renderedEmail{}, fmt.Errorf("render booker email: %w", err)
	}
	return renderedEmail{
		Subject:  fmt.Sprintf("Booking Confirmation - %s", listing.Title),
		TextBody: fmt.Sprintf("Your booking for %s has been confirmed.", listing.Title),
		HTMLBody: buf.String(),
	}, nil
}

func renderOwnerEmail(listing *models.Listing, bookerEmail string, details models.BookingDetails) (renderedEmail, error) {
	var buf bytes.Buffer
	data := newEmailData(listing, bookerEmail, details)
	if err := ownerTmpl.Execute(&buf, data); err != nil {
		return renderedEmail{}, fmt.Errorf("render owner email: %w", err)
	}
	return renderedEmail{
		Subject:  fmt.Sprintf("New Booking for - %s", listing.Title),
		TextBody: fmt.Sprintf("You have a new booking for %s.", listing.Title),
		HTMLBody: buf.String(),
	}, nil
}

func newEmailData(listing *models.Listing, bookerEmail string, details models.BookingDetails) emailData {
	return emailData{
		ListingTitle:    listing.Title,
		BookerEmail:     bookerEmail,
		OwnerName:       listing.Owner.Name,
		CheckInDate:     details.CheckInDate,
		CheckOutDate:    details.CheckOutDate,
		Guests:          details.Guests,
		PhoneNumber:     details.PhoneNumber,
		PaymentLabel:    details.PaymentLabel(),
		SpecialRequests: details.RequestsOrDefault(),
	}
}
