package mailer

import (
	"fmt"

	"github.com/tripnest/tripnest-api/pkg/logger"
)

type DevMailer struct{}

func NewDevMailer() *DevMailer {
	return &DevMailer{}
}

func (d *DevMailer) SendBookingReceived(toEmail, bookingID, bookingType string) error {
	logger.Info("📧 [DEV MAIL] Booking Received Email",
		"to", toEmail,
		"booking_id", bookingID,
		"booking_type", bookingType,
	)

	fmt.Printf("\n"+
		"━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n"+
		"📧 BOOKING RECEIVED EMAIL (DEV MODE)\n"+
		"━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n"+
		"To: %s\n"+
		"Subject: We received your TripNest booking\n"+
		"\n"+
		"Booking ID: %s\n"+
		"Booking Type: %s\n"+
		"━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n\n",
		toEmail, bookingID, bookingType)

	return nil
}
