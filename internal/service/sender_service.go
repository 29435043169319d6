package service

import (
	"bytes"
	"fmt"
	"html/template"
	"log"
	"time"

	"parksmart/internal/db"
	"parksmart/internal/entities"
)

const bookingEmailTemplate = `<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>Your ParkSmart booking is {{.Status}}</h2>
  <p>Hello {{.UserName}},</p>
  <table cellpadding="4">
    <tr><td><strong>Booking ID</strong></td><td>{{.BookingID}}</td></tr>
    {{if .VehicleNumber}}<tr><td><strong>Vehicle</strong></td><td>{{.VehicleNumber}}</td></tr>{{end}}
    <tr><td><strong>From</strong></td><td>{{.StartTimeFormatted}}</td></tr>
    <tr><td><strong>To</strong></td><td>{{.EndTimeFormatted}}</td></tr>
    <tr><td><strong>Total</strong></td><td>${{printf "%.2f" .TotalCost}}</td></tr>
  </table>
  <p>Thank you for choosing ParkSmart.</p>
  <p style="color: #999; font-size: 12px;">ParkSmart {{.CurrentYear}}. All rights reserved.</p>
</body>
</html>`

var bookingEmailTmpl = template.Must(template.New("booking_email").Parse(bookingEmailTemplate))

// BookingNotifier composes and dispatches booking confirmation and
// cancellation messages. Delivery is asynchronous and best effort; failures
// are logged and never fail the booking command.
type BookingNotifier struct {
}

func NewBookingNotifier() *BookingNotifier {
	return &BookingNotifier{}
}

// Notify sends an email, and an SMS when the user has a phone on file.
func (n *BookingNotifier) Notify(user *db.User, booking *db.Booking, status string) {
	n.sendEmail(user, booking, status)
	if user.Phone != "" {
		n.sendSMS(user, booking, status)
	}
}

func (n *BookingNotifier) sendEmail(user *db.User, booking *db.Booking, status string) {
	vehicle := ""
	if booking.VehicleNumber != nil {
		vehicle = *booking.VehicleNumber
	}
	emailData := entities.BookingEmailData{
		UserName:           user.Name,
		BookingID:          booking.ID,
		VehicleNumber:      vehicle,
		StartTimeFormatted: booking.StartTime.Format("02 Jan 2006 15:04 MST"),
		EndTimeFormatted:   booking.EndTime.Format("02 Jan 2006 15:04 MST"),
		TotalCost:          booking.TotalCost,
		Status:             status,
		CurrentYear:        time.Now().UTC().Year(),
	}

	subject := fmt.Sprintf("Your ParkSmart booking is %s", status)
	plainTextBody := fmt.Sprintf(
		"Hello %s,\n\nYour ParkSmart booking is %s.\n\n"+
			"Booking Details:\n"+
			"Booking ID: %s\n"+
			"From: %s\n"+
			"To: %s\n"+
			"Total: $%.2f\n\n"+
			"Thank you for choosing ParkSmart.",
		emailData.UserName, status, emailData.BookingID,
		emailData.StartTimeFormatted, emailData.EndTimeFormatted, emailData.TotalCost,
	)

	var htmlBodyBuffer bytes.Buffer
	if err := bookingEmailTmpl.Execute(&htmlBodyBuffer, emailData); err != nil {
		log.Printf("Error executing booking email template for booking %s: %v", booking.ID, err)
	}
	htmlBody := htmlBodyBuffer.String()

	go func(toEmail, toName, subject, plainBody, htmlBody string) {
		if err := SendEmailWithSendGrid(toEmail, toName, subject, plainBody, htmlBody); err != nil {
			log.Printf("Async email for booking %s failed: %v", booking.ID, err)
		}
	}(user.Email, user.Name, subject, plainTextBody, htmlBody)
}

func (n *BookingNotifier) sendSMS(user *db.User, booking *db.Booking, status string) {
	message := fmt.Sprintf("ParkSmart: your booking is %s.\nFrom: %s\nDetails in your email.",
		status,
		booking.StartTime.Format("02/01 15:04"),
	)

	go func(phone, body string) {
		if err := SendSMS(phone, body); err != nil {
			log.Printf("Async SMS for booking %s failed: %v", booking.ID, err)
		}
	}(user.Phone, message)
}
