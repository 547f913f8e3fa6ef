package utils

import (
	"fmt"
	"net/smtp"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// SendBookingConfirmationEmail sends a plain-text confirmation for a new
// booking. When SMTP is not configured it logs a mock send instead so dev
// environments work without a mail server.
func SendBookingConfirmationEmail(log *logrus.Logger, recipient, guestName, referenceCode, roomNumber, checkIn, checkOut, totalAmount, advanceAmount string) error {
	smtpHost := os.Getenv("SMTP_HOST")
	smtpPort := os.Getenv("SMTP_PORT")
	smtpUser := os.Getenv("SMTP_USERNAME")
	smtpPass := os.Getenv("SMTP_PASSWORD")
	fromName := EnvOrDefault("SMTP_FROM_NAME", "Resort Front Desk")

	if smtpUser == "" || smtpPass == "" || smtpHost == "" || smtpPort == "" {
		log.WithFields(logrus.Fields{
			"to":        recipient,
			"reference": referenceCode,
			"room":      roomNumber,
		}).Info("[MOCK EMAIL] booking confirmation")
		return nil
	}

	safe := func(s string) string {
		return strings.ReplaceAll(strings.TrimSpace(s), "\r\n", " ")
	}

	body := fmt.Sprintf(
		"Dear %s,\n\n"+
			"Your booking is confirmed.\n\n"+
			"Booking Reference: %s\n"+
			"Room: %s\n"+
			"Check-In: %s\n"+
			"Check-Out: %s\n"+
			"Total Amount: %s\n"+
			"Advance Paid: %s\n\n"+
			"We look forward to hosting you.\n\n"+
			"Best regards,\n%s",
		safe(guestName), safe(referenceCode), safe(roomNumber),
		safe(checkIn), safe(checkOut), safe(totalAmount), safe(advanceAmount), fromName,
	)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("From: %s <%s>\r\n", fromName, smtpUser))
	sb.WriteString(fmt.Sprintf("To: %s\r\n", recipient))
	sb.WriteString(fmt.Sprintf("Subject: Booking Confirmation %s\r\n", safe(referenceCode)))
	sb.WriteString("Content-Type: text/plain; charset=utf-8\r\n\r\n")
	sb.WriteString(body + "\r\n")

	addr := fmt.Sprintf("%s:%s", smtpHost, smtpPort)
	auth := smtp.PlainAuth("", smtpUser, smtpPass, smtpHost)
	if err := smtp.SendMail(addr, auth, smtpUser, []string{recipient}, []byte(sb.String())); err != nil {
		log.WithError(err).WithField("to", recipient).Error("failed to send booking confirmation")
		return err
	}
	return nil
}
