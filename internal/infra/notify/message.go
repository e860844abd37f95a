package notify

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"weekend-booking/internal/usecase/commands"
)

const confirmationSubject = "Your appointment is confirmed"

// ConfirmationBody renders the plain-text confirmation email.
func ConfirmationBody(msg commands.ConfirmationMessage) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s,\r\n\r\n", msg.Name)
	b.WriteString("Great news! Your appointment has been confirmed.\r\n\r\n")
	fmt.Fprintf(&b, "Date: %s\r\n", msg.Date.Display())
	fmt.Fprintf(&b, "Time: %s\r\n\r\n", msg.TimeSlot)
	b.WriteString("We're looking forward to seeing you!\r\n")
	return b.String()
}

// buildMessage renders a minimal RFC 5322 message.
func buildMessage(from mail.Address, to, subject, body string, at time.Time) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from.String())
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	fmt.Fprintf(&b, "Date: %s\r\n", at.Format(time.RFC1123Z))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)
	return []byte(b.String())
}
