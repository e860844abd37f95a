package notify

import (
	"context"
	"crypto/tls"
	"log/slog"
	"net"
	"net/mail"
	"net/smtp"
	"strconv"
	"strings"
	"time"

	"weekend-booking/internal/pkg/config"
	"weekend-booking/internal/pkg/errs"
	"weekend-booking/internal/usecase/commands"
)

// DefaultSendTimeout bounds a delivery when MAIL_TIMEOUT is unset or not positive.
const DefaultSendTimeout = 10 * time.Second

var (
	ErrInvalidRecipient = errs.New("invalid recipient address")
	ErrSendFailed       = errs.New("failed to send email")
)

// SMTPNotifier delivers confirmations through a single SMTP relay.
// STARTTLS is used whenever the server offers it.
type SMTPNotifier struct {
	host    string
	addr    string
	from    mail.Address
	auth    smtp.Auth
	timeout time.Duration
	now     func() time.Time
}

func NewSMTPNotifier(cfg config.MailConfig) *SMTPNotifier {
	host := strings.TrimSpace(cfg.Host)
	n := &SMTPNotifier{
		host:    host,
		addr:    net.JoinHostPort(host, strconv.Itoa(cfg.Port)),
		from:    mail.Address{Name: cfg.FromName, Address: strings.TrimSpace(cfg.From)},
		timeout: cfg.Timeout,
		now:     time.Now,
	}
	if n.timeout <= 0 {
		n.timeout = DefaultSendTimeout
	}
	if cfg.Username != "" {
		n.auth = smtp.PlainAuth("", cfg.Username, cfg.Password, host)
	}
	return n
}

func (n *SMTPNotifier) NotifyConfirmed(ctx context.Context, msg commands.ConfirmationMessage) error {
	to, err := mail.ParseAddress(msg.Email)
	if err != nil {
		return errs.Mark(errs.Wrap(err, msg.Email), ErrInvalidRecipient)
	}

	ctx, cancel := context.WithTimeout(ctx, n.timeout)
	defer cancel()

	body := buildMessage(n.from, to.String(), confirmationSubject, ConfirmationBody(msg), n.now())
	if err := n.send(ctx, to.Address, body); err != nil {
		return errs.Mark(err, ErrSendFailed)
	}

	slog.Info("confirmation email sent",
		"appointment_id", msg.AppointmentID,
		"recipient", to.Address)
	return nil
}

func (n *SMTPNotifier) send(ctx context.Context, to string, body []byte) error {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", n.addr)
	if err != nil {
		return errs.Wrap(err, "dial smtp")
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	c, err := smtp.NewClient(conn, n.host)
	if err != nil {
		_ = conn.Close()
		return errs.Wrap(err, "smtp handshake")
	}
	defer c.Close()

	if ok, _ := c.Extension("STARTTLS"); ok {
		if err := c.StartTLS(&tls.Config{ServerName: n.host, MinVersion: tls.VersionTLS12}); err != nil {
			return errs.Wrap(err, "starttls")
		}
	}
	if n.auth != nil {
		if err := c.Auth(n.auth); err != nil {
			return errs.Wrap(err, "smtp auth")
		}
	}
	if err := c.Mail(n.from.Address); err != nil {
		return errs.Wrap(err, "smtp MAIL FROM")
	}
	if err := c.Rcpt(to); err != nil {
		return errs.Wrap(err, "smtp RCPT TO")
	}

	w, err := c.Data()
	if err != nil {
		return errs.Wrap(err, "smtp DATA")
	}
	if _, err := w.Write(body); err != nil {
		_ = w.Close()
		return errs.Wrap(err, "write message")
	}
	if err := w.Close(); err != nil {
		return errs.Wrap(err, "close message")
	}
	return c.Quit()
}

// LogNotifier stands in when mail is turned off. It logs the message and
// reports the attempt as skipped.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (LogNotifier) NotifyConfirmed(_ context.Context, msg commands.ConfirmationMessage) error {
	slog.Info("mail disabled, confirmation not sent",
		"appointment_id", msg.AppointmentID,
		"recipient", msg.Email,
		"date", msg.Date.String(),
		"time_slot", msg.TimeSlot.String())
	return commands.ErrNotificationSkipped
}

// New picks the notifier for cfg.
func New(cfg config.MailConfig) commands.Notifier {
	if !cfg.Enabled {
		return NewLogNotifier()
	}
	return NewSMTPNotifier(cfg)
}
