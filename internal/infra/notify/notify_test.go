//go:build unit

package notify

import (
	"bufio"
	"context"
	"net"
	"net/mail"
	"strconv"
	"strings"
	"testing"
	"time"

	"weekend-booking/internal/domain/calendar"
	"weekend-booking/internal/domain/slot"
	"weekend-booking/internal/pkg/config"
	"weekend-booking/internal/pkg/errs"
	"weekend-booking/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func confirmation() commands.ConfirmationMessage {
	return commands.ConfirmationMessage{
		AppointmentID: uuid.New(),
		Name:          "Abebe",
		Email:         "abebe@example.com",
		Date:          calendar.MustParseDate("2025-06-14"),
		TimeSlot:      slot.Afternoon,
	}
}

func TestConfirmationBody(t *testing.T) {
	body := ConfirmationBody(confirmation())

	assert.True(t, strings.HasPrefix(body, "Hi Abebe,"))
	assert.Contains(t, body, "Date: Saturday, June 14, 2025\r\n")
	assert.Contains(t, body, "Time: 2 pm - 4 pm\r\n")
}

func TestBuildMessage(t *testing.T) {
	at := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	raw := string(buildMessage(mail.Address{Name: "Weekend Booking", Address: "no-reply@example.com"},
		"abebe@example.com", confirmationSubject, "hello\r\n", at))

	headers, body, found := strings.Cut(raw, "\r\n\r\n")
	require.True(t, found)
	assert.Contains(t, headers, `From: "Weekend Booking" <no-reply@example.com>`)
	assert.Contains(t, headers, "To: abebe@example.com")
	assert.Contains(t, headers, "Subject: "+confirmationSubject)
	assert.Contains(t, headers, "Content-Type: text/plain; charset=utf-8")
	assert.Equal(t, "hello\r\n", body)
}

func TestLogNotifier_ReportsSkipped(t *testing.T) {
	err := NewLogNotifier().NotifyConfirmed(context.Background(), confirmation())
	assert.ErrorIs(t, err, commands.ErrNotificationSkipped)
}

func TestNew_PicksByEnabledFlag(t *testing.T) {
	_, isLog := New(config.MailConfig{Enabled: false}).(*LogNotifier)
	assert.True(t, isLog)

	_, isSMTP := New(config.MailConfig{Enabled: true, Host: "localhost", Port: 25}).(*SMTPNotifier)
	assert.True(t, isSMTP)
}

func TestSMTPNotifier_InvalidRecipient(t *testing.T) {
	n := NewSMTPNotifier(config.MailConfig{Host: "127.0.0.1", Port: 1, From: "no-reply@example.com"})
	msg := confirmation()
	msg.Email = "not an address"

	err := n.NotifyConfirmed(context.Background(), msg)
	assert.True(t, errs.Is(err, ErrInvalidRecipient))
}

func TestSMTPNotifier_DeliversToRelay(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	received := make(chan string, 1)
	go serveOnce(t, ln, received)

	port := ln.Addr().(*net.TCPAddr).Port
	n := NewSMTPNotifier(config.MailConfig{
		Host:     "127.0.0.1",
		Port:     port,
		From:     "no-reply@example.com",
		FromName: "Weekend Booking",
		Timeout:  5 * time.Second,
	})

	require.NoError(t, n.NotifyConfirmed(context.Background(), confirmation()))

	select {
	case data := <-received:
		assert.Contains(t, data, "To: <abebe@example.com>")
		assert.Contains(t, data, "Time: 2 pm - 4 pm")
	case <-time.After(5 * time.Second):
		t.Fatal("relay never received the message")
	}
}

func TestSMTPNotifier_RelayDown(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := ln.Addr().(*net.TCPAddr).Port
	require.NoError(t, ln.Close())

	n := NewSMTPNotifier(config.MailConfig{Host: "127.0.0.1", Port: port, From: "no-reply@example.com", Timeout: time.Second})
	err = n.NotifyConfirmed(context.Background(), confirmation())
	assert.True(t, errs.Is(err, ErrSendFailed))
}

func TestNewSMTPNotifier_DefaultsTimeout(t *testing.T) {
	n := NewSMTPNotifier(config.MailConfig{Host: "127.0.0.1", Port: 25, From: "no-reply@example.com"})
	assert.Equal(t, DefaultSendTimeout, n.timeout)

	n = NewSMTPNotifier(config.MailConfig{Host: "127.0.0.1", Port: 25, From: "no-reply@example.com", Timeout: -time.Second})
	assert.Equal(t, DefaultSendTimeout, n.timeout)
}

func TestSMTPNotifier_StalledRelayTimesOut(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	done := make(chan struct{})
	defer close(done)
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		<-done
	}()

	port := ln.Addr().(*net.TCPAddr).Port
	n := NewSMTPNotifier(config.MailConfig{Host: "127.0.0.1", Port: port, From: "no-reply@example.com", Timeout: 200 * time.Millisecond})

	start := time.Now()
	err = n.NotifyConfirmed(context.Background(), confirmation())
	assert.True(t, errs.Is(err, ErrSendFailed))
	assert.Less(t, time.Since(start), 5*time.Second)
}

// serveOnce speaks just enough SMTP for one plain-text delivery.
func serveOnce(t *testing.T, ln net.Listener, received chan<- string) {
	conn, err := ln.Accept()
	if err != nil {
		return
	}
	defer conn.Close()

	r := bufio.NewReader(conn)
	reply := func(s string) { _, _ = conn.Write([]byte(s + "\r\n")) }

	reply("220 localhost ESMTP")
	for {
		line, err := r.ReadString('\n')
		if err != nil {
			return
		}
		cmd := strings.ToUpper(strings.TrimSpace(line))
		switch {
		case strings.HasPrefix(cmd, "EHLO"), strings.HasPrefix(cmd, "HELO"):
			reply("250-localhost")
			reply("250 8BITMIME")
		case strings.HasPrefix(cmd, "MAIL FROM"), strings.HasPrefix(cmd, "RCPT TO"):
			reply("250 OK")
		case cmd == "DATA":
			reply("354 End data with <CR><LF>.<CR><LF>")
			var data strings.Builder
			for {
				l, err := r.ReadString('\n')
				if err != nil {
					return
				}
				if l == ".\r\n" {
					break
				}
				data.WriteString(l)
			}
			received <- data.String()
			reply("250 OK: queued as " + strconv.Itoa(1))
		case cmd == "QUIT":
			reply("221 Bye")
			return
		default:
			reply("502 Command not implemented")
		}
	}
}
