package commands

import (
	"context"

	"weekend-booking/internal/domain/calendar"
	"weekend-booking/internal/domain/slot"
	"weekend-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	NotificationKindEmail         = "email"
	NotificationTopicConfirmation = "appointment.confirmed"
)

// ErrNotificationSkipped is returned by notifiers that are configured off.
// The attempt is still recorded, with status skipped.
var ErrNotificationSkipped = errs.New("notification skipped")

// ConfirmationMessage carries what a customer needs to hear once an
// appointment moves into confirmed.
type ConfirmationMessage struct {
	AppointmentID uuid.UUID
	Name          string
	Email         string
	Date          calendar.Date
	TimeSlot      slot.TimeSlot
}

type Notifier interface {
	NotifyConfirmed(ctx context.Context, msg ConfirmationMessage) error
}

// Metrics is the slice of the Prometheus collectors the write side updates.
type Metrics interface {
	BookingCreated()
	BookingRejected(reason string)
	StatusChanged(from, to string)
	SlotToggled(enabled bool)
	NotificationRecorded(status string)
}
