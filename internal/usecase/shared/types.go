package shared

import (
	"time"

	"weekend-booking/internal/domain/calendar"
	"weekend-booking/internal/domain/slot"

	"github.com/google/uuid"
)

// SlotSnapshot holds the two exclusion sets for one date.
type SlotSnapshot struct {
	Date     calendar.Date
	Occupied []slot.TimeSlot
	Disabled []slot.TimeSlot
}

func (s *SlotSnapshot) IsDisabled(ts slot.TimeSlot) bool {
	return contains(s.Disabled, ts)
}

func (s *SlotSnapshot) IsOccupied(ts slot.TimeSlot) bool {
	return contains(s.Occupied, ts)
}

func contains(list []slot.TimeSlot, ts slot.TimeSlot) bool {
	for _, v := range list {
		if v == ts {
			return true
		}
	}
	return false
}

type DisabledSlotSnapshot struct {
	Date      calendar.Date
	TimeSlot  slot.TimeSlot
	Enabled   bool
	UpdatedAt time.Time
}

type AdminSnapshot struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
}

type NotificationStatus string

const (
	NotificationSent    NotificationStatus = "sent"
	NotificationFailed  NotificationStatus = "failed"
	NotificationSkipped NotificationStatus = "skipped"
)

type NotificationRecord struct {
	AppointmentID uuid.UUID
	Kind          string
	Topic         string
	Recipient     string
	Status        NotificationStatus
	LastError     string
	At            time.Time
}
