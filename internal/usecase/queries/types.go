package queries

import (
	"time"

	"weekend-booking/internal/domain/appointment"
	"weekend-booking/internal/domain/calendar"
	"weekend-booking/internal/domain/slot"

	"github.com/google/uuid"
)

const (
	DefaultPageLimit = 100
	MaxPageLimit     = 500
	MaxExportRows    = 10000
)

// AvailabilityDay is one bookable date as customers see it.
type AvailabilityDay struct {
	Date           calendar.Date
	DisplayDate    string
	AvailableSlots []slot.TimeSlot
}

// DateSlotsView is the admin breakdown of one window date.
type DateSlotsView struct {
	Date               calendar.Date
	DisplayDate        string
	Slots              []slot.Status
	BookedCount        int
	AdminDisabledCount int
	AvailableCount     int
	TotalSlots         int
}

type DisabledSlotView struct {
	Date        calendar.Date
	DisplayDate string
	TimeSlot    slot.TimeSlot
	UpdatedAt   time.Time
}

type AppointmentView struct {
	ID          uuid.UUID
	Name        string
	Email       string
	Phone       string
	Message     string
	Date        calendar.Date
	DisplayDate string
	TimeSlot    string
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type NotificationView struct {
	ID        uuid.UUID
	Kind      string
	Topic     string
	Recipient string
	Status    string
	LastError string
	CreatedAt time.Time
}

type AppointmentDetailView struct {
	AppointmentView
	Notifications []*NotificationView
}

type AppointmentFilter struct {
	Status *appointment.Status
	Search string
	Page   int
	Limit  int
}

func (f AppointmentFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}

type AppointmentPage struct {
	Items []*AppointmentView
	Page  int
	Limit int
	Total int64
}

type DashboardStats struct {
	Total     int64
	Pending   int64
	Confirmed int64
	Completed int64
	Cancelled int64
	Today     int64
}

type AdminView struct {
	ID          uuid.UUID
	Name        string
	Email       string
	LastLoginAt *time.Time
}
