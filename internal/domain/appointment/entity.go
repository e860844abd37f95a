package appointment

import (
	"strings"
	"time"

	"weekend-booking/internal/domain/calendar"
	"weekend-booking/internal/domain/slot"

	"github.com/google/uuid"
)

// Request is the raw customer input for a booking.
type Request struct {
	Name     string
	Email    string
	Phone    string
	Message  string
	Date     string
	TimeSlot string
}

type Appointment struct {
	id        uuid.UUID
	name      string
	email     string
	phone     string
	message   string
	date      calendar.Date
	slot      slot.TimeSlot
	status    Status
	createdAt time.Time
	updatedAt time.Time
}

// NewAppointment validates req and builds a pending appointment.
// Checks run in a fixed order and the first failure wins:
// required fields, slot label, weekend day, not before today.
func NewAppointment(req Request, today calendar.Date, now time.Time) (*Appointment, error) {
	name := strings.TrimSpace(req.Name)
	email := normalizeEmail(req.Email)
	phone := strings.TrimSpace(req.Phone)
	if name == "" || email == "" || phone == "" || strings.TrimSpace(req.Date) == "" || strings.TrimSpace(req.TimeSlot) == "" {
		return nil, ErrMissingField
	}

	ts, err := slot.Parse(req.TimeSlot)
	if err != nil {
		return nil, err
	}

	date, err := calendar.ParseDate(req.Date)
	if err != nil {
		return nil, err
	}
	if !date.IsWeekend() {
		return nil, calendar.ErrNotWeekend
	}
	if date.Before(today) {
		return nil, calendar.ErrPastDate
	}

	return &Appointment{
		id:        uuid.New(),
		name:      name,
		email:     email,
		phone:     phone,
		message:   strings.TrimSpace(req.Message),
		date:      date,
		slot:      ts,
		status:    StatusPending,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func Reconstruct(
	id uuid.UUID,
	name, email, phone, message string,
	date calendar.Date,
	ts slot.TimeSlot,
	status Status,
	createdAt, updatedAt time.Time,
) *Appointment {
	return &Appointment{
		id:        id,
		name:      name,
		email:     email,
		phone:     phone,
		message:   message,
		date:      date,
		slot:      ts,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// TransitionTo moves the appointment to next. Requesting the current status
// is a no-op and reports changed=false.
func (a *Appointment) TransitionTo(next Status, now time.Time) (bool, error) {
	if !next.IsValid() {
		return false, ErrInvalidStatus
	}
	if next == a.status {
		return false, nil
	}
	if !a.status.CanTransitionTo(next) {
		return false, ErrInvalidTransition
	}
	a.status = next
	a.updatedAt = now
	return true, nil
}

func (a *Appointment) ID() uuid.UUID           { return a.id }
func (a *Appointment) Name() string            { return a.name }
func (a *Appointment) Email() string           { return a.email }
func (a *Appointment) Phone() string           { return a.phone }
func (a *Appointment) Message() string         { return a.message }
func (a *Appointment) Date() calendar.Date     { return a.date }
func (a *Appointment) TimeSlot() slot.TimeSlot { return a.slot }
func (a *Appointment) Status() Status          { return a.status }
func (a *Appointment) CreatedAt() time.Time    { return a.createdAt }
func (a *Appointment) UpdatedAt() time.Time    { return a.updatedAt }
func (a *Appointment) Occupies() bool          { return a.status.IsOccupying() }

func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
