//go:build unit || e2e

package builder

import (
	"time"

	"weekend-booking/internal/domain/appointment"
	"weekend-booking/internal/domain/calendar"
	"weekend-booking/internal/domain/slot"
	reqdto "weekend-booking/internal/handler/dto/request"
	"weekend-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type AppointmentBuilder struct {
	ID       uuid.UUID
	Name     string
	Email    string
	Phone    string
	Message  string
	Date     calendar.Date
	TimeSlot slot.TimeSlot
	Status   appointment.Status
	At       time.Time
}

// NewAppointmentBuilder defaults to a pending morning booking on Saturday 2025-06-14.
func NewAppointmentBuilder() *AppointmentBuilder {
	return &AppointmentBuilder{
		ID:       uuid.New(),
		Name:     "Sara Lee",
		Email:    "sara@example.com",
		Phone:    "204-555-0101",
		Message:  "First visit",
		Date:     calendar.MustParseDate("2025-06-14"),
		TimeSlot: slot.Morning,
		Status:   appointment.StatusPending,
		At:       time.Date(2025, 6, 10, 15, 0, 0, 0, time.UTC),
	}
}

func (b *AppointmentBuilder) With(mutate func(*AppointmentBuilder)) *AppointmentBuilder {
	mutate(b)
	return b
}

func (b *AppointmentBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		Name:     b.Name,
		Email:    b.Email,
		Phone:    b.Phone,
		Message:  b.Message,
		Date:     b.Date.String(),
		TimeSlot: b.TimeSlot.String(),
	}
}

func (b *AppointmentBuilder) BuildDomain() *appointment.Appointment {
	return appointment.Reconstruct(b.ID, b.Name, b.Email, b.Phone, b.Message, b.Date, b.TimeSlot, b.Status, b.At, b.At)
}

func (b *AppointmentBuilder) BuildView() *queries.AppointmentView {
	return &queries.AppointmentView{
		ID:          b.ID,
		Name:        b.Name,
		Email:       b.Email,
		Phone:       b.Phone,
		Message:     b.Message,
		Date:        b.Date,
		DisplayDate: b.Date.Display(),
		TimeSlot:    b.TimeSlot.String(),
		Status:      b.Status.String(),
		CreatedAt:   b.At,
		UpdatedAt:   b.At,
	}
}

func (b *AppointmentBuilder) BuildDetailView() *queries.AppointmentDetailView {
	return &queries.AppointmentDetailView{
		AppointmentView: *b.BuildView(),
		Notifications:   []*queries.NotificationView{},
	}
}
