package commands

import (
	"context"
	"log/slog"

	"weekend-booking/internal/domain/appointment"
	"weekend-booking/internal/domain/calendar"
	"weekend-booking/internal/domain/slot"
	"weekend-booking/internal/infra"
	"weekend-booking/internal/pkg/clock"
	"weekend-booking/internal/pkg/errs"
	"weekend-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// Any other unique violation on insert is the occupying-slot index.
const constraintCustomerDay = "appointments_customer_day_uniq"

type CreateBookingResult struct {
	ID       uuid.UUID
	Status   appointment.Status
	Date     calendar.Date
	TimeSlot slot.TimeSlot
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, req appointment.Request) (*CreateBookingResult, error)
}

type bookingCommandsImpl struct {
	uow     shared.UnitOfWork
	window  *calendar.Window
	clock   clock.Clock
	metrics Metrics
}

func NewBookingCommands(uow shared.UnitOfWork, window *calendar.Window, clk clock.Clock, metrics Metrics) BookingCommands {
	return &bookingCommandsImpl{
		uow:     uow,
		window:  window,
		clock:   clk,
		metrics: metrics,
	}
}

// CreateBooking validates the request, re-checks the slot and the customer
// inside one transaction and inserts a pending appointment. The unique
// indexes decide any race the pre-checks could not see.
func (b *bookingCommandsImpl) CreateBooking(ctx context.Context, req appointment.Request) (*CreateBookingResult, error) {
	now := b.clock.Now()

	appt, err := appointment.NewAppointment(req, b.window.Today(now), now)
	if err != nil {
		return nil, b.reject(err)
	}

	err = b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		state, err := tx.Reads().SlotState(ctx, appt.Date())
		if err != nil {
			return err
		}
		if state.IsDisabled(appt.TimeSlot()) {
			return appointment.ErrSlotDisabled
		}

		booked, err := tx.Reads().CustomerHasBookingOn(ctx, appt.Email(), appt.Date())
		if err != nil {
			return err
		}
		if booked {
			return appointment.ErrDuplicateCustomerDay
		}

		if state.IsOccupied(appt.TimeSlot()) {
			return appointment.ErrSlotTaken
		}

		if _, err := tx.Appointments().Create(ctx, tx.DB(), appt); err != nil {
			return translateInsertErr(err)
		}
		return nil
	})
	if err != nil {
		return nil, b.reject(err)
	}

	b.metrics.BookingCreated()
	slog.Info("booking created",
		"appointment_id", appt.ID(),
		"date", appt.Date().String(),
		"time_slot", appt.TimeSlot().String())

	return &CreateBookingResult{
		ID:       appt.ID(),
		Status:   appt.Status(),
		Date:     appt.Date(),
		TimeSlot: appt.TimeSlot(),
	}, nil
}

func (b *bookingCommandsImpl) reject(err error) error {
	if r, ok := errs.ReasonOf(err); ok {
		b.metrics.BookingRejected(r.Code())
		slog.Info("booking rejected", "reason", r.Code())
	}
	return err
}

func translateInsertErr(err error) error {
	if !infra.IsKind(err, infra.KindDuplicateKey) {
		return err
	}
	if infra.ConstraintOf(err) == constraintCustomerDay {
		return appointment.ErrDuplicateCustomerDay
	}
	return appointment.ErrSlotTaken
}
