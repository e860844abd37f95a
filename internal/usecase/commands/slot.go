package commands

import (
	"context"
	"log/slog"

	"weekend-booking/internal/domain/calendar"
	"weekend-booking/internal/domain/slot"
	"weekend-booking/internal/pkg/clock"
	"weekend-booking/internal/usecase/shared"
)

type SlotCommands interface {
	SetSlotEnabled(ctx context.Context, date, timeSlot string, enabled bool) (*shared.DisabledSlotSnapshot, error)
}

type slotCommandsImpl struct {
	uow     shared.UnitOfWork
	clock   clock.Clock
	metrics Metrics
}

func NewSlotCommands(uow shared.UnitOfWork, clk clock.Clock, metrics Metrics) SlotCommands {
	return &slotCommandsImpl{uow: uow, clock: clk, metrics: metrics}
}

// SetSlotEnabled is idempotent: repeating a call leaves the same single row.
// Appointments are never touched, so disabling an already booked slot keeps
// the booking.
func (s *slotCommandsImpl) SetSlotEnabled(ctx context.Context, date, timeSlot string, enabled bool) (*shared.DisabledSlotSnapshot, error) {
	ts, err := slot.Parse(timeSlot)
	if err != nil {
		return nil, err
	}
	d, err := calendar.ParseDate(date)
	if err != nil {
		return nil, err
	}

	var snap *shared.DisabledSlotSnapshot
	err = s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		snap, err = tx.DisabledSlots().Upsert(ctx, tx.DB(), d, ts, enabled, s.clock.Now())
		return err
	})
	if err != nil {
		return nil, err
	}

	s.metrics.SlotToggled(enabled)
	slog.Info("slot toggled",
		"date", d.String(),
		"time_slot", ts.String(),
		"enabled", enabled)
	return snap, nil
}
