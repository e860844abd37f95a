package commands

import (
	"context"
	"log/slog"

	"weekend-booking/internal/domain/appointment"
	"weekend-booking/internal/infra"
	"weekend-booking/internal/pkg/clock"
	"weekend-booking/internal/pkg/errs"
	"weekend-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type UpdateStatusResult struct {
	ID      uuid.UUID
	From    appointment.Status
	To      appointment.Status
	Changed bool
}

type AppointmentCommands interface {
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*UpdateStatusResult, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type appointmentCommandsImpl struct {
	uow      shared.UnitOfWork
	notifier Notifier
	clock    clock.Clock
	metrics  Metrics
}

func NewAppointmentCommands(uow shared.UnitOfWork, notifier Notifier, clk clock.Clock, metrics Metrics) AppointmentCommands {
	return &appointmentCommandsImpl{
		uow:      uow,
		notifier: notifier,
		clock:    clk,
		metrics:  metrics,
	}
}

// UpdateStatus applies one lifecycle step under a row lock. Entering
// confirmed sends the confirmation after commit; delivery problems never
// fail the update.
func (c *appointmentCommandsImpl) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*UpdateStatusResult, error) {
	next, err := appointment.ParseStatus(status)
	if err != nil {
		return nil, err
	}

	var (
		appt *appointment.Appointment
		res  = &UpdateStatusResult{ID: id, To: next}
	)
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		appt, err = tx.Reads().AppointmentForUpdate(ctx, id)
		if err != nil {
			return notFoundOr(err)
		}

		res.From = appt.Status()
		res.Changed, err = appt.TransitionTo(next, c.clock.Now())
		if err != nil || !res.Changed {
			return err
		}

		return notFoundOr(tx.Appointments().UpdateStatus(ctx, tx.DB(), id, appt.Status(), appt.UpdatedAt()))
	})
	if err != nil {
		return nil, err
	}

	if !res.Changed {
		return res, nil
	}

	c.metrics.StatusChanged(res.From.String(), res.To.String())
	slog.Info("appointment status changed",
		"appointment_id", id,
		"from", res.From.String(),
		"to", res.To.String())

	if res.To == appointment.StatusConfirmed {
		c.notifyConfirmed(context.WithoutCancel(ctx), appt)
	}
	return res, nil
}

func (c *appointmentCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return notFoundOr(tx.Appointments().Delete(ctx, tx.DB(), id))
	})
	if err != nil {
		return err
	}

	slog.Info("appointment deleted", "appointment_id", id)
	return nil
}

func (c *appointmentCommandsImpl) notifyConfirmed(ctx context.Context, appt *appointment.Appointment) {
	rec := shared.NotificationRecord{
		AppointmentID: appt.ID(),
		Kind:          NotificationKindEmail,
		Topic:         NotificationTopicConfirmation,
		Recipient:     appt.Email(),
		Status:        shared.NotificationSent,
	}

	err := c.notifier.NotifyConfirmed(ctx, ConfirmationMessage{
		AppointmentID: appt.ID(),
		Name:          appt.Name(),
		Email:         appt.Email(),
		Date:          appt.Date(),
		TimeSlot:      appt.TimeSlot(),
	})
	switch {
	case err == nil:
	case errs.Is(err, ErrNotificationSkipped):
		rec.Status = shared.NotificationSkipped
	default:
		rec.Status = shared.NotificationFailed
		rec.LastError = err.Error()
		slog.Warn("confirmation email failed",
			"appointment_id", appt.ID(),
			"error", err.Error())
	}
	c.metrics.NotificationRecorded(string(rec.Status))

	rec.At = c.clock.Now()
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Notifications().Record(ctx, tx.DB(), rec)
	})
	if err != nil {
		slog.Warn("failed to record notification",
			"appointment_id", appt.ID(),
			"error", err.Error())
	}
}

func notFoundOr(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return appointment.ErrNotFound
	}
	return err
}
