//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"weekend-booking/internal/domain/appointment"
	"weekend-booking/internal/domain/slot"
	"weekend-booking/internal/infra"
	sqlc "weekend-booking/internal/infra/sqlc/generated"
	"weekend-booking/internal/usecase/commands"
	"weekend-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AppointmentCommandsTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller
	f    *fixture
	cmd  commands.AppointmentCommands
}

func (s *AppointmentCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.f = newFixture(s.ctrl)
	s.cmd = commands.NewAppointmentCommands(s.f.uow, s.f.notifier, s.f.clock, s.f.metrics)
}

func TestAppointmentCommandsSuite(t *testing.T) {
	suite.Run(t, new(AppointmentCommandsTestSuite))
}

func existing(id uuid.UUID, status appointment.Status) *appointment.Appointment {
	created := fridayNow.Add(-48 * time.Hour)
	return appointment.Reconstruct(id, "Sara", "sara@example.com", "555-0101", "",
		saturday, slot.Morning, status, created, created)
}

func notFoundErr() error {
	return infra.WrapRepoErr("failed to lock appointment", pgx.ErrNoRows)
}

func (s *AppointmentCommandsTestSuite) expectLocked(id uuid.UUID, status appointment.Status) {
	s.f.reads.EXPECT().AppointmentForUpdate(gomock.Any(), id).Return(existing(id, status), nil)
}

func (s *AppointmentCommandsTestSuite) TestUpdateStatus_ConfirmSendsNotification() {
	id := uuid.New()
	s.expectLocked(id, appointment.StatusPending)
	s.f.appointments.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), id, appointment.StatusConfirmed, fridayNow).Return(nil)
	s.f.metrics.EXPECT().StatusChanged("pending", "confirmed")
	s.f.notifier.EXPECT().NotifyConfirmed(gomock.Any(), commands.ConfirmationMessage{
		AppointmentID: id,
		Name:          "Sara",
		Email:         "sara@example.com",
		Date:          saturday,
		TimeSlot:      slot.Morning,
	}).Return(nil)
	s.f.metrics.EXPECT().NotificationRecorded("sent")
	s.f.notifications.EXPECT().Record(gomock.Any(), gomock.Any(), shared.NotificationRecord{
		AppointmentID: id,
		Kind:          commands.NotificationKindEmail,
		Topic:         commands.NotificationTopicConfirmation,
		Recipient:     "sara@example.com",
		Status:        shared.NotificationSent,
		At:            fridayNow,
	}).Return(nil)

	res, err := s.cmd.UpdateStatus(context.Background(), id, "confirmed")

	s.Require().NoError(err)
	s.True(res.Changed)
	s.Equal(appointment.StatusPending, res.From)
	s.Equal(appointment.StatusConfirmed, res.To)
}

func (s *AppointmentCommandsTestSuite) TestUpdateStatus_NotificationFailureIsSwallowed() {
	id := uuid.New()
	s.expectLocked(id, appointment.StatusPending)
	s.f.appointments.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), id, appointment.StatusConfirmed, gomock.Any()).Return(nil)
	s.f.metrics.EXPECT().StatusChanged("pending", "confirmed")
	s.f.notifier.EXPECT().NotifyConfirmed(gomock.Any(), gomock.Any()).Return(errors.New("smtp: 421 try later"))
	s.f.metrics.EXPECT().NotificationRecorded("failed")
	s.f.notifications.EXPECT().Record(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ sqlc.DBTX, rec shared.NotificationRecord) error {
			s.Equal(shared.NotificationFailed, rec.Status)
			s.Contains(rec.LastError, "421")
			return errors.New("notifications table unavailable")
		})

	res, err := s.cmd.UpdateStatus(context.Background(), id, "confirmed")

	s.Require().NoError(err)
	s.True(res.Changed)
}

func (s *AppointmentCommandsTestSuite) TestUpdateStatus_MailDisabledRecordsSkipped() {
	id := uuid.New()
	s.expectLocked(id, appointment.StatusPending)
	s.f.appointments.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), id, appointment.StatusConfirmed, gomock.Any()).Return(nil)
	s.f.metrics.EXPECT().StatusChanged("pending", "confirmed")
	s.f.notifier.EXPECT().NotifyConfirmed(gomock.Any(), gomock.Any()).Return(commands.ErrNotificationSkipped)
	s.f.metrics.EXPECT().NotificationRecorded("skipped")
	s.f.notifications.EXPECT().Record(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ sqlc.DBTX, rec shared.NotificationRecord) error {
			s.Equal(shared.NotificationSkipped, rec.Status)
			s.Empty(rec.LastError)
			return nil
		})

	_, err := s.cmd.UpdateStatus(context.Background(), id, "confirmed")

	s.NoError(err)
}

func (s *AppointmentCommandsTestSuite) TestUpdateStatus_OtherTransitionsDoNotNotify() {
	id := uuid.New()
	s.expectLocked(id, appointment.StatusConfirmed)
	s.f.appointments.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), id, appointment.StatusCancelled, gomock.Any()).Return(nil)
	s.f.metrics.EXPECT().StatusChanged("confirmed", "cancelled")

	res, err := s.cmd.UpdateStatus(context.Background(), id, "cancelled")

	s.Require().NoError(err)
	s.True(res.Changed)
}

func (s *AppointmentCommandsTestSuite) TestUpdateStatus_SameStatusIsNoop() {
	id := uuid.New()
	s.expectLocked(id, appointment.StatusConfirmed)

	res, err := s.cmd.UpdateStatus(context.Background(), id, "confirmed")

	s.Require().NoError(err)
	s.False(res.Changed)
}

func (s *AppointmentCommandsTestSuite) TestUpdateStatus_PendingToCompletedRejected() {
	id := uuid.New()
	s.expectLocked(id, appointment.StatusPending)

	_, err := s.cmd.UpdateStatus(context.Background(), id, "completed")

	s.ErrorIs(err, appointment.ErrInvalidTransition)
}

func (s *AppointmentCommandsTestSuite) TestUpdateStatus_UnknownStatus() {
	_, err := s.cmd.UpdateStatus(context.Background(), uuid.New(), "canceled")

	s.ErrorIs(err, appointment.ErrInvalidStatus)
}

func (s *AppointmentCommandsTestSuite) TestUpdateStatus_NotFound() {
	id := uuid.New()
	s.f.reads.EXPECT().AppointmentForUpdate(gomock.Any(), id).Return(nil, notFoundErr())

	_, err := s.cmd.UpdateStatus(context.Background(), id, "confirmed")

	s.ErrorIs(err, appointment.ErrNotFound)
}

func (s *AppointmentCommandsTestSuite) TestDelete() {
	s.Run("success", func() {
		id := uuid.New()
		s.f.appointments.EXPECT().Delete(gomock.Any(), gomock.Any(), id).Return(nil)

		s.NoError(s.cmd.Delete(context.Background(), id))
	})

	s.Run("not found", func() {
		id := uuid.New()
		s.f.appointments.EXPECT().Delete(gomock.Any(), gomock.Any(), id).
			Return(infra.WrapRepoErr("appointment not found", nil, infra.KindNotFound))

		s.ErrorIs(s.cmd.Delete(context.Background(), id), appointment.ErrNotFound)
	})
}
