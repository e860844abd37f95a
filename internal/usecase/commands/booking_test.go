//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"weekend-booking/internal/domain/appointment"
	"weekend-booking/internal/domain/calendar"
	"weekend-booking/internal/domain/slot"
	"weekend-booking/internal/infra"
	sqlc "weekend-booking/internal/infra/sqlc/generated"
	"weekend-booking/internal/pkg/errs"
	"weekend-booking/internal/usecase/commands"
	"weekend-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingCommandsTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller
	f    *fixture
	cmd  commands.BookingCommands
}

func (s *BookingCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.f = newFixture(s.ctrl)
	s.cmd = commands.NewBookingCommands(s.f.uow, s.f.window, s.f.clock, s.f.metrics)
}

func TestBookingCommandsSuite(t *testing.T) {
	suite.Run(t, new(BookingCommandsTestSuite))
}

var saturday = calendar.MustParseDate("2025-06-14")

func validRequest() appointment.Request {
	return appointment.Request{
		Name:     "Abebe Bikila",
		Email:    "Abebe@Example.com",
		Phone:    "555-0100",
		Date:     "2025-06-14",
		TimeSlot: string(slot.Afternoon),
	}
}

func (s *BookingCommandsTestSuite) expectFreeSlot() {
	s.f.reads.EXPECT().SlotState(gomock.Any(), saturday).
		Return(&shared.SlotSnapshot{Date: saturday}, nil)
	s.f.reads.EXPECT().CustomerHasBookingOn(gomock.Any(), "abebe@example.com", saturday).
		Return(false, nil)
}

func uniqueViolation(constraint string) error {
	return infra.WrapRepoErr("failed to create appointment", &pgconn.PgError{Code: "23505", ConstraintName: constraint})
}

func (s *BookingCommandsTestSuite) TestCreateBooking_Success() {
	s.expectFreeSlot()
	s.f.appointments.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ sqlc.DBTX, a *appointment.Appointment) (uuid.UUID, error) {
			s.Equal(appointment.StatusPending, a.Status())
			s.Equal("abebe@example.com", a.Email())
			return a.ID(), nil
		})
	s.f.metrics.EXPECT().BookingCreated()

	res, err := s.cmd.CreateBooking(context.Background(), validRequest())

	s.Require().NoError(err)
	s.NotEqual(uuid.Nil, res.ID)
	s.Equal(appointment.StatusPending, res.Status)
	s.Equal(saturday, res.Date)
	s.Equal(slot.Afternoon, res.TimeSlot)
}

func (s *BookingCommandsTestSuite) TestCreateBooking_RejectedBeforeTransaction() {
	cases := []struct {
		name   string
		mutate func(r *appointment.Request)
		want   *errs.Reason
	}{
		{"missing phone", func(r *appointment.Request) { r.Phone = " " }, appointment.ErrMissingField},
		{"unknown slot label", func(r *appointment.Request) { r.TimeSlot = "2pm-4pm" }, slot.ErrInvalidSlot},
		{"malformed date", func(r *appointment.Request) { r.Date = "14/06/2025" }, calendar.ErrInvalidDate},
		{"weekday", func(r *appointment.Request) { r.Date = "2025-06-16" }, calendar.ErrNotWeekend},
		{"past saturday", func(r *appointment.Request) { r.Date = "2025-06-07" }, calendar.ErrPastDate},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			req := validRequest()
			tc.mutate(&req)
			s.f.metrics.EXPECT().BookingRejected(tc.want.Code())

			res, err := s.cmd.CreateBooking(context.Background(), req)

			s.Nil(res)
			s.ErrorIs(err, tc.want)
		})
	}
}

func (s *BookingCommandsTestSuite) TestCreateBooking_SlotDisabled() {
	s.f.reads.EXPECT().SlotState(gomock.Any(), saturday).
		Return(&shared.SlotSnapshot{Date: saturday, Disabled: []slot.TimeSlot{slot.Afternoon}}, nil)
	s.f.metrics.EXPECT().BookingRejected("slot_disabled")

	_, err := s.cmd.CreateBooking(context.Background(), validRequest())

	s.ErrorIs(err, appointment.ErrSlotDisabled)
}

func (s *BookingCommandsTestSuite) TestCreateBooking_DisabledWinsOverOccupied() {
	s.f.reads.EXPECT().SlotState(gomock.Any(), saturday).
		Return(&shared.SlotSnapshot{
			Date:     saturday,
			Occupied: []slot.TimeSlot{slot.Afternoon},
			Disabled: []slot.TimeSlot{slot.Afternoon},
		}, nil)
	s.f.metrics.EXPECT().BookingRejected("slot_disabled")

	_, err := s.cmd.CreateBooking(context.Background(), validRequest())

	s.ErrorIs(err, appointment.ErrSlotDisabled)
}

func (s *BookingCommandsTestSuite) TestCreateBooking_DuplicateCustomerDay() {
	s.f.reads.EXPECT().SlotState(gomock.Any(), saturday).
		Return(&shared.SlotSnapshot{Date: saturday, Occupied: []slot.TimeSlot{slot.Morning}}, nil)
	s.f.reads.EXPECT().CustomerHasBookingOn(gomock.Any(), "abebe@example.com", saturday).Return(true, nil)
	s.f.metrics.EXPECT().BookingRejected("duplicate_customer_day")

	_, err := s.cmd.CreateBooking(context.Background(), validRequest())

	s.ErrorIs(err, appointment.ErrDuplicateCustomerDay)
}

func (s *BookingCommandsTestSuite) TestCreateBooking_SlotTaken() {
	s.f.reads.EXPECT().SlotState(gomock.Any(), saturday).
		Return(&shared.SlotSnapshot{Date: saturday, Occupied: []slot.TimeSlot{slot.Afternoon}}, nil)
	s.f.reads.EXPECT().CustomerHasBookingOn(gomock.Any(), gomock.Any(), saturday).Return(false, nil)
	s.f.metrics.EXPECT().BookingRejected("slot_taken")

	_, err := s.cmd.CreateBooking(context.Background(), validRequest())

	s.ErrorIs(err, appointment.ErrSlotTaken)
}

func (s *BookingCommandsTestSuite) TestCreateBooking_LostRace() {
	cases := []struct {
		name       string
		constraint string
		want       error
		code       string
	}{
		{"occupying slot index", "appointments_occupying_slot_uniq", appointment.ErrSlotTaken, "slot_taken"},
		{"customer day index", "appointments_customer_day_uniq", appointment.ErrDuplicateCustomerDay, "duplicate_customer_day"},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.expectFreeSlot()
			s.f.appointments.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(uuid.Nil, uniqueViolation(tc.constraint))
			s.f.metrics.EXPECT().BookingRejected(tc.code)

			_, err := s.cmd.CreateBooking(context.Background(), validRequest())

			s.ErrorIs(err, tc.want)
		})
	}
}

func (s *BookingCommandsTestSuite) TestCreateBooking_PersistenceFailure() {
	dbErr := errors.New("connection reset")
	s.f.reads.EXPECT().SlotState(gomock.Any(), saturday).
		Return(nil, infra.WrapRepoErr("failed to list occupying appointments", dbErr))

	_, err := s.cmd.CreateBooking(context.Background(), validRequest())

	s.Require().Error(err)
	s.True(infra.IsKind(err, infra.KindDBFailure))
	s.ErrorIs(err, dbErr)
}
