//go:build unit

package commands_test

import (
	"context"
	"time"

	"weekend-booking/internal/domain/calendar"
	sqlc "weekend-booking/internal/infra/sqlc/generated"
	"weekend-booking/internal/pkg/clock"
	"weekend-booking/internal/usecase/shared"
	commandsmock "weekend-booking/tests/mock/commands"
	sharedmock "weekend-booking/tests/mock/shared"

	"go.uber.org/mock/gomock"
)

// Friday afternoon in Winnipeg; the next bookable day is Saturday 2025-06-14.
var fridayNow = time.Date(2025, 6, 13, 20, 0, 0, 0, time.UTC)

type fixture struct {
	uow           *sharedmock.MockUnitOfWork
	tx            *sharedmock.MockTx
	reads         *sharedmock.MockCommandReads
	appointments  *sharedmock.MockAppointmentRepository
	disabledSlots *sharedmock.MockDisabledSlotRepository
	admins        *sharedmock.MockAdminRepository
	notifications *sharedmock.MockNotificationRepository
	metrics       *commandsmock.MockMetrics
	notifier      *commandsmock.MockNotifier
	clock         *clock.MockClock
	window        *calendar.Window
}

func newFixture(ctrl *gomock.Controller) *fixture {
	loc, err := time.LoadLocation("America/Winnipeg")
	if err != nil {
		panic(err)
	}
	window, err := calendar.NewWindow(loc, calendar.DefaultWindowDays, calendar.DefaultMaxDates)
	if err != nil {
		panic(err)
	}

	f := &fixture{
		uow:           sharedmock.NewMockUnitOfWork(ctrl),
		tx:            sharedmock.NewMockTx(ctrl),
		reads:         sharedmock.NewMockCommandReads(ctrl),
		appointments:  sharedmock.NewMockAppointmentRepository(ctrl),
		disabledSlots: sharedmock.NewMockDisabledSlotRepository(ctrl),
		admins:        sharedmock.NewMockAdminRepository(ctrl),
		notifications: sharedmock.NewMockNotificationRepository(ctrl),
		metrics:       commandsmock.NewMockMetrics(ctrl),
		notifier:      commandsmock.NewMockNotifier(ctrl),
		clock:         clock.NewMockClock(fridayNow),
		window:        window,
	}

	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, f.tx)
		}).AnyTimes()
	f.uow.EXPECT().CommandReads().Return(f.reads).AnyTimes()

	f.tx.EXPECT().Reads().Return(f.reads).AnyTimes()
	f.tx.EXPECT().Appointments().Return(f.appointments).AnyTimes()
	f.tx.EXPECT().DisabledSlots().Return(f.disabledSlots).AnyTimes()
	f.tx.EXPECT().Admins().Return(f.admins).AnyTimes()
	f.tx.EXPECT().Notifications().Return(f.notifications).AnyTimes()
	f.tx.EXPECT().DB().Return(sqlc.DBTX(nil)).AnyTimes()

	return f
}
