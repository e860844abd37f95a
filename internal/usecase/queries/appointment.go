package queries

import (
	"context"
	"math"

	"weekend-booking/internal/domain/appointment"
	"weekend-booking/internal/domain/calendar"
	"weekend-booking/internal/infra"
	sqlc "weekend-booking/internal/infra/sqlc/generated"
	"weekend-booking/internal/pkg/clock"
	"weekend-booking/internal/pkg/patch"
	"weekend-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type AppointmentReadStore interface {
	FindByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*AppointmentView, error)
	List(ctx context.Context, db sqlc.DBTX, f AppointmentFilter) ([]*AppointmentView, int64, error)
	Stats(ctx context.Context, db sqlc.DBTX, today calendar.Date) (*DashboardStats, error)
}

type NotificationReadStore interface {
	ListByAppointment(ctx context.Context, db sqlc.DBTX, appointmentID uuid.UUID) ([]*NotificationView, error)
}

type AppointmentQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*AppointmentDetailView, error)
	List(ctx context.Context, f AppointmentFilter) (*AppointmentPage, error)
	// Export returns the filtered listing, newest first, up to MaxExportRows.
	Export(ctx context.Context, f AppointmentFilter) ([]*AppointmentView, error)
	Stats(ctx context.Context) (*DashboardStats, error)
}

type appointmentQueriesImpl struct {
	uow           shared.UnitOfWork
	appointments  AppointmentReadStore
	notifications NotificationReadStore
	window        *calendar.Window
	clock         clock.Clock
}

func NewAppointmentQueries(
	uow shared.UnitOfWork,
	appointments AppointmentReadStore,
	notifications NotificationReadStore,
	window *calendar.Window,
	clk clock.Clock,
) AppointmentQueries {
	return &appointmentQueriesImpl{
		uow:           uow,
		appointments:  appointments,
		notifications: notifications,
		window:        window,
		clock:         clk,
	}
}

func (q *appointmentQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*AppointmentDetailView, error) {
	var detail *AppointmentDetailView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		view, err := q.appointments.FindByID(ctx, db, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return appointment.ErrNotFound
			}
			return err
		}

		notes, err := q.notifications.ListByAppointment(ctx, db, id)
		if err != nil {
			return err
		}

		detail = &AppointmentDetailView{AppointmentView: *view, Notifications: notes}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return detail, nil
}

func (q *appointmentQueriesImpl) List(ctx context.Context, f AppointmentFilter) (*AppointmentPage, error) {
	f = normalizeFilter(f)

	page := &AppointmentPage{Page: f.Page, Limit: f.Limit}
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		var err error
		page.Items, page.Total, err = q.appointments.List(ctx, db, f)
		return err
	})
	if err != nil {
		return nil, err
	}
	return page, nil
}

func (q *appointmentQueriesImpl) Export(ctx context.Context, f AppointmentFilter) ([]*AppointmentView, error) {
	f.Page, f.Limit = 1, MaxExportRows

	var items []*AppointmentView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		var err error
		items, _, err = q.appointments.List(ctx, db, f)
		return err
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (q *appointmentQueriesImpl) Stats(ctx context.Context) (*DashboardStats, error) {
	today := q.window.Today(q.clock.Now())

	var stats *DashboardStats
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		var err error
		stats, err = q.appointments.Stats(ctx, db, today)
		return err
	})
	if err != nil {
		return nil, err
	}
	return stats, nil
}

func normalizeFilter(f AppointmentFilter) AppointmentFilter {
	if f.Page < 1 {
		f.Page = 1
	}
	f.Limit = patch.Clamp(f.Limit, DefaultPageLimit, 1, MaxPageLimit)
	// the row offset is an int4 in SQL
	if maxPage := math.MaxInt32/f.Limit + 1; f.Page > maxPage {
		f.Page = maxPage
	}
	return f
}
