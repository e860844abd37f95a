package readstore

import (
	"context"
	"strings"
	"time"

	"weekend-booking/internal/domain/appointment"
	"weekend-booking/internal/domain/calendar"
	"weekend-booking/internal/infra"
	"weekend-booking/internal/infra/repository/converter"
	sqlc "weekend-booking/internal/infra/sqlc/generated"
	"weekend-booking/internal/pkg/pgconv"
	"weekend-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jinzhu/copier"
)

type AppointmentReadQueries interface {
	GetAppointmentByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Appointments, error)
	GetAppointmentByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Appointments, error)
	ExistsOccupyingAppointmentForCustomer(ctx context.Context, db sqlc.DBTX, arg sqlc.ExistsOccupyingAppointmentForCustomerParams) (bool, error)
	ListAppointments(ctx context.Context, db sqlc.DBTX, arg sqlc.ListAppointmentsParams) ([]sqlc.Appointments, error)
	CountAppointments(ctx context.Context, db sqlc.DBTX, arg sqlc.CountAppointmentsParams) (int64, error)
	CountAppointmentsByStatus(ctx context.Context, db sqlc.DBTX) ([]sqlc.CountAppointmentsByStatusRow, error)
	CountAppointmentsOnDate(ctx context.Context, db sqlc.DBTX, date pgtype.Date) (int64, error)
}

type AppointmentReadStore struct {
	queries AppointmentReadQueries
}

func NewAppointmentReadStore(queries AppointmentReadQueries) *AppointmentReadStore {
	return &AppointmentReadStore{queries: queries}
}

func (s *AppointmentReadStore) FindByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*queries.AppointmentView, error) {
	row, err := s.queries.GetAppointmentByID(ctx, db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find appointment by ID", err)
	}
	return toAppointmentView(row)
}

// LockByID loads the aggregate with a row lock; call it inside a write transaction.
func (s *AppointmentReadStore) LockByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*appointment.Appointment, error) {
	row, err := s.queries.GetAppointmentByIDForUpdate(ctx, db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock appointment", err)
	}
	return converter.AppointmentFromInfra(row), nil
}

func (s *AppointmentReadStore) CustomerHasBookingOn(ctx context.Context, db sqlc.DBTX, email string, date calendar.Date) (bool, error) {
	exists, err := s.queries.ExistsOccupyingAppointmentForCustomer(ctx, db, sqlc.ExistsOccupyingAppointmentForCustomerParams{
		Email: email,
		Date:  pgconv.DateToPgtype(date),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to check customer bookings", err)
	}
	return exists, nil
}

func (s *AppointmentReadStore) List(ctx context.Context, db sqlc.DBTX, f queries.AppointmentFilter) ([]*queries.AppointmentView, int64, error) {
	status, search := filterParams(f)

	total, err := s.queries.CountAppointments(ctx, db, sqlc.CountAppointmentsParams{Status: status, Search: search})
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to count appointments", err)
	}

	rows, err := s.queries.ListAppointments(ctx, db, sqlc.ListAppointmentsParams{
		Status:    status,
		Search:    search,
		RowLimit:  int32(f.Limit),
		RowOffset: int32(f.Offset()),
	})
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to list appointments", err)
	}

	views := make([]*queries.AppointmentView, len(rows))
	for i, row := range rows {
		v, err := toAppointmentView(row)
		if err != nil {
			return nil, 0, err
		}
		views[i] = v
	}
	return views, total, nil
}

func (s *AppointmentReadStore) Stats(ctx context.Context, db sqlc.DBTX, today calendar.Date) (*queries.DashboardStats, error) {
	rows, err := s.queries.CountAppointmentsByStatus(ctx, db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count appointments by status", err)
	}

	stats := &queries.DashboardStats{}
	for _, row := range rows {
		stats.Total += row.Count
		switch appointment.Status(row.Status) {
		case appointment.StatusPending:
			stats.Pending = row.Count
		case appointment.StatusConfirmed:
			stats.Confirmed = row.Count
		case appointment.StatusCompleted:
			stats.Completed = row.Count
		case appointment.StatusCancelled:
			stats.Cancelled = row.Count
		}
	}

	stats.Today, err = s.queries.CountAppointmentsOnDate(ctx, db, pgconv.DateToPgtype(today))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count today's appointments", err)
	}
	return stats, nil
}

func filterParams(f queries.AppointmentFilter) (pgtype.Text, pgtype.Text) {
	var status pgtype.Text
	if f.Status != nil {
		status = pgtype.Text{String: f.Status.String(), Valid: true}
	}
	return status, pgconv.TextToPgtype(strings.TrimSpace(f.Search))
}

var appointmentCopyOption = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: pgtype.Text{},
			DstType: copier.String,
			Fn: func(src interface{}) (interface{}, error) {
				return pgconv.TextFromPgtype(src.(pgtype.Text)), nil
			},
		},
		{
			SrcType: pgtype.Date{},
			DstType: calendar.Date{},
			Fn: func(src interface{}) (interface{}, error) {
				return pgconv.DateFromPgtype(src.(pgtype.Date)), nil
			},
		},
		{
			SrcType: pgtype.Timestamptz{},
			DstType: time.Time{},
			Fn: func(src interface{}) (interface{}, error) {
				return pgconv.TimeFromPgtype(src.(pgtype.Timestamptz)), nil
			},
		},
	},
}

func toAppointmentView(row sqlc.Appointments) (*queries.AppointmentView, error) {
	var v queries.AppointmentView
	if err := copier.CopyWithOption(&v, &row, appointmentCopyOption); err != nil {
		return nil, infra.WrapRepoErr("failed to map appointment row", err)
	}
	v.DisplayDate = v.Date.Display()
	return &v, nil
}
