//go:build unit

package readstore

import (
	"context"
	"testing"
	"time"

	"weekend-booking/internal/domain/appointment"
	"weekend-booking/internal/domain/calendar"
	"weekend-booking/internal/infra"
	sqlc "weekend-booking/internal/infra/sqlc/generated"
	"weekend-booking/internal/pkg/pgconv"
	"weekend-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAppointmentReadQueries struct {
	mock.Mock
}

func (m *MockAppointmentReadQueries) GetAppointmentByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Appointments, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Appointments), args.Error(1)
}

func (m *MockAppointmentReadQueries) GetAppointmentByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Appointments, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Appointments), args.Error(1)
}

func (m *MockAppointmentReadQueries) ExistsOccupyingAppointmentForCustomer(ctx context.Context, db sqlc.DBTX, arg sqlc.ExistsOccupyingAppointmentForCustomerParams) (bool, error) {
	args := m.Called(ctx, db, arg)
	return args.Bool(0), args.Error(1)
}

func (m *MockAppointmentReadQueries) ListAppointments(ctx context.Context, db sqlc.DBTX, arg sqlc.ListAppointmentsParams) ([]sqlc.Appointments, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]sqlc.Appointments), args.Error(1)
}

func (m *MockAppointmentReadQueries) CountAppointments(ctx context.Context, db sqlc.DBTX, arg sqlc.CountAppointmentsParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAppointmentReadQueries) CountAppointmentsByStatus(ctx context.Context, db sqlc.DBTX) ([]sqlc.CountAppointmentsByStatusRow, error) {
	args := m.Called(ctx, db)
	return args.Get(0).([]sqlc.CountAppointmentsByStatusRow), args.Error(1)
}

func (m *MockAppointmentReadQueries) CountAppointmentsOnDate(ctx context.Context, db sqlc.DBTX, date pgtype.Date) (int64, error) {
	args := m.Called(ctx, db, date)
	return args.Get(0).(int64), args.Error(1)
}

func appointmentRow() sqlc.Appointments {
	created := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	return sqlc.Appointments{
		ID:        uuid.New(),
		Name:      "Jane Doe",
		Email:     "jane@example.com",
		Phone:     "204-555-0100",
		Message:   pgtype.Text{String: "first visit", Valid: true},
		Date:      pgconv.DateToPgtype(calendar.MustParseDate("2024-03-09")),
		TimeSlot:  "2 pm - 4 pm",
		Status:    "confirmed",
		CreatedAt: pgconv.TimeToPgtype(created),
		UpdatedAt: pgconv.TimeToPgtype(created.Add(time.Hour)),
	}
}

func TestAppointmentReadStore_FindByID(t *testing.T) {
	row := appointmentRow()

	t.Run("maps every column", func(t *testing.T) {
		mockQueries := new(MockAppointmentReadQueries)
		mockQueries.On("GetAppointmentByID", mock.Anything, mock.Anything, row.ID).Return(row, nil)

		v, err := NewAppointmentReadStore(mockQueries).FindByID(context.Background(), nil, row.ID)
		require.NoError(t, err)

		assert.Equal(t, row.ID, v.ID)
		assert.Equal(t, "Jane Doe", v.Name)
		assert.Equal(t, "first visit", v.Message)
		assert.Equal(t, calendar.MustParseDate("2024-03-09"), v.Date)
		assert.Equal(t, "Saturday, March 9, 2024", v.DisplayDate)
		assert.Equal(t, "2 pm - 4 pm", v.TimeSlot)
		assert.Equal(t, "confirmed", v.Status)
		assert.True(t, row.CreatedAt.Time.Equal(v.CreatedAt))
		assert.True(t, row.UpdatedAt.Time.Equal(v.UpdatedAt))
	})

	t.Run("missing row is not found", func(t *testing.T) {
		mockQueries := new(MockAppointmentReadQueries)
		mockQueries.On("GetAppointmentByID", mock.Anything, mock.Anything, row.ID).Return(sqlc.Appointments{}, pgx.ErrNoRows)

		v, err := NewAppointmentReadStore(mockQueries).FindByID(context.Background(), nil, row.ID)
		assert.Nil(t, v)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestAppointmentReadStore_LockByID(t *testing.T) {
	row := appointmentRow()
	mockQueries := new(MockAppointmentReadQueries)
	mockQueries.On("GetAppointmentByIDForUpdate", mock.Anything, mock.Anything, row.ID).Return(row, nil)

	a, err := NewAppointmentReadStore(mockQueries).LockByID(context.Background(), nil, row.ID)
	require.NoError(t, err)
	assert.Equal(t, appointment.StatusConfirmed, a.Status())
	assert.Equal(t, "first visit", a.Message())
}

func TestAppointmentReadStore_List(t *testing.T) {
	status := appointment.StatusPending
	filter := queries.AppointmentFilter{Status: &status, Search: "  jane ", Page: 3, Limit: 20}

	mockQueries := new(MockAppointmentReadQueries)
	mockQueries.On("CountAppointments", mock.Anything, mock.Anything, sqlc.CountAppointmentsParams{
		Status: pgtype.Text{String: "pending", Valid: true},
		Search: pgtype.Text{String: "jane", Valid: true},
	}).Return(int64(41), nil)
	mockQueries.On("ListAppointments", mock.Anything, mock.Anything, sqlc.ListAppointmentsParams{
		Status:    pgtype.Text{String: "pending", Valid: true},
		Search:    pgtype.Text{String: "jane", Valid: true},
		RowLimit:  20,
		RowOffset: 40,
	}).Return([]sqlc.Appointments{appointmentRow()}, nil)

	items, total, err := NewAppointmentReadStore(mockQueries).List(context.Background(), nil, filter)
	require.NoError(t, err)
	assert.Equal(t, int64(41), total)
	assert.Len(t, items, 1)
	mockQueries.AssertExpectations(t)
}

func TestAppointmentReadStore_Stats(t *testing.T) {
	today := calendar.MustParseDate("2024-03-09")
	mockQueries := new(MockAppointmentReadQueries)
	mockQueries.On("CountAppointmentsByStatus", mock.Anything, mock.Anything).Return([]sqlc.CountAppointmentsByStatusRow{
		{Status: "pending", Count: 3},
		{Status: "confirmed", Count: 2},
		{Status: "cancelled", Count: 1},
	}, nil)
	mockQueries.On("CountAppointmentsOnDate", mock.Anything, mock.Anything, pgconv.DateToPgtype(today)).Return(int64(4), nil)

	stats, err := NewAppointmentReadStore(mockQueries).Stats(context.Background(), nil, today)
	require.NoError(t, err)
	assert.Equal(t, queries.DashboardStats{Total: 6, Pending: 3, Confirmed: 2, Cancelled: 1, Today: 4}, *stats)
}
