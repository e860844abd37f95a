//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"weekend-booking/internal/domain/appointment"
	"weekend-booking/internal/domain/calendar"
	"weekend-booking/internal/infra"
	sqlc "weekend-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAppointmentWriteQueries struct {
	mock.Mock
}

func (m *MockAppointmentWriteQueries) CreateAppointment(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateAppointmentParams) (uuid.UUID, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockAppointmentWriteQueries) UpdateAppointmentStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateAppointmentStatusParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAppointmentWriteQueries) DeleteAppointment(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(int64), args.Error(1)
}

func newPendingAppointment(t *testing.T) *appointment.Appointment {
	t.Helper()
	now := time.Date(2024, 3, 8, 15, 0, 0, 0, time.UTC)
	a, err := appointment.NewAppointment(appointment.Request{
		Name:     "Jane Doe",
		Email:    "Jane@Example.com",
		Phone:    "204-555-0100",
		Date:     "2024-03-09",
		TimeSlot: "2 pm - 4 pm",
	}, calendar.DateOf(now), now)
	require.NoError(t, err)
	return a
}

func TestAppointmentRepository_Create(t *testing.T) {
	tests := []struct {
		name           string
		mockErr        error
		wantKind       infra.RepositoryErrorKind
		wantConstraint string
	}{
		{
			name: "success",
		},
		{
			name:           "occupied slot violates partial unique index",
			mockErr:        &pgconn.PgError{Code: "23505", ConstraintName: "appointments_occupying_slot_uniq"},
			wantKind:       infra.KindDuplicateKey,
			wantConstraint: "appointments_occupying_slot_uniq",
		},
		{
			name:           "customer already booked that day",
			mockErr:        &pgconn.PgError{Code: "23505", ConstraintName: "appointments_customer_day_uniq"},
			wantKind:       infra.KindDuplicateKey,
			wantConstraint: "appointments_customer_day_uniq",
		},
		{
			name:     "database error",
			mockErr:  assert.AnError,
			wantKind: infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newPendingAppointment(t)
			mockQueries := new(MockAppointmentWriteQueries)
			mockQueries.On("CreateAppointment", mock.Anything, mock.Anything, mock.MatchedBy(func(p sqlc.CreateAppointmentParams) bool {
				return p.ID == a.ID() &&
					p.Email == "jane@example.com" &&
					p.Status == "pending" &&
					p.TimeSlot == "2 pm - 4 pm" &&
					p.Date.Valid &&
					!p.Message.Valid
			})).Return(a.ID(), tt.mockErr)

			repo := NewAppointmentRepository(mockQueries)
			id, err := repo.Create(context.Background(), nil, a)

			if tt.wantKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind))
				assert.Equal(t, tt.wantConstraint, infra.ConstraintOf(err))
				assert.Equal(t, uuid.Nil, id)
			} else {
				require.NoError(t, err)
				assert.Equal(t, a.ID(), id)
			}
			mockQueries.AssertExpectations(t)
		})
	}
}

func TestAppointmentRepository_UpdateStatus(t *testing.T) {
	id := uuid.New()
	at := time.Date(2024, 3, 8, 15, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		rows     int64
		mockErr  error
		wantKind infra.RepositoryErrorKind
	}{
		{name: "success", rows: 1},
		{name: "no row updated", rows: 0, wantKind: infra.KindNotFound},
		{name: "database error", mockErr: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockAppointmentWriteQueries)
			mockQueries.On("UpdateAppointmentStatus", mock.Anything, mock.Anything, mock.MatchedBy(func(p sqlc.UpdateAppointmentStatusParams) bool {
				return p.ID == id && p.Status == "confirmed" && p.UpdatedAt.Time.Equal(at)
			})).Return(tt.rows, tt.mockErr)

			repo := NewAppointmentRepository(mockQueries)
			err := repo.UpdateStatus(context.Background(), nil, id, appointment.StatusConfirmed, at)

			if tt.wantKind != "" {
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				assert.NoError(t, err)
			}
			mockQueries.AssertExpectations(t)
		})
	}
}

func TestAppointmentRepository_Delete(t *testing.T) {
	id := uuid.New()

	t.Run("success", func(t *testing.T) {
		mockQueries := new(MockAppointmentWriteQueries)
		mockQueries.On("DeleteAppointment", mock.Anything, mock.Anything, id).Return(int64(1), nil)

		err := NewAppointmentRepository(mockQueries).Delete(context.Background(), nil, id)
		assert.NoError(t, err)
		mockQueries.AssertExpectations(t)
	})

	t.Run("missing row is not found", func(t *testing.T) {
		mockQueries := new(MockAppointmentWriteQueries)
		mockQueries.On("DeleteAppointment", mock.Anything, mock.Anything, id).Return(int64(0), nil)

		err := NewAppointmentRepository(mockQueries).Delete(context.Background(), nil, id)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		mockQueries.AssertExpectations(t)
	})
}
