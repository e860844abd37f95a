package repository

import (
	"context"
	"time"

	"weekend-booking/internal/domain/appointment"
	"weekend-booking/internal/infra"
	"weekend-booking/internal/infra/repository/converter"
	sqlc "weekend-booking/internal/infra/sqlc/generated"
	"weekend-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type AppointmentWriteQueries interface {
	CreateAppointment(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateAppointmentParams) (uuid.UUID, error)
	UpdateAppointmentStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateAppointmentStatusParams) (int64, error)
	DeleteAppointment(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type AppointmentRepository struct {
	queries AppointmentWriteQueries
}

func NewAppointmentRepository(queries AppointmentWriteQueries) *AppointmentRepository {
	return &AppointmentRepository{queries: queries}
}

// Create fails with KindDuplicateKey when one of the partial unique indexes
// on occupying appointments rejects the row; the constraint name is kept.
func (r *AppointmentRepository) Create(ctx context.Context, tx sqlc.DBTX, a *appointment.Appointment) (uuid.UUID, error) {
	id, err := r.queries.CreateAppointment(ctx, tx, converter.AppointmentToInfra(a))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create appointment", err)
	}
	return id, nil
}

func (r *AppointmentRepository) UpdateStatus(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, status appointment.Status, at time.Time) error {
	n, err := r.queries.UpdateAppointmentStatus(ctx, tx, sqlc.UpdateAppointmentStatusParams{
		ID:        id,
		Status:    status.String(),
		UpdatedAt: pgconv.TimeToPgtype(at),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update appointment status", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("appointment not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *AppointmentRepository) Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	n, err := r.queries.DeleteAppointment(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete appointment", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("appointment not found", nil, infra.KindNotFound)
	}
	return nil
}
