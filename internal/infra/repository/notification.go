package repository

import (
	"context"

	"weekend-booking/internal/infra"
	sqlc "weekend-booking/internal/infra/sqlc/generated"
	"weekend-booking/internal/pkg/pgconv"
	"weekend-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type NotificationWriteQueries interface {
	CreateNotification(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateNotificationParams) error
}

type NotificationRepository struct {
	queries NotificationWriteQueries
}

func NewNotificationRepository(queries NotificationWriteQueries) *NotificationRepository {
	return &NotificationRepository{queries: queries}
}

func (r *NotificationRepository) Record(ctx context.Context, tx sqlc.DBTX, rec shared.NotificationRecord) error {
	params := sqlc.CreateNotificationParams{
		ID:        uuid.New(),
		Kind:      rec.Kind,
		Topic:     rec.Topic,
		Recipient: rec.Recipient,
		Status:    string(rec.Status),
		LastError: pgconv.TextToPgtype(rec.LastError),
		CreatedAt: pgconv.TimeToPgtype(rec.At),
	}
	if rec.AppointmentID != uuid.Nil {
		params.AppointmentID = pgconv.UUIDToPgtype(rec.AppointmentID)
	}

	if err := r.queries.CreateNotification(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to record notification", err)
	}
	return nil
}
