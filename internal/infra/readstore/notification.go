package readstore

import (
	"context"

	"weekend-booking/internal/infra"
	sqlc "weekend-booking/internal/infra/sqlc/generated"
	"weekend-booking/internal/pkg/pgconv"
	"weekend-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type NotificationReadQueries interface {
	ListNotificationsByAppointment(ctx context.Context, db sqlc.DBTX, appointmentID pgtype.UUID) ([]sqlc.Notifications, error)
}

type NotificationReadStore struct {
	queries NotificationReadQueries
}

func NewNotificationReadStore(queries NotificationReadQueries) *NotificationReadStore {
	return &NotificationReadStore{queries: queries}
}

func (s *NotificationReadStore) ListByAppointment(ctx context.Context, db sqlc.DBTX, appointmentID uuid.UUID) ([]*queries.NotificationView, error) {
	rows, err := s.queries.ListNotificationsByAppointment(ctx, db, pgconv.UUIDToPgtype(appointmentID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list notifications", err)
	}

	out := make([]*queries.NotificationView, len(rows))
	for i, row := range rows {
		out[i] = &queries.NotificationView{
			ID:        row.ID,
			Kind:      row.Kind,
			Topic:     row.Topic,
			Recipient: row.Recipient,
			Status:    row.Status,
			LastError: pgconv.TextFromPgtype(row.LastError),
			CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return out, nil
}
