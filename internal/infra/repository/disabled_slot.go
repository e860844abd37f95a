package repository

import (
	"context"
	"time"

	"weekend-booking/internal/domain/calendar"
	"weekend-booking/internal/domain/slot"
	"weekend-booking/internal/infra"
	sqlc "weekend-booking/internal/infra/sqlc/generated"
	"weekend-booking/internal/pkg/pgconv"
	"weekend-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type DisabledSlotWriteQueries interface {
	UpsertDisabledSlot(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertDisabledSlotParams) (sqlc.DisabledSlots, error)
}

type DisabledSlotRepository struct {
	queries DisabledSlotWriteQueries
}

func NewDisabledSlotRepository(queries DisabledSlotWriteQueries) *DisabledSlotRepository {
	return &DisabledSlotRepository{queries: queries}
}

// Upsert keeps one row per (date, slot). The fresh id is only used when no
// row exists yet.
func (r *DisabledSlotRepository) Upsert(ctx context.Context, tx sqlc.DBTX, date calendar.Date, ts slot.TimeSlot, enabled bool, at time.Time) (*shared.DisabledSlotSnapshot, error) {
	row, err := r.queries.UpsertDisabledSlot(ctx, tx, sqlc.UpsertDisabledSlotParams{
		ID:        uuid.New(),
		Date:      pgconv.DateToPgtype(date),
		TimeSlot:  ts.String(),
		Enabled:   enabled,
		CreatedAt: pgconv.TimeToPgtype(at),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to upsert disabled slot", err)
	}

	return &shared.DisabledSlotSnapshot{
		Date:      pgconv.DateFromPgtype(row.Date),
		TimeSlot:  slot.TimeSlot(row.TimeSlot),
		Enabled:   row.Enabled,
		UpdatedAt: pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}
