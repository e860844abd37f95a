package readstore

import (
	"context"

	"weekend-booking/internal/domain/calendar"
	"weekend-booking/internal/domain/slot"
	"weekend-booking/internal/infra"
	sqlc "weekend-booking/internal/infra/sqlc/generated"
	"weekend-booking/internal/pkg/pgconv"
	"weekend-booking/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type SlotReadQueries interface {
	ListOccupyingAppointmentsByDates(ctx context.Context, db sqlc.DBTX, dates []pgtype.Date) ([]sqlc.ListOccupyingAppointmentsByDatesRow, error)
	ListDisabledSlotsByDates(ctx context.Context, db sqlc.DBTX, dates []pgtype.Date) ([]sqlc.ListDisabledSlotsByDatesRow, error)
	ListDisabledSlotsFrom(ctx context.Context, db sqlc.DBTX, fromDate pgtype.Date) ([]sqlc.DisabledSlots, error)
}

// SlotReadStore reads the two exclusion sets the availability resolver
// combines. Results are keyed by date and never cached.
type SlotReadStore struct {
	queries SlotReadQueries
}

func NewSlotReadStore(queries SlotReadQueries) *SlotReadStore {
	return &SlotReadStore{queries: queries}
}

func (s *SlotReadStore) OccupiedByDates(ctx context.Context, db sqlc.DBTX, dates []calendar.Date) (map[calendar.Date][]slot.TimeSlot, error) {
	if len(dates) == 0 {
		return map[calendar.Date][]slot.TimeSlot{}, nil
	}

	rows, err := s.queries.ListOccupyingAppointmentsByDates(ctx, db, pgconv.DatesToPgtype(dates))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list occupying appointments", err)
	}

	out := make(map[calendar.Date][]slot.TimeSlot, len(dates))
	for _, row := range rows {
		d := pgconv.DateFromPgtype(row.Date)
		out[d] = append(out[d], slot.TimeSlot(row.TimeSlot))
	}
	return out, nil
}

func (s *SlotReadStore) DisabledByDates(ctx context.Context, db sqlc.DBTX, dates []calendar.Date) (map[calendar.Date][]slot.TimeSlot, error) {
	if len(dates) == 0 {
		return map[calendar.Date][]slot.TimeSlot{}, nil
	}

	rows, err := s.queries.ListDisabledSlotsByDates(ctx, db, pgconv.DatesToPgtype(dates))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list disabled slots", err)
	}

	out := make(map[calendar.Date][]slot.TimeSlot, len(dates))
	for _, row := range rows {
		d := pgconv.DateFromPgtype(row.Date)
		out[d] = append(out[d], slot.TimeSlot(row.TimeSlot))
	}
	return out, nil
}

func (s *SlotReadStore) ListDisabledFrom(ctx context.Context, db sqlc.DBTX, from calendar.Date) ([]*queries.DisabledSlotView, error) {
	rows, err := s.queries.ListDisabledSlotsFrom(ctx, db, pgconv.DateToPgtype(from))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list disabled slots", err)
	}

	out := make([]*queries.DisabledSlotView, len(rows))
	for i, row := range rows {
		d := pgconv.DateFromPgtype(row.Date)
		out[i] = &queries.DisabledSlotView{
			Date:        d,
			DisplayDate: d.Display(),
			TimeSlot:    slot.TimeSlot(row.TimeSlot),
			UpdatedAt:   pgconv.TimeFromPgtype(row.UpdatedAt),
		}
	}
	return out, nil
}
