package queries

import (
	"context"

	"weekend-booking/internal/domain/calendar"
	"weekend-booking/internal/domain/slot"
	sqlc "weekend-booking/internal/infra/sqlc/generated"
	"weekend-booking/internal/pkg/clock"
	"weekend-booking/internal/usecase/shared"
)

type SlotReadStore interface {
	OccupiedByDates(ctx context.Context, db sqlc.DBTX, dates []calendar.Date) (map[calendar.Date][]slot.TimeSlot, error)
	DisabledByDates(ctx context.Context, db sqlc.DBTX, dates []calendar.Date) (map[calendar.Date][]slot.TimeSlot, error)
	ListDisabledFrom(ctx context.Context, db sqlc.DBTX, from calendar.Date) ([]*DisabledSlotView, error)
}

// AvailabilityQueries answers which (date, slot) pairs can be booked.
// Every call reads fresh state; nothing is cached.
type AvailabilityQueries interface {
	AvailableSlots(ctx context.Context, date calendar.Date) ([]slot.TimeSlot, error)
	FullAvailability(ctx context.Context, date calendar.Date) ([]slot.Status, error)
	// PublicAvailability lists window dates that still have a free slot.
	PublicAvailability(ctx context.Context) ([]*AvailabilityDay, error)
	// AdminAvailability lists every window date with its slot breakdown.
	AdminAvailability(ctx context.Context) ([]*DateSlotsView, error)
	DisabledSlots(ctx context.Context) ([]*DisabledSlotView, error)
}

type availabilityQueriesImpl struct {
	uow    shared.UnitOfWork
	slots  SlotReadStore
	window *calendar.Window
	clock  clock.Clock
}

func NewAvailabilityQueries(uow shared.UnitOfWork, slots SlotReadStore, window *calendar.Window, clk clock.Clock) AvailabilityQueries {
	return &availabilityQueriesImpl{
		uow:    uow,
		slots:  slots,
		window: window,
		clock:  clk,
	}
}

func (q *availabilityQueriesImpl) AvailableSlots(ctx context.Context, date calendar.Date) ([]slot.TimeSlot, error) {
	statuses, err := q.FullAvailability(ctx, date)
	if err != nil {
		return nil, err
	}
	return slot.Available(statuses), nil
}

func (q *availabilityQueriesImpl) FullAvailability(ctx context.Context, date calendar.Date) ([]slot.Status, error) {
	resolved, err := q.resolve(ctx, []calendar.Date{date})
	if err != nil {
		return nil, err
	}
	return resolved[date], nil
}

func (q *availabilityQueriesImpl) PublicAvailability(ctx context.Context) ([]*AvailabilityDay, error) {
	dates := q.window.BookableDates(q.clock.Now())
	resolved, err := q.resolve(ctx, dates)
	if err != nil {
		return nil, err
	}

	days := make([]*AvailabilityDay, 0, len(dates))
	for _, d := range dates {
		free := slot.Available(resolved[d])
		if len(free) == 0 {
			continue
		}
		days = append(days, &AvailabilityDay{
			Date:           d,
			DisplayDate:    d.Display(),
			AvailableSlots: free,
		})
	}
	return days, nil
}

func (q *availabilityQueriesImpl) AdminAvailability(ctx context.Context) ([]*DateSlotsView, error) {
	dates := q.window.BookableDates(q.clock.Now())
	resolved, err := q.resolve(ctx, dates)
	if err != nil {
		return nil, err
	}

	views := make([]*DateSlotsView, len(dates))
	for i, d := range dates {
		v := &DateSlotsView{
			Date:        d,
			DisplayDate: d.Display(),
			Slots:       resolved[d],
			TotalSlots:  slot.Count(),
		}
		for _, st := range v.Slots {
			if st.Booked {
				v.BookedCount++
			}
			if st.AdminDisabled {
				v.AdminDisabledCount++
			}
			if st.Available {
				v.AvailableCount++
			}
		}
		views[i] = v
	}
	return views, nil
}

// DisabledSlots lists slots still switched off from today onward.
func (q *availabilityQueriesImpl) DisabledSlots(ctx context.Context) ([]*DisabledSlotView, error) {
	today := q.window.Today(q.clock.Now())

	var views []*DisabledSlotView
	err := q.uow.WithDB(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		var err error
		views, err = q.slots.ListDisabledFrom(ctx, db, today)
		return err
	})
	if err != nil {
		return nil, err
	}
	return views, nil
}

// resolve reads both exclusion sets from one snapshot so a booking or toggle
// committed mid-call cannot show up in only one of them.
func (q *availabilityQueriesImpl) resolve(ctx context.Context, dates []calendar.Date) (map[calendar.Date][]slot.Status, error) {
	var occupied, disabled map[calendar.Date][]slot.TimeSlot
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		var err error
		if occupied, err = q.slots.OccupiedByDates(ctx, db, dates); err != nil {
			return err
		}
		disabled, err = q.slots.DisabledByDates(ctx, db, dates)
		return err
	})
	if err != nil {
		return nil, err
	}

	out := make(map[calendar.Date][]slot.Status, len(dates))
	for _, d := range dates {
		out[d] = slot.Resolve(occupied[d], disabled[d])
	}
	return out, nil
}
