package calendar

import (
	"time"

	"weekend-booking/internal/pkg/errs"
)

const (
	DefaultWindowDays = 30
	DefaultMaxDates   = 8
)

var ErrInvalidWindow = errs.New("window days and max dates must be positive")

// Window is the rolling set of upcoming weekend days open for booking.
// "Today" is the wall-clock day in the window's location; generation,
// validation and display all go through the same Date values.
type Window struct {
	loc        *time.Location
	windowDays int
	maxDates   int
}

func NewWindow(loc *time.Location, windowDays, maxDates int) (*Window, error) {
	if windowDays <= 0 || maxDates <= 0 {
		return nil, ErrInvalidWindow
	}
	if loc == nil {
		loc = time.UTC
	}
	return &Window{loc: loc, windowDays: windowDays, maxDates: maxDates}, nil
}

func (w *Window) Location() *time.Location { return w.loc }
func (w *Window) WindowDays() int          { return w.windowDays }
func (w *Window) MaxDates() int            { return w.maxDates }

func (w *Window) Today(now time.Time) Date {
	return DateOf(now.In(w.loc))
}

// BookableDates scans windowDays days starting today and keeps the first
// maxDates Saturdays and Sundays, oldest first.
func (w *Window) BookableDates(now time.Time) []Date {
	today := w.Today(now)
	dates := make([]Date, 0, w.maxDates)
	for i := 0; i < w.windowDays && len(dates) < w.maxDates; i++ {
		d := today.AddDays(i)
		if d.IsWeekend() {
			dates = append(dates, d)
		}
	}
	return dates
}
