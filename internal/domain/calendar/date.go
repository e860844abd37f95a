package calendar

import (
	"fmt"
	"strings"
	"time"

	"weekend-booking/internal/pkg/errs"
)

const (
	isoLayout     = "2006-01-02"
	displayLayout = "Monday, January 2, 2006"
)

var (
	ErrInvalidDate = errs.NewReason(errs.ErrValidation, "invalid_date", "date must be formatted as YYYY-MM-DD")
	ErrNotWeekend  = errs.NewReason(errs.ErrValidation, "not_weekend", "bookings are only available on weekends")
	ErrPastDate    = errs.NewReason(errs.ErrValidation, "past_date", "date is in the past")
)

// Date is a civil calendar day. It carries no clock time and no zone;
// callers decide which location "today" is measured in.
type Date struct {
	year  int
	month time.Month
	day   int
}

func NewDate(year int, month time.Month, day int) Date {
	return DateOf(time.Date(year, month, day, 12, 0, 0, 0, time.UTC))
}

// DateOf returns the day t falls on in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{year: y, month: m, day: d}
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(isoLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return DateOf(t), nil
}

func MustParseDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic("calendar: invalid date " + s)
	}
	return d
}

func (d Date) Year() int          { return d.year }
func (d Date) Month() time.Month  { return d.month }
func (d Date) Day() int           { return d.day }
func (d Date) IsZero() bool       { return d == Date{} }
func (d Date) Equal(o Date) bool  { return d == o }
func (d Date) Before(o Date) bool { return d.compare(o) < 0 }
func (d Date) After(o Date) bool  { return d.compare(o) > 0 }

// noon in UTC keeps day arithmetic clear of DST transitions.
func (d Date) noon() time.Time {
	return time.Date(d.year, d.month, d.day, 12, 0, 0, 0, time.UTC)
}

func (d Date) Weekday() time.Weekday {
	return d.noon().Weekday()
}

func (d Date) IsWeekend() bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

func (d Date) AddDays(n int) Date {
	return DateOf(d.noon().AddDate(0, 0, n))
}

// StartIn returns midnight of d in loc.
func (d Date) StartIn(loc *time.Location) time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, loc)
}

// Time returns midnight UTC, the representation used for DATE columns.
func (d Date) Time() time.Time {
	return d.StartIn(time.UTC)
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, int(d.month), d.day)
}

// Display renders the long form shown to customers, e.g. "Saturday, March 9, 2024".
func (d Date) Display() string {
	return d.noon().Format(displayLayout)
}

func (d Date) MarshalText() ([]byte, error) {
	if d.IsZero() {
		return []byte{}, nil
	}
	return []byte(d.String()), nil
}

func (d *Date) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Date) compare(o Date) int {
	switch {
	case d.year != o.year:
		return d.year - o.year
	case d.month != o.month:
		return int(d.month) - int(o.month)
	default:
		return d.day - o.day
	}
}
