package pgconv

import (
	"errors"
	"time"

	"weekend-booking/internal/domain/calendar"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

func DateToPgtype(d calendar.Date) pgtype.Date {
	if d.IsZero() {
		return pgtype.Date{Valid: false}
	}
	return pgtype.Date{Time: d.Time(), Valid: true}
}

func DatesToPgtype(ds []calendar.Date) []pgtype.Date {
	out := make([]pgtype.Date, len(ds))
	for i, d := range ds {
		out[i] = DateToPgtype(d)
	}
	return out
}

// DateFromPgtype reads the civil date; pgx decodes date columns as UTC midnight.
func DateFromPgtype(pd pgtype.Date) calendar.Date {
	if !pd.Valid {
		return calendar.Date{}
	}
	return calendar.DateOf(pd.Time.UTC())
}

func UUIDFromPgtype(pu pgtype.UUID) uuid.UUID {
	if !pu.Valid {
		return uuid.Nil
	}
	return uuid.UUID(pu.Bytes)
}

func UUIDToPgtype(id uuid.UUID) pgtype.UUID {
	return pgtype.UUID{Bytes: id, Valid: true}
}

func UUIDPtrToPgtype(id *uuid.UUID) pgtype.UUID {
	if id == nil {
		return pgtype.UUID{Valid: false}
	}
	return pgtype.UUID{Bytes: *id, Valid: true}
}

func TextToPgtype(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: s != ""}
}

func TextFromPgtype(pt pgtype.Text) string {
	if !pt.Valid {
		return ""
	}
	return pt.String
}

func TimeToPgtype(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

func TimeFromPgtype(pt pgtype.Timestamptz) time.Time {
	return pt.Time
}

func TimePtrFromPgtype(pt pgtype.Timestamptz) *time.Time {
	if !pt.Valid {
		return nil
	}
	t := pt.Time
	return &t
}

func IsNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
