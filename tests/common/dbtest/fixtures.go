//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"weekend-booking/internal/domain/appointment"
	"weekend-booking/internal/domain/calendar"
	"weekend-booking/internal/domain/slot"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// CreateAdmin inserts an admin with a MinCost hash of password and returns its id.
func CreateAdmin(t *testing.T, db DBLike, email, name, password string) uuid.UUID {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	adminID := uuid.New()
	_, err = db.Exec(context.Background(),
		"INSERT INTO admins (id, name, email, password_hash) VALUES ($1, $2, $3, $4)",
		adminID, name, email, string(hash))
	require.NoError(t, err)
	return adminID
}

// CreateAppointment inserts a row directly, bypassing the booking guard.
func CreateAppointment(t *testing.T, db DBLike, name, email string, date calendar.Date, ts slot.TimeSlot, status appointment.Status) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		`INSERT INTO appointments (id, name, email, phone, message, date, time_slot, status)
		 VALUES ($1, $2, $3, '204-555-0100', '', $4, $5, $6)`,
		id, name, email, date.Time(), string(ts), string(status))
	require.NoError(t, err)
	return id
}

func DisableSlot(t *testing.T, db DBLike, date calendar.Date, ts slot.TimeSlot) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		`INSERT INTO disabled_slots (id, date, time_slot, enabled) VALUES ($1, $2, $3, false)
		 ON CONFLICT (date, time_slot) DO UPDATE SET enabled = false, updated_at = now()`,
		uuid.New(), date.Time(), string(ts))
	require.NoError(t, err)
}

func CountAppointments(t *testing.T, db DBLike, date calendar.Date, ts slot.TimeSlot) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM appointments WHERE date = $1 AND time_slot = $2",
		date.Time(), string(ts)).Scan(&n)
	require.NoError(t, err)
	return n
}

func CountDisabledRows(t *testing.T, db DBLike, date calendar.Date, ts slot.TimeSlot) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM disabled_slots WHERE date = $1 AND time_slot = $2",
		date.Time(), string(ts)).Scan(&n)
	require.NoError(t, err)
	return n
}

func NotificationStatuses(t *testing.T, db DBLike, appointmentID uuid.UUID) []string {
	t.Helper()

	rows, err := db.Query(context.Background(),
		"SELECT status FROM notifications WHERE appointment_id = $1 ORDER BY created_at", appointmentID)
	require.NoError(t, err)
	defer rows.Close()

	var out []string
	for rows.Next() {
		var s string
		require.NoError(t, rows.Scan(&s))
		out = append(out, s)
	}
	require.NoError(t, rows.Err())
	return out
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
