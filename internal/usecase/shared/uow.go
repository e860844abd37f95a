package shared

import (
	"context"
	"time"

	"weekend-booking/internal/domain/admin"
	"weekend-booking/internal/domain/appointment"
	"weekend-booking/internal/domain/calendar"
	"weekend-booking/internal/domain/slot"
	sqlc "weekend-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Appointments() AppointmentRepository
	DisabledSlots() DisabledSlotRepository
	Admins() AdminRepository
	Notifications() NotificationRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

// CommandReads are the lookups write-side use cases need before mutating.
// Inside a Tx they run on the transaction's connection.
type CommandReads interface {
	SlotState(ctx context.Context, date calendar.Date) (*SlotSnapshot, error)
	CustomerHasBookingOn(ctx context.Context, email string, date calendar.Date) (bool, error)
	AppointmentForUpdate(ctx context.Context, id uuid.UUID) (*appointment.Appointment, error)
	AdminByEmail(ctx context.Context, email string) (*AdminSnapshot, error)
}

type AppointmentRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, a *appointment.Appointment) (uuid.UUID, error)
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, status appointment.Status, at time.Time) error
	Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
}

type DisabledSlotRepository interface {
	Upsert(ctx context.Context, tx sqlc.DBTX, date calendar.Date, ts slot.TimeSlot, enabled bool, at time.Time) (*DisabledSlotSnapshot, error)
}

type AdminRepository interface {
	CreateIfAbsent(ctx context.Context, tx sqlc.DBTX, a *admin.Admin) (bool, error)
	UpdateLastLogin(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, at time.Time) error
}

type NotificationRepository interface {
	Record(ctx context.Context, tx sqlc.DBTX, rec NotificationRecord) error
}
