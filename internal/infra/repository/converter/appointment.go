package converter

import (
	"weekend-booking/internal/domain/appointment"
	"weekend-booking/internal/domain/slot"
	sqlc "weekend-booking/internal/infra/sqlc/generated"
	"weekend-booking/internal/pkg/pgconv"
)

func AppointmentToInfra(a *appointment.Appointment) sqlc.CreateAppointmentParams {
	return sqlc.CreateAppointmentParams{
		ID:        a.ID(),
		Name:      a.Name(),
		Email:     a.Email(),
		Phone:     a.Phone(),
		Message:   pgconv.TextToPgtype(a.Message()),
		Date:      pgconv.DateToPgtype(a.Date()),
		TimeSlot:  a.TimeSlot().String(),
		Status:    a.Status().String(),
		CreatedAt: pgconv.TimeToPgtype(a.CreatedAt()),
		UpdatedAt: pgconv.TimeToPgtype(a.UpdatedAt()),
	}
}

// AppointmentFromInfra trusts the row: CHECK constraints already pin the
// slot and status columns to known values.
func AppointmentFromInfra(row sqlc.Appointments) *appointment.Appointment {
	return appointment.Reconstruct(
		row.ID,
		row.Name,
		row.Email,
		row.Phone,
		pgconv.TextFromPgtype(row.Message),
		pgconv.DateFromPgtype(row.Date),
		slot.TimeSlot(row.TimeSlot),
		appointment.Status(row.Status),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}
