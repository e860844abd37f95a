package request

import (
	"strings"

	"weekend-booking/internal/domain/appointment"
	"weekend-booking/internal/usecase/queries"
)

type AppointmentListQuery struct {
	Page   int    `form:"page"`
	Limit  int    `form:"limit"`
	Status string `form:"status"`
	Search string `form:"search"`
}

// ToFilter treats an empty status or "all" as no status filter.
func (q *AppointmentListQuery) ToFilter() (queries.AppointmentFilter, error) {
	f := queries.AppointmentFilter{
		Page:   q.Page,
		Limit:  q.Limit,
		Search: strings.TrimSpace(q.Search),
	}
	if q.Status == "" || q.Status == "all" {
		return f, nil
	}
	status, err := appointment.ParseStatus(q.Status)
	if err != nil {
		return queries.AppointmentFilter{}, err
	}
	f.Status = &status
	return f, nil
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
