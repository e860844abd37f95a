package response

import (
	"time"

	"weekend-booking/internal/usecase/queries"
)

type AppointmentResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Message     string    `json:"message"`
	Date        string    `json:"date"`
	DisplayDate string    `json:"displayDate"`
	TimeSlot    string    `json:"timeSlot"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func FromAppointmentView(v *queries.AppointmentView) *AppointmentResponse {
	return &AppointmentResponse{
		ID:          v.ID.String(),
		Name:        v.Name,
		Email:       v.Email,
		Phone:       v.Phone,
		Message:     v.Message,
		Date:        v.Date.String(),
		DisplayDate: v.DisplayDate,
		TimeSlot:    v.TimeSlot,
		Status:      v.Status,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
}

type NotificationResponse struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	Topic     string    `json:"topic"`
	Recipient string    `json:"recipient"`
	Status    string    `json:"status"`
	LastError string    `json:"lastError,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type AppointmentDetailResponse struct {
	*AppointmentResponse
	Notifications []*NotificationResponse `json:"notifications"`
}

func FromAppointmentDetail(v *queries.AppointmentDetailView) *AppointmentDetailResponse {
	notes := make([]*NotificationResponse, len(v.Notifications))
	for i, n := range v.Notifications {
		notes[i] = &NotificationResponse{
			ID:        n.ID.String(),
			Kind:      n.Kind,
			Topic:     n.Topic,
			Recipient: n.Recipient,
			Status:    n.Status,
			LastError: n.LastError,
			CreatedAt: n.CreatedAt,
		}
	}
	return &AppointmentDetailResponse{
		AppointmentResponse: FromAppointmentView(&v.AppointmentView),
		Notifications:       notes,
	}
}

type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"totalPages"`
}

type AppointmentListResponse struct {
	Appointments []*AppointmentResponse `json:"appointments"`
	Pagination   Pagination             `json:"pagination"`
}

func FromAppointmentPage(p *queries.AppointmentPage) *AppointmentListResponse {
	items := make([]*AppointmentResponse, len(p.Items))
	for i, v := range p.Items {
		items[i] = FromAppointmentView(v)
	}
	var pages int64
	if p.Limit > 0 {
		pages = (p.Total + int64(p.Limit) - 1) / int64(p.Limit)
	}
	return &AppointmentListResponse{
		Appointments: items,
		Pagination: Pagination{
			Page:       p.Page,
			Limit:      p.Limit,
			Total:      p.Total,
			TotalPages: pages,
		},
	}
}

type DashboardStatsResponse struct {
	Total     int64 `json:"total"`
	Pending   int64 `json:"pending"`
	Confirmed int64 `json:"confirmed"`
	Completed int64 `json:"completed"`
	Cancelled int64 `json:"cancelled"`
	Today     int64 `json:"today"`
}

func FromDashboardStats(s *queries.DashboardStats) *DashboardStatsResponse {
	return &DashboardStatsResponse{
		Total:     s.Total,
		Pending:   s.Pending,
		Confirmed: s.Confirmed,
		Completed: s.Completed,
		Cancelled: s.Cancelled,
		Today:     s.Today,
	}
}
