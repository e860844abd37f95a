package request

import "weekend-booking/internal/domain/appointment"

// CreateBookingRequest leaves presence checks to the domain so a missing
// field comes back as missing_field rather than a binding error.
type CreateBookingRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Message  string `json:"message"`
	Date     string `json:"date"`
	TimeSlot string `json:"time_slot"`
}

func (r *CreateBookingRequest) ToDomain() appointment.Request {
	return appointment.Request{
		Name:     r.Name,
		Email:    r.Email,
		Phone:    r.Phone,
		Message:  r.Message,
		Date:     r.Date,
		TimeSlot: r.TimeSlot,
	}
}
