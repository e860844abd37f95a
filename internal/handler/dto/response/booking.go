package response

import (
	"weekend-booking/internal/domain/slot"
	"weekend-booking/internal/usecase/commands"
	"weekend-booking/internal/usecase/queries"
)

const BookingSubmittedMessage = "Your appointment request has been submitted successfully! We'll contact you soon."

// SlotOption carries the label twice; clients render Display and send Value back.
type SlotOption struct {
	Value   string `json:"value"`
	Display string `json:"display"`
}

func toSlotOptions(slots []slot.TimeSlot) []SlotOption {
	out := make([]SlotOption, len(slots))
	for i, s := range slots {
		out[i] = SlotOption{Value: s.String(), Display: s.String()}
	}
	return out
}

type AvailabilityDayResponse struct {
	Date           string       `json:"date"`
	DisplayDate    string       `json:"displayDate"`
	AvailableSlots []SlotOption `json:"availableSlots"`
}

func FromAvailability(days []*queries.AvailabilityDay) []*AvailabilityDayResponse {
	res := make([]*AvailabilityDayResponse, len(days))
	for i, d := range days {
		res[i] = &AvailabilityDayResponse{
			Date:           d.Date.String(),
			DisplayDate:    d.DisplayDate,
			AvailableSlots: toSlotOptions(d.AvailableSlots),
		}
	}
	return res
}

type BookingCreatedResponse struct {
	ID       string `json:"id"`
	Status   string `json:"status"`
	Date     string `json:"date"`
	TimeSlot string `json:"timeSlot"`
	Message  string `json:"message"`
}

func FromCreateBooking(r *commands.CreateBookingResult) *BookingCreatedResponse {
	return &BookingCreatedResponse{
		ID:       r.ID.String(),
		Status:   r.Status.String(),
		Date:     r.Date.String(),
		TimeSlot: r.TimeSlot.String(),
		Message:  BookingSubmittedMessage,
	}
}
