package response

import (
	"time"

	"weekend-booking/internal/usecase/queries"
	"weekend-booking/internal/usecase/shared"
)

// SlotStateResponse keeps "disabled" as an alias of adminDisabled for older clients.
type SlotStateResponse struct {
	Value         string `json:"value"`
	Display       string `json:"display"`
	Available     bool   `json:"available"`
	Booked        bool   `json:"booked"`
	AdminDisabled bool   `json:"adminDisabled"`
	Disabled      bool   `json:"disabled"`
}

type DateSlotsResponse struct {
	Date               string               `json:"date"`
	DisplayDate        string               `json:"displayDate"`
	Slots              []*SlotStateResponse `json:"slots"`
	BookedCount        int                  `json:"bookedCount"`
	AdminDisabledCount int                  `json:"adminDisabledCount"`
	AvailableCount     int                  `json:"availableCount"`
	TotalSlots         int                  `json:"totalSlots"`
}

func FromDateSlots(views []*queries.DateSlotsView) []*DateSlotsResponse {
	res := make([]*DateSlotsResponse, len(views))
	for i, v := range views {
		slots := make([]*SlotStateResponse, len(v.Slots))
		for j, st := range v.Slots {
			slots[j] = &SlotStateResponse{
				Value:         st.Slot.String(),
				Display:       st.Slot.String(),
				Available:     st.Available,
				Booked:        st.Booked,
				AdminDisabled: st.AdminDisabled,
				Disabled:      st.AdminDisabled,
			}
		}
		res[i] = &DateSlotsResponse{
			Date:               v.Date.String(),
			DisplayDate:        v.DisplayDate,
			Slots:              slots,
			BookedCount:        v.BookedCount,
			AdminDisabledCount: v.AdminDisabledCount,
			AvailableCount:     v.AvailableCount,
			TotalSlots:         v.TotalSlots,
		}
	}
	return res
}

type DisabledSlotResponse struct {
	Date        string    `json:"date"`
	DisplayDate string    `json:"displayDate"`
	TimeSlot    string    `json:"timeSlot"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func FromDisabledSlots(views []*queries.DisabledSlotView) []*DisabledSlotResponse {
	res := make([]*DisabledSlotResponse, len(views))
	for i, v := range views {
		res[i] = &DisabledSlotResponse{
			Date:        v.Date.String(),
			DisplayDate: v.DisplayDate,
			TimeSlot:    v.TimeSlot.String(),
			UpdatedAt:   v.UpdatedAt,
		}
	}
	return res
}

type SlotToggleResponse struct {
	Date      string    `json:"date"`
	TimeSlot  string    `json:"timeSlot"`
	Enabled   bool      `json:"enabled"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromSlotToggle(s *shared.DisabledSlotSnapshot) *SlotToggleResponse {
	return &SlotToggleResponse{
		Date:      s.Date.String(),
		TimeSlot:  s.TimeSlot.String(),
		Enabled:   s.Enabled,
		UpdatedAt: s.UpdatedAt,
	}
}
