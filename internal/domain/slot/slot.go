package slot

import "weekend-booking/internal/pkg/errs"

// TimeSlot is one of a fixed set of labels. Slots are compared by exact label only.
type TimeSlot string

const (
	Morning   TimeSlot = "10 am - 12 pm"
	Afternoon TimeSlot = "2 pm - 4 pm"
	Evening   TimeSlot = "5 pm - 7 pm"
)

var ErrInvalidSlot = errs.NewReason(errs.ErrValidation, "invalid_slot", "invalid time slot")

var ordered = [...]TimeSlot{Morning, Afternoon, Evening}

// All returns every slot in display order.
func All() []TimeSlot {
	out := make([]TimeSlot, len(ordered))
	copy(out, ordered[:])
	return out
}

func Count() int {
	return len(ordered)
}

func Parse(s string) (TimeSlot, error) {
	t := TimeSlot(s)
	if !t.IsValid() {
		return "", ErrInvalidSlot
	}
	return t, nil
}

func (t TimeSlot) IsValid() bool {
	switch t {
	case Morning, Afternoon, Evening:
		return true
	default:
		return false
	}
}

func (t TimeSlot) String() string {
	return string(t)
}
