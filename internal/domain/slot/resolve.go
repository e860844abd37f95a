package slot

// Status is the resolved state of a single slot on a single date.
type Status struct {
	Slot          TimeSlot
	Available     bool
	Booked        bool
	AdminDisabled bool
}

// Resolve computes the state of every slot from the occupied and
// admin-disabled sets of one date. Output follows enumeration order;
// labels outside the enumeration are ignored.
func Resolve(occupied, disabled []TimeSlot) []Status {
	booked := toSet(occupied)
	off := toSet(disabled)

	out := make([]Status, 0, len(ordered))
	for _, s := range ordered {
		_, isBooked := booked[s]
		_, isOff := off[s]
		out = append(out, Status{
			Slot:          s,
			Available:     !isBooked && !isOff,
			Booked:        isBooked,
			AdminDisabled: isOff,
		})
	}
	return out
}

// Available filters resolved statuses down to bookable slots.
func Available(statuses []Status) []TimeSlot {
	out := make([]TimeSlot, 0, len(statuses))
	for _, st := range statuses {
		if st.Available {
			out = append(out, st.Slot)
		}
	}
	return out
}

func toSet(slots []TimeSlot) map[TimeSlot]struct{} {
	set := make(map[TimeSlot]struct{}, len(slots))
	for _, s := range slots {
		set[s] = struct{}{}
	}
	return set
}
