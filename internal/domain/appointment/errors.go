package appointment

import "weekend-booking/internal/pkg/errs"

var (
	ErrMissingField  = errs.NewReason(errs.ErrValidation, "missing_field", "name, email, phone, date and time_slot are required")
	ErrInvalidStatus = errs.NewReason(errs.ErrValidation, "invalid_status", "invalid appointment status")

	ErrInvalidTransition    = errs.NewReason(errs.ErrConflict, "invalid_transition", "this status change is not allowed")
	ErrSlotDisabled         = errs.NewReason(errs.ErrConflict, "slot_disabled", "this time slot is currently unavailable, please choose another time")
	ErrDuplicateCustomerDay = errs.NewReason(errs.ErrConflict, "duplicate_customer_day", "you already have a booking for this day, please choose another date")
	ErrSlotTaken            = errs.NewReason(errs.ErrConflict, "slot_taken", "this time slot has already been booked")

	ErrNotFound = errs.NewReason(errs.ErrNotFound, "not_found", "appointment not found")
)
