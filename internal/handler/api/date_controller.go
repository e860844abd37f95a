package api

import (
	"net/http"

	reqdto "weekend-booking/internal/handler/dto/request"
	resdto "weekend-booking/internal/handler/dto/response"
	"weekend-booking/internal/handler/httperr"
	"weekend-booking/internal/usecase/commands"
	"weekend-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type DateControllerHandler struct {
	cmds         commands.SlotCommands
	availability queries.AvailabilityQueries
}

func NewDateControllerHandler(cmds commands.SlotCommands, availability queries.AvailabilityQueries) *DateControllerHandler {
	return &DateControllerHandler{cmds: cmds, availability: availability}
}

// @Summary Window dates with slot breakdown
// @Description Every bookable window date, including fully booked or disabled ones
// @Tags date-controller
// @Security BearerAuth
// @Produce json
// @Success 200 {array} resdto.DateSlotsResponse
// @Failure 401 {object} httperr.Response
// @Router /admin/date-controller/available-dates [get]
func (h *DateControllerHandler) AvailableDates(c *gin.Context) {
	views, err := h.availability.AdminAvailability(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDateSlots(views))
}

// @Summary Disabled slots
// @Description Slots currently switched off, from today onward
// @Tags date-controller
// @Security BearerAuth
// @Produce json
// @Success 200 {array} resdto.DisabledSlotResponse
// @Failure 401 {object} httperr.Response
// @Router /admin/date-controller/deleted-slots [get]
func (h *DateControllerHandler) DeletedSlots(c *gin.Context) {
	views, err := h.availability.DisabledSlots(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDisabledSlots(views))
}

// @Summary Disable a slot
// @Description Idempotent. Existing appointments in the slot are left alone.
// @Tags date-controller
// @Security BearerAuth
// @Produce json
// @Param date path string true "YYYY-MM-DD"
// @Param time_slot path string true "Slot label, URL encoded"
// @Success 200 {object} resdto.SlotToggleResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /admin/date-controller/slot/{date}/{time_slot} [delete]
func (h *DateControllerHandler) DisableSlot(c *gin.Context) {
	h.toggle(c, c.Param("date"), c.Param("time_slot"), false)
}

// @Summary Restore a slot
// @Description Idempotent.
// @Tags date-controller
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.RestoreSlotRequest true "Slot to restore"
// @Success 200 {object} resdto.SlotToggleResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /admin/date-controller/restore-slot [post]
func (h *DateControllerHandler) RestoreSlot(c *gin.Context) {
	var req reqdto.RestoreSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Date and time slot are required")
		return
	}
	h.toggle(c, req.Date, req.TimeSlot, true)
}

func (h *DateControllerHandler) toggle(c *gin.Context, date, timeSlot string, enabled bool) {
	snap, err := h.cmds.SetSlotEnabled(c.Request.Context(), date, timeSlot, enabled)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSlotToggle(snap))
}
