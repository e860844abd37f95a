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

type BookingHandler struct {
	cmds         commands.BookingCommands
	availability queries.AvailabilityQueries
}

func NewBookingHandler(cmds commands.BookingCommands, availability queries.AvailabilityQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, availability: availability}
}

// @Summary Bookable dates
// @Description Upcoming weekend dates that still have at least one free slot
// @Tags bookings
// @Produce json
// @Success 200 {array} resdto.AvailabilityDayResponse
// @Failure 500 {object} httperr.Response
// @Router /bookings/availability [get]
func (h *BookingHandler) GetAvailability(c *gin.Context) {
	days, err := h.availability.PublicAvailability(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailability(days))
}

// @Summary Request an appointment
// @Description Book a weekend time slot. The appointment starts as pending.
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingCreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request format")
		return
	}

	result, err := h.cmds.CreateBooking(c.Request.Context(), req.ToDomain())
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCreateBooking(result))
}
