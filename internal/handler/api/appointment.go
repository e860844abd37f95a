package api

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"

	"weekend-booking/internal/domain/calendar"
	reqdto "weekend-booking/internal/handler/dto/request"
	resdto "weekend-booking/internal/handler/dto/response"
	"weekend-booking/internal/handler/httperr"
	"weekend-booking/internal/infra/export"
	"weekend-booking/internal/pkg/clock"
	"weekend-booking/internal/usecase/commands"
	"weekend-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AppointmentHandler struct {
	cmds   commands.AppointmentCommands
	q      queries.AppointmentQueries
	window *calendar.Window
	clock  clock.Clock
}

func NewAppointmentHandler(
	cmds commands.AppointmentCommands,
	q queries.AppointmentQueries,
	window *calendar.Window,
	clk clock.Clock,
) *AppointmentHandler {
	return &AppointmentHandler{
		cmds:   cmds,
		q:      q,
		window: window,
		clock:  clk,
	}
}

// @Summary Dashboard statistics
// @Description Appointment counts per status and for today in the configured timezone
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.DashboardStatsResponse
// @Failure 401 {object} httperr.Response
// @Router /admin/dashboard/stats [get]
func (h *AppointmentHandler) DashboardStats(c *gin.Context) {
	stats, err := h.q.Stats(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDashboardStats(stats))
}

// @Summary List appointments
// @Description Newest first. search matches name, email or phone.
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (default 100, max 500)"
// @Param status query string false "pending, confirmed, completed, cancelled or all"
// @Param search query string false "Free text"
// @Success 200 {object} resdto.AppointmentListResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /admin/appointments [get]
func (h *AppointmentHandler) List(c *gin.Context) {
	filter, ok := h.bindFilter(c)
	if !ok {
		return
	}

	page, err := h.q.List(c.Request.Context(), filter)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAppointmentPage(page))
}

// @Summary Export appointments
// @Description The filtered listing as an Excel workbook
// @Tags admin
// @Security BearerAuth
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param status query string false "pending, confirmed, completed, cancelled or all"
// @Param search query string false "Free text"
// @Success 200 {file} file
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /admin/appointments/export [get]
func (h *AppointmentHandler) Export(c *gin.Context) {
	filter, ok := h.bindFilter(c)
	if !ok {
		return
	}

	items, err := h.q.Export(c.Request.Context(), filter)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	// buffered so a failed render still gets a proper error response
	var buf bytes.Buffer
	if err := export.WriteAppointments(&buf, items, h.window.Location()); err != nil {
		slog.Error("appointments export failed", "error", err, "rows", len(items))
		httperr.FromError(c, err)
		return
	}

	today := h.window.Today(h.clock.Now())
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="appointments-%s.xlsx"`, today))
	c.Data(http.StatusOK, export.ContentType, buf.Bytes())
}

// @Summary Get appointment
// @Description Appointment with its notification history
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param id path string true "Appointment ID"
// @Success 200 {object} resdto.AppointmentDetailResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/appointments/{id} [get]
func (h *AppointmentHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAppointmentDetail(view))
}

// @Summary Update appointment status
// @Description pending -> confirmed|cancelled, confirmed -> completed|cancelled. Confirming sends the customer an email.
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Appointment ID"
// @Param request body reqdto.UpdateStatusRequest true "New status"
// @Success 200 {object} resdto.AppointmentDetailResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/appointments/{id}/status [patch]
func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req reqdto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Status is required")
		return
	}

	if _, err := h.cmds.UpdateStatus(c.Request.Context(), id, req.Status); err != nil {
		httperr.FromError(c, err)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAppointmentDetail(view))
}

// @Summary Delete appointment
// @Description Hard delete in any status. Frees the slot immediately.
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/appointments/{id} [delete]
func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		httperr.FromError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AppointmentHandler) bindFilter(c *gin.Context) (queries.AppointmentFilter, bool) {
	var q reqdto.AppointmentListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.BadRequest(c, err, "Invalid query parameters")
		return queries.AppointmentFilter{}, false
	}
	filter, err := q.ToFilter()
	if err != nil {
		httperr.FromError(c, err)
		return queries.AppointmentFilter{}, false
	}
	return filter, true
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, err, "Invalid appointment id")
		return uuid.Nil, false
	}
	return id, true
}
