package api

import (
	"net/http"
	"time"

	reqdto "weekend-booking/internal/handler/dto/request"
	resdto "weekend-booking/internal/handler/dto/response"
	"weekend-booking/internal/handler/httperr"
	"weekend-booking/internal/handler/middleware"
	"weekend-booking/internal/pkg/config"
	"weekend-booking/internal/pkg/cookie"
	"weekend-booking/internal/pkg/errs"
	"weekend-booking/internal/usecase/commands"
	"weekend-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var errNoAdminInContext = errs.New("admin id missing from context")

type AuthHandler struct {
	cmds      commands.AuthCommands
	q         queries.AdminQueries
	cookieCfg config.CookieConfig
}

func NewAuthHandler(cmds commands.AuthCommands, q queries.AdminQueries, cookieCfg config.CookieConfig) *AuthHandler {
	return &AuthHandler{
		cmds:      cmds,
		q:         q,
		cookieCfg: cookieCfg,
	}
}

// @Summary Admin login
// @Description Login with email and password. The token is returned and also set as the access_token cookie.
// @Tags admin
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /admin/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Email and password are required")
		return
	}

	result, err := h.cmds.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	cookie.SetAccessToken(c, h.cookieCfg, result.Token, time.Until(result.ExpiresAt))
	c.JSON(http.StatusOK, resdto.FromLoginResult(result))
}

// @Summary Admin logout
// @Description Clears the access_token cookie. Tokens are stateless, so a copied bearer token stays valid until it expires.
// @Tags admin
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 401 {object} httperr.Response
// @Router /admin/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearAccessToken(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}

// @Summary Current admin
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.AdminResponse
// @Failure 401 {object} httperr.Response
// @Router /admin/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	adminID, ok := middleware.GetAdminID(c)
	if !ok {
		httperr.Unauthorized(c, errNoAdminInContext, "Admin not authenticated")
		return
	}

	view, err := h.q.GetCurrentAdmin(c.Request.Context(), adminID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAdminView(view))
}
