//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"weekend-booking/internal/domain/admin"
	"weekend-booking/internal/handler/api"
	resdto "weekend-booking/internal/handler/dto/response"
	"weekend-booking/internal/pkg/config"
	"weekend-booking/internal/pkg/cookie"
	"weekend-booking/internal/usecase/commands"
	"weekend-booking/internal/usecase/queries"
	"weekend-booking/tests/common/httptest"
	"weekend-booking/tests/common/testutil"
	commandsmock "weekend-booking/tests/mock/commands"
	queriesmock "weekend-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
	mockQueries  *queriesmock.MockAdminQueries
	handler      *api.AuthHandler
	adminID      uuid.UUID
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockAdminQueries(s.mockCtrl)
	s.handler = api.NewAuthHandler(s.mockCommands, s.mockQueries, config.NewTestConfig().Cookie)
	s.adminID = uuid.New()

	s.router.POST("/admin/login", s.handler.Login)
	s.router.POST("/admin/logout", s.handler.Logout)
	s.router.GET("/admin/me", func(c *gin.Context) {
		// Mock middleware behavior for /admin/me
		if c.GetHeader("Authorization") != "" {
			c.Set("admin_id", s.adminID)
		}
		s.handler.Me(c)
	})
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/admin/login"
	reqBody := map[string]any{"email": "admin@example.com", "password": "password123"}

	s.Run("success: returns token and sets cookie", func() {
		expiresAt := time.Now().Add(time.Hour).UTC().Truncate(time.Second)
		s.mockCommands.EXPECT().Login(gomock.Any(), "admin@example.com", "password123").
			Return(&commands.LoginResult{
				AdminID:   s.adminID,
				Name:      "Administrator",
				Email:     "admin@example.com",
				Token:     "signed-token",
				ExpiresAt: expiresAt,
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("signed-token", body.Token)
		s.Equal(s.adminID.String(), body.Admin.ID)
		s.True(expiresAt.Equal(body.ExpiresAt))

		c := httptest.ExtractCookie(rec, cookie.AccessTokenCookieName)
		s.Require().NotNil(c)
		s.Equal("signed-token", c.Value)
		s.True(c.HttpOnly)
	})

	s.Run("error: 401 on bad credentials", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, admin.ErrInvalidCredentials).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		httptest.AssertErrorCode(s.T(), rec, http.StatusUnauthorized, "invalid_credentials")
		s.Nil(httptest.ExtractCookie(rec, cookie.AccessTokenCookieName))
	})

	s.Run("error: 400 on missing fields", func() {
		for _, field := range []string{"email", "password"} {
			s.Run(field, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
					testutil.DtoMap(s.T(), reqBody, testutil.Field(field, nil)), "")

				httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "invalid_request")
			})
		}
	})
}

func (s *AuthHandlerTestSuite) TestLogout() {
	s.Run("success: returns 204 and expires the cookie", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/logout", nil, "token")

		s.Equal(http.StatusNoContent, rec.Code)
		c := httptest.ExtractCookie(rec, cookie.AccessTokenCookieName)
		s.Require().NotNil(c)
		s.Empty(c.Value)
		s.Less(c.MaxAge, 0)
	})
}

func (s *AuthHandlerTestSuite) TestMe() {
	s.Run("success: returns current admin", func() {
		s.mockQueries.EXPECT().GetCurrentAdmin(gomock.Any(), s.adminID).
			Return(&queries.AdminView{ID: s.adminID, Name: "Administrator", Email: "admin@example.com"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/me", nil, "token")

		var body resdto.AdminResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("admin@example.com", body.Email)
	})

	s.Run("error: 401 without admin in context", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/me", nil, "")

		httptest.AssertErrorCode(s.T(), rec, http.StatusUnauthorized, "unauthorized")
	})

	s.Run("error: 401 when the admin was removed", func() {
		s.mockQueries.EXPECT().GetCurrentAdmin(gomock.Any(), s.adminID).
			Return(nil, queries.ErrAdminNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/me", nil, "token")

		httptest.AssertErrorCode(s.T(), rec, http.StatusUnauthorized, "admin_not_found")
	})
}
