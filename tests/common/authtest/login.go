//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"weekend-booking/internal/handler/dto/request"
	"weekend-booking/internal/pkg/cookie"
	"weekend-booking/tests/common/dbtest"
	"weekend-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const DefaultPassword = "password123"

func LoginAdmin(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/admin/login",
		request.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	accessCookie := httptest.ExtractCookie(w, cookie.AccessTokenCookieName)
	require.NotNil(t, accessCookie, "Access token not found in cookies")
	require.NotEmpty(t, accessCookie.Value, "Access token cookie is empty")

	return accessCookie.Value
}

func CreateAndLogin(t *testing.T, db dbtest.DBLike, router *gin.Engine, email string) string {
	t.Helper()
	dbtest.CreateAdmin(t, db, email, "Test Admin", DefaultPassword)
	return LoginAdmin(t, router, email, DefaultPassword)
}
