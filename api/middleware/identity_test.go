package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"shopapi/domain/user"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Identity())
	r.GET("/open", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/mine", RequireIdentity(), func(c *gin.Context) {
		c.String(http.StatusOK, UserID(c))
	})
	r.GET("/admin", RequireRole(user.RoleAdmin), func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/manager", RequireRole(user.RoleAdmin, user.RoleManager), func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func doRequest(r *gin.Engine, path, userID, role string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if userID != "" {
		req.Header.Set(UserIDHeader, userID)
	}
	if role != "" {
		req.Header.Set(UserRoleHeader, role)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestOpenRouteAllowsAnonymous(t *testing.T) {
	r := newTestRouter()
	w := doRequest(r, "/open", "", "")
	require.Equal(t, http.StatusOK, w.Code)
}

func TestRequireIdentityRejectsAnonymous(t *testing.T) {
	r := newTestRouter()

	w := doRequest(r, "/mine", "", "")
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(r, "/mine", "u-1", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "u-1", w.Body.String())
}

func TestRequireRoleRejectsWrongRole(t *testing.T) {
	r := newTestRouter()

	// Missing role header defaults to the plain user role.
	w := doRequest(r, "/admin", "u-1", "")
	require.Equal(t, http.StatusForbidden, w.Code)

	w = doRequest(r, "/admin", "u-1", user.RoleManager)
	require.Equal(t, http.StatusForbidden, w.Code)

	w = doRequest(r, "/admin", "u-1", user.RoleAdmin)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRoleRejectsAnonymousBeforeRoleCheck(t *testing.T) {
	r := newTestRouter()
	w := doRequest(r, "/admin", "", user.RoleAdmin)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestManagerGroupAcceptsBothRoles(t *testing.T) {
	r := newTestRouter()

	w := doRequest(r, "/manager", "u-1", user.RoleManager)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(r, "/manager", "u-2", user.RoleAdmin)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(r, "/manager", "u-3", user.RoleUser)
	require.Equal(t, http.StatusForbidden, w.Code)
}
