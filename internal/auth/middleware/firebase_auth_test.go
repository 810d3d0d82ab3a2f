package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/growcircle/growcircle-backend/internal/auth"
)

func adminRouter(claims func(c *gin.Context)) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		claims(c)
		c.Next()
	})
	router.Use(RequireAdmin())
	router.GET("/admin/ping", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

// RequireAdmin must read the same context keys the auth package exports,
// so a claim stored under auth.CtxIsAdmin is the single gate.
func TestRequireAdmin_HonorsAdminClaim(t *testing.T) {
	router := adminRouter(func(c *gin.Context) {
		c.Set(auth.CtxFirebaseUID, "uid-admin")
		c.Set(auth.CtxIsAdmin, true)
	})

	req, err := http.NewRequest("GET", "/admin/ping", nil)
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestRequireAdmin_RejectsNonAdmin(t *testing.T) {
	router := adminRouter(func(c *gin.Context) {
		c.Set(auth.CtxFirebaseUID, "uid-regular")
	})

	req, err := http.NewRequest("GET", "/admin/ping", nil)
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestExtractToken(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		header string
		want   string
	}{
		{"Bearer abc123", "abc123"},
		{"bearer abc123", ""},
		{"Bearer ", ""},
		{"", ""},
	}
	for _, tc := range cases {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest("GET", "/", nil)
		if tc.header != "" {
			c.Request.Header.Set("Authorization", tc.header)
		}
		assert.Equal(t, tc.want, extractToken(c), "header %q", tc.header)
	}
}
