package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewHandler(nil).RegisterRoutes(router.Group("/api/v1"))
	return router
}

func TestCreateProfile_RejectsEmptyUsername(t *testing.T) {
	router := newRouter()

	for _, body := range []string{`{}`, `{"username":"   "}`, `not json`} {
		req, err := http.NewRequest(http.MethodPost, "/api/v1/profiles", strings.NewReader(body))
		require.NoError(t, err)
		req.Header.Set("Content-Type", "application/json")

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code, "body: %s", body)
	}
}

func TestUpdateProfile_RejectsMalformedBody(t *testing.T) {
	router := newRouter()

	req, err := http.NewRequest(http.MethodPatch, "/api/v1/profiles/me", strings.NewReader(`{"grow_since":"not a number"}`))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
