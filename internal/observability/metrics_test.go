package observability

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordGymOperation(t *testing.T) {
	success := gymOperations.WithLabelValues(OpCreate, "success")
	failure := gymOperations.WithLabelValues(OpCreate, "failure")
	beforeSuccess := testutil.ToFloat64(success)
	beforeFailure := testutil.ToFloat64(failure)

	RecordGymOperation(OpCreate, nil)
	RecordGymOperation(OpCreate, errors.New("boom"))
	RecordGymOperation(OpCreate, errors.New("boom"))

	assert.Equal(t, beforeSuccess+1, testutil.ToFloat64(success))
	assert.Equal(t, beforeFailure+2, testutil.ToFloat64(failure))
}

func TestGinMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(GinMiddleware())
	r.GET("/api/v1/gyms/:id", func(c *gin.Context) {
		c.Status(http.StatusNotFound)
	})
	r.GET("/metrics", gin.WrapH(Handler()))

	counter := httpRequests.WithLabelValues(http.MethodGet, "/api/v1/gyms/:id", "404")
	before := testutil.ToFloat64(counter)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/gyms/123", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(counter))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "gyms_api_http_requests_total")
}
