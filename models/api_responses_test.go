package models

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsabonet/milagre-car-site-sub000/catalog"
)

func TestNewPagination(t *testing.T) {
	assert.Equal(t, &Pagination{Page: 1, Limit: 20, Total: 0, TotalPages: 1}, NewPagination(1, 20, 0))
	assert.Equal(t, 3, NewPagination(1, 20, 41).TotalPages)
	assert.Equal(t, 2, NewPagination(2, 20, 40).TotalPages)
}

func TestPaginationFromPage(t *testing.T) {
	records := []catalog.Vehicle{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	meta := PaginationFromPage(catalog.Paginate(records, 5, 2))

	assert.Equal(t, &Pagination{Page: 5, Limit: 2, Total: 3, TotalPages: 2}, meta)
}

func TestEnvelopeCarriesRouteAndRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	var got ApiResponse
	rl := &RateLimit{Limit: 100, Remaining: 99}
	r.GET("/store/cars/:id", func(c *gin.Context) {
		c.Set(RateLimitContextKey, rl)
		got = SuccessResponse(c, "ok", 1)
	})
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/store/cars/42", nil))

	assert.Equal(t, "GET /store/cars/:id", got.RequestedEntity)
	require.NotNil(t, got.Rate)
	assert.Equal(t, 99, got.Rate.Remaining)
	assert.Nil(t, got.Meta)
	assert.False(t, got.Error)

	errResp := ErrorResponse(nil, "boom")
	assert.True(t, errResp.Error)
	assert.Empty(t, errResp.RequestedEntity)
}
