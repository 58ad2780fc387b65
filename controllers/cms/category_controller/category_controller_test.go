package category_controller

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/jsabonet/milagre-car-site-sub000/models"
)

func strPtr(s string) *string { return &s }

func TestHasChanges(t *testing.T) {
	existing := models.Category{Name: "SUV", Description: "Sport utility", Status: "Active"}

	assert.False(t, hasChanges(models.UpdateCategoryRequest{}, existing))
	assert.False(t, hasChanges(models.UpdateCategoryRequest{Name: strPtr("SUV"), Status: strPtr("Active")}, existing))
	assert.True(t, hasChanges(models.UpdateCategoryRequest{Name: strPtr("Crossover")}, existing))
	assert.True(t, hasChanges(models.UpdateCategoryRequest{Description: strPtr("")}, existing))
	assert.True(t, hasChanges(models.UpdateCategoryRequest{Status: strPtr("Inactive")}, existing))
}

func TestPageParams(t *testing.T) {
	gin.SetMode(gin.TestMode)

	for _, tc := range []struct {
		query               string
		page, limit, offset int
	}{
		{"", 1, 20, 0},
		{"?page=3&limit=10", 3, 10, 20},
		{"?page=0&limit=500", 1, 20, 0},
	} {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/categories"+tc.query, nil)
		page, limit, offset := pageParams(c)
		assert.Equal(t, tc.page, page, tc.query)
		assert.Equal(t, tc.limit, limit, tc.query)
		assert.Equal(t, tc.offset, offset, tc.query)
	}
}

func TestBadIDsAreRejected(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/categories/:id", GetCategoryByID)
	r.DELETE("/categories/:id", DeleteCategory)

	for _, method := range []string{http.MethodGet, http.MethodDelete} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(method, "/categories/nope", nil))
		assert.Equal(t, http.StatusBadRequest, w.Code, method)
	}
}
