package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/jsabonet/milagre-car-site-sub000/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestExtractResourceType(t *testing.T) {
	id := uuid.NewString()
	cases := map[string]string{
		"/api/v1/admin/cars":                       models.ResourceTypeCar,
		"/api/v1/admin/cars/" + id:                 models.ResourceTypeCar,
		"/api/v1/admin/cars/" + id + "/images/0":   models.ResourceTypeCar,
		"/api/v1/admin/categories/" + id:           models.ResourceTypeCategory,
		"/api/v1/admin/messages/" + id + "/status": models.ResourceTypeMessage,
		"/api/v1/admin/unknown/" + id:              "",
	}
	for path, want := range cases {
		assert.Equal(t, want, extractResourceType(path), path)
	}
}

func TestExtractResourceName(t *testing.T) {
	car := models.Car{Brand: "Toyota", Model: "Hilux"}
	assert.Equal(t, "Toyota Hilux", extractResourceName(models.ResourceTypeCar, car))
	assert.Equal(t, "SUV", extractResourceName(models.ResourceTypeCategory, models.Category{Name: "SUV"}))
	assert.Equal(t, "ana@example.com", extractResourceName(models.ResourceTypeMessage, models.ContactMessage{Email: "ana@example.com"}))
	assert.Equal(t, "", extractResourceName(models.ResourceTypeCar, nil))
}

func TestExtractAdminToken(t *testing.T) {
	newCtx := func(setup func(r *http.Request)) *gin.Context {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		setup(c.Request)
		return c
	}

	c := newCtx(func(r *http.Request) { r.AddCookie(&http.Cookie{Name: AdminTokenCookie, Value: "from-cookie"}) })
	token, err := ExtractAdminToken(c)
	require.NoError(t, err)
	assert.Equal(t, "from-cookie", token)

	c = newCtx(func(r *http.Request) { r.Header.Set("Authorization", "bearer from-header") })
	token, err = ExtractAdminToken(c)
	require.NoError(t, err)
	assert.Equal(t, "from-header", token)

	c = newCtx(func(r *http.Request) { r.Header.Set("Authorization", "Token abc") })
	_, err = ExtractAdminToken(c)
	assert.Error(t, err)

	c = newCtx(func(r *http.Request) {})
	_, err = ExtractAdminToken(c)
	assert.Error(t, err)
}

func TestGetAdminFromContext(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	_, _, ok := GetAdminFromContext(c)
	assert.False(t, ok)

	id := uuid.Must(uuid.NewV7())
	c.Set("adminID", id.String())
	c.Set("adminEmail", "boss@example.com")
	got, email, ok := GetAdminFromContext(c)
	require.True(t, ok)
	assert.Equal(t, id, got)
	assert.Equal(t, "boss@example.com", email)
}

func TestFormLimiterBlocksAfterBurst(t *testing.T) {
	store := newIPLimiterStore(rate.Every(time.Hour), 2, time.Minute)
	r := gin.New()
	r.POST("/messages", formLimiterHandler(store), func(c *gin.Context) { c.Status(http.StatusCreated) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/messages", nil)
		req.RemoteAddr = "203.0.113.7:4000"
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusCreated, http.StatusCreated, http.StatusTooManyRequests}, codes)

	// A different client has its own bucket.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/messages", nil)
	req.RemoteAddr = "198.51.100.1:4000"
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestLimiterStoreSweepsStaleEntries(t *testing.T) {
	store := newIPLimiterStore(rate.Limit(1), 1, time.Minute)
	now := time.Now()
	store.allow("a", now.Add(-2*time.Minute))
	store.allow("b", now)

	store.sweep(now)
	assert.Len(t, store.entries, 1)
	assert.Contains(t, store.entries, "b")
}

func TestRateLimiterWithoutRedisPassesThrough(t *testing.T) {
	r := gin.New()
	r.GET("/x", RateLimiter(1, time.Minute), func(c *gin.Context) { c.Status(http.StatusNoContent) })

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
		assert.Equal(t, http.StatusNoContent, w.Code)
	}
}

func TestLevelFor(t *testing.T) {
	assert.Equal(t, "info", levelFor(200))
	assert.Equal(t, "warn", levelFor(404))
	assert.Equal(t, "error", levelFor(503))
}
