package car_controller

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsabonet/milagre-car-site-sub000/cache"
	"github.com/jsabonet/milagre-car-site-sub000/catalog"
	"github.com/jsabonet/milagre-car-site-sub000/models"
	"github.com/jsabonet/milagre-car-site-sub000/services"
)

func testContext(target string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	return c
}

func stock() []models.Car {
	suv := &models.Category{ID: uuid.Must(uuid.NewV7()), Name: "SUV"}
	sedan := &models.Category{ID: uuid.Must(uuid.NewV7()), Name: "Sedan"}
	car := func(brand, model string, cat *models.Category, price float64, status string) models.Car {
		return models.Car{
			ID:         uuid.Must(uuid.NewV7()),
			Brand:      brand,
			Model:      model,
			CategoryID: cat.ID,
			Category:   cat,
			Price:      price,
			Status:     status,
		}
	}
	return []models.Car{
		car("Toyota", "Corolla", sedan, 15000, models.CarStatusSold),
		car("Mazda", "CX-5", suv, 21000, models.CarStatusAvailable),
		car("Toyota", "Fortuner", suv, 38000, models.CarStatusDraft),
	}
}

func TestRunPipelineKeepsStoredRows(t *testing.T) {
	cars := stock()

	f := catalog.NewFilterState()
	f.Category = "SUV"
	f.SortBy = catalog.SortByPrice
	f.SortOrder = catalog.Descending

	items, page := runPipeline(cars, f, 1, 10)
	require.Len(t, items, 2)
	assert.Equal(t, "Fortuner", items[0].Model)
	assert.Equal(t, models.CarStatusDraft, items[0].Status)
	assert.Equal(t, "CX-5", items[1].Model)
	assert.Equal(t, 2, page.TotalItems)
}

func TestRunPipelinePages(t *testing.T) {
	items, page := runPipeline(stock(), catalog.NewFilterState(), 2, 2)
	require.Len(t, items, 1)
	assert.Equal(t, "Fortuner", items[0].Model)
	assert.Equal(t, 2, page.TotalPages)

	items, _ = runPipeline(stock(), catalog.NewFilterState(), 9, 2)
	assert.Empty(t, items)
}

func TestAdminFilter(t *testing.T) {
	f := adminFilter(testContext("/cars?q=toy&brand=Toyota&featured=true&sortBy=PRICE&sortOrder=desc"))
	assert.Equal(t, "toy", f.Search)
	assert.Equal(t, "Toyota", f.Brand)
	require.NotNil(t, f.Featured)
	assert.True(t, *f.Featured)
	assert.Equal(t, catalog.SortByPrice, f.SortBy)
	assert.Equal(t, catalog.Descending, f.SortOrder)

	f = adminFilter(testContext("/cars?featured=maybe"))
	assert.Nil(t, f.Featured)
	assert.Equal(t, catalog.NewFilterState(), f)
}

func TestCarUpdates(t *testing.T) {
	price := 19999.0
	status := models.CarStatusReserved
	imgs := []models.CarImage{{URL: "a.jpg"}, {URL: "b.jpg"}}

	updates := carUpdates(models.UpdateCarRequest{Price: &price, Status: &status, Images: &imgs})
	assert.Len(t, updates, 3)
	assert.Equal(t, 19999.0, updates["price"])
	assert.Equal(t, models.CarStatusReserved, updates["status"])

	saved := updates["images"].(models.CarImageList)
	assert.True(t, saved[0].IsPrimary)
	assert.False(t, saved[1].IsPrimary)

	assert.Empty(t, carUpdates(models.UpdateCarRequest{}))
}

func TestImageIndex(t *testing.T) {
	c := testContext("/")
	c.Params = gin.Params{{Key: "index", Value: "2"}}
	index, ok := imageIndex(c)
	assert.True(t, ok)
	assert.Equal(t, 2, index)

	c.Params = gin.Params{{Key: "index", Value: "-1"}}
	_, ok = imageIndex(c)
	assert.False(t, ok)

	c.Params = gin.Params{{Key: "index", Value: "first"}}
	_, ok = imageIndex(c)
	assert.False(t, ok)
}

func TestHandlersRejectBadIDs(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/cars/:id", GetCarByID)
	r.PATCH("/cars/:id", UpdateCar)
	r.DELETE("/cars/:id", DeleteCar)
	r.POST("/cars/:id/images", UploadCarImage)
	r.PATCH("/cars/:id/images/:index/primary", SetPrimaryImage)
	r.DELETE("/cars/:id/images/:index", DeleteCarImage)

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/cars/x"},
		{http.MethodPatch, "/cars/x"},
		{http.MethodDelete, "/cars/x"},
		{http.MethodPost, "/cars/x/images"},
		{http.MethodPatch, "/cars/x/images/0/primary"},
		{http.MethodPatch, "/cars/" + uuid.NewString() + "/images/nope/primary"},
		{http.MethodDelete, "/cars/" + uuid.NewString() + "/images/-3"},
	} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(tc.method, tc.path, nil))
		assert.Equal(t, http.StatusBadRequest, w.Code, "%s %s", tc.method, tc.path)
	}
}

func TestUploadWithoutImageStore(t *testing.T) {
	prev := services.GetImageStore()
	services.SetImageStore(nil)
	t.Cleanup(func() { services.SetImageStore(prev) })

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/cars/:id/images", UploadCarImage)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/cars/"+uuid.NewString()+"/images", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestCarWritesDropCategoryAndInventoryCaches(t *testing.T) {
	cache.SetCategories([]models.CategoryWithCars{{Name: "SUV", Cars: 3}})
	cache.SetInventory(stock(), 0)

	dropCarCaches(context.Background())

	_, ok := cache.GetCategories()
	assert.False(t, ok, "category counts must be recomputed after a car write")
	_, ok = cache.GetInventory()
	assert.False(t, ok)
}
