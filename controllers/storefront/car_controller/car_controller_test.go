package car_controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsabonet/milagre-car-site-sub000/cache"
	"github.com/jsabonet/milagre-car-site-sub000/catalog"
	"github.com/jsabonet/milagre-car-site-sub000/models"
)

type envelope struct {
	Message string             `json:"message"`
	Error   bool               `json:"error"`
	Data    json.RawMessage    `json:"data"`
	Meta    *models.Pagination `json:"meta"`
}

func testCars() []models.Car {
	suv := &models.Category{ID: uuid.Must(uuid.NewV7()), Name: "SUV"}
	pickup := &models.Category{ID: uuid.Must(uuid.NewV7()), Name: "Pickup"}
	car := func(brand, model string, cat *models.Category, year int, price float64, km *float64, featured bool) models.Car {
		return models.Car{
			ID:           uuid.Must(uuid.NewV7()),
			Brand:        brand,
			Model:        model,
			CategoryID:   cat.ID,
			Category:     cat,
			Year:         year,
			Transmission: "Automatic",
			Price:        price,
			Mileage:      km,
			Featured:     featured,
			Status:       models.CarStatusAvailable,
		}
	}
	return []models.Car{
		car("Toyota", "Hilux", pickup, 2021, 32000, catalog.Mileage(18000), true),
		car("Toyota", "RAV4", suv, 2019, 24000, catalog.Mileage(45000), false),
		car("Ford", "Ranger", pickup, 2020, 29000, nil, true),
		car("Nissan", "X-Trail", suv, 2018, 17500, catalog.Mileage(67000), false),
	}
}

func setup(t *testing.T) (*gin.Engine, []models.Car) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cars := testCars()
	snap := &cache.Snapshot{Version: 1, Cars: cars, Vehicles: models.Vehicles(cars)}

	prevLoad, prevView, prevMemo := loadInventory, recordView, memo
	loadInventory = func(context.Context) (*cache.Snapshot, error) { return snap, nil }
	recordView = func(uuid.UUID) {}
	memo = catalog.NewMemo(0)
	t.Cleanup(func() { loadInventory, recordView, memo = prevLoad, prevView, prevMemo })

	r := gin.New()
	r.GET("/store/cars", GetStorefrontCars)
	r.GET("/store/cars/featured", GetFeaturedCars)
	r.GET("/store/cars/compare", CompareCars)
	r.GET("/store/cars/:id", GetStorefrontCarByID)
	r.GET("/store/inventory", GetInventory)
	r.GET("/store/filters/metadata", GetFilterMetadata)
	return r, cars
}

func get(t *testing.T, r *gin.Engine, target string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

func modelNames(t *testing.T, raw json.RawMessage) []string {
	t.Helper()
	var vehicles []catalog.Vehicle
	require.NoError(t, json.Unmarshal(raw, &vehicles))
	out := make([]string, len(vehicles))
	for i, v := range vehicles {
		out[i] = v.Model
	}
	return out
}

func TestGetStorefrontCarsFiltersSortsAndPaginates(t *testing.T) {
	r, _ := setup(t)

	q := url.Values{}
	q.Set("brand", "Toyota")
	q.Set("sortBy", "price")
	q.Set("sortOrder", "desc")
	w, env := get(t, r, "/store/cars?"+q.Encode())

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"Hilux", "RAV4"}, modelNames(t, env.Data))
	require.NotNil(t, env.Meta)
	assert.Equal(t, 2, env.Meta.Total)
	assert.Equal(t, 1, env.Meta.TotalPages)
}

func TestGetStorefrontCarsSentinelsAndRanges(t *testing.T) {
	r, _ := setup(t)

	_, env := get(t, r, "/store/cars?category=Todos&brand=all&minPrice=20000&sortBy=year")
	assert.Equal(t, []string{"RAV4", "Ranger", "Hilux"}, modelNames(t, env.Data))

	// Unknown mileage counts as zero, so a positive minimum drops the Ranger.
	_, env = get(t, r, "/store/cars?minMileage=1")
	assert.Equal(t, []string{"Hilux", "RAV4", "X-Trail"}, modelNames(t, env.Data))

	_, env = get(t, r, "/store/cars?category=SUV&featured=false")
	assert.Equal(t, []string{"RAV4", "X-Trail"}, modelNames(t, env.Data))
}

func TestGetStorefrontCarsPagePastTheEnd(t *testing.T) {
	r, _ := setup(t)

	w, env := get(t, r, "/store/cars?limit=3&page=5")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, modelNames(t, env.Data))
	assert.Equal(t, 5, env.Meta.Page)
	assert.Equal(t, 2, env.Meta.TotalPages)
	assert.Equal(t, 4, env.Meta.Total)
}

func TestGetStorefrontCarsReusesMemo(t *testing.T) {
	r, _ := setup(t)

	get(t, r, "/store/cars?sortBy=price")
	get(t, r, "/store/cars?sortBy=price&page=2&limit=1")
	hits, misses := memo.Stats()
	assert.Equal(t, uint64(1), hits)
	assert.Equal(t, uint64(1), misses)
}

func TestGetStorefrontCarsInventoryFailure(t *testing.T) {
	r, _ := setup(t)
	loadInventory = func(context.Context) (*cache.Snapshot, error) { return nil, errors.New("db down") }

	w, env := get(t, r, "/store/cars")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.True(t, env.Error)
}

func TestGetFeaturedCars(t *testing.T) {
	r, _ := setup(t)

	_, env := get(t, r, "/store/cars/featured")
	assert.Equal(t, []string{"Hilux", "Ranger"}, modelNames(t, env.Data))

	_, env = get(t, r, "/store/cars/featured?limit=1")
	assert.Equal(t, []string{"Hilux"}, modelNames(t, env.Data))
}

func TestGetStorefrontCarByID(t *testing.T) {
	r, cars := setup(t)

	viewed := make(chan uuid.UUID, 1)
	recordView = func(id uuid.UUID) { viewed <- id }

	w, env := get(t, r, "/store/cars/"+cars[2].ID.String())
	require.Equal(t, http.StatusOK, w.Code)
	var car models.Car
	require.NoError(t, json.Unmarshal(env.Data, &car))
	assert.Equal(t, "Ranger", car.Model)
	assert.Equal(t, cars[2].ID, <-viewed)

	w, _ = get(t, r, "/store/cars/"+uuid.NewString())
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = get(t, r, "/store/cars/not-a-uuid")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCompareCars(t *testing.T) {
	r, cars := setup(t)

	target := "/store/cars/compare?id=" + cars[3].ID.String() + "&id=" + cars[0].ID.String()
	w, env := get(t, r, target)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"X-Trail", "Hilux"}, modelNames(t, env.Data))

	w, _ = get(t, r, "/store/cars/compare?id="+cars[0].ID.String()+"&id="+cars[0].ID.String())
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = get(t, r, "/store/cars/compare?id="+cars[0].ID.String()+"&id="+uuid.NewString())
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetInventory(t *testing.T) {
	r, _ := setup(t)

	w, env := get(t, r, "/store/inventory")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "1", w.Header().Get("X-Inventory-Version"))
	assert.Len(t, modelNames(t, env.Data), 4)
}

func TestGetFilterMetadata(t *testing.T) {
	r, _ := setup(t)

	_, env := get(t, r, "/store/filters/metadata")
	var meta models.FilterMetadata
	require.NoError(t, json.Unmarshal(env.Data, &meta))

	assert.Equal(t, []string{"Ford", "Nissan", "Toyota"}, meta.Brands)
	assert.Equal(t, catalog.Range{Min: 17500, Max: 32000}, meta.PriceRange)
	assert.Equal(t, catalog.Range{Min: 2018, Max: 2021}, meta.YearRange)
	assert.Equal(t, 2, meta.Featured)
	require.Len(t, meta.Categories, 2)
	assert.Equal(t, "Pickup", meta.Categories[0].Name)
	assert.Equal(t, 2, meta.Categories[0].Cars)
	assert.Equal(t, "SUV", meta.Categories[1].Name)
}

func TestParseRange(t *testing.T) {
	assert.Nil(t, parseRange("", ""))
	assert.Nil(t, parseRange("abc", ""))

	r := parseRange("5000", "")
	require.NotNil(t, r)
	assert.True(t, r.Contains(1e12))
	assert.False(t, r.Contains(4999))

	r = parseRange("9000", "1000")
	assert.Equal(t, catalog.Range{Min: 1000, Max: 9000}, *r)
}
