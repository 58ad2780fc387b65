package car_controller

import (
	"context"
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jsabonet/milagre-car-site-sub000/cache"
	"github.com/jsabonet/milagre-car-site-sub000/catalog"
	"github.com/jsabonet/milagre-car-site-sub000/config"
	"github.com/jsabonet/milagre-car-site-sub000/models"
	"github.com/jsabonet/milagre-car-site-sub000/services"
)

// ─────────────────────────────────────────────────────────────
// Shared state
// ─────────────────────────────────────────────────────────────

// loadInventory and recordView are variables so tests can run the
// handlers without PostgreSQL.
var loadInventory = func(ctx context.Context) (*cache.Snapshot, error) {
	return services.GetInventoryService().Snapshot(ctx)
}

var recordView = func(carID uuid.UUID) {
	ctx, cancel := config.WithTimeout()
	defer cancel()
	if err := config.Gorm.WithContext(ctx).
		Model(&models.Car{}).
		Where("id = ?", carID).
		UpdateColumn("views", gorm.Expr("views + 1")).Error; err != nil {
		log.Printf("[store.car] failed to record view for %s: %v", carID, err)
	}
}

// memo is shared by every storefront request; it is keyed on the snapshot
// version so a reload discards it.
var memo = catalog.NewMemo(0)

// ─────────────────────────────────────────────────────────────
// Query parsing
// ─────────────────────────────────────────────────────────────

const (
	defaultLimit = 12
	maxLimit     = 100
)

func parsePagination(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))

	if limit < 1 || limit > maxLimit {
		limit = defaultLimit
	}
	return page, limit
}

// parseFilterState maps storefront query parameters onto a FilterState.
// Unparseable numbers are ignored rather than rejected.
func parseFilterState(c *gin.Context) catalog.FilterState {
	f := catalog.NewFilterState()
	f.Search = strings.TrimSpace(c.Query("q"))
	f.Category = c.Query("category")
	f.Brand = c.Query("brand")
	f.Transmission = c.Query("transmission")
	f.FuelType = c.Query("fuel")
	f.Color = c.Query("color")
	f.Location = c.Query("location")

	f.PriceRange = parseRange(c.Query("minPrice"), c.Query("maxPrice"))
	f.YearRange = parseRange(c.Query("minYear"), c.Query("maxYear"))
	f.MileageRange = parseRange(c.Query("minMileage"), c.Query("maxMileage"))

	if raw := c.Query("featured"); raw != "" {
		if b, err := strconv.ParseBool(raw); err == nil {
			f.Featured = &b
		}
	}

	if sortBy := c.Query("sortBy"); sortBy != "" {
		f.SortBy = catalog.SortKey(strings.ToLower(sortBy))
	}
	f.SortOrder = catalog.ParseSortOrder(c.Query("sortOrder"))
	return f
}

// parseRange builds a range from optional bounds. A missing bound is open.
func parseRange(minRaw, maxRaw string) *catalog.Range {
	lo, loErr := strconv.ParseFloat(strings.TrimSpace(minRaw), 64)
	hi, hiErr := strconv.ParseFloat(strings.TrimSpace(maxRaw), 64)
	if loErr != nil && hiErr != nil {
		return nil
	}
	if loErr != nil {
		lo = math.Inf(-1)
	}
	if hiErr != nil {
		hi = math.Inf(1)
	}
	r := catalog.Range{Min: lo, Max: hi}.Normalized()
	return &r
}
