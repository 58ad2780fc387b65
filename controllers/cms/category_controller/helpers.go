package category_controller

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jsabonet/milagre-car-site-sub000/cache"
	"github.com/jsabonet/milagre-car-site-sub000/services"
)

// invalidate drops every cache that embeds category data: the storefront
// category list, the inventory snapshot (cars carry their category name)
// and the stats below.
func invalidate(ctx context.Context) {
	cache.InvalidateCategories()
	services.GetInventoryService().Invalidate(ctx)

	statsCacheMu.Lock()
	statsCache = nil
	statsCacheMu.Unlock()
}

func pageParams(c *gin.Context) (page, limit, offset int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return page, limit, (page - 1) * limit
}
