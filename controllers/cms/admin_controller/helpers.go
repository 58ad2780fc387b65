package admin_controller

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// pageParams reads page and limit with a default of 20 and a max of 100.
func pageParams(c *gin.Context) (page, limit, offset int) {
	page = 1
	if p := c.Query("page"); p != "" {
		if parsed, err := strconv.Atoi(p); err == nil && parsed > 0 {
			page = parsed
		}
	}

	limit = 20
	if l := c.Query("limit"); l != "" {
		if parsed, err := strconv.Atoi(l); err == nil && parsed > 0 {
			limit = min(parsed, 100)
		}
	}

	return page, limit, (page - 1) * limit
}
