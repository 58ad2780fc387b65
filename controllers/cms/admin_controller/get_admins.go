package admin_controller

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jsabonet/milagre-car-site-sub000/config"
	"github.com/jsabonet/milagre-car-site-sub000/models"
	"github.com/jsabonet/milagre-car-site-sub000/services"
)

// GetAdmins godoc
// @Summary List back-office accounts
// @Description Paginated admins with their computed status
// @Tags Admin - Management
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Items per page (default: 20, max: 100)"
// @Param q query string false "Search name or email"
// @Param role query string false "super_admin or admin"
// @Success 200 {object} models.ApiResponse{data=[]models.AdminResponse}
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Router /admin/admins [get]
func GetAdmins(c *gin.Context) {
	page, limit, offset := pageParams(c)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	baseQuery := config.Gorm.WithContext(ctx).Model(&models.Admin{})
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		baseQuery = baseQuery.Where("name ILIKE ? OR email ILIKE ?", "%"+q+"%", "%"+q+"%")
	}
	if role := c.Query("role"); role != "" {
		baseQuery = baseQuery.Where("role = ?", role)
	}

	var total int64
	if err := baseQuery.Count(&total).Error; err != nil {
		log.Printf("[admin.list] failed to count admins: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	admins := make([]models.Admin, 0)
	if err := baseQuery.
		Order("joined_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&admins).Error; err != nil {
		log.Printf("[admin.list] database error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	authService := services.GetAdminAuthService()
	responses := make([]models.AdminResponse, len(admins))
	for i, admin := range admins {
		admin.Status = authService.GetAdminStatus(admin.Status, admin.LastLoginAt)
		responses[i] = admin.ToResponse()
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Admins retrieved", responses, models.NewPagination(page, limit, total)))
}
