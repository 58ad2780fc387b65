package admin_auth_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsabonet/milagre-car-site-sub000/config"
	"github.com/jsabonet/milagre-car-site-sub000/middleware"
	"github.com/jsabonet/milagre-car-site-sub000/models"
	"github.com/jsabonet/milagre-car-site-sub000/services"
)

// AdminLogout godoc
// @Summary Logout admin
// @Description Ends the current session; the token stops working immediately
// @Tags Admin - Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse
// @Router /admin/logout [post]
func AdminLogout(c *gin.Context) {
	if token := c.GetString("adminToken"); token != "" {
		ctx, cancel := config.WithTimeout()
		defer cancel()

		if err := services.GetAdminSessionService().DeactivateSession(ctx, services.HashAdminToken(token)); err != nil {
			log.Printf("[admin.logout] failed to deactivate session: %v", err)
		}
	}

	if adminID, email, ok := middleware.GetAdminFromContext(c); ok {
		_ = services.LogActivitySuccess(adminID, email, models.ActionAdminLogout, models.ResourceTypeAdmin, adminID.String(), email, nil, c)
		log.Printf("[admin.logout] %s", email)
	}

	setTokenCookie(c, "", -1)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Logout successful", nil))
}
