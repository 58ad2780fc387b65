package admin_auth_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsabonet/milagre-car-site-sub000/config"
	"github.com/jsabonet/milagre-car-site-sub000/models"
	"github.com/jsabonet/milagre-car-site-sub000/services"
)

// AdminLogin godoc
// @Summary Login as admin
// @Description Authenticate with email and password. Returns a JWT, sets the admin_token cookie and opens a session
// @Tags Admin - Auth
// @Accept json
// @Produce json
// @Param loginRequest body models.AdminLoginRequest true "Email and password"
// @Success 200 {object} models.ApiResponse{data=models.AdminLoginResponse}
// @Failure 400 {object} models.ApiResponse "Invalid credentials"
// @Failure 403 {object} models.ApiResponse "Account suspended"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /admin/login [post]
func AdminLogin(c *gin.Context) {
	var req models.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	admin, err := services.GetAdminAuthService().Authenticate(ctx, req.Email, req.Password)
	switch {
	case errors.Is(err, services.ErrInvalidCredentials):
		log.Printf("[admin.login] rejected: %s", req.Email)
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid email or password"))
		return
	case errors.Is(err, services.ErrAdminSuspended):
		log.Printf("[admin.login] suspended account attempt: %s", req.Email)
		c.JSON(http.StatusForbidden, models.ErrorResponse(c, "Account is suspended"))
		return
	case err != nil:
		log.Printf("[admin.login] %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	response, err := startSession(c, ctx, admin)
	if err != nil {
		log.Printf("[admin.login] %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	log.Printf("[admin.login] success: %s (%s)", admin.Email, admin.ID)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Login successful", response))
}
