package admin_auth_controller

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsabonet/milagre-car-site-sub000/config"
	"github.com/jsabonet/milagre-car-site-sub000/middleware"
	"github.com/jsabonet/milagre-car-site-sub000/models"
	"github.com/jsabonet/milagre-car-site-sub000/services"
)

// startSession issues a JWT for admin, records the session row and sets the
// admin_token cookie. Shared by every login flow.
func startSession(c *gin.Context, ctx context.Context, admin *models.Admin) (models.AdminLoginResponse, error) {
	authService := services.GetAdminAuthService()
	if err := authService.MarkLogin(ctx, admin); err != nil {
		return models.AdminLoginResponse{}, fmt.Errorf("update last login: %w", err)
	}

	token, expiresAt, err := services.GenerateAdminJWT(admin.ID.String(), admin.Email, admin.Role)
	if err != nil {
		return models.AdminLoginResponse{}, fmt.Errorf("generate token: %w", err)
	}

	if _, err := services.GetAdminSessionService().CreateSession(
		ctx,
		admin.ID,
		token,
		expiresAt,
		c.ClientIP(),
		c.Request.UserAgent(),
	); err != nil {
		return models.AdminLoginResponse{}, fmt.Errorf("create session: %w", err)
	}

	setTokenCookie(c, token, int(time.Until(expiresAt).Seconds()))

	if err := services.LogActivitySuccess(admin.ID, admin.Email, models.ActionAdminLogin, models.ResourceTypeAdmin, admin.ID.String(), admin.Email, nil, c); err != nil {
		log.Printf("[admin.login] failed to log activity: %v", err)
	}

	return models.AdminLoginResponse{
		Admin:     admin.ToResponse(),
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

func setTokenCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		middleware.AdminTokenCookie,
		token,
		maxAge,
		"/",
		"",
		config.IsProduction(),
		true,
	)
}
