package admin_auth_controller

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsabonet/milagre-car-site-sub000/config"
	"github.com/jsabonet/milagre-car-site-sub000/models"
	"github.com/jsabonet/milagre-car-site-sub000/services"
)

var errEmailNotVerified = errors.New("google account email is not verified")

type googleClaims struct {
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

// adminFromIDToken verifies a Google ID token and maps it onto an existing
// admin. Google sign-in never creates accounts.
func adminFromIDToken(ctx context.Context, rawIDToken string) (*models.Admin, error) {
	idToken, err := config.OIDCVerifier.Verify(ctx, rawIDToken)
	if err != nil {
		return nil, fmt.Errorf("verify id token: %w", err)
	}

	var claims googleClaims
	if err := idToken.Claims(&claims); err != nil {
		return nil, fmt.Errorf("decode id token claims: %w", err)
	}
	if !claims.EmailVerified {
		return nil, errEmailNotVerified
	}

	admin, err := services.GetAdminAuthService().FindByEmail(ctx, claims.Email)
	if err != nil {
		return nil, err
	}
	if admin.Avatar == "" && claims.Picture != "" {
		admin.Avatar = claims.Picture
		if err := config.Gorm.WithContext(ctx).Model(admin).Update("avatar", claims.Picture).Error; err != nil {
			log.Printf("[admin.google] failed to store avatar: %v", err)
		}
	}
	return admin, nil
}

// AdminGoogleLogin godoc
// @Summary Login as admin with Google
// @Description Exchange a Google ID token from the sign-in button for an admin session. The Google email must belong to an existing admin
// @Tags Admin - Auth
// @Accept json
// @Produce json
// @Param request body models.GoogleLoginRequest true "Google ID token"
// @Success 200 {object} models.ApiResponse{data=models.AdminLoginResponse}
// @Failure 400 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse
// @Failure 403 {object} models.ApiResponse "Account suspended"
// @Failure 503 {object} models.ApiResponse "Google sign-in not configured"
// @Router /admin/login/google [post]
func AdminGoogleLogin(c *gin.Context) {
	if !config.GoogleEnabled() {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "Google sign-in is not configured"))
		return
	}

	var req models.GoogleLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	admin, err := adminFromIDToken(ctx, req.IDToken)
	if err != nil {
		status, message := googleLoginError(err)
		log.Printf("[admin.google] %v", err)
		c.JSON(status, models.ErrorResponse(c, message))
		return
	}

	response, err := startSession(c, ctx, admin)
	if err != nil {
		log.Printf("[admin.google] %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	log.Printf("[admin.google] success: %s", admin.Email)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Login successful", response))
}

func googleLoginError(err error) (int, string) {
	switch {
	case errors.Is(err, services.ErrAdminSuspended):
		return http.StatusForbidden, "Account is suspended"
	case errors.Is(err, services.ErrInvalidCredentials):
		return http.StatusUnauthorized, "No admin account for this Google user"
	case errors.Is(err, errEmailNotVerified):
		return http.StatusUnauthorized, "Google email is not verified"
	}
	return http.StatusUnauthorized, "Invalid Google token"
}
