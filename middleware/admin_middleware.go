package middleware

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jsabonet/milagre-car-site-sub000/config"
	"github.com/jsabonet/milagre-car-site-sub000/models"
	"github.com/jsabonet/milagre-car-site-sub000/services"
)

// AdminTokenCookie is the cookie the back office keeps its JWT in.
const AdminTokenCookie = "admin_token"

// ExtractAdminToken reads the token from the admin cookie, then from an
// "Authorization: Bearer" header.
func ExtractAdminToken(c *gin.Context) (string, error) {
	if token, err := c.Cookie(AdminTokenCookie); err == nil && token != "" {
		return token, nil
	}

	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", errors.New("no token provided")
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("invalid token format")
	}
	return parts[1], nil
}

// AdminAuthMiddleware validates JWT token and checks admin authorization
func AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := ExtractAdminToken(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized - "+err.Error()))
			c.Abort()
			return
		}

		claims, err := services.VerifyAdminJWT(token)
		if err != nil {
			log.Printf("[auth] invalid token: %v", err)
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized - invalid token"))
			c.Abort()
			return
		}

		ctx, cancel := config.WithTimeout()
		defer cancel()

		// Logged-out tokens stay cryptographically valid until they expire,
		// so the session row is the source of truth.
		if err := services.GetAdminSessionService().TouchSession(ctx, services.HashAdminToken(token)); err != nil {
			if errors.Is(err, services.ErrSessionInactive) {
				c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized - session ended"))
				c.Abort()
				return
			}
			log.Printf("[auth] failed to update session activity: %v", err)
		}

		var admin models.Admin
		if err := config.Gorm.WithContext(ctx).
			Select("id", "role", "status").
			Where("id = ?", claims.AdminID).
			First(&admin).Error; err != nil {
			log.Printf("[auth] failed to fetch admin role: %v", err)
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized - admin not found"))
			c.Abort()
			return
		}
		if admin.Status == "suspended" {
			c.JSON(http.StatusForbidden, models.ErrorResponse(c, "Forbidden - account suspended"))
			c.Abort()
			return
		}

		c.Set("adminID", claims.AdminID)
		c.Set("adminEmail", claims.Email)
		c.Set("adminRole", admin.Role)
		c.Set("adminToken", token)

		c.Next()
	}
}

// RequireSuperAdminMiddleware checks if the admin is a super admin
func RequireSuperAdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		adminRole, exists := c.Get("adminRole")
		if !exists {
			c.JSON(http.StatusForbidden, models.ErrorResponse(c, "Forbidden - role not found"))
			c.Abort()
			return
		}

		if adminRole != "super_admin" {
			log.Printf("[auth] non-super-admin attempted restricted action")
			c.JSON(http.StatusForbidden, models.ErrorResponse(c, "Forbidden - super admin access required"))
			c.Abort()
			return
		}

		c.Next()
	}
}

// GetAdminFromContext returns what AdminAuthMiddleware stored.
func GetAdminFromContext(c *gin.Context) (uuid.UUID, string, bool) {
	idRaw, ok := c.Get("adminID")
	if !ok {
		return uuid.Nil, "", false
	}

	var id uuid.UUID
	switch v := idRaw.(type) {
	case uuid.UUID:
		id = v
	case string:
		parsed, err := uuid.Parse(v)
		if err != nil {
			return uuid.Nil, "", false
		}
		id = parsed
	default:
		return uuid.Nil, "", false
	}

	return id, c.GetString("adminEmail"), true
}
