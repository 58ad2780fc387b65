package cms_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/jsabonet/milagre-car-site-sub000/controllers/cms/admin_controller"
	admin_auth "github.com/jsabonet/milagre-car-site-sub000/controllers/cms/admin_controller/auth"
	"github.com/jsabonet/milagre-car-site-sub000/controllers/cms/dashboard_controller"
	"github.com/jsabonet/milagre-car-site-sub000/middleware"
)

// SetupAdminRoutes sets up auth, admin management, activity logs and the
// dashboard under the given /admin group.
func SetupAdminRoutes(admin *gin.RouterGroup) {
	// ════════════════════════════════════════════════════════════
	// Public Routes (No Auth Required)
	// ════════════════════════════════════════════════════════════

	admin.POST("/login", admin_auth.AdminLogin)
	admin.POST("/login/google", admin_auth.AdminGoogleLogin)
	admin.GET("/auth/google", admin_auth.AdminGoogleRedirect)
	admin.GET("/auth/google/callback", admin_auth.AdminGoogleCallback)

	// ════════════════════════════════════════════════════════════
	// Protected Routes (Auth Required)
	// ════════════════════════════════════════════════════════════

	protected := admin.Group("")
	protected.Use(middleware.AdminAuthMiddleware())
	{
		// Auth
		protected.POST("/logout", admin_auth.AdminLogout)
		protected.GET("/me", admin_auth.GetAdminMe)

		// Admins
		protected.GET("/admins", admin_controller.GetAdmins)
		protected.GET("/admins/stats", admin_controller.GetAdminStats)
		protected.GET("/admins/:id", admin_controller.GetAdmin)

		// Activity logs
		protected.GET("/activity-logs", admin_controller.GetActivityLogs)

		// Dashboard
		protected.GET("/dashboard/stats", dashboard_controller.GetDashboardStats)
	}

	// ════════════════════════════════════════════════════════════
	// Super Admin Only Routes
	// ════════════════════════════════════════════════════════════

	superAdmin := admin.Group("")
	superAdmin.Use(
		middleware.AdminAuthMiddleware(),
		middleware.RequireSuperAdminMiddleware(),
	)
	{
		superAdmin.PATCH("/admins/:id/status", admin_controller.UpdateAdminStatus)
	}
}
