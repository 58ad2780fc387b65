package cms_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/jsabonet/milagre-car-site-sub000/controllers/cms/message_controller"
	"github.com/jsabonet/milagre-car-site-sub000/middleware"
)

func SetupMessageRoutes(rg *gin.RouterGroup) {
	messages := rg.Group("/messages")
	messages.Use(middleware.AdminAuthMiddleware())

	messages.GET("", message_controller.GetMessages)
	messages.GET("/:id", message_controller.GetMessageByID)

	protected := messages.Group("")
	protected.Use(middleware.ActivityLoggingMiddleware())
	{
		protected.PATCH("/:id/status", message_controller.UpdateMessageStatus)
		protected.DELETE("/:id", message_controller.DeleteMessage)
	}
}
