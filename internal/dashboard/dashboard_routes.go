package dashboard

import (
	"github.com/vinodkumarpeddi/RequestHub-Backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	admin := r.Group("/dashboard")
	admin.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware("admin"))
	{
		admin.GET("/overview", handler.Overview)
		admin.GET("/requests", handler.AllRequests)
	}

	user := r.Group("/user")
	user.Use(middleware.AuthMiddleware())
	{
		user.GET("/request-counts", handler.UserCounts)
	}
}
