package bulkselect

import (
	"github.com/vinodkumarpeddi/RequestHub-Backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	admin := r.Group("/dashboard")
	admin.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware("admin"))
	{
		admin.POST("/bulk-select", handler.Select)
	}
}
