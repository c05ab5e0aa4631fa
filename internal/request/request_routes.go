package request

import (
	"github.com/vinodkumarpeddi/RequestHub-Backend/internal/middleware"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	requests := r.Group("/requests")
	{
		// Submission is open to authenticated students and staff alike,
		// with a per-IP bucket since it is the portal's write-heavy surface.
		requests.POST("/:kind",
			middleware.RateLimitByIP(rate.Limit(1), 5),
			middleware.AuthMiddleware(),
			handler.Submit,
		)

		// Review and decisioning are staff-only.
		staff := requests.Group("")
		staff.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware("admin"))
		{
			staff.GET("/:kind", handler.GetAll)
			staff.GET("/:kind/:id", handler.GetByID)
			staff.PATCH("/:kind/:id/approve", handler.Approve)
			staff.PATCH("/:kind/:id/reject", handler.Reject)
			staff.DELETE("/:kind/:id", handler.Delete)
		}
	}
}
