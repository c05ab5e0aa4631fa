package app

import (
	"database/sql"

	"github.com/vinodkumarpeddi/RequestHub-Backend/internal/bulkselect"
	"github.com/vinodkumarpeddi/RequestHub-Backend/internal/dashboard"
	"github.com/vinodkumarpeddi/RequestHub-Backend/internal/notification"
	"github.com/vinodkumarpeddi/RequestHub-Backend/internal/request"
	"github.com/vinodkumarpeddi/RequestHub-Backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	notifier notification.Dispatcher,
	files storage.Store,
	cfg request.Config,
) error {
	// --- Repositories ---
	requestRepo := request.NewRepository(gormDB)

	// --- Services ---
	requestService := request.NewService(db, requestRepo, notifier, files, cfg)
	dashboardService := dashboard.NewService(requestRepo)
	bulkService := bulkselect.NewService(requestRepo)

	// --- Handlers ---
	requestHandler := request.NewHandler(requestService)
	dashboardHandler := dashboard.NewHandlerWithRedis(dashboardService, rdb)
	bulkHandler := bulkselect.NewHandler(bulkService)

	// --- Routes ---
	api := router.Group("/api/v1")
	{
		request.RegisterRoutes(api, requestHandler)
		dashboard.RegisterRoutes(api, dashboardHandler)
		bulkselect.RegisterRoutes(api, bulkHandler)
	}

	return nil
}
