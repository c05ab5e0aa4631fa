package dashboard

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/vinodkumarpeddi/RequestHub-Backend/internal/shared/apperror"
	"github.com/vinodkumarpeddi/RequestHub-Backend/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	overviewCacheKey = "dashboard:overview:v1"
	overviewCacheTTL = 30 * time.Second
)

type Handler struct {
	service Service
	rdb     *redis.Client
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("dashboard.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dashboard.handler")
	}
	return &Handler{service: service, logger: l}
}

// NewHandlerWithRedis adds a short-lived cache in front of the overview;
// the counts feed an admin landing page that polls aggressively.
func NewHandlerWithRedis(service Service, rdb *redis.Client, logger ...*zap.Logger) *Handler {
	h := NewHandler(service, logger...)
	h.rdb = rdb
	return h
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("dashboard request failed",
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Overview(c *gin.Context) {
	ctx := c.Request.Context()

	if h.rdb != nil {
		if cached, err := h.rdb.Get(ctx, overviewCacheKey).Bytes(); err == nil {
			var overview OverviewResponse
			if err := json.Unmarshal(cached, &overview); err == nil {
				response.Success(c, http.StatusOK, overview, nil)
				return
			}
		}
	}

	overview, err := h.service.Overview(ctx)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	if h.rdb != nil {
		if payload, err := json.Marshal(overview); err == nil {
			if err := h.rdb.Set(ctx, overviewCacheKey, payload, overviewCacheTTL).Err(); err != nil {
				h.logger.Warn("overview cache write failed", zap.Error(err))
			}
		}
	}

	response.Success(c, http.StatusOK, overview, nil)
}

func (h *Handler) AllRequests(c *gin.Context) {
	resp, err := h.service.AllRequests(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) UserCounts(c *gin.Context) {
	email := c.GetString("email")

	resp, err := h.service.UserCounts(c.Request.Context(), email)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}
