package bulkselect

import (
	"net/http"

	bulkerrors "github.com/vinodkumarpeddi/RequestHub-Backend/internal/bulkselect/errors"
	"github.com/vinodkumarpeddi/RequestHub-Backend/internal/request"
	"github.com/vinodkumarpeddi/RequestHub-Backend/internal/shared/apperror"
	"github.com/vinodkumarpeddi/RequestHub-Backend/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("bulkselect.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("bulkselect.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) Select(c *gin.Context) {
	var req SelectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http bulk select validation failed", zap.Error(err))
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	kind, ok := request.ParseKind(req.Type)
	if !ok {
		httpErr := apperror.ToHTTP(bulkerrors.ErrInvalidKind)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	ids, err := h.service.SelectForDecision(c.Request.Context(), kind, req.DaysAhead)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		h.logger.Warn("bulk select failed",
			zap.String("type", req.Type),
			zap.Int("days_ahead", req.DaysAhead),
			zap.String("code", httpErr.Code),
		)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}

	response.Success(c, http.StatusOK, SelectResponse{IDs: ids, Count: len(ids)}, nil)
}
