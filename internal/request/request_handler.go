package request

import (
	"net/http"
	"strconv"

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
	l := zap.L().Named("request.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("request.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) writeBindingError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
}

func kindParam(c *gin.Context) (Kind, bool) {
	kind, ok := ParseKind(c.Param("kind"))
	if !ok {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "invalid request kind", nil)
		return "", false
	}
	return kind, true
}

func (h *Handler) Submit(c *gin.Context) {
	kind, ok := kindParam(c)
	if !ok {
		return
	}

	var req SubmitRequest
	if err := c.ShouldBind(&req); err != nil {
		h.logger.Warn("http submit validation failed", zap.Error(err))
		h.writeBindingError(c, err)
		return
	}

	var upload *Upload
	if fileHeader, err := c.FormFile("attachment"); err == nil {
		src, err := fileHeader.Open()
		if err != nil {
			h.logger.Error("http submit attachment open failed", zap.Error(err))
			response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "could not read attachment", nil)
			return
		}
		defer src.Close()
		upload = &Upload{Filename: fileHeader.Filename, Content: src}
	}

	resp, err := h.service.Submit(c.Request.Context(), kind, req, upload)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	ctx := c.Request.Context()
	kind, ok := kindParam(c)
	if !ok {
		return
	}

	var (
		resp []Response
		err  error
	)
	if status := c.Query("status"); status != "" {
		resp, err = h.service.GetAllByStatus(ctx, kind, status)
	} else {
		resp, err = h.service.GetAll(ctx, kind)
	}
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if pageSize < 1 {
		pageSize = 20
	}

	total := int64(len(resp))
	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(resp) {
		start = len(resp)
	}
	if end > len(resp) {
		end = len(resp)
	}

	meta := response.NewPaginationMeta(total, page, pageSize)
	response.Success(c, http.StatusOK, resp[start:end], &meta)
}

func (h *Handler) GetByID(c *gin.Context) {
	kind, ok := kindParam(c)
	if !ok {
		return
	}

	resp, err := h.service.GetByID(c.Request.Context(), kind, c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Approve(c *gin.Context) {
	kind, ok := kindParam(c)
	if !ok {
		return
	}

	resp, err := h.service.Approve(c.Request.Context(), kind, c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Reject(c *gin.Context) {
	kind, ok := kindParam(c)
	if !ok {
		return
	}

	var req RejectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http reject validation failed", zap.Error(err))
		h.writeBindingError(c, err)
		return
	}

	resp, err := h.service.Reject(c.Request.Context(), kind, c.Param("id"), req.Remarks)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	kind, ok := kindParam(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), kind, c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
}
