package requesterrors

import (
	"net/http"

	"github.com/vinodkumarpeddi/RequestHub-Backend/internal/shared/apperror"
)

var (
	ErrInvalidKind = apperror.New(
		apperror.CodeInvalidInput,
		"invalid request kind",
		http.StatusBadRequest,
	)
	ErrInvalidRequestID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid request id",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"start_date must be before or equal end_date",
		http.StatusBadRequest,
	)
	ErrInstituteRequired = apperror.New(
		apperror.CodeInvalidInput,
		"institute is required for this request kind",
		http.StatusBadRequest,
	)
	ErrReasonRequired = apperror.New(
		apperror.CodeInvalidInput,
		"reason is required for this request kind",
		http.StatusBadRequest,
	)
	ErrAttachmentRequired = apperror.New(
		apperror.CodeInvalidInput,
		"an attachment is required for this request kind",
		http.StatusBadRequest,
	)
	ErrRemarksRequired = apperror.New(
		apperror.CodeInvalidInput,
		"remarks are required when rejecting a request",
		http.StatusBadRequest,
	)
	ErrInvalidStatusFilter = apperror.New(
		apperror.CodeInvalidInput,
		"invalid status filter",
		http.StatusBadRequest,
	)
	ErrRequestNotFound = apperror.New(
		apperror.CodeNotFound,
		"request not found",
		http.StatusNotFound,
	)
	ErrInvalidStatusTransition = apperror.New(
		apperror.CodeInvalidState,
		"request has already been decided",
		http.StatusConflict,
	)
)
