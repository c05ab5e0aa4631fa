package bulkerrors

import (
	"net/http"

	"github.com/vinodkumarpeddi/RequestHub-Backend/internal/shared/apperror"
)

var (
	ErrInvalidKind = apperror.New(
		apperror.CodeInvalidInput,
		"invalid request type for bulk selection",
		http.StatusBadRequest,
	)
	ErrInvalidDaysAhead = apperror.New(
		apperror.CodeInvalidInput,
		"days_ahead must be a positive integer",
		http.StatusBadRequest,
	)
)
